package socialgraph

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the social graph endpoints on the given group,
// normally /api/v1.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/load", h.load)
	api.GET("/loads", h.listLoads)

	api.GET("/people", h.listPeople)
	api.DELETE("/people/:name", h.deletePerson)

	api.POST("/friends", h.addFriend)
	api.DELETE("/friends", h.removeFriend)

	api.GET("/graph", h.graph)
	api.GET("/graph/dot", h.graphDOT)
	api.GET("/graph/adjacency", h.graphAdjacency)

	api.GET("/analysis/groups", h.groups)
	api.GET("/analysis/recommendations", h.recommendations)
	api.GET("/analysis/popular", h.popular)
	api.GET("/analysis/path", h.path)
	api.GET("/analysis/cycle", h.cycle)
}
