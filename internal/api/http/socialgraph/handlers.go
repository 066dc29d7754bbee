// Package socialgraph exposes the social graph over REST: batch loads,
// friendship mutations, snapshot reads, and the analysis endpoints.
package socialgraph

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/grafo-social/social-graph-backend/internal/adjacency"
	"github.com/grafo-social/social-graph-backend/internal/analysis"
	"github.com/grafo-social/social-graph-backend/internal/loader"
	"github.com/grafo-social/social-graph-backend/internal/social"
	neo4jstore "github.com/grafo-social/social-graph-backend/internal/store/neo4j"
)

// HistoryReader lists past load runs; nil disables the /loads endpoint's data.
type HistoryReader interface {
	RecentLoadRuns(ctx context.Context, limit int) ([]loader.Report, error)
}

type Handler struct {
	svc     *social.Service
	loader  *loader.Loader
	history HistoryReader
}

func NewHandler(svc *social.Service, ld *loader.Loader, history HistoryReader) *Handler {
	return &Handler{svc: svc, loader: ld, history: history}
}

func (h *Handler) load(c *gin.Context) {
	var req LoadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	var (
		report loader.Report
		err    error
	)
	switch {
	case req.Path != "" && len(req.Pairs) > 0:
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "provide either path or pairs, not both"})
		return
	case req.Path != "":
		report, err = h.loader.LoadFile(c.Request.Context(), req.Path)
	case len(req.Pairs) > 0:
		report, err = h.loader.LoadPairs(c.Request.Context(), "inline", req.Pairs)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "provide path or pairs"})
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "report": report})
}

func (h *Handler) listLoads(c *gin.Context) {
	if h.history == nil {
		c.JSON(http.StatusOK, gin.H{"ok": true, "runs": []loader.Report{}})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	runs, err := h.history.RecentLoadRuns(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if runs == nil {
		runs = []loader.Report{}
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "runs": runs})
}

func (h *Handler) listPeople(c *gin.Context) {
	names, err := h.svc.AllAccounts(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "people": names})
}

func (h *Handler) deletePerson(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "name is required"})
		return
	}
	if err := h.svc.DeleteAccounts(c.Request.Context(), name); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// bindFriendRequest parses and trims the pair body; names must be non-empty
// after trimming so a whitespace-only name never reaches the store.
func bindFriendRequest(c *gin.Context) (a, b string, ok bool) {
	var req FriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return "", "", false
	}
	a = strings.TrimSpace(req.A)
	b = strings.TrimSpace(req.B)
	if a == "" || b == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "a and b are required"})
		return "", "", false
	}
	return a, b, true
}

func (h *Handler) addFriend(c *gin.Context) {
	a, b, ok := bindFriendRequest(c)
	if !ok {
		return
	}
	if err := h.svc.AddFriend(c.Request.Context(), a, b); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true})
}

func (h *Handler) removeFriend(c *gin.Context) {
	a, b, ok := bindFriendRequest(c)
	if !ok {
		return
	}
	if err := h.svc.RemoveFriend(c.Request.Context(), a, b); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) graph(c *gin.Context) {
	g, err := h.svc.Snapshot(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "graph": g})
}

func (h *Handler) graphDOT(c *gin.Context) {
	dot, err := h.svc.DOT(c.Request.Context(), c.DefaultQuery("title", "Social Network"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "text/vnd.graphviz; charset=utf-8", []byte(dot))
}

func (h *Handler) graphAdjacency(c *gin.Context) {
	list, err := h.svc.AdjacencyList(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(list))
}

func (h *Handler) groups(c *gin.Context) {
	strategy, err := analysis.ParseStrategy(c.DefaultQuery("strategy", "bfs"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	groups, err := h.svc.FriendGroups(c.Request.Context(), strategy)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "result": GroupsResponse{
		Strategy: string(strategy),
		Count:    len(groups),
		Groups:   groups,
	}})
}

func (h *Handler) recommendations(c *gin.Context) {
	recs, err := h.svc.Recommendations(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "recommendations": recs})
}

func (h *Handler) popular(c *gin.Context) {
	top, err := h.svc.MostPopular(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	if top == nil {
		top = []analysis.Popularity{}
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "popular": top})
}

func (h *Handler) path(c *gin.Context) {
	from := strings.TrimSpace(c.Query("from"))
	to := strings.TrimSpace(c.Query("to"))
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "from and to are required"})
		return
	}

	path, found, err := h.svc.ShortestPath(c.Request.Context(), from, to)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "result": PathResponse{
		From:  from,
		To:    to,
		Found: found,
		Path:  path,
	}})
}

func (h *Handler) cycle(c *gin.Context) {
	cycle, found, err := h.svc.FindCycle(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "result": CycleResponse{Found: found, Cycle: cycle}})
}

// fail maps domain errors onto HTTP statuses.
func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, adjacency.ErrMalformedLine),
		errors.Is(err, adjacency.ErrSelfLoop),
		errors.Is(err, fs.ErrNotExist):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, analysis.ErrPersonNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, neo4jstore.ErrConnection):
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, neo4jstore.ErrWrite):
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
	}
}
