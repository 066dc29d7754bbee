package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/grafo-social/social-graph-backend/internal/analysis"
)

// RunAnalyze runs one of the offline analysis commands against a pair file.
func RunAnalyze(command string, args []string) {
	if len(args) < 1 {
		log.Fatalf("usage: worker %s <pairsFile> [args]", command)
	}
	g := readGraph(args[0])

	switch command {
	case "groups":
		strategy := analysis.BFS
		if len(args) > 1 {
			var err error
			strategy, err = analysis.ParseStrategy(args[1])
			if err != nil {
				log.Fatal(err)
			}
		}
		groups := analysis.FriendGroups(g, strategy)
		fmt.Printf("%d friend group(s)\n", len(groups))
		for i, group := range groups {
			fmt.Printf("%d: %s\n", i+1, strings.Join(group, ", "))
		}

	case "recommend":
		recs := analysis.Recommendations(g)
		for _, name := range g.People() {
			if len(recs[name]) == 0 {
				continue
			}
			fmt.Printf("%s: %s\n", name, strings.Join(recs[name], ", "))
		}

	case "popular":
		for _, p := range analysis.MostPopular(g) {
			fmt.Printf("%s (%d friends)\n", p.Name, p.Friends)
		}

	case "path":
		if len(args) < 3 {
			log.Fatal("usage: worker path <pairsFile> <from> <to>")
		}
		path, found, err := analysis.ShortestPath(g, args[1], args[2])
		if err != nil {
			log.Fatal(err)
		}
		if !found {
			fmt.Printf("no path between %s and %s\n", args[1], args[2])
			return
		}
		fmt.Println(strings.Join(path, " -> "))

	case "cycle":
		cycle, ok := analysis.FindCycle(g)
		if !ok {
			fmt.Println("no cycle")
			return
		}
		fmt.Println(strings.Join(cycle, " -> "))
	}
}
