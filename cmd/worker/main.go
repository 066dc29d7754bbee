package main

import (
	"log"
	"os"
)

const usage = `usage: worker <command> [args]

commands:
  load <pairsFile>                    load a friendship pair file into Neo4j
  export-dot <pairsFile> [out.dot]    render a pair file as Graphviz DOT
  export-adjacency <pairsFile> [out]  rewrite a pair file as a colon adjacency list
  print <pairsFile>                   print the adjacency list to stdout
  groups <pairsFile> [bfs|dfs]        print the friend groups
  recommend <pairsFile>               print friend recommendations
  popular <pairsFile>                 print the most connected people
  path <pairsFile> <from> <to>        print the shortest friendship chain
  cycle <pairsFile>                   report whether any friendship cycle exists`

func main() {
	if len(os.Args) < 2 {
		log.Fatal(usage)
	}

	switch os.Args[1] {
	case "load":
		RunLoad(os.Args[2:])
	case "export-dot":
		RunExportDOT(os.Args[2:])
	case "export-adjacency", "print":
		RunExportAdjacency(os.Args[2:])
	case "groups", "recommend", "popular", "path", "cycle":
		RunAnalyze(os.Args[1], os.Args[2:])
	default:
		log.Fatalf("unknown command: %s\n%s", os.Args[1], usage)
	}
}
