package adjacency

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadPairs parses the pair format: one friendship per line, two
// whitespace-separated names. Blank lines and lines starting with '#' are
// skipped. Any malformed or self-loop line aborts the whole read with a
// *LineError; a partial PairList is never returned, so a failed read never
// reaches the loader.
func ReadPairs(r io.Reader) (PairList, error) {
	var pairs PairList

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, &LineError{Line: lineNo, Text: line, Err: ErrMalformedLine}
		}
		if fields[0] == fields[1] {
			return nil, &LineError{Line: lineNo, Text: line, Err: ErrSelfLoop}
		}
		pairs = append(pairs, Pair{A: fields[0], B: fields[1]})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read pairs: %w", err)
	}

	return pairs, nil
}

// ReadPairsFile reads the pair format from path. A missing file surfaces as
// an error wrapping fs.ErrNotExist.
func ReadPairsFile(path string) (PairList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open adjacency file: %w", err)
	}
	defer f.Close()
	return ReadPairs(f)
}

// ReadList parses the colon list format written by WriteList:
//
//	alice: bob, carol
//
// Each listed friend becomes one pair. Because the list format names every
// edge from both endpoints, duplicates are collapsed to the first
// occurrence. Entries with an empty friend list contribute nothing.
func ReadList(r io.Reader) (PairList, error) {
	var pairs PairList
	seen := map[Pair]bool{}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, rest, ok := strings.Cut(line, ":")
		if !ok {
			return nil, &LineError{Line: lineNo, Text: line, Err: ErrMalformedLine}
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, &LineError{Line: lineNo, Text: line, Err: ErrMalformedLine}
		}

		for _, friend := range strings.Split(rest, ",") {
			friend = strings.TrimSpace(friend)
			if friend == "" {
				continue
			}
			if friend == name {
				return nil, &LineError{Line: lineNo, Text: line, Err: ErrSelfLoop}
			}
			p := Pair{A: name, B: friend}.Canonical()
			if seen[p] {
				continue
			}
			seen[p] = true
			pairs = append(pairs, p)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read adjacency list: %w", err)
	}

	return pairs, nil
}

// ReadListFile reads the colon list format from path.
func ReadListFile(path string) (PairList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open adjacency file: %w", err)
	}
	defer f.Close()
	return ReadList(f)
}
