// Package adjacency reads and writes the plain-text adjacency formats the
// social graph is exchanged in: a pair file (two whitespace-separated names
// per line) and the colon list format ("name: friend1, friend2").
package adjacency

import (
	"errors"
	"fmt"
)

// Pair is one friendship read from a file, in file order. Token order within
// the line carries no meaning; the edge is undirected.
type Pair struct {
	A string `json:"a"`
	B string `json:"b"`
}

// PairList is the ordered sequence of pairs a file parses into. It is a
// transient value: built by a reader or Builder, consumed by the loader.
type PairList []Pair

// Canonical returns the pair with its names in lexicographic order, so that
// "bob alice" and "alice bob" compare equal.
func (p Pair) Canonical() Pair {
	if p.B < p.A {
		p.A, p.B = p.B, p.A
	}
	return p
}

// ErrMalformedLine reports a line that does not contain exactly two names
// (pair format) or has no colon separator (list format).
var ErrMalformedLine = errors.New("adjacency: malformed line")

// ErrSelfLoop reports a pair whose two names are equal.
var ErrSelfLoop = errors.New("adjacency: person paired with itself")

// LineError carries the offending line for either sentinel above.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d (%q): %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }
