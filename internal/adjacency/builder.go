package adjacency

// Builder assembles a PairList programmatically, for callers that author an
// adjacency list instead of reading one from disk. It applies the same
// validation as the readers and produces the same value type, so the loader
// cannot tell the difference.
type Builder struct {
	pairs PairList
	seen  map[Pair]bool
}

func NewBuilder() *Builder {
	return &Builder{seen: map[Pair]bool{}}
}

// Add records one friendship. Self-loops are rejected; duplicates (in either
// token order) are ignored.
func (b *Builder) Add(a, bName string) error {
	if a == bName {
		return ErrSelfLoop
	}
	p := Pair{A: a, B: bName}.Canonical()
	if b.seen[p] {
		return nil
	}
	b.seen[p] = true
	b.pairs = append(b.pairs, Pair{A: a, B: bName})
	return nil
}

func (b *Builder) Len() int { return len(b.pairs) }

// Pairs returns the accumulated list in insertion order.
func (b *Builder) Pairs() PairList {
	return append(PairList(nil), b.pairs...)
}
