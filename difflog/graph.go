package difflog

// Graph is the dense, vertex-indexed edge multigraph described in spec
// §4.C: an n×n array of parallel-edge lists. Vertices are a closed,
// construction-time-fixed set (unlike the teacher library's open, growable
// string-keyed adjacency), so a flat 2-D slice of slices is the natural
// representation rather than a map of maps.
type Graph struct {
	domain Domain
	n      int // number of vertices, including the zero vertex
	pairs  [][][]*edgeRecord
	// byLiteral indexes every edgeRecord sharing a given literal identity.
	// LessEq/LessStrict literals map to exactly one edge; Equal literals map
	// to the two edges (forward and reverse) created for that atom.
	byLiteral map[Literal][]*edgeRecord
}

func newGraph(domain Domain, n int) *Graph {
	pairs := make([][][]*edgeRecord, n)
	for u := range pairs {
		pairs[u] = make([][]*edgeRecord, n)
	}
	return &Graph{
		domain:    domain,
		n:         n,
		pairs:     pairs,
		byLiteral: make(map[Literal][]*edgeRecord),
	}
}

// activeOutEdges iterates every active (status != Unassigned) edge leaving
// u, calling fn(v, edge) for each.
func (g *Graph) activeOutEdges(u int, fn func(v int, e *edgeRecord)) {
	row := g.pairs[u]
	for v := 0; v < g.n; v++ {
		for _, e := range row[v] {
			if e.status != Unassigned {
				fn(v, e)
			}
		}
	}
}

// activeInEdges iterates every active edge entering v, calling fn(u, edge)
// for each -- used by the backward (predecessor) shortest-path traversal.
func (g *Graph) activeInEdges(v int, fn func(u int, e *edgeRecord)) {
	for u := 0; u < g.n; u++ {
		for _, e := range g.pairs[u][v] {
			if e.status != Unassigned {
				fn(u, e)
			}
		}
	}
}

// edgeForLiteral returns the single edge whose identity is lit, for
// LessEq/LessStrict literals where exactly one edge was created.
func (g *Graph) edgeForLiteral(lit Literal) (*edgeRecord, bool) {
	es := g.byLiteral[lit]
	if len(es) == 0 {
		return nil, false
	}
	return es[0], true
}

// edgesForLiteralSet returns every edgeRecord sharing lit's identity: one
// for LessEq/LessStrict, two (forward and reverse) for Equal.
func (g *Graph) edgesForLiteralSet(lit Literal) ([]*edgeRecord, bool) {
	es := g.byLiteral[lit]
	if len(es) == 0 {
		return nil, false
	}
	return es, true
}
