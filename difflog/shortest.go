package difflog

import (
	"math"

	"github.com/autotaker/csisat/internal/pq"
)

// forwardSSSP runs Johnson-reweighted Dijkstra from source, following
// active out-edges (spec §4.G "forward successors"). It returns the actual
// (un-reweighted) shortest distance to every vertex, and a predecessor
// array usable with walkPath(pred, target, source, reverse=true).
//
// Reweighting: every active edge u→v of raw weight w is explored at cost
// π(u) + w − π(v), which invariant (1) guarantees is non-negative whenever
// π is a valid potential, making plain Dijkstra correct even though raw
// weights may themselves be negative.
func forwardSSSP(g *Graph, pi potential, source int) (dist []float64, pred []int) {
	return ssssp(g, pi, source, true)
}

// backwardSSSP runs Johnson-reweighted Dijkstra against active in-edges,
// i.e. it computes, for every vertex i, the shortest-path distance FROM i
// TO source (spec §4.G "reverse predecessors", used as dist_to_u in
// T-propagation). The returned predecessor array is usable with
// walkPath(pred, i, source, reverse=false) to recover the i⇝source path in
// its natural (original-edge) direction, with no reversal needed: relaxing
// backwards from c to a predecessor y records pred[y] = c, and edge y→c is
// a real forward edge, so following pred from any i already walks forward
// toward source.
func backwardSSSP(g *Graph, pi potential, source int) (dist []float64, pred []int) {
	return ssssp(g, pi, source, false)
}

// ssssp is the shared Dijkstra driver; forward selects activeOutEdges vs.
// activeInEdges and which un-reweighting formula applies.
func ssssp(g *Graph, pi potential, source int, forward bool) (dist []float64, pred []int) {
	n := g.n
	rdist := make([]float64, n)
	pred = make([]int, n)
	reached := make([]bool, n)
	for i := range pred {
		pred[i] = -1
	}
	for i := range rdist {
		rdist[i] = math.Inf(1)
	}

	q := pq.New(n)
	q.InsertOrDecrease(source, pq.Of(0))
	for !q.Empty() {
		u, key, _ := q.ExtractMin()
		rdist[u] = key.W
		reached[u] = true

		relax := func(nbr int, e *edgeRecord) {
			if reached[nbr] {
				return
			}
			var rw float64
			if forward {
				rw = pi[u] + e.weight - pi[nbr]
			} else {
				// e is the edge nbr→u (an in-edge of u); its Johnson
				// reweight is computed the same way, from its own
				// endpoints, not from u/nbr positionally swapped.
				rw = pi[nbr] + e.weight - pi[u]
			}
			cand := pq.Of(key.W + rw)
			if cand.Less(q.Priority(nbr)) {
				q.InsertOrDecrease(nbr, cand)
				pred[nbr] = u
			}
		}
		if forward {
			g.activeOutEdges(u, relax)
		} else {
			g.activeInEdges(u, relax)
		}
	}

	dist = make([]float64, n)
	for x := 0; x < n; x++ {
		if math.IsInf(rdist[x], 1) {
			dist[x] = math.Inf(1)
			continue
		}
		if forward {
			dist[x] = rdist[x] - pi[source] + pi[x]
		} else {
			dist[x] = rdist[x] - pi[x] + pi[source]
		}
	}
	return dist, pred
}

// walkPath reconstructs the vertex sequence between source and target using
// a predecessor array built by forwardSSSP/backwardSSSP. reverse must be
// true for a forwardSSSP-produced pred (yields source..target after an
// internal reversal) and false for a backwardSSSP-produced pred (pred
// already walks target-to-source -- here meaning from..to -- in the
// original edge direction). Returns nil if target is unreachable from
// source.
func walkPath(pred []int, from, to int, reverse bool) []int {
	if from == to {
		return []int{from}
	}
	var walked []int
	x := from
	for {
		if x < 0 {
			return nil
		}
		walked = append(walked, x)
		if x == to {
			break
		}
		x = pred[x]
	}
	if reverse {
		for i, j := 0, len(walked)-1; i < j; i, j = i+1, j-1 {
			walked[i], walked[j] = walked[j], walked[i]
		}
	}
	return walked
}

// edgesAlong converts a vertex path into the literals of the strongest
// active edge on each consecutive pair (glossary: "strongest_for_pair").
func (g *Graph) edgesAlong(path []int) []Literal {
	if len(path) < 2 {
		return nil
	}
	lits := make([]Literal, 0, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		e := g.strongestEdge(path[i], path[i+1])
		if e == nil {
			continue
		}
		lits = append(lits, e.lit)
	}
	return lits
}
