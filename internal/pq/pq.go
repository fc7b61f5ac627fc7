package pq

import (
	"container/heap"
	"math"
)

// Key is a priority in the lexicographic (real, strict-credit) realization
// spec.md §9 resolves on: a value conceptually equal to W − S·ε for an
// infinitesimal ε > 0. S counts how many Strict edges were crossed to reach
// this key, so a cumulative sum that is zero in plain real terms but crossed
// at least one Strict edge still compares as negative against the zero Key
// (spec §4.E step 4's negative-cycle check needs exactly this to catch a
// zero-weight cycle made infeasible by a single Strict edge).
type Key struct {
	W float64
	S int64
}

// Of wraps a plain real value with zero strict-credit, for callers that
// never cross Strict edges in their own accounting (e.g. Johnson-reweighted
// shortest paths over an already-consistent graph).
func Of(w float64) Key { return Key{W: w} }

// Less orders Keys the way W − S·ε would order for ε → 0+: ascending W,
// ties broken by descending S (more strict credit is more negative).
func (a Key) Less(b Key) bool {
	if a.W != b.W {
		return a.W < b.W
	}
	return a.S > b.S
}

// Cutoff is the sentinel priority that marks a key as logically absent
// from the queue. Priority returns Cutoff for ids that were never inserted
// or have since been removed.
var Cutoff = Key{W: math.Inf(1)}

// item is one entry in the backing heap.
type item struct {
	id       int
	priority Key
	index    int // position in the heap slice, -1 when not present
}

// innerHeap implements heap.Interface over *item.
type innerHeap []*item

func (h innerHeap) Len() int { return len(h) }

func (h innerHeap) Less(i, j int) bool { return h[i].priority.Less(h[j].priority) }

func (h innerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *innerHeap) Push(x interface{}) {
	it := x.(*item)
	it.index = len(*h)
	*h = append(*h, it)
}

func (h *innerHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*h = old[:n-1]
	return it
}

// PQ is a mutable min-priority map from vertex id to priority.
//
// Zero value is not usable; construct with New. Ids range over [0, n) and
// are stored in a dense slice alongside the backing heap, so membership and
// priority lookups are O(1) and InsertOrDecrease/Remove are O(log n).
type PQ struct {
	h    innerHeap
	byID []*item // byID[id] == nil when id is absent
}

// New returns an empty PQ sized for vertex ids in [0, n).
func New(n int) *PQ {
	return &PQ{
		h:    make(innerHeap, 0, n),
		byID: make([]*item, n),
	}
}

// Len reports how many ids currently have a finite priority.
func (q *PQ) Len() int { return len(q.h) }

// Empty reports whether the queue holds no ids.
func (q *PQ) Empty() bool { return len(q.h) == 0 }

// Has reports whether id currently has a priority in the queue.
func (q *PQ) Has(id int) bool { return q.byID[id] != nil }

// Priority returns id's current priority, or Cutoff if id is absent.
func (q *PQ) Priority(id int) Key {
	if it := q.byID[id]; it != nil {
		return it.priority
	}
	return Cutoff
}

// InsertOrDecrease sets id's priority to p if id is absent, or if id is
// present with a priority strictly greater than p. Inserting a higher
// priority than the current one is a no-op (this is decrease-key, not
// assign-key).
func (q *PQ) InsertOrDecrease(id int, p Key) {
	if it := q.byID[id]; it != nil {
		if p.Less(it.priority) {
			it.priority = p
			heap.Fix(&q.h, it.index)
		}
		return
	}
	it := &item{id: id, priority: p}
	q.byID[id] = it
	heap.Push(&q.h, it)
}

// PeekMin returns the id with the smallest priority without removing it.
// ok is false when the queue is empty.
func (q *PQ) PeekMin() (id int, priority Key, ok bool) {
	if len(q.h) == 0 {
		return 0, Cutoff, false
	}
	top := q.h[0]
	return top.id, top.priority, true
}

// ExtractMin removes and returns the id with the smallest priority.
// ok is false when the queue is empty.
func (q *PQ) ExtractMin() (id int, priority Key, ok bool) {
	if len(q.h) == 0 {
		return 0, Cutoff, false
	}
	it := heap.Pop(&q.h).(*item)
	q.byID[it.id] = nil
	return it.id, it.priority, true
}

// Remove deletes id from the queue if present. No-op otherwise.
func (q *PQ) Remove(id int) {
	it := q.byID[id]
	if it == nil {
		return
	}
	heap.Remove(&q.h, it.index)
	q.byID[id] = nil
}
