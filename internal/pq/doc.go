// Package pq implements an indexed min-priority queue keyed by a dense
// integer id (a vertex id, in the difference-logic engine's case).
//
// Unlike a plain container/heap wrapper, every key tracks its own position
// in the backing slice, so InsertOrDecrease is a true O(log n) decrease-key
// operation instead of the lazy "push a duplicate and ignore stale pops"
// trick (compare dijkstra.nodePQ in the upstream graph library this engine
// borrows its heap plumbing from). Keys that have never been inserted, or
// that have been removed, report the queue's cutoff priority and read as
// logically absent.
//
// Priorities are Key, not a bare float64: a Strict edge tightens its bound
// by an infinitesimal, so a path that sums to zero in plain real terms but
// crossed a Strict edge still has to compare as negative. Key encodes that
// with a secondary strict-credit field rather than a floating epsilon
// constant.
package pq
