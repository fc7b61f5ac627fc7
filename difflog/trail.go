package difflog

// edgeDelta records one edge-status mutation so pop can reverse it exactly
// (spec §3: a trail frame records "the list of edge-status mutations
// performed, including Assigned and Consequence flips").
type edgeDelta struct {
	e          *edgeRecord
	prevStatus edgeStatus
	prevCons   []Literal
}

// trailFrame is one undo step: the literal asserted, a snapshot of π from
// immediately before the assertion, and every edge-status mutation the
// assertion performed. An Equal literal's two sub-edge flips are rolled
// into a single frame (spec §4.E step 1), so one pop always undoes exactly
// one push.
type trailFrame struct {
	lit    Literal
	piFrom potential
	deltas []edgeDelta
	// negCyclePath carries the negative-cycle witness literals when this
	// frame's push failed. Left nil on every successful push.
	negCyclePath []Literal
}

// setStatus mutates e's status/cons and records the pre-mutation values in
// frame so pop can restore them later.
func (f *trailFrame) setStatus(e *edgeRecord, status edgeStatus, cons []Literal) {
	f.deltas = append(f.deltas, edgeDelta{e: e, prevStatus: e.status, prevCons: e.cons})
	e.status = status
	e.cons = cons
}

// undo reverses every delta in the frame, in reverse order (later flips are
// undone first, though order is irrelevant here since each delta targets a
// distinct edge pointer and mutations don't compose across edges).
func (f *trailFrame) undo() {
	for i := len(f.deltas) - 1; i >= 0; i-- {
		d := f.deltas[i]
		d.e.status = d.prevStatus
		d.e.cons = d.prevCons
	}
}
