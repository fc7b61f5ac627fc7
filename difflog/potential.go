package difflog

// potential is the witness function π : V → ℝ of spec §4.D, stored as a
// flat array of doubles indexed by vertex id. π(0) (the zero vertex) starts
// at 0 and is never explicitly pinned back to 0 afterwards; every reported
// value is meaningful relative to π(0), per spec invariant 4.
type potential []float64

func newPotential(n int) potential {
	return make(potential, n)
}

// clone returns an independent copy, used both for the trail's pre-push
// snapshot and for the mutable π′ scratch copy of the Cotton-Maler update.
func (p potential) clone() potential {
	cp := make(potential, len(p))
	copy(cp, p)
	return cp
}
