package difflog

import "fmt"

// Justification splits a literal's support into the Assigned literals
// directly responsible for it ("givens") and the intermediate Consequence
// literals unrolled along the way ("deductions"), per spec §4.H.
type Justification struct {
	Target     Literal
	Givens     []Literal
	Deductions []Literal
}

// Justify recursively unrolls p's Consequence chain into its Assigned
// support. Returns ErrInternalUnassigned if p's edge is currently
// Unassigned (nothing to justify), and ErrInternalCycle if the Consequence
// chain is not acyclic -- an invariant the algorithm relies on but does not
// assume (spec §9 design note).
func (e *Engine) Justify(p Literal) (Justification, error) {
	rec, ok := e.g.edgeForLiteral(p)
	if !ok {
		return Justification{}, fmt.Errorf("%w: %+v", ErrUnknownLiteral, p)
	}

	seen := make(map[*edgeRecord]bool)
	var givens, deductions []Literal
	if err := e.unroll(rec, seen, &givens, &deductions); err != nil {
		return Justification{}, err
	}
	return Justification{Target: p, Givens: givens, Deductions: deductions}, nil
}

// unroll walks rec's support chain depth-first, accumulating Assigned
// literals into givens and every intermediate Consequence literal into
// deductions. seen guards against cycles.
func (e *Engine) unroll(rec *edgeRecord, seen map[*edgeRecord]bool, givens, deductions *[]Literal) error {
	switch rec.status {
	case Unassigned:
		return fmt.Errorf("%w: %+v", ErrInternalUnassigned, rec.lit)
	case Assigned:
		*givens = append(*givens, rec.lit)
		return nil
	case Consequence:
		if seen[rec] {
			return fmt.Errorf("%w: %+v", ErrInternalCycle, rec.lit)
		}
		seen[rec] = true
		*deductions = append(*deductions, rec.lit)
		for _, supportLit := range rec.cons {
			supportRec, ok := e.g.edgeForLiteral(supportLit)
			if !ok {
				return fmt.Errorf("%w: %+v", ErrUnknownLiteral, supportLit)
			}
			if err := e.unroll(supportRec, seen, givens, deductions); err != nil {
				return err
			}
		}
		delete(seen, rec)
		return nil
	default:
		return fmt.Errorf("%w: unrecognized edge status", ErrInternalUnassigned)
	}
}

// Equality is one Nelson-Oppen shared-term equality discovered via NO
// propagation (spec §5): two shared terms are forced equal whenever both
// directed zero-weight bounds between them are active.
type Equality struct {
	X, Y string
}

// Propagations reports every pairwise equality among shared that is
// currently entailed: for x, y in shared, x=y holds iff the strongest active
// edges x→y and y→x both exist, are NonStrict, and each have weight zero
// (spec §5, "NO equality soundness").
func (e *Engine) Propagations(shared []string) []Equality {
	var out []Equality
	for i := 0; i < len(shared); i++ {
		ui, ok := e.vt.lookup(shared[i])
		if !ok {
			continue
		}
		for j := i + 1; j < len(shared); j++ {
			vj, ok := e.vt.lookup(shared[j])
			if !ok {
				continue
			}
			fwd := e.g.strongestEdge(ui, vj)
			bwd := e.g.strongestEdge(vj, ui)
			if fwd == nil || bwd == nil {
				continue
			}
			if fwd.weight == 0 && bwd.weight == 0 && fwd.strict == NonStrict && bwd.strict == NonStrict {
				out = append(out, Equality{X: shared[i], Y: shared[j]})
			}
		}
	}
	return out
}
