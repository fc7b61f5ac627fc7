package difflog

// UnsatCore extracts a minimal-effort explanation of the current UnSat
// state: the Assigned literals that together close the negative cycle
// found during the triggering Push (spec §4.H). Returns ErrNotUnsat if the
// engine is currently Sat.
func (e *Engine) UnsatCore() ([]Literal, error) {
	if e.status != statusUnsat {
		return nil, ErrNotUnsat
	}

	seen := make(map[*edgeRecord]bool)
	var givens []Literal
	var deductions []Literal
	for _, lit := range e.unsat.path {
		rec, ok := e.g.edgeForLiteral(lit)
		if !ok {
			continue
		}
		if rec.status == Unassigned {
			// An Unassigned edge has no support chain to unroll; its literal
			// is taken into the core as given. The triggering literal does
			// not land here: pushOne marks its edge Assigned before the
			// repair loop runs.
			givens = append(givens, lit)
			continue
		}
		if err := e.unroll(rec, seen, &givens, &deductions); err != nil {
			return nil, err
		}
	}
	return dedupLiterals(givens), nil
}

// UnsatCoreInfo bundles the minimal core together with the full deduction
// chain that explains it, for callers that want the "why" and not just the
// "what".
type UnsatCoreInfo struct {
	Core       []Literal
	Deductions []Literal
}

// UnsatCoreWithInfo is UnsatCore plus the intermediate Consequence literals
// unrolled along the way.
func (e *Engine) UnsatCoreWithInfo() (UnsatCoreInfo, error) {
	if e.status != statusUnsat {
		return UnsatCoreInfo{}, ErrNotUnsat
	}
	seen := make(map[*edgeRecord]bool)
	var givens, deductions []Literal
	for _, lit := range e.unsat.path {
		rec, ok := e.g.edgeForLiteral(lit)
		if !ok {
			continue
		}
		if rec.status == Unassigned {
			givens = append(givens, lit)
			continue
		}
		if err := e.unroll(rec, seen, &givens, &deductions); err != nil {
			return UnsatCoreInfo{}, err
		}
	}
	return UnsatCoreInfo{Core: dedupLiterals(givens), Deductions: dedupLiterals(deductions)}, nil
}

func dedupLiterals(lits []Literal) []Literal {
	seen := make(map[Literal]bool, len(lits))
	out := make([]Literal, 0, len(lits))
	for _, l := range lits {
		if seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}
