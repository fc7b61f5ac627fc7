package difflog

import (
	"fmt"
	"math"

	"github.com/autotaker/csisat/internal/pq"
)

// engineStatus is the coarse Sat/UnSat state of an Engine.
type engineStatus int

const (
	statusSat engineStatus = iota
	statusUnsat
)

// unsatInfo records why the engine transitioned to UnSat: the triggering
// literal and the negative-cycle witness path (spec §4.E step 5, §4.H
// unsat_core).
type unsatInfo struct {
	trigger Literal
	path    []Literal
}

// Engine is the incremental DL solver of spec §6: Create/Push/Pop/IsSat,
// plus theory propagation and unsat-core extraction.
type Engine struct {
	domain Domain
	vt     *vertexTable
	atoms  []Atom
	g      *Graph
	pi     potential
	trail  []*trailFrame
	status engineStatus
	unsat  *unsatInfo
}

// Create materializes the full dormant edge graph for atoms (spec §6).
// domain selects Integer or Real semantics. Returns ErrMalformedAtom for
// any atom not reducible to (kind, u, v, c).
func Create(domain Domain, atoms []Atom) (*Engine, error) {
	vt := newVertexTable()
	for _, a := range atoms {
		if a.X == "" {
			return nil, fmt.Errorf("%w: atom has no left-hand variable", ErrMalformedAtom)
		}
		vt.intern(a.X)
		vt.intern(a.Y)
	}
	n := vt.size()
	g := newGraph(domain, n)

	for i, a := range atoms {
		norm, err := normalize(a, domain, vt, false)
		if err != nil {
			return nil, err
		}
		lit := Literal{Atom: AtomID(i), Neg: false}
		switch norm.rel {
		case LessEq:
			g.insertEdge(norm.u, norm.v, norm.c, NonStrict, lit)
			g.insertEdge(norm.v, norm.u, -norm.c, Strict, lit.Negate())
		case LessStrict:
			g.insertEdge(norm.u, norm.v, norm.c, Strict, lit)
			g.insertEdge(norm.v, norm.u, -norm.c, NonStrict, lit.Negate())
		case Equal:
			g.insertEdge(norm.u, norm.v, norm.c, NonStrict, lit)
			g.insertEdge(norm.v, norm.u, -norm.c, NonStrict, lit)
		default:
			return nil, fmt.Errorf("%w: unrecognized relation", ErrMalformedAtom)
		}
	}

	return &Engine{
		domain: domain,
		vt:     vt,
		atoms:  atoms,
		g:      g,
		pi:     newPotential(n),
		status: statusSat,
	}, nil
}

// IsSat reports whether the engine is currently in the Sat state.
func (e *Engine) IsSat() bool { return e.status == statusSat }

// Push asserts literal p, previously materialized at Create, transitioning
// the engine from Sat to Sat (true) or UnSat (false). Precondition: the
// engine is Sat.
func (e *Engine) Push(p Literal) (bool, error) {
	if e.status != statusSat {
		return false, ErrNotSat
	}
	edges, ok := e.g.edgesForLiteralSet(p)
	if !ok {
		return false, fmt.Errorf("%w: %+v", ErrUnknownLiteral, p)
	}

	// Idempotence (spec §4.E step 2): if every parallel edge carrying this
	// literal is already active, this is a pure re-push; still consume one
	// trail frame so push/pop call counts stay 1:1 (spec §8 property 3).
	allActive := true
	for _, rec := range edges {
		if rec.status == Unassigned {
			allActive = false
			break
		}
	}
	frame := &trailFrame{lit: p, piFrom: e.pi.clone()}
	if allActive {
		e.trail = append(e.trail, frame)
		return true, nil
	}

	for _, rec := range edges {
		if rec.status != Unassigned {
			continue // already active from a parallel sub-edge (Equal's two directions)
		}
		ok := e.pushOne(rec, frame)
		if !ok {
			e.status = statusUnsat
			e.unsat = &unsatInfo{trigger: p, path: frame.negCyclePath}
			e.trail = append(e.trail, frame)
			return false, nil
		}
	}
	e.trail = append(e.trail, frame)
	return true, nil
}

// pushOne performs the Cotton-Maler update for exactly one directed edge
// (spec §4.E steps 3-6). Returns false (and records the negative-cycle
// witness on frame) on contradiction.
func (e *Engine) pushOne(rec *edgeRecord, frame *trailFrame) bool {
	u, v := rec.u, rec.v

	// Step 3: status flips.
	frame.setStatus(rec, Assigned, nil)
	for _, other := range e.g.pairs[u][v] {
		if other == rec || other.status != Unassigned {
			continue
		}
		if weaker(other.weight, other.strict, rec.weight, rec.strict) {
			frame.setStatus(other, Consequence, []Literal{rec.lit})
		}
	}

	// Step 4: potential update. The repair key is a pq.Key, not a plain
	// float: a cumulative path that is zero in real terms but crossed a
	// Strict edge is still infeasible (spec §9's lexicographic
	// (weight, strictness) realization), and a naive float comparison would
	// miss exactly that case.
	gammaV := pq.Key{W: e.pi[u] + rec.weight - e.pi[v], S: strictCredit(rec.strict)}
	if !gammaV.Less(pq.Key{}) {
		// Already satisfied by the current witness; no repair needed.
		e.propagateConsequences(rec, frame)
		return true
	}

	n := e.g.n
	piPrime := e.pi.clone()
	fixed := make([]bool, n)
	q := pq.New(n)
	q.InsertOrDecrease(v, gammaV)

	negCycle := false
	for !q.Empty() {
		s, key, _ := q.PeekMin()
		if !key.Less(pq.Key{}) {
			break
		}
		q.ExtractMin()
		piPrime[s] = e.pi[s] + key.W
		fixed[s] = true
		if s == u {
			negCycle = true
			break
		}
		e.g.activeOutEdges(s, func(t int, edgeE *edgeRecord) {
			if fixed[t] {
				return
			}
			newKey := pq.Key{W: piPrime[s] + edgeE.weight - e.pi[t], S: key.S + strictCredit(edgeE.strict)}
			if newKey.Less(q.Priority(t)) {
				q.InsertOrDecrease(t, newKey)
			}
		})
	}

	if negCycle {
		_, pred := forwardSSSP(e.g, e.pi, v)
		path := walkPath(pred, u, v, true)
		witness := e.g.edgesAlong(path)
		witness = append(witness, rec.lit)
		frame.negCyclePath = witness
		return false
	}

	for s := 0; s < n; s++ {
		if fixed[s] {
			e.pi[s] = piPrime[s]
		}
	}
	e.propagateConsequences(rec, frame)
	return true
}

// propagateConsequences implements T-propagation (spec §4.E step 6): after
// committing edge u→v weight c, any still-Unassigned Strict edge i→j with
// weight d such that dist_to_u(i) + c + dist_from_v(j) < d is entailed by
// the conjunction now in force and is flipped to Consequence. A path whose
// sum equals d only entails the non-strict bound, so it flips nothing; the
// strictness of the path's own edges is not tracked, so an equal-sum path
// that crosses a Strict edge is not propagated either. Per spec §9's
// resolved open question, the flip is committed back into the row (not
// just returned), so later Justify calls see it.
func (e *Engine) propagateConsequences(rec *edgeRecord, frame *trailFrame) {
	u, v, c := rec.u, rec.v, rec.weight
	distToU, predToU := backwardSSSP(e.g, e.pi, u)
	distFromV, predFromV := forwardSSSP(e.g, e.pi, v)

	for i := 0; i < e.g.n; i++ {
		if math.IsInf(distToU[i], 1) {
			continue
		}
		for j := 0; j < e.g.n; j++ {
			if math.IsInf(distFromV[j], 1) {
				continue
			}
			for _, cand := range e.g.pairs[i][j] {
				if cand.status != Unassigned || cand.strict != Strict {
					continue
				}
				if distToU[i]+c+distFromV[j] < cand.weight {
					pathToU := e.g.edgesAlong(walkPath(predToU, i, u, false))
					pathFromV := e.g.edgesAlong(walkPath(predFromV, j, v, true))
					witness := make([]Literal, 0, 1+len(pathToU)+len(pathFromV))
					witness = append(witness, rec.lit)
					witness = append(witness, pathToU...)
					witness = append(witness, pathFromV...)
					frame.setStatus(cand, Consequence, witness)
				}
			}
		}
	}
}

// Pop undoes the most recent Push. Precondition: the trail is non-empty.
func (e *Engine) Pop() error {
	if len(e.trail) == 0 {
		return ErrEmptyTrail
	}
	n := len(e.trail) - 1
	frame := e.trail[n]
	e.trail = e.trail[:n]
	frame.undo()
	e.pi = frame.piFrom
	e.status = statusSat
	e.unsat = nil
	return nil
}
