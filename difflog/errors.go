package difflog

import "errors"

// Sentinel errors returned by the difflog engine. Callers must use
// errors.Is to branch on semantics; sentinels are never wrapped with
// formatted strings at the definition site (wrap with %w at call sites
// instead, per lvlath's error convention).
var (
	// ErrMalformedAtom indicates an atom did not reduce to the supported
	// shape x + (-1)*y ⟨rel⟩ c or a single variable ⟨rel⟩ c. An atom with
	// no left-hand variable, including a bare constant, is rejected with it.
	ErrMalformedAtom = errors.New("difflog: atom is not a valid difference-logic literal")

	// ErrUnknownVariable indicates a literal referenced a variable name
	// absent from the atom set given at Create.
	ErrUnknownVariable = errors.New("difflog: variable not present at create time")

	// ErrUnknownLiteral indicates a literal referenced an atom index outside
	// the set materialized at Create, or negated an Equal atom (which has no
	// negation edge by construction).
	ErrUnknownLiteral = errors.New("difflog: literal not recognized by this engine")

	// ErrNotSat indicates push was attempted while the engine is in the
	// UnSat state. Precondition of push is "engine is in Sat".
	ErrNotSat = errors.New("difflog: push requires the engine to be Sat")

	// ErrNotUnsat indicates unsat_core/unsat_core_with_info was called while
	// the engine is not in the UnSat state.
	ErrNotUnsat = errors.New("difflog: unsat core requested while engine is Sat")

	// ErrEmptyTrail indicates pop was called with no trail frame to undo.
	ErrEmptyTrail = errors.New("difflog: pop on an empty trail")

	// ErrInternalCycle indicates justify unrolled a Consequence chain back
	// into a literal it had already started justifying -- a violation of
	// the acyclicity invariant on Consequence edges (spec §3.3), and a bug
	// either in this engine or in how the caller is using it.
	ErrInternalCycle = errors.New("difflog: cyclic Consequence justification")

	// ErrInternalUnassigned indicates justify reached an edge whose status
	// is still Unassigned while unrolling a Consequence chain.
	ErrInternalUnassigned = errors.New("difflog: justify reached an unassigned edge")
)
