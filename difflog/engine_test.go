package difflog_test

import (
	"errors"
	"testing"

	"github.com/autotaker/csisat/difflog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// le builds a "x - y <= c" atom; y == "" is a unary bound against the zero
// vertex.
func le(x, y string, c float64) difflog.Atom {
	return difflog.Atom{X: x, Y: y, Rel: difflog.LessEq, C: c}
}

func lt(x, y string, c float64) difflog.Atom {
	return difflog.Atom{X: x, Y: y, Rel: difflog.LessStrict, C: c}
}

func eq(x, y string, c float64) difflog.Atom {
	return difflog.Atom{X: x, Y: y, Rel: difflog.Equal, C: c}
}

func lit(i int) difflog.Literal { return difflog.Literal{Atom: difflog.AtomID(i)} }

func neg(i int) difflog.Literal { return lit(i).Negate() }

// A chain x-y<=1, y-z<=2 plus the looser x-z<=10 stays Sat.
func TestScenario_ChainStaysSat(t *testing.T) {
	atoms := []difflog.Atom{
		le("x", "y", 1),
		le("y", "z", 2),
		le("x", "z", 10),
	}
	e, err := difflog.Create(difflog.Real, atoms)
	require.NoError(t, err)

	for i := range atoms {
		ok, err := e.Push(lit(i))
		require.NoError(t, err)
		assert.True(t, ok)
	}
	assert.True(t, e.IsSat())
}

// A direct contradiction (x - y <= 1 and its negation) is UnSat.
func TestScenario_DirectContradictionIsUnsat(t *testing.T) {
	atoms := []difflog.Atom{le("x", "y", 1)}
	e, err := difflog.Create(difflog.Real, atoms)
	require.NoError(t, err)

	ok, err := e.Push(lit(0))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = e.Push(neg(0))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, e.IsSat())
}

// S1 (spec §8): x-y<=3, y-z<=2, z-x<=-6 is a negative cycle (sum -1); the
// third push fails and the core is all three literals.
func TestScenario_S1_NegativeCycleIsUnsat(t *testing.T) {
	atoms := []difflog.Atom{
		le("x", "y", 3),
		le("y", "z", 2),
		le("z", "x", -6),
	}
	e, err := difflog.Create(difflog.Real, atoms)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		ok, err := e.Push(lit(i))
		require.NoError(t, err)
		require.True(t, ok)
	}
	ok, err := e.Push(lit(2))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, e.IsSat())

	core, err := e.UnsatCore()
	require.NoError(t, err)
	assert.ElementsMatch(t, []difflog.Literal{lit(0), lit(1), lit(2)}, core)
}

// invariant 2 (round trip): pop after push restores Sat state and the prior
// push/pop call counts stay 1:1.
func TestRoundTrip_PopUndoesPush(t *testing.T) {
	atoms := []difflog.Atom{
		le("x", "y", 1),
		le("y", "x", -3), // contradicts atom 0 once both asserted
	}
	e, err := difflog.Create(difflog.Real, atoms)
	require.NoError(t, err)

	ok, err := e.Push(lit(0))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = e.Push(lit(1))
	require.NoError(t, err)
	require.False(t, ok)
	require.False(t, e.IsSat())

	require.NoError(t, e.Pop())
	assert.True(t, e.IsSat())

	require.NoError(t, e.Pop())
	assert.True(t, e.IsSat())

	err = e.Pop()
	assert.ErrorIs(t, err, difflog.ErrEmptyTrail)
}

// invariant 3: pushing the same literal twice in a row is idempotent, and
// each push, the re-push included, costs exactly one pop to undo.
func TestIdempotentRePush(t *testing.T) {
	atoms := []difflog.Atom{le("x", "y", 1)}
	e, err := difflog.Create(difflog.Real, atoms)
	require.NoError(t, err)

	ok, err := e.Push(lit(0))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = e.Push(lit(0))
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, e.Pop())
	assert.True(t, e.IsSat())
	require.NoError(t, e.Pop())
	assert.True(t, e.IsSat())
	assert.ErrorIs(t, e.Pop(), difflog.ErrEmptyTrail)
}

// Pushing an unknown literal index is an error, not a panic.
func TestPush_UnknownLiteral(t *testing.T) {
	e, err := difflog.Create(difflog.Real, []difflog.Atom{le("x", "y", 1)})
	require.NoError(t, err)

	_, err = e.Push(lit(5))
	assert.ErrorIs(t, err, difflog.ErrUnknownLiteral)
}

// Equal atoms have no negation edge: pushing the negated form is rejected.
func TestPush_NegatedEqualIsUnknown(t *testing.T) {
	e, err := difflog.Create(difflog.Real, []difflog.Atom{eq("x", "y", 0)})
	require.NoError(t, err)

	_, err = e.Push(neg(0))
	assert.ErrorIs(t, err, difflog.ErrUnknownLiteral)
}

// A self-loop atom x - x <= c is Sat for c >= 0 and UnSat for c < 0.
func TestBoundary_SelfLoop(t *testing.T) {
	e, err := difflog.Create(difflog.Real, []difflog.Atom{le("x", "x", 0)})
	require.NoError(t, err)
	ok, err := e.Push(lit(0))
	require.NoError(t, err)
	assert.True(t, ok)

	e2, err := difflog.Create(difflog.Real, []difflog.Atom{le("x", "x", -1)})
	require.NoError(t, err)
	ok, err = e2.Push(lit(0))
	require.NoError(t, err)
	assert.False(t, ok)
}

// Integer domain: a Strict bound rewrites to a NonStrict one with the
// constant lowered by one; x - y < 1 becomes x - y <= 0, which together with
// y - x <= 0 stays Sat.
func TestIntegerDomain_StrictRewrite(t *testing.T) {
	atoms := []difflog.Atom{
		lt("x", "y", 1), // x - y < 1  =>  x - y <= 0 on integers
		le("y", "x", 0), // y - x <= 0
	}
	e, err := difflog.Create(difflog.Integer, atoms)
	require.NoError(t, err)

	ok, err := e.Push(lit(0))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = e.Push(lit(1))
	require.NoError(t, err)
	assert.True(t, ok) // x - y <= 0 and y - x <= 0 together force x == y, still Sat
}

// invariant 4 (propagation soundness): once a <= chain is pushed, the
// implied tighter bound is Consequence, not merely re-derivable.
func TestPropagation_FlipsImpliedStrictEdge(t *testing.T) {
	atoms := []difflog.Atom{
		le("x", "y", 1),
		le("y", "z", 1),
		lt("x", "z", 3), // implied: x - z <= 2 < 3, so x - z < 3 holds
	}
	e, err := difflog.Create(difflog.Real, atoms)
	require.NoError(t, err)

	ok, err := e.Push(lit(0))
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = e.Push(lit(1))
	require.NoError(t, err)
	require.True(t, ok)

	just, err := e.Justify(lit(2))
	require.NoError(t, err)
	assert.ElementsMatch(t, []difflog.Literal{lit(0), lit(1)}, just.Givens)
}

// S2 (spec §8) / invariant 6: a shared term is only reported equal when
// both directed zero-weight bounds are active.
func TestScenario_S2_DirectEqualityPropagation(t *testing.T) {
	atoms := []difflog.Atom{
		le("x", "y", 0),
		le("y", "x", 0),
	}
	e, err := difflog.Create(difflog.Real, atoms)
	require.NoError(t, err)

	assert.Empty(t, e.Propagations([]string{"x", "y"}))

	ok, err := e.Push(lit(0))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, e.Propagations([]string{"x", "y"}))

	ok, err = e.Push(lit(1))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []difflog.Equality{{X: "x", Y: "y"}}, e.Propagations([]string{"x", "y"}))
}

// invariant 1 (potential soundness): a three-edge cycle whose real-valued
// weights sum to exactly zero is still UnSat once one of its edges is
// Strict, even though the Strict edge sits two hops away from the push that
// closes the cycle (so the repair loop must carry the strict credit through
// more than one relaxation step, not just check the triggering edge).
func TestPush_ZeroWeightCycleWithStrictEdgeIsUnsat(t *testing.T) {
	atoms := []difflog.Atom{
		le("x", "y", 1),
		lt("y", "z", 1),
		le("z", "x", -2),
	}
	e, err := difflog.Create(difflog.Real, atoms)
	require.NoError(t, err)

	ok, err := e.Push(lit(0))
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = e.Push(lit(1))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = e.Push(lit(2))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, e.IsSat())
}

func TestCreate_RejectsBareConstant(t *testing.T) {
	_, err := difflog.Create(difflog.Real, []difflog.Atom{{X: "", Y: "", Rel: difflog.LessEq, C: 1}})
	assert.ErrorIs(t, err, difflog.ErrMalformedAtom)
}

func TestUnsatCore_RequiresUnsatState(t *testing.T) {
	e, err := difflog.Create(difflog.Real, []difflog.Atom{le("x", "y", 1)})
	require.NoError(t, err)
	_, err = e.UnsatCore()
	assert.True(t, errors.Is(err, difflog.ErrNotUnsat))
}

// S3 (spec §8): on the Integer domain, "x - y < 1" is internally "x - y <=
// 0"; combined with "y - x <= 0", pushing both returns true and the pair is
// reported equal.
func TestScenario_S3_IntegerStrictRewriteThenEquality(t *testing.T) {
	atoms := []difflog.Atom{
		lt("x", "y", 1),
		le("y", "x", 0),
	}
	e, err := difflog.Create(difflog.Integer, atoms)
	require.NoError(t, err)

	for i := range atoms {
		ok, err := e.Push(lit(i))
		require.NoError(t, err)
		require.True(t, ok)
	}
	assert.Equal(t, []difflog.Equality{{X: "x", Y: "y"}}, e.Propagations([]string{"x", "y"}))
}

// S4 (spec §8, step 3): a—b<=1, b—c<=1 entail a—c<=2. Asserting the tight
// bound a—c<=2 directly (not via the chain) flips the still-Unassigned,
// looser parallel edge a—c<=5 to Consequence.
func TestScenario_S4_WeakerParallelEdgeBecomesConsequence(t *testing.T) {
	atoms := []difflog.Atom{
		le("a", "b", 1),
		le("b", "c", 1),
		le("a", "c", 5), // weaker than the implied bound; left unpushed
		le("a", "c", 2), // the tight, implied bound
	}
	e, err := difflog.Create(difflog.Real, atoms)
	require.NoError(t, err)

	ok, err := e.Push(lit(0))
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = e.Push(lit(1))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = e.Push(lit(3))
	require.NoError(t, err)
	assert.True(t, ok)

	just, err := e.Justify(lit(2))
	require.NoError(t, err)
	assert.Contains(t, just.Givens, lit(3), "the weaker bound is entailed by the tighter one just asserted")
}

// S5 (spec §8): push x-y<=1, push y-x<=1, pop (undoing only the second
// push, per the trail's LIFO discipline), then push a tighter y-x<=-1 —
// compatible with the still-active x-y<=1 (forces x-y==1 exactly). Every
// push returns true.
func TestScenario_S5_PopThenReassertTighterBound(t *testing.T) {
	atoms := []difflog.Atom{
		le("x", "y", 1),
		le("y", "x", 1),
		le("y", "x", -1),
	}
	e, err := difflog.Create(difflog.Real, atoms)
	require.NoError(t, err)

	ok, err := e.Push(lit(0))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = e.Push(lit(1))
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, e.Pop())
	assert.True(t, e.IsSat())

	ok, err = e.Push(lit(2))
	require.NoError(t, err)
	assert.True(t, ok)
}

// S6 (spec §8): a diamond of four zero-weight bounds over x, y, z reports
// both entailed equalities and no spurious third one.
func TestScenario_S6_MultipleEqualitiesNoSpurious(t *testing.T) {
	atoms := []difflog.Atom{
		le("x", "y", 0),
		le("y", "x", 0),
		le("x", "z", 0),
		le("z", "x", 0),
	}
	e, err := difflog.Create(difflog.Real, atoms)
	require.NoError(t, err)

	for i := range atoms {
		ok, err := e.Push(lit(i))
		require.NoError(t, err)
		require.True(t, ok)
	}

	eqs := e.Propagations([]string{"x", "y", "z"})
	assert.ElementsMatch(t, []difflog.Equality{{X: "x", Y: "y"}, {X: "x", Y: "z"}}, eqs)
}
