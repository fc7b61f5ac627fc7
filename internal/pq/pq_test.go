package pq_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/autotaker/csisat/internal/pq"
)

func TestEmptyQueue(t *testing.T) {
	q := pq.New(4)
	require.True(t, q.Empty())
	require.Equal(t, 0, q.Len())
	require.False(t, q.Has(0))
	require.Equal(t, pq.Cutoff, q.Priority(0))

	_, _, ok := q.PeekMin()
	require.False(t, ok)
	_, _, ok = q.ExtractMin()
	require.False(t, ok)
}

func TestInsertAndExtractOrder(t *testing.T) {
	q := pq.New(5)
	q.InsertOrDecrease(0, pq.Of(3.0))
	q.InsertOrDecrease(1, pq.Of(1.0))
	q.InsertOrDecrease(2, pq.Of(2.0))

	id, p, ok := q.PeekMin()
	require.True(t, ok)
	require.Equal(t, 1, id)
	require.Equal(t, pq.Of(1.0), p)

	var order []int
	for !q.Empty() {
		id, _, ok := q.ExtractMin()
		require.True(t, ok)
		order = append(order, id)
	}
	require.Equal(t, []int{1, 2, 0}, order)
}

func TestDecreaseKeyOnlyLowers(t *testing.T) {
	q := pq.New(2)
	q.InsertOrDecrease(0, pq.Of(5.0))
	q.InsertOrDecrease(0, pq.Of(10.0)) // higher priority: must be ignored
	require.Equal(t, pq.Of(5.0), q.Priority(0))

	q.InsertOrDecrease(0, pq.Of(1.0)) // lower: must apply
	require.Equal(t, pq.Of(1.0), q.Priority(0))
}

func TestRemove(t *testing.T) {
	q := pq.New(3)
	q.InsertOrDecrease(0, pq.Of(1.0))
	q.InsertOrDecrease(1, pq.Of(2.0))
	q.Remove(0)
	require.False(t, q.Has(0))
	require.Equal(t, 1, q.Len())

	id, _, ok := q.PeekMin()
	require.True(t, ok)
	require.Equal(t, 1, id)
}

func TestKeyLess_StrictCreditBreaksTie(t *testing.T) {
	zero := pq.Key{W: 0, S: 0}
	zeroWithStrictCredit := pq.Key{W: 0, S: 1}
	require.True(t, zeroWithStrictCredit.Less(zero), "a path that crossed a Strict edge must compare as negative even at equal real weight")
	require.False(t, zero.Less(zeroWithStrictCredit))
}
