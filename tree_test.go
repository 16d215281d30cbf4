package bptree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIntTree(t *testing.T) *Tree[int, string] {
	tr, err := NewOrdered[int, string]()
	require.NoError(t, err)
	return tr
}

func TestTreeAddAndGet(t *testing.T) {
	tr := newIntTree(t)
	require.NoError(t, tr.Add(3, "three"))
	require.NoError(t, tr.Add(1, "one"))
	require.NoError(t, tr.Add(2, "two"))

	v, err := tr.Get(2)
	require.NoError(t, err)
	assert.Equal(t, "two", v)

	assert.Equal(t, 3, tr.Len())
}

func TestTreeAddDuplicateFails(t *testing.T) {
	tr := newIntTree(t)
	require.NoError(t, tr.Add(1, "one"))

	err := tr.Add(1, "uno")
	require.ErrorIs(t, err, ErrDuplicateKey)

	// tree must be unchanged on failure
	v, err := tr.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "one", v)
	assert.Equal(t, 1, tr.Len())
}

func TestTreeGetMissing(t *testing.T) {
	tr := newIntTree(t)
	_, err := tr.Get(42)
	require.ErrorIs(t, err, ErrKeyNotFound)

	v, ok := tr.TryGet(42)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestTreeSetUpserts(t *testing.T) {
	tr := newIntTree(t)
	isNew := tr.Set(1, "one")
	assert.True(t, isNew)

	isNew = tr.Set(1, "uno")
	assert.False(t, isNew)

	v, err := tr.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "uno", v)
	assert.Equal(t, 1, tr.Len())
}

func TestTreeContainsKeyAndValue(t *testing.T) {
	tr := newIntTree(t)
	tr.Set(1, "one")
	tr.Set(2, "two")

	assert.True(t, tr.ContainsKey(1))
	assert.False(t, tr.ContainsKey(3))
	assert.True(t, tr.ContainsValue("two"))
	assert.False(t, tr.ContainsValue("three"))
}

func TestTreeRemove(t *testing.T) {
	tr := newIntTree(t)
	tr.Set(1, "one")
	tr.Set(2, "two")

	assert.True(t, tr.Remove(1))
	assert.False(t, tr.Remove(1))
	assert.False(t, tr.ContainsKey(1))
	assert.Equal(t, 1, tr.Len())
}

func TestTreeClear(t *testing.T) {
	tr := newIntTree(t)
	for i := 0; i < 50; i++ {
		tr.Set(i, "x")
	}
	tr.Clear()
	assert.Equal(t, 0, tr.Len())
	assert.False(t, tr.ContainsKey(10))
}

func TestTreeConstructionRejectsNilComparator(t *testing.T) {
	_, err := New[int, string](nil)
	require.ErrorIs(t, err, ErrBadArgument)
}

func TestTreeConstructionWithEntries(t *testing.T) {
	tr, err := NewOrdered(WithEntries([]Entry[int, string]{
		{Key: 1, Value: "one"},
		{Key: 2, Value: "two"},
	}))
	require.NoError(t, err)
	assert.Equal(t, 2, tr.Len())

	_, err = NewOrdered(WithEntries([]Entry[int, string]{
		{Key: 1, Value: "one"},
		{Key: 1, Value: "again"},
	}))
	require.ErrorIs(t, err, ErrDuplicateKey)
}

func TestTreeConstructionRejectsNilEntries(t *testing.T) {
	_, err := NewOrdered[int, string](WithEntries[int, string](nil))
	require.ErrorIs(t, err, ErrBadArgument)
}

func TestTreeConstructionRejectsSmallCapacities(t *testing.T) {
	_, err := NewOrdered[int, string](WithCapacities[int, string](2, 16))
	require.ErrorIs(t, err, ErrBadArgument)
}

func TestTreeForcesDepthGrowth(t *testing.T) {
	tr := newIntTree(t)
	for i := 0; i < 500; i++ {
		require.NoError(t, tr.Add(i, "x"))
	}
	require.NoError(t, tr.Validate())
	assert.Equal(t, 500, tr.Len())

	for i := 0; i < 500; i++ {
		assert.True(t, tr.ContainsKey(i))
	}
}

func TestTreeStringerSummary(t *testing.T) {
	tr := newIntTree(t)
	tr.Set(1, "one")
	assert.Equal(t, "bptree.Tree[1 entries]", tr.String())
}
