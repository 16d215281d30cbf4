package bptree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyViewReadsLiveState(t *testing.T) {
	tr := newIntTree(t)
	tr.Set(1, "one")
	tr.Set(2, "two")

	kv := tr.Keys()
	assert.Equal(t, 2, kv.Len())

	k, err := kv.At(1)
	require.NoError(t, err)
	assert.Equal(t, 2, k)

	assert.True(t, kv.Contains(1))
	assert.Equal(t, 0, kv.IndexOf(1))

	tr.Set(3, "three")
	assert.Equal(t, 3, kv.Len())
}

func TestKeyViewIsReadOnly(t *testing.T) {
	tr := newIntTree(t)
	kv := tr.Keys()

	require.ErrorIs(t, kv.Add(1), ErrReadOnly)
	require.ErrorIs(t, kv.Remove(1), ErrReadOnly)
	require.ErrorIs(t, kv.Clear(), ErrReadOnly)
}

func TestValueViewReadsLiveState(t *testing.T) {
	tr := newIntTree(t)
	tr.Set(1, "one")
	tr.Set(2, "two")

	vv := tr.Values()
	assert.Equal(t, 2, vv.Len())

	v, err := vv.At(0)
	require.NoError(t, err)
	assert.Equal(t, "one", v)

	assert.True(t, vv.Contains("two"))
}

func TestValueViewIsReadOnly(t *testing.T) {
	tr := newIntTree(t)
	vv := tr.Values()

	require.ErrorIs(t, vv.Add("x"), ErrReadOnly)
	require.ErrorIs(t, vv.Remove("x"), ErrReadOnly)
	require.ErrorIs(t, vv.Clear(), ErrReadOnly)
}

func TestValueViewCursor(t *testing.T) {
	tr := newIntTree(t)
	tr.Set(2, "two")
	tr.Set(1, "one")

	cur := tr.Values().Cursor()
	var got []string
	for {
		v, ok, err := cur.Advance()
		require.NoError(t, err)
		if !ok {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []string{"one", "two"}, got)
}
