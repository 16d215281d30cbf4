package bptree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNaturalOrderInts(t *testing.T) {
	cmp := NaturalOrder[int]()
	assert.Negative(t, cmp(1, 2))
	assert.Positive(t, cmp(2, 1))
	assert.Zero(t, cmp(1, 1))
}

func TestNaturalOrderStrings(t *testing.T) {
	cmp := NaturalOrder[string]()
	assert.Negative(t, cmp("a", "b"))
	assert.Positive(t, cmp("b", "a"))
	assert.Zero(t, cmp("a", "a"))
}
