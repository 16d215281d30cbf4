package bptree

import (
	"errors"
	"fmt"
)

// Sentinel errors for the operations in this package. Use errors.Is to
// test for a specific kind; the wrapped detail (key, index, ...) is for
// humans, not for programmatic matching.
var (
	// ErrDuplicateKey is returned by Add when the key is already present.
	ErrDuplicateKey = errors.New("bptree: duplicate key")

	// ErrKeyNotFound is returned by Get when the key is absent.
	ErrKeyNotFound = errors.New("bptree: key not found")

	// ErrOutOfRange is returned by EntryAt and indexed view access when
	// the index is negative or >= Len().
	ErrOutOfRange = errors.New("bptree: index out of range")

	// ErrBadArgument is returned by New given a nil comparator, a nil
	// entries slice (WithEntries), or a capacity below 3 (WithCapacities).
	ErrBadArgument = errors.New("bptree: bad argument")

	// ErrCollectionModified is returned by Cursor.Advance once the tree
	// has been structurally or value-mutated since the cursor began.
	ErrCollectionModified = errors.New("bptree: collection modified during traversal")

	// ErrReadOnly is returned by every mutator on Keys/Values views.
	ErrReadOnly = errors.New("bptree: view is read-only")

	// ErrStructuralInvariant is returned by Validate when a node's stored
	// cardinality disagrees with the bottom-up recomputation.
	ErrStructuralInvariant = errors.New("bptree: structural invariant violated")
)

func errDuplicateKey[K any](key K) error {
	return fmt.Errorf("bptree: key %v: %w", key, ErrDuplicateKey)
}

func errKeyNotFound[K any](key K) error {
	return fmt.Errorf("bptree: key %v: %w", key, ErrKeyNotFound)
}

func errOutOfRange(index, count int) error {
	return fmt.Errorf("bptree: index %d (len %d): %w", index, count, ErrOutOfRange)
}

func errStructuralInvariant(detail string) error {
	return fmt.Errorf("bptree: %s: %w", detail, ErrStructuralInvariant)
}

func wrapBadArgument(detail string) error {
	return fmt.Errorf("bptree: %s: %w", detail, ErrBadArgument)
}
