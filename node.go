package bptree

import "sort"

// findKey returns the index at which key sits (or would be inserted) in
// an ascending slice, via binary search, matching the teacher's
// items[T].find in shape but expressed over a three-way Comparator
// instead of a strict-less predicate.
func findKey[K any](cmp Comparator[K], keys []K, key K) (index int, found bool) {
	i := sort.Search(len(keys), func(i int) bool {
		return cmp(key, keys[i]) < 0
	})
	if i > 0 && cmp(keys[i-1], key) == 0 {
		return i - 1, true
	}
	return i, false
}

// kind tags a node as one of the two B+ tree node shapes. Every dispatch
// site in this package switches on kind exhaustively rather than probing
// fields (e.g. "len(children) == 0") to decide what a node is.
type kind uint8

const (
	leafKind kind = iota
	internalKind
)

// node is a tagged-variant B+ tree node. Exactly one of the leaf-only
// fields (values, next) or the internal-only field (children) is
// meaningful at a time, selected by kind; the other is left zero. This
// keeps both shapes inline in a single allocation instead of routing
// through an interface and a second allocation per node.
type node[K any, V any] struct {
	kind  kind
	used  int
	total int
	keys  []K

	// leaf-only
	values []V
	next   *node[K, V]

	// internal-only
	children []*node[K, V]
}

func newLeaf[K any, V any](capLeaf int) *node[K, V] {
	return &node[K, V]{
		kind:   leafKind,
		keys:   make([]K, 0, capLeaf),
		values: make([]V, 0, capLeaf),
	}
}

func newInternal[K any, V any](capInternal int) *node[K, V] {
	return &node[K, V]{
		kind:     internalKind,
		keys:     make([]K, 0, capInternal),
		children: make([]*node[K, V], 0, capInternal),
	}
}

// insertKeyAt shifts keys[index:] right by one and writes key at index.
func insertKeyAt[K any](keys []K, index int, key K) []K {
	var zero K
	keys = append(keys, zero)
	copy(keys[index+1:], keys[index:])
	keys[index] = key
	return keys
}

// removeKeyAt removes keys[index], pulling the remainder left, and clears
// the vacated tail slot so it does not keep a removed key's memory alive.
func removeKeyAt[K any](keys []K, index int) []K {
	copy(keys[index:], keys[index+1:])
	var zero K
	keys[len(keys)-1] = zero
	return keys[:len(keys)-1]
}

func insertValueAt[V any](values []V, index int, value V) []V {
	var zero V
	values = append(values, zero)
	copy(values[index+1:], values[index:])
	values[index] = value
	return values
}

func removeValueAt[V any](values []V, index int) []V {
	copy(values[index:], values[index+1:])
	var zero V
	values[len(values)-1] = zero
	return values[:len(values)-1]
}

func insertChildAt[K any, V any](children []*node[K, V], index int, child *node[K, V]) []*node[K, V] {
	children = append(children, nil)
	copy(children[index+1:], children[index:])
	children[index] = child
	return children
}

// minKey descends the left spine of n's subtree to find its minimum key,
// used to compute separators and to fix the internal-node sentinel at
// slot 0 (spec §9). A leaf left at zero entries by an unrebalanced delete
// (spec §9's accepted underflow behavior) has no key to report; minKey
// returns the zero value of K in that case rather than panicking.
func minKey[K any, V any](n *node[K, V]) K {
	for n.kind == internalKind {
		n = n.children[0]
	}
	if n.used == 0 {
		var zero K
		return zero
	}
	return n.keys[0]
}

// nodeGet, nodeAdd, nodeSet and nodeRemove are the exhaustive dispatch
// points between the leaf and internal variants of node, used by every
// caller that doesn't already know which shape it holds (the tree
// façade, and internal nodes recursing into their children).

func nodeGet[K any, V any](cmp Comparator[K], n *node[K, V], key K) (V, bool) {
	switch n.kind {
	case leafKind:
		return leafGet(cmp, n, key)
	case internalKind:
		return internalGet(cmp, n, key)
	default:
		panic("bptree: unreachable node kind")
	}
}

func nodeAdd[K any, V any](cmp Comparator[K], capLeaf, capInternal int, n *node[K, V], key K, value V) (*node[K, V], error) {
	switch n.kind {
	case leafKind:
		return leafAdd(cmp, capLeaf, n, key, value)
	case internalKind:
		return internalAdd(cmp, capLeaf, capInternal, n, key, value)
	default:
		panic("bptree: unreachable node kind")
	}
}

func nodeSet[K any, V any](cmp Comparator[K], capLeaf, capInternal int, n *node[K, V], key K, value V) (*node[K, V], bool) {
	switch n.kind {
	case leafKind:
		return leafSet(cmp, capLeaf, n, key, value)
	case internalKind:
		return internalSet(cmp, capLeaf, capInternal, n, key, value)
	default:
		panic("bptree: unreachable node kind")
	}
}

func nodeRemove[K any, V any](cmp Comparator[K], n *node[K, V], key K) bool {
	switch n.kind {
	case leafKind:
		return leafRemove(cmp, n, key)
	case internalKind:
		return internalRemove(cmp, n, key)
	default:
		panic("bptree: unreachable node kind")
	}
}
