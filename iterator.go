package bptree

// Cursor is a stateful, resumable ordered traversal over a Tree: a
// generator-style sequence rendered as an explicit struct per spec §9,
// since Go has no coroutine primitive to express it the way the
// reference implementation does.
//
// A Cursor captures the tree's mutation counter when created. Advance
// re-checks it before yielding each element; the first Advance call after
// the tree has been mutated fails with ErrCollectionModified and the
// cursor is then permanently done: later Advance calls return ok=false
// with a nil error. Callers must obtain a fresh Cursor, per spec §4.7
// and §7.
type Cursor[K any, V any] struct {
	tree     *Tree[K, V]
	leaf     *node[K, V]
	slot     int
	observed uint64
	done     bool
}

// Cursor returns a new traversal starting at the smallest key, found by
// descending the left spine from the root to the leftmost leaf.
func (t *Tree[K, V]) Cursor() *Cursor[K, V] {
	leaf := t.root
	for leaf != nil && leaf.kind == internalKind {
		leaf = leaf.children[0]
	}
	return &Cursor[K, V]{tree: t, leaf: leaf, observed: t.mutation}
}

// Advance yields the next key/value pair in ascending order. ok is false
// once the traversal is exhausted (not an error); err is
// ErrCollectionModified if the tree changed since the cursor was
// created or since the last Advance.
func (c *Cursor[K, V]) Advance() (key K, value V, ok bool, err error) {
	if c.done {
		return
	}
	if c.observed != c.tree.mutation {
		c.done = true
		err = ErrCollectionModified
		return
	}
	for c.leaf != nil && c.slot >= c.leaf.used {
		c.leaf = c.leaf.next
		c.slot = 0
	}
	if c.leaf == nil {
		c.done = true
		return
	}
	key, value = c.leaf.keys[c.slot], c.leaf.values[c.slot]
	ok = true
	c.slot++
	return
}

// Each drains the cursor, calling fn for every remaining pair in
// ascending order. It stops early, without error, if fn returns false,
// or immediately on ErrCollectionModified.
func (c *Cursor[K, V]) Each(fn func(key K, value V) bool) error {
	for {
		k, v, ok, err := c.Advance()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if !fn(k, v) {
			return nil
		}
	}
}
