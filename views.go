package bptree

// KeyView is a read-only, live projection of a Tree's keys, per spec
// §4.8. It holds only a back-reference to the tree; every call reads
// live state.
type KeyView[K any, V any] struct {
	tree *Tree[K, V]
}

// Len returns the number of keys, same as the owning Tree's Len.
func (kv *KeyView[K, V]) Len() int {
	return kv.tree.Len()
}

// At returns the key at the given 0-based rank, delegating to EntryAt.
func (kv *KeyView[K, V]) At(index int) (K, error) {
	k, _, err := kv.tree.EntryAt(index)
	return k, err
}

// Contains reports whether key is present, delegating to ContainsKey.
func (kv *KeyView[K, V]) Contains(key K) bool {
	return kv.tree.ContainsKey(key)
}

// IndexOf returns key's rank query result, delegating to the owning
// Tree's IndexOf.
func (kv *KeyView[K, V]) IndexOf(key K) int {
	return kv.tree.IndexOf(key)
}

// Cursor returns the owning tree's traversal in ascending key order. It
// yields full key/value pairs; the key is not projected out.
func (kv *KeyView[K, V]) Cursor() *Cursor[K, V] {
	return kv.tree.Cursor()
}

// Add always fails: key views are read-only, per spec §4.8.
func (kv *KeyView[K, V]) Add(key K) error {
	return ErrReadOnly
}

// Remove always fails: key views are read-only, per spec §4.8.
func (kv *KeyView[K, V]) Remove(key K) error {
	return ErrReadOnly
}

// Clear always fails: key views are read-only, per spec §4.8.
func (kv *KeyView[K, V]) Clear() error {
	return ErrReadOnly
}

// ValueView is a read-only, live projection of a Tree's values, per spec
// §4.8.
type ValueView[K any, V any] struct {
	tree *Tree[K, V]
}

// Len returns the number of values, same as the owning Tree's Len.
func (vv *ValueView[K, V]) Len() int {
	return vv.tree.Len()
}

// At returns the value at the given 0-based rank, delegating to EntryAt.
func (vv *ValueView[K, V]) At(index int) (V, error) {
	_, v, err := vv.tree.EntryAt(index)
	return v, err
}

// Contains reports whether value is present, delegating to
// ContainsValue.
func (vv *ValueView[K, V]) Contains(value V) bool {
	return vv.tree.ContainsValue(value)
}

// Cursor returns a traversal projecting out values in ascending key
// order.
func (vv *ValueView[K, V]) Cursor() *valueCursor[K, V] {
	return &valueCursor[K, V]{inner: vv.tree.Cursor()}
}

// Add always fails: value views are read-only, per spec §4.8.
func (vv *ValueView[K, V]) Add(value V) error {
	return ErrReadOnly
}

// Remove always fails: value views are read-only, per spec §4.8.
func (vv *ValueView[K, V]) Remove(value V) error {
	return ErrReadOnly
}

// Clear always fails: value views are read-only, per spec §4.8.
func (vv *ValueView[K, V]) Clear() error {
	return ErrReadOnly
}

// valueCursor projects a Cursor down to just its values.
type valueCursor[K any, V any] struct {
	inner *Cursor[K, V]
}

// Advance yields the next value in ascending key order.
func (c *valueCursor[K, V]) Advance() (value V, ok bool, err error) {
	_, value, ok, err = c.inner.Advance()
	return
}
