package bptree

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"
)

// Tree is an in-memory sorted associative container backed by a B+ tree.
// It is not safe for concurrent use: it assumes a single writer and a
// single logical owner, per spec §5.
type Tree[K any, V any] struct {
	cmp         Comparator[K]
	root        *node[K, V]
	capLeaf     int
	capInternal int
	mutation    uint64
	logger      *zap.SugaredLogger
	valueEqual  func(a, b V) bool
}

// NewOrdered creates a Tree whose keys are ordered by NaturalOrder,
// mirroring the teacher's NewOrderedG convenience constructor.
func NewOrdered[K Ordered, V any](opts ...Option[K, V]) (*Tree[K, V], error) {
	return New[K, V](NaturalOrder[K](), opts...)
}

// New creates a Tree ordered by cmp, which must not be nil.
func New[K any, V any](cmp Comparator[K], opts ...Option[K, V]) (*Tree[K, V], error) {
	if cmp == nil {
		return nil, wrapBadArgument("comparator must not be nil")
	}

	cfg := newConfig[K, V]()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	t := &Tree[K, V]{
		cmp:         cmp,
		capLeaf:     cfg.capLeaf,
		capInternal: cfg.capInternal,
		logger:      cfg.logger,
		valueEqual:  cfg.valueEqual,
	}
	if t.logger == nil {
		t.logger = defaultLogger()
	}
	if t.valueEqual == nil {
		t.valueEqual = func(a, b V) bool { return reflect.DeepEqual(a, b) }
	}

	if cfg.entriesSet {
		for _, e := range cfg.entries {
			if err := t.Add(e.Key, e.Value); err != nil {
				return nil, err
			}
		}
	}
	return t, nil
}

func (t *Tree[K, V]) bumpMutation() {
	t.mutation++
}

// ensureRoot materializes the root as an empty leaf on the first
// inserting call, per spec §4.4's "lazy root".
func (t *Tree[K, V]) ensureRoot() {
	if t.root == nil {
		t.root = newLeaf[K, V](t.capLeaf)
	}
}

// growRoot builds a fresh two-child internal root over the old root and
// the sibling its split produced, per spec §4.4.
func (t *Tree[K, V]) growRoot(sibling *node[K, V]) {
	oldRoot := t.root
	newRoot := newInternal[K, V](t.capInternal)
	newRoot.children = append(newRoot.children, oldRoot, sibling)
	newRoot.keys = append(newRoot.keys, minKey(oldRoot), minKey(sibling))
	newRoot.used = 2
	recomputeTotal(newRoot)
	t.root = newRoot
	t.logger.Debugw("bptree: root grown")
}

// Add inserts key/value, failing with ErrDuplicateKey if key is already
// present. The tree is left unchanged on failure.
func (t *Tree[K, V]) Add(key K, value V) error {
	t.ensureRoot()
	sibling, err := nodeAdd(t.cmp, t.capLeaf, t.capInternal, t.root, key, value)
	if err != nil {
		return err
	}
	if sibling != nil {
		t.growRoot(sibling)
	}
	t.bumpMutation()
	t.logger.Debugw("bptree: add", "key", key)
	return nil
}

// Set upserts key/value, overwriting any existing value for key. It
// reports whether the key was newly inserted.
func (t *Tree[K, V]) Set(key K, value V) (isNew bool) {
	t.ensureRoot()
	sibling, isNew := nodeSet(t.cmp, t.capLeaf, t.capInternal, t.root, key, value)
	if sibling != nil {
		t.growRoot(sibling)
	}
	t.bumpMutation()
	return isNew
}

// Get returns the value stored for key, or ErrKeyNotFound if absent.
func (t *Tree[K, V]) Get(key K) (V, error) {
	v, ok := t.TryGet(key)
	if !ok {
		var zero V
		return zero, errKeyNotFound(key)
	}
	return v, nil
}

// TryGet returns the value stored for key and whether it was present.
func (t *Tree[K, V]) TryGet(key K) (V, bool) {
	if t.root == nil {
		var zero V
		return zero, false
	}
	return nodeGet(t.cmp, t.root, key)
}

// ContainsKey reports whether key is present.
func (t *Tree[K, V]) ContainsKey(key K) bool {
	_, ok := t.TryGet(key)
	return ok
}

// ContainsValue reports whether value is present anywhere in the tree,
// using the equality predicate installed via WithValueEqual (default
// reflect.DeepEqual). This is a linear scan via the tree's traversal.
func (t *Tree[K, V]) ContainsValue(value V) bool {
	cur := t.Cursor()
	for {
		_, v, ok, err := cur.Advance()
		if err != nil || !ok {
			return false
		}
		if t.valueEqual(v, value) {
			return true
		}
	}
}

// Remove deletes key if present and reports whether it was removed. No
// underflow rebalancing is performed, per spec §9's accepted open
// question: the tree remains correct for lookup but nodes may drift
// below half-full under delete-heavy workloads.
func (t *Tree[K, V]) Remove(key K) bool {
	if t.root == nil {
		return false
	}
	if !nodeRemove(t.cmp, t.root, key) {
		return false
	}
	t.bumpMutation()
	t.logger.Debugw("bptree: remove", "key", key)
	return true
}

// Clear drops the root. Count becomes zero.
func (t *Tree[K, V]) Clear() {
	t.root = nil
	t.bumpMutation()
	t.logger.Debugw("bptree: clear")
}

// Len returns the number of stored entries.
func (t *Tree[K, V]) Len() int {
	if t.root == nil {
		return 0
	}
	return t.root.total
}

// Keys returns a read-only view over the tree's keys.
func (t *Tree[K, V]) Keys() *KeyView[K, V] {
	return &KeyView[K, V]{tree: t}
}

// Values returns a read-only view over the tree's values.
func (t *Tree[K, V]) Values() *ValueView[K, V] {
	return &ValueView[K, V]{tree: t}
}

// String implements fmt.Stringer with a one-line summary.
func (t *Tree[K, V]) String() string {
	return fmt.Sprintf("bptree.Tree[%d entries]", t.Len())
}
