package bptree

import "go.uber.org/zap"

// Entry is one key/value pair supplied to WithEntries for bulk
// construction-time insertion.
type Entry[K any, V any] struct {
	Key   K
	Value V
}

// DefaultCapInternal and DefaultCapLeaf are the recommended node
// capacities from spec §3: cap_internal = 16, cap_leaf = cap_internal-1.
const (
	DefaultCapInternal = 16
	DefaultCapLeaf     = DefaultCapInternal - 1
)

// minNodeCapacity is the smallest capacity that permits the half-split
// policy in spec §3 ("both must be >= 3").
const minNodeCapacity = 3

type config[K any, V any] struct {
	entries     []Entry[K, V]
	entriesSet  bool
	logger      *zap.SugaredLogger
	capLeaf     int
	capInternal int
	valueEqual  func(V, V) bool
	err         error
}

func newConfig[K any, V any]() *config[K, V] {
	return &config[K, V]{
		capLeaf:     DefaultCapLeaf,
		capInternal: DefaultCapInternal,
	}
}

// Option configures a Tree at construction time, per spec §6's
// enumerated-options table.
type Option[K any, V any] func(*config[K, V])

// WithEntries bulk-inserts entries as by Add, in order; a duplicate key
// within entries fails construction with ErrDuplicateKey. A nil entries
// slice fails construction with ErrBadArgument, per spec §6.
func WithEntries[K any, V any](entries []Entry[K, V]) Option[K, V] {
	return func(c *config[K, V]) {
		if entries == nil {
			c.err = wrapBadArgument("entries must not be nil")
			return
		}
		c.entries = entries
		c.entriesSet = true
	}
}

// WithLogger installs a structured logger for structural-event debug
// logging. A nil logger is treated as "use the default no-op logger"
// rather than an error, since omitting logging is always a valid choice.
func WithLogger[K any, V any](logger *zap.SugaredLogger) Option[K, V] {
	return func(c *config[K, V]) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithCapacities overrides the default node capacities (spec §3). Both
// must be >= 3 to permit the half-split policy; New reports
// ErrBadArgument otherwise.
func WithCapacities[K any, V any](capInternal, capLeaf int) Option[K, V] {
	return func(c *config[K, V]) {
		if capInternal < minNodeCapacity || capLeaf < minNodeCapacity {
			c.err = wrapBadArgument("capacities must each be >= 3")
			return
		}
		c.capInternal = capInternal
		c.capLeaf = capLeaf
	}
}

// WithValueEqual installs the equality predicate ContainsValue uses. The
// default, reflect.DeepEqual, tolerates a value type's zero value without
// faulting — the spec §9 resolution of the "contains_value on null
// values" open question.
func WithValueEqual[K any, V any](equal func(a, b V) bool) Option[K, V] {
	return func(c *config[K, V]) {
		if equal != nil {
			c.valueEqual = equal
		}
	}
}
