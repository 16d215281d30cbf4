package bptree

// Comparator orders two keys of type K. It must return a negative number
// if a < b, zero if a == b, and a positive number if a > b. It must be
// total, deterministic, and consistent with equality: two keys are
// considered equal by this package if and only if Comparator(a, b) == 0.
//
// A Comparator is a pure function for the lifetime of any Tree it is
// installed on; changing its behavior mid-lifetime invalidates every
// invariant this package maintains.
type Comparator[K any] func(a, b K) int

// Ordered is the set of types for which the builtin comparison operators
// define a total order, matching the teacher's own Ordered constraint.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~string
}

// NaturalOrder returns the Comparator implied by the builtin < and ==
// operators for an Ordered type. It is the default used by New when no
// comparator option is supplied.
func NaturalOrder[K Ordered]() Comparator[K] {
	return func(a, b K) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
}
