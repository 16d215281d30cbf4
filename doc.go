// Package bptree implements an in-memory sorted associative container
// backed by a B+ tree with threaded leaves and subtree cardinalities.
//
// Unlike a plain balanced tree, every internal node in this tree tracks
// the number of entries in the subtree it roots. That single extra field
// makes two additional queries cheap: IndexOf, which returns the 0-based
// rank of a key (or where it would land, bit-complemented, if absent),
// and EntryAt, which returns the key/value pair at a given rank. Both run
// in O(log n), the same as Get and Set.
//
// All key/value pairs live in leaf nodes, which are chained left to right
// for fast ordered iteration; internal nodes hold only separator keys and
// child pointers, used purely for routing.
//
// The tree is not safe for concurrent use. It assumes a single writer and
// detects, but does not prevent, concurrent mutation of a tree mid-
// traversal: any traversal observes a mutation counter and fails with
// ErrCollectionModified as soon as the tree changes shape or value out
// from under it.
package bptree
