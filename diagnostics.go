package bptree

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Dump renders the tree as indented text for debugging, the way the
// teacher's node.print does, but through treeprint instead of hand-rolled
// indentation — the same library bluesky-social-indigo's
// cmd/goat/repo_prettyprint.go uses to render its merkle search tree.
// Each internal separator becomes a branch labeled with its subtree
// count; each leaf entry becomes a "key: value" node at its depth.
func (t *Tree[K, V]) Dump() string {
	root := treeprint.New()
	if t.root == nil {
		root.SetValue("(empty)")
		return root.String()
	}
	root.SetValue(fmt.Sprintf("root (total=%d)", t.root.total))
	dumpNode(root, t.root)
	return root.String()
}

func dumpNode[K any, V any](branch treeprint.Tree, n *node[K, V]) {
	switch n.kind {
	case leafKind:
		for i := 0; i < n.used; i++ {
			branch.AddNode(fmt.Sprintf("%v: %v", n.keys[i], n.values[i]))
		}
	case internalKind:
		for i := 0; i < n.used; i++ {
			child := branch.AddBranch(fmt.Sprintf("key=%v (total=%d)", n.keys[i], n.children[i].total))
			dumpNode(child, n.children[i])
		}
	}
}

// Validate recomputes every node's total bottom-up and reports
// ErrStructuralInvariant on the first disagreement with the stored
// value, per spec §6 and testable property 7. It is intended for tests
// and debugging, not for the hot path.
func (t *Tree[K, V]) Validate() error {
	if t.root == nil {
		return nil
	}
	_, err := validateNode(t.root)
	return err
}

func validateNode[K any, V any](n *node[K, V]) (int, error) {
	switch n.kind {
	case leafKind:
		if n.total != n.used {
			return 0, errStructuralInvariant(fmt.Sprintf("leaf total=%d used=%d", n.total, n.used))
		}
		return n.total, nil
	case internalKind:
		sum := 0
		for i := 0; i < n.used; i++ {
			childTotal, err := validateNode(n.children[i])
			if err != nil {
				return 0, err
			}
			sum += childTotal
		}
		if n.total != sum {
			return 0, errStructuralInvariant(fmt.Sprintf("internal total=%d computed=%d", n.total, sum))
		}
		return n.total, nil
	default:
		return 0, errStructuralInvariant("unknown node kind")
	}
}
