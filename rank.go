package bptree

// IndexOf returns the 0-based rank of key among the stored keys if
// present, or the bitwise complement of the position key would occupy if
// inserted (the count of keys strictly less than key, bit-complemented),
// per spec §4.5. For an empty tree it returns ^0.
func (t *Tree[K, V]) IndexOf(key K) int {
	if t.root == nil {
		return ^0
	}
	return indexOf(t.cmp, t.root, key)
}

func indexOf[K any, V any](cmp Comparator[K], n *node[K, V], key K) int {
	before := 0
	for n.kind == internalKind {
		descended := false
		for i := 1; i < n.used; i++ {
			if cmp(n.keys[i], key) <= 0 {
				before += n.children[i-1].total
				continue
			}
			n = n.children[i-1]
			descended = true
			break
		}
		if !descended {
			n = n.children[n.used-1]
		}
	}
	for i := 0; i < n.used; i++ {
		switch c := cmp(n.keys[i], key); {
		case c == 0:
			return before + i
		case c > 0:
			return ^(before + i)
		}
	}
	return ^(before + n.used)
}

// EntryAt returns the key/value pair at the given 0-based rank, per spec
// §4.6. index must lie in [0, Len()); otherwise ErrOutOfRange is
// returned.
func (t *Tree[K, V]) EntryAt(index int) (K, V, error) {
	count := t.Len()
	if index < 0 || index >= count {
		var zk K
		var zv V
		return zk, zv, errOutOfRange(index, count)
	}
	k, v := entryAt(t.root, index)
	return k, v, nil
}

func entryAt[K any, V any](n *node[K, V], remaining int) (K, V) {
	for n.kind == internalKind {
		i := 0
		for remaining >= n.children[i].total {
			remaining -= n.children[i].total
			i++
		}
		n = n.children[i]
	}
	return n.keys[remaining], n.values[remaining]
}
