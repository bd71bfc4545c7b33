package plexitree

// findInsertionPos locates where a hypothetical new node at the given
// level would attach: (prev, cur, prevCmp, curCmp). If key is already
// present, cur is that node and curCmp is 0. prevCmp is -1 if the edge
// from prev to cur runs via Right, 1 via Left; curCmp is -1 if cur.Key is
// less than key, 1 if greater, and 2 (invalid) if cur is nil. Ported from
// PLTree._find_insertion_pos.
func (t *Tree[K, V]) findInsertionPos(key K, level int) (prev, cur *node[K, V], prevCmp, curCmp int) {
	prev = t.root
	prevCmp = -1
	cur = prev.Right

	for cur != nil {
		switch c := t.comparator(cur.Key, key); {
		case c < 0:
			if cur.Level < level {
				return prev, cur, prevCmp, -1
			}

			prev = cur
			prevCmp = -1
			cur = cur.Right
		case c > 0:
			if cur.Level <= level {
				return prev, cur, prevCmp, 1
			}

			prev = cur
			prevCmp = 1
			cur = cur.Left
		default:
			return prev, cur, prevCmp, 0
		}
	}

	return prev, cur, prevCmp, 2
}

// getNodePos is findInsertionPos without the level test, used by remove.
// Ported from PLTree._get_node_pos.
func (t *Tree[K, V]) getNodePos(key K) (prev, cur *node[K, V], prevCmp int) {
	prev, cur, prevCmp, _ = t.findInsertionPos(key, -1)

	return prev, cur, prevCmp
}

// chainAt safely reads chain[idx], returning nil past the end — chain is
// built incrementally by buildSideChains and, like PLTree's
// fixed-size nodes array, may be shorter than the index an empty side
// wants to probe.
func chainAt[K comparable, V any](chain []*node[K, V], idx int) *node[K, V] {
	if idx < len(chain) {
		return chain[idx]
	}

	return nil
}

// buildSideChains walks the two key-ordered chains of same-or-lower-level
// nodes hanging off first1 (inclusive) toward key, recording them as
// [first1, last1, first2, last2, ..., firstN, lastN] so insert can splice
// a new node between them without a second traversal. If a node with key
// key is found along the way, it returns immediately with that node and
// an incomplete chain. Ported from PLTree._get_side_pairs.
func (t *Tree[K, V]) buildSideChains(key K, first1 *node[K, V], first1Cmp int) ([]*node[K, V], *node[K, V]) {
	if first1 == nil {
		return []*node[K, V]{nil, nil}, nil
	}

	chain := []*node[K, V]{first1}

	prev := first1
	prevCmp := first1Cmp

	var cur *node[K, V]
	if first1Cmp < 0 {
		cur = first1.Right
	} else {
		cur = first1.Left
	}

	for cur != nil {
		switch c := t.comparator(cur.Key, key); {
		case c < 0:
			if prevCmp > 0 {
				chain = append(chain, prev, cur)
			}

			prev = cur
			prevCmp = -1
			cur = cur.Right
		case c > 0:
			if prevCmp < 0 {
				chain = append(chain, prev, cur)
			}

			prev = cur
			prevCmp = 1
			cur = cur.Left
		default:
			return chain, cur
		}
	}

	chain = append(chain, prev, nil, nil, nil)

	return chain, nil
}

// insert inserts or updates key with val at the given level. Ported from
// PLTree.insert.
func (t *Tree[K, V]) insert(key K, val V, level int) {
	prev, cur, prevCmp, curCmp := t.findInsertionPos(key, level)
	if cur != nil && curCmp == 0 {
		cur.Val = val

		return
	}

	chain, keyNode := t.buildSideChains(key, cur, curCmp)
	if keyNode != nil {
		keyNode.Val = val

		return
	}

	newNode := &node[K, V]{Key: key, Val: val, Level: level}

	if prevCmp < 0 {
		prev.Right = newNode
	} else {
		prev.Left = newNode
	}

	if curCmp < 0 {
		newNode.Left = cur
		newNode.Right = chainAt(chain, 2)
	} else {
		newNode.Right = cur
		newNode.Left = chainAt(chain, 2)
	}

	i := 1
	lastCmp := curCmp

	for {
		last := chainAt(chain, i)
		if last == nil {
			break
		}

		if lastCmp < 0 {
			last.Right = chainAt(chain, i+3)
		} else {
			last.Left = chainAt(chain, i+3)
		}

		lastCmp = -lastCmp
		i += 2
	}

	t.len++

	if level > t.maxLevel {
		t.maxLevel = level
	}
}
