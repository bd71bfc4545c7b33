package d3lexitree

import "github.com/qntx/lexitrees/internal/dnode"

// liftAndFind descends toward key, eagerly lifting any node whose two
// consecutive same-level descendants would otherwise exceed the 3-Lexi
// level-list bound, and returns either the key's existing node or the
// insertion point for a new one.
//
// Returns (prev2, prev, keyNode, prevCmp):
//   - if keyNode != nil, prev points at keyNode (prev2 is unused/nil);
//   - otherwise prev2 -> prev is the edge under which a new node of key
//     `key` must be inserted, and prevCmp records which side of prev.
//
// Ported from D3LTree._lift_and_find.
func (t *Tree[K, V]) liftAndFind(key K) (prev2, prev, keyNode *dnode.Node[K, V], prevCmp int) {
	prev = t.root
	prevCmp = -1
	cur := prev.Right

	for cur != nil {
		if cur.HighRight && cur.Right != nil {
			right := cur.Right
			if right.HighRight && right.Right != nil {
				curPrev, rightPrev, right2Prev, _, _ := dnode.Lift(prev2, prev, cur, right, right.Right, prev == t.root)

				switch c := t.comparator(key, right.Key); {
				case c < 0:
					prev = curPrev
				case c > 0:
					prev = right2Prev
					cur = right.Right
				default:
					return nil, rightPrev, right, -1
				}
			}
		}

		prev2 = prev
		prev = cur

		switch c := t.comparator(cur.Key, key); {
		case c < 0:
			prevCmp = -1
			cur = cur.Right
		case c > 0:
			prevCmp = 1
			cur = cur.Left
		default:
			return nil, prev, cur, prevCmp
		}
	}

	return prev2, prev, nil, prevCmp
}

// insert finds key's place in the tree via liftAndFind and splices in a new
// node, or overwrites the value of an existing one. Ported from
// D3LTree.__setitem__.
func (t *Tree[K, V]) insert(key K, val V) {
	prev2, prev, keyNode, prevCmp := t.liftAndFind(key)
	if keyNode != nil {
		keyNode.Val = val

		return
	}

	keyNode = &dnode.Node[K, V]{Key: key, Val: val}
	t.len++

	switch {
	case prev2 == nil:
		prev.Right = keyNode
	case prevCmp > 0:
		if prev2.Right == prev {
			prev2.Right = keyNode
		} else {
			prev2.Left = keyNode
		}

		keyNode.Right = prev
		keyNode.HighRight = true
	default:
		keyNode.Right = prev.Right
		keyNode.HighRight = true // ignored if Right is nil
		prev.Right = keyNode
		prev.HighRight = true
	}
}
