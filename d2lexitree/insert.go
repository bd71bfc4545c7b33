package d2lexitree

import "github.com/qntx/lexitrees/internal/dnode"

// insert finds key's place in the tree, inserting a new node or overwriting
// an existing one, then lazily lifts nodes on the way back up until the
// level-list invariant (no node with two consecutive same-level
// descendants) is restored. Ported from D2LTree.__setitem__.
func (t *Tree[K, V]) insert(key K, val V) {
	path := []*dnode.Node[K, V]{t.root}

	prevCmp := -1

	cur := t.root.Right
	for cur != nil {
		path = append(path, cur)

		switch c := t.comparator(key, cur.Key); {
		case c > 0:
			prevCmp = -1
			cur = cur.Right
		case c < 0:
			prevCmp = 1
			cur = cur.Left
		default:
			cur.Val = val

			return
		}
	}

	keyNode := &dnode.Node[K, V]{Key: key, Val: val}
	t.len++

	lastIdx := len(path) - 1

	prev := path[lastIdx]
	if lastIdx == 0 { // empty tree
		prev.Right = keyNode

		return
	}

	lastIdx--

	prev2 := path[lastIdx]
	prev, cur = insertKeynode(prev2, prev, prevCmp, keyNode)

	for {
		if prev.HighRight && prev.Right == cur {
			lastIdx--
			cur = prev
			prev = prev2

			if lastIdx >= 0 {
				prev2 = path[lastIdx]
			} else {
				prev2 = nil
			}

			continue
		}

		if cur.HighRight && cur.Right != nil {
			right := cur.Right
			if right.HighRight && right.Right != nil {
				_, _, _, newPrev, newCur := dnode.Lift(prev2, prev, cur, right, right.Right, prev == t.root)
				prev, cur = newPrev, newCur

				continue
			}
		}

		break
	}
}

// insertKeynode splices keyNode into the level list directly below prev,
// returning the driver's new (prev, cur) pair. Ported from
// D2LTree._insert_keynode.
func insertKeynode[K comparable, V any](prev2, prev *dnode.Node[K, V], prevCmp int, keyNode *dnode.Node[K, V]) (newPrev, newCur *dnode.Node[K, V]) {
	if prevCmp > 0 {
		//  P2 -------.   P2  ==>  P2 ----.        .--------- P2
		//             \ /    ==>          \      /
		//  P2 -------> P     ==>  P2 ---> key ------> P
		if prev2.Right == prev {
			prev2.Right = keyNode
		} else {
			prev2.Left = keyNode
		}

		keyNode.Right = prev
		keyNode.HighRight = true

		return keyNode, prev
	}

	// Prev (-----> other)  ==>  Prev ------> key (--> other)
	keyNode.Right = prev.Right
	keyNode.HighRight = true // ignored if Right is nil
	prev.Right = keyNode
	prev.HighRight = true

	return prev, keyNode
}
