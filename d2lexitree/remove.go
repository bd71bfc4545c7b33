package d2lexitree

import "github.com/qntx/lexitrees/internal/dnode"

// findAndCollect walks from the root to key, recording every node visited.
// If key is present, it continues past the key node down the level-0 chain
// (.Left then .Right...) to the leaf that is key's predecessor, which
// remove needs to patch the hole left by deletion.
//
// Ported from D2LTree._find_and_collect.
func (t *Tree[K, V]) findAndCollect(key K) (path []*dnode.Node[K, V], prevKeyNode, keyNode *dnode.Node[K, V], keyNodeIdx int) {
	path = []*dnode.Node[K, V]{t.root}

	cur := t.root.Right
	if cur == nil {
		return path, nil, nil, 0
	}

	for cur != nil {
		path = append(path, cur)

		switch c := t.comparator(key, cur.Key); {
		case c > 0:
			cur = cur.Right
		case c < 0:
			cur = cur.Left
		default:
			keyNodeIdx = len(path) - 1
			keyNode = cur
			prevKeyNode = path[keyNodeIdx-1]

			cur = cur.Left
			for cur != nil {
				path = append(path, cur)
				cur = cur.Right
			}

			return path, prevKeyNode, keyNode, keyNodeIdx
		}
	}

	return path, nil, nil, 0
}

// remove deletes key from the tree, returning its value and whether it was
// present. Ported from D2LTree.remove.
func (t *Tree[K, V]) remove(key K) (V, bool) {
	var zero V

	path, prevKeyNode, keyNode, keyNodeIdx := t.findAndCollect(key)
	if keyNode == nil {
		return zero, false
	}

	t.len--

	lastIdx := len(path) - 1
	prevLeaf := path[lastIdx-1]
	leaf := path[lastIdx]
	lastIdx--

	hole := dnode.ReplaceWithLeaf(prevKeyNode, keyNode, prevLeaf, leaf, t.isRoot)
	if !hole {
		return keyNode.Val, true
	}

	path[keyNodeIdx] = leaf

	cur := path[lastIdx]
	lastIdx--
	prev := path[lastIdx]

	holeSide := -1
	if cur.Left != nil {
		holeSide = 1
	}

	for hole {
		var other1 *dnode.Node[K, V]

		if holeSide == -1 {
			other1 = cur.Right
			if cur.HighRight {
				other1 = other1.Left
			}
		} else {
			other1 = cur.Left
		}

		var other2 *dnode.Node[K, V]
		if other1.HighRight {
			other2 = other1.Right
		}

		nextHoleSide := -1
		if prev.Left != cur {
			nextHoleSide = 1
		}

		hole = lower(prev, cur, other1, other2)
		holeSide = nextHoleSide

		if lastIdx == 0 {
			break
		}

		lastIdx--
		cur = prev
		prev = path[lastIdx]
	}

	return keyNode.Val, true
}

func (t *Tree[K, V]) isRoot(n *dnode.Node[K, V]) bool {
	return n == t.root
}
