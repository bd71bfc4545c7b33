package d3lexitree

import "github.com/qntx/lexitrees/internal/dnode"

// pathData records everything remove needs after descending once toward
// key: the leaf to splice in, and the highest ancestor that still needs
// lowering to keep the level-list invariant intact once that leaf is gone.
type pathData[K comparable, V any] struct {
	prevLeaf, leaf         *dnode.Node[K, V]
	prevLowerMe, lowerMe   *dnode.Node[K, V]
	prevKeyNode, keyNode   *dnode.Node[K, V]
}

// getLoweringPath descends to key, tracking both the key-order predecessor
// leaf that will patch the deleted node's hole and the last ancestor on the
// path that is still "lowerable" (has a lowering move available) — the
// starting point for remove's rebalancing walk. Ported from
// D3LTree._get_lowering_path.
func (t *Tree[K, V]) getLoweringPath(key K) *pathData[K, V] {
	prev := t.root

	cur := prev.Right
	if cur == nil {
		return nil
	}

	prevLowerMe, lowerMe := prev, cur

	var prevLeaf, leaf, prevKeyNode, keyNode *dnode.Node[K, V]

	for {
		var c2, o1 *dnode.Node[K, V]

		switch c := t.comparator(cur.Key, key); {
		case c < 0:
			c2 = cur.Right
			o1 = cur.Left
		default:
			c2 = cur.Left
			o1 = cur.Right

			if c == 0 {
				prevKeyNode = prev
				keyNode = cur
			}
		}

		lowerable := (prev.Right == cur && prev.HighRight) ||
			(cur.Right != nil && cur.HighRight) ||
			(o1 != nil && o1.Right != nil && o1.HighRight)

		if lowerable {
			prevLowerMe, lowerMe = prev, cur
		}

		if c2 == nil {
			prevLeaf, leaf = prev, cur

			break
		}

		prev = cur
		cur = c2
	}

	return &pathData[K, V]{
		prevLeaf: prevLeaf, leaf: leaf,
		prevLowerMe: prevLowerMe, lowerMe: lowerMe,
		prevKeyNode: prevKeyNode, keyNode: keyNode,
	}
}

// remove deletes key from the tree, returning its value and whether it was
// present. Ported from D3LTree.remove.
func (t *Tree[K, V]) remove(key K) (V, bool) {
	var zero V

	pd := t.getLoweringPath(key)
	if pd == nil || pd.keyNode == nil {
		return zero, false
	}

	t.len--

	p, c1 := pd.prevLowerMe, pd.lowerMe

	for c1 != pd.leaf {
		var c2, o1 *dnode.Node[K, V]

		switch {
		case c1 == pd.keyNode || t.comparator(key, c1.Key) < 0:
			c2 = c1.Left
			o1 = c1.Right

			if c1.HighRight {
				o1 = o1.Left
			}
		case c1.HighRight: // c1.Key < key
			p = c1
			c1 = c1.Right
			c2 = c1.Left
			o1 = c1.Right

			if c1.HighRight {
				o1 = o1.Left
			}
		default: // c1.Key < key
			o1 = c1.Left
			c2 = c1.Right
		}

		var o2, o3 *dnode.Node[K, V]
		if o1.HighRight && o1.Right != nil {
			o2 = o1.Right
			if o2.HighRight && o2.Right != nil {
				o3 = o2.Right
			}
		}

		prevC1, prevC2 := lower(p, c1, c2, o1, o2, o3, p == t.root)

		if c1 == pd.keyNode {
			pd.prevKeyNode = prevC1
		}

		if c2 == pd.keyNode {
			pd.prevKeyNode = prevC2
		}

		p = prevC2
		c1 = c2
	}

	pd.prevLeaf = p

	// If key_node has become a leaf, leaf must be its key-order
	// predecessor via a HighRight edge straight into it — splice it out
	// directly instead of going through dnode.ReplaceWithLeaf, which would
	// double-link key_node's former right subtree.
	if pd.leaf.Right == pd.keyNode {
		pd.leaf.Right = pd.keyNode.Right

		return pd.keyNode.Val, true
	}

	dnode.ReplaceWithLeaf(pd.prevKeyNode, pd.keyNode, pd.prevLeaf, pd.leaf, t.isRoot)

	return pd.keyNode.Val, true
}

func (t *Tree[K, V]) isRoot(n *dnode.Node[K, V]) bool {
	return n == t.root
}
