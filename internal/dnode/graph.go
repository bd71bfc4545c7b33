package dnode

import "github.com/qntx/lexitrees/cmp"

// GraphNode is one entry of a Graph snapshot: a key and the level it sits
// on in the level-list dimension.
type GraphNode[K comparable] struct {
	Key   K
	Level int
}

// GraphEdge is a parent->child edge expressed as indices into the Nodes
// slice returned alongside it.
type GraphEdge struct {
	From int
	To   int
}

// GraphOptions restricts a Graph snapshot to a level and/or key window.
// A nil bound means unbounded on that side.
type GraphOptions[K comparable] struct {
	FromLevel *int
	ToLevel   *int
	FromKey   *K
	ToKey     *K
}

// Graph returns every node reachable from first within the requested window,
// sorted by key, plus the parent->child edges between them as index pairs.
// Ported from generic.Tree.get_graph.
func Graph[K comparable, V any](first *Node[K, V], height int, compare cmp.Comparator[K], opts GraphOptions[K]) ([]GraphNode[K], []GraphEdge) {
	var nodes []GraphNode[K]

	var edges []GraphEdge

	if first == nil {
		return nodes, edges
	}

	var sub func(cur *Node[K, V], level int) (idx int, ok bool)

	sub = func(cur *Node[K, V], level int) (int, bool) {
		var (
			leftIdx, curIdx, rightIdx int
			haveLeft, haveCur, haveRight bool
		)

		if cur.Left != nil {
			cond := (opts.FromLevel == nil || *opts.FromLevel <= level-1) &&
				(opts.FromKey == nil || compare(*opts.FromKey, cur.Key) < 0)
			if cond {
				leftIdx, haveLeft = sub(cur.Left, level-1)
			}
		}

		cond := (opts.ToLevel == nil || level <= *opts.ToLevel) &&
			(opts.FromKey == nil || compare(cur.Key, *opts.FromKey) >= 0) &&
			(opts.ToKey == nil || compare(*opts.ToKey, cur.Key) >= 0)
		if cond {
			curIdx = len(nodes)
			haveCur = true

			nodes = append(nodes, GraphNode[K]{Key: cur.Key, Level: level})
		}

		if cur.Right != nil {
			rightLevel := cur.RightLevel(level)
			cond := (opts.FromLevel == nil || *opts.FromLevel <= rightLevel) &&
				(opts.ToKey == nil || compare(cur.Key, *opts.ToKey) < 0)

			if cond {
				rightIdx, haveRight = sub(cur.Right, rightLevel)
			}
		}

		if haveCur {
			if haveLeft {
				edges = append(edges, GraphEdge{From: curIdx, To: leftIdx})
			}

			if haveRight {
				edges = append(edges, GraphEdge{From: curIdx, To: rightIdx})
			}

			return curIdx, true
		}

		return 0, false
	}

	sub(first, height-1)

	return nodes, edges
}
