package plexitree

import (
	"fmt"
	"iter"
	"math"

	"github.com/qntx/lexitrees/cmp"
)

// inOrder yields every (key, value) pair rooted at first in ascending key
// order. Mirrors dnode.InOrder.
func inOrder[K comparable, V any](first *node[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		var walk func(n *node[K, V]) bool

		walk = func(n *node[K, V]) bool {
			if n == nil {
				return true
			}

			if !walk(n.Left) {
				return false
			}

			if !yield(n.Key, n.Val) {
				return false
			}

			return walk(n.Right)
		}

		walk(first)
	}
}

// reverseOrder yields every (key, value) pair rooted at first in
// descending key order.
func reverseOrder[K comparable, V any](first *node[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		var walk func(n *node[K, V]) bool

		walk = func(n *node[K, V]) bool {
			if n == nil {
				return true
			}

			if !walk(n.Right) {
				return false
			}

			if !yield(n.Key, n.Val) {
				return false
			}

			return walk(n.Left)
		}

		walk(first)
	}
}

// checkSub validates that cur.Key falls strictly between aboveMe and
// belowMe, and that its children's levels obey PLTree's ordering: a left
// child's level must be strictly less than cur's, a right child's level
// at most cur's. Ported from PLTree._check_sub.
func checkSub[K comparable, V any](cur *node[K, V], aboveMe, belowMe *K, compare cmp.Comparator[K]) error {
	if belowMe != nil && compare(cur.Key, *belowMe) >= 0 {
		return fmt.Errorf("key %v must be below %v", cur.Key, *belowMe)
	}

	if aboveMe != nil && compare(*aboveMe, cur.Key) >= 0 {
		return fmt.Errorf("key %v must be above %v", cur.Key, *aboveMe)
	}

	if cur.Left != nil {
		if cur.Left.Level >= cur.Level {
			return fmt.Errorf("left child %v at level %d must be strictly below parent %v's level %d", cur.Left.Key, cur.Left.Level, cur.Key, cur.Level)
		}

		if err := checkSub(cur.Left, aboveMe, &cur.Key, compare); err != nil {
			return err
		}
	}

	if cur.Right != nil {
		if cur.Right.Level > cur.Level {
			return fmt.Errorf("right child %v at level %d must not exceed parent %v's level %d", cur.Right.Key, cur.Right.Level, cur.Key, cur.Level)
		}

		if err := checkSub(cur.Right, &cur.Key, belowMe, compare); err != nil {
			return err
		}
	}

	return nil
}

// PathLenStats summarizes the root-to-leaf path lengths of a tree.
type PathLenStats struct {
	MinLen    int
	MaxLen    int
	NumLeaves int
	MeanLen   float64
	StdLen    float64
}

// PathLengthStats walks every root-to-leaf path once and reports the min,
// max, mean and standard deviation of their lengths.
func PathLengthStats[K comparable, V any](first *node[K, V]) PathLenStats {
	if first == nil {
		return PathLenStats{}
	}

	var (
		minLen, maxLen, numLeaves, firstLen, totLen int
		totSqSLen                                   float64
	)

	var walk func(cur *node[K, V], lenSoFar int)

	walk = func(cur *node[K, V], lenSoFar int) {
		lenSoFar++

		leaf := false

		if cur.Left != nil {
			walk(cur.Left, lenSoFar)
		} else {
			leaf = true
		}

		if cur.Right != nil {
			walk(cur.Right, lenSoFar)
		} else {
			leaf = true
		}

		if leaf {
			switch {
			case numLeaves == 0:
				firstLen = lenSoFar
				minLen, maxLen = lenSoFar, lenSoFar
			case lenSoFar > maxLen:
				maxLen = lenSoFar
			case lenSoFar < minLen:
				minLen = lenSoFar
			}

			numLeaves++
			totLen += lenSoFar

			delta := float64(lenSoFar - firstLen)
			totSqSLen += delta * delta
		}
	}

	walk(first, 0)

	meanLen := float64(totLen) / float64(numLeaves)
	meanSLen := meanLen - float64(firstLen)
	stdLen := math.Sqrt(totSqSLen/float64(numLeaves) - meanSLen*meanSLen)

	return PathLenStats{
		MinLen:    minLen,
		MaxLen:    maxLen,
		NumLeaves: numLeaves,
		MeanLen:   meanLen,
		StdLen:    stdLen,
	}
}

// samplePathLengths counts, for each of numSamples candidate keys produced
// by pickKey, how many comparisons a search for that key performs.
func samplePathLengths[K comparable, V any](first *node[K, V], compare cmp.Comparator[K], pickKey func() K, numSamples int) []int {
	lengths := make([]int, numSamples)
	if first == nil {
		return lengths
	}

	for i := range numSamples {
		key := pickKey()

		count := 0
		cur := first

		for cur != nil {
			count++

			if compare(cur.Key, key) < 0 {
				cur = cur.Right
			} else {
				cur = cur.Left
			}
		}

		lengths[i] = count
	}

	return lengths
}

// GraphNode is one entry of a Graph snapshot: a key and the level it sits
// on.
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

// GraphOptions restricts a Graph snapshot to a level and/or key window. A
// nil bound means unbounded on that side.
type GraphOptions[K comparable] struct {
	FromLevel *int
	ToLevel   *int
	FromKey   *K
	ToKey     *K
}

// graph returns every node reachable from first within the requested
// window, sorted by key, plus the parent->child edges between them as
// index pairs. Ported from generic.Tree.get_graph, adapted to read
// levels directly off node.Level instead of through a RightLevel helper.
func graph[K comparable, V any](first *node[K, V], compare cmp.Comparator[K], opts GraphOptions[K]) ([]GraphNode[K], []GraphEdge) {
	var nodes []GraphNode[K]

	var edges []GraphEdge

	if first == nil {
		return nodes, edges
	}

	var sub func(cur *node[K, V]) (idx int, ok bool)

	sub = func(cur *node[K, V]) (int, bool) {
		var (
			leftIdx, curIdx, rightIdx   int
			haveLeft, haveCur, haveRight bool
		)

		if cur.Left != nil {
			cond := (opts.FromLevel == nil || *opts.FromLevel <= cur.Left.Level) &&
				(opts.FromKey == nil || compare(*opts.FromKey, cur.Key) < 0)
			if cond {
				leftIdx, haveLeft = sub(cur.Left)
			}
		}

		cond := (opts.FromLevel == nil || *opts.FromLevel <= cur.Level) &&
			(opts.ToLevel == nil || cur.Level <= *opts.ToLevel) &&
			(opts.FromKey == nil || compare(cur.Key, *opts.FromKey) >= 0) &&
			(opts.ToKey == nil || compare(*opts.ToKey, cur.Key) >= 0)
		if cond {
			curIdx = len(nodes)
			haveCur = true

			nodes = append(nodes, GraphNode[K]{Key: cur.Key, Level: cur.Level})
		}

		if cur.Right != nil {
			cond := (opts.ToLevel == nil || cur.Right.Level <= *opts.ToLevel) &&
				(opts.ToKey == nil || compare(cur.Key, *opts.ToKey) < 0)

			if cond {
				rightIdx, haveRight = sub(cur.Right)
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

	sub(first)

	return nodes, edges
}
