package d2lexitree

import "github.com/qntx/lexitrees/internal/dnode"

// lower lowers cur1 by one level to fill the hole left below it, attaching
// it next to other1 (and, when present, other2). Returns whether the
// lowering left a hole for the caller to fix one level up.
//
// Ported from lower2.py.
func lower[K comparable, V any](prev, cur1, other1, other2 *dnode.Node[K, V]) bool {
	if other2 == nil {
		// Case Left1: cur1.Left == other1.
		// Case Right1: other1 is cur1's sole right-side sibling.
		// Case RightHi1: cur1.HighRight, so cur1.Right (r) sits between
		// cur1 and other1.
		var (
			highCase bool
			first    *dnode.Node[K, V]
		)

		switch {
		case cur1.Left == other1:
			first = other1
			cur1.Left = other1.Right
			other1.Right = cur1
			other1.HighRight = true
		case cur1.HighRight:
			r := cur1.Right
			highCase = true
			first = r
			r.Left = cur1
			cur1.Right = other1
		default:
			first = cur1
			cur1.HighRight = true
		}

		if prev.Left == cur1 {
			prev.Left = first

			return !highCase
		}

		hole := !highCase && !prev.HighRight
		prev.Right = first
		prev.HighRight = prev.HighRight && highCase

		return hole
	}

	// Case Left2 / Right2.
	var first *dnode.Node[K, V]

	if cur1.Left == other1 {
		first = other2
		other1.Right = other2.Left
		other1.HighRight = false
		cur1.Left = other2.Right
		other2.Left = other1
		other2.Right = cur1
		other2.HighRight = false
	} else {
		first = other1
		r := cur1.Right
		cur1.Right = other1.Left
		cur1.HighRight = false
		other1.Left = cur1

		if r != other1 {
			other1.Right = r
			r.Left = other2
		} else {
			other1.HighRight = false
		}
	}

	if prev.Left == cur1 {
		prev.Left = first
	} else {
		prev.Right = first // keeps the same HighRight
	}

	return false
}
