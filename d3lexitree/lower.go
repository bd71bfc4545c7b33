package d3lexitree

import "github.com/qntx/lexitrees/internal/dnode"

// lower lowers cur1 by one level. cur1 always points at cur2, which sits
// directly below it — if it didn't, cur2 (not cur1) would be the node to
// lower. Returns the new predecessors of cur1 and cur2 for the caller to
// resume walking up from.
//
// Ported from lower3.py.
func lower[K comparable, V any](prev, cur1, cur2, other1, other2, other3 *dnode.Node[K, V], prevIsRoot bool) (prevC1, prevC2 *dnode.Node[K, V]) {
	if other2 == nil {
		// Case Left1 / Right1 / RightHi1: cur1 has exactly one sibling.
		c1Left := cur1.Left

		if cur1.HighRight {
			r := cur1.Right

			r.Left = cur2

			if prev.Right == cur1 {
				prev.Right = r
			} else {
				prev.Left = r
			}

			cur1.Right = other1
			prevC2 = r
		} else {
			prev.Right = c1Left
			prev.HighRight = false

			if cur1.Right == cur2 {
				prevC2 = cur1
			} else {
				prevC2 = prev
			}
		}

		cur1.Left = c1Left.Right
		cur1.HighRight = true
		c1Left.Right = cur1
		c1Left.HighRight = true
		prevC1 = c1Left

		return prevC1, prevC2
	}

	if cur1.Left == other1 {
		// Case Left3 / Left2.
		lastOther := other2
		if other3 != nil {
			lastOther = other3
		}

		if prev.Right == cur1 {
			prev.Right = other2
		} else {
			prev.Left = other2
		}

		other1.Right = other2.Left
		other1.HighRight = false
		other2.Left = other1
		other2.HighRight = false
		cur1.Left = lastOther.Right
		cur1.HighRight = true
		lastOther.Right = cur1
		lastOther.HighRight = lastOther == other3

		return lastOther, cur1
	}

	// Case Right3 / Right2: cur1.Left == cur2.
	beforeLifted, lifted := cur1, other1
	if other3 != nil {
		beforeLifted, lifted = other1, other2
	}

	if cur1.HighRight {
		r := cur1.Right
		r.Left = lifted.Right
		lifted.Right = r
		cur1.Right = beforeLifted
	}

	beforeLifted.Right = lifted.Left
	lifted.Left = cur2
	lifted.HighRight = cur1.HighRight
	beforeLifted.HighRight = false

	if prev.Right == cur1 {
		prev.Right = lifted
	} else {
		prev.Left = lifted
	}

	cur1.Left = cur2.Right
	cur1.HighRight = beforeLifted != cur1
	cur2.Right = cur1
	cur2.HighRight = true

	return cur2, lifted
}
