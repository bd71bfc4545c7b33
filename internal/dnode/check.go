package dnode

import (
	"fmt"

	"github.com/qntx/lexitrees/cmp"
)

// Check validates the structural invariants of a deterministic lexi tree
// rooted at first: BST key order, at most maxListLen-1 consecutive
// same-level (HighRight) edges on any level list, and every leaf sitting at
// exactly the tree's height. Ported from DLTree._check_sub, with Python's
// asserts turned into a returned error so callers can wrap it in their own
// ErrInvariantViolation.
//
// maxListLen is 2 for 2-Lexi trees and 3 for 3-Lexi trees.
func Check[K comparable, V any](first *Node[K, V], compare cmp.Comparator[K], maxListLen int) error {
	if first == nil {
		return nil
	}

	height := Height(first)

	return checkSub(first, nil, nil, 0, compare, maxListLen, 1, height)
}

func checkSub[K comparable, V any](
	cur *Node[K, V], aboveMe, belowMe *K, numHighRights int,
	compare cmp.Comparator[K], maxListLen, curHeight, treeHeight int,
) error {
	if belowMe != nil && compare(cur.Key, *belowMe) >= 0 {
		return fmt.Errorf("key %v must be below %v", cur.Key, *belowMe)
	}

	if aboveMe != nil && compare(*aboveMe, cur.Key) >= 0 {
		return fmt.Errorf("key %v must be above %v", cur.Key, *aboveMe)
	}

	if cur.Left != nil {
		if err := checkSub(cur.Left, aboveMe, &cur.Key, 0, compare, maxListLen, curHeight+1, treeHeight); err != nil {
			return err
		}
	} else if curHeight != treeHeight {
		return fmt.Errorf("leaf %v at height %d, want %d", cur.Key, curHeight, treeHeight)
	}

	if cur.Right != nil {
		if cur.HighRight {
			numHighRights++
		} else {
			numHighRights = 0
		}

		if numHighRights >= maxListLen {
			return fmt.Errorf("level list through %v exceeds %d consecutive same-level edges", cur.Key, maxListLen-1)
		}

		newHeight := curHeight + 1
		if cur.HighRight {
			newHeight = curHeight
		}

		if err := checkSub(cur.Right, &cur.Key, belowMe, numHighRights, compare, maxListLen, newHeight, treeHeight); err != nil {
			return err
		}
	} else if curHeight != treeHeight {
		return fmt.Errorf("leaf %v at height %d, want %d", cur.Key, curHeight, treeHeight)
	}

	return nil
}
