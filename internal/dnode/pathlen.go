package dnode

import (
	"math"

	"github.com/qntx/lexitrees/cmp"
)

// PathLenStats summarizes the root-to-leaf path lengths of a tree. Ported
// from generic.PathLenStats / path_length_stats.
type PathLenStats struct {
	MinLen    int
	MaxLen    int
	NumLeaves int
	MeanLen   float64
	StdLen    float64
}

// PathLengthStats walks every root-to-leaf path once and reports the min,
// max, mean and standard deviation of their lengths.
func PathLengthStats[K comparable, V any](first *Node[K, V]) PathLenStats {
	if first == nil {
		return PathLenStats{}
	}

	var (
		minLen, maxLen, numLeaves, firstLen, totLen int
		totSqSLen                                   float64
	)

	var walk func(cur *Node[K, V], lenSoFar int)

	walk = func(cur *Node[K, V], lenSoFar int) {
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

// SamplePathLengths counts, for each of numSamples candidate keys produced
// by pickKey, how many comparisons a search for that key performs. Ported
// from generic.sample_path_lengths, generalized to take a caller-supplied
// key generator instead of assuming numeric keys uniformly distributed
// between the tree's min and max (Go's type system has no interpolation
// operator for an arbitrary comparable K).
func SamplePathLengths[K comparable, V any](first *Node[K, V], compare cmp.Comparator[K], pickKey func() K, numSamples int) []int {
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
