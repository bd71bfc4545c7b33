// Package d2lexitree implements the 2-Lexi Tree: a deterministic,
// self-balancing ordered map built by threading a second, coarser ordering
// (a "level list") through a binary search tree. Every internal node keeps
// at most one same-level successor on its level list, which is what bounds
// the tree's height to O(log n) without any rotations or node coloring.
//
// Reference: mtomassoli/lexi-trees, 2-Lexi Trees.
package d2lexitree

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/qntx/lexitrees/cmp"
	"github.com/qntx/lexitrees/container"
	"github.com/qntx/lexitrees/internal/dnode"
	"github.com/qntx/lexitrees/internal/quantile"
)

// maxLevelList is the maximum number of nodes on one level list of a 2-Lexi
// tree (at most one consecutive same-level edge). Used only by Check.
const maxLevelList = 2

// Predefined errors for tree operations.
var (
	ErrKeyNotFound        = errors.New("key not found")
	ErrInvariantViolation = errors.New("lexi tree invariant violated")
)

// Comparator orders keys of type K. See cmp.Comparator.
type Comparator[K comparable] = cmp.Comparator[K]

// Tree is a 2-Lexi Tree mapping keys of type K to values of type V.
//
// The zero value is not usable; construct with New or NewWith. Not
// thread-safe.
type Tree[K comparable, V any] struct {
	root       *dnode.Node[K, V] // sentinel; root.Right is the real root
	len        int
	comparator Comparator[K]
}

var _ container.OrderedMap[int, int] = (*Tree[int, int])(nil)

// New creates an empty 2-Lexi tree ordered by K's natural ordering.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewWith[K, V](cmp.GenericComparator[K])
}

// NewWith creates an empty 2-Lexi tree ordered by the given comparator.
// Panics if comparator is nil.
func NewWith[K comparable, V any](comparator Comparator[K]) *Tree[K, V] {
	if comparator == nil {
		panic("d2lexitree: comparator must not be nil")
	}

	return &Tree[K, V]{root: dnode.NewRoot[K, V](), comparator: comparator}
}

// --------------------------------------------------------------------------------
// Queries

// Get retrieves the value associated with key.
//
// Returns the value and true if found, the zero value and false otherwise.
// Time complexity: O(log n).
func (t *Tree[K, V]) Get(key K) (V, bool) {
	return dnode.Find(t.root.Right, key, t.comparator)
}

// Has reports whether key is present in the tree. Time complexity: O(log n).
func (t *Tree[K, V]) Has(key K) bool {
	_, found := t.Get(key)

	return found
}

// Len returns the number of keys in the tree. Time complexity: O(1).
func (t *Tree[K, V]) Len() int {
	return t.len
}

// Size is an alias for Len, satisfying container.Container.
func (t *Tree[K, V]) Size() int {
	return t.len
}

// Empty reports whether the tree has no keys.
func (t *Tree[K, V]) Empty() bool {
	return t.len == 0
}

// IsEmpty is an alias for Empty.
func (t *Tree[K, V]) IsEmpty() bool {
	return t.len == 0
}

// Clear removes every key from the tree. Time complexity: O(1).
func (t *Tree[K, V]) Clear() {
	t.root = dnode.NewRoot[K, V]()
	t.len = 0
}

// Begin returns the smallest key and its value, or found=false if empty.
// Time complexity: O(log n).
func (t *Tree[K, V]) Begin() (key K, value V, found bool) {
	cur := t.root.Right
	if cur == nil {
		return key, value, false
	}

	for cur.Left != nil {
		cur = cur.Left
	}

	return cur.Key, cur.Val, true
}

// End returns the largest key and its value, or found=false if empty.
// Time complexity: O(log n).
func (t *Tree[K, V]) End() (key K, value V, found bool) {
	cur := t.root.Right
	if cur == nil {
		return key, value, false
	}

	for cur.Right != nil {
		cur = cur.Right
	}

	return cur.Key, cur.Val, true
}

// Keys returns every key in ascending order. Time complexity: O(n).
func (t *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, t.len)
	for k := range t.Iter() {
		keys = append(keys, k)
	}

	return keys
}

// Values returns every value, ordered by ascending key. Time complexity: O(n).
func (t *Tree[K, V]) Values() []V {
	vals := make([]V, 0, t.len)
	for _, v := range t.Iter() {
		vals = append(vals, v)
	}

	return vals
}

// Iter yields every (key, value) pair in ascending key order.
func (t *Tree[K, V]) Iter() iter.Seq2[K, V] {
	return dnode.InOrder(t.root.Right)
}

// RIter yields every (key, value) pair in descending key order.
func (t *Tree[K, V]) RIter() iter.Seq2[K, V] {
	return dnode.ReverseOrder(t.root.Right)
}

// Height returns the number of levels in the tree, i.e. the length of the
// leftmost spine. An empty tree has height 0. Time complexity: O(log n).
func (t *Tree[K, V]) Height() int {
	return dnode.Height(t.root.Right)
}

// Check validates the tree's structural invariants: binary-search-tree key
// order, at most one consecutive same-level edge on any level list, and
// uniform leaf depth. Returns ErrInvariantViolation wrapping a description
// of the first violation found, or nil. O(n); intended for tests, not
// production call sites.
func (t *Tree[K, V]) Check() error {
	if err := dnode.Check(t.root.Right, t.comparator, maxLevelList); err != nil {
		return fmt.Errorf("%w: %w", ErrInvariantViolation, err)
	}

	if safe, fast := dnode.CheckHeight(t.root.Right), t.Height(); safe != fast {
		return fmt.Errorf("%w: height mismatch: spine=%d recomputed=%d", ErrInvariantViolation, fast, safe)
	}

	return nil
}

// Graph returns a consistent snapshot of the tree's nodes, sorted by key and
// tagged with their level, plus the parent->child edges between them as
// index pairs into the returned node slice. Purely observational.
func (t *Tree[K, V]) Graph(opts dnode.GraphOptions[K]) ([]dnode.GraphNode[K], []dnode.GraphEdge) {
	return dnode.Graph(t.root.Right, t.Height(), t.comparator, opts)
}

// PathLengthQuantiles samples search-path lengths for the keys produced by
// pickKey and returns the values at each requested quantile (0 to 1) of the
// sample.
func PathLengthQuantiles[K cmp.Ordered, V any](t *Tree[K, V], pickKey func() K, numSamples int, quantiles []float64) []int {
	lengths := dnode.SamplePathLengths(t.root.Right, t.comparator, pickKey, numSamples)

	return quantile.Of(lengths, quantiles)
}

// --------------------------------------------------------------------------------
// Mutation

// Put inserts or updates the value for key. Time complexity: O(log n)
// amortized.
func (t *Tree[K, V]) Put(key K, val V) {
	t.insert(key, val)
}

// Delete removes key from the tree and returns its value.
//
// Returns ErrKeyNotFound if the key is absent. Time complexity: O(log n)
// amortized.
func (t *Tree[K, V]) Delete(key K) (V, error) {
	val, ok := t.remove(key)
	if !ok {
		var zero V

		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}

	return val, nil
}

// Remove deletes key from the tree, doing nothing if it is absent. Satisfies
// container.Map.
func (t *Tree[K, V]) Remove(key K) {
	t.remove(key)
}

// RemoveOr deletes key and returns its value, or def if key was absent.
func (t *Tree[K, V]) RemoveOr(key K, def V) V {
	if val, ok := t.remove(key); ok {
		return val
	}

	return def
}

// --------------------------------------------------------------------------------
// String

// String returns a level-aligned text rendering of the tree, indenting each
// key by its level in the level-list dimension. Ported from
// DLTree.pretty_print, adapted to satisfy container.Container.
func (t *Tree[K, V]) String() string {
	if t.Empty() {
		return "D2LexiTree[]"
	}

	var sb strings.Builder

	sb.WriteString("D2LexiTree\n")
	output(&sb, t.root.Right, t.Height()-1)

	return sb.String()
}

func output[K comparable, V any](sb *strings.Builder, cur *dnode.Node[K, V], level int) {
	if cur.Left != nil {
		output(sb, cur.Left, level-1)
	}

	fmt.Fprintf(sb, "%s%v\n", strings.Repeat("  ", level), cur.Key)

	if cur.Right != nil {
		output(sb, cur.Right, cur.RightLevel(level))
	}
}
