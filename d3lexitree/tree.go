// Package d3lexitree implements the 3-Lexi Tree: a deterministic,
// self-balancing ordered map built the same way as d2lexitree — a binary
// search tree overlaid with a level list — but tolerating up to two
// consecutive same-level edges instead of one. The extra slack lets it
// lift eagerly during insertion (fixing the level list on the way down
// rather than the way back up) and trade a slightly taller worst case for
// fewer pointer rewrites per operation.
//
// Reference: mtomassoli/lexi-trees, 3-Lexi Trees.
package d3lexitree

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

// maxLevelList is the maximum number of nodes on one level list of a 3-Lexi
// tree (at most two consecutive same-level edges). Used only by Check.
const maxLevelList = 3

// Predefined errors for tree operations.
var (
	ErrKeyNotFound        = errors.New("key not found")
	ErrInvariantViolation = errors.New("lexi tree invariant violated")
)

// Comparator orders keys of type K. See cmp.Comparator.
type Comparator[K comparable] = cmp.Comparator[K]

// Tree is a 3-Lexi Tree mapping keys of type K to values of type V.
//
// The zero value is not usable; construct with New or NewWith. Not
// thread-safe.
type Tree[K comparable, V any] struct {
	root       *dnode.Node[K, V] // sentinel; root.Right is the real root
	len        int
	comparator Comparator[K]
}

var _ container.OrderedMap[int, int] = (*Tree[int, int])(nil)

// New creates an empty 3-Lexi tree ordered by K's natural ordering.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewWith[K, V](cmp.GenericComparator[K])
}

// NewWith creates an empty 3-Lexi tree ordered by the given comparator.
// Panics if comparator is nil.
func NewWith[K comparable, V any](comparator Comparator[K]) *Tree[K, V] {
	if comparator == nil {
		panic("d3lexitree: comparator must not be nil")
	}

	return &Tree[K, V]{root: dnode.NewRoot[K, V](), comparator: comparator}
}

// --------------------------------------------------------------------------------
// Queries

// Get retrieves the value associated with key. Time complexity: O(log n).
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

// Height returns the number of levels in the tree. Time complexity: O(log n).
func (t *Tree[K, V]) Height() int {
	return dnode.Height(t.root.Right)
}

// Check validates the tree's structural invariants: binary-search-tree key
// order, at most two consecutive same-level edges on any level list, and
// uniform leaf depth. O(n); intended for tests.
func (t *Tree[K, V]) Check() error {
	if err := dnode.Check(t.root.Right, t.comparator, maxLevelList); err != nil {
		return fmt.Errorf("%w: %w", ErrInvariantViolation, err)
	}

	if safe, fast := dnode.CheckHeight(t.root.Right), t.Height(); safe != fast {
		return fmt.Errorf("%w: height mismatch: spine=%d recomputed=%d", ErrInvariantViolation, fast, safe)
	}

	return nil
}

// Graph returns a consistent snapshot of the tree's nodes, sorted by key
// and tagged with their level, plus the parent->child edges between them.
// Purely observational.
func (t *Tree[K, V]) Graph(opts dnode.GraphOptions[K]) ([]dnode.GraphNode[K], []dnode.GraphEdge) {
	return dnode.Graph(t.root.Right, t.Height(), t.comparator, opts)
}

// PathLengthQuantiles samples search-path lengths for random keys per
// pickKey and returns the values at each requested quantile of the sample.
func PathLengthQuantiles[K cmp.Ordered, V any](t *Tree[K, V], pickKey func() K, numSamples int, quantiles []float64) []int {
	lengths := dnode.SamplePathLengths(t.root.Right, t.comparator, pickKey, numSamples)

	return quantile.Of(lengths, quantiles)
}

// --------------------------------------------------------------------------------
// Mutation

// Put inserts or updates the value for key. Time complexity: O(log n).
func (t *Tree[K, V]) Put(key K, val V) {
	t.insert(key, val)
}

// Delete removes key from the tree and returns its value.
//
// Returns ErrKeyNotFound if the key is absent. Time complexity: O(log n).
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

// String returns a level-aligned text rendering of the tree.
func (t *Tree[K, V]) String() string {
	if t.Empty() {
		return "D3LexiTree[]"
	}

	var sb strings.Builder

	sb.WriteString("D3LexiTree\n")
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
