package plexitree

import (
	"errors"
	"fmt"
	"iter"
	"math/rand"
	"strings"
	"time"

	"github.com/qntx/lexitrees/cmp"
	"github.com/qntx/lexitrees/container"
	"github.com/qntx/lexitrees/internal/quantile"
)

// Predefined errors for tree operations.
var (
	ErrKeyNotFound        = errors.New("key not found")
	ErrInvariantViolation = errors.New("lexi tree invariant violated")
)

// Comparator orders keys of type K, as returned by cmp.Compare or supplied
// by the caller.
type Comparator[K comparable] = cmp.Comparator[K]

// Tree is a probabilistic self-balancing ordered map: a P-Lexi Tree.
// Each key's level is drawn once from a geometric distribution at
// insertion (p is the trial's success probability, defaulting to 0.5, as
// in a skip list), and the tree stays balanced in expectation without
// ever touching a node's level again. Grounded on PLTree.py.
//
// The zero value is not usable; construct with New or NewWith.
type Tree[K comparable, V any] struct {
	root       *node[K, V]
	maxLevel   int
	len        int
	p          float64
	rng        *rand.Rand
	comparator Comparator[K]
}

var _ container.OrderedMap[int, int] = (*Tree[int, int])(nil)

// Option configures a Tree constructed with NewWith.
type Option[K comparable, V any] func(*Tree[K, V])

// WithProbability sets the geometric trial's success probability used by
// randLevel. The default is 0.5. Panics if p is not in (0, 1).
func WithProbability[K comparable, V any](p float64) Option[K, V] {
	return func(t *Tree[K, V]) {
		if p <= 0 || p >= 1 {
			panic("plexitree: probability must be in (0, 1)")
		}

		t.p = p
	}
}

// New creates an empty P-Lexi tree for an ordered key type, using
// cmp.Compare for ordering.
func New[K cmp.Ordered, V any](opts ...Option[K, V]) *Tree[K, V] {
	return NewWith[K, V](cmp.Compare[K], opts...)
}

// NewWith creates an empty P-Lexi tree using a custom comparator. Panics
// if comparator is nil.
func NewWith[K comparable, V any](comparator Comparator[K], opts ...Option[K, V]) *Tree[K, V] {
	if comparator == nil {
		panic("plexitree: comparator must not be nil")
	}

	t := &Tree[K, V]{
		root:       &node[K, V]{Level: maxLevel + 1},
		maxLevel:   -1,
		p:          0.5,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		comparator: comparator,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// first returns the actual root of the keyed content (the sentinel
// root.Right), or nil if the tree is empty.
func (t *Tree[K, V]) first() *node[K, V] {
	return t.root.Right
}

// Len reports the number of keys in the tree.
func (t *Tree[K, V]) Len() int { return t.len }

// Size reports the number of keys in the tree.
func (t *Tree[K, V]) Size() int { return t.len }

// Empty reports whether the tree has no keys.
func (t *Tree[K, V]) Empty() bool { return t.len == 0 }

// IsEmpty reports whether the tree has no keys.
func (t *Tree[K, V]) IsEmpty() bool { return t.len == 0 }

// Clear removes all keys from the tree.
func (t *Tree[K, V]) Clear() {
	t.root.Right = nil
	t.maxLevel = -1
	t.len = 0
}

// Height returns the tree's height, computed from the top key's level,
// mirroring PLTree.get_height.
func (t *Tree[K, V]) Height() int {
	return t.maxLevel + 1
}

// Get returns the value stored under key, and whether it was present.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	var zero V

	cur := t.first()
	for cur != nil {
		switch c := t.comparator(cur.Key, key); {
		case c < 0:
			cur = cur.Right
		case c > 0:
			cur = cur.Left
		default:
			return cur.Val, true
		}
	}

	return zero, false
}

// Has reports whether key is present in the tree.
func (t *Tree[K, V]) Has(key K) bool {
	_, ok := t.Get(key)

	return ok
}

// Put inserts or updates the value stored under key.
func (t *Tree[K, V]) Put(key K, val V) {
	t.insert(key, val, t.randLevel())
}

// Remove deletes key from the tree, doing nothing if it is absent.
// Satisfies container.Map.
func (t *Tree[K, V]) Remove(key K) {
	t.remove(key)
}

// Delete deletes key from the tree, returning ErrKeyNotFound if absent.
func (t *Tree[K, V]) Delete(key K) (V, error) {
	val, ok := t.remove(key)
	if !ok {
		return val, fmt.Errorf("plexitree: %w: %v", ErrKeyNotFound, key)
	}

	return val, nil
}

// RemoveOr deletes key, returning fallback if it was absent.
func (t *Tree[K, V]) RemoveOr(key K, fallback V) V {
	val, ok := t.remove(key)
	if !ok {
		return fallback
	}

	return val
}

// Begin returns the smallest key and its value. ok is false if the tree
// is empty.
func (t *Tree[K, V]) Begin() (key K, val V, ok bool) {
	cur := t.first()
	if cur == nil {
		return key, val, false
	}

	for cur.Left != nil {
		cur = cur.Left
	}

	return cur.Key, cur.Val, true
}

// End returns the largest key and its value. ok is false if the tree is
// empty.
func (t *Tree[K, V]) End() (key K, val V, ok bool) {
	cur := t.first()
	if cur == nil {
		return key, val, false
	}

	for cur.Right != nil {
		cur = cur.Right
	}

	return cur.Key, cur.Val, true
}

// Keys returns all keys in ascending order.
func (t *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, t.len)
	for k := range t.Iter() {
		keys = append(keys, k)
	}

	return keys
}

// Values returns all values, ordered by ascending key.
func (t *Tree[K, V]) Values() []V {
	vals := make([]V, 0, t.len)
	for _, v := range t.Iter() {
		vals = append(vals, v)
	}

	return vals
}

// Iter yields every (key, value) pair in ascending key order.
func (t *Tree[K, V]) Iter() iter.Seq2[K, V] {
	return inOrder(t.first())
}

// RIter yields every (key, value) pair in descending key order.
func (t *Tree[K, V]) RIter() iter.Seq2[K, V] {
	return reverseOrder(t.first())
}

// Check validates the tree's structural invariant: every left child's
// level is strictly less than its parent's, and every right child's level
// is at most its parent's. Ported from PLTree._check_sub /
// PLTree._check.
func (t *Tree[K, V]) Check() error {
	first := t.first()
	if first == nil {
		if t.maxLevel != -1 {
			return fmt.Errorf("%w: empty tree has maxLevel=%d, want -1", ErrInvariantViolation, t.maxLevel)
		}

		return nil
	}

	if first.Level != t.maxLevel {
		return fmt.Errorf("%w: top key has level %d, tracked maxLevel=%d", ErrInvariantViolation, first.Level, t.maxLevel)
	}

	return checkSub(first, nil, nil, t.comparator)
}

// Graph returns a consistent snapshot of the tree's nodes, sorted by key
// and tagged with their level, plus the parent->child edges between them
// as index pairs into the returned node slice.
func (t *Tree[K, V]) Graph(opts GraphOptions[K]) ([]GraphNode[K], []GraphEdge) {
	return graph(t.first(), t.comparator, opts)
}

// PathLengthQuantiles samples search-path lengths for random keys, per
// pickKey, and returns the values at each requested quantile (0 to 1) of
// the sample.
func PathLengthQuantiles[K cmp.Ordered, V any](t *Tree[K, V], pickKey func() K, numSamples int, quantiles []float64) []int {
	lengths := samplePathLengths(t.first(), t.comparator, pickKey, numSamples)

	return quantile.Of(lengths, quantiles)
}

// String renders the tree as a text dump, one key per line indented by its
// depth and followed by "@level", grounded on PLTree.pretty_print.
func (t *Tree[K, V]) String() string {
	var sb strings.Builder

	sb.WriteString("PLexiTree\n")
	output(&sb, t.first(), "")

	return sb.String()
}

func output[K comparable, V any](sb *strings.Builder, n *node[K, V], indent string) {
	if n == nil {
		return
	}

	output(sb, n.Left, indent+"  ")
	fmt.Fprintf(sb, "%s%v @%d\n", indent, n.Key, n.Level)
	output(sb, n.Right, indent+"  ")
}
