package container

import "iter"

// Map interface that all maps implement
type Map[K comparable, V any] interface {
	Put(key K, value V)
	Get(key K) (value V, found bool)
	Remove(key K)
	Keys() []K

	Container[V]
	// Empty() bool
	// Size() int
	// Clear()
	// Values() []V
	// String() string
}

// OrderedMap is a Map whose keys form a total order, supporting ordered
// traversal in addition to the plain Map operations.
//
// Implemented by every self-balancing search tree in this module
// (d2lexitree.Tree, d3lexitree.Tree, plexitree.Tree).
type OrderedMap[K comparable, V any] interface {
	Map[K, V]

	// Begin returns the smallest key and its value, or found=false if empty.
	Begin() (key K, value V, found bool)

	// End returns the largest key and its value, or found=false if empty.
	End() (key K, value V, found bool)

	// Iter yields all key-value pairs in ascending key order.
	Iter() iter.Seq2[K, V]
}
