package forest

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Tree is a labeled hierarchy of key/value nodes. Every node carries an
// opaque value and is addressed by a unique key; children keep the order
// they were appended in. The structure is append-only: nodes are never
// removed or moved, so the hierarchy stays acyclic by construction.
//
// A Tree is not safe for concurrent mutation; wrap it in a lock if it is
// shared between goroutines.
type Tree[K comparable, V any] interface {
	// Contains reports whether key has been added to the tree.
	Contains(key K) bool
	// Get returns the value stored at key, or ErrKeyNotFound.
	Get(key K) (V, error)
	// Size returns the number of nodes, including the root.
	Size() int
	// IsEmpty reports whether the tree has no root.
	IsEmpty() bool
	// Root returns the root key, or false if the tree is empty.
	Root() (K, bool)
	// RootValue returns the value stored at the root, or false if the
	// tree is empty.
	RootValue() (V, bool)

	// Append adds key as a new child of the root. It fails with
	// ErrDuplicateKey if key is taken and ErrKeyNotFound if the tree has
	// no root yet (use NewWithRoot to seed one).
	Append(key K, value V) error
	// AppendTo adds key as a new child of parent, which must already be
	// in the tree.
	AppendTo(parent, key K, value V) error
	// Extend appends each pair in order as a child of the root. A failure
	// stops the batch; pairs before the failing one stay applied.
	Extend(pairs []Pair[K, V]) error
	// ExtendTo is Extend with an explicit parent.
	ExtendTo(parent K, pairs []Pair[K, V]) error

	// Parent returns the value of key's parent. ok is false when key is
	// the root, which has no parent.
	Parent(key K) (value V, ok bool, err error)
	// Ancestors returns the values on the walk from key's parent up to
	// the root, nearest ancestor first. With reverse it runs root-down.
	// The root itself has no ancestors.
	Ancestors(key K, reverse bool) ([]V, error)
	// Path returns the values from the root down to key, inclusive.
	Path(key K) ([]V, error)
	// Children returns the values of key's direct children in the order
	// they were appended.
	Children(key K) ([]V, error)
	// ChildKeys returns the keys of key's direct children in append
	// order.
	ChildKeys(key K) ([]K, error)
	// Siblings returns the values of the other children of key's parent,
	// in child order. The root has no siblings.
	Siblings(key K) ([]V, error)
	// IsRoot reports whether key is the root.
	IsRoot(key K) (bool, error)
	// IsLeaf reports whether key has no children.
	IsLeaf(key K) (bool, error)
	// Leaves returns the values of all childless nodes, in the order the
	// nodes were inserted.
	Leaves() []V

	// Preorder visits a node before its children. Postorder visits a
	// node after its children. Inorder visits the first child's subtree,
	// the node, then the remaining subtrees. Levelorder visits nodes
	// breadth-first. All four walk siblings in append order, start at
	// startKey when given (the root otherwise), and return a fresh lazy
	// iterator per call. An absent start key yields an empty iterator,
	// not an error.
	Preorder(startKey ...K) Iterator[V]
	Postorder(startKey ...K) Iterator[V]
	Inorder(startKey ...K) Iterator[V]
	Levelorder(startKey ...K) Iterator[V]
	// BFS is an alias for Levelorder.
	BFS(startKey ...K) Iterator[V]

	// Equal reports whether both trees hold the same keys with the same
	// values, parents and child order.
	Equal(other Tree[K, V]) bool
	// Sprint renders the subtree at startKey (default root) as an ASCII
	// tree, one "key: value" line per node. Empty tree renders as "".
	Sprint(startKey ...K) string
}

// Iterator yields the values of one traversal. Each traversal call makes
// a fresh Iterator; iterating one never disturbs another.
type Iterator[V any] interface {
	HasNext() bool
	Next() (V, error)
}

// Pair is one key/value to insert via Extend.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// New returns an empty tree.
func New[K comparable, V any]() Tree[K, V] {
	return &tree[K, V]{
		nodes:    linkedhashmap.New(),
		children: make(map[K]*arraylist.List),
	}
}

// NewWithRoot returns a tree seeded with a single root node.
func NewWithRoot[K comparable, V any](key K, value V) Tree[K, V] {
	t := &tree[K, V]{
		nodes:    linkedhashmap.New(),
		children: make(map[K]*arraylist.List),
		root:     key,
		hasRoot:  true,
	}
	t.nodes.Put(key, &node[K, V]{value: value})
	return t
}
