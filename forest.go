package forest

import (
	"errors"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

var (
	ErrKeyNotFound  = errors.New("the key was not found in the tree")
	ErrDuplicateKey = errors.New("the key was already added to the tree")
	ErrNoMoreValues = errors.New("there are no more values in the traversal")
)

type (
	tree[K comparable, V any] struct {
		// nodes maps key -> *node. Insertion-ordered so that Leaves and
		// node enumeration are deterministic for a given append history.
		nodes *linkedhashmap.Map
		// children maps key -> child keys in append order. Keys with no
		// children have no entry; reads treat a missing entry as empty.
		children map[K]*arraylist.List
		root     K
		hasRoot  bool
	}

	// node is the record stored per key. hasParent is false only for the
	// root; a zero K is a legitimate key, so "no parent" needs its own
	// flag rather than a reserved key value.
	node[K comparable, V any] struct {
		value     V
		parent    K
		hasParent bool
	}

	// walkFrame is one entry of the explicit traversal stacks. stage
	// tracks how far the node has been processed: postorder uses it as an
	// expanded flag, inorder steps it through first-child/self/rest.
	walkFrame[K comparable] struct {
		key   K
		stage int8
	}

	// iterator drives a traversal. step produces the next key of the
	// walk; the upcoming key is precomputed so HasNext is a plain flag
	// check.
	iterator[K comparable, V any] struct {
		t    *tree[K, V]
		step func() (K, bool)
		next K
		has  bool
	}
)

func (t *tree[K, V]) node(key K) (*node[K, V], bool) {
	v, found := t.nodes.Get(key)
	if !found {
		return nil, false
	}
	return v.(*node[K, V]), true
}

// childList returns the child list for key, creating it on first write.
func (t *tree[K, V]) childList(key K) *arraylist.List {
	list, ok := t.children[key]
	if !ok {
		list = arraylist.New()
		t.children[key] = list
	}
	return list
}

// childKeysOf reads the recorded child keys without membership checks.
// A key with no recorded children reads as empty.
func (t *tree[K, V]) childKeysOf(key K) []K {
	list, ok := t.children[key]
	if !ok || list.Size() == 0 {
		return nil
	}
	keys := make([]K, 0, list.Size())
	list.Each(func(_ int, v interface{}) {
		keys = append(keys, v.(K))
	})
	return keys
}
