package forest

import "github.com/emirpasic/gods/queues/linkedlistqueue"

// All four walks run on explicit stacks or a queue rather than recursion,
// so traversal depth is bounded by heap, not goroutine stack.

func (t *tree[K, V]) newIterator(step func() (K, bool)) Iterator[V] {
	it := &iterator[K, V]{t: t, step: step}
	it.next, it.has = step()
	return it
}

func (it *iterator[K, V]) HasNext() bool {
	return it.has
}

func (it *iterator[K, V]) Next() (V, error) {
	if !it.has {
		var zero V
		return zero, ErrNoMoreValues
	}
	n, _ := it.t.node(it.next)
	it.next, it.has = it.step()
	return n.value, nil
}

// startFrom resolves the optional start key. Unknown or defaulted-on-empty
// start keys report false, which the traversals turn into an empty
// iterator rather than an error.
func (t *tree[K, V]) startFrom(startKey []K) (K, bool) {
	if len(startKey) > 0 {
		return startKey[0], t.Contains(startKey[0])
	}
	return t.root, t.hasRoot
}

func (t *tree[K, V]) Preorder(startKey ...K) Iterator[V] {
	var stack []K
	if key, ok := t.startFrom(startKey); ok {
		stack = append(stack, key)
	}
	return t.newIterator(func() (K, bool) {
		if len(stack) == 0 {
			var zero K
			return zero, false
		}
		key := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		kids := t.childKeysOf(key)
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, kids[i])
		}
		return key, true
	})
}

func (t *tree[K, V]) Postorder(startKey ...K) Iterator[V] {
	var stack []walkFrame[K]
	if key, ok := t.startFrom(startKey); ok {
		stack = append(stack, walkFrame[K]{key: key})
	}
	return t.newIterator(func() (K, bool) {
		for len(stack) > 0 {
			top := len(stack) - 1
			if stack[top].stage > 0 {
				key := stack[top].key
				stack = stack[:top]
				return key, true
			}
			stack[top].stage = 1
			kids := t.childKeysOf(stack[top].key)
			for i := len(kids) - 1; i >= 0; i-- {
				stack = append(stack, walkFrame[K]{key: kids[i]})
			}
		}
		var zero K
		return zero, false
	})
}

// Inorder generalizes binary in-order to n-ary nodes: first child's
// subtree, then the node, then each remaining child's subtree. Frames
// step through stages descend-first (0), visit-self (1), expand-rest (2).
func (t *tree[K, V]) Inorder(startKey ...K) Iterator[V] {
	var stack []walkFrame[K]
	if key, ok := t.startFrom(startKey); ok {
		stack = append(stack, walkFrame[K]{key: key})
	}
	return t.newIterator(func() (K, bool) {
		for len(stack) > 0 {
			top := len(stack) - 1
			switch stack[top].stage {
			case 0:
				stack[top].stage = 1
				if kids := t.childKeysOf(stack[top].key); len(kids) > 0 {
					stack = append(stack, walkFrame[K]{key: kids[0]})
				}
			case 1:
				stack[top].stage = 2
				return stack[top].key, true
			default:
				key := stack[top].key
				stack = stack[:top]
				kids := t.childKeysOf(key)
				for i := len(kids) - 1; i >= 1; i-- {
					stack = append(stack, walkFrame[K]{key: kids[i]})
				}
			}
		}
		var zero K
		return zero, false
	})
}

func (t *tree[K, V]) Levelorder(startKey ...K) Iterator[V] {
	queue := linkedlistqueue.New()
	if key, ok := t.startFrom(startKey); ok {
		queue.Enqueue(key)
	}
	return t.newIterator(func() (K, bool) {
		v, ok := queue.Dequeue()
		if !ok {
			var zero K
			return zero, false
		}
		key := v.(K)
		for _, k := range t.childKeysOf(key) {
			queue.Enqueue(k)
		}
		return key, true
	})
}

func (t *tree[K, V]) BFS(startKey ...K) Iterator[V] {
	return t.Levelorder(startKey...)
}
