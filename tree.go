package forest

import "reflect"

func (t *tree[K, V]) Size() int {
	if t == nil {
		return 0
	}
	return t.nodes.Size()
}

func (t *tree[K, V]) IsEmpty() bool {
	return !t.hasRoot
}

func (t *tree[K, V]) Contains(key K) bool {
	_, found := t.node(key)
	return found
}

func (t *tree[K, V]) Get(key K) (V, error) {
	n, found := t.node(key)
	if !found {
		var zero V
		return zero, ErrKeyNotFound
	}
	return n.value, nil
}

func (t *tree[K, V]) Root() (K, bool) {
	return t.root, t.hasRoot
}

func (t *tree[K, V]) RootValue() (V, bool) {
	if !t.hasRoot {
		var zero V
		return zero, false
	}
	n, _ := t.node(t.root)
	return n.value, true
}

func (t *tree[K, V]) Append(key K, value V) error {
	// The defaulted parent is the root; on an empty tree it does not
	// exist. Roots are made by NewWithRoot, not Append.
	return t.AppendTo(t.root, key, value)
}

func (t *tree[K, V]) AppendTo(parent, key K, value V) error {
	if t.Contains(key) {
		return ErrDuplicateKey
	}
	if !t.Contains(parent) {
		return ErrKeyNotFound
	}
	t.nodes.Put(key, &node[K, V]{value: value, parent: parent, hasParent: true})
	t.childList(parent).Add(key)
	return nil
}

func (t *tree[K, V]) Extend(pairs []Pair[K, V]) error {
	return t.ExtendTo(t.root, pairs)
}

// ExtendTo appends sequentially; on failure the pairs already appended
// stay in the tree.
func (t *tree[K, V]) ExtendTo(parent K, pairs []Pair[K, V]) error {
	for _, p := range pairs {
		if err := t.AppendTo(parent, p.Key, p.Value); err != nil {
			return err
		}
	}
	return nil
}

func (t *tree[K, V]) Parent(key K) (V, bool, error) {
	n, found := t.node(key)
	if !found {
		var zero V
		return zero, false, ErrKeyNotFound
	}
	if !n.hasParent {
		var zero V
		return zero, false, nil
	}
	p, _ := t.node(n.parent)
	return p.value, true, nil
}

func (t *tree[K, V]) Ancestors(key K, reverse bool) ([]V, error) {
	n, found := t.node(key)
	if !found {
		return nil, ErrKeyNotFound
	}
	values := []V{}
	for n.hasParent {
		n, _ = t.node(n.parent)
		values = append(values, n.value)
	}
	if reverse {
		for i, j := 0, len(values)-1; i < j; i, j = i+1, j-1 {
			values[i], values[j] = values[j], values[i]
		}
	}
	return values, nil
}

func (t *tree[K, V]) Path(key K) ([]V, error) {
	values, err := t.Ancestors(key, true)
	if err != nil {
		return nil, err
	}
	n, _ := t.node(key)
	return append(values, n.value), nil
}

func (t *tree[K, V]) Children(key K) ([]V, error) {
	if !t.Contains(key) {
		return nil, ErrKeyNotFound
	}
	keys := t.childKeysOf(key)
	values := make([]V, len(keys))
	for i, k := range keys {
		n, _ := t.node(k)
		values[i] = n.value
	}
	return values, nil
}

func (t *tree[K, V]) ChildKeys(key K) ([]K, error) {
	if !t.Contains(key) {
		return nil, ErrKeyNotFound
	}
	return t.childKeysOf(key), nil
}

func (t *tree[K, V]) Siblings(key K) ([]V, error) {
	n, found := t.node(key)
	if !found {
		return nil, ErrKeyNotFound
	}
	if !n.hasParent {
		return []V{}, nil
	}
	values := []V{}
	for _, k := range t.childKeysOf(n.parent) {
		if k == key {
			continue
		}
		sibling, _ := t.node(k)
		values = append(values, sibling.value)
	}
	return values, nil
}

func (t *tree[K, V]) IsRoot(key K) (bool, error) {
	if !t.Contains(key) {
		return false, ErrKeyNotFound
	}
	return t.hasRoot && key == t.root, nil
}

func (t *tree[K, V]) IsLeaf(key K) (bool, error) {
	if !t.Contains(key) {
		return false, ErrKeyNotFound
	}
	return len(t.childKeysOf(key)) == 0, nil
}

func (t *tree[K, V]) Leaves() []V {
	values := []V{}
	it := t.nodes.Iterator()
	for it.Next() {
		key := it.Key().(K)
		if list, ok := t.children[key]; ok && list.Size() > 0 {
			continue
		}
		values = append(values, it.Value().(*node[K, V]).value)
	}
	return values
}

// Equal compares through the public Tree interface, so any implementation
// can stand on the other side.
func (t *tree[K, V]) Equal(other Tree[K, V]) bool {
	if other == nil {
		return false
	}
	if t.Size() != other.Size() {
		return false
	}
	rk, ok := t.Root()
	ork, ook := other.Root()
	if ok != ook {
		return false
	}
	if !ok {
		return true
	}
	if rk != ork {
		return false
	}
	queue := []K{rk}
	for len(queue) > 0 {
		key := queue[0]
		queue = queue[1:]
		mine, _ := t.Get(key)
		theirs, err := other.Get(key)
		if err != nil || !reflect.DeepEqual(mine, theirs) {
			return false
		}
		kids := t.childKeysOf(key)
		otherKids, err := other.ChildKeys(key)
		if err != nil || len(kids) != len(otherKids) {
			return false
		}
		for i, k := range kids {
			if k != otherKids[i] {
				return false
			}
		}
		queue = append(queue, kids...)
	}
	return true
}
