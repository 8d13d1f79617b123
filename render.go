package forest

import (
	"fmt"

	"github.com/xlab/treeprint"
)

type renderFrame[K comparable] struct {
	branch treeprint.Tree
	key    K
}

// Sprint renders the subtree rooted at startKey with one "key: value"
// line per node, children in append order.
func (t *tree[K, V]) Sprint(startKey ...K) string {
	key, ok := t.startFrom(startKey)
	if !ok {
		return ""
	}
	root := treeprint.NewWithRoot(t.renderLabel(key))
	stack := []renderFrame[K]{{branch: root, key: key}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, child := range t.childKeysOf(f.key) {
			if len(t.childKeysOf(child)) == 0 {
				f.branch.AddNode(t.renderLabel(child))
				continue
			}
			stack = append(stack, renderFrame[K]{branch: f.branch.AddBranch(t.renderLabel(child)), key: child})
		}
	}
	return root.String()
}

func (t *tree[K, V]) renderLabel(key K) string {
	n, _ := t.node(key)
	return fmt.Sprintf("%v: %v", key, n.value)
}
