package quadtree

import "github.com/SupremeHuaji/Quadtree/render"

// DebugNodes returns every node's boundary and leaf/internal status, in
// traversal order, for render.Boundaries.
func (t *Tree[V]) DebugNodes() []render.NodeBoundary {
	var out []render.NodeBoundary
	stack := []*node[V]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, render.NodeBoundary{Rect: n.boundary, IsLeaf: n.isLeaf()})
		if !n.isLeaf() {
			stack = pushChildrenReversed(stack, n)
		}
	}
	return out
}
