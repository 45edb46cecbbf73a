package quadtree

import (
	"github.com/SupremeHuaji/Quadtree/geom"
	"github.com/SupremeHuaji/Quadtree/observability"
	"github.com/SupremeHuaji/Quadtree/validate"
)

// Remove deletes the entry at point, if any, and returns its value. It
// compresses the ancestor chain of the affected leaf afterward.
func (t *Tree[V]) Remove(point geom.Point) (V, bool) {
	var zero V
	if !t.root.boundary.Contains(point) {
		t.strategy.OnInvalid(validate.KindOutOfBoundary, "remove rejected: point outside root boundary")
		return zero, false
	}

	path := []*node[V]{t.root}
	cur := t.root
	for !cur.isLeaf() {
		cur = cur.childFor(point)
		path = append(path, cur)
	}

	idx := -1
	for i := range cur.entries {
		if cur.entries[i].point == point {
			idx = i
			break
		}
	}
	if idx == -1 {
		return zero, false
	}

	removed := cur.entries[idx].value
	cur.entries = append(cur.entries[:idx], cur.entries[idx+1:]...)
	t.count--

	t.compressPath(path)
	return removed, true
}

// RemoveRange deletes every entry whose point lies in rect and returns how
// many were removed, compressing the whole tree afterward.
func (t *Tree[V]) RemoveRange(rect geom.Rect) int {
	removed := 0
	stack := []*node[V]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !n.boundary.Intersects(rect) {
			continue
		}
		if !n.isLeaf() {
			stack = pushChildrenReversed(stack, n)
			continue
		}
		kept := n.entries[:0]
		for _, e := range n.entries {
			if rect.Contains(e.point) {
				removed++
				continue
			}
			kept = append(kept, e)
		}
		n.entries = kept
	}
	t.count -= removed
	if removed > 0 {
		t.Compress()
	}
	return removed
}

// compressPath walks path from the leaf back up to the root, collapsing any
// Internal node whose subtree now fits within capacity. Counts are monotone
// non-decreasing going up, so the walk stops at the first ancestor that is
// still over capacity.
func (t *Tree[V]) compressPath(path []*node[V]) {
	for i := len(path) - 1; i >= 0; i-- {
		n := path[i]
		if n.isLeaf() {
			continue
		}
		count := subtreeCount(n)
		if count > t.capacity {
			break
		}
		n.collapse(collectEntries(n))
		t.logger.Debug(observability.MetricCompressCount, observability.Int("entries", count))
	}
}

// Compress applies compression globally, bottom-up: every Internal node
// whose subtree fits within capacity collapses to a Leaf.
func (t *Tree[V]) Compress() {
	t.compressSubtree(t.root)
}

// compressSubtree is an iterative post-order walk: children are compressed
// before their parent is considered, using an explicit stack of
// (node, childrenPushed) frames instead of recursion.
func (t *Tree[V]) compressSubtree(root *node[V]) {
	type frame struct {
		n       *node[V]
		visited bool
	}
	stack := []frame{{n: root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.n.isLeaf() {
			stack = stack[:len(stack)-1]
			continue
		}
		if !top.visited {
			top.visited = true
			for _, c := range top.n.children {
				stack = append(stack, frame{n: c})
			}
			continue
		}
		n := top.n
		stack = stack[:len(stack)-1]
		count := subtreeCount(n)
		if count <= t.capacity {
			n.collapse(collectEntries(n))
			t.logger.Debug(observability.MetricCompressCount, observability.Int("entries", count))
		}
	}
}

// Clear resets the tree to a fresh empty leaf over its existing boundary.
func (t *Tree[V]) Clear() {
	t.root = newLeaf[V](t.root.boundary)
	t.count = 0
}
