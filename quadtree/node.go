package quadtree

import "github.com/SupremeHuaji/Quadtree/geom"

// entry is a stored (point, value) pair. It is unexported; callers see the
// exported Entry[V] copy returned from queries.
type entry[V any] struct {
	point geom.Point
	value V
}

// node is either a Leaf (children == nil) or an Internal node (entries ==
// nil, children holds exactly four non-nil quadrant children). This mirrors
// the teacher's QuadTree node shape (contentstream/editor/quadtree.go),
// generalized so that an Internal node never itself holds entries: every
// entry lives in exactly one leaf, per the data model's Internal-node
// invariant.
type node[V any] struct {
	boundary geom.Rect
	entries  []entry[V]
	children [4]*node[V]
}

func newLeaf[V any](boundary geom.Rect) *node[V] {
	return &node[V]{boundary: boundary}
}

func (n *node[V]) isLeaf() bool {
	return n.children[0] == nil
}

// childFor returns the child of an Internal node whose boundary owns p,
// using the upper/right-biased split-line tie-break.
func (n *node[V]) childFor(p geom.Point) *node[V] {
	return n.children[geom.QuadrantOf(n.boundary, p)]
}

// subdivide converts a Leaf into an Internal node, distributing its current
// entries into four new quadrant-leaf children. It does not recurse: any
// child that ends up over capacity is left for the caller to subdivide in
// turn (the mutation engine drives this with an explicit stack).
func (n *node[V]) subdivide() {
	nw, ne, sw, se := n.boundary.Quadrants()
	n.children[geom.QuadNW] = newLeaf[V](nw)
	n.children[geom.QuadNE] = newLeaf[V](ne)
	n.children[geom.QuadSW] = newLeaf[V](sw)
	n.children[geom.QuadSE] = newLeaf[V](se)

	old := n.entries
	n.entries = nil
	for _, e := range old {
		child := n.childFor(e.point)
		child.entries = append(child.entries, e)
	}
}

// collapse turns an Internal node back into a Leaf holding exactly the
// given entries (already gathered in NW, NE, SW, SE order by the caller).
func (n *node[V]) collapse(entries []entry[V]) {
	n.children = [4]*node[V]{}
	n.entries = entries
}

// pushChildrenReversed pushes n's four children onto stack in SE, SW, NE,
// NW order, so that popping the stack (LIFO) visits them in the canonical
// NW, NE, SW, SE traversal order. This is the one trick that lets every
// traversal in this package stay a flat loop over an explicit []*node[V]
// stack instead of recursing.
func pushChildrenReversed[V any](stack []*node[V], n *node[V]) []*node[V] {
	return append(stack,
		n.children[geom.QuadSE],
		n.children[geom.QuadSW],
		n.children[geom.QuadNE],
		n.children[geom.QuadNW],
	)
}

// subtreeCount returns the total number of entries stored anywhere in the
// subtree rooted at n, via an iterative stack-based walk.
func subtreeCount[V any](n *node[V]) int {
	if n.isLeaf() {
		return len(n.entries)
	}
	count := 0
	stack := []*node[V]{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.isLeaf() {
			count += len(cur.entries)
			continue
		}
		stack = pushChildrenReversed(stack, cur)
	}
	return count
}

// collectEntries gathers every entry in the subtree rooted at n, in NW, NE,
// SW, SE traversal order, via an iterative stack-based walk.
func collectEntries[V any](n *node[V]) []entry[V] {
	if n.isLeaf() {
		out := make([]entry[V], len(n.entries))
		copy(out, n.entries)
		return out
	}
	var out []entry[V]
	stack := []*node[V]{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.isLeaf() {
			out = append(out, cur.entries...)
			continue
		}
		stack = pushChildrenReversed(stack, cur)
	}
	return out
}
