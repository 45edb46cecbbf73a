package quadtree

import (
	"fmt"

	"github.com/SupremeHuaji/Quadtree/geom"
	"github.com/SupremeHuaji/Quadtree/validate"
)

// traverse walks the tree iteratively with an explicit stack, pruning any
// node whose boundary fails prune, and calling visit on every entry of
// every unpruned leaf whose point satisfies test. This is the shared
// traversal skeleton every query in this file is built on.
func (t *Tree[V]) traverse(prune func(geom.Rect) bool, test func(geom.Point) bool) []Entry[V] {
	var out []Entry[V]
	stack := []*node[V]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !prune(n.boundary) {
			continue
		}
		if n.isLeaf() {
			for _, e := range n.entries {
				if test(e.point) {
					out = append(out, Entry[V]{Point: e.point, Value: e.value})
				}
			}
			continue
		}
		stack = pushChildrenReversed(stack, n)
	}
	return out
}

// Query returns every entry whose point lies in rect, in NW, NE, SW, SE
// traversal order.
func (t *Tree[V]) Query(rect geom.Rect) []Entry[V] {
	return t.traverse(
		func(b geom.Rect) bool { return b.Intersects(rect) },
		func(p geom.Point) bool { return rect.Contains(p) },
	)
}

// QueryCircle returns every entry within radius of center.
func (t *Tree[V]) QueryCircle(center geom.Point, radius float32) []Entry[V] {
	radiusSq := radius * radius
	return t.traverse(
		func(b geom.Rect) bool { return b.IntersectsCircle(center, radius) },
		func(p geom.Point) bool { return geom.DistanceSquared(center, p) <= radiusSq },
	)
}

// QueryPolygon returns every entry inside the polygon described by verts.
// Fewer than 3 vertices yields no matches, not an error.
func (t *Tree[V]) QueryPolygon(verts []geom.Point) []Entry[V] {
	if len(verts) < 3 {
		t.strategy.OnInvalid(validate.KindMalformedPolygon,
			fmt.Sprintf("polygon has %d vertices, need >= 3", len(verts)))
		return nil
	}
	return t.traverse(
		func(b geom.Rect) bool { return b.IntersectsPolygon(verts) },
		func(p geom.Point) bool { return geom.PointInPolygon(p, verts) },
	)
}

// QueryRay returns every entry lying on ray within a small tolerance,
// bounded to [0, ray.MaxLength]. A zero-direction ray yields no matches.
func (t *Tree[V]) QueryRay(ray geom.Ray) []Entry[V] {
	if ray.IsZero() {
		t.strategy.OnInvalid(validate.KindZeroDirectionRay, "ray direction is zero")
		return nil
	}
	dirLen := geom.Distance(geom.Point{}, ray.Direction)
	eps := dirLen * 1e-4
	if eps <= 0 {
		eps = 1e-4
	}
	return t.traverse(
		func(b geom.Rect) bool { return b.IntersectsRay(ray) },
		func(p geom.Point) bool { return geom.PointOnRay(ray, p, eps) },
	)
}

// QuerySector returns every entry inside the sector.
func (t *Tree[V]) QuerySector(sector geom.Sector) []Entry[V] {
	return t.traverse(
		func(b geom.Rect) bool { return b.IntersectsSector(sector) },
		func(p geom.Point) bool { return sector.Contains(p) },
	)
}

// Find locates the entry at point, if any.
func (t *Tree[V]) Find(point geom.Point) (V, bool) {
	var zero V
	if !t.root.boundary.Contains(point) {
		return zero, false
	}
	cur := t.root
	for !cur.isLeaf() {
		cur = cur.childFor(point)
	}
	for _, e := range cur.entries {
		if e.point == point {
			return e.value, true
		}
	}
	return zero, false
}

// All enumerates every entry in the tree, in NW, NE, SW, SE traversal
// order. Set-algebra and serialization are built on this.
func (t *Tree[V]) All() []Entry[V] {
	entries := collectEntries(t.root)
	out := make([]Entry[V], len(entries))
	for i, e := range entries {
		out[i] = Entry[V]{Point: e.point, Value: e.value}
	}
	return out
}
