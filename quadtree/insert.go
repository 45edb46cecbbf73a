package quadtree

import (
	"math"

	"github.com/SupremeHuaji/Quadtree/geom"
	"github.com/SupremeHuaji/Quadtree/observability"
	"github.com/SupremeHuaji/Quadtree/validate"
)

// Insert adds (point, value) to the tree. It returns true if a new entry
// was created, false if the point was outside the tree's boundary (silent
// rejection) or already present (in which case its value is replaced).
func (t *Tree[V]) Insert(point geom.Point, value V) bool {
	return t.insert(point, value, nil)
}

// InsertAdaptive behaves like Insert, but locally raises the effective leaf
// capacity per cfg when the target leaf's post-insert density exceeds
// cfg.DensityThreshold (see AdaptiveConfig).
func (t *Tree[V]) InsertAdaptive(point geom.Point, value V, cfg AdaptiveConfig) bool {
	return t.insert(point, value, &cfg)
}

func (t *Tree[V]) insert(point geom.Point, value V, adaptive *AdaptiveConfig) bool {
	if !t.root.boundary.Contains(point) {
		kind := validate.KindOutOfBoundary
		if math.IsNaN(float64(point.X)) || math.IsNaN(float64(point.Y)) {
			kind = validate.KindNaNCoordinate
		}
		// The strategy's Action is consulted for audit purposes only: a
		// point outside the root boundary is never actually inserted,
		// whatever Action the strategy returns (§4.10).
		t.strategy.OnInvalid(kind, "insert rejected: point outside root boundary")
		t.logger.Debug("insert rejected: point outside root boundary")
		return false
	}

	cur := t.root
	for !cur.isLeaf() {
		cur = cur.childFor(point)
	}

	for i := range cur.entries {
		if cur.entries[i].point == point {
			cur.entries[i].value = value
			return false
		}
	}

	cur.entries = append(cur.entries, entry[V]{point: point, value: value})
	t.count++

	if len(cur.entries) <= t.effectiveCapacity(cur, adaptive) {
		return true
	}

	// Cascade subdivision iteratively: a leaf that overflows is split into
	// four children, and any child that itself overflows is pushed back
	// onto the stack to be split in turn. No recursion.
	stack := []*node[V]{cur}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(n.entries) <= t.effectiveCapacity(n, adaptive) {
			continue
		}
		n.subdivide()
		t.logger.Debug(observability.MetricSubdivideCount,
			observability.Int("entries", len(n.entries)))
		for _, child := range n.children {
			stack = append(stack, child)
		}
	}
	return true
}
