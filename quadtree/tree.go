// Package quadtree implements a region quadtree spatial index over labeled
// 2D points: the node/subdivision data model, the insert/remove/compress
// lifecycle, the traversal-driven geometric query family, the set-algebra
// combinators, and the spatial-analysis primitives built on top of them.
package quadtree

import (
	"github.com/SupremeHuaji/Quadtree/geom"
	"github.com/SupremeHuaji/Quadtree/observability"
	"github.com/SupremeHuaji/Quadtree/validate"
	"github.com/pkg/errors"
)

// ErrInvalidCapacity is returned by New and the set-algebra constructors
// when asked for a capacity below 1.
var ErrInvalidCapacity = errors.New("quadtree: capacity must be >= 1")

// Entry is a (point, value) pair returned from queries and enumeration.
type Entry[V any] struct {
	Point geom.Point
	Value V
}

// AdaptiveConfig tunes InsertAdaptive: when a leaf's post-insert density
// (entries per unit area) exceeds DensityThreshold, its effective capacity
// for the purposes of deciding whether to subdivide is raised to
// ceil(capacity * CapacityMultiplier).
type AdaptiveConfig struct {
	DensityThreshold   float32
	CapacityMultiplier float32
}

// Tree is a single-owner region quadtree over values of type V. There is no
// internal synchronization; concurrent mutation is not supported (see
// SPEC_FULL.md §5).
type Tree[V any] struct {
	root     *node[V]
	capacity int
	count    int
	logger   observability.Logger
	strategy validate.Strategy
}

// New returns a tree with a single empty leaf spanning boundary. Capacity
// must be >= 1. The returned tree's validation strategy defaults to
// validate.StrictStrategy; use WithStrategy to observe/audit rejected
// inputs instead of silently discarding them.
func New[V any](boundary geom.Rect, capacity int) (*Tree[V], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	return &Tree[V]{
		root:     newLeaf[V](boundary),
		capacity: capacity,
		logger:   observability.NopLogger{},
		strategy: validate.NewStrictStrategy(),
	}, nil
}

// WithLogger attaches a Logger the tree uses to report subdivision,
// compression, and analysis events; it returns the receiver for chaining.
func (t *Tree[V]) WithLogger(logger observability.Logger) *Tree[V] {
	if logger == nil {
		logger = observability.NopLogger{}
	}
	t.logger = logger
	return t
}

// WithStrategy attaches the validate.Strategy the tree consults before
// rejecting an out-of-boundary insert/remove or a malformed query input
// (§4.10); it returns the receiver for chaining. The strategy can audit or
// log these rejections, but it never overrides the hard invariants of §3 —
// an out-of-boundary point is never actually inserted, regardless of the
// Action the strategy returns.
func (t *Tree[V]) WithStrategy(strategy validate.Strategy) *Tree[V] {
	if strategy == nil {
		strategy = validate.NewStrictStrategy()
	}
	t.strategy = strategy
	return t
}

// Boundary returns the root boundary the tree was constructed with.
func (t *Tree[V]) Boundary() geom.Rect {
	return t.root.boundary
}

// Capacity returns the per-leaf entry capacity the tree was constructed
// with.
func (t *Tree[V]) Capacity() int {
	return t.capacity
}

func (t *Tree[V]) effectiveCapacity(n *node[V], adaptive *AdaptiveConfig) int {
	if adaptive == nil || adaptive.DensityThreshold <= 0 {
		return t.capacity
	}
	area := n.boundary.Area()
	if area <= 0 {
		return t.capacity
	}
	density := float32(len(n.entries)) / area
	if density <= adaptive.DensityThreshold {
		return t.capacity
	}
	raised := float32(t.capacity) * adaptive.CapacityMultiplier
	if raised < float32(t.capacity) {
		return t.capacity
	}
	return int(raised + 0.999999)
}
