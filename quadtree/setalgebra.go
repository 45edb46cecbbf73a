package quadtree

import "github.com/SupremeHuaji/Quadtree/geom"

// Merge returns a fresh tree over a boundary enclosing both a and b,
// containing the union of their entries. On a point collision, a's entry
// wins: b's entries are inserted first, then a's, and Insert's
// replace-on-duplicate rule gives a's value the last, winning write.
func Merge[V any](a, b *Tree[V], capacity int) (*Tree[V], error) {
	boundary := a.root.boundary.Union(b.root.boundary)
	out, err := New[V](boundary, capacity)
	if err != nil {
		return nil, err
	}
	for _, e := range b.All() {
		out.Insert(e.Point, e.Value)
	}
	for _, e := range a.All() {
		out.Insert(e.Point, e.Value)
	}
	return out, nil
}

// Intersection returns a fresh tree containing the entries of a whose
// points are also present in b (with a's value).
func Intersection[V any](a, b *Tree[V], capacity int) (*Tree[V], error) {
	boundary := a.root.boundary.Union(b.root.boundary)
	out, err := New[V](boundary, capacity)
	if err != nil {
		return nil, err
	}
	for _, e := range a.All() {
		if _, ok := b.Find(e.Point); ok {
			out.Insert(e.Point, e.Value)
		}
	}
	return out, nil
}

// Difference returns a fresh tree containing the entries of a whose points
// are not present in b.
func Difference[V any](a, b *Tree[V], capacity int) (*Tree[V], error) {
	boundary := a.root.boundary.Union(b.root.boundary)
	out, err := New[V](boundary, capacity)
	if err != nil {
		return nil, err
	}
	for _, e := range a.All() {
		if _, ok := b.Find(e.Point); !ok {
			out.Insert(e.Point, e.Value)
		}
	}
	return out, nil
}

// Filter returns a fresh tree containing the entries of t for which
// predicate(point, value) holds. predicate may be a compiled Go closure or
// one produced by scripting.CompilePredicate.
func Filter[V any](t *Tree[V], predicate func(geom.Point, V) bool, capacity int) (*Tree[V], error) {
	out, err := New[V](t.root.boundary, capacity)
	if err != nil {
		return nil, err
	}
	for _, e := range t.All() {
		if predicate(e.Point, e.Value) {
			out.Insert(e.Point, e.Value)
		}
	}
	return out, nil
}
