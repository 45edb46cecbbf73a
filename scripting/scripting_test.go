package scripting

import (
	"testing"

	"github.com/SupremeHuaji/Quadtree/geom"
	"github.com/SupremeHuaji/Quadtree/quadtree"
)

func TestCompilePredicateEvaluatesCoordinates(t *testing.T) {
	pred, err := CompilePredicate[int]("x > 10 && y > 10")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !pred(geom.Point{X: 20, Y: 20}, 0) {
		t.Fatalf("expected (20,20) to satisfy x>10 && y>10")
	}
	if pred(geom.Point{X: 5, Y: 20}, 0) {
		t.Fatalf("expected (5,20) to fail x>10 && y>10")
	}
}

func TestCompilePredicateReferencesValue(t *testing.T) {
	pred, err := CompilePredicate[int]("value > 100")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !pred(geom.Point{}, 150) {
		t.Fatalf("expected value 150 to satisfy value>100")
	}
	if pred(geom.Point{}, 50) {
		t.Fatalf("expected value 50 to fail value>100")
	}
}

func TestCompilePredicateRejectsInvalidScript(t *testing.T) {
	if _, err := CompilePredicate[int]("x >"); err == nil {
		t.Fatalf("expected a compile error for malformed script")
	}
}

func TestCompilePredicateDrivesQuadtreeFilter(t *testing.T) {
	tr, err := quadtree.New[string](geom.Rect{X: 0, Y: 0, Width: 100, Height: 100}, 4)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	tr.Insert(geom.Point{X: 1, Y: 1}, "keep")
	tr.Insert(geom.Point{X: 2, Y: 2}, "drop")
	tr.Insert(geom.Point{X: 3, Y: 3}, "keep")

	pred, err := CompilePredicate[string](`value == "keep"`)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	out, err := quadtree.Filter(tr, pred, 4)
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if out.Count() != 2 {
		t.Fatalf("expected 2 entries with value \"keep\", got %d", out.Count())
	}
	for _, e := range out.All() {
		if e.Value != "keep" {
			t.Fatalf("found entry %q after filtering for \"keep\"", e.Value)
		}
	}
}

func TestCompilePredicateRuntimeErrorIsFalse(t *testing.T) {
	pred, err := CompilePredicate[int]("nonexistentFn(x)")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if pred(geom.Point{X: 1, Y: 1}, 0) {
		t.Fatalf("expected a runtime script error to evaluate to false")
	}
}
