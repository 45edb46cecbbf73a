package quadtree

import (
	"testing"

	"github.com/SupremeHuaji/Quadtree/geom"
)

func buildSampleTree(t *testing.T) *Tree[string] {
	t.Helper()
	tr, err := New[string](geom.Rect{X: 0, Y: 0, Width: 100, Height: 100}, 4)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	tr.Insert(geom.Point{X: 10, Y: 20}, "a")
	tr.Insert(geom.Point{X: 15, Y: 25}, "b")
	tr.Insert(geom.Point{X: 20, Y: 30}, "c")
	tr.Insert(geom.Point{X: 80, Y: 80}, "d")
	tr.Insert(geom.Point{X: 85, Y: 85}, "e")
	return tr
}

func TestQueryRect(t *testing.T) {
	tr := buildSampleTree(t)
	hits := tr.Query(geom.Rect{X: 0, Y: 0, Width: 30, Height: 40})
	if len(hits) != 3 {
		t.Fatalf("expected 3 hits, got %d", len(hits))
	}
}

func TestQueryCircle(t *testing.T) {
	tr := buildSampleTree(t)
	hits := tr.QueryCircle(geom.Point{X: 15, Y: 25}, 10)
	// a(10,20) and c(20,30) are both sqrt(50) ~ 7.07 from the center, and
	// b sits on it; d and e are far outside the radius.
	if len(hits) != 3 {
		t.Fatalf("expected 3 hits within radius 10 of (15,25), got %d", len(hits))
	}
}

func TestQueryPolygonRejectsDegenerate(t *testing.T) {
	tr := buildSampleTree(t)
	if hits := tr.QueryPolygon([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}); hits != nil {
		t.Fatalf("expected nil for a <3-vertex polygon, got %v", hits)
	}
}

func TestQueryPolygonTriangle(t *testing.T) {
	tr := buildSampleTree(t)
	tri := []geom.Point{{X: 0, Y: 0}, {X: 30, Y: 0}, {X: 0, Y: 40}}
	hits := tr.QueryPolygon(tri)
	for _, h := range hits {
		if !geom.PointInPolygon(h.Point, tri) {
			t.Fatalf("returned point %+v not actually in polygon", h.Point)
		}
	}
	if len(hits) == 0 {
		t.Fatalf("expected at least one hit in the lower-left triangle")
	}
}

func TestQueryRayZeroDirection(t *testing.T) {
	tr := buildSampleTree(t)
	ray := geom.Ray{Origin: geom.Point{X: 0, Y: 0}, Direction: geom.Point{X: 0, Y: 0}, MaxLength: 100}
	if hits := tr.QueryRay(ray); hits != nil {
		t.Fatalf("expected nil for a zero-direction ray, got %v", hits)
	}
}

func TestQueryRayHitsCollinearPoints(t *testing.T) {
	tr, _ := New[string](geom.Rect{X: 0, Y: 0, Width: 100, Height: 100}, 4)
	tr.Insert(geom.Point{X: 10, Y: 10}, "on-ray")
	tr.Insert(geom.Point{X: 90, Y: 10}, "off-ray")
	ray := geom.Ray{Origin: geom.Point{X: 0, Y: 10}, Direction: geom.Point{X: 1, Y: 0}, MaxLength: 50}
	hits := tr.QueryRay(ray)
	if len(hits) != 1 || hits[0].Value != "on-ray" {
		t.Fatalf("expected exactly the on-ray point within MaxLength, got %v", hits)
	}
}

func TestQuerySector(t *testing.T) {
	tr := buildSampleTree(t)
	sector := geom.Sector{
		Center: geom.Point{X: 0, Y: 0},
		Start:  0,
		End:    1.5708, // ~pi/2, first quadrant
		Radius: 200,
	}
	hits := tr.QuerySector(sector)
	if len(hits) != 5 {
		t.Fatalf("expected all 5 points within a first-quadrant sector, got %d", len(hits))
	}
}

func TestFind(t *testing.T) {
	tr := buildSampleTree(t)
	v, ok := tr.Find(geom.Point{X: 20, Y: 30})
	if !ok || v != "c" {
		t.Fatalf("expected to find 'c' at (20,30), got %q ok=%v", v, ok)
	}
	if _, ok := tr.Find(geom.Point{X: 1, Y: 1}); ok {
		t.Fatalf("expected no entry at (1,1)")
	}
	if _, ok := tr.Find(geom.Point{X: 500, Y: 500}); ok {
		t.Fatalf("expected no entry outside boundary")
	}
}
