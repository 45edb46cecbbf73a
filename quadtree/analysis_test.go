package quadtree

import (
	"testing"

	"github.com/SupremeHuaji/Quadtree/geom"
)

func TestFindNearestOrdersByDistance(t *testing.T) {
	tr, _ := New[string](geom.Rect{X: 0, Y: 0, Width: 100, Height: 100}, 4)
	tr.Insert(geom.Point{X: 10, Y: 20}, "a")
	tr.Insert(geom.Point{X: 15, Y: 25}, "b")
	tr.Insert(geom.Point{X: 20, Y: 30}, "c")
	tr.Insert(geom.Point{X: 80, Y: 80}, "d")
	tr.Insert(geom.Point{X: 85, Y: 85}, "e")

	nearest := tr.FindNearest(geom.Point{X: 12, Y: 22}, 3)
	if len(nearest) != 3 {
		t.Fatalf("expected 3 results, got %d", len(nearest))
	}
	wantOrder := []string{"a", "b", "c"}
	for i, want := range wantOrder {
		if nearest[i].Value != want {
			t.Fatalf("expected order %v, got %v at index %d (value %q)", wantOrder, nearest, i, nearest[i].Value)
		}
	}
}

func TestFindNearestClampsToTreeSize(t *testing.T) {
	tr, _ := New[int](geom.Rect{X: 0, Y: 0, Width: 10, Height: 10}, 4)
	tr.Insert(geom.Point{X: 1, Y: 1}, 1)
	tr.Insert(geom.Point{X: 2, Y: 2}, 2)
	nearest := tr.FindNearest(geom.Point{X: 0, Y: 0}, 10)
	if len(nearest) != 2 {
		t.Fatalf("expected at most 2 results from a 2-entry tree, got %d", len(nearest))
	}
}

func TestFindNearestZeroKReturnsNil(t *testing.T) {
	tr, _ := New[int](geom.Rect{X: 0, Y: 0, Width: 10, Height: 10}, 4)
	tr.Insert(geom.Point{X: 1, Y: 1}, 1)
	if got := tr.FindNearest(geom.Point{X: 0, Y: 0}, 0); got != nil {
		t.Fatalf("expected nil for k=0, got %v", got)
	}
}

func TestDBSCANDispersedPointsYieldNoClusters(t *testing.T) {
	tr, _ := New[int](geom.Rect{X: 0, Y: 0, Width: 100, Height: 100}, 4)
	tr.Insert(geom.Point{X: 10, Y: 20}, 1)
	tr.Insert(geom.Point{X: 30, Y: 40}, 2)
	tr.Insert(geom.Point{X: 50, Y: 60}, 3)
	clusters := tr.DBSCANCluster(5.0, 3)
	if len(clusters) != 0 {
		t.Fatalf("expected no clusters among dispersed points, got %d", len(clusters))
	}
}

func TestDBSCANDenseClusterFound(t *testing.T) {
	tr, _ := New[int](geom.Rect{X: 0, Y: 0, Width: 100, Height: 100}, 4)
	cluster := []geom.Point{
		{X: 10, Y: 10}, {X: 11, Y: 10}, {X: 10, Y: 11}, {X: 11, Y: 11},
	}
	for i, p := range cluster {
		tr.Insert(p, i)
	}
	tr.Insert(geom.Point{X: 90, Y: 90}, 99) // noise

	clusters := tr.DBSCANCluster(3.0, 3)
	if len(clusters) != 1 {
		t.Fatalf("expected exactly 1 cluster, got %d", len(clusters))
	}
	if len(clusters[0]) != len(cluster) {
		t.Fatalf("expected cluster of size %d, got %d", len(cluster), len(clusters[0]))
	}
}

func TestSpatialAutocorrelationRangeAndDegenerateCases(t *testing.T) {
	tr, _ := New[float64](geom.Rect{X: 0, Y: 0, Width: 100, Height: 100}, 4)
	value := func(v float64) (float64, bool) { return v, true }

	// Fewer than 2 qualifying entries => 0.
	if got := tr.SpatialAutocorrelation(value, 10); got != 0 {
		t.Fatalf("expected 0 for an empty tree, got %v", got)
	}

	tr.Insert(geom.Point{X: 10, Y: 10}, 1.0)
	tr.Insert(geom.Point{X: 11, Y: 11}, 1.1)
	tr.Insert(geom.Point{X: 12, Y: 12}, 0.9)
	tr.Insert(geom.Point{X: 90, Y: 90}, 5.0)
	tr.Insert(geom.Point{X: 91, Y: 91}, 5.2)

	got := tr.SpatialAutocorrelation(value, 5)
	if got < -1 || got > 1 {
		t.Fatalf("expected Moran's I clamped to [-1, 1], got %v", got)
	}
}

func TestSpatialAutocorrelationZeroVarianceIsZero(t *testing.T) {
	tr, _ := New[float64](geom.Rect{X: 0, Y: 0, Width: 100, Height: 100}, 4)
	value := func(v float64) (float64, bool) { return v, true }
	tr.Insert(geom.Point{X: 10, Y: 10}, 3.0)
	tr.Insert(geom.Point{X: 20, Y: 20}, 3.0)
	tr.Insert(geom.Point{X: 30, Y: 30}, 3.0)
	if got := tr.SpatialAutocorrelation(value, 50); got != 0 {
		t.Fatalf("expected 0 for zero-variance values, got %v", got)
	}
}

func TestFindHotspotPrefersDenserRegion(t *testing.T) {
	tr, _ := New[int](geom.Rect{X: 0, Y: 0, Width: 100, Height: 100}, 2)
	dense := []geom.Point{
		{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}, {X: 4, Y: 4},
	}
	for i, p := range dense {
		tr.Insert(p, i)
	}
	tr.Insert(geom.Point{X: 90, Y: 90}, 99)

	rect, count := tr.FindHotspot(3)
	if count < 3 {
		t.Fatalf("expected hotspot count >= 3, got %d", count)
	}
	if !rect.Intersects(geom.Rect{X: 0, Y: 0, Width: 10, Height: 10}) {
		t.Fatalf("expected hotspot near the dense cluster, got %+v", rect)
	}
}

func TestFindHotspotNoneQualifies(t *testing.T) {
	tr, _ := New[int](geom.Rect{X: 0, Y: 0, Width: 100, Height: 100}, 4)
	tr.Insert(geom.Point{X: 1, Y: 1}, 1)
	rect, count := tr.FindHotspot(10)
	if count != 0 {
		t.Fatalf("expected count 0 when no node qualifies, got %d", count)
	}
	if rect != tr.Boundary() {
		t.Fatalf("expected root boundary fallback, got %+v", rect)
	}
}
