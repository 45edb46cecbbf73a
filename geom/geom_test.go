package geom

import (
	"math"
	"testing"
)

func TestRectContainsEdges(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	cases := []struct {
		p    Point
		want bool
	}{
		{Point{0, 0}, true},
		{Point{10, 10}, true},
		{Point{10, 0}, true},
		{Point{5, 5}, true},
		{Point{10.0001, 5}, false},
		{Point{-0.0001, 5}, false},
	}
	for _, c := range cases {
		if got := r.Contains(c.p); got != c.want {
			t.Errorf("Contains(%v) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestRectContainsNaN(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	nan := float32(math.NaN())
	if r.Contains(Point{nan, 5}) {
		t.Error("expected NaN coordinate to never be contained")
	}
}

func TestRectIntersectsTouchingEdges(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 10, Y: 0, Width: 5, Height: 5}
	if !a.Intersects(b) {
		t.Error("touching edges should count as intersecting")
	}
	c := Rect{X: 10.0001, Y: 0, Width: 5, Height: 5}
	if a.Intersects(c) {
		t.Error("non-touching rects should not intersect")
	}
}

func TestRectIntersectsCircle(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	if !r.IntersectsCircle(Point{15, 5}, 5) {
		t.Error("circle touching the rect edge should intersect")
	}
	if r.IntersectsCircle(Point{20, 5}, 5) {
		t.Error("circle far from rect should not intersect")
	}
	if !r.IntersectsCircle(Point{5, 5}, 1) {
		t.Error("circle inside rect should intersect")
	}
}

func TestQuadrantOf(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	cases := []struct {
		p    Point
		want int
	}{
		{Point{80, 80}, QuadNE},
		{Point{10, 80}, QuadNW},
		{Point{10, 10}, QuadSW},
		{Point{80, 10}, QuadSE},
		{Point{50, 50}, QuadNE}, // on both split lines: upper/right biased
		{Point{50, 10}, QuadSE}, // on vertical split line only: east
		{Point{10, 50}, QuadNW}, // on horizontal split line only: north
	}
	for _, c := range cases {
		if got := QuadrantOf(r, c.p); got != c.want {
			t.Errorf("QuadrantOf(%v) = %d, want %d", c.p, got, c.want)
		}
	}
}

func TestPointInPolygonTriangle(t *testing.T) {
	tri := []Point{{0, 0}, {10, 0}, {5, 10}}
	if !PointInPolygon(Point{5, 1}, tri) {
		t.Error("expected point inside triangle")
	}
	if PointInPolygon(Point{0, 10}, tri) {
		t.Error("expected point outside triangle")
	}
}

func TestPointInPolygonDegenerate(t *testing.T) {
	if PointInPolygon(Point{0, 0}, []Point{{0, 0}, {1, 1}}) {
		t.Error("a polygon with fewer than 3 vertices should contain nothing")
	}
}

func TestRectIntersectsPolygon(t *testing.T) {
	square := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	r := Rect{X: 5, Y: 5, Width: 10, Height: 10}
	if !r.IntersectsPolygon(square) {
		t.Error("overlapping rect/polygon should intersect")
	}
	far := Rect{X: 100, Y: 100, Width: 5, Height: 5}
	if far.IntersectsPolygon(square) {
		t.Error("far-away rect should not intersect polygon")
	}
}

func TestIntersectsRay(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 10, Height: 10}
	ray := Ray{Origin: Point{0, 15}, Direction: Point{1, 0}, MaxLength: 30}
	if !r.IntersectsRay(ray) {
		t.Error("ray through rect should intersect")
	}
	short := Ray{Origin: Point{0, 15}, Direction: Point{1, 0}, MaxLength: 5}
	if r.IntersectsRay(short) {
		t.Error("ray too short to reach rect should not intersect")
	}
	zero := Ray{Origin: Point{0, 15}, Direction: Point{0, 0}, MaxLength: 30}
	if r.IntersectsRay(zero) {
		t.Error("zero-direction ray should never intersect")
	}
}

func TestPointOnRay(t *testing.T) {
	ray := Ray{Origin: Point{0, 0}, Direction: Point{1, 0}, MaxLength: 10}
	if !PointOnRay(ray, Point{5, 0}, 0.01) {
		t.Error("point on the ray's line within bounds should match")
	}
	if PointOnRay(ray, Point{15, 0}, 0.01) {
		t.Error("point beyond max length should not match")
	}
	if PointOnRay(ray, Point{5, 5}, 0.01) {
		t.Error("point off the ray's line should not match")
	}
}

func TestSectorContains(t *testing.T) {
	s := Sector{Center: Point{0, 0}, Start: 0, End: float32(math.Pi / 2), Radius: 10}
	if !s.Contains(Point{5, 5}) {
		t.Error("point within the quarter sector should be contained")
	}
	if s.Contains(Point{-5, 5}) {
		t.Error("point outside the angular span should not be contained")
	}
	if s.Contains(Point{5, 5000}) {
		t.Error("point beyond the radius should not be contained")
	}
}

func TestIntersectsSectorFullCircle(t *testing.T) {
	s := Sector{Center: Point{0, 0}, Start: 0, End: float32(2 * math.Pi), Radius: 10}
	r := Rect{X: 5, Y: 5, Width: 2, Height: 2}
	if !r.IntersectsSector(s) {
		t.Error("rect within a full-circle sector should intersect")
	}
}
