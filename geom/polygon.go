package geom

// PointInPolygon reports whether p lies inside the polygon described by
// verts, using the even-odd ray-casting rule. The polygon is closed
// implicitly (the last vertex connects back to the first). Fewer than 3
// vertices is treated as an empty polygon — PointInPolygon returns false,
// it never panics.
func PointInPolygon(p Point, verts []Point) bool {
	if len(verts) < 3 {
		return false
	}
	inside := false
	n := len(verts)
	j := n - 1
	for i := 0; i < n; i++ {
		vi, vj := verts[i], verts[j]
		if (vi.Y > p.Y) != (vj.Y > p.Y) {
			xCross := vi.X + (p.Y-vi.Y)/(vj.Y-vi.Y)*(vj.X-vi.X)
			if p.X < xCross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// IntersectsPolygon reports whether r intersects the polygon described by
// verts. The test is exact for convex polygons: it holds if any polygon
// vertex lies in r, any corner of r lies in the polygon, or any polygon edge
// crosses any edge of r. For concave polygons this slightly over
// -approximates, which only affects pruning (never correctness of the final
// per-entry test).
func (r Rect) IntersectsPolygon(verts []Point) bool {
	if len(verts) < 3 {
		return false
	}
	for _, v := range verts {
		if r.Contains(v) {
			return true
		}
	}
	corners := r.corners()
	for _, c := range corners {
		if PointInPolygon(c, verts) {
			return true
		}
	}
	n := len(verts)
	for i := 0; i < n; i++ {
		a := verts[i]
		b := verts[(i+1)%n]
		for k := 0; k < 4; k++ {
			c := corners[k]
			d := corners[(k+1)%4]
			if segmentsIntersect(a, b, c, d) {
				return true
			}
		}
	}
	return false
}

func (r Rect) corners() [4]Point {
	return [4]Point{
		{X: r.X, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y + r.Height},
		{X: r.X, Y: r.Y + r.Height},
	}
}

func segmentsIntersect(p1, p2, p3, p4 Point) bool {
	d1 := cross(p3, p4, p1)
	d2 := cross(p3, p4, p2)
	d3 := cross(p1, p2, p3)
	d4 := cross(p1, p2, p4)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	if d1 == 0 && onSegment(p3, p4, p1) {
		return true
	}
	if d2 == 0 && onSegment(p3, p4, p2) {
		return true
	}
	if d3 == 0 && onSegment(p1, p2, p3) {
		return true
	}
	if d4 == 0 && onSegment(p1, p2, p4) {
		return true
	}
	return false
}

func cross(a, b, p Point) float32 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

func onSegment(a, b, p Point) bool {
	return p.X >= min32(a.X, b.X) && p.X <= max32(a.X, b.X) &&
		p.Y >= min32(a.Y, b.Y) && p.Y <= max32(a.Y, b.Y)
}
