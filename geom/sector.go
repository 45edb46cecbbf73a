package geom

import "math"

const twoPi = 2 * math.Pi

// Sector is a circular sector: the set of points within Radius of Center
// whose angle (measured counter-clockwise from +X) falls in [Start, End],
// interpreted modulo 2*pi and spanning counter-clockwise from Start to End.
type Sector struct {
	Center     Point
	Start, End float32
	Radius     float32
}

// spansFullCircle reports whether the sector's angular span covers the
// whole circle.
func (s Sector) spansFullCircle() bool {
	return float64(s.End-s.Start) >= twoPi
}

// ContainsAngle reports whether angle (any real value) falls within the
// sector's [Start, End] span, interpreted modulo 2*pi.
func (s Sector) ContainsAngle(angle float64) bool {
	if s.spansFullCircle() {
		return true
	}
	span := normalizeAngle(float64(s.End) - float64(s.Start))
	rel := normalizeAngle(angle - float64(s.Start))
	return rel <= span
}

// Contains reports whether p lies within the closed sector s.
func (s Sector) Contains(p Point) bool {
	if DistanceSquared(s.Center, p) > s.Radius*s.Radius {
		return false
	}
	if p == s.Center {
		return true
	}
	angle := math.Atan2(float64(p.Y-s.Center.Y), float64(p.X-s.Center.X))
	return s.ContainsAngle(angle)
}

// IntersectsSector reports whether r intersects the sector s: the rect must
// intersect the bounding disk, and additionally either the sector spans the
// whole disk, a corner of r lies inside the sector, or an edge of r crosses
// one of the sector's two bounding radii.
func (r Rect) IntersectsSector(s Sector) bool {
	if !r.IntersectsCircle(s.Center, s.Radius) {
		return false
	}
	if s.spansFullCircle() {
		return true
	}

	corners := r.corners()
	for _, c := range corners {
		if s.Contains(c) {
			return true
		}
	}

	startRay := Point{
		X: s.Center.X + s.Radius*float32(math.Cos(float64(s.Start))),
		Y: s.Center.Y + s.Radius*float32(math.Sin(float64(s.Start))),
	}
	endRay := Point{
		X: s.Center.X + s.Radius*float32(math.Cos(float64(s.End))),
		Y: s.Center.Y + s.Radius*float32(math.Sin(float64(s.End))),
	}

	for k := 0; k < 4; k++ {
		a := corners[k]
		b := corners[(k+1)%4]
		if segmentsIntersect(a, b, s.Center, startRay) {
			return true
		}
		if segmentsIntersect(a, b, s.Center, endRay) {
			return true
		}
	}
	return false
}

func normalizeAngle(a float64) float64 {
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}
