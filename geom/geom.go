// Package geom provides the axis-aligned geometry primitives the quadtree
// engine prunes and tests against: points, rectangles, and the region
// predicates (circle, polygon, ray, sector) the query family is built on.
package geom

import "math"

// Point is an immutable 2D coordinate. Equality is bit-identical on both
// components; there is no epsilon fuzzing.
type Point struct {
	X, Y float32
}

// Rect is an axis-aligned rectangle with (X, Y) as its min-corner. It
// represents the closed region [X, X+Width] x [Y, Y+Height]; a point exactly
// on an edge is considered contained.
type Rect struct {
	X, Y, Width, Height float32
}

// Contains reports whether p lies within the closed rectangle r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Intersects reports whether the closed regions of r and other overlap.
// Touching edges count as overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width && other.X <= r.X+r.Width &&
		r.Y <= other.Y+other.Height && other.Y <= r.Y+r.Height
}

// IntersectsCircle reports whether the closed disk of radius radius about
// center intersects r. No square root is computed.
func (r Rect) IntersectsCircle(center Point, radius float32) bool {
	closestX := clamp(center.X, r.X, r.X+r.Width)
	closestY := clamp(center.Y, r.Y, r.Y+r.Height)
	dx := center.X - closestX
	dy := center.Y - closestY
	return dx*dx+dy*dy <= radius*radius
}

// Union returns the smallest rectangle enclosing both r and other.
func (r Rect) Union(other Rect) Rect {
	minX := min32(r.X, other.X)
	minY := min32(r.Y, other.Y)
	maxX := max32(r.X+r.Width, other.X+other.Width)
	maxY := max32(r.Y+r.Height, other.Y+other.Height)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Area returns the rectangle's area.
func (r Rect) Area() float32 {
	return r.Width * r.Height
}

// Quadrants splits r into its four equal-sized NW, NE, SW, SE children,
// split at (X+Width/2, Y+Height/2).
func (r Rect) Quadrants() (nw, ne, sw, se Rect) {
	halfW := r.Width / 2
	halfH := r.Height / 2
	xMid := r.X + halfW
	yMid := r.Y + halfH
	nw = Rect{X: r.X, Y: yMid, Width: halfW, Height: halfH}
	ne = Rect{X: xMid, Y: yMid, Width: halfW, Height: halfH}
	sw = Rect{X: r.X, Y: r.Y, Width: halfW, Height: halfH}
	se = Rect{X: xMid, Y: r.Y, Width: halfW, Height: halfH}
	return
}

// Quadrant indices, in the fixed NW, NE, SW, SE traversal order used
// throughout the package.
const (
	QuadNW = 0
	QuadNE = 1
	QuadSW = 2
	QuadSE = 3
)

// QuadrantOf returns the index (QuadNW..QuadSE) of the child of r that owns
// p, using the upper/right-biased split-line tie-break: a point exactly on
// the vertical split line is assigned east (NE/SE), and a point exactly on
// the horizontal split line is assigned north (NW/NE).
func QuadrantOf(r Rect, p Point) int {
	xMid := r.X + r.Width/2
	yMid := r.Y + r.Height/2
	east := p.X >= xMid
	north := p.Y >= yMid
	switch {
	case north && !east:
		return QuadNW
	case north && east:
		return QuadNE
	case !north && !east:
		return QuadSW
	default:
		return QuadSE
	}
}

// DistanceSquared returns the squared Euclidean distance between a and b.
func DistanceSquared(a, b Point) float32 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float32 {
	return float32(math.Sqrt(float64(DistanceSquared(a, b))))
}

// BoundaryDistanceSquared returns the squared distance from p to the closest
// point of r's closed region; zero if p is inside r.
func BoundaryDistanceSquared(r Rect, p Point) float32 {
	closestX := clamp(p.X, r.X, r.X+r.Width)
	closestY := clamp(p.Y, r.Y, r.Y+r.Height)
	dx := p.X - closestX
	dy := p.Y - closestY
	return dx*dx + dy*dy
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
