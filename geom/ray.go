package geom

// Ray is an origin, a (not necessarily normalized) direction, and a maximum
// travel length along that direction.
type Ray struct {
	Origin    Point
	Direction Point
	MaxLength float32
}

// IsZero reports whether the ray's direction vector is the zero vector, in
// which case it never intersects anything.
func (ray Ray) IsZero() bool {
	return ray.Direction.X == 0 && ray.Direction.Y == 0
}

// IntersectsRay reports whether ray's segment from Origin to
// Origin+MaxLength*Direction intersects r, using the 2D slab method.
func (r Rect) IntersectsRay(ray Ray) bool {
	if ray.IsZero() || ray.MaxLength <= 0 {
		return false
	}

	tMin := float32(0)
	tMax := ray.MaxLength

	if !slab(ray.Origin.X, ray.Direction.X, r.X, r.X+r.Width, &tMin, &tMax) {
		return false
	}
	if !slab(ray.Origin.Y, ray.Direction.Y, r.Y, r.Y+r.Height, &tMin, &tMax) {
		return false
	}
	return tMin <= tMax
}

// slab intersects the current [*tMin, *tMax] parametric interval with the
// interval during which origin+t*dir lies within [lo, hi] along one axis.
func slab(origin, dir, lo, hi float32, tMin, tMax *float32) bool {
	if dir == 0 {
		return origin >= lo && origin <= hi
	}
	invDir := 1 / dir
	t0 := (lo - origin) * invDir
	t1 := (hi - origin) * invDir
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	if t0 > *tMin {
		*tMin = t0
	}
	if t1 < *tMax {
		*tMax = t1
	}
	return *tMin <= *tMax
}

// PointOnRay reports whether p lies on ray within eps of the ray's line,
// bounded to [0, MaxLength]. eps is an absolute distance; callers that want
// a tolerance proportional to the direction's magnitude scale it themselves
// (QueryRay does).
func PointOnRay(ray Ray, p Point, eps float32) bool {
	if ray.IsZero() {
		return false
	}
	dx := p.X - ray.Origin.X
	dy := p.Y - ray.Origin.Y
	dirLenSq := ray.Direction.X*ray.Direction.X + ray.Direction.Y*ray.Direction.Y

	// Project (p - origin) onto the direction to find t.
	t := (dx*ray.Direction.X + dy*ray.Direction.Y) / dirLenSq
	if t < 0 || t > ray.MaxLength {
		return false
	}

	projX := ray.Origin.X + t*ray.Direction.X
	projY := ray.Origin.Y + t*ray.Direction.Y
	offX := p.X - projX
	offY := p.Y - projY
	tol := eps * eps
	return offX*offX+offY*offY <= tol
}
