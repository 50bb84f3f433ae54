package geom

// Hit is the result of an overlap test.
// ContactPoint is only meaningful when Hit is true.
type Hit struct {
	Hit          bool
	ContactPoint Vector2
}

// PointAABB reports whether p lies inside the box [min, max], edges included
func PointAABB(p, min, max Vector2) bool {
	return p.X >= min.X && p.X <= max.X && p.Y >= min.Y && p.Y <= max.Y
}

// CircleAABB tests a circle against an axis-aligned box.
// The contact point is the point of the box closest to the circle center,
// found by clamping the center into the box on each axis independently.
func CircleAABB(center Vector2, radius float64, min, max Vector2) Hit {
	closest := Vector2{
		X: clamp(center.X, min.X, max.X),
		Y: clamp(center.Y, min.Y, max.Y),
	}
	return Hit{
		Hit:          center.Sub(closest).Length() <= radius,
		ContactPoint: closest,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
