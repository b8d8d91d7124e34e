package vmath

// CirclesOverlap reports whether two circles intersect
// Touching circles (distance exactly r1+r2) do not count
func CirclesOverlap(p1 Vec2, r1 float32, p2 Vec2, r2 float32) bool {
	sum := r1 + r2
	return p1.DistanceSq(p2) < sum*sum
}
