package hatch

// Segment is an oriented line segment. Swapped carries the signed
// orientation relative to the segment's original direction after any
// coordinate swaps performed by ysort or by a reflective transform; the
// winding-rule computation in the sweep consumes it directly.
type Segment struct {
	P, Q    Point
	Swapped bool
}
