package hatch

import (
	"math"
	"strconv"
)

// Point is a 2D coordinate. Depending on context it is a world-space
// coordinate or a coordinate in some dash family's parametric u-v space.
type Point struct {
	X, Y float64
}

// Pt is a convenience constructor for Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Transform applies m to p: x' = a*x + c*y + e, y' = b*x + d*y + f.
func (p Point) Transform(m Matrix) Point {
	return m.Apply(p)
}

// Equals reports whether q falls within the circle of radius tolerance
// centered on p.
func (p Point) Equals(q Point, tolerance float64) bool {
	return math.Hypot(p.X-q.X, p.Y-q.Y) < tolerance
}

// String implements fmt.Stringer for diagnostics and logging.
func (p Point) String() string {
	return "(" + strconv.FormatFloat(p.X, 'g', -1, 64) + ", " +
		strconv.FormatFloat(p.Y, 'g', -1, 64) + ")"
}
