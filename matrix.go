package hatch

import "math"

// Matrix is a 2x3 affine transform in row-vector form:
//
//	[x' y' 1] = [x y 1] * [a b 0]
//	                      [c d 0]
//	                      [e f 1]
//
// i.e. applying m to a point computes x' = a*x + c*y + e,
// y' = b*x + d*y + f.
//
// Composition is row-vector post-multiplication: m.Multiply(other)
// yields the matrix whose application equals applying m, then other —
// p.Transform(m.Multiply(other)) == p.Transform(m).Transform(other).
// This convention must be preserved wherever a Dash's forward transform
// is composed; swapping to column-vector order inverts the observable
// effect of XSkew.
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, B: 0, C: 0, D: 1, E: 0, F: 0}
}

// Translation returns a matrix translating by (x, y).
func Translation(x, y float64) Matrix {
	return Matrix{A: 1, B: 0, C: 0, D: 1, E: x, F: y}
}

// Rotation returns a matrix rotating counter-clockwise by theta radians
// about the origin.
func Rotation(theta float64) Matrix {
	c, s := math.Cos(theta), math.Sin(theta)
	return Matrix{A: c, B: s, C: -s, D: c, E: 0, F: 0}
}

// XSkew returns a matrix mapping (x, y) to (x+k*y, y).
func XSkew(k float64) Matrix {
	return Matrix{A: 1, B: 0, C: k, D: 1, E: 0, F: 0}
}

// YScale returns a matrix scaling y by s and leaving x unchanged.
func YScale(s float64) Matrix {
	return Matrix{A: 1, B: 0, C: 0, D: s, E: 0, F: 0}
}

// Determinant returns a*d - b*c.
func (m Matrix) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// Invert returns the inverse of m.
//
// Invert does not guard against a singular matrix. A Dash's dy must be
// validated nonzero before a Matrix built from it is inverted; a
// singular matrix reaching Invert is a programmer error, and the
// result will contain Inf or NaN rather than a fallback value.
func (m Matrix) Invert() Matrix {
	i := 1 / m.Determinant()
	return Matrix{
		A: m.D * i,
		B: -m.B * i,
		C: -m.C * i,
		D: m.A * i,
		E: i * (m.C*m.F - m.E*m.D),
		F: i * (m.B*m.E - m.A*m.F),
	}
}

// Multiply composes m and other under row-vector post-multiplication:
// applying the result equals applying m, then other.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.C,
		B: m.A*other.B + m.B*other.D,
		C: m.C*other.A + m.D*other.C,
		D: m.C*other.B + m.D*other.D,
		E: m.E*other.A + m.F*other.C + other.E,
		F: m.E*other.B + m.F*other.D + other.F,
	}
}

// Apply transforms p by m.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: p.X*m.A + p.Y*m.C + m.E,
		Y: p.X*m.B + p.Y*m.D + m.F,
	}
}

// IsIdentity reports whether m is the identity transform.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}
