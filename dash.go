package hatch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Dash is one hatch-line family: an infinite, periodic set of parallel
// dashed lines at a given angle, origin, and offset.
//
// Tr maps parametric u-v space to world x-y space; Tf is its inverse
// and is cached here because the hot path uses Tf to warp many world
// segments into parametric space and Tr to map many lit intervals back,
// once per Dash rather than once per segment. Array holds the
// normalized, non-negative dash-length sequence (lit at even indices,
// unlit at odd); Sum holds its prefix sums with Sum[0] == 0 and
// Sum[len(Sum)-1] equal to the pattern's period along u. A Dash is
// immutable once constructed.
type Dash struct {
	Tr, Tf Matrix
	Array  []float64
	Sum    []float64
}

// Period returns the length of one complete dash cycle along u. It is
// zero for a solid line (empty Array).
func (d Dash) Period() float64 {
	if len(d.Sum) == 0 {
		return 0
	}
	return d.Sum[len(d.Sum)-1]
}

// NewDash builds a Dash from an angle in radians, an origin, a
// direction/offset (dx, dy), and a raw dash-length sequence.
//
// dy must be nonzero: it is one of Tr's scale factors, and a zero value
// would make Tr singular. lengths must alternate sign starting positive
// (even index non-negative, odd index negative), a pen-down/pen-up
// convention; after validation the entries are stored as absolute
// values, and an odd-length array is padded with a trailing zero so the
// period is always made of complete (lit, gap) pairs.
func NewDash(theta, x0, y0, dx, dy float64, lengths []float64) (Dash, error) {
	if dy == 0 {
		return Dash{}, ErrZeroDY
	}

	array := make([]float64, len(lengths))
	copy(array, lengths)
	for i, v := range array {
		negative := v < 0
		oddIndex := i%2 != 0
		if negative != oddIndex {
			return Dash{}, fmt.Errorf("%w: entry %d (%g) must be %s", ErrDashSignMismatch, i, v, signWord(oddIndex))
		}
		array[i] = absFloat(v)
	}
	if len(array)%2 != 0 {
		array = append(array, 0)
	}

	sum := make([]float64, 0, len(array)+1)
	s := 0.0
	sum = append(sum, s)
	for _, v := range array {
		s += v
		sum = append(sum, s)
	}

	// u-v to world: scale v by dy, skew by dx/dy, rotate by theta, then
	// translate to (x0, y0).
	tr := YScale(dy).
		Multiply(XSkew(dx / dy)).
		Multiply(Rotation(theta)).
		Multiply(Translation(x0, y0))

	return Dash{
		Tr:    tr,
		Tf:    tr.Invert(),
		Array: array,
		Sum:   sum,
	}, nil
}

func signWord(oddIndex bool) string {
	if oddIndex {
		return "negative"
	}
	return "non-negative"
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// ParseDashLine parses one dash-pattern line:
//
//	angle_deg  x0  y0  dx  dy  [d0 d1 ... dk-1]
//
// At least 5 numbers are required. x0, y0, dx, dy, and every dash
// length are multiplied by scale; angle_deg is not scaled, and is
// converted to radians (via mgl64.DegToRad) before being passed to
// NewDash.
func ParseDashLine(line string, scale float64) (Dash, error) {
	words, err := parseNumbers(line)
	if err != nil {
		return Dash{}, err
	}
	if len(words) < 5 {
		return Dash{}, ErrInvalidDashLine
	}

	theta := mgl64.DegToRad(words[0])
	x0 := words[1] * scale
	y0 := words[2] * scale
	dx := words[3] * scale
	dy := words[4] * scale

	lengths := make([]float64, len(words)-5)
	for i, v := range words[5:] {
		lengths[i] = v * scale
	}

	return NewDash(theta, x0, y0, dx, dy, lengths)
}

// parseNumbers tokenizes line on whitespace and commas (commas are
// treated as whitespace) and parses each token as a float64. Trailing
// garbage anywhere on the line fails the whole line.
func parseNumbers(line string) ([]float64, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f'
	})
	result := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrTrailingGarbage, f)
		}
		result = append(result, v)
	}
	return result, nil
}
