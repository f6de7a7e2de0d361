// Package stamp implements the dash stamper: given a clipped span of
// solid region on a scanline and a dash family's length pattern, it
// emits the sub-intervals that are "pen down" (lit) rather than
// "pen up" (gapped), with the dash phase carried continuously from one
// span to the next within a scanline.
package stamp

import "math"

// Pattern is the subset of a dash family's state the stamper needs:
// the normalized (non-negative, lit-at-even-index) dash lengths and
// their prefix sums, with Sum[0] == 0 and Sum[len(Sum)-1] the period.
type Pattern struct {
	Array []float64
	Sum   []float64
}

// DrawFunc receives one lit sub-interval [u1, u2] on scanline v.
type DrawFunc func(v, u1, u2 float64)

// pythonmod returns a mod b with the sign of b (Python/floored-division
// semantics), matching the original reference's phase lookup exactly —
// Go's % operator takes the sign of a instead, which would shift the
// pattern's phase for negative u.
func pythonmod(a, b float64) float64 {
	r := a - math.Floor(a/b)*b
	if r == b {
		return 0
	}
	return r
}

// utoidx locates the dash-array index whose interval contains u once u
// is folded into [0, period), along with the offset of u within that
// interval.
func utoidx(p Pattern, u float64) (idx int, offset float64) {
	period := p.Sum[len(p.Sum)-1]
	u = pythonmod(u, period)
	for i := 1; i != len(p.Sum); i++ {
		if u < p.Sum[i] {
			return i - 1, u - p.Sum[i-1]
		}
	}
	panic("stamp: u not located in pattern (unreachable if Sum is a valid prefix sum)")
}

// Draw stamps the span [u1, u2] on scanline v with pattern, calling cb
// for each lit sub-interval. An empty pattern (solid line, no dashes)
// draws the whole span lit. Dash-array indices alternate lit (even) and
// gap (odd) by construction (see Dash.NewDash); Draw walks that parity
// rather than re-inspecting each entry's original sign, since entries
// are already normalized to non-negative.
func Draw(pattern Pattern, v, u1, u2 float64, cb DrawFunc) {
	if len(pattern.Array) == 0 {
		cb(v, u1, u2)
		return
	}

	i, o := utoidx(pattern, u1)
	pi := pattern.Array[i]
	if i%2 == 0 {
		cb(v, u1, math.Min(u2, u1+pi-o))
		u1 += pi - o
	} else {
		u1 += pi - o
	}
	i++
	if i%2 == 1 {
		u1 += pattern.Array[i]
		i++
	}

	for u := u1; u < u2; {
		if i >= len(pattern.Array) {
			i = 0
		}
		pi := pattern.Array[i]
		cb(v, u, math.Min(u2, u+pi))
		u += pi
		u += pattern.Array[i+1]
		i += 2
	}
}
