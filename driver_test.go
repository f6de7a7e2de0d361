package hatch

import (
	"context"
	"math"
	"sort"
	"testing"
)

func squareSegments(t *testing.T, size float64) []Segment {
	t.Helper()
	c := Contour{Pt(0, 0), Pt(size, 0), Pt(size, size), Pt(0, size)}
	return ContourToSegments(c, 0)
}

func horizontalSolidFamily(t *testing.T) Dash {
	t.Helper()
	d, err := NewDash(0, 0, 0, 0, 1, nil)
	if err != nil {
		t.Fatalf("NewDash: %v", err)
	}
	return d
}

// A square with integer-aligned edges leaves its topmost and bottommost
// boundary rows outside the half-open scanline sweep (v ranges over
// [floor(minY), ceil(maxY)) and only becomes active once v strictly
// exceeds an edge's starting Y) — this is exactly the degeneracy
// vertex jitter exists to break. With no jitter a 10-unit square
// hatched at every integer V yields 9 full-width lines, at y = 1..9,
// not 10.
func TestHatchHorizontalLinesInSquare(t *testing.T) {
	segs := squareSegments(t, 10)
	pattern := HatchPattern{horizontalSolidFamily(t)}

	var out []Segment
	Hatch(pattern, segs, Odd, func(s Segment) { out = append(out, s) })

	if got, want := len(out), 9; got != want {
		t.Fatalf("len(out) = %d, want %d", got, want)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].P.Y < out[j].P.Y })
	for i, s := range out {
		wantY := float64(i + 1)
		if !almostEqual(s.P.Y, wantY) || !almostEqual(s.Q.Y, wantY) {
			t.Errorf("segment %d at y=%v, want y=%v", i, s.P.Y, wantY)
		}
		length := math.Abs(s.Q.X - s.P.X)
		if !almostEqual(length, 10) {
			t.Errorf("segment %d length = %v, want 10", i, length)
		}
	}
}

func TestHatchEmptySegments(t *testing.T) {
	pattern := HatchPattern{horizontalSolidFamily(t)}
	called := false
	Hatch(pattern, nil, Odd, func(Segment) { called = true })
	if called {
		t.Error("sink called for empty input")
	}
}

func TestHatchDashedLinesCount(t *testing.T) {
	d, err := NewDash(0, 0, 0, 0, 1, []float64{2, -2})
	if err != nil {
		t.Fatalf("NewDash: %v", err)
	}
	segs := squareSegments(t, 10)
	pattern := HatchPattern{d}

	var out []Segment
	Hatch(pattern, segs, Odd, func(s Segment) { out = append(out, s) })

	// 9 scanlines (y = 1..9, see TestHatchHorizontalLinesInSquare), each
	// split into dashes of length 2 with gaps of 2 across a width of 10:
	// dashes at [0,2) [4,6) [8,10) -> 3 full dashes per line, 27 in all.
	if len(out) == 0 {
		t.Fatal("no dashed segments produced")
	}
	if got, want := len(out), 27; got != want {
		t.Errorf("len(out) = %d, want %d", got, want)
	}
	for _, s := range out {
		length := math.Abs(s.Q.X - s.P.X)
		if length <= 0 || length > 2+1e-9 {
			t.Errorf("dash length %v out of expected (0,2] range", length)
		}
	}
}

func TestHatchParallelMatchesHatch(t *testing.T) {
	segs := squareSegments(t, 10)
	pattern := HatchPattern{horizontalSolidFamily(t), horizontalSolidFamily(t)}

	var serial []Segment
	Hatch(pattern, segs, Odd, func(s Segment) { serial = append(serial, s) })

	var parallelOut []Segment
	HatchParallel(context.Background(), pattern, segs, Odd, func(s Segment) {
		parallelOut = append(parallelOut, s)
	}, WithWorkers(2))

	if len(serial) != len(parallelOut) {
		t.Fatalf("serial produced %d segments, parallel produced %d", len(serial), len(parallelOut))
	}

	sortByY := func(segs []Segment) {
		sort.Slice(segs, func(i, j int) bool {
			if segs[i].P.Y != segs[j].P.Y {
				return segs[i].P.Y < segs[j].P.Y
			}
			return segs[i].P.X < segs[j].P.X
		})
	}
	sortByY(serial)
	sortByY(parallelOut)
	for i := range serial {
		if !serial[i].P.Equals(parallelOut[i].P, 1e-9) || !serial[i].Q.Equals(parallelOut[i].Q, 1e-9) {
			t.Errorf("segment %d mismatch: serial=%v parallel=%v", i, serial[i], parallelOut[i])
		}
	}
}
