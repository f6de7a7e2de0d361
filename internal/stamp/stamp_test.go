package stamp

import "testing"

func TestDrawSolidPattern(t *testing.T) {
	var got [][2]float64
	Draw(Pattern{}, 0, 0, 10, func(v, u1, u2 float64) {
		got = append(got, [2]float64{u1, u2})
	})
	if len(got) != 1 || got[0][0] != 0 || got[0][1] != 10 {
		t.Fatalf("Draw(solid) = %v, want [[0 10]]", got)
	}
}

func TestDrawDashedPatternFromOrigin(t *testing.T) {
	p := Pattern{Array: []float64{2, 2}, Sum: []float64{0, 2, 4}}
	var got [][2]float64
	Draw(p, 0, 0, 10, func(v, u1, u2 float64) {
		got = append(got, [2]float64{u1, u2})
	})
	want := [][2]float64{{0, 2}, {4, 6}, {8, 10}}
	if len(got) != len(want) {
		t.Fatalf("Draw produced %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDrawDashedPatternMidPhase(t *testing.T) {
	// starting at u1=1, one unit into the first dash: the first emitted
	// interval should be clipped to [1,2), continuing the phase rather
	// than restarting it.
	p := Pattern{Array: []float64{2, 2}, Sum: []float64{0, 2, 4}}
	var got [][2]float64
	Draw(p, 0, 1, 5, func(v, u1, u2 float64) {
		got = append(got, [2]float64{u1, u2})
	})
	want := [][2]float64{{1, 2}, {4, 5}}
	if len(got) != len(want) {
		t.Fatalf("Draw produced %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDrawNegativeU(t *testing.T) {
	// pythonmod must fold negative u the same way the original's
	// floor-based mod does, not Go's truncating %.
	p := Pattern{Array: []float64{2, 2}, Sum: []float64{0, 2, 4}}
	var got [][2]float64
	Draw(p, 0, -4, -2, func(v, u1, u2 float64) {
		got = append(got, [2]float64{u1, u2})
	})
	want := [][2]float64{{-4, -2}}
	if len(got) != len(want) {
		t.Fatalf("Draw produced %v, want %v", got, want)
	}
	if got[0] != want[0] {
		t.Errorf("got %v, want %v", got[0], want[0])
	}
}

func TestPythonmod(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{5, 4, 1},
		{-1, 4, 3},
		{-4, 4, 0},
		{4, 4, 0},
	}
	for _, tt := range tests {
		if got := pythonmod(tt.a, tt.b); got != tt.want {
			t.Errorf("pythonmod(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
