package hatch

import "testing"

func TestNamedWindingRules(t *testing.T) {
	tests := []struct {
		name string
		wr   WindingRule
		in   map[int32]bool
	}{
		{"odd", Odd, map[int32]bool{0: false, 1: true, 2: false, -1: true}},
		{"nonzero", NonZero, map[int32]bool{0: false, 1: true, -1: true}},
		{"positive", Positive, map[int32]bool{0: false, 1: true, -1: false}},
		{"negative", Negative, map[int32]bool{0: false, 1: false, -1: true}},
		{"abs_geq_two", AbsGeqTwo, map[int32]bool{0: false, 1: false, 2: true, -2: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for w, want := range tt.in {
				if got := tt.wr(w); got != want {
					t.Errorf("%s(%d) = %v, want %v", tt.name, w, got, want)
				}
			}
		})
	}
}

func TestParseWindingRule(t *testing.T) {
	for _, name := range []string{"odd", "nonzero", "positive", "negative", "abs_geq_two"} {
		if _, err := ParseWindingRule(name); err != nil {
			t.Errorf("ParseWindingRule(%q) = %v", name, err)
		}
	}
	if _, err := ParseWindingRule("bogus"); err == nil {
		t.Error("ParseWindingRule(\"bogus\") succeeded, want error")
	}
}
