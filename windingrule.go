package hatch

import "fmt"

// WindingRule decides whether a given signed winding count lies inside
// the filled region. The sweep consults wr(winding) before updating the
// running count for each crossing. Any function of this shape is
// accepted — no predefined set is required.
type WindingRule func(winding int32) bool

// Named winding rules matching the reference CLI.
var (
	Odd       WindingRule = func(w int32) bool { return w%2 != 0 }
	NonZero   WindingRule = func(w int32) bool { return w != 0 }
	Positive  WindingRule = func(w int32) bool { return w > 0 }
	Negative  WindingRule = func(w int32) bool { return w < 0 }
	AbsGeqTwo WindingRule = func(w int32) bool { return abs32(w) >= 2 }
)

func abs32(w int32) int32 {
	if w < 0 {
		return -w
	}
	return w
}

// ParseWindingRule resolves one of the named winding rules by its CLI
// name: odd, nonzero, positive, negative, abs_geq_two.
func ParseWindingRule(name string) (WindingRule, error) {
	switch name {
	case "odd":
		return Odd, nil
	case "nonzero":
		return NonZero, nil
	case "positive":
		return Positive, nil
	case "negative":
		return Negative, nil
	case "abs_geq_two":
		return AbsGeqTwo, nil
	default:
		return nil, fmt.Errorf("hatch: unrecognized winding rule %q (want one of odd, nonzero, positive, negative, abs_geq_two)", name)
	}
}
