package hatch

import "errors"

// Sentinel errors returned by the parsers. Parsing a file is
// all-or-nothing: the first bad line aborts the whole input, wrapped
// with its line number by the caller.
var (
	// ErrOddCoordinateCount is returned when a contour line has an odd
	// number of whitespace/comma separated values.
	ErrOddCoordinateCount = errors.New("hatch: odd number of coordinate values")

	// ErrTooFewContourPoints is returned when a contour line has fewer
	// than 6 values (fewer than 3 points).
	ErrTooFewContourPoints = errors.New("hatch: fewer than 3 points in contour")

	// ErrInvalidDashLine is returned when a dash-pattern line has fewer
	// than 5 numbers.
	ErrInvalidDashLine = errors.New("hatch: not a valid dash specification")

	// ErrDashSignMismatch is returned when a dash-length entry's sign
	// does not alternate starting positive (even index non-negative, odd
	// index negative).
	ErrDashSignMismatch = errors.New("hatch: dash lengths must alternate sign starting positive")

	// ErrZeroDY is returned when a dash family's dy parameter is zero,
	// which would make its transform singular.
	ErrZeroDY = errors.New("hatch: dash family dy must be nonzero")

	// ErrEmptySegments is returned by callers that require at least one
	// segment and received none.
	ErrEmptySegments = errors.New("hatch: no segments to hatch")

	// ErrTrailingGarbage is returned when a numeric token fails to
	// parse as a real number.
	ErrTrailingGarbage = errors.New("hatch: trailing garbage in numeric line")
)
