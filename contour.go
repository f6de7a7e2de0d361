package hatch

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/akavel/polyclip-go"
)

// Contour is a closed polygon: an ordered ring of vertices. The edge
// from the last point back to the first closes the ring; callers do
// not repeat the first point at the end.
type Contour []Point

// LoadContours reads one contour per line: a flat, whitespace/comma
// separated list of x,y pairs (x0 y0 x1 y1 ...). ';' begins an
// end-of-line comment, stripped before parsing even when it follows
// real data on the same line. Each remaining line must carry an even
// number of values and at least 3 points (6 values); the first
// offending line aborts the whole load with its 1-based line number.
// Blank lines (after comment stripping) are skipped.
func LoadContours(r io.Reader) ([]Contour, error) {
	var contours []Contour
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := stripComment(scanner.Text())
		if line == "" {
			continue
		}
		values, err := parseNumbers(line)
		if err != nil {
			return nil, fmt.Errorf("contour line %d: %w", lineNo, err)
		}
		if len(values)%2 != 0 {
			return nil, fmt.Errorf("contour line %d: %w", lineNo, ErrOddCoordinateCount)
		}
		if len(values) < 6 {
			return nil, fmt.Errorf("contour line %d: %w", lineNo, ErrTooFewContourPoints)
		}
		c := make(Contour, 0, len(values)/2)
		for i := 0; i < len(values); i += 2 {
			c = append(c, Pt(values[i], values[i+1]))
		}
		contours = append(contours, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("contours: %w", err)
	}
	total := 0
	for _, c := range contours {
		total += len(c)
	}
	Logger().Info("contours loaded", "contours", len(contours), "points", total)
	return contours, nil
}

// LoadContoursFile opens path and calls [LoadContours] on it.
func LoadContoursFile(path string) ([]Contour, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("contours: %w", err)
	}
	defer f.Close()
	return LoadContours(f)
}

// BoundingBox returns the axis-aligned rectangle enclosing c, via
// polyclip-go's Contour type.
func (c Contour) BoundingBox() (minX, minY, maxX, maxY float64) {
	rect := c.toPolyclip().BoundingBox()
	return rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y
}

func (c Contour) toPolyclip() polyclip.Contour {
	pc := make(polyclip.Contour, len(c))
	for i, p := range c {
		pc[i] = polyclip.Point{X: p.X, Y: p.Y}
	}
	return pc
}

func fromPolyclip(pc polyclip.Contour) Contour {
	c := make(Contour, len(pc))
	for i, p := range pc {
		c[i] = Pt(p.X, p.Y)
	}
	return c
}

// Union merges a slice of contours into their set-theoretic union,
// built on polyclip-go's Bentley-Ottmann sweep (Construct(UNION, ...)).
// It is not part of the core hatching path (hatching consults the
// winding rule directly) but supports callers who want a single merged
// outline for, say, preview rendering of overlapping input regions.
func Union(contours []Contour) []Contour {
	if len(contours) == 0 {
		return nil
	}
	acc := polyclip.Polygon{contours[0].toPolyclip()}
	for _, c := range contours[1:] {
		acc = acc.Construct(polyclip.UNION, polyclip.Polygon{c.toPolyclip()})
	}
	result := make([]Contour, len(acc))
	for i, pc := range acc {
		result[i] = fromPolyclip(pc)
	}
	return result
}

// segmentsFromContour walks c's edges, turning each into a Segment.
// jitter, if nonzero, nudges every vertex by an independent uniform
// random amount in [-jitter/2, jitter/2] on both axes, which breaks
// exact axis-alignment degeneracies in the sweep (a segment endpoint
// landing exactly on an integer scanline) without biasing the result.
// Jitter is applied to a copy; c itself is never mutated.
func segmentsFromContour(c Contour, jitter float64) []Segment {
	pts := c
	if jitter != 0 {
		pts = make(Contour, len(c))
		for i, p := range c {
			pts[i] = Pt(p.X+jitterOffset(jitter), p.Y+jitterOffset(jitter))
		}
	}
	n := len(pts)
	segs := make([]Segment, 0, n)
	for i := 0; i < n; i++ {
		p := pts[i]
		q := pts[(i+1)%n]
		segs = append(segs, Segment{P: p, Q: q})
	}
	return segs
}

// jitterOffset draws a uniform offset in [-jitter/2, jitter/2].
func jitterOffset(jitter float64) float64 {
	return (rand.Float64() - 0.5) * jitter
}

// ContourToSegments converts a single contour to its boundary segments.
// See [segmentsFromContour] for the meaning of jitter.
func ContourToSegments(c Contour, jitter float64) []Segment {
	return segmentsFromContour(c, jitter)
}

// ContoursToSegments converts every contour to boundary segments and
// concatenates the results, preserving input order.
func ContoursToSegments(contours []Contour, jitter float64) []Segment {
	var segs []Segment
	for _, c := range contours {
		segs = append(segs, segmentsFromContour(c, jitter)...)
	}
	return segs
}
