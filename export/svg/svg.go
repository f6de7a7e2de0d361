// Package svg renders a hatched drawing as a standalone SVG document,
// mirroring the reference command-line tool's inline preview: a green
// dashed axis cross, the black region outline, and the blue hatch
// fill, all inside one auto-fitted viewBox.
package svg

import (
	"fmt"
	"io"
	"math"

	"github.com/hatchline/hatch"
)

// Options controls the appearance of the rendered document. The zero
// value renders axes, outline, and hatch with the reference tool's
// default colors.
type Options struct {
	// AxisColor, OutlineColor, HatchColor override the stroke colors.
	// Empty strings fall back to the reference defaults.
	AxisColor, OutlineColor, HatchColor string
	// HideAxes suppresses the axis cross entirely.
	HideAxes bool
}

func (o Options) axisColor() string {
	if o.AxisColor == "" {
		return "green"
	}
	return o.AxisColor
}

func (o Options) outlineColor() string {
	if o.OutlineColor == "" {
		return "black"
	}
	return o.OutlineColor
}

func (o Options) hatchColor() string {
	if o.HatchColor == "" {
		return "blue"
	}
	return o.HatchColor
}

// Write emits an SVG document to w. outline is the region boundary
// (e.g. from [hatch.ContoursToSegments]); hatchSegs is the hatched
// output (e.g. accumulated from a [hatch.SegmentSink]). The viewBox is
// fit to outline's bounding box with a 5% margin on every side, and Y
// is flipped so the document reads in the usual up-is-positive sense
// while the geometry keeps hatch's own y-down-or-up-agnostic
// convention.
func Write(w io.Writer, outline, hatchSegs []hatch.Segment, opts Options) error {
	if len(outline) == 0 {
		return fmt.Errorf("svg: no outline segments")
	}

	minX, maxX := outline[0].P.X, outline[0].P.X
	minY, maxY := -outline[0].P.Y, -outline[0].P.Y
	for _, s := range outline {
		for _, p := range [2]hatch.Point{s.P, s.Q} {
			if p.X < minX {
				minX = p.X
			}
			if p.X > maxX {
				maxX = p.X
			}
			if -p.Y < minY {
				minY = -p.Y
			}
			if -p.Y > maxY {
				maxY = -p.Y
			}
		}
	}
	dx := maxX - minX
	dy := maxY - minY

	if _, err := fmt.Fprintf(w,
		`<svg width="100%%" height="100%%" viewBox="%g %g %g %g" `+
			`preserveAspectRatio="xMidYMid" `+
			`xmlns="http://www.w3.org/2000/svg" version="1.1" `+
			`xmlns:xlink="http://www.w3.org/1999/xlink">`,
		minX-0.05*dx, minY-0.05*dy, dx*1.1, dy*1.1); err != nil {
		return err
	}

	if !opts.HideAxes {
		if _, err := fmt.Fprintf(w, `<path stroke="%s" stroke-dasharray="20 20" d="`, opts.axisColor()); err != nil {
			return err
		}
		writeSeg(w, hatch.Segment{P: hatch.Pt(-2*dx, 0), Q: hatch.Pt(2*dx, 0)})
		writeSeg(w, hatch.Segment{P: hatch.Pt(0, -2*dy), Q: hatch.Pt(0, 2*dy)})
		if _, err := io.WriteString(w, "\"/>"); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, `<path fill="none" stroke="%s" stroke-linecap="round" d="`, opts.outlineColor()); err != nil {
		return err
	}
	for _, s := range outline {
		writeSeg(w, s)
	}
	if _, err := io.WriteString(w, "\"/>"); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, `<path fill="none" stroke="%s" stroke-opacity=".8" stroke-linecap="round" d="`, opts.hatchColor()); err != nil {
		return err
	}
	for _, s := range hatchSegs {
		writeSeg(w, s)
	}
	if _, err := io.WriteString(w, "\"/>"); err != nil {
		return err
	}

	_, err := io.WriteString(w, "</svg>")
	return err
}

func writeSeg(w io.Writer, s hatch.Segment) {
	fmt.Fprintf(w, "M%s %sL%s %s\n",
		formatCoord(s.P.X), formatCoord(-s.P.Y),
		formatCoord(s.Q.X), formatCoord(-s.Q.Y))
}

func formatCoord(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	return fmt.Sprintf("%g", v)
}
