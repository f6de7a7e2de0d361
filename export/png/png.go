// Package png rasterizes a hatched drawing into a bitmap preview, for
// callers that want a quick raster thumbnail instead of the vector
// output export/svg produces. It is deliberately built entirely on the
// standard library (image, image/color, image/png): anti-aliased
// rendering is out of scope, so there is no need for a shape-fill or
// path-rendering dependency here — this package draws single-pixel-wide
// lines with a plain Bresenham walk.
package png

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/hatchline/hatch"
)

var errNoOutline = errors.New("png: no outline segments")

// Options controls the rasterized preview.
type Options struct {
	// Width, Height are the output image's pixel dimensions.
	Width, Height int
	// Background, Outline, Hatch are the colors used for the canvas,
	// the region boundary, and the hatch fill respectively. The zero
	// value of each falls back to white background, black outline,
	// and blue hatch.
	Background, Outline, Hatch color.Color
}

func (o Options) background() color.Color {
	if o.Background == nil {
		return color.White
	}
	return o.Background
}

func (o Options) outline() color.Color {
	if o.Outline == nil {
		return color.Black
	}
	return o.Outline
}

func (o Options) hatch() color.Color {
	if o.Hatch == nil {
		return color.RGBA{R: 0, G: 0, B: 255, A: 255}
	}
	return o.Hatch
}

// Write rasterizes outline and hatchSegs into a Width x Height image,
// fit to outline's bounding box with a 5% margin, and PNG-encodes it
// to w.
func Write(w io.Writer, outline, hatchSegs []hatch.Segment, opts Options) error {
	if len(outline) == 0 {
		return errNoOutline
	}
	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = 800
	}
	if height <= 0 {
		height = 800
	}

	minX, maxX := outline[0].P.X, outline[0].P.X
	minY, maxY := outline[0].P.Y, outline[0].P.Y
	for _, s := range outline {
		for _, p := range [2]hatch.Point{s.P, s.Q} {
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		}
	}
	dx := maxX - minX
	dy := maxY - minY
	if dx == 0 {
		dx = 1
	}
	if dy == 0 {
		dy = 1
	}
	marginX, marginY := 0.05*dx, 0.05*dy
	spanX, spanY := dx+2*marginX, dy+2*marginY

	toPixel := func(p hatch.Point) (int, int) {
		u := (p.X - (minX - marginX)) / spanX
		v := 1 - (p.Y-(minY-marginY))/spanY
		return int(u * float64(width)), int(v * float64(height))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	bg := opts.background()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, bg)
		}
	}

	for _, s := range outline {
		x0, y0 := toPixel(s.P)
		x1, y1 := toPixel(s.Q)
		drawLine(img, x0, y0, x1, y1, opts.outline())
	}
	for _, s := range hatchSegs {
		x0, y0 := toPixel(s.P)
		x1, y1 := toPixel(s.Q)
		drawLine(img, x0, y0, x1, y1, opts.hatch())
	}

	return png.Encode(w, img)
}

// drawLine plots a 1px line with Bresenham's integer algorithm.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		if (image.Point{X: x0, Y: y0}).In(img.Bounds()) {
			img.Set(x0, y0, c)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
