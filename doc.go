// Package hatch renders CAD-style hatch patterns over polygonal 2D
// regions.
//
// # Overview
//
// Given a set of closed contours and a multi-line hatch specification
// (each line a parameterized infinite family of parallel dashed lines),
// hatch produces the clipped, dashed line segments that lie inside the
// regions under a chosen winding rule. It implements the pattern-file
// convention (angle, origin, offset, dash lengths) used by common 2D
// CAD drafting tools.
//
// # Quick start
//
//	pattern, _ := hatch.LoadHatchPatternFile("crosshatch.pat", 1.0)
//	contours, _ := hatch.LoadContoursFile("outline.seg")
//	segments := hatch.ContoursToSegments(contours, 0)
//
//	hatch.Hatch(pattern, segments, hatch.Odd, func(s hatch.Segment) {
//		fmt.Println(s.P, s.Q)
//	})
//
// # Architecture
//
// The public API surface is: Matrix and Point (affine algebra), Dash
// and HatchPattern (parsed pattern families), Contour and Segment
// (region geometry), WindingRule (pluggable inside/outside predicate),
// and the Hatch/HatchParallel drivers. The sweep-line span generator and
// dash stamper that do the actual clipping live in internal/sweep and
// internal/stamp; they are not exported because their types (a plain
// Point/Segment pair, kept separate to avoid an import cycle with this
// package) are an implementation detail of the algorithm, not a
// contract callers should depend on.
//
// # Coordinate system and conventions
//
// Points are plain (x, y) float64 pairs; no fixed unit is assumed. A
// dash family's own parametric u-v space is the coordinate system in
// which its lines are exactly the integer horizontals v = k. Matrix
// composition is row-vector post-multiplication (see Matrix's doc
// comment) — this is load-bearing for XSkew's observable direction.
//
// # Non-goals
//
// hatch does not implement curve primitives (arcs, splines),
// anti-aliased rasterization, self-intersection repair of input
// contours, sub-unit dash phase alignment, or exact geometric
// predicates; it is a floating-point implementation. Command-line
// parsing, SVG emission, and any raster preview are thin adapters built
// on top of this package (see cmd/hatch and export/), not part of its
// core.
package hatch
