// Package sweep implements the scanline sweep that turns a set of
// boundary segments, already warped into a dash family's parametric
// u-v space, into the clipped (v, u1, u2) spans that lie inside the
// region under a chosen winding rule.
//
// Point and Segment are private copies of the public hatch package's
// types, to avoid an import cycle: this package is imported by hatch,
// so it cannot import hatch back.
package sweep

import (
	"container/heap"
	"math"
	"sort"
)

// Point is a plain 2D point in parametric u-v space.
type Point struct {
	X, Y float64
}

// Segment is a boundary edge in parametric u-v space. Swapped records
// whether P and Q have been exchanged from the caller's original
// orientation (by ysort here, or by the world-to-parametric mapping
// upstream) — it determines the sign of the segment's contribution to
// the winding count.
type Segment struct {
	P, Q    Point
	Swapped bool
}

// WindingRule reports whether the region with the given accumulated
// winding number counts as "inside". It is consulted before the
// winding count is updated for a crossing, so WindingRule(0) decides
// the span immediately to the left of the first crossing.
type WindingRule func(winding int32) bool

// SpanFunc receives one clipped span on scanline v, spanning u1 to u2
// in parametric space.
type SpanFunc func(v, u1, u2 float64)

// ysort reorders s so that P carries the lower Y value, toggling
// Swapped to record whether a swap occurred.
func ysort(s *Segment) {
	if s.P.Y < s.Q.Y {
		return
	}
	s.Swapped = !s.Swapped
	s.P, s.Q = s.Q, s.P
}

// activeHeap is a min-heap of segments ordered by Q.Y: the segment
// whose span ends soonest is always at the root, so expired segments
// can be popped in O(log n) as the sweep line v advances.
type activeHeap []Segment

func (h activeHeap) Len() int            { return len(h) }
func (h activeHeap) Less(i, j int) bool  { return h[i].Q.Y < h[j].Q.Y }
func (h activeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *activeHeap) Push(x interface{}) { *h = append(*h, x.(Segment)) }
func (h *activeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Spans runs the sweep over segments, calling emit for every span that
// wr judges to be inside the region, on every integer scanline between
// the lowest and highest Y value among segments. segments is sorted
// and otherwise mutated in place (ysort reorders each segment's P/Q);
// callers that need their original order preserved should pass a copy.
func Spans(segments []Segment, wr WindingRule, emit SpanFunc) {
	if len(segments) == 0 {
		return
	}

	for i := range segments {
		ysort(&segments[i])
	}
	sort.Slice(segments, func(i, j int) bool { return segments[i].P.Y < segments[j].P.Y })

	maxQY := segments[0].Q.Y
	for _, s := range segments[1:] {
		if s.Q.Y > maxQY {
			maxQY = s.Q.Y
		}
	}
	vstart := int(math.Floor(segments[0].P.Y))
	vend := int(math.Ceil(maxQY))

	active := &activeHeap{}
	next := 0
	isects := make([]intersection, 0, 8)

	for v := vstart; v < vend; v++ {
		fv := float64(v)
		isects = isects[:0]

		for active.Len() > 0 && (*active)[0].Q.Y < fv {
			heap.Pop(active)
		}
		for next < len(segments) && segments[next].P.Y < fv {
			s := segments[next]
			if s.Q.Y >= fv {
				heap.Push(active, s)
			}
			next++
		}

		for _, s := range *active {
			du := s.Q.X - s.P.X
			dv := s.Q.Y - s.P.Y
			u := s.P.X + du*(fv-s.P.Y)/dv
			isects = append(isects, intersection{u: u, positive: s.Swapped})
		}
		sort.Slice(isects, func(i, j int) bool { return isects[i].u < isects[j].u })

		winding := int32(0)
		oldU := math.Inf(-1)
		for _, isect := range isects {
			if wr(winding) {
				emit(fv, oldU, isect.u)
			}
			if isect.positive {
				winding++
			} else {
				winding--
			}
			oldU = isect.u
		}
	}
}

// intersection is where an active segment crosses the current
// scanline; positive mirrors the segment's Swapped flag and sets the
// sign of its contribution to the running winding count.
type intersection struct {
	u        float64
	positive bool
}
