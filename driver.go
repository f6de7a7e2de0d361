package hatch

import (
	"context"
	"runtime"
	"sync"

	"github.com/hatchline/hatch/internal/parallel"
	"github.com/hatchline/hatch/internal/stamp"
	"github.com/hatchline/hatch/internal/sweep"
)

// SegmentSink receives one lit output segment at a time, in world
// coordinates. A sink passed to [HatchParallel] without
// [WithPerFamilySink] is wrapped in a mutex and may be called from any
// worker goroutine; one passed with that option must do its own
// synchronization, or rely on each worker owning an exclusive range.
type SegmentSink func(Segment)

// Hatch runs pattern's dash families against segments in slice order,
// synchronously on the calling goroutine, and calls sink for every lit
// segment that wr judges inside. Output order is deterministic: families
// in pattern order, then scanlines in increasing v, then spans in
// increasing u.
func Hatch(pattern HatchPattern, segments []Segment, wr WindingRule, sink SegmentSink) {
	for _, d := range pattern {
		xyhatch(d, segments, wr, sink)
	}
}

// HatchParallel runs one dash family per worker goroutine, fanned out
// over an [internal/parallel.Pool]. Families complete in no guaranteed
// order relative to each other; within a single family, output order
// matches [Hatch]. Each worker owns private scratch buffers (segment
// copies, sweep state), so no family's internal ordering is disturbed
// by the others running concurrently.
//
// ctx is checked for cancellation between families; a cancelled context
// stops launching new families but does not abort ones already running.
func HatchParallel(ctx context.Context, pattern HatchPattern, segments []Segment, wr WindingRule, sink SegmentSink, opts ...ParallelOption) {
	cfg := defaultParallelOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	effectiveSink := sink
	if !cfg.perFamilySink {
		var mu sync.Mutex
		effectiveSink = func(s Segment) {
			mu.Lock()
			defer mu.Unlock()
			sink(s)
		}
	}

	workers := cfg.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	pool := parallel.New(workers)

	Logger().Debug("hatch parallel start", "families", len(pattern), "workers", pool.Workers())

	jobs := make([]func(), 0, len(pattern))
	for _, d := range pattern {
		d := d
		jobs = append(jobs, func() {
			select {
			case <-ctx.Done():
				return
			default:
			}
			xyhatch(d, segments, wr, effectiveSink)
		})
	}
	pool.ExecuteAll(jobs)

	Logger().Debug("hatch parallel done")
}

// xyhatch is the per-dash-family driver: it warps segments into the
// family's parametric space via d.Tf, sweeps for lit spans, stamps
// those spans with the family's dash pattern, and maps the resulting
// sub-segments back to world space via d.Tr.
func xyhatch(d Dash, segments []Segment, wr WindingRule, sink SegmentSink) {
	if len(segments) == 0 {
		return
	}

	swappedBase := d.Tf.Determinant() < 0
	uvsegs := make([]sweep.Segment, len(segments))
	for i, s := range segments {
		p := s.P.Transform(d.Tf)
		q := s.Q.Transform(d.Tf)
		uvsegs[i] = sweep.Segment{
			P:       sweep.Point{X: p.X, Y: p.Y},
			Q:       sweep.Point{X: q.X, Y: q.Y},
			Swapped: swappedBase != s.Swapped,
		}
	}

	sp := stamp.Pattern{Array: d.Array, Sum: d.Sum}

	sweep.Spans(uvsegs, sweep.WindingRule(wr), func(v, u1, u2 float64) {
		stamp.Draw(sp, v, u1, u2, func(v, su1, su2 float64) {
			if su1 == su2 {
				Logger().Warn("degenerate zero-length interval", "v", v, "u", su1)
				return
			}
			p := Pt(su1, v).Transform(d.Tr)
			q := Pt(su2, v).Transform(d.Tr)
			sink(Segment{P: p, Q: q})
		})
	})
}
