package hatch

// ParallelOption configures HatchParallel. Use functional options to
// customize its fan-out without growing the function signature.
//
// Example:
//
//	hatch.HatchParallel(ctx, pattern, segs, hatch.Odd, sink,
//		hatch.WithWorkers(4))
type ParallelOption func(*parallelOptions)

// parallelOptions holds optional configuration for HatchParallel.
type parallelOptions struct {
	workers       int
	perFamilySink bool
}

func defaultParallelOptions() parallelOptions {
	return parallelOptions{
		workers:       0, // 0 means runtime.GOMAXPROCS(0)
		perFamilySink: false,
	}
}

// WithWorkers sets the number of worker goroutines HatchParallel fans
// its dash families across. n <= 0 means runtime.GOMAXPROCS(0).
func WithWorkers(n int) ParallelOption {
	return func(o *parallelOptions) {
		o.workers = n
	}
}

// WithPerFamilySink disables the mutex-guarded sink wrapper HatchParallel
// installs by default. When set, the caller's sink must itself be safe
// for concurrent use, whether that means per-thread sinks merged
// afterward or an internally synchronized sink.
func WithPerFamilySink() ParallelOption {
	return func(o *parallelOptions) {
		o.perFamilySink = true
	}
}
