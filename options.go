package geometrize

// ParallelOption configures ParallelFromFunc.
// Use functional options to customize how the work is split.
//
// Example:
//
//	hm, err := geometrize.ParallelFromFunc(1024, 768, errorAt,
//	    geometrize.WithWorkers(8),
//	    geometrize.WithBands(32),
//	)
type ParallelOption func(*parallelOptions)

// parallelOptions holds optional configuration for parallel accumulation.
type parallelOptions struct {
	workers int
	bands   int
}

// defaultParallelOptions returns the default options.
func defaultParallelOptions() parallelOptions {
	return parallelOptions{
		workers: 0, // GOMAXPROCS
		bands:   0, // one band per worker
	}
}

// WithWorkers sets the number of worker goroutines.
// Zero or a negative value selects GOMAXPROCS.
func WithWorkers(n int) ParallelOption {
	return func(o *parallelOptions) {
		o.workers = n
	}
}

// WithBands sets the number of row bands the heatmap is split into.
// Each band is accumulated into its own heatmap before merging.
// Zero or a negative value selects one band per worker.
func WithBands(n int) ParallelOption {
	return func(o *parallelOptions) {
		o.bands = n
	}
}
