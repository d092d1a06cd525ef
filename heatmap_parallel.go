package geometrize

import (
	"github.com/gogpu/geometrize/internal/parallel"
)

// ParallelFromFunc is the concurrent form of HeatmapFromFunc.
//
// Rows are split into bands and every band is filled by a worker. Bands
// cover disjoint row ranges of a single heatmap, so no locking or merging
// is needed and memory use matches HeatmapFromFunc. f is still called
// exactly once per cell, but from several goroutines and in no particular
// order, so it must be safe for concurrent use. The result equals
// HeatmapFromFunc(width, height, f) for a deterministic f.
func ParallelFromFunc(width, height int, f func(x, y int) uint64, opts ...ParallelOption) (*Heatmap, error) {
	h, err := NewHeatmap(width, height)
	if err != nil {
		return nil, err
	}

	o := defaultParallelOptions()
	for _, opt := range opts {
		opt(&o)
	}

	pool := parallel.NewWorkerPool(o.workers)
	defer pool.Close()

	n := o.bands
	if n <= 0 {
		n = pool.Workers()
	}
	bands := parallel.Bands(height, n)
	if len(bands) == 0 {
		return h, nil
	}

	Logger().Debug("parallel heatmap accumulation",
		"width", width, "height", height,
		"workers", pool.Workers(), "bands", len(bands))

	jobs := make([]func(), len(bands))
	for i, b := range bands {
		jobs[i] = func() {
			h.fillRows(b.Y0, b.Y1, f)
		}
	}
	pool.ExecuteAll(jobs)

	return h, nil
}
