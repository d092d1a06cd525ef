// Package parallel provides the worker pool and row partitioning used to
// fill heatmaps concurrently.
//
// A heatmap is split into horizontal bands of whole rows. Each band is
// filled by one job running on a WorkerPool. Bands never overlap, so jobs
// write disjoint row ranges of one shared buffer and no two jobs ever
// touch the same memory.
package parallel
