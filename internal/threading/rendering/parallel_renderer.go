package rendering

import (
	"sync"

	"github.com/rurutoria7/wolfenstein-on-fpga/internal/raycast"
	"github.com/rurutoria7/wolfenstein-on-fpga/internal/threading/core"
)

// ParallelRenderer spreads per-column ray casting across a worker pool.
// Each column is independent state, so columns can be evaluated in any
// order; the caller blits the collected results in column order to keep
// the output stream deterministic.
type ParallelRenderer struct {
	workerPool *core.WorkerPool
}

// NewParallelRenderer creates a new parallel renderer
func NewParallelRenderer() *ParallelRenderer {
	return &ParallelRenderer{
		workerPool: core.CreateDefaultWorkerPool(),
	}
}

// RenderColumns casts every screen column through columnFunc and collects
// the per-row colors, indexed by column. The worker pool is reused across
// frames to avoid goroutine creation/destruction overhead at frame rate.
func (pr *ParallelRenderer) RenderColumns(numColumns int, columnFunc func(col int) []raycast.Color) [][]raycast.Color {
	// Single allocation for results
	results := make([][]raycast.Color, numColumns)

	// Very small workloads: process inline to avoid synchronization overhead
	if numColumns <= 8 {
		for col := 0; col < numColumns; col++ {
			results[col] = columnFunc(col)
		}
		return results
	}

	// Use worker pool for all parallel workloads to avoid goroutine churn
	numWorkers := pr.workerPool.GetNumWorkers()
	batchSize := numColumns / numWorkers
	if batchSize < 4 {
		batchSize = 4 // Minimum batch size for efficiency
	}
	if batchSize > 32 {
		batchSize = 32 // Cap batch size
	}

	var wg sync.WaitGroup

	for i := 0; i < numColumns; i += batchSize {
		start := i
		end := min(i+batchSize, numColumns)

		wg.Add(1)
		pr.workerPool.Submit(func() {
			defer wg.Done()
			for col := start; col < end; col++ {
				results[col] = columnFunc(col)
			}
		})
	}
	wg.Wait()

	return results
}

// Stop shuts down the parallel renderer
func (pr *ParallelRenderer) Stop() {
	pr.workerPool.Stop()
}
