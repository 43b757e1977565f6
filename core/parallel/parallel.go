// Package parallel provides chunked fan-out helpers for splitting
// row-indexed work across CPU cores.
package parallel

import (
	"runtime"
	"sync"
)

// Parallelize splits the index range [0, items) into one chunk per
// available CPU core and runs fn(start, end) for each chunk on its own
// goroutine, returning once every chunk is done. Chunks never overlap,
// so fn may write to per-index slots without locking.
func Parallelize(items int, fn func(start, end int)) {
	if items == 0 {
		return
	}

	workers := runtime.NumCPU()
	if workers > items {
		workers = items
	}
	// Ceiling division so the last chunk picks up the remainder.
	chunk := (items + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < items; start += chunk {
		end := start + chunk
		if end > items {
			end = items
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// ParallelizeWithThreshold runs fn(0, items) on the calling goroutine
// when items is at or below threshold, and fans out like Parallelize
// otherwise. Small inputs skip the goroutine overhead.
func ParallelizeWithThreshold(items int, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}
	Parallelize(items, fn)
}
