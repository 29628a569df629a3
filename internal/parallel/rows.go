package parallel

import "sync"

// MinBandRows is the smallest band handed to a worker. Frames shorter
// than two bands run on the calling goroutine.
const MinBandRows = 16

var (
	defaultPool     *WorkerPool
	defaultPoolOnce sync.Once
)

// Default returns the process-wide pool, creating it on first use.
func Default() *WorkerPool {
	defaultPoolOnce.Do(func() {
		defaultPool = NewWorkerPool(0)
	})
	return defaultPool
}

// Bands splits [0, height) into at most n contiguous half-open ranges.
// When there is more than one range, each holds at least MinBandRows
// rows. The ranges cover every row exactly once.
func Bands(height, n int) [][2]int {
	if height <= 0 {
		return nil
	}
	if n < 1 {
		n = 1
	}
	if maxBands := max(height/MinBandRows, 1); n > maxBands {
		n = maxBands
	}

	bands := make([][2]int, 0, n)
	step := height / n
	extra := height % n
	y := 0
	for i := range n {
		rows := step
		if i < extra {
			rows++
		}
		bands = append(bands, [2]int{y, y + rows})
		y += rows
	}
	return bands
}

// Rows calls fn(y0, y1) for disjoint bands covering [0, height) on the
// pool and waits for all of them. fn must only touch rows in its band.
// A nil pool uses Default.
func Rows(p *WorkerPool, height int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}
	if p == nil {
		p = Default()
	}

	bands := Bands(height, p.Workers())
	if len(bands) == 1 {
		fn(0, height)
		return
	}

	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() { fn(b[0], b[1]) }
	}
	p.ExecuteAll(work)
}
