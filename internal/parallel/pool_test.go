package parallel

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestWorkerPool_Create(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("Pool should be running after creation")
	}
}

func TestWorkerPool_CreateZeroWorkers(t *testing.T) {
	pool := NewWorkerPool(0)
	defer pool.Close()

	if want := runtime.GOMAXPROCS(0); pool.Workers() != want {
		t.Errorf("Workers() = %d, want %d (GOMAXPROCS)", pool.Workers(), want)
	}
}

func TestWorkerPool_ExecuteAll(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	work := make([]func(), 100)
	for i := range work {
		work[i] = func() { counter.Add(1) }
	}

	pool.ExecuteAll(work)

	if counter.Load() != 100 {
		t.Errorf("counter = %d, want 100", counter.Load())
	}
}

func TestWorkerPool_ExecuteAllAfterClose(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()
	pool.Close() // idempotent

	if pool.IsRunning() {
		t.Error("Pool should not be running after Close")
	}

	var counter atomic.Int64
	pool.ExecuteAll([]func(){
		func() { counter.Add(1) },
		func() { counter.Add(1) },
	})
	if counter.Load() != 2 {
		t.Errorf("closed pool ran %d items inline, want 2", counter.Load())
	}
}

func TestBands(t *testing.T) {
	tests := []struct {
		name   string
		height int
		n      int
		want   int
	}{
		{"empty", 0, 4, 0},
		{"short frame", 10, 8, 1},
		{"exact", 64, 4, 4},
		{"uneven", 100, 3, 3},
		{"capped by min rows", 40, 8, 2},
		{"zero workers", 50, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bands := Bands(tt.height, tt.n)
			if len(bands) != tt.want {
				t.Fatalf("Bands(%d, %d) returned %d bands, want %d", tt.height, tt.n, len(bands), tt.want)
			}
			y := 0
			for _, b := range bands {
				if b[0] != y {
					t.Errorf("band starts at %d, want %d", b[0], y)
				}
				if b[1] <= b[0] {
					t.Errorf("empty band %v", b)
				}
				if len(bands) > 1 && b[1]-b[0] < MinBandRows {
					t.Errorf("band %v shorter than %d rows", b, MinBandRows)
				}
				y = b[1]
			}
			if y != tt.height {
				t.Errorf("bands cover %d rows, want %d", y, tt.height)
			}
		})
	}
}

func TestRows_CoversEveryRowOnce(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	const height = 257
	var hits [height]atomic.Int32
	Rows(pool, height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			hits[y].Add(1)
		}
	})

	for y := range hits {
		if n := hits[y].Load(); n != 1 {
			t.Errorf("row %d visited %d times, want 1", y, n)
		}
	}
}

func TestRows_NilPoolUsesDefault(t *testing.T) {
	var rows atomic.Int64
	Rows(nil, 100, func(y0, y1 int) { rows.Add(int64(y1 - y0)) })
	if rows.Load() != 100 {
		t.Errorf("visited %d rows, want 100", rows.Load())
	}
	if Default() != Default() {
		t.Error("Default() should return the same pool")
	}
}
