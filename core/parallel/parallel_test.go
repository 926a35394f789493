package parallel

import (
	"sync/atomic"
	"testing"
)

func TestParallelize_CoversAllItems(t *testing.T) {
	const items = 10000

	var covered int64
	Parallelize(items, func(start, end int) {
		atomic.AddInt64(&covered, int64(end-start))
	})

	if covered != items {
		t.Errorf("Covered %d items, want %d", covered, items)
	}
}

func TestParallelize_ZeroItems(t *testing.T) {
	called := false
	Parallelize(0, func(start, end int) {
		called = true
	})

	if called {
		t.Error("fn should not be called for zero items")
	}
}

func TestParallelizeWithThreshold_Sequential(t *testing.T) {
	calls := 0
	ParallelizeWithThreshold(10, 100, func(start, end int) {
		calls++
		if start != 0 || end != 10 {
			t.Errorf("Sequential call should cover [0, 10), got [%d, %d)", start, end)
		}
	})

	if calls != 1 {
		t.Errorf("Below threshold fn should be called exactly once, got %d", calls)
	}
}

func TestParallelizeWithThreshold_Parallel(t *testing.T) {
	const items = 5000

	var covered int64
	ParallelizeWithThreshold(items, 1000, func(start, end int) {
		atomic.AddInt64(&covered, int64(end-start))
	})

	if covered != items {
		t.Errorf("Covered %d items, want %d", covered, items)
	}
}
