package parallel

import (
	"runtime"
	"slices"
	"sync"
	"sync/atomic"
	"testing"
)

func TestPool_Create(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("Pool should be running after creation")
	}
}

func TestPool_CreateDefaultWorkers(t *testing.T) {
	for _, n := range []int{0, -5} {
		pool := NewPool(n)
		if got, want := pool.Workers(), runtime.GOMAXPROCS(0); got != want {
			t.Errorf("NewPool(%d).Workers() = %d, want %d", n, got, want)
		}
		pool.Close()
	}
}

// TestPool_RunCoversRange checks every index is visited exactly once for a
// variety of range and chunk sizes.
func TestPool_RunCoversRange(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	tests := []struct {
		n, chunk int
	}{
		{1, 1},
		{10, 3},
		{100, 7},
		{100, 100},
		{100, 1000},
		{1000, 0},
		{3, 0},
		{4097, 64},
	}

	for _, tt := range tests {
		visits := make([]atomic.Int32, tt.n)
		pool.Run(tt.n, tt.chunk, func(lo, hi int) {
			if lo >= hi {
				t.Errorf("Run(%d, %d): empty range [%d, %d)", tt.n, tt.chunk, lo, hi)
			}
			if tt.chunk > 0 && hi-lo > tt.chunk {
				t.Errorf("Run(%d, %d): range [%d, %d) longer than chunk", tt.n, tt.chunk, lo, hi)
			}
			for i := lo; i < hi; i++ {
				visits[i].Add(1)
			}
		})
		for i := range visits {
			if v := visits[i].Load(); v != 1 {
				t.Fatalf("Run(%d, %d): index %d visited %d times", tt.n, tt.chunk, i, v)
			}
		}
	}
}

func TestPool_RunEmpty(t *testing.T) {
	pool := NewPool(2)
	defer pool.Close()

	called := false
	pool.Run(0, 10, func(int, int) { called = true })
	pool.Run(-3, 10, func(int, int) { called = true })
	if called {
		t.Error("Run with no indices called fn")
	}
}

func TestPool_RunAfterClose(t *testing.T) {
	pool := NewPool(2)
	pool.Close()

	if pool.IsRunning() {
		t.Error("Pool should not be running after Close")
	}

	var mu sync.Mutex
	var ranges [][2]int
	pool.Run(10, 4, func(lo, hi int) {
		mu.Lock()
		ranges = append(ranges, [2]int{lo, hi})
		mu.Unlock()
	})
	want := [][2]int{{0, 4}, {4, 8}, {8, 10}}
	if !slices.Equal(ranges, want) {
		t.Errorf("ranges after Close = %v, want %v", ranges, want)
	}
}

func TestPool_CloseTwice(t *testing.T) {
	pool := NewPool(2)
	pool.Close()
	pool.Close()
}

func TestPool_ConcurrentRun(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	var total atomic.Int64
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pool.Run(1000, 16, func(lo, hi int) {
				total.Add(int64(hi - lo))
			})
		}()
	}
	wg.Wait()

	if got := total.Load(); got != 8000 {
		t.Errorf("total = %d, want 8000", got)
	}
}

func TestChunks(t *testing.T) {
	tests := []struct {
		total, parts int
		want         []int
	}{
		{10, 3, []int{0, 4, 7, 10}},
		{9, 3, []int{0, 3, 6, 9}},
		{2, 5, []int{0, 1, 2}},
		{5, 0, []int{0, 5}},
		{0, 4, []int{0}},
	}

	for _, tt := range tests {
		if got := Chunks(tt.total, tt.parts); !slices.Equal(got, tt.want) {
			t.Errorf("Chunks(%d, %d) = %v, want %v", tt.total, tt.parts, got, tt.want)
		}
	}
}

func BenchmarkPool_Run(b *testing.B) {
	pool := NewPool(0)
	defer pool.Close()

	data := make([]byte, 1<<20)
	b.SetBytes(int64(len(data)))
	for b.Loop() {
		pool.Run(len(data), 64<<10, func(lo, hi int) {
			for i := lo; i < hi; i++ {
				data[i]++
			}
		})
	}
}
