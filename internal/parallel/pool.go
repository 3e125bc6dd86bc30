// Package parallel splits index ranges across a fixed set of goroutines.
//
// It is used to convert large pixel buffers in disjoint row ranges. A
// conversion writes each destination pixel from exactly one source pixel,
// so ranges never share state and need no locking.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of worker goroutines with per-worker queues.
// An idle worker steals queued ranges from its neighbours.
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	queueSize := max(workers*4, 8)

	p := &Pool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range p.queues {
		p.queues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	own := p.queues[id]

	for {
		select {
		case fn := <-own:
			fn()
			continue
		case <-p.done:
			p.drain(own)
			return
		default:
		}

		if fn := p.steal(id); fn != nil {
			fn()
			continue
		}

		select {
		case fn := <-own:
			fn()
		case <-p.done:
			p.drain(own)
			return
		}
	}
}

func (p *Pool) drain(q chan func()) {
	for {
		select {
		case fn := <-q:
			fn()
		default:
			return
		}
	}
}

func (p *Pool) steal(id int) func() {
	for i := 1; i < p.workers; i++ {
		select {
		case fn := <-p.queues[(id+i)%p.workers]:
			return fn
		default:
		}
	}
	return nil
}

// Run calls fn for consecutive ranges [lo, hi) covering [0, n), each at
// most chunk long, and returns when all calls have finished. Ranges are
// disjoint and every index is covered exactly once.
//
// If chunk is not positive the range is split evenly across the workers.
// On a closed pool, or when there is a single range, fn runs on the calling
// goroutine.
func (p *Pool) Run(n, chunk int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if chunk <= 0 {
		chunk = (n + p.workers - 1) / p.workers
	}
	if chunk >= n || !p.running.Load() {
		for lo := 0; lo < n; lo += chunk {
			fn(lo, min(lo+chunk, n))
		}
		return
	}

	var wg sync.WaitGroup
	i := 0
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		wg.Add(1)
		task := func() {
			defer wg.Done()
			fn(lo, hi)
		}
		p.queues[i%p.workers] <- task
		i++
	}
	wg.Wait()
}

// Close stops the workers after the queued ranges have run. It must not
// overlap a Run call. Close is safe to call multiple times.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool accepts work.
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}

// Chunks splits total into parts nearly equal ranges and returns their
// boundaries: parts+1 ascending values from 0 to total. Earlier ranges get
// the remainder. parts is clamped to [1, total].
func Chunks(total, parts int) []int {
	if total <= 0 {
		return []int{0}
	}
	parts = max(1, min(parts, total))
	bounds := make([]int, parts+1)
	size, rem := total/parts, total%parts
	for i := range parts {
		step := size
		if i < rem {
			step++
		}
		bounds[i+1] = bounds[i] + step
	}
	return bounds
}
