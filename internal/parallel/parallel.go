// Package parallel provides the execution policy for data-parallel tensor loops.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// DefaultThreshold is the element count at which loops switch to parallel execution.
const DefaultThreshold = 1000

// Config controls parallel execution behavior.
type Config struct {
	Enabled    bool // Whether parallel execution is enabled.
	NumWorkers int  // Number of worker goroutines to use.
	Threshold  int  // Minimum n for which work is split across goroutines.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
		Threshold:  DefaultThreshold,
	}
}

var current atomic.Pointer[Config]

func init() {
	cfg := DefaultConfig()
	current.Store(&cfg)
}

// Default returns the process-wide configuration used by tensor operations.
func Default() Config {
	return *current.Load()
}

// SetDefault replaces the process-wide configuration.
func SetDefault(cfg Config) {
	current.Store(&cfg)
}

// Parallel reports whether a loop of n iterations runs on more than one goroutine.
func (c Config) Parallel(n int) bool {
	return c.Enabled && c.NumWorkers > 1 && n >= c.Threshold
}

// chunks splits [0, n) into at most NumWorkers contiguous ranges.
func (c Config) chunks(n int) [][2]int {
	size := (n + c.NumWorkers - 1) / c.NumWorkers
	out := make([][2]int, 0, c.NumWorkers)
	for start := 0; start < n; start += size {
		out = append(out, [2]int{start, min(start+size, n)})
	}
	return out
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is below the threshold.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Parallel(n) {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	for _, r := range cfg.chunks(n) {
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(r[0], r[1])
	}
	wg.Wait()
}

// Reduce folds load(0..n-1) with combine, which must be associative.
//
// Sequentially the fold is strictly left to right. In parallel each chunk is
// folded left to right and the partial results are then combined in chunk
// order, so the result is deterministic for a fixed worker count. n must be
// at least 1.
func Reduce[T any](n int, load func(i int) T, combine func(a, b T) T, cfg Config) T {
	if !cfg.Parallel(n) {
		return foldRange(0, n, load, combine)
	}

	ranges := cfg.chunks(n)
	partials := make([]T, len(ranges))
	var wg sync.WaitGroup
	for k, r := range ranges {
		wg.Add(1)
		go func(k, s, e int) {
			defer wg.Done()
			partials[k] = foldRange(s, e, load, combine)
		}(k, r[0], r[1])
	}
	wg.Wait()

	acc := partials[0]
	for _, p := range partials[1:] {
		acc = combine(acc, p)
	}
	return acc
}

func foldRange[T any](s, e int, load func(i int) T, combine func(a, b T) T) T {
	acc := load(s)
	for i := s + 1; i < e; i++ {
		acc = combine(acc, load(i))
	}
	return acc
}
