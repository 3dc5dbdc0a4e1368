// Package parallel implements an optional chunked data-parallel mode:
// callers partition work into chunks, run one goroutine per chunk via
// golang.org/x/sync/errgroup, and fold the partial results back together
// in a fixed, chunk-index order so accumulation stays deterministic
// regardless of goroutine completion order.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Chunks splits n items into roughly runtime.GOMAXPROCS(0) contiguous
// index ranges [lo,hi), each at least minSize long where possible. It
// never returns an empty range.
func Chunks(n, minSize int) [][2]int {
	if n <= 0 {
		return nil
	}
	if minSize < 1 {
		minSize = 1
	}
	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}
	chunkLen := n / workers
	if chunkLen < minSize {
		chunkLen = minSize
	}
	var chunks [][2]int
	for lo := 0; lo < n; lo += chunkLen {
		hi := lo + chunkLen
		if hi > n {
			hi = n
		}
		chunks = append(chunks, [2]int{lo, hi})
	}
	return chunks
}

// Map runs fn once per chunk concurrently and returns the results indexed
// by chunk order, which callers must fold deterministically (e.g. sum in
// index order) rather than in completion order.
func Map[T any](chunks [][2]int, fn func(lo, hi int) (T, error)) ([]T, error) {
	results := make([]T, len(chunks))
	g, _ := errgroup.WithContext(context.Background())
	for i, c := range chunks {
		i, c := i, c
		g.Go(func() error {
			r, err := fn(c[0], c[1])
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
