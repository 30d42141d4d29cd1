// Package parallel fans independent rows of work out to a fixed number of
// goroutines.
package parallel

import (
	"context"
	"runtime"
	"sync"
)

// Workers normalises a worker count: n <= 0 means GOMAXPROCS.
func Workers(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}

// Rows calls fn(y) exactly once for every y in [0, height) using a pool of
// workers goroutines and returns when all calls have finished.
//
// Rows stop being handed out once ctx is done; rows already started run to
// completion. ctx.Err() is returned only if some rows were never handed out.
func Rows(ctx context.Context, height, workers int, fn func(y int)) error {
	if height <= 0 {
		return nil
	}

	workers = Workers(workers)
	if workers > height {
		workers = height
	}

	yChannel := make(chan int)

	// Written before yChannel is closed and read after every worker has seen
	// the close.
	skipped := false

	go func() {
		defer close(yChannel)
		for y := 0; y < height; y++ {
			if ctx.Err() != nil {
				skipped = true
				return
			}
			select {
			case yChannel <- y:
			case <-ctx.Done():
				skipped = true
				return
			}
		}
	}()

	wg := sync.WaitGroup{}
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for y := range yChannel {
				fn(y)
			}
		}()
	}
	wg.Wait()

	if skipped {
		return ctx.Err()
	}
	return nil
}
