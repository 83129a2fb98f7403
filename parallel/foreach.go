// Package parallel runs independent training jobs on a bounded number of goroutines.
package parallel

import "runtime"
import "sync"

import "github.com/klauspost/cpuid/v2"

// Threads reports the number of logical cores, the default parallelism.
// Can't return 0.
func Threads() int {
	if n := cpuid.CPU.LogicalCores; n > 0 {
		return n
	}
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return 1
}

// ForEach calls body for every i in [0, length) with at most limit calls running at once.
// A limit <= 0 uses Threads(). ForEach returns when every call has returned.
func ForEach(length, limit int, body func(i int)) {
	if limit <= 0 {
		limit = Threads()
	}
	if length <= 0 {
		return
	}

	sem := make(chan struct{}, limit)
	var wg sync.WaitGroup
	wg.Add(length)

	for i := 0; i < length; i++ {
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			body(i)
		}(i)
	}

	wg.Wait()
}
