// Copyright 2024 Pavan Mehta. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	"runtime"
	"sync"
)

// Nworkers is the number of goroutines used by the particle loops.
// Changing it is only safe in between evaluation calls
var Nworkers = runtime.NumCPU()

// minChunk is the smallest range worth handing to a goroutine
const minChunk = 64

// ParallelFor runs fn over contiguous chunks of [0, n) and blocks until
// all chunks are done. Each index is visited exactly once; fn must only
// write data owned by its own indices
func ParallelFor(n int, fn func(lo, hi int)) {
	nw := Nworkers
	if nw > n/minChunk {
		nw = n / minChunk
	}
	if nw < 2 {
		fn(0, n)
		return
	}
	csz := (n + nw - 1) / nw
	var wg sync.WaitGroup
	wg.Add(nw)
	for w := 0; w < nw; w++ {
		lo := w * csz
		hi := lo + csz
		if hi > n {
			hi = n
		}
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}

// ParallelSum reduces fn over [0, n): each chunk accumulates a partial
// sum and the partials are folded serially afterwards, so no shared
// accumulator is ever written concurrently
func ParallelSum(n int, fn func(i int) float64) (sum float64) {
	nw := Nworkers
	if nw > n/minChunk {
		nw = n / minChunk
	}
	if nw < 2 {
		for i := 0; i < n; i++ {
			sum += fn(i)
		}
		return
	}
	csz := (n + nw - 1) / nw
	partial := make([]float64, nw)
	var wg sync.WaitGroup
	wg.Add(nw)
	for w := 0; w < nw; w++ {
		lo := w * csz
		hi := lo + csz
		if hi > n {
			hi = n
		}
		go func(w, lo, hi int) {
			defer wg.Done()
			s := 0.0
			for i := lo; i < hi; i++ {
				s += fn(i)
			}
			partial[w] = s
		}(w, lo, hi)
	}
	wg.Wait()
	for _, s := range partial {
		sum += s
	}
	return
}
