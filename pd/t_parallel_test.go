// Copyright 2024 Pavan Mehta. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_par01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("par01. every index is visited exactly once")

	old := Nworkers
	defer func() { Nworkers = old }()

	for _, nw := range []int{1, 2, 3, 8} {
		Nworkers = nw
		for _, n := range []int{0, 1, 10, 1000, 1001} {
			visits := make([]int, n)
			ParallelFor(n, func(lo, hi int) {
				for i := lo; i < hi; i++ {
					visits[i]++
				}
			})
			for i := 0; i < n; i++ {
				if visits[i] != 1 {
					tst.Errorf("nw=%d n=%d: index %d visited %d times\n", nw, n, i, visits[i])
					return
				}
			}
		}
	}
}

func Test_par02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("par02. parallel reduction equals the serial sum")

	old := Nworkers
	defer func() { Nworkers = old }()

	for _, nw := range []int{1, 2, 3, 8} {
		Nworkers = nw
		for _, n := range []int{0, 1, 10, 1000, 1001} {
			sum := ParallelSum(n, func(i int) float64 {
				return float64(i)
			})
			ref := float64(n*(n-1)) / 2.0
			if sum != ref {
				tst.Errorf("nw=%d n=%d: sum=%g, want %g\n", nw, n, sum, ref)
				return
			}
		}
	}
	io.Pforan("reductions OK\n")
}
