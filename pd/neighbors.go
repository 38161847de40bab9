// Copyright 2024 Pavan Mehta. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// NeighList holds a full (symmetric) fixed-radius neighbour enumeration:
// every particle lists all of its own neighbours, so each bond appears
// twice, once per owner. Start gives the flat bond numbering shared with
// the bond-state arena: bond (p, k) has flat index Start[p]+k
type NeighList struct {
	Rc    float64 // cutoff radius
	Nbrs  [][]int // neighbour ids per particle [n][...]
	Start []int   // flat bond offsets [n+1]
}

// BuildNeighList enumerates, for every particle, the neighbours within
// distance rc (inclusive) using a uniform cell grid with bin size ≥ rc.
// Self-pairs and coincident particles are skipped at the source, so a
// zero reference bond length never reaches the force evaluations
func BuildNeighList(X [][]float64, rc float64) (o *NeighList, err error) {

	// check
	if rc <= 0 {
		return nil, chk.Err("neighlist: cutoff rc=%g must be positive", rc)
	}
	n := len(X)
	o = new(NeighList)
	o.Rc = rc
	o.Nbrs = make([][]int, n)
	o.Start = make([]int, n+1)
	if n == 0 {
		return
	}

	// bounding box
	var xmin, xmax [3]float64
	for d := 0; d < 3; d++ {
		xmin[d], xmax[d] = X[0][d], X[0][d]
	}
	for p := 1; p < n; p++ {
		for d := 0; d < 3; d++ {
			xmin[d] = math.Min(xmin[d], X[p][d])
			xmax[d] = math.Max(xmax[d], X[p][d])
		}
	}

	// cell grid with bins at least rc wide
	var ndiv [3]int
	var csz [3]float64
	for d := 0; d < 3; d++ {
		l := xmax[d] - xmin[d]
		ndiv[d] = int(math.Floor(l / rc))
		if ndiv[d] < 1 {
			ndiv[d] = 1
		}
		csz[d] = l / float64(ndiv[d])
		if csz[d] == 0 {
			csz[d] = rc
		}
	}
	cell := func(p int) (i, j, k int) {
		i = clampDiv(X[p][0]-xmin[0], csz[0], ndiv[0])
		j = clampDiv(X[p][1]-xmin[1], csz[1], ndiv[1])
		k = clampDiv(X[p][2]-xmin[2], csz[2], ndiv[2])
		return
	}
	bins := make([][]int, ndiv[0]*ndiv[1]*ndiv[2])
	idx := func(i, j, k int) int { return (k*ndiv[1]+j)*ndiv[0] + i }
	for p := 0; p < n; p++ {
		i, j, k := cell(p)
		b := idx(i, j, k)
		bins[b] = append(bins[b], p)
	}

	// scan the 27-cell stencil of every particle
	rc2 := rc * rc
	ParallelFor(n, func(lo, hi int) {
		for p := lo; p < hi; p++ {
			ci, cj, ck := cell(p)
			var nbrs []int
			for k := ck - 1; k <= ck+1; k++ {
				if k < 0 || k >= ndiv[2] {
					continue
				}
				for j := cj - 1; j <= cj+1; j++ {
					if j < 0 || j >= ndiv[1] {
						continue
					}
					for i := ci - 1; i <= ci+1; i++ {
						if i < 0 || i >= ndiv[0] {
							continue
						}
						for _, q := range bins[idx(i, j, k)] {
							if q == p {
								continue
							}
							dx := X[q][0] - X[p][0]
							dy := X[q][1] - X[p][1]
							dz := X[q][2] - X[p][2]
							d2 := dx*dx + dy*dy + dz*dz
							if d2 > rc2 || d2 == 0 {
								continue
							}
							nbrs = append(nbrs, q)
						}
					}
				}
			}
			o.Nbrs[p] = nbrs
		}
	})

	// flat bond offsets
	for p := 0; p < n; p++ {
		o.Start[p+1] = o.Start[p] + len(o.Nbrs[p])
	}
	return
}

// Nbonds returns the total number of bond slots
func (o *NeighList) Nbonds() int {
	return o.Start[len(o.Start)-1]
}

// Bond returns the flat index of the k-th bond of particle p
func (o *NeighList) Bond(p, k int) int {
	return o.Start[p] + k
}

// clampDiv maps a coordinate offset to a bin index within [0, ndiv)
func clampDiv(x, csz float64, ndiv int) int {
	i := int(x / csz)
	if i < 0 {
		i = 0
	}
	if i > ndiv-1 {
		i = ndiv - 1
	}
	return i
}
