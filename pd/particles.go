// Copyright 2024 Pavan Mehta. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pd implements the peridynamic engine: particle fields,
// fixed-radius neighbour lists, bond state, the force kernel and the
// explicit solver
package pd

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Particles holds the per-particle fields of a peridynamic body.
// X and Vol are fixed after setup; U and V evolve in time; F, W, Tht
// and M are outputs fully overwritten by each force evaluation.
//
// The strain-energy field W is a density: the global potential energy
// is Φ = Σ W(p)·Vol(p)
type Particles struct {
	N   int         // number of particles
	X   [][]float64 // reference positions [n][3]
	U   [][]float64 // displacements [n][3]
	V   [][]float64 // velocities [n][3]
	F   [][]float64 // force density (output) [n][3]
	Vol []float64   // reference volumes
	W   []float64   // strain-energy density (output)
	Tht []float64   // dilatation θ (output; state-based models)
	M   []float64   // weighted volume m (output; state-based models)
}

// NewParticles allocates all fields for n particles; positions and
// volumes are left for the caller to fill
func NewParticles(n int) (o *Particles) {
	o = new(Particles)
	o.N = n
	o.X = la.MatAlloc(n, 3)
	o.U = la.MatAlloc(n, 3)
	o.V = la.MatAlloc(n, 3)
	o.F = la.MatAlloc(n, 3)
	o.Vol = make([]float64, n)
	o.W = make([]float64, n)
	o.Tht = make([]float64, n)
	o.M = make([]float64, n)
	return
}

// NewLattice creates particles at the cell centres of a regular lattice
// filling the box [xmin, xmax] with nc cells per direction. Every
// particle gets the cell volume dx0·dx1·dx2
func NewLattice(xmin, xmax []float64, nc []int) (o *Particles, err error) {
	chk.IntAssert(len(xmin), 3)
	chk.IntAssert(len(xmax), 3)
	chk.IntAssert(len(nc), 3)
	var dx [3]float64
	for d := 0; d < 3; d++ {
		if nc[d] < 1 {
			return nil, chk.Err("lattice: nc[%d]=%d must be at least 1", d, nc[d])
		}
		dx[d] = (xmax[d] - xmin[d]) / float64(nc[d])
		if dx[d] <= 0 {
			return nil, chk.Err("lattice: box is empty along direction %d: [%g, %g]", d, xmin[d], xmax[d])
		}
	}
	n := nc[0] * nc[1] * nc[2]
	o = NewParticles(n)
	vol := dx[0] * dx[1] * dx[2]
	p := 0
	for k := 0; k < nc[2]; k++ {
		for j := 0; j < nc[1]; j++ {
			for i := 0; i < nc[0]; i++ {
				o.X[p][0] = xmin[0] + (float64(i)+0.5)*dx[0]
				o.X[p][1] = xmin[1] + (float64(j)+0.5)*dx[1]
				o.X[p][2] = xmin[2] + (float64(k)+0.5)*dx[2]
				o.Vol[p] = vol
				p++
			}
		}
	}
	return
}

// Check verifies the setup invariants
func (o *Particles) Check() (err error) {
	for p := 0; p < o.N; p++ {
		if !(o.Vol[p] > 0) {
			return chk.Err("particle # %d has non-positive volume: %g", p, o.Vol[p])
		}
	}
	return
}

// ForEach runs fn for every particle index, in parallel. fn must only
// write fields of its own particle
func (o *Particles) ForEach(fn func(p int)) {
	ParallelFor(o.N, func(lo, hi int) {
		for p := lo; p < hi; p++ {
			fn(p)
		}
	})
}

// SetUniformStretch applies the displacement field u = s0·x
func (o *Particles) SetUniformStretch(s0 float64) {
	o.ForEach(func(p int) {
		for d := 0; d < 3; d++ {
			o.U[p][d] = s0 * o.X[p][d]
			o.V[p][d] = 0
		}
	})
}
