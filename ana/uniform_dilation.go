// Copyright 2024 Pavan Mehta. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical and reference solutions
package ana

import (
	"math"

	"github.com/cpmech/gosl/fun"
)

// UniformDilation implements reference solutions for an interior
// particle of a uniform cubic lattice under the displacement field
// u = s0·x. The lattice spacing is dx = δ/m and every point carries the
// volume dx³; sums run over the full neighbourhood ξ ≤ δ (with a small
// tolerance so lattice points landing exactly on the horizon count).
//
// All reference values assume zero damage and a full neighbourhood,
// i.e. a particle at least one horizon away from the body surface
type UniformDilation struct {

	// input
	δ float64 // horizon
	K float64 // bulk modulus
	G float64 // shear modulus (state-based only)
	m int     // refinement: lattice spacing dx = δ/m
}

// Init initialises this structure
func (o *UniformDilation) Init(prms fun.Prms) {

	// default values
	o.δ = 2.0 / 15.0
	o.K = 1.0
	o.G = 0.5
	o.m = 1

	// parameters
	for _, p := range prms {
		switch p.N {
		case "delta":
			o.δ = p.V
		case "K":
			o.K = p.V
		case "G":
			o.G = p.V
		case "m":
			o.m = int(p.V)
		}
	}
}

// foreachNeighbour runs fn over the full lattice neighbourhood of the
// origin, handing over the reference bond length ξ and the point volume
func (o UniformDilation) foreachNeighbour(fn func(ξ, vol float64)) {
	dx := o.δ / float64(o.m)
	vol := dx * dx * dx
	for i := -o.m; i < o.m+1; i++ {
		for j := -o.m; j < o.m+1; j++ {
			for k := -o.m; k < o.m+1; k++ {
				x := dx * float64(i)
				y := dx * float64(j)
				z := dx * float64(k)
				ξ := math.Sqrt(x*x + y*y + z*z)
				if ξ > 0 && ξ < o.δ+1e-14 {
					fn(ξ, vol)
				}
			}
		}
	}
}

// PMBEnergy returns the strain-energy density of the bond-based model
// with micro-modulus c = 18K/(πδ⁴): W = Σ 0.25·c·s0²·ξ·vol
func (o UniformDilation) PMBEnergy(s0 float64) (W float64) {
	c := 18.0 * o.K / (math.Pi * math.Pow(o.δ, 4))
	o.foreachNeighbour(func(ξ, vol float64) {
		W += 0.25 * c * s0 * s0 * ξ * vol
	})
	return
}

// LPSWeightedVolume returns m = Σ ω(ξ)·ξ²·vol with ω(ξ) = 1/ξ
func (o UniformDilation) LPSWeightedVolume() (m float64) {
	o.foreachNeighbour(func(ξ, vol float64) {
		m += 1.0 / ξ * ξ * ξ * vol
	})
	return
}

// LPSDilatation returns the discrete dilatation; for a uniform stretch
// field it equals 3·s0 identically
func (o UniformDilation) LPSDilatation(s0 float64) (θ float64) {
	m := o.LPSWeightedVolume()
	o.foreachNeighbour(func(ξ, vol float64) {
		θ += 3.0 / m * 1.0 / ξ * s0 * ξ * ξ * vol
	})
	return
}

// LPSEnergy returns the strain-energy density of the state-based model:
// the dilatational term (θc/6)·θ² plus the deviatoric per-bond sum
func (o UniformDilation) LPSEnergy(s0 float64) (W float64) {
	θc := 3.0*o.K - 5.0*o.G
	sc := 15.0 * o.G
	m := o.LPSWeightedVolume()
	θ := o.LPSDilatation(s0)
	nb := 0.0
	o.foreachNeighbour(func(ξ, vol float64) {
		nb += 1.0
	})
	o.foreachNeighbour(func(ξ, vol float64) {
		W += θc*θ*θ/(6.0*nb) + 0.5*(sc/m)*1.0/ξ*s0*s0*ξ*ξ*vol
	})
	return
}

// ContinuumEnergy returns the closed-form continuum strain-energy
// density for pure dilation: W = (9/2)·K·s0²
func (o UniformDilation) ContinuumEnergy(s0 float64) float64 {
	return 4.5 * o.K * s0 * s0
}
