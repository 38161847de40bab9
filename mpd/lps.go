// Copyright 2024 Pavan Mehta. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpd

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// LPS implements the state-based linear peridynamic solid model with
// influence function ω(ξ) = 1/ξ. The force combines a dilatational term
// shared by all bonds of a particle with a per-bond deviatoric term;
// both require the weighted volume m and the dilatation θ of the two
// bond ends, computed in preliminary passes. The linearized variant
// ("lin-lps") uses the small-strain stretch and the reference bond
// direction
type LPS struct {

	// parameters
	δ  float64 // horizon
	K  float64 // bulk modulus
	G  float64 // shear modulus
	Gc float64 // energy release rate; 0 => breakage disabled
	ρ  float64 // density

	// derived
	θc float64 // dilatational coefficient 3K - 5G
	sc float64 // deviatoric coefficient 15G
	s0 float64 // critical stretch

	// linearized variant
	lin bool
}

// add model to factory
func init() {
	allocators["lps"] = func() Model { return new(LPS) }
	allocators["lin-lps"] = func() Model { return &LPS{lin: true} }
}

// Init initialises model
func (o *LPS) Init(prms fun.Prms) (err error) {

	// parameters
	for _, p := range prms {
		switch p.N {
		case "delta":
			o.δ = p.V
		case "K":
			o.K = p.V
		case "G":
			o.G = p.V
		case "Gc":
			o.Gc = p.V
		case "rho":
			o.ρ = p.V
		default:
			return chk.Err("lps: parameter named %q is incorrect", p.N)
		}
	}

	// check
	if o.δ <= 0 {
		return chk.Err("lps: horizon delta=%g must be positive", o.δ)
	}
	if o.K <= 0 {
		return chk.Err("lps: bulk modulus K=%g must be positive", o.K)
	}
	if o.G <= 0 {
		return chk.Err("lps: shear modulus G=%g must be positive", o.G)
	}
	if o.Gc < 0 {
		return chk.Err("lps: energy release rate Gc=%g cannot be negative", o.Gc)
	}

	// derived
	o.θc = 3.0*o.K - 5.0*o.G
	o.sc = 15.0 * o.G
	if o.Gc > 0 {
		o.s0 = math.Sqrt(5.0 * o.Gc / ((3.0*o.K + 4.0*o.G) * o.δ))
	}
	return
}

// GetPrms gets (an example) of parameters
func (o LPS) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "delta", V: 0.1},
		&fun.Prm{N: "K", V: 1.0},
		&fun.Prm{N: "G", V: 0.5},
		&fun.Prm{N: "Gc", V: 0},
		&fun.Prm{N: "rho", V: 1.0},
	}
}

// Horizon returns the horizon δ
func (o LPS) Horizon() float64 { return o.δ }

// GetRho returns density
func (o LPS) GetRho() float64 { return o.ρ }

// IsLinear tells whether the small-strain stretch is used
func (o LPS) IsLinear() bool { return o.lin }

// CritStretch returns the critical stretch s0; 0 => breakage disabled
func (o LPS) CritStretch() float64 { return o.s0 }

// Influence returns the influence function ω(ξ)
func (o LPS) Influence(ξ float64) float64 {
	return 1.0 / ξ
}

// ForceCoef returns the micro-force magnitude along the bond direction
func (o LPS) ForceCoef(s, ξ, vol, θown, θnbr, mown, mnbr float64) float64 {
	coef := o.θc*(θown/mown+θnbr/mnbr) + o.sc*s*(1.0/mown+1.0/mnbr)
	return coef * o.Influence(ξ) * ξ * vol
}

// EnergyCoef returns the micro-potential of this single bond; the θ²
// term is spread over the owner's nbonds intact bonds so that it is
// counted exactly once per particle
func (o LPS) EnergyCoef(s, ξ, vol, θ, m float64, nbonds int) float64 {
	return o.θc*θ*θ/(6.0*float64(nbonds)) + 0.5*(o.sc/m)*o.Influence(ξ)*s*s*ξ*ξ*vol
}
