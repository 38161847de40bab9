// Copyright 2024 Pavan Mehta. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpd

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// PMB implements the bond-based prototype micro-brittle model. The
// micro-modulus c = 18·K/(π·δ⁴) is derived from the bulk modulus and
// the horizon. The linearized variant ("lin-pmb") uses the small-strain
// stretch and the reference bond direction
type PMB struct {

	// parameters
	δ  float64 // horizon
	K  float64 // bulk modulus
	Gc float64 // energy release rate; 0 => breakage disabled
	ρ  float64 // density

	// derived
	c  float64 // micro-modulus
	s0 float64 // critical stretch

	// linearized variant
	lin bool
}

// add model to factory
func init() {
	allocators["pmb"] = func() Model { return new(PMB) }
	allocators["lin-pmb"] = func() Model { return &PMB{lin: true} }
}

// Init initialises model
func (o *PMB) Init(prms fun.Prms) (err error) {

	// parameters
	for _, p := range prms {
		switch p.N {
		case "delta":
			o.δ = p.V
		case "K":
			o.K = p.V
		case "Gc":
			o.Gc = p.V
		case "rho":
			o.ρ = p.V
		default:
			return chk.Err("pmb: parameter named %q is incorrect", p.N)
		}
	}

	// check
	if o.δ <= 0 {
		return chk.Err("pmb: horizon delta=%g must be positive", o.δ)
	}
	if o.K <= 0 {
		return chk.Err("pmb: bulk modulus K=%g must be positive", o.K)
	}
	if o.Gc < 0 {
		return chk.Err("pmb: energy release rate Gc=%g cannot be negative", o.Gc)
	}

	// derived
	o.c = 18.0 * o.K / (math.Pi * o.δ * o.δ * o.δ * o.δ)
	if o.Gc > 0 {
		o.s0 = math.Sqrt(5.0 * o.Gc / (9.0 * o.K * o.δ))
	}
	return
}

// GetPrms gets (an example) of parameters
func (o PMB) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "delta", V: 0.1},
		&fun.Prm{N: "K", V: 1.0},
		&fun.Prm{N: "Gc", V: 0},
		&fun.Prm{N: "rho", V: 1.0},
	}
}

// Horizon returns the horizon δ
func (o PMB) Horizon() float64 { return o.δ }

// GetRho returns density
func (o PMB) GetRho() float64 { return o.ρ }

// IsLinear tells whether the small-strain stretch is used
func (o PMB) IsLinear() bool { return o.lin }

// CritStretch returns the critical stretch s0; 0 => breakage disabled
func (o PMB) CritStretch() float64 { return o.s0 }

// Cmicro returns the micro-modulus c
func (o PMB) Cmicro() float64 { return o.c }

// ForceCoef returns the micro-force magnitude along the bond direction
func (o PMB) ForceCoef(s, ξ, vol float64) float64 {
	return o.c * s * vol
}

// EnergyCoef returns the micro-potential of this single bond
func (o PMB) EnergyCoef(s, ξ, vol float64) float64 {
	return 0.25 * o.c * s * s * ξ * vol
}
