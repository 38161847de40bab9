// Copyright 2024 Pavan Mehta. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpd

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// NormalRepulsion implements a short-range contact penalty force. The
// force activates only when the current bond length drops below the
// contact radius Rc (smaller than the horizon); the stiffness derives
// from the PMB micro-modulus with a 15 factor. There is no energy
// accumulation and no fracture bookkeeping
type NormalRepulsion struct {

	// parameters
	δ  float64 // horizon
	Rc float64 // contact radius
	K  float64 // bulk-modulus-like stiffness parameter
	ρ  float64 // density

	// derived
	c float64 // micro-modulus
}

// add model to factory
func init() {
	allocators["contact"] = func() Model { return new(NormalRepulsion) }
}

// Init initialises model
func (o *NormalRepulsion) Init(prms fun.Prms) (err error) {

	// parameters
	for _, p := range prms {
		switch p.N {
		case "delta":
			o.δ = p.V
		case "Rc":
			o.Rc = p.V
		case "K":
			o.K = p.V
		case "rho":
			o.ρ = p.V
		default:
			return chk.Err("contact: parameter named %q is incorrect", p.N)
		}
	}

	// check
	if o.δ <= 0 {
		return chk.Err("contact: horizon delta=%g must be positive", o.δ)
	}
	if o.K <= 0 {
		return chk.Err("contact: stiffness K=%g must be positive", o.K)
	}
	if o.Rc <= 0 || o.Rc >= o.δ {
		return chk.Err("contact: contact radius Rc=%g must be positive and smaller than the horizon delta=%g", o.Rc, o.δ)
	}

	// derived
	o.c = 18.0 * o.K / (math.Pi * o.δ * o.δ * o.δ * o.δ)
	return
}

// GetPrms gets (an example) of parameters
func (o NormalRepulsion) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "delta", V: 0.1},
		&fun.Prm{N: "Rc", V: 0.05},
		&fun.Prm{N: "K", V: 1.0},
		&fun.Prm{N: "rho", V: 1.0},
	}
}

// Horizon returns the horizon δ
func (o NormalRepulsion) Horizon() float64 { return o.δ }

// GetRho returns density
func (o NormalRepulsion) GetRho() float64 { return o.ρ }

// ContactRadius returns the contact radius Rc
func (o NormalRepulsion) ContactRadius() float64 { return o.Rc }

// ForceCoef returns the coefficient along the outward bond direction
// for current length r; negative for r < Rc (repulsion) and zero at or
// beyond Rc
func (o NormalRepulsion) ForceCoef(r, vol float64) float64 {
	if r >= o.Rc {
		return 0
	}
	sc := (r - o.Rc) / o.δ
	return 15.0 * o.c * sc * vol
}
