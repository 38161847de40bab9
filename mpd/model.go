// Copyright 2024 Pavan Mehta. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mpd implements peridynamic material models
//
//	bond-based  | force depends on the bond's own stretch only
//	            | pmb, lin-pmb
//	------------------------------------------------------------
//	state-based | force depends also on the owner's dilatation θ
//	            | and weighted volume m (two-pass evaluation)
//	            | lps, lin-lps
//	------------------------------------------------------------
//	contact     | short-range repulsion penalty; no energy, no
//	            | fracture bookkeeping
//	            | contact
package mpd

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// Model defines the interface for peridynamic material models
type Model interface {
	Init(prms fun.Prms) error // initialises model and precomputes derived constants
	GetPrms() fun.Prms        // gets (an example) of parameters
	Horizon() float64         // returns the horizon δ
	GetRho() float64          // returns density
}

// BondBased defines models whose bond force depends on the bond's own
// stretch only
//  s   -- bond stretch
//  ξ   -- reference bond length (must be positive)
//  vol -- neighbour volume (must be positive)
type BondBased interface {
	Model
	ForceCoef(s, ξ, vol float64) float64  // micro-force magnitude along the bond direction
	EnergyCoef(s, ξ, vol float64) float64 // micro-potential of this single bond
}

// StateBased defines models requiring the owner particle's weighted
// volume m and dilatation θ in addition to the bond's own stretch
type StateBased interface {
	Model

	// Influence returns the influence function ω(ξ)
	Influence(ξ float64) float64

	// ForceCoef returns the micro-force magnitude along the bond direction
	// combining the dilatational and deviatoric terms of both bond ends
	ForceCoef(s, ξ, vol, θown, θnbr, mown, mnbr float64) float64

	// EnergyCoef returns the micro-potential of this single bond; the
	// dilatational θ² term is spread over the owner's nbonds intact bonds
	EnergyCoef(s, ξ, vol, θ, m float64, nbonds int) float64
}

// Contact defines short-range repulsion models. ForceCoef returns the
// coefficient along the outward bond direction; it is negative for
// r < Rc (repulsion) and zero at or beyond Rc
type Contact interface {
	Model
	ContactRadius() float64
	ForceCoef(r, vol float64) float64
}

// Linearized indicates models evaluated with the small-strain stretch
// and the reference bond direction
type Linearized interface {
	IsLinear() bool
}

// Fragile defines fracture-capable models. CritStretch returns the
// critical stretch s0; zero means breakage is disabled. Bonds break at
// s ≥ s0 and breakage is irreversible
type Fragile interface {
	CritStretch() float64
}

// New returns a new model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'mpd' database", name)
	}
	return allocator(), nil
}

// GetModel returns (existent or new) model
//  Note: if getnew is false, model is searched in the database of models
//        and returned if found; otherwise a new allocation is made
func GetModel(simfnk, matname, mdlname string, getnew bool) (model Model, existent bool) {

	// get new model, regardless of whether it exists in database or not
	if getnew {
		allocator, ok := allocators[mdlname]
		if !ok {
			return nil, false
		}
		return allocator(), false
	}

	// search database
	key := io.Sf("%s_%s", simfnk, matname)
	if model, ok := _models[key]; ok {
		return model, true
	}

	// if not found, get new
	allocator, ok := allocators[mdlname]
	if !ok {
		return nil, false
	}
	model = allocator()
	_models[key] = model
	return model, false
}

// allocators holds all available models; modelname => allocator
var allocators = map[string]func() Model{}

// _models holds pre-allocated models (internal); key => model
var _models = map[string]Model{}
