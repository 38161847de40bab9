// Copyright 2024 Pavan Mehta. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	"math"

	"github.com/mehta-pavan/CabanaPD/mpd"

	"github.com/cpmech/gosl/chk"
)

// Force computes peridynamic force density, strain-energy density and,
// for state-based models, dilatation and weighted volume, for every
// particle. The kind of model (bond-based, state-based or contact) is
// resolved once at Init; the bond loops then run without per-bond
// dispatch on the variant axes.
//
// Pass sequence of Compute (state-based models):
//  1. weighted volume m(p) over intact bonds         (barrier)
//  2. dilatation θ(p) over intact bonds, needs m     (barrier)
//  3. force/energy over intact bonds, needs m and θ; fracture
//     evaluation interleaved: a bond whose stretch reaches the critical
//     stretch this cycle breaks first and contributes nothing
// Bond-based and contact models run pass 3 only. All output fields are
// overwritten (not accumulated) on every call
type Force struct {

	// model (exactly one of bb, sb, ct is non-nil after Init)
	model mpd.Model
	bb    mpd.BondBased
	sb    mpd.StateBased
	ct    mpd.Contact
	lin   bool    // small-strain stretch and reference bond direction
	s0    float64 // critical stretch; 0 => breakage disabled

	// bond state (fracture-capable models only)
	Bonds *BondState
}

// Init initialises the kernel for the given model and allocates the
// bond-state arena sized to the neighbour list
func (o *Force) Init(model mpd.Model, prt *Particles, nl *NeighList) (err error) {

	// check collaborators
	if model == nil || prt == nil || nl == nil {
		return chk.Err("force: model, particles and neighbour list must be non-nil")
	}
	err = prt.Check()
	if err != nil {
		return
	}

	// resolve the kind of model
	o.model = model
	o.bb, o.sb, o.ct = nil, nil, nil
	switch m := model.(type) {
	case mpd.BondBased:
		o.bb = m
	case mpd.StateBased:
		o.sb = m
	case mpd.Contact:
		o.ct = m
	default:
		return chk.Err("force: model %T is not a peridynamic model", model)
	}

	// cutoff must cover the model's interaction range
	rng := model.Horizon()
	if o.ct != nil {
		rng = o.ct.ContactRadius()
	}
	if nl.Rc < rng {
		return chk.Err("force: neighbour list cutoff rc=%g is smaller than the model's interaction range %g", nl.Rc, rng)
	}

	// variant flags
	o.lin = false
	if l, ok := model.(mpd.Linearized); ok {
		o.lin = l.IsLinear()
	}
	o.s0 = 0
	o.Bonds = nil
	if f, ok := model.(mpd.Fragile); ok {
		o.s0 = f.CritStretch()
	}
	if o.s0 > 0 {
		o.Bonds = NewBondState(nl)
	}
	return
}

// Compute runs the pass sequence and overwrites F, W, Tht and M
func (o *Force) Compute(prt *Particles, nl *NeighList) {

	// zero outputs
	prt.ForEach(func(p int) {
		prt.F[p][0], prt.F[p][1], prt.F[p][2] = 0, 0, 0
		prt.W[p] = 0
		prt.Tht[p] = 0
		prt.M[p] = 0
	})

	// passes
	switch {
	case o.sb != nil:
		o.weightedVolume(prt, nl)
		o.dilatation(prt, nl)
		o.forceState(prt, nl)
	case o.bb != nil:
		o.forceBond(prt, nl)
	default:
		o.forceContact(prt, nl)
	}
}

// Energy returns the global potential Φ = Σ W·vol via a race-free
// parallel reduction, kept separate from the per-particle write passes
func (o *Force) Energy(prt *Particles) float64 {
	return ParallelSum(prt.N, func(p int) float64 {
		return prt.W[p] * prt.Vol[p]
	})
}

// bondGeom returns the reference and current geometry of bond p→q
func bondGeom(prt *Particles, p, q int) (ξv [3]float64, ξ float64, rv [3]float64, r float64) {
	for d := 0; d < 3; d++ {
		ξv[d] = prt.X[q][d] - prt.X[p][d]
		rv[d] = ξv[d] + prt.U[q][d] - prt.U[p][d]
	}
	ξ = math.Sqrt(ξv[0]*ξv[0] + ξv[1]*ξv[1] + ξv[2]*ξv[2])
	r = math.Sqrt(rv[0]*rv[0] + rv[1]*rv[1] + rv[2]*rv[2])
	return
}

// stretch returns the bond stretch and the unit direction of the force:
// the current direction for the nonlinear measure or the reference
// direction for the small-strain one
func (o *Force) stretch(ξv [3]float64, ξ float64, rv [3]float64, r float64) (s float64, e [3]float64) {
	if o.lin {
		η0 := rv[0] - ξv[0]
		η1 := rv[1] - ξv[1]
		η2 := rv[2] - ξv[2]
		s = (ξv[0]*η0 + ξv[1]*η1 + ξv[2]*η2) / (ξ * ξ)
		e[0], e[1], e[2] = ξv[0]/ξ, ξv[1]/ξ, ξv[2]/ξ
		return
	}
	s = (r - ξ) / ξ
	e[0], e[1], e[2] = rv[0]/r, rv[1]/r, rv[2]/r
	return
}

// breakSweep marks the bonds of particle p whose stretch reaches the
// critical stretch this cycle; they contribute nothing from now on
func (o *Force) breakSweep(prt *Particles, nl *NeighList, p int) {
	for k, q := range nl.Nbrs[p] {
		b := nl.Bond(p, k)
		if !o.Bonds.Intact(b) {
			continue
		}
		ξv, ξ, rv, r := bondGeom(prt, p, q)
		s, _ := o.stretch(ξv, ξ, rv, r)
		if s >= o.s0 {
			o.Bonds.Break(b)
		}
	}
}

// broken tells whether flat bond b is broken (always false without a tracker)
func (o *Force) broken(b int) bool {
	if o.Bonds == nil {
		return false
	}
	return !o.Bonds.Intact(b)
}

// weightedVolume runs pass 1: m(p) = Σ ω(ξ)·ξ²·vol over intact bonds
func (o *Force) weightedVolume(prt *Particles, nl *NeighList) {
	ParallelFor(prt.N, func(lo, hi int) {
		for p := lo; p < hi; p++ {
			m := 0.0
			for k, q := range nl.Nbrs[p] {
				if o.broken(nl.Bond(p, k)) {
					continue
				}
				_, ξ, _, _ := bondGeom(prt, p, q)
				m += o.sb.Influence(ξ) * ξ * ξ * prt.Vol[q]
			}
			prt.M[p] = m
		}
	})
}

// dilatation runs pass 2: θ(p) = (3/m)·Σ ω(ξ)·s·ξ²·vol over intact bonds
func (o *Force) dilatation(prt *Particles, nl *NeighList) {
	ParallelFor(prt.N, func(lo, hi int) {
		for p := lo; p < hi; p++ {
			m := prt.M[p]
			if m == 0 {
				continue
			}
			θ := 0.0
			for k, q := range nl.Nbrs[p] {
				if o.broken(nl.Bond(p, k)) {
					continue
				}
				ξv, ξ, rv, r := bondGeom(prt, p, q)
				s, _ := o.stretch(ξv, ξ, rv, r)
				θ += 3.0 * o.sb.Influence(ξ) * s * ξ * ξ * prt.Vol[q] / m
			}
			prt.Tht[p] = θ
		}
	})
}

// forceBond runs pass 3 for bond-based models
func (o *Force) forceBond(prt *Particles, nl *NeighList) {
	ParallelFor(prt.N, func(lo, hi int) {
		for p := lo; p < hi; p++ {
			if o.s0 > 0 {
				o.breakSweep(prt, nl, p)
			}
			for k, q := range nl.Nbrs[p] {
				if o.broken(nl.Bond(p, k)) {
					continue
				}
				ξv, ξ, rv, r := bondGeom(prt, p, q)
				s, e := o.stretch(ξv, ξ, rv, r)
				coef := o.bb.ForceCoef(s, ξ, prt.Vol[q])
				prt.F[p][0] += coef * e[0]
				prt.F[p][1] += coef * e[1]
				prt.F[p][2] += coef * e[2]
				prt.W[p] += o.bb.EnergyCoef(s, ξ, prt.Vol[q])
			}
		}
	})
}

// forceState runs pass 3 for state-based models
func (o *Force) forceState(prt *Particles, nl *NeighList) {
	ParallelFor(prt.N, func(lo, hi int) {
		for p := lo; p < hi; p++ {
			if o.s0 > 0 {
				o.breakSweep(prt, nl, p)
			}
			nb := len(nl.Nbrs[p])
			if o.Bonds != nil {
				nb = o.Bonds.Nintact(p)
			}
			if nb == 0 {
				continue
			}
			θp, mp := prt.Tht[p], prt.M[p]
			for k, q := range nl.Nbrs[p] {
				if o.broken(nl.Bond(p, k)) {
					continue
				}
				ξv, ξ, rv, r := bondGeom(prt, p, q)
				s, e := o.stretch(ξv, ξ, rv, r)
				coef := o.sb.ForceCoef(s, ξ, prt.Vol[q], θp, prt.Tht[q], mp, prt.M[q])
				prt.F[p][0] += coef * e[0]
				prt.F[p][1] += coef * e[1]
				prt.F[p][2] += coef * e[2]
				prt.W[p] += o.sb.EnergyCoef(s, ξ, prt.Vol[q], θp, mp, nb)
			}
		}
	})
}

// forceContact runs the repulsion pass; no energy, no fracture
func (o *Force) forceContact(prt *Particles, nl *NeighList) {
	Rc := o.ct.ContactRadius()
	ParallelFor(prt.N, func(lo, hi int) {
		for p := lo; p < hi; p++ {
			for _, q := range nl.Nbrs[p] {
				_, _, rv, r := bondGeom(prt, p, q)
				if r >= Rc || r == 0 {
					continue
				}
				coef := o.ct.ForceCoef(r, prt.Vol[q])
				prt.F[p][0] += coef * rv[0] / r
				prt.F[p][1] += coef * rv[1] / r
				prt.F[p][2] += coef * rv[2] / r
			}
		}
	})
}
