// Copyright 2024 Pavan Mehta. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

// BondState tracks the intact/broken state of every bond in a flat
// arena sized to the neighbour list. Every enumerated bond starts
// Intact; Break is irreversible. Each bond slot is written only by its
// owner particle's task, so no synchronisation is needed during the
// parallel passes
type BondState struct {
	nl     *NeighList
	intact []bool
}

// NewBondState allocates the arena with all bonds intact
func NewBondState(nl *NeighList) (o *BondState) {
	o = new(BondState)
	o.nl = nl
	o.intact = make([]bool, nl.Nbonds())
	for b := range o.intact {
		o.intact[b] = true
	}
	return
}

// Intact tells whether flat bond b is still intact
func (o *BondState) Intact(b int) bool {
	return o.intact[b]
}

// Break marks flat bond b as broken; broken is terminal
func (o *BondState) Break(b int) {
	o.intact[b] = false
}

// Nintact returns the number of intact bonds of particle p
func (o *BondState) Nintact(p int) (n int) {
	for b := o.nl.Start[p]; b < o.nl.Start[p+1]; b++ {
		if o.intact[b] {
			n++
		}
	}
	return
}

// Damage returns the fraction of originally intact bonds of particle p
// that are now broken; particles without bonds have zero damage
func (o *BondState) Damage(p int) float64 {
	ntot := o.nl.Start[p+1] - o.nl.Start[p]
	if ntot == 0 {
		return 0
	}
	return 1.0 - float64(o.Nintact(p))/float64(ntot)
}

// DamageField fills res (len n) with the per-particle damage, in parallel
func (o *BondState) DamageField(res []float64) {
	ParallelFor(len(o.nl.Nbrs), func(lo, hi int) {
		for p := lo; p < hi; p++ {
			res[p] = o.Damage(p)
		}
	})
}
