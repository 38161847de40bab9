// Copyright 2024 Pavan Mehta. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements post-processing of simulation results
package out

import (
	"github.com/mehta-pavan/CabanaPD/inp"
	"github.com/mehta-pavan/CabanaPD/pd"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/gm"
)

// constants
var (
	Ndiv = 20 // bins n-division
)

// global variables
var (
	Sim    *inp.Simulation // simulation data read from the .sim file
	X      [][]float64     // reference particle positions
	States []*pd.State     // all saved snapshots, in time order
	PtBins gm.Bins         // bins for particles
)

// Start loads the simulation data and all saved states, and initialises
// the particle search bins
func Start(simfilepath string) (err error) {

	// simulation data
	Sim, err = inp.ReadSim(simfilepath, false)
	if err != nil {
		return
	}

	// rebuild the lattice reference positions
	prt, err := pd.NewLattice(Sim.Domain.Xmin, Sim.Domain.Xmax, Sim.Domain.Ncells)
	if err != nil {
		return
	}
	X = prt.X

	// bins
	err = PtBins.Init(Sim.Domain.Xmin, Sim.Domain.Xmax, Ndiv)
	if err != nil {
		return chk.Err("cannot initialise bins for particles: %v", err)
	}
	for p := 0; p < prt.N; p++ {
		err = PtBins.Append(X[p], p)
		if err != nil {
			return
		}
	}

	// load all saved states
	States = nil
	for tidx := 0; ; tidx++ {
		sta, err := pd.ReadState(Sim.DirOut, Sim.Key, Sim.EncType, tidx)
		if err != nil {
			break
		}
		States = append(States, sta)
	}
	if len(States) == 0 {
		return chk.Err("no output files found in %q", Sim.DirOut)
	}
	return nil
}

// Probe returns the id of the particle closest to x
func Probe(x []float64) int {
	return PtBins.Find(x)
}

// TimeSeries extracts the evolution of one quantity at particle p
//  key -- "ux", "uy", "uz", "vx", "vy", "vz", "fx", "fy", "fz", "w", "dmg"
func TimeSeries(key string, p int) (T, V []float64, err error) {
	if p < 0 || p >= len(X) {
		return nil, nil, chk.Err("particle id %d is out of range", p)
	}
	T = make([]float64, len(States))
	V = make([]float64, len(States))
	for i, sta := range States {
		T[i] = sta.T
		switch key {
		case "ux", "uy", "uz":
			V[i] = sta.U[p][dofIndex(key)]
		case "vx", "vy", "vz":
			V[i] = sta.V[p][dofIndex(key)]
		case "fx", "fy", "fz":
			V[i] = sta.F[p][dofIndex(key)]
		case "w":
			V[i] = sta.W[p]
		case "dmg":
			V[i] = sta.Dmg[p]
		default:
			return nil, nil, chk.Err("key %q is invalid", key)
		}
	}
	return
}

// dofIndex maps the trailing axis letter to a component index
func dofIndex(key string) int {
	switch key[len(key)-1] {
	case 'x':
		return 0
	case 'y':
		return 1
	}
	return 2
}
