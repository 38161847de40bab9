// Copyright 2024 Pavan Mehta. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	"github.com/mehta-pavan/CabanaPD/inp"
	"github.com/mehta-pavan/CabanaPD/mpd"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// Solver runs explicit velocity-Verlet dynamics over a lattice built
// from the input data. The neighbour list is built once from the
// reference configuration; bond breakage is the only topology change
type Solver struct {

	// essential
	Sim *inp.Simulation // simulation data
	Mdl mpd.Model       // material model
	Prt *Particles      // particle fields
	Nl  *NeighList      // neighbour list
	Frc *Force          // force kernel

	// boundary conditions
	zones []*bcZone

	// time control
	Time float64 // current simulation time
}

// bcZone holds one resolved boundary condition
type bcZone struct {
	pts   []int      // particles inside the box
	keys  []string   // dof keys
	fcns  []fun.Func // one function per key
	force bool       // body-force zone ("fx","fy","fz")
}

// NewSolver builds the lattice, the neighbour list and the force kernel
// from the input data
func NewSolver(sim *inp.Simulation) (o *Solver, err error) {

	// essential
	o = new(Solver)
	o.Sim = sim

	// material model
	mat := sim.MatParams.Get(sim.Domain.Mat)
	if mat == nil {
		return nil, chk.Err("solver: cannot find material %q in database", sim.Domain.Mat)
	}
	mdl, _ := mpd.GetModel(sim.Key, mat.Name, mat.Model, false)
	if mdl == nil {
		return nil, chk.Err("solver: cannot allocate model %q", mat.Model)
	}
	err = mdl.Init(mat.Prms)
	if err != nil {
		return nil, chk.Err("solver: cannot initialise model %q:\n%v", mat.Model, err)
	}
	o.Mdl = mdl
	if mdl.GetRho() <= 0 {
		return nil, chk.Err("solver: density rho=%g must be positive", mdl.GetRho())
	}

	// lattice and neighbour list
	o.Prt, err = NewLattice(sim.Domain.Xmin, sim.Domain.Xmax, sim.Domain.Ncells)
	if err != nil {
		return
	}
	rc := mdl.Horizon() * (1.0 + 1e-10)
	o.Nl, err = BuildNeighList(o.Prt.X, rc)
	if err != nil {
		return
	}

	// force kernel
	o.Frc = new(Force)
	err = o.Frc.Init(mdl, o.Prt, o.Nl)
	if err != nil {
		return
	}

	// resolve boundary conditions
	for _, bc := range sim.Bcs {
		if len(bc.Box) != 6 {
			return nil, chk.Err("solver: bc %q box must have 6 components", bc.Desc)
		}
		if len(bc.Keys) != len(bc.Fcns) {
			return nil, chk.Err("solver: bc %q needs one function per key", bc.Desc)
		}
		zone := new(bcZone)
		zone.keys = bc.Keys
		for _, key := range bc.Keys {
			switch key {
			case "ux", "uy", "uz":
			case "fx", "fy", "fz":
				zone.force = true
			default:
				return nil, chk.Err("solver: bc key %q is invalid", key)
			}
		}
		for _, fname := range bc.Fcns {
			fcn, err := sim.Functions.Get(fname)
			if err != nil {
				return nil, err
			}
			zone.fcns = append(zone.fcns, fcn)
		}
		for p := 0; p < o.Prt.N; p++ {
			if inBox(o.Prt.X[p], bc.Box) {
				zone.pts = append(zone.pts, p)
			}
		}
		o.zones = append(o.zones, zone)
	}
	return
}

// Run performs the time loop and saves states every DtOut
func (o *Solver) Run(verbose bool) (err error) {

	ρ := o.Mdl.GetRho()
	dt := o.Sim.Solver.Dt
	tf := o.Sim.Solver.Tf
	dtout := o.Sim.Solver.DtOut

	// initial state
	o.Time = 0
	o.applyDispBcs(0)
	o.Frc.Compute(o.Prt, o.Nl)
	o.addForceBcs(0)
	tidx := 0
	err = o.SaveState(tidx, verbose)
	if err != nil {
		return
	}
	tidx++
	tout := dtout

	// time loop
	for o.Time < tf {
		o.Time += dt

		// half kick and drift
		o.Prt.ForEach(func(p int) {
			for d := 0; d < 3; d++ {
				o.Prt.V[p][d] += 0.5 * dt * o.Prt.F[p][d] / ρ
				o.Prt.U[p][d] += dt * o.Prt.V[p][d]
			}
		})

		// prescribed displacements, force evaluation, body forces
		o.applyDispBcs(o.Time)
		o.Frc.Compute(o.Prt, o.Nl)
		o.addForceBcs(o.Time)

		// half kick
		o.Prt.ForEach(func(p int) {
			for d := 0; d < 3; d++ {
				o.Prt.V[p][d] += 0.5 * dt * o.Prt.F[p][d] / ρ
			}
		})

		// output
		if o.Time+1e-12 >= tout {
			err = o.SaveState(tidx, verbose)
			if err != nil {
				return
			}
			tidx++
			tout += dtout
		}
	}
	if verbose {
		io.Pf("final time = %g (%d output files)\n", o.Time, tidx)
	}
	return
}

// applyDispBcs sets prescribed displacements (and zeroes velocities)
func (o *Solver) applyDispBcs(t float64) {
	for _, zone := range o.zones {
		for i, key := range zone.keys {
			var d int
			switch key {
			case "ux":
				d = 0
			case "uy":
				d = 1
			case "uz":
				d = 2
			default:
				continue
			}
			val := zone.fcns[i].F(t, nil)
			for _, p := range zone.pts {
				o.Prt.U[p][d] = val
				o.Prt.V[p][d] = 0
			}
		}
	}
}

// addForceBcs adds prescribed body force densities after the force pass
func (o *Solver) addForceBcs(t float64) {
	for _, zone := range o.zones {
		if !zone.force {
			continue
		}
		for i, key := range zone.keys {
			var d int
			switch key {
			case "fx":
				d = 0
			case "fy":
				d = 1
			case "fz":
				d = 2
			default:
				continue
			}
			val := zone.fcns[i].F(t, nil)
			for _, p := range zone.pts {
				o.Prt.F[p][d] += val
			}
		}
	}
}

// inBox tells whether x is inside box = {xmin0,xmin1,xmin2, xmax0,xmax1,xmax2}
func inBox(x, box []float64) bool {
	for d := 0; d < 3; d++ {
		if x[d] < box[d] || x[d] > box[3+d] {
			return false
		}
	}
	return true
}
