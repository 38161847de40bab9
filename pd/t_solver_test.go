// Copyright 2024 Pavan Mehta. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	"testing"

	"github.com/mehta-pavan/CabanaPD/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_solver01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solver01. bar clamped at one end, pulled at the other")

	sim, err := inp.ReadSim("data/dyn01.sim", true)
	if err != nil {
		tst.Errorf("cannot read simulation file:\n%v\n", err)
		return
	}
	sol, err := NewSolver(sim)
	if err != nil {
		tst.Errorf("cannot build solver:\n%v\n", err)
		return
	}
	chk.IntAssert(sol.Prt.N, 32)
	io.Pforan("nbonds = %v\n", sol.Nl.Nbonds())

	err = sol.Run(chk.Verbose)
	if err != nil {
		tst.Errorf("simulation failed:\n%v\n", err)
		return
	}

	// one snapshot per dtout, including the initial one
	var last *State
	for tidx, tref := range []float64{0, 0.001, 0.002} {
		sta, err := ReadState(sim.DirOut, sim.Key, sim.EncType, tidx)
		if err != nil {
			tst.Errorf("cannot read state # %d:\n%v\n", tidx, err)
			return
		}
		chk.Scalar(tst, io.Sf("T%d", tidx), 1e-12, sta.T, tref)
		chk.IntAssert(len(sta.U), 32)
		chk.IntAssert(len(sta.Dmg), 32)
		last = sta
	}
	_, err = ReadState(sim.DirOut, sim.Key, sim.EncType, 3)
	if err == nil {
		tst.Errorf("there must be exactly 3 snapshots\n")
		return
	}

	// the clamped end stays put and the loaded end moves against x
	for p := 0; p < sol.Prt.N; p++ {
		x := sol.Prt.X[p][0]
		switch {
		case x < 0.13:
			for d := 0; d < 3; d++ {
				if last.U[p][d] != 0 {
					tst.Errorf("clamped particle %d has moved: %v\n", p, last.U[p])
					return
				}
			}
		case x > 0.87:
			if last.U[p][0] >= 0 {
				tst.Errorf("loaded particle %d must move against x: ux=%g\n", p, last.U[p][0])
				return
			}
		}
	}
	io.Pforan("final time = %v\n", sol.Time)
}

func Test_solver02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solver02. invalid input is rejected")

	// unknown material
	sim, err := inp.ReadSim("data/dyn01.sim", false)
	if err != nil {
		tst.Errorf("cannot read simulation file:\n%v\n", err)
		return
	}
	sim.Domain.Mat = "nonexistent"
	_, err = NewSolver(sim)
	if err == nil {
		tst.Errorf("unknown material must fail\n")
		return
	}
	io.Pfgreen("error message OK: %v\n", err)

	// invalid bc key
	sim, err = inp.ReadSim("data/dyn01.sim", false)
	if err != nil {
		tst.Errorf("cannot read simulation file:\n%v\n", err)
		return
	}
	sim.Bcs = append(sim.Bcs, &inp.RegionBc{
		Desc: "broken bc",
		Box:  []float64{0, 0, 0, 1, 1, 1},
		Keys: []string{"qq"},
		Fcns: []string{"zero"},
	})
	_, err = NewSolver(sim)
	if err == nil {
		tst.Errorf("invalid bc key must fail\n")
		return
	}
	io.Pfgreen("error message OK: %v\n", err)

	// missing function
	sim, err = inp.ReadSim("data/dyn01.sim", false)
	if err != nil {
		tst.Errorf("cannot read simulation file:\n%v\n", err)
		return
	}
	sim.Bcs[0].Fcns[0] = "nonexistent"
	_, err = NewSolver(sim)
	if err == nil {
		tst.Errorf("missing function must fail\n")
		return
	}
	io.Pfgreen("error message OK: %v\n", err)
}
