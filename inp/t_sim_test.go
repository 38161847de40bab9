// Copyright 2024 Pavan Mehta. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. reading a simulation file")

	sim, err := ReadSim("data/sim01.sim", false)
	if err != nil {
		tst.Errorf("cannot read simulation file:\n%v\n", err)
		return
	}
	io.Pforan("sim = %v\n", sim.Data.Desc)

	// derived data
	if sim.Key != "sim01" {
		tst.Errorf("key %q is incorrect\n", sim.Key)
		return
	}
	if sim.EncType != "gob" {
		tst.Errorf("default encoder must be gob, got %q\n", sim.EncType)
		return
	}
	if sim.DirOut != "/tmp/gopd/sim01" {
		tst.Errorf("default output directory %q is incorrect\n", sim.DirOut)
		return
	}

	// domain
	chk.Vector(tst, "xmin", 1e-17, sim.Domain.Xmin, []float64{0, 0, 0})
	chk.Vector(tst, "xmax", 1e-17, sim.Domain.Xmax, []float64{1, 0.25, 0.25})
	chk.Ints(tst, "ncells", sim.Domain.Ncells, []int{8, 2, 2})

	// time control
	chk.Scalar(tst, "tf", 1e-17, sim.Solver.Tf, 0.002)
	chk.Scalar(tst, "dt", 1e-17, sim.Solver.Dt, 0.0001)
	chk.Scalar(tst, "dtout", 1e-17, sim.Solver.DtOut, 0.001)

	// materials
	mat := sim.MatParams.Get("brittle1")
	if mat == nil {
		tst.Errorf("cannot find material brittle1\n")
		return
	}
	if mat.Model != "pmb" {
		tst.Errorf("material model %q is incorrect\n", mat.Model)
		return
	}
	if sim.MatParams.Get("nonexistent") != nil {
		tst.Errorf("unknown material must give nil\n")
		return
	}

	// boundary condition functions
	fcn, err := sim.Functions.Get("pull")
	if err != nil {
		tst.Errorf("cannot get function:\n%v\n", err)
		return
	}
	chk.Scalar(tst, "pull(0)", 1e-17, fcn.F(0, nil), -0.5)
	_, err = sim.Functions.Get("nonexistent")
	if err == nil {
		tst.Errorf("unknown function must fail\n")
		return
	}
	io.Pfgreen("error message OK: %v\n", err)

	// boundary conditions
	chk.IntAssert(len(sim.Bcs), 2)
	chk.IntAssert(len(sim.Bcs[0].Keys), 3)
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02. invalid input files are rejected")

	_, err := ReadSim("data/nonexistent.sim", false)
	if err == nil {
		tst.Errorf("missing simulation file must fail\n")
		return
	}
	io.Pfgreen("error message OK: %v\n", err)

	_, err = ReadMat("data", "")
	if err == nil {
		tst.Errorf("empty materials file name must fail\n")
		return
	}
	io.Pfgreen("error message OK: %v\n", err)

	_, err = ReadMat("data", "nonexistent.mat")
	if err == nil {
		tst.Errorf("missing materials file must fail\n")
		return
	}
	io.Pfgreen("error message OK: %v\n", err)
}
