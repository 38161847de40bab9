// Copyright 2024 Pavan Mehta. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/mehta-pavan/CabanaPD/inp"
	"github.com/mehta-pavan/CabanaPD/pd"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	erasePrev := io.ArgToBool(2, true)

	// message
	if verbose {
		io.PfWhite("\nGopd -- Go Peridynamics\n\n")
		io.Pf("%v\n", io.ArgsTable(
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"erase previous results", "erasePrev", erasePrev,
		))
	}

	// read simulation data
	sim, err := inp.ReadSim(fnamepath, erasePrev)
	if err != nil {
		chk.Panic("cannot read simulation data:\n%v", err)
	}

	// build solver
	sol, err := pd.NewSolver(sim)
	if err != nil {
		chk.Panic("cannot build solver:\n%v", err)
	}
	if verbose {
		io.Pf("%d particles, %d bonds\n", sol.Prt.N, sol.Nl.Nbonds())
	}

	// run simulation
	cputime := time.Now()
	err = sol.Run(verbose)
	if err != nil {
		chk.Panic("simulation failed:\n%v", err)
	}
	if verbose {
		io.Pf("\nelapsed time = %v\n", time.Now().Sub(cputime))
		io.Pf("global energy Φ = %v\n", sol.Frc.Energy(sol.Prt))
	}
}
