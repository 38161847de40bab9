// Copyright 2024 Pavan Mehta. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"github.com/mehta-pavan/CabanaPD/out"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data
	simfn, fnkey := io.ArgToFilename(0, "pull_bar", ".sim", true)
	key := io.ArgToString(1, "ux")
	x := io.ArgToFloat(2, 0)
	y := io.ArgToFloat(3, 0)
	z := io.ArgToFloat(4, 0)
	doplot := io.ArgToBool(5, false)

	// print input data
	io.Pf("\n%s\n", io.ArgsTable(
		"simulation filename", "simfn", simfn,
		"quantity to extract", "key", key,
		"probe coordinate", "x", x,
		"probe coordinate", "y", y,
		"probe coordinate", "z", z,
		"save plot", "doplot", doplot,
	))

	// results
	err := out.Start(simfn)
	if err != nil {
		io.PfRed("ERROR: %v\n", err)
		return
	}
	p := out.Probe([]float64{x, y, z})
	if p < 0 {
		io.PfRed("ERROR: cannot find a particle near the probe point\n")
		return
	}
	io.Pf("particle # %d at x = %v\n\n", p, out.X[p])

	// time series
	T, V, err := out.TimeSeries(key, p)
	if err != nil {
		io.PfRed("ERROR: %v\n", err)
		return
	}
	io.Pf("%14s %14s\n", "t", key)
	for i := range T {
		io.Pf("%14.6e %14.6e\n", T[i], V[i])
	}

	// plot
	if doplot {
		plt.Plot(T, V, "'b.-', clip_on=0")
		plt.Gll("$t$", key, "")
		plt.SaveD("/tmp", io.Sf("%s_%s_p%d.png", fnkey, key, p))
	}
}
