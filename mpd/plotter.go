// Copyright 2024 Pavan Mehta. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpd

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// Plotter helps plotting bond force and micro-potential curves
type Plotter struct {
	SaveDir string // directory to put figure
	SaveFnk string // figure filename key
	Npts    int    // number of points along the stretch axis
	Ξ       float64 // reference bond length for sampling
	Vol     float64 // neighbour volume for sampling
	Clr     string  // curve color
	Ls      string  // curve linestyle
}

// Plot draws force and energy coefficients of a bond-based model as
// functions of stretch, for s in [-smax, smax]
func (o *Plotter) Plot(mdl BondBased, smax float64) {

	// default input
	if o.Npts < 2 {
		o.Npts = 101
	}
	if o.Ξ <= 0 {
		o.Ξ = mdl.Horizon() / 2.0
	}
	if o.Vol <= 0 {
		o.Vol = 1.0
	}
	if o.Clr == "" {
		o.Clr = "b"
	}
	if o.Ls == "" {
		o.Ls = "-"
	}

	// curves
	S := utl.LinSpace(-smax, smax, o.Npts)
	F := make([]float64, o.Npts)
	W := make([]float64, o.Npts)
	for i, s := range S {
		F[i] = mdl.ForceCoef(s, o.Ξ, o.Vol)
		W[i] = mdl.EnergyCoef(s, o.Ξ, o.Vol)
	}

	// figure
	plt.Subplot(2, 1, 1)
	plt.Plot(S, F, io.Sf("color='%s', ls='%s', clip_on=0", o.Clr, o.Ls))
	plt.Gll("$s$", "$f$", "")
	plt.Subplot(2, 1, 2)
	plt.Plot(S, W, io.Sf("color='%s', ls='%s', clip_on=0", o.Clr, o.Ls))
	plt.Gll("$s$", "$w$", "")
	if o.SaveFnk != "" {
		if o.SaveDir == "" {
			o.SaveDir = "/tmp/gopd"
		}
		plt.SaveD(o.SaveDir, o.SaveFnk+".png")
	}
}
