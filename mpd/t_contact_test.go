// Copyright 2024 Pavan Mehta. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpd

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func Test_contact01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("contact01. repulsion sign and monotonicity")

	mdl, err := New("contact")
	if err != nil {
		tst.Errorf("cannot allocate model: %v\n", err)
		return
	}
	δ, Rc, K := 0.1, 0.04, 1.0
	err = mdl.Init([]*fun.Prm{
		&fun.Prm{N: "delta", V: δ},
		&fun.Prm{N: "Rc", V: Rc},
		&fun.Prm{N: "K", V: K},
	})
	if err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}
	ct := mdl.(*NormalRepulsion)
	chk.Scalar(tst, "Rc", 1e-17, ct.ContactRadius(), Rc)

	// zero at and beyond the contact radius
	vol := 0.001
	chk.Scalar(tst, "coef(Rc)", 1e-17, ct.ForceCoef(Rc, vol), 0)
	chk.Scalar(tst, "coef(δ)", 1e-17, ct.ForceCoef(δ, vol), 0)

	// repulsive below the contact radius, growing as separation shrinks
	R := utl.LinSpace(0.9*Rc, 0.1*Rc, 9)
	prev := 0.0
	for _, r := range R {
		coef := ct.ForceCoef(r, vol)
		rep := -coef // repulsion magnitude along -r̂
		io.Pforan("r=%8.5f  rep=%v\n", r, rep)
		if rep <= 0 {
			tst.Errorf("repulsion must be strictly positive for r=%g < Rc\n", r)
			return
		}
		if rep <= prev {
			tst.Errorf("repulsion must grow as separation shrinks (r=%g)\n", r)
			return
		}
		prev = rep
	}

	// contact radius must be smaller than the horizon
	m, _ := New("contact")
	err = m.Init([]*fun.Prm{
		&fun.Prm{N: "delta", V: δ},
		&fun.Prm{N: "Rc", V: δ},
		&fun.Prm{N: "K", V: K},
	})
	if err == nil {
		tst.Errorf("Init must fail for Rc ≥ delta\n")
		return
	}
}
