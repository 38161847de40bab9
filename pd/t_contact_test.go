// Copyright 2024 Pavan Mehta. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

func Test_contact01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("contact01. short-range repulsion between close particles")

	// three particles on the x axis; only the first pair is close
	δ, Rc := 0.1, 0.05
	prt := NewParticles(3)
	prt.X[1][0] = 0.04
	prt.X[2][0] = 0.4
	for p := 0; p < prt.N; p++ {
		prt.Vol[p] = 1
	}
	nl, err := BuildNeighList(prt.X, Rc)
	if err != nil {
		tst.Errorf("cannot build neighbour list:\n%v\n", err)
		return
	}

	mdl := newModel(tst, "contact", []*fun.Prm{
		&fun.Prm{N: "delta", V: δ},
		&fun.Prm{N: "Rc", V: Rc},
		&fun.Prm{N: "K", V: 1},
		&fun.Prm{N: "rho", V: 1},
	})
	if mdl == nil {
		return
	}
	var frc Force
	err = frc.Init(mdl, prt, nl)
	if err != nil {
		tst.Errorf("cannot initialise force kernel:\n%v\n", err)
		return
	}
	frc.Compute(prt, nl)

	// the pair is pushed apart with the expected coefficient
	c := 18.0 / (math.Pi * δ * δ * δ * δ)
	coef := 15.0 * c * (0.04 - Rc) / δ
	io.Pforan("F[0] = %v\n", prt.F[0])
	chk.Scalar(tst, "F0x", 1e-8, prt.F[0][0], coef)
	if prt.F[0][0] >= 0 || prt.F[1][0] <= 0 {
		tst.Errorf("particles must be pushed apart\n")
		return
	}
	chk.Scalar(tst, "action-reaction", 1e-17, prt.F[1][0], -prt.F[0][0])
	for d := 0; d < 3; d++ {
		if prt.F[2][d] != 0 {
			tst.Errorf("distant particle must stay force free\n")
			return
		}
	}

	// repulsion has no energy and no state fields
	for p := 0; p < prt.N; p++ {
		if prt.W[p] != 0 || prt.Tht[p] != 0 || prt.M[p] != 0 {
			tst.Errorf("contact evaluation must leave W, θ and m zero\n")
			return
		}
	}

	// the repulsion grows as the pair gets closer
	prev := math.Abs(prt.F[0][0])
	prt.U[1][0] = -0.02
	frc.Compute(prt, nl)
	io.Pforan("F[0] closer = %v\n", prt.F[0])
	if math.Abs(prt.F[0][0]) <= prev {
		tst.Errorf("repulsion must grow as the distance shrinks\n")
		return
	}

	// beyond the contact radius the force vanishes
	prt.U[1][0] = 0.02
	frc.Compute(prt, nl)
	for p := 0; p < 2; p++ {
		for d := 0; d < 3; d++ {
			if prt.F[p][d] != 0 {
				tst.Errorf("force must vanish beyond the contact radius\n")
				return
			}
		}
	}

	// the neighbour list cutoff must cover the contact radius
	nlSmall, err := BuildNeighList(prt.X, 0.03)
	if err != nil {
		tst.Errorf("cannot build neighbour list:\n%v\n", err)
		return
	}
	var bad Force
	err = bad.Init(mdl, prt, nlSmall)
	if err == nil {
		tst.Errorf("cutoff smaller than the contact radius must fail\n")
		return
	}
	io.Pfgreen("error message OK: %v\n", err)
}
