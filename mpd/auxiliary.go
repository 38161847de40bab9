// Copyright 2024 Pavan Mehta. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpd

// Calc_K_from_Enu returns the bulk modulus K for given Young's modulus
// and Poisson's coefficient
func Calc_K_from_Enu(E, ν float64) float64 {
	return E / (3.0 * (1.0 - 2.0*ν))
}

// Calc_G_from_Enu returns the shear modulus G for given Young's modulus
// and Poisson's coefficient
func Calc_G_from_Enu(E, ν float64) float64 {
	return E / (2.0 * (1.0 + ν))
}

// Calc_E_from_KG returns Young's modulus for given bulk and shear moduli
func Calc_E_from_KG(K, G float64) float64 {
	return 9.0 * K * G / (3.0*K + G)
}
