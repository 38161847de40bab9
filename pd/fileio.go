// Copyright 2024 Pavan Mehta. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	goio "io"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Encoder defines encoders; e.g. gob or json
type Encoder interface {
	Encode(e interface{}) error
}

// Decoder defines decoders; e.g. gob or json
type Decoder interface {
	Decode(e interface{}) error
}

// GetEncoder returns a new encoder
func GetEncoder(w goio.Writer, enctype string) Encoder {
	if enctype == "json" {
		return json.NewEncoder(w)
	}
	return gob.NewEncoder(w)
}

// GetDecoder returns a new decoder
func GetDecoder(r goio.Reader, enctype string) Decoder {
	if enctype == "json" {
		return json.NewDecoder(r)
	}
	return gob.NewDecoder(r)
}

// State holds one output snapshot of the particle fields
type State struct {
	T   float64     // simulation time
	U   [][]float64 // displacements [n][3]
	V   [][]float64 // velocities [n][3]
	F   [][]float64 // force density [n][3]
	W   []float64   // strain-energy density
	Dmg []float64   // damage
}

// SaveState saves the current particle fields to a file named with tidx
func (o *Solver) SaveState(tidx int, verbose bool) (err error) {

	// damage field
	dmg := make([]float64, o.Prt.N)
	if o.Frc.Bonds != nil {
		o.Frc.Bonds.DamageField(dmg)
	}

	// buffer and encoder
	var buf bytes.Buffer
	enc := GetEncoder(&buf, o.Sim.EncType)
	for _, e := range []interface{}{o.Time, o.Prt.U, o.Prt.V, o.Prt.F, o.Prt.W, dmg} {
		err = enc.Encode(e)
		if err != nil {
			return chk.Err("cannot encode state # %d:\n%v", tidx, err)
		}
	}

	// save file
	fn := statePath(o.Sim.DirOut, o.Sim.Key, o.Sim.EncType, tidx)
	fil, err := os.Create(fn)
	if err != nil {
		return chk.Err("cannot create file %q:\n%v", fn, err)
	}
	defer fil.Close()
	_, err = fil.Write(buf.Bytes())
	if err != nil {
		return chk.Err("cannot write file %q:\n%v", fn, err)
	}
	if verbose {
		io.Pf("file %s written\n", fn)
	}
	return
}

// ReadState reads one output snapshot from a file named with tidx
func ReadState(dir, fnkey, enctype string, tidx int) (sta *State, err error) {
	fn := statePath(dir, fnkey, enctype, tidx)
	fil, err := os.Open(fn)
	if err != nil {
		return
	}
	defer fil.Close()
	dec := GetDecoder(fil, enctype)
	sta = new(State)
	for _, e := range []interface{}{&sta.T, &sta.U, &sta.V, &sta.F, &sta.W, &sta.Dmg} {
		err = dec.Decode(e)
		if err != nil {
			return nil, chk.Err("cannot decode state # %d from %q:\n%v", tidx, fn, err)
		}
	}
	return
}

// statePath returns the path of the output file for time index tidx
func statePath(dir, fnkey, enctype string, tidx int) string {
	return io.Sf("%s/%s_t%d.%s", dir, fnkey, tidx, enctype)
}
