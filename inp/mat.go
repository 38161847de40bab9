// Copyright 2024 Pavan Mehta. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// Material holds material data
type Material struct {
	Name  string   `json:"name"`  // name of material
	Model string   `json:"model"` // name of model. ex: pmb, lps, contact
	Prms  fun.Prms `json:"prms"`  // model parameters
}

// MatDb implements a database of materials
type MatDb struct {
	Materials []*Material `json:"materials"` // all materials
}

// Get returns the material with the given name or nil
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// ReadMat reads a materials database from a .mat JSON file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {
	if fn == "" {
		return nil, chk.Err("ReadMat: materials file name is empty")
	}
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, chk.Err("ReadMat: cannot read materials file %q in %q", fn, dir)
	}
	mdb = new(MatDb)
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil, chk.Err("ReadMat: cannot unmarshal materials file %q:\n%v", fn, err)
	}
	if len(mdb.Materials) == 0 {
		return nil, chk.Err("ReadMat: materials file %q has no materials", fn)
	}
	return
}
