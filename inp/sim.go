// Copyright 2024 Pavan Mehta. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	Matfile string `json:"matfile"` // materials file path
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/gopd
	Encoder string `json:"encoder"` // encoder name; "gob" or "json"
}

// DomainData holds the lattice domain definition
type DomainData struct {
	Desc   string    `json:"desc"`   // description of domain. ex: bar, plate-with-notch
	Xmin   []float64 `json:"xmin"`   // lower corner of box [3]
	Xmax   []float64 `json:"xmax"`   // upper corner of box [3]
	Ncells []int     `json:"ncells"` // number of lattice cells per direction [3]
	Mat    string    `json:"mat"`    // material name
}

// TimeControl holds the time stepping data
type TimeControl struct {
	Tf    float64 `json:"tf"`    // final time
	Dt    float64 `json:"dt"`    // time step size
	DtOut float64 `json:"dtout"` // time step size for output
}

// RegionBc holds a boundary condition applied to all particles inside a box
//  Keys: "ux", "uy", "uz" => prescribed displacement (velocity zeroed)
//        "fx", "fy", "fz" => prescribed body force density
type RegionBc struct {
	Desc string    `json:"desc"` // description. ex: clamped end
	Box  []float64 `json:"box"`  // {xmin0,xmin1,xmin2, xmax0,xmax1,xmax2}
	Keys []string  `json:"keys"` // dof keys
	Fcns []string  `json:"fcns"` // function names, one per key
}

// FuncData holds the definition of one time function
type FuncData struct {
	Name string   `json:"name"` // name of function. ex: ramp-up
	Type string   `json:"type"` // type of function. ex: cte, lin
	Prms fun.Prms `json:"prms"` // parameters
}

// FuncsData holds all boundary condition functions
type FuncsData []*FuncData

// Get returns the function with the given name
func (o FuncsData) Get(name string) (fcn fun.Func, err error) {
	for _, fd := range o {
		if fd.Name == name {
			fcn, err = fun.New(fd.Type, fd.Prms)
			if err != nil {
				return nil, chk.Err("cannot allocate function %q (type %q):\n%v", name, fd.Type, err)
			}
			return
		}
	}
	return nil, chk.Err("cannot find function named %q", name)
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data      Data        `json:"data"`      // global simulation data
	Functions FuncsData   `json:"functions"` // boundary condition functions
	Domain    DomainData  `json:"domain"`    // lattice domain
	Solver    TimeControl `json:"solver"`    // time control
	Bcs       []*RegionBc `json:"bcs"`       // boundary conditions

	// derived
	DirOut    string // directory to save results
	Key       string // simulation key; e.g. mysim01.sim => mysim01
	EncType   string // encoder type
	MatParams *MatDb // materials' parameters
}

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath string, erasefiles bool) (o *Simulation, err error) {

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q", simfilepath)
	}

	// decode
	o = new(Simulation)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// input directory and filename key
	dir := filepath.Dir(simfilepath)
	fn := filepath.Base(simfilepath)
	dir = os.ExpandEnv(dir)
	o.Key = io.FnKey(fn)

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/gopd/" + o.Key
	}

	// encoder type
	o.EncType = o.Data.Encoder
	if o.EncType != "gob" && o.EncType != "json" {
		o.EncType = "gob"
	}

	// create directory and erase previous simulation results
	if erasefiles {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			return nil, chk.Err("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, o.Key))
	}

	// check domain
	if len(o.Domain.Xmin) != 3 || len(o.Domain.Xmax) != 3 || len(o.Domain.Ncells) != 3 {
		return nil, chk.Err("ReadSim: domain box and ncells must have 3 components each")
	}

	// check time control
	if o.Solver.Dt <= 0 || o.Solver.Tf <= 0 {
		return nil, chk.Err("ReadSim: tf=%g and dt=%g must be positive", o.Solver.Tf, o.Solver.Dt)
	}
	if o.Solver.DtOut <= 0 {
		o.Solver.DtOut = o.Solver.Dt
	}

	// read materials database
	o.MatParams, err = ReadMat(dir, o.Data.Matfile)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read materials database:\n%v", err)
	}
	return
}
