// lmktools - read, write and convert LVS Map landmark files
//  Copyright (C) 2024, The LVS Tools Project
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"log"
	"os"

	arg "github.com/alexflint/go-arg"

	"github.com/lvstools/lmktools/landmark"
)

var version = "<not set>"

type Args struct {
	FileA      string `arg:"positional,required" help:"first landmark file"`
	FileB      string `arg:"positional,required" help:"second landmark file"`
	ConfigFile string `arg:"-c,--config" help:"path to tolerance configuration file"`
	Timestamps bool   `arg:"-t,--timestamps" help:"include timestamps in log output"`
}

func (Args) Version() string {
	return version
}

func (Args) Description() string {
	return "compare two canonical landmark files and report differing fields"
}

func procArgs() Args {
	var args Args
	arg.MustParse(&args)
	return args
}

func main() {
	os.Exit(runMain())
}

func runMain() int {
	args := procArgs()

	if !args.Timestamps {
		log.SetFlags(0) // Removes default timestamp flag
	}

	conf, err := ParseConfig(args.ConfigFile)
	if err != nil {
		log.Print(err)
		return 2
	}

	a, err := landmark.Load(args.FileA)
	if err != nil {
		log.Print(err)
		return 2
	}
	b, err := landmark.Load(args.FileB)
	if err != nil {
		log.Print(err)
		return 2
	}

	var equal bool
	if conf.ElevationTolerance > 0 {
		equal = landmark.ApproxEqual(a, b, conf.ElevationTolerance)
		landmark.DiagnoseApprox(os.Stdout, a, b, conf.ElevationTolerance)
	} else {
		equal = landmark.Equal(a, b)
		landmark.Diagnose(os.Stdout, a, b)
	}

	if !equal {
		return 1
	}
	return 0
}
