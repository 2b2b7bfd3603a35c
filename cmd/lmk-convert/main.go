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

	arg "github.com/alexflint/go-arg"

	"github.com/lvstools/lmktools/landmark"
)

var version = "<not set>"

type Args struct {
	Input      string  `arg:"positional,required" help:"input landmark file"`
	Output     string  `arg:"positional,required" help:"output landmark file"`
	Planet     string  `arg:"-p,--planet" help:"body override for legacy import <Earth, Moon, Mars>"`
	ToLegacy   bool    `arg:"--to-legacy" help:"export canonical v3 input to legacy v1 layout"`
	Lat        float64 `arg:"--lat" help:"anchor latitude for legacy export (degrees)"`
	Lon        float64 `arg:"--lon" help:"anchor longitude for legacy export (degrees)"`
	Radius     float64 `arg:"--radius" help:"body radius for legacy export (meters)"`
	Timestamps bool    `arg:"-t,--timestamps" help:"include timestamps in log output"`
}

func (Args) Version() string {
	return version
}

func (Args) Description() string {
	return "convert landmark files between the legacy little-endian v1 and canonical big-endian v3 layouts"
}

func procArgs() Args {
	var args Args
	arg.MustParse(&args)
	return args
}

func main() {
	err := runMain()
	if err != nil {
		log.Fatal(err)
	}
}

func runMain() error {
	args := procArgs()

	if !args.Timestamps {
		log.SetFlags(0) // Removes default timestamp flag
	}

	if args.ToLegacy {
		lmk, err := landmark.Load(args.Input)
		if err != nil {
			return err
		}
		if err := landmark.SaveLegacy(args.Output, lmk, args.Lat, args.Lon, args.Radius); err != nil {
			return err
		}
		log.Printf("wrote legacy v1 %s (%dx%d)", args.Output, lmk.NumCols, lmk.NumRows)
		return nil
	}

	lmk, err := landmark.LoadLegacy(args.Input, args.Planet)
	if err != nil {
		return err
	}
	if err := landmark.Save(args.Output, lmk); err != nil {
		return err
	}
	log.Printf("wrote canonical v3 %s (%dx%d)", args.Output, lmk.NumCols, lmk.NumRows)
	return nil
}
