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
	"fmt"
	"log"

	arg "github.com/alexflint/go-arg"

	"github.com/lvstools/lmktools/landmark"
)

var version = "<not set>"

type Args struct {
	Input  string `arg:"positional,required" help:"landmark file"`
	Legacy bool   `arg:"--legacy" help:"read input as legacy little-endian v1"`
}

func (Args) Version() string {
	return version
}

func (Args) Description() string {
	return "print the header of a landmark file"
}

func main() {
	err := runMain()
	if err != nil {
		log.Fatal(err)
	}
}

func runMain() error {
	var args Args
	arg.MustParse(&args)

	var (
		lmk *landmark.Landmark
		err error
	)
	if args.Legacy {
		lmk, err = landmark.LoadLegacy(args.Input, "")
	} else {
		lmk, err = landmark.Load(args.Input)
	}
	if err != nil {
		return err
	}

	fmt.Print(lmk.Info())
	return nil
}
