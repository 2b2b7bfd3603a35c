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
	"errors"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Config holds comparison tolerances. An elevation tolerance of zero
// selects the default comparison; a positive value switches to an
// absolute-only elevation comparison, for records produced by
// different numerical pipelines.
type Config struct {
	ElevationTolerance float64 `yaml:"elevation-tolerance"`
}

var defaultConfig = Config{
	ElevationTolerance: 0,
}

func ParseConfig(filename string) (*Config, error) {
	if filename == "" {
		conf := defaultConfig
		return &conf, nil
	}
	buf, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseConfigBytes(buf)
}

func ParseConfigBytes(buf []byte) (*Config, error) {
	conf := defaultConfig
	if err := yaml.Unmarshal(buf, &conf); err != nil {
		return nil, err
	}
	if err := conf.validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

func (conf *Config) validate() error {
	if conf.ElevationTolerance < 0 {
		return errors.New("elevation-tolerance cannot be negative")
	}
	return nil
}
