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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	conf, err := ParseConfig("")
	require.NoError(t, err)
	assert.Equal(t, 0.0, conf.ElevationTolerance)
}

func TestParseConfigBytes(t *testing.T) {
	conf, err := ParseConfigBytes([]byte("elevation-tolerance: 0.5\n"))
	require.NoError(t, err)
	assert.Equal(t, 0.5, conf.ElevationTolerance)
}

func TestNegativeToleranceDoesntValidate(t *testing.T) {
	_, err := ParseConfigBytes([]byte("elevation-tolerance: -1\n"))
	assert.EqualError(t, err, "elevation-tolerance cannot be negative")
}

func TestMalformedYaml(t *testing.T) {
	_, err := ParseConfigBytes([]byte("elevation-tolerance: [oops\n"))
	assert.Error(t, err)
}
