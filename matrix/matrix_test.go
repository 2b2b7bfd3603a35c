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

package matrix

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloat64RoundTrip(t *testing.T) {
	src := []float64{1.5, -2.25, 0, 1e300, -1e-300, 3.14159}
	buf := make([]byte, len(src)*8)

	n, err := Pack(src, buf, 0, binary.BigEndian)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n)

	dst := make([]float64, len(src))
	require.NoError(t, Unpack(dst, 3, 2, buf, binary.BigEndian))
	assert.Equal(t, src, dst)
}

func TestFloat32RoundTrip(t *testing.T) {
	src := []float32{0.5, -1.25, 42}
	buf := make([]byte, len(src)*4)

	_, err := Pack(src, buf, 0, binary.LittleEndian)
	require.NoError(t, err)

	dst := make([]float32, len(src))
	require.NoError(t, Unpack(dst, 3, 1, buf, binary.LittleEndian))
	assert.Equal(t, src, dst)
}

func TestUint8RoundTrip(t *testing.T) {
	src := []uint8{0, 1, 2, 255}
	buf := make([]byte, len(src))

	_, err := Pack(src, buf, 0, binary.BigEndian)
	require.NoError(t, err)
	assert.Equal(t, src, buf)

	dst := make([]uint8, len(src))
	require.NoError(t, Unpack(dst, 2, 2, buf, binary.BigEndian))
	assert.Equal(t, src, dst)
}

func TestPackAtOffset(t *testing.T) {
	buf := make([]byte, 12)
	n, err := Pack([]float32{1}, buf, 8, binary.BigEndian)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 0, 0x3f, 0x80, 0, 0}, buf)
}

func TestByteOrderMatters(t *testing.T) {
	buf := make([]byte, 8)
	_, err := Pack([]float64{1.0}, buf, 0, binary.BigEndian)
	require.NoError(t, err)

	le := make([]float64, 1)
	require.NoError(t, Unpack(le, 1, 1, buf, binary.LittleEndian))
	assert.NotEqual(t, 1.0, le[0])
}

func TestUnsupportedKind(t *testing.T) {
	buf := make([]byte, 8)
	err := Unpack([]int32{0}, 1, 1, buf, binary.BigEndian)
	assert.ErrorIs(t, err, ErrUnsupportedKind)

	_, err = Pack([]int16{0}, buf, 0, binary.BigEndian)
	assert.ErrorIs(t, err, ErrUnsupportedKind)
}

func TestShortDestination(t *testing.T) {
	buf := make([]byte, 16)
	err := Unpack(make([]float64, 1), 2, 1, buf, binary.BigEndian)
	assert.ErrorIs(t, err, ErrShortSlice)

	err = Unpack(make([]uint8, 3), 2, 2, buf, binary.BigEndian)
	assert.ErrorIs(t, err, ErrShortSlice)
}

func TestShortBuffer(t *testing.T) {
	err := Unpack(make([]float64, 2), 2, 1, make([]byte, 8), binary.BigEndian)
	assert.ErrorIs(t, err, ErrShortBuffer)

	_, err = Pack([]uint8{1, 2, 3}, make([]byte, 4), 2, binary.BigEndian)
	assert.ErrorIs(t, err, ErrShortBuffer)
}
