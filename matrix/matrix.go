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

// Package matrix packs and unpacks fixed-element-type numeric matrices
// to and from byte buffers. Matrices are stored row-major as rows
// contiguous runs of cols elements, with a caller-chosen byte order.
package matrix

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnsupportedKind is returned when the element slice is not one
	// of []float64, []float32 or []uint8.
	ErrUnsupportedKind = errors.New("unsupported matrix element kind")

	// ErrShortBuffer is returned when the byte buffer cannot hold the
	// requested matrix.
	ErrShortBuffer = errors.New("buffer too small for matrix")

	// ErrShortSlice is returned when the destination slice cannot hold
	// the requested matrix.
	ErrShortSlice = errors.New("destination slice too small for matrix")
)

func sliceLen(mat interface{}) int {
	switch m := mat.(type) {
	case []float64:
		return len(m)
	case []float32:
		return len(m)
	case []uint8:
		return len(m)
	}
	return 0
}

// ElemSize returns the encoded size in bytes of one element of mat,
// which must be a []float64, []float32 or []uint8.
func ElemSize(mat interface{}) (int, error) {
	switch mat.(type) {
	case []float64:
		return 8, nil
	case []float32:
		return 4, nil
	case []uint8:
		return 1, nil
	}
	return 0, fmt.Errorf("%w: %T", ErrUnsupportedKind, mat)
}

// Unpack fills dst with cols*rows elements read from buf in the given
// byte order. dst must be a []float64, []float32 or []uint8 of length
// at least cols*rows.
func Unpack(dst interface{}, cols, rows int, buf []byte, order binary.ByteOrder) error {
	esize, err := ElemSize(dst)
	if err != nil {
		return err
	}
	n := cols * rows
	if sliceLen(dst) < n {
		return fmt.Errorf("%w: have %d elements, need %d", ErrShortSlice, sliceLen(dst), n)
	}
	if len(buf) < n*esize {
		return fmt.Errorf("%w: have %d bytes, need %d", ErrShortBuffer, len(buf), n*esize)
	}

	switch d := dst.(type) {
	case []float64:
		for i := 0; i < n; i++ {
			d[i] = math.Float64frombits(order.Uint64(buf[i*8:]))
		}
	case []float32:
		for i := 0; i < n; i++ {
			d[i] = math.Float32frombits(order.Uint32(buf[i*4:]))
		}
	case []uint8:
		copy(d[:n], buf)
	}
	return nil
}

// Pack writes the elements of src into buf starting at offset, in the
// given byte order, and returns the number of bytes written. src must
// be a []float64, []float32 or []uint8.
func Pack(src interface{}, buf []byte, offset int, order binary.ByteOrder) (int, error) {
	esize, err := ElemSize(src)
	if err != nil {
		return 0, err
	}

	n := sliceLen(src)
	if len(buf) < offset+n*esize {
		return 0, fmt.Errorf("%w: have %d bytes, need %d", ErrShortBuffer, len(buf)-offset, n*esize)
	}

	switch s := src.(type) {
	case []float64:
		for i, v := range s {
			order.PutUint64(buf[offset+i*8:], math.Float64bits(v))
		}
	case []float32:
		for i, v := range s {
			order.PutUint32(buf[offset+i*4:], math.Float32bits(v))
		}
	case []uint8:
		copy(buf[offset:], s)
	}
	return n * esize, nil
}
