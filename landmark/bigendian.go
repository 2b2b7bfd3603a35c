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

package landmark

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"github.com/lvstools/lmktools/matrix"
)

// versionSignature occupies the first 32 bytes of a v3 file, padded
// with ASCII '0' bytes (0x30, not NUL).
const versionSignature = "#! LVS Map v3.0"

// v3 field offsets. The srm raster starts at headerSize and the ele
// raster follows it immediately.
const (
	offID        = 32
	offBody      = 64
	offAnchorCol = 76
	offAnchorPt  = 100
	offMapRWorld = 124
)

// Load reads a canonical big-endian v3 landmark file.
func Load(path string) (*Landmark, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	l, err := Decode(buf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Decode parses a v3 record from buf. The leading 32-byte
// version/comment field is not retained.
func Decode(buf []byte) (*Landmark, error) {
	if len(buf) < headerSize {
		return nil, fmt.Errorf("%w: %d byte header, need %d", ErrTruncated, len(buf), headerSize)
	}

	l := new(Landmark)
	copy(l.ID[:], buf[offID:offBody])
	l.Body = int32(binary.BigEndian.Uint32(buf[offBody:]))
	l.NumCols = int32(binary.BigEndian.Uint32(buf[offBody+4:]))
	l.NumRows = int32(binary.BigEndian.Uint32(buf[offBody+8:]))

	scalars := make([]float64, 3)
	if err := matrix.Unpack(scalars, 3, 1, buf[offAnchorCol:], binary.BigEndian); err != nil {
		return nil, err
	}
	l.AnchorCol, l.AnchorRow, l.Resolution = scalars[0], scalars[1], scalars[2]

	if err := matrix.Unpack(l.AnchorPoint[:], 3, 1, buf[offAnchorPt:], binary.BigEndian); err != nil {
		return nil, err
	}
	rot := make([]float64, 9)
	if err := matrix.Unpack(rot, 3, 3, buf[offMapRWorld:], binary.BigEndian); err != nil {
		return nil, err
	}
	for i := 0; i < 3; i++ {
		copy(l.MapRWorld[i][:], rot[i*3:i*3+3])
	}

	if l.NumCols < 0 || l.NumRows < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensionMismatch, l.NumCols, l.NumRows)
	}
	// Guard the size arithmetic: header dimensions are attacker
	// controlled and 5*num_pixels must not wrap around.
	np64 := int64(l.NumCols) * int64(l.NumRows)
	if np64 > int64((math.MaxInt-headerSize)/5) {
		return nil, fmt.Errorf("%w: %d bytes cannot hold a %dx%d record",
			ErrTruncated, len(buf), l.NumCols, l.NumRows)
	}
	np := int(np64)
	if len(buf) < headerSize+np+4*np {
		return nil, fmt.Errorf("%w: %d bytes, %dx%d record needs %d",
			ErrTruncated, len(buf), l.NumCols, l.NumRows, headerSize+np+4*np)
	}

	l.SRM = make([]uint8, np)
	if err := matrix.Unpack(l.SRM, int(l.NumCols), int(l.NumRows), buf[headerSize:], binary.BigEndian); err != nil {
		return nil, err
	}
	l.Ele = make([]float32, np)
	if err := matrix.Unpack(l.Ele, int(l.NumCols), int(l.NumRows), buf[headerSize+np:], binary.BigEndian); err != nil {
		return nil, err
	}
	return l, nil
}

// Save writes l as a canonical big-endian v3 landmark file. The file
// is exactly 196 + num_pixels + 4*num_pixels bytes.
func Save(path string, l *Landmark) error {
	buf, err := Encode(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0644)
}

// Encode serializes l into a fresh v3 byte buffer.
func Encode(l *Landmark) ([]byte, error) {
	if err := l.checkRasters(); err != nil {
		return nil, err
	}

	np := l.NumPixels()
	buf := make([]byte, headerSize+np+4*np)

	n := copy(buf, versionSignature)
	for i := n; i < offID; i++ {
		buf[i] = '0'
	}
	copy(buf[offID:], l.ID[:])

	binary.BigEndian.PutUint32(buf[offBody:], uint32(l.Body))
	binary.BigEndian.PutUint32(buf[offBody+4:], uint32(l.NumCols))
	binary.BigEndian.PutUint32(buf[offBody+8:], uint32(l.NumRows))

	if _, err := matrix.Pack([]float64{l.AnchorCol, l.AnchorRow, l.Resolution}, buf, offAnchorCol, binary.BigEndian); err != nil {
		return nil, err
	}
	if _, err := matrix.Pack(l.AnchorPoint[:], buf, offAnchorPt, binary.BigEndian); err != nil {
		return nil, err
	}
	rot := make([]float64, 0, 9)
	for i := 0; i < 3; i++ {
		rot = append(rot, l.MapRWorld[i][:]...)
	}
	if _, err := matrix.Pack(rot, buf, offMapRWorld, binary.BigEndian); err != nil {
		return nil, err
	}
	if _, err := matrix.Pack(l.SRM, buf, headerSize, binary.BigEndian); err != nil {
		return nil, err
	}
	if _, err := matrix.Pack(l.Ele, buf, headerSize+np, binary.BigEndian); err != nil {
		return nil, err
	}
	return buf, nil
}
