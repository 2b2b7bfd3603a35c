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
	"strconv"

	"github.com/lvstools/lmktools/matrix"
)

// Legacy v1 layout offsets. All fields are little-endian. The v1
// header carries the derived geometry redundantly; on import those
// regions are skipped rather than validated against the primary
// fields.
const (
	legOffScalars   = 16  // anchor_col, anchor_row, lat, lon, radius, resolution
	legOffAnchorPt  = 64  // anchor_point
	legOffColRow2XY = 88  // col_row2mapxy (derived)
	legOffXY2ColRow = 136 // mapxy2col_row (derived)
	legOffMapRWorld = 184
	legOffNormal    = 256 // map_normal_vector (derived)
	legOffPlane     = 280 // map_plane_params (derived)
	legacyHeader    = 312
)

// LoadLegacy reads a legacy little-endian v1 landmark file into a
// canonical record. bodyName, when non-empty, overrides the stored
// body code via BodyCode. The v1 numeric id becomes the record id as
// decimal text padded with '0'; the v1 lat, lon and radius fields have
// no canonical counterpart and are dropped.
func LoadLegacy(path string, bodyName string) (*Landmark, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	l, err := DecodeLegacy(buf, bodyName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// DecodeLegacy parses a v1 record from buf. See LoadLegacy.
func DecodeLegacy(buf []byte, bodyName string) (*Landmark, error) {
	if len(buf) < legacyHeader {
		return nil, fmt.Errorf("%w: %d byte header, need %d", ErrTruncated, len(buf), legacyHeader)
	}

	l := new(Landmark)
	l.Body = int32(binary.LittleEndian.Uint32(buf[0:]))
	numericID := int32(binary.LittleEndian.Uint32(buf[4:]))
	l.NumCols = int32(binary.LittleEndian.Uint32(buf[8:]))
	l.NumRows = int32(binary.LittleEndian.Uint32(buf[12:]))

	padID(&l.ID, []byte(strconv.Itoa(int(numericID))))

	if bodyName != "" {
		code, err := BodyCode(bodyName)
		if err != nil {
			return nil, err
		}
		l.Body = code
	}

	scalars := make([]float64, 6)
	if err := matrix.Unpack(scalars, 6, 1, buf[legOffScalars:], binary.LittleEndian); err != nil {
		return nil, err
	}
	// scalars[2:5] are lat, lon and radius: read and discarded.
	l.AnchorCol, l.AnchorRow, l.Resolution = scalars[0], scalars[1], scalars[5]

	if err := matrix.Unpack(l.AnchorPoint[:], 3, 1, buf[legOffAnchorPt:], binary.LittleEndian); err != nil {
		return nil, err
	}
	rot := make([]float64, 9)
	if err := matrix.Unpack(rot, 3, 3, buf[legOffMapRWorld:], binary.LittleEndian); err != nil {
		return nil, err
	}
	for i := 0; i < 3; i++ {
		copy(l.MapRWorld[i][:], rot[i*3:i*3+3])
	}

	if l.NumCols < 0 || l.NumRows < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensionMismatch, l.NumCols, l.NumRows)
	}
	// Same wrap-around guard as the v3 decoder.
	np64 := int64(l.NumCols) * int64(l.NumRows)
	if np64 > int64((math.MaxInt-legacyHeader)/5) {
		return nil, fmt.Errorf("%w: %d bytes cannot hold a %dx%d record",
			ErrTruncated, len(buf), l.NumCols, l.NumRows)
	}
	np := int(np64)
	if len(buf) < legacyHeader+np+4*np {
		return nil, fmt.Errorf("%w: %d bytes, %dx%d record needs %d",
			ErrTruncated, len(buf), l.NumCols, l.NumRows, legacyHeader+np+4*np)
	}

	l.SRM = make([]uint8, np)
	if err := matrix.Unpack(l.SRM, int(l.NumCols), int(l.NumRows), buf[legacyHeader:], binary.LittleEndian); err != nil {
		return nil, err
	}
	l.Ele = make([]float32, np)
	if err := matrix.Unpack(l.Ele, int(l.NumCols), int(l.NumRows), buf[legacyHeader+np:], binary.LittleEndian); err != nil {
		return nil, err
	}
	return l, nil
}

// SaveLegacy writes l in the legacy v1 layout for consumers that still
// read it. The canonical record does not retain lat, lon or radius, so
// the caller supplies them (zero when unknown), and the opaque 32-byte
// id cannot be recovered as a v1 numeric id, so that field is written
// as 1. The derived geometry regions are recomputed from the primary
// fields.
func SaveLegacy(path string, l *Landmark, lat, lon, radius float64) error {
	buf, err := EncodeLegacy(l, lat, lon, radius)
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0644)
}

// EncodeLegacy serializes l into a fresh v1 byte buffer. See
// SaveLegacy.
func EncodeLegacy(l *Landmark, lat, lon, radius float64) ([]byte, error) {
	if err := l.checkRasters(); err != nil {
		return nil, err
	}

	np := l.NumPixels()
	buf := make([]byte, legacyHeader+np+4*np)

	binary.LittleEndian.PutUint32(buf[0:], uint32(l.Body))
	binary.LittleEndian.PutUint32(buf[4:], 1) // v1 numeric id, not recoverable
	binary.LittleEndian.PutUint32(buf[8:], uint32(l.NumCols))
	binary.LittleEndian.PutUint32(buf[12:], uint32(l.NumRows))

	scalars := []float64{l.AnchorCol, l.AnchorRow, lat, lon, radius, l.Resolution}
	if _, err := matrix.Pack(scalars, buf, legOffScalars, binary.LittleEndian); err != nil {
		return nil, err
	}
	if _, err := matrix.Pack(l.AnchorPoint[:], buf, legOffAnchorPt, binary.LittleEndian); err != nil {
		return nil, err
	}

	g := DeriveGeometry(l)
	if _, err := matrix.Pack(flatten23(g.ColRow2MapXY), buf, legOffColRow2XY, binary.LittleEndian); err != nil {
		return nil, err
	}
	if _, err := matrix.Pack(flatten23(g.MapXY2ColRow), buf, legOffXY2ColRow, binary.LittleEndian); err != nil {
		return nil, err
	}

	rot := make([]float64, 0, 9)
	for i := 0; i < 3; i++ {
		rot = append(rot, l.MapRWorld[i][:]...)
	}
	if _, err := matrix.Pack(rot, buf, legOffMapRWorld, binary.LittleEndian); err != nil {
		return nil, err
	}
	if _, err := matrix.Pack(g.NormalVector[:], buf, legOffNormal, binary.LittleEndian); err != nil {
		return nil, err
	}
	if _, err := matrix.Pack(g.PlaneParams[:], buf, legOffPlane, binary.LittleEndian); err != nil {
		return nil, err
	}
	if _, err := matrix.Pack(l.SRM, buf, legacyHeader, binary.LittleEndian); err != nil {
		return nil, err
	}
	if _, err := matrix.Pack(l.Ele, buf, legacyHeader+np, binary.LittleEndian); err != nil {
		return nil, err
	}
	return buf, nil
}

func flatten23(m [2][3]float64) []float64 {
	out := make([]float64, 0, 6)
	out = append(out, m[0][:]...)
	out = append(out, m[1][:]...)
	return out
}
