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

// Package landmark reads and writes LVS Map landmark files: a geometry
// header plus two co-registered rasters (elevation and surface
// reflectance) describing a patch of planetary terrain. Two layouts
// exist: the canonical big-endian v3 format and a legacy little-endian
// v1 format which carries redundant derived geometry fields.
package landmark

import (
	"errors"
	"fmt"
	"math"
)

const (
	// IDSize is the on-disk size of the landmark id field.
	IDSize = 32

	// SRMDefault is the reflectance value used when no surface
	// reflectance model is known.
	SRMDefault = 100

	// headerSize is the byte offset of the srm raster in a v3 file.
	headerSize = 196
)

var (
	// ErrTruncated is returned when a file is shorter than the size
	// implied by its header dimensions.
	ErrTruncated = errors.New("landmark file truncated")

	// ErrDimensionMismatch is returned when a record's rasters do not
	// match its num_cols/num_rows on write.
	ErrDimensionMismatch = errors.New("raster dimensions inconsistent with header")
)

// Body codes as stored in landmark files. Earth and Mars share code 0
// in the historical table; files rely on external context to tell them
// apart.
const (
	BodyEarth = 0
	BodyMoon  = 1
	BodyMars  = 0
)

// BodyCode maps a planet name to its landmark body code.
func BodyCode(name string) (int32, error) {
	switch name {
	case "Earth":
		return BodyEarth, nil
	case "Moon":
		return BodyMoon, nil
	case "Mars":
		return BodyMars, nil
	}
	return 0, fmt.Errorf("unknown body name %q", name)
}

// Landmark is an in-memory landmark record. Both file formats load
// into and save from this one type. SRM and Ele are row-major with
// NumRows runs of NumCols elements.
type Landmark struct {
	Body        int32
	ID          [IDSize]byte
	NumCols     int32
	NumRows     int32
	AnchorCol   float64
	AnchorRow   float64
	Resolution  float64
	AnchorPoint [3]float64
	MapRWorld   [3][3]float64
	SRM         []uint8
	Ele         []float32
}

// New returns a landmark with rasters allocated for the given
// dimensions: reflectance filled with SRMDefault and elevation filled
// with NaN, matching freshly created landmarks from the mapping tools.
func New(cols, rows int32) *Landmark {
	l := &Landmark{
		NumCols: cols,
		NumRows: rows,
		SRM:     make([]uint8, int(cols)*int(rows)),
		Ele:     make([]float32, int(cols)*int(rows)),
	}
	for i := range l.SRM {
		l.SRM[i] = SRMDefault
	}
	for i := range l.Ele {
		l.Ele[i] = float32(math.NaN())
	}
	return l
}

// NumPixels returns NumCols * NumRows.
func (l *Landmark) NumPixels() int {
	return int(l.NumCols) * int(l.NumRows)
}

// SetID fills the id field from s, right-padding with ASCII '0' and
// truncating past IDSize bytes.
func (l *Landmark) SetID(s string) {
	padID(&l.ID, []byte(s))
}

func padID(id *[IDSize]byte, b []byte) {
	n := copy(id[:], b)
	for i := n; i < IDSize; i++ {
		id[i] = '0'
	}
}

// checkRasters verifies the raster slices match the header dimensions.
func (l *Landmark) checkRasters() error {
	if len(l.SRM) != l.NumPixels() || len(l.Ele) != l.NumPixels() {
		return fmt.Errorf("%w: %dx%d header with %d srm and %d ele values",
			ErrDimensionMismatch, l.NumCols, l.NumRows, len(l.SRM), len(l.Ele))
	}
	return nil
}

// Info returns the header summary in the same layout as the ASCII
// sidecar files written by the original mapping tools.
func (l *Landmark) Info() string {
	return fmt.Sprintf("LMK_BODY %d\n", l.Body) +
		fmt.Sprintf("LMK_ID %s\n", l.ID[:]) +
		fmt.Sprintf("LMK_SIZE %d %d\n", l.NumCols, l.NumRows) +
		fmt.Sprintf("LMK_RESOLUTION %f\n", l.Resolution) +
		fmt.Sprintf("LMK_ANCHOR_POINT %f %f %f\n", l.AnchorPoint[0], l.AnchorPoint[1], l.AnchorPoint[2]) +
		fmt.Sprintf("LMK_ANCHOR_PIXEL %f %f\n", l.AnchorCol, l.AnchorRow) +
		fmt.Sprintf("LMK_WORLD_2_MAP_ROT %f %f %f\n", l.MapRWorld[0][0], l.MapRWorld[0][1], l.MapRWorld[0][2]) +
		fmt.Sprintf("LMK_WORLD_2_MAP_ROT %f %f %f\n", l.MapRWorld[1][0], l.MapRWorld[1][1], l.MapRWorld[1][2]) +
		fmt.Sprintf("LMK_WORLD_2_MAP_ROT %f %f %f\n", l.MapRWorld[2][0], l.MapRWorld[2][1], l.MapRWorld[2][2])
}
