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
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegacyExportImport(t *testing.T) {
	orig := testLandmark()
	path := filepath.Join(t.TempDir(), "wy_v1.lmk")

	require.NoError(t, SaveLegacy(path, orig, 44.5, -110.2, 6371000))
	loaded, err := LoadLegacy(path, "")
	require.NoError(t, err)

	// Geometry survives the legacy detour.
	assert.Equal(t, orig.NumCols, loaded.NumCols)
	assert.Equal(t, orig.NumRows, loaded.NumRows)
	assert.Equal(t, orig.AnchorCol, loaded.AnchorCol)
	assert.Equal(t, orig.AnchorRow, loaded.AnchorRow)
	assert.Equal(t, orig.Resolution, loaded.Resolution)
	assert.Equal(t, orig.AnchorPoint, loaded.AnchorPoint)
	assert.Equal(t, orig.MapRWorld, loaded.MapRWorld)
	assert.Equal(t, orig.SRM, loaded.SRM)
	assert.Equal(t, orig.Ele, loaded.Ele)

	// The id does not: v1 files carry a numeric id which is always
	// written as 1 and re-imported as padded decimal text.
	assert.NotEqual(t, orig.ID, loaded.ID)
	assert.Equal(t, "1", string(loaded.ID[:1]))
	for i := 1; i < IDSize; i++ {
		assert.EqualValues(t, '0', loaded.ID[i], "id pad byte %d", i)
	}
}

func TestLegacyLayout(t *testing.T) {
	l := testLandmark()
	buf, err := EncodeLegacy(l, 0, 0, 0)
	require.NoError(t, err)

	require.Len(t, buf, 312+4+4*4)

	// body, numeric id, num_cols, num_rows little-endian.
	assert.EqualValues(t, BodyMoon, binary.LittleEndian.Uint32(buf[0:]))
	assert.EqualValues(t, 1, binary.LittleEndian.Uint32(buf[4:]))
	assert.EqualValues(t, 2, binary.LittleEndian.Uint32(buf[8:]))
	assert.EqualValues(t, 2, binary.LittleEndian.Uint32(buf[12:]))

	// resolution is the sixth scalar.
	res := math.Float64frombits(binary.LittleEndian.Uint64(buf[16+5*8:]))
	assert.Equal(t, 10.0, res)

	// col_row2mapxy leads the derived block: [res, 0, -res*anchor_col, ...].
	m00 := math.Float64frombits(binary.LittleEndian.Uint64(buf[88:]))
	m02 := math.Float64frombits(binary.LittleEndian.Uint64(buf[88+2*8:]))
	assert.Equal(t, 10.0, m00)
	assert.Equal(t, -10.0, m02)

	// srm raster verbatim at 312.
	assert.Equal(t, []byte{0, 1, 2, 3}, buf[312:316])
}

func TestLegacyBodyOverride(t *testing.T) {
	l := testLandmark()
	buf, err := EncodeLegacy(l, 0, 0, 0)
	require.NoError(t, err)

	loaded, err := DecodeLegacy(buf, "Earth")
	require.NoError(t, err)
	assert.EqualValues(t, BodyEarth, loaded.Body)

	_, err = DecodeLegacy(buf, "Pluto")
	assert.Error(t, err)
}

func TestLegacyDerivedRegionsNotValidated(t *testing.T) {
	l := testLandmark()
	buf, err := EncodeLegacy(l, 0, 0, 0)
	require.NoError(t, err)

	// Corrupt the stored derived matrices; import must not care.
	for i := legOffColRow2XY; i < legOffMapRWorld; i++ {
		buf[i] = 0xff
	}
	for i := legOffNormal; i < legacyHeader; i++ {
		buf[i] = 0xff
	}

	loaded, err := DecodeLegacy(buf, "")
	require.NoError(t, err)
	assert.Equal(t, l.MapRWorld, loaded.MapRWorld)
	assert.Equal(t, l.AnchorPoint, loaded.AnchorPoint)
}

func TestLegacyTruncated(t *testing.T) {
	l := testLandmark()
	buf, err := EncodeLegacy(l, 0, 0, 0)
	require.NoError(t, err)

	_, err = DecodeLegacy(buf[:200], "")
	assert.ErrorIs(t, err, ErrTruncated)

	_, err = DecodeLegacy(buf[:len(buf)-2], "")
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestLegacyHugeDimensions(t *testing.T) {
	buf := make([]byte, legacyHeader)
	binary.LittleEndian.PutUint32(buf[8:], 2000000000)
	binary.LittleEndian.PutUint32(buf[12:], 1000000000)
	_, err := DecodeLegacy(buf, "")
	assert.ErrorIs(t, err, ErrTruncated)

	binary.LittleEndian.PutUint32(buf[8:], 0xffffffff) // num_cols = -1
	_, err = DecodeLegacy(buf, "")
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestLegacyLatLonRadiusNotRetained(t *testing.T) {
	orig := testLandmark()
	buf, err := EncodeLegacy(orig, 12.5, 80.25, 1737400)
	require.NoError(t, err)

	loaded, err := DecodeLegacy(buf, "")
	require.NoError(t, err)

	// Re-export with defaults: the lat/lon/radius scalars come back
	// zeroed, everything else byte-identical.
	again, err := EncodeLegacy(loaded, 0, 0, 0)
	require.NoError(t, err)
	assert.NotEqual(t, buf, again)

	for i := range again {
		if i >= legOffScalars+2*8 && i < legOffScalars+5*8 {
			continue // lat, lon, radius
		}
		assert.Equal(t, buf[i], again[i], "byte %d", i)
	}
}
