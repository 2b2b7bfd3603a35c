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
	"fmt"
	"io"
	"math"
)

// Default tolerances for the numeric fields. Rotation entries pick up
// slightly more round-trip noise than other fields, so map_r_world
// gets a coarser absolute-only tolerance.
const (
	relTol         = 1e-5
	absTol         = 1e-8
	rotationAbsTol = 1e-4
)

// withinTol reports |a-b| <= atol + rtol*|b|. NaN never compares
// equal.
func withinTol(a, b, rtol, atol float64) bool {
	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// Equal reports whether a and b hold the same landmark: exact on the
// identity and dimension fields, default tolerances on the numeric
// fields.
func Equal(a, b *Landmark) bool {
	return equalTol(a, b, relTol, absTol)
}

// ApproxEqual is Equal with the elevation raster compared using the
// absolute tolerance eleTol only. Use it when the two records came
// from different numerical pipelines and small elevation drift is
// expected.
func ApproxEqual(a, b *Landmark, eleTol float64) bool {
	return equalTol(a, b, 0, eleTol)
}

func equalTol(a, b *Landmark, eleRtol, eleAtol float64) bool {
	return a.Body == b.Body &&
		a.ID == b.ID &&
		a.NumCols == b.NumCols &&
		a.NumRows == b.NumRows &&
		a.AnchorCol == b.AnchorCol &&
		a.AnchorRow == b.AnchorRow &&
		a.Resolution == b.Resolution &&
		anchorPointsClose(a, b) &&
		rotationsClose(a, b) &&
		srmClose(a, b) &&
		eleClose(a, b, eleRtol, eleAtol)
}

func anchorPointsClose(a, b *Landmark) bool {
	for i := 0; i < 3; i++ {
		if !withinTol(a.AnchorPoint[i], b.AnchorPoint[i], relTol, absTol) {
			return false
		}
	}
	return true
}

func rotationsClose(a, b *Landmark) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !withinTol(a.MapRWorld[i][j], b.MapRWorld[i][j], 0, rotationAbsTol) {
				return false
			}
		}
	}
	return true
}

func srmClose(a, b *Landmark) bool {
	if len(a.SRM) != len(b.SRM) {
		return false
	}
	for i := range a.SRM {
		if !withinTol(float64(a.SRM[i]), float64(b.SRM[i]), relTol, absTol) {
			return false
		}
	}
	return true
}

func eleClose(a, b *Landmark, rtol, atol float64) bool {
	if len(a.Ele) != len(b.Ele) {
		return false
	}
	for i := range a.Ele {
		if !withinTol(float64(a.Ele[i]), float64(b.Ele[i]), rtol, atol) {
			return false
		}
	}
	return true
}

// Diagnose writes a line to w for every field in which a and b
// differ under the Equal tolerances. It is a debugging aid only and
// never fails; comparison results should come from Equal or
// ApproxEqual.
func Diagnose(w io.Writer, a, b *Landmark) {
	diagnose(w, a, b, relTol, absTol)
}

// DiagnoseApprox is Diagnose with the elevation raster judged by the
// absolute tolerance eleTol, so the report agrees with ApproxEqual.
func DiagnoseApprox(w io.Writer, a, b *Landmark, eleTol float64) {
	diagnose(w, a, b, 0, eleTol)
}

func diagnose(w io.Writer, a, b *Landmark, eleRtol, eleAtol float64) {
	if equalTol(a, b, eleRtol, eleAtol) {
		fmt.Fprintln(w, "records are equal")
		return
	}
	if a.Body != b.Body {
		fmt.Fprintf(w, "body: %d != %d\n", a.Body, b.Body)
	}
	if a.ID != b.ID {
		fmt.Fprintf(w, "id: %q != %q\n", a.ID[:], b.ID[:])
	}
	if a.NumCols != b.NumCols {
		fmt.Fprintf(w, "num_cols: %d != %d\n", a.NumCols, b.NumCols)
	}
	if a.NumRows != b.NumRows {
		fmt.Fprintf(w, "num_rows: %d != %d\n", a.NumRows, b.NumRows)
	}
	if a.AnchorCol != b.AnchorCol {
		fmt.Fprintf(w, "anchor_col: %g != %g\n", a.AnchorCol, b.AnchorCol)
	}
	if a.AnchorRow != b.AnchorRow {
		fmt.Fprintf(w, "anchor_row: %g != %g\n", a.AnchorRow, b.AnchorRow)
	}
	if a.Resolution != b.Resolution {
		fmt.Fprintf(w, "resolution: %g != %g\n", a.Resolution, b.Resolution)
	}
	if !anchorPointsClose(a, b) {
		fmt.Fprintf(w, "anchor_point: %v != %v\n", a.AnchorPoint, b.AnchorPoint)
	}
	if !rotationsClose(a, b) {
		fmt.Fprintf(w, "map_r_world: %v != %v\n", a.MapRWorld, b.MapRWorld)
	}
	if !srmClose(a, b) {
		fmt.Fprintln(w, "srm rasters differ")
	}
	if !eleClose(a, b, eleRtol, eleAtol) {
		fmt.Fprintln(w, "ele rasters differ")
	}
}
