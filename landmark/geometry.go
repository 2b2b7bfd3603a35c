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

// Geometry holds the quantities derived from a landmark's primary
// geometry fields. The legacy v1 format stores these redundantly; the
// canonical format recomputes them on demand. ColRow2MapXY and
// MapXY2ColRow are affine 2x3 transforms applied to (col, row, 1) and
// (x, y, 1) respectively.
type Geometry struct {
	WorldRMap    [3][3]float64
	ColRow2MapXY [2][3]float64
	MapXY2ColRow [2][3]float64
	NormalVector [3]float64
	PlaneParams  [4]float64
}

// DeriveGeometry computes the derived geometry of l. Resolution must
// be positive for the pixel transforms to be defined.
//
// ColRow2MapXY maps pixel (col,row) to map-plane (x,y) in meters: the
// row axis sign is inverted because raster rows grow downward while
// map y grows upward, and the anchor pixel maps to (0,0). MapXY2ColRow
// is its inverse on the linear part. NormalVector is the map frame's
// up axis expressed in world coordinates, and PlaneParams are the
// coefficients of the plane n·p + d = 0 through the anchor point.
func DeriveGeometry(l *Landmark) Geometry {
	var g Geometry

	res := l.Resolution
	g.ColRow2MapXY = [2][3]float64{
		{res, 0, -res * l.AnchorCol},
		{0, -res, res * l.AnchorRow},
	}
	g.MapXY2ColRow = [2][3]float64{
		{1 / res, 0, l.AnchorCol},
		{0, -1 / res, l.AnchorRow},
	}

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			g.WorldRMap[i][j] = l.MapRWorld[j][i]
		}
	}
	for i := 0; i < 3; i++ {
		g.NormalVector[i] = g.WorldRMap[i][2]
	}

	copy(g.PlaneParams[:3], g.NormalVector[:])
	g.PlaneParams[3] = -dot3(g.NormalVector, l.AnchorPoint)
	return g
}

func dot3(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// mult331 multiplies a 3x3 matrix by a 3-vector.
func mult331(m [3][3]float64, v [3]float64) [3]float64 {
	var out [3]float64
	for i := 0; i < 3; i++ {
		out[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}
	return out
}

// applyAffine23 applies a 2x3 affine transform to (x, y, 1).
func applyAffine23(m [2][3]float64, x, y float64) (float64, float64) {
	return m[0][0]*x + m[0][1]*y + m[0][2],
		m[1][0]*x + m[1][1]*y + m[1][2]
}
