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

import "math"

// ColRowElevationToWorld maps pixel (col, row) at elevation ele to a
// world-frame point.
func (l *Landmark) ColRowElevationToWorld(col, row, ele float64) [3]float64 {
	g := DeriveGeometry(l)
	x, y := applyAffine23(g.ColRow2MapXY, col, row)
	p := mult331(g.WorldRMap, [3]float64{x, y, ele})
	for i := 0; i < 3; i++ {
		p[i] += l.AnchorPoint[i]
	}
	return p
}

// ColRowToWorld maps pixel (col, row) to a world-frame point on the
// terrain surface, interpolating the elevation raster. When the
// interpolated elevation is a no-data hole it is treated as zero and
// ok is false.
func (l *Landmark) ColRowToWorld(col, row float64) (p [3]float64, ok bool) {
	ele := l.InterpolateElevation(col, row)
	ok = !math.IsNaN(ele)
	if !ok {
		ele = 0
	}
	return l.ColRowElevationToWorld(col, row, ele), ok
}

// WorldToColRowEle maps a world-frame point to pixel coordinates and
// elevation above the map plane.
func (l *Landmark) WorldToColRowEle(p [3]float64) (col, row, ele float64) {
	g := DeriveGeometry(l)
	var pw [3]float64
	for i := 0; i < 3; i++ {
		pw[i] = p[i] - l.AnchorPoint[i]
	}
	pm := mult331(l.MapRWorld, pw)
	ele = pm[2]
	col, row = applyAffine23(g.MapXY2ColRow, pm[0], pm[1])
	return col, row, ele
}

// InterpolateElevation samples the elevation raster at fractional
// pixel (col, row) with bilinear interpolation. Returns NaN out of
// bounds or when any contributing sample is a no-data hole. Samples at
// integral coordinates are returned directly, and coordinates within
// the last fractional pixel of an edge fall back to the edge sample on
// that axis.
func (l *Landmark) InterpolateElevation(col, row float64) float64 {
	cols, rows := int(l.NumCols), int(l.NumRows)

	rc, rr := math.Round(col), math.Round(row)
	if rc < 0 || rr < 0 || rc >= float64(cols) || rr >= float64(rows) {
		return math.NaN()
	}
	if (col == rc && row == rr) || cols < 2 || rows < 2 {
		return float64(l.Ele[int(rr)*cols+int(rc)])
	}
	if col > float64(cols-1) {
		col = rc
	}
	if row > float64(rows-1) {
		row = rr
	}

	ix, iy := int(col), int(row)
	// Keep the 2x2 neighborhood inside the raster when sitting on the
	// last sample of an axis.
	if ix >= cols-1 {
		ix = cols - 2
	}
	if iy >= rows-1 {
		iy = rows - 2
	}
	dx, dy := col-float64(ix), row-float64(iy)

	p00 := float64(l.Ele[iy*cols+ix])
	p01 := float64(l.Ele[iy*cols+ix+1])
	p10 := float64(l.Ele[(iy+1)*cols+ix])
	p11 := float64(l.Ele[(iy+1)*cols+ix+1])
	if math.IsNaN(p00) || math.IsNaN(p01) || math.IsNaN(p10) || math.IsNaN(p11) {
		return math.NaN()
	}

	return (1-dy)*((1-dx)*p00+dx*p01) + dy*((1-dx)*p10+dx*p11)
}

// InterpolateSRM samples the reflectance raster at fractional pixel
// (col, row), bilinear away from the edges and nearest-sample at them.
// ok is false out of bounds.
func (l *Landmark) InterpolateSRM(col, row float64) (val uint8, ok bool) {
	cols, rows := int(l.NumCols), int(l.NumRows)

	if col < 0 || row < 0 || col >= float64(cols) || row >= float64(rows) {
		return 0, false
	}
	if col < 1 || col >= float64(cols-1) || row < 1 || row >= float64(rows-1) {
		return l.SRM[int(row)*cols+int(col)], true
	}

	ix, iy := int(col), int(row)
	dx, dy := col-float64(ix), row-float64(iy)

	p00 := float64(l.SRM[iy*cols+ix])
	p01 := float64(l.SRM[iy*cols+ix+1])
	p10 := float64(l.SRM[(iy+1)*cols+ix])
	p11 := float64(l.SRM[(iy+1)*cols+ix+1])

	bv := (1-dy)*((1-dx)*p00+dx*p01) + dy*((1-dx)*p10+dx*p11)
	return uint8(math.Round(bv)), true
}
