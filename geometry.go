/*
Copyright © 2026 the talus authors.
This file is part of talus.

talus is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

talus is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.
*/

package talus

import "math"

// Geometry holds the bed-derived quantities that are computed once at
// Solver construction and never change afterward: the central-difference
// bed slopes and the bed-normal cosine.
type Geometry struct {
	DbDx, DbDy *Field
	CosBeta    *Field
}

// newGeometry computes db/dx, db/dy and cos β = 1/sqrt(1+(db/dx)^2+(db/dy)^2)
// from the bed elevation b, using mirrored (reflect-without-repeat)
// boundary indices so that edge cells get a well-defined central difference
// without any special-cased formula.
func newGeometry(b *Field, dx, dy float64) *Geometry {
	ny, nx := b.Dims()
	dbdx := NewField(ny, nx)
	dbdy := NewField(ny, nx)
	cosBeta := NewField(ny, nx)
	for i := 0; i < ny; i++ {
		for j := 0; j < nx; j++ {
			jp := mirror(j+1, nx)
			jm := mirror(j-1, nx)
			ip := mirror(i+1, ny)
			im := mirror(i-1, ny)
			sx := (b.At(i, jp) - b.At(i, jm)) / (2 * dx)
			sy := (b.At(ip, j) - b.At(im, j)) / (2 * dy)
			dbdx.Set(i, j, sx)
			dbdy.Set(i, j, sy)
			cosBeta.Set(i, j, 1/math.Sqrt(1+sx*sx+sy*sy))
		}
	}
	return &Geometry{DbDx: dbdx, DbDy: dbdy, CosBeta: cosBeta}
}

// geometryView bundles the three bed-derived Views over a single active
// rectangle so the stencil kernels can pass one value instead of three.
type geometryView struct {
	dbdx, dbdy, cosBeta View
}

// View returns the Views of the geometry fields restricted to rect.
func (g *Geometry) View(rect Rect) geometryView {
	return geometryView{
		dbdx:    g.DbDx.View(rect.R0, rect.C0, rect.Rows(), rect.Cols()),
		dbdy:    g.DbDy.View(rect.R0, rect.C0, rect.Rows(), rect.Cols()),
		cosBeta: g.CosBeta.View(rect.R0, rect.C0, rect.Rows(), rect.Cols()),
	}
}
