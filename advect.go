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

import (
	"math"

	"github.com/ctessum/atmos/advect"
	"gonum.org/v1/gonum/floats"
)

// velEps guards the h-in-denominator divisions (spec §4.2) used to turn
// momentum per unit area into a nodal velocity.
const velEps = 1e-10

// faceVelocities computes nodal velocities u = uh/max(h,ε), v = vh/max(h,ε)
// and averages them onto cell faces. uFace[i,j] is the velocity at the face
// to the right of column j (between columns j and j+1); the last column's
// face velocity is forced to zero (no cell beyond the view). vFace[i,j] is
// the velocity at the face below row i; the last row's face velocity is
// forced to zero symmetrically.
func faceVelocities(hv, uhv, vhv View) (uFace, vFace buffer) {
	nr, nc := hv.Dims()
	u := newBuffer(nr, nc)
	v := newBuffer(nr, nc)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			h := hv.At(i, j)
			if h < velEps {
				h = velEps
			}
			u.set(i, j, uhv.At(i, j)/h)
			v.set(i, j, vhv.At(i, j)/h)
		}
	}
	uFace = newBuffer(nr, nc)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc-1; j++ {
			uFace.set(i, j, (u.at(i, j)+u.at(i, j+1))/2)
		}
	}
	vFace = newBuffer(nr, nc)
	for j := 0; j < nc; j++ {
		for i := 0; i < nr-1; i++ {
			vFace.set(i, j, (v.at(i, j)+v.at(i+1, j))/2)
		}
	}
	return uFace, vFace
}

// cflTimestep returns the CFL-bounded time step. When cflSupplied is false
// it returns dtMax unmodified (no CFL capping). When the velocity field is
// empty (every face velocity zero), the CFL estimate is +Inf and dtMax is
// returned.
func cflTimestep(uFace, vFace buffer, dx, dy, cfl, dtMax float64, cflSupplied bool) float64 {
	if !cflSupplied {
		return dtMax
	}
	combined := make([]float64, len(uFace.d))
	for k := range combined {
		combined[k] = math.Abs(uFace.d[k])/dx + math.Abs(vFace.d[k])/dy
	}
	maxVal := floats.Max(combined)
	if maxVal <= 0 {
		return dtMax
	}
	dtCFL := cfl / maxVal
	if dtCFL < dtMax {
		return dtCFL
	}
	return dtMax
}

// advectOne performs one donor-cell advection sweep of a single transported
// quantity q, writing the updated values into qNew. west/east/north/south
// face velocities follow the same upstream convention as
// github.com/ctessum/atmos/advect.UpwindFlux: a positive velocity takes the
// upstream value from the cell on the negative side of the face, a
// negative velocity from the positive side. Flux through the outer edges
// of the view (the active rectangle, already expanded by its halo) is zero,
// matching the solver's closed-boundary convention.
func advectOne(qOld, qNew View, uFace, vFace buffer, dx, dy, dt float64) {
	nr, nc := uFace.nr, uFace.nc
	rowFanOut(nr, func(r0, r1 int) {
		advectRows(qOld, qNew, uFace, vFace, dx, dy, dt, r0, r1, nr, nc)
	})
}

func advectRows(qOld, qNew View, uFace, vFace buffer, dx, dy, dt float64, r0, r1, nr, nc int) {
	for i := r0; i < r1; i++ {
		for j := 0; j < nc; j++ {
			var westVel, northVel float64
			if j > 0 {
				westVel = uFace.at(i, j-1)
			}
			if i > 0 {
				northVel = vFace.at(i-1, j)
			}
			eastVel := uFace.at(i, j)
			southVel := vFace.at(i, j)

			var qW, qE, qN, qS float64
			if j > 0 {
				qW = qOld.At(i, j-1)
			}
			if j < nc-1 {
				qE = qOld.At(i, j+1)
			}
			if i > 0 {
				qN = qOld.At(i-1, j)
			}
			if i < nr-1 {
				qS = qOld.At(i+1, j)
			}

			here := qOld.At(i, j)
			flux := advect.UpwindFlux(westVel, qW, here, dx)
			flux -= advect.UpwindFlux(eastVel, here, qE, dx)
			flux += advect.UpwindFlux(northVel, qN, here, dy)
			flux -= advect.UpwindFlux(southVel, here, qS, dy)

			qNew.Set(i, j, here+flux*dt)
		}
	}
}
