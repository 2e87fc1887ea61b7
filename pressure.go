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

// pressureAndAccelerate selects the pressure model per cell (spec §4.6) —
// the "original", denominator-limited pressure when d_min > 0, or the
// "modified" g·h·cos²β pressure (the default, recommended mode) when
// d_min == 0 — and applies the pressure-gradient acceleration to momentum.
// It returns the per-cell pressure p, which the friction step (spec §4.7)
// reuses, and the dot product s· of the surface and bed gradients.
type pressureResult struct {
	p, sdot buffer
}

func pressureAndAccelerate(hv View, geo geometryView, dsdx, dsdy buffer, params Params, rect Rect, dt float64, uhv, vhv, whv View) pressureResult {
	nr, nc := hv.Dims()
	p := newBuffer(nr, nc)
	sdot := newBuffer(nr, nc)
	for li := 0; li < nr; li++ {
		for lj := 0; lj < nc; lj++ {
			gi, gj := rect.R0+li, rect.C0+lj
			h := hv.At(li, lj)
			dbdx := geo.dbdx.At(li, lj)
			dbdy := geo.dbdy.At(li, lj)
			cosBeta := geo.cosBeta.At(li, lj)
			g := params.G.At(gi, gj)
			dmin := params.DMin.At(gi, gj)

			sd := dsdx.at(li, lj)*dbdx + dsdy.at(li, lj)*dbdy

			var pv float64
			if dmin > 0 {
				denom := 1 + sd
				if denom < dmin {
					denom = dmin
				}
				pv = g * h / denom
			} else {
				pv = g * h * cosBeta * cosBeta
			}

			p.set(li, lj, pv)
			sdot.set(li, lj, sd)

			uhv.Set(li, lj, uhv.At(li, lj)-dt*pv*dsdx.at(li, lj))
			vhv.Set(li, lj, vhv.At(li, lj)-dt*pv*dsdy.at(li, lj))
			whv.Set(li, lj, whv.At(li, lj)-dt*pv*sd)
		}
	}
	return pressureResult{p: p, sdot: sdot}
}
