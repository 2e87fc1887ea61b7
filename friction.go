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

// frictionEps guards the M-in-denominator rescaling division at the end of
// the friction update.
const frictionEps = 1e-10

// applyFriction applies the two-regime (Coulomb/Voellmy) friction update
// (spec §4.7) in place over uhv, vhv, whv, and writes the resulting flow
// status (0 stopped, 1 Coulomb, 2 Voellmy) into statv.
//
// Regime selection: when v_c > 0, a cell uses the Voellmy formula iff
// h > h_min and M >= v_c·h·(h·cosβ)^(1/3); otherwise it uses Coulomb. When
// v_c <= 0 the spec's "conventional Voellmy everywhere" note means the
// Voellmy formula is always the one actually applied for h > h_min cells;
// the diagnostic stat label, however, still distinguishes Voellmy from
// Coulomb after the fact using the kinematic test
// M_new^2 > μ·p·ξ·h^2/g, exactly as spec §9's Open Question selector
// specifies, so that stat remains useful for diagnosing the flow regime
// even though the v_c<=0 update path is uniform.
func applyFriction(hv View, pres pressureResult, hcdt buffer, geo geometryView, params Params, rect Rect, dt float64, uhv, vhv, whv View, statv func(li, lj, v int)) {
	nr, nc := hv.Dims()
	rowFanOut(nr, func(r0, r1 int) {
		applyFrictionRows(hv, pres, hcdt, geo, params, rect, dt, uhv, vhv, whv, statv, r0, r1, nc)
	})
}

func applyFrictionRows(hv View, pres pressureResult, hcdt buffer, geo geometryView, params Params, rect Rect, dt float64, uhv, vhv, whv View, statv func(li, lj, v int), r0, r1, nc int) {
	for li := r0; li < r1; li++ {
		for lj := 0; lj < nc; lj++ {
			gi, gj := rect.R0+li, rect.C0+lj
			h := hv.At(li, lj)
			uh := uhv.At(li, lj)
			vh := vhv.At(li, lj)
			wh := whv.At(li, lj)
			m := math.Sqrt(uh*uh + vh*vh + wh*wh)

			cosBeta := geo.cosBeta.At(li, lj)
			mu := params.Mu.At(gi, gj)
			xi := params.Xi.At(gi, gj)
			vc := params.Vc.At(gi, gj)
			hMin := params.HMin.At(gi, gj)
			g := params.G.At(gi, gj)

			p := pres.p.at(li, lj)
			if params.Cent {
				p = p + hcdt.at(li, lj)*cosBeta/dt
				if p < 0 {
					p = 0
				}
			}

			moving := h > hMin
			voellmyMask := false
			if moving {
				if vc > 0 {
					threshold := vc * h * math.Cbrt(h*cosBeta)
					voellmyMask = m >= threshold
				} else {
					voellmyMask = true // "always on" per spec §4.7/§9
				}
			}

			var mNew float64
			if moving {
				if voellmyMask {
					f := xi * h * h * cosBeta / (2 * g * dt)
					mNew = math.Sqrt(f*f+2*f*m) - f
				} else {
					mNew = m - mu*p/cosBeta*dt
				}
				if mNew < 0 {
					mNew = 0
				}
			}

			stat := 0
			if moving && mNew > 0 {
				if vc > 0 {
					if voellmyMask {
						stat = 2
					} else {
						stat = 1
					}
				} else {
					if mNew*mNew > mu*p*xi*h*h/g {
						stat = 2
					} else {
						stat = 1
					}
				}
			} else {
				mNew = 0
			}

			denom := m
			if denom < frictionEps {
				denom = frictionEps
			}
			scale := mNew / denom

			uhv.Set(li, lj, uh*scale)
			vhv.Set(li, lj, vh*scale)
			whv.Set(li, lj, wh*scale)
			statv(li, lj, stat)
		}
	}
}
