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

// reprojectOne applies the centripetal correction (spec §4.4) to a single
// cell's momentum, rotating it to be parallel to the local bed plane while
// preserving its magnitude. It returns the updated (uh, vh, wh) and hcdt,
// which is retained for the friction step's effective-pressure correction.
func reprojectOne(uh, vh, wh, dbdx, dbdy, cosBeta float64) (uhOut, vhOut, whOut, hcdt float64) {
	m := math.Sqrt(uh*uh + vh*vh + wh*wh)

	hcdt = (uh*dbdx + vh*dbdy - wh) * cosBeta
	uhOut = uh - hcdt*dbdx*cosBeta
	vhOut = vh - hcdt*dbdy*cosBeta
	whOut = wh + hcdt*cosBeta

	mPrime := math.Sqrt(uhOut*uhOut + vhOut*vhOut + whOut*whOut)
	if mPrime > 0 {
		scale := m / mPrime
		uhOut *= scale
		vhOut *= scale
		whOut *= scale
	}
	return uhOut, vhOut, whOut, hcdt
}
