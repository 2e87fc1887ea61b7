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

// surfEps is the small floor added to both thickness weights so the
// reconstruction's denominator never vanishes on a dry face (spec §4.5).
const surfEps = 1e-10

// surfaceGradients computes the thickness-weighted, locally-switched free
// surface gradients ds/dx and ds/dy (spec §4.5) from the post-advection
// thickness hv and the (immutable) bed bv, both views over the active
// rectangle.
func surfaceGradients(bv, hv View, dx, dy float64) (dsdx, dsdy buffer) {
	nr, nc := hv.Dims()

	s := newBuffer(nr, nc)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			s.set(i, j, bv.At(i, j)+hv.At(i, j))
		}
	}

	dsdx = gradientAlongX(s, hv, nr, nc, dx)
	dsdy = gradientAlongY(s, hv, nr, nc, dy)
	return dsdx, dsdy
}

// gradientAlongX reconstructs ds/dx one row at a time.
func gradientAlongX(s buffer, hv View, nr, nc int, dx float64) buffer {
	out := newBuffer(nr, nc)
	rowFanOut(nr, func(r0, r1 int) {
		gradientAlongXRows(s, hv, out, nc, dx, r0, r1)
	})
	return out
}

func gradientAlongXRows(s buffer, hv View, out buffer, nc int, dx float64, r0, r1 int) {
	dsFace := make([]float64, nc+1) // dsFace[k] is the face gradient between column k-1 and k; 0 and nc are zero-padded
	hl := make([]float64, nc)
	hr := make([]float64, nc)
	for i := r0; i < r1; i++ {
		dsFace[0] = 0
		dsFace[nc] = 0
		for k := 1; k < nc; k++ {
			dsFace[k] = (s.at(i, k) - s.at(i, k-1)) / dx
		}
		for j := 0; j < nc; j++ {
			if j < nc-1 {
				hr[j] = (hv.At(i, j) + hv.At(i, j+1)) / 2
			} else {
				hr[j] = 0
			}
		}
		hl[0] = 0
		for j := 1; j < nc; j++ {
			hl[j] = hr[j-1]
		}
		for j := 0; j < nc; j++ {
			left := dsFace[j]
			right := dsFace[j+1]
			locMax := left > 0 && right < 0
			l, r := hl[j], hr[j]
			if locMax {
				if left < -right {
					l = 0
				} else {
					r = 0
				}
			}
			l += surfEps
			r += surfEps
			out.set(i, j, (left*l+right*r)/(l+r))
		}
	}
}

// gradientAlongY reconstructs ds/dy one column at a time, mirroring
// gradientAlongX with rows and columns exchanged.
func gradientAlongY(s buffer, hv View, nr, nc int, dy float64) buffer {
	out := newBuffer(nr, nc)
	rowFanOut(nc, func(c0, c1 int) {
		gradientAlongYCols(s, hv, out, nr, dy, c0, c1)
	})
	return out
}

func gradientAlongYCols(s buffer, hv View, out buffer, nr int, dy float64, c0, c1 int) {
	dsFace := make([]float64, nr+1)
	hu := make([]float64, nr) // thickness half-sum on the upper (north) side
	hd := make([]float64, nr) // thickness half-sum on the lower (south) side
	for j := c0; j < c1; j++ {
		dsFace[0] = 0
		dsFace[nr] = 0
		for k := 1; k < nr; k++ {
			dsFace[k] = (s.at(k, j) - s.at(k-1, j)) / dy
		}
		for i := 0; i < nr; i++ {
			if i < nr-1 {
				hd[i] = (hv.At(i, j) + hv.At(i+1, j)) / 2
			} else {
				hd[i] = 0
			}
		}
		hu[0] = 0
		for i := 1; i < nr; i++ {
			hu[i] = hd[i-1]
		}
		for i := 0; i < nr; i++ {
			upFace := dsFace[i]
			downFace := dsFace[i+1]
			locMax := upFace > 0 && downFace < 0
			u, d := hu[i], hd[i]
			if locMax {
				if upFace < -downFace {
					u = 0
				} else {
					d = 0
				}
			}
			u += surfEps
			d += surfEps
			out.set(i, j, (upFace*u+downFace*d)/(u+d))
		}
	}
}
