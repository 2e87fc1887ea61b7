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

// Rect is an axis-aligned sub-rectangle of the grid, expressed as a
// half-open index range: rows [R0, R1) and columns [C0, C1).
type Rect struct {
	R0, R1, C0, C1 int
}

// Rows returns the number of rows spanned.
func (r Rect) Rows() int { return r.R1 - r.R0 }

// Cols returns the number of columns spanned.
func (r Rect) Cols() int { return r.C1 - r.C0 }

// activeHalo is the fixed halo width (in cells) by which the tight bounding
// box of moving cells is expanded before being clamped to the domain.
const activeHalo = 2

// computeActiveRect finds the tight bounding box of cells with h > hMin,
// expands it by activeHalo cells on every side, and clamps it to the
// domain. It reports ok=false when no cell is above the threshold, in
// which case the step is a no-op (spec §4.1). hMin may be a scalar or a
// per-cell override.
func computeActiveRect(h *Field, hMin Param) (rect Rect, ok bool) {
	ny, nx := h.Dims()
	r0, r1, c0, c1 := -1, -1, -1, -1
	for i := 0; i < ny; i++ {
		for j := 0; j < nx; j++ {
			if h.At(i, j) > hMin.At(i, j) {
				if !ok {
					r0, r1, c0, c1 = i, i, j, j
					ok = true
					continue
				}
				if i < r0 {
					r0 = i
				}
				if i > r1 {
					r1 = i
				}
				if j < c0 {
					c0 = j
				}
				if j > c1 {
					c1 = j
				}
			}
		}
	}
	if !ok {
		return Rect{}, false
	}
	r0 -= activeHalo
	r1 += activeHalo
	c0 -= activeHalo
	c1 += activeHalo
	if r0 < 0 {
		r0 = 0
	}
	if c0 < 0 {
		c0 = 0
	}
	if r1 > ny-1 {
		r1 = ny - 1
	}
	if c1 > nx-1 {
		c1 = nx - 1
	}
	return Rect{R0: r0, R1: r1 + 1, C0: c0, C1: c1 + 1}, true
}
