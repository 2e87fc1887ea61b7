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
	"fmt"
	"math"
)

// Solver owns the full state of a single avalanche simulation: the fixed
// bed elevation and derived geometry, the evolving thickness and momentum
// fields, the diagnostic flow-status field, and the rheology/numerical
// parameters. A Solver is not safe for concurrent use by multiple
// goroutines; Step must be called serially.
type Solver struct {
	dx, dy float64
	geo    *Geometry
	params Params

	b    *Field
	h    *Field
	uh   *Field
	vh   *Field
	wh   *Field
	stat *Field

	diverged bool
}

// NewSolver constructs a Solver over bed elevation b and initial thickness
// h0, which must share the same shape. uh0, vh0 and wh0 supply the initial
// momentum components; a nil argument is treated as an all-zero field of
// the matching shape. dx and dy are the (uniform) cell sizes.
func NewSolver(b, h0, uh0, vh0, wh0 *Field, dx, dy float64, params Params) (*Solver, error) {
	ny, nx := b.Dims()
	if hy, hx := h0.Dims(); hy != ny || hx != nx {
		return nil, fmt.Errorf("talus: NewSolver: %w", ErrShapeMismatch)
	}
	if dx <= 0 || dy <= 0 {
		return nil, fmt.Errorf("talus: NewSolver: %w", ErrShapeMismatch)
	}
	for name, f := range map[string]*Field{"uh0": uh0, "vh0": vh0, "wh0": wh0} {
		if f == nil {
			continue
		}
		if fy, fx := f.Dims(); fy != ny || fx != nx {
			return nil, fmt.Errorf("talus: NewSolver: %s: %w", name, ErrShapeMismatch)
		}
	}
	if err := validateParams(params); err != nil {
		return nil, fmt.Errorf("talus: NewSolver: %w", err)
	}

	zeroOr := func(f *Field) *Field {
		if f != nil {
			return f.Copy()
		}
		return NewField(ny, nx)
	}

	return &Solver{
		dx:     dx,
		dy:     dy,
		geo:    newGeometry(b, dx, dy),
		params: params,
		b:      b.Copy(),
		h:      h0.Copy(),
		uh:     zeroOr(uh0),
		vh:     zeroOr(vh0),
		wh:     zeroOr(wh0),
		stat:   NewField(ny, nx),
	}, nil
}

// validateParams checks the scalar invariants spec.md §7 requires to hold
// before a step is attempted. Only scalar Params are checked; per-cell
// Param overrides are not validated.
func validateParams(p Params) error {
	if p.HMin.field == nil && p.HMin.scalar < 0 {
		return ErrInvalidParameter
	}
	if p.DMin.field == nil && p.DMin.scalar < 0 {
		return ErrInvalidParameter
	}
	if p.G.field == nil && p.G.scalar <= 0 {
		return ErrInvalidParameter
	}
	return nil
}

// Thickness returns the current thickness field. The returned Field aliases
// the Solver's internal state and must not be mutated by the caller.
func (s *Solver) Thickness() *Field { return s.h }

// Momentum returns the current momentum components (uh, vh, wh). The
// returned Fields alias the Solver's internal state and must not be
// mutated by the caller.
func (s *Solver) Momentum() (uh, vh, wh *Field) { return s.uh, s.vh, s.wh }

// Status returns the most recent per-cell flow-regime diagnostic (0
// stopped, 1 Coulomb, 2 Voellmy), valid only within the last computed
// active rectangle; cells outside it are 0.
func (s *Solver) Status() *Field { return s.stat }

// Step advances the simulation by one donor-cell time step. dtMax bounds
// the step regardless of the CFL estimate; when cfl <= 0, no CFL capping is
// applied and dtMax is used directly; cfl > 1 is rejected. Step returns the
// time step actually taken. Once a step returns ErrDiverged the Solver must
// not be used again.
func (s *Solver) Step(dtMax, cfl float64) (float64, error) {
	if s.diverged {
		return 0, fmt.Errorf("talus: Step: %w", ErrDiverged)
	}
	if dtMax <= 0 {
		return 0, fmt.Errorf("talus: Step: %w", ErrInvalidParameter)
	}
	if cfl > 1 {
		return 0, fmt.Errorf("talus: Step: %w", ErrInvalidParameter)
	}

	rect, ok := computeActiveRect(s.h, s.params.HMin)
	if !ok {
		return dtMax, nil
	}

	hv := s.h.View(rect.R0, rect.C0, rect.Rows(), rect.Cols())
	uhv := s.uh.View(rect.R0, rect.C0, rect.Rows(), rect.Cols())
	vhv := s.vh.View(rect.R0, rect.C0, rect.Rows(), rect.Cols())
	whv := s.wh.View(rect.R0, rect.C0, rect.Rows(), rect.Cols())
	bv := s.b.View(rect.R0, rect.C0, rect.Rows(), rect.Cols())
	geo := s.geo.View(rect)

	uFace, vFace := faceVelocities(hv, uhv, vhv)
	dt := cflTimestep(uFace, vFace, s.dx, s.dy, cfl, dtMax, cfl > 0)

	nr, nc := rect.Rows(), rect.Cols()
	hNew := newBuffer(nr, nc)
	uhNew := newBuffer(nr, nc)
	vhNew := newBuffer(nr, nc)
	whNew := newBuffer(nr, nc)
	hNewView := hNew.asView()
	uhNewView := uhNew.asView()
	vhNewView := vhNew.asView()
	whNewView := whNew.asView()

	advectOne(hv, hNewView, uFace, vFace, s.dx, s.dy, dt)
	advectOne(uhv, uhNewView, uFace, vFace, s.dx, s.dy, dt)
	advectOne(vhv, vhNewView, uFace, vFace, s.dx, s.dy, dt)
	advectOne(whv, whNewView, uFace, vFace, s.dx, s.dy, dt)

	// Write the advected state back into the working views: every
	// remaining phase (reprojection, pressure, friction) operates in
	// place on (uh, vh, wh, h) over the active rectangle.
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			hv.Set(i, j, hNew.at(i, j))
			uhv.Set(i, j, uhNew.at(i, j))
			vhv.Set(i, j, vhNew.at(i, j))
			whv.Set(i, j, whNew.at(i, j))
		}
	}

	hcdt := newBuffer(nr, nc)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			uhOut, vhOut, whOut, hc := reprojectOne(uhv.At(i, j), vhv.At(i, j), whv.At(i, j),
				geo.dbdx.At(i, j), geo.dbdy.At(i, j), geo.cosBeta.At(i, j))
			uhv.Set(i, j, uhOut)
			vhv.Set(i, j, vhOut)
			whv.Set(i, j, whOut)
			hcdt.set(i, j, hc)
		}
	}

	dsdx, dsdy := surfaceGradients(bv, hv, s.dx, s.dy)

	pres := pressureAndAccelerate(hv, geo, dsdx, dsdy, s.params, rect, dt, uhv, vhv, whv)

	s.stat.Fill(0)
	statv := s.stat.View(rect.R0, rect.C0, nr, nc)
	applyFriction(hv, pres, hcdt, geo, s.params, rect, dt, uhv, vhv, whv, func(li, lj, v int) {
		statv.Set(li, lj, float64(v))
	})

	if fieldHasNonFinite(hv) || fieldHasNonFinite(uhv) || fieldHasNonFinite(vhv) || fieldHasNonFinite(whv) {
		s.diverged = true
		return dt, fmt.Errorf("talus: Step: %w", ErrDiverged)
	}

	return dt, nil
}

func fieldHasNonFinite(v View) bool {
	nr, nc := v.Dims()
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			x := v.At(i, j)
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return true
			}
		}
	}
	return false
}
