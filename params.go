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

// Param is a scalar-or-per-cell-field parameter value. It is the
// "scalar or field" tagged variant spec'd to avoid branch churn per step:
// the common case of a uniform parameter costs one float64 comparison, and
// a per-cell override costs one Field lookup, with no other code path
// difference at the call site.
type Param struct {
	scalar float64
	field  *Field
}

// Scalar returns a Param with the same value everywhere.
func Scalar(v float64) Param { return Param{scalar: v} }

// PerCell returns a Param backed by a per-cell field override.
func PerCell(f *Field) Param { return Param{field: f} }

// At returns the parameter value at row i, column j.
func (p Param) At(i, j int) float64 {
	if p.field != nil {
		return p.field.At(i, j)
	}
	return p.scalar
}

// IsZero reports whether a scalar Param is exactly zero. Per-cell Params
// are never considered zero by this check since their cells may vary.
func (p Param) IsZero() bool { return p.field == nil && p.scalar == 0 }

// Params bundles the scalar/per-cell rheology and numerical parameters
// (spec §3). Mu, Xi, Vc, HMin, DMin and G may each be a uniform scalar or a
// per-cell override; Cent is a single flow-wide switch.
type Params struct {
	Mu   Param // Coulomb friction coefficient
	Xi   Param // Voellmy bed-roughness (m/s^2)
	Vc   Param // crossover velocity at h=1 (m/s); Vc <= 0 means conventional Voellmy everywhere
	HMin Param // motion threshold (m)
	DMin Param // pressure-denominator floor
	Cent bool  // include centripetal term in effective normal pressure
	G    Param // gravity (m/s^2)
}

// DefaultParams returns the spec's default parameter bundle.
func DefaultParams() Params {
	return Params{
		Mu:   Scalar(0.2),
		Xi:   Scalar(500),
		Vc:   Scalar(4),
		HMin: Scalar(0),
		DMin: Scalar(0),
		Cent: true,
		G:    Scalar(9.81),
	}
}
