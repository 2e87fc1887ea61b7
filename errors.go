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

import "errors"

// Sentinel errors, checked with errors.Is, per spec §7's narrow error
// surface: shape/parameter problems fail fast at construction or on the
// first Step, and a divergent state is fatal for the lifetime of the
// Solver.
var (
	// ErrShapeMismatch is returned when b and h0 have different shapes, or
	// when dx or dy is not positive.
	ErrShapeMismatch = errors.New("talus: bed and thickness grids must have matching, positive dimensions")

	// ErrInvalidParameter is returned for an out-of-range parameter, e.g.
	// h_min < 0, cfl > 1 (cfl <= 0 disables CFL capping), or g <= 0.
	ErrInvalidParameter = errors.New("talus: invalid parameter")

	// ErrDiverged is returned once a NaN or Inf is detected in the
	// thickness or momentum state after a step. The Solver is not usable
	// afterward.
	ErrDiverged = errors.New("talus: solver diverged")
)
