/*
Copyright © 2026 the talus authors.

talus is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

talus is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.
*/

// Package talus implements a two-dimensional explicit finite-volume solver
// for rapid gravity-driven mass flows (rock and snow avalanches) over
// arbitrary terrain. The flow is governed by a depth-averaged momentum
// balance closed by a modified Voellmy rheology (Hergarten, 2024).
//
// Given a bed elevation grid and an initial thickness field, a Solver
// advances thickness and momentum forward in time, step by step, until the
// caller stops calling Step. The Driver type wraps that loop with the usual
// step/time caps and periodic snapshot recording.
package talus

// Version is the package version string, set at release time.
const Version = "0.1.0"
