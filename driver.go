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
	"context"
	"fmt"
)

// Driver runs a Solver forward to a stopping condition, reporting snapshots
// to a Recorder at a fixed cadence. It is the thin outer loop around
// Solver.Step, playing the role the teacher's top-level run functions play
// around Calculations: choosing how many times to iterate and when to stop,
// while the heavy lifting stays in the package's core calculation step.
type Driver struct {
	Solver *Solver

	// MaxSteps bounds the number of calls to Solver.Step. Zero means no
	// step limit (MaxTime or context cancellation must end the run).
	MaxSteps int

	// MaxTime bounds the simulated time. Zero means no time limit.
	MaxTime float64

	// MaxDt bounds every individual step's dtMax argument.
	MaxDt float64

	// CFL is the Courant number passed to every Step; CFL <= 0 disables
	// CFL-based step capping.
	CFL float64

	// OutputEvery reports a snapshot to Recorder every OutputEvery steps,
	// counting the pre-run state as step 0 (so it is always reported first
	// when periodic reporting is enabled). Zero or negative disables
	// periodic reporting; the final state is still reported once when the
	// run ends, if Recorder is non-nil.
	OutputEvery int

	Recorder Recorder
}

// Run advances the Driver's Solver until MaxSteps or MaxTime is reached,
// the context is canceled, or the Solver diverges. It returns the number of
// steps taken, the simulated time reached, and the first error encountered
// (context cancellation is reported as ctx.Err(), divergence as the
// Solver's ErrDiverged).
func (d *Driver) Run(ctx context.Context) (steps int, simTime float64, err error) {
	if d.Solver == nil {
		return 0, 0, fmt.Errorf("talus: Driver.Run: %w", ErrInvalidParameter)
	}
	if d.MaxDt <= 0 && d.MaxTime <= 0 {
		return 0, 0, fmt.Errorf("talus: Driver.Run: MaxDt or MaxTime must be set: %w", ErrInvalidParameter)
	}
	if d.OutputEvery > 0 {
		// k=0 satisfies k%OutputEvery==0 for any OutputEvery, so the
		// pre-step state is reported before the first call to Solver.Step.
		d.report(0, 0)
	}
	for {
		if d.MaxSteps > 0 && steps >= d.MaxSteps {
			break
		}
		if d.MaxTime > 0 && simTime >= d.MaxTime {
			break
		}
		select {
		case <-ctx.Done():
			d.report(steps, simTime)
			return steps, simTime, ctx.Err()
		default:
		}

		dtMax := d.MaxDt
		if d.MaxTime > 0 {
			remaining := d.MaxTime - simTime
			if remaining < dtMax || dtMax <= 0 {
				dtMax = remaining
			}
		}
		if dtMax <= 0 {
			break
		}

		dt, stepErr := d.Solver.Step(dtMax, d.CFL)
		if stepErr != nil {
			return steps, simTime, fmt.Errorf("talus: Driver.Run: %w", stepErr)
		}
		steps++
		simTime += dt

		if d.OutputEvery > 0 && steps%d.OutputEvery == 0 {
			d.report(steps, simTime)
		}

		if dt <= 0 {
			// A step that makes no progress in time would repeat forever.
			// (An empty active rectangle is not such a case: Step then
			// returns dtMax.)
			break
		}
	}
	d.report(steps, simTime)
	return steps, simTime, nil
}

func (d *Driver) report(steps int, simTime float64) {
	if d.Recorder == nil {
		return
	}
	d.Recorder.Record(simTime, d.Solver.Thickness().Copy())
}
