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

package talusutil

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/talusflow/talus"
)

// newLogger builds the CLI-layer logger, following inmaputil's
// --verbose/--log-file plumbing (checkLogFile in the teacher's config.go):
// an always-on stderr sink, plus an additional file sink when --log_file is
// set.
func newLogger(cfg *Cfg) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if cfg.GetBool("verbose") {
		log.SetLevel(logrus.DebugLevel)
	}
	if path := cfg.GetString("log_file"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("talusutil: opening log file: %v", err)
		}
		log.AddHook(&fileHook{file: f})
	}
	return log, nil
}

// fileHook mirrors every log entry to an additionally-opened file, the
// logrus.Hook shape inmaputil's logging setup uses to fan a single log
// stream out to both the console and a file.
type fileHook struct {
	file *os.File
}

func (h *fileHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h *fileHook) Fire(e *logrus.Entry) error {
	line, err := e.String()
	if err != nil {
		return err
	}
	_, err = h.file.WriteString(line)
	return err
}

// buildScenario constructs a synthetic inclined-plane release scenario from
// the resolved configuration: a uniformly sloped bed and a circular pile of
// material at the grid center, the stand-in this CLI exercises in place of
// the teacher's DEM/shapefile input pipeline (explicitly out of scope).
func buildScenario(cfg *Cfg) (b, h0 *talus.Field, dx, dy float64, params talus.Params) {
	nx := cfg.GetInt("nx")
	ny := cfg.GetInt("ny")
	dx = cfg.GetFloat64("dx")
	dy = cfg.GetFloat64("dy")
	slope := cfg.GetFloat64("slope_deg") * math.Pi / 180

	b = talus.NewField(ny, nx)
	for i := 0; i < ny; i++ {
		for j := 0; j < nx; j++ {
			b.Set(i, j, -float64(j)*dx*math.Tan(slope))
		}
	}

	h0 = talus.NewField(ny, nx)
	radius := cfg.GetFloat64("pile_radius")
	height := cfg.GetFloat64("pile_height")
	cy, cx := float64(ny)/2*dy, float64(nx)/2*dx
	for i := 0; i < ny; i++ {
		for j := 0; j < nx; j++ {
			y, x := float64(i)*dy, float64(j)*dx
			r2 := (x-cx)*(x-cx) + (y-cy)*(y-cy)
			if r2 < radius*radius {
				h0.Set(i, j, height*(1-r2/(radius*radius)))
			}
		}
	}

	params = talus.Params{
		Mu:   talus.Scalar(cfg.GetFloat64("mu")),
		Xi:   talus.Scalar(cfg.GetFloat64("xi")),
		Vc:   talus.Scalar(cfg.GetFloat64("vc")),
		HMin: talus.Scalar(cfg.GetFloat64("h_min")),
		DMin: talus.Scalar(cfg.GetFloat64("d_min")),
		Cent: cfg.GetBool("cent"),
		G:    talus.Scalar(cfg.GetFloat64("g")),
	}
	return b, h0, dx, dy, params
}

// gridInfo prints the resolved grid and parameter configuration without
// running a simulation, useful for checking a configuration file or flag
// combination before committing to a run.
func gridInfo(cmd *cobra.Command, cfg *Cfg) error {
	nx, ny := cfg.GetInt("nx"), cfg.GetInt("ny")
	dx, dy := cfg.GetFloat64("dx"), cfg.GetFloat64("dy")
	if err := checkDimensions(dx, dy, cfg.GetFloat64("g")); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "grid: %d x %d cells, dx=%g dy=%g m\n", ny, nx, dx, dy)
	fmt.Fprintf(cmd.OutOrStdout(), "slope: %g deg\n", cfg.GetFloat64("slope_deg"))
	fmt.Fprintf(cmd.OutOrStdout(), "rheology: mu=%g xi=%g vc=%g h_min=%g d_min=%g cent=%v g=%g\n",
		cfg.GetFloat64("mu"), cfg.GetFloat64("xi"), cfg.GetFloat64("vc"),
		cfg.GetFloat64("h_min"), cfg.GetFloat64("d_min"), cfg.GetBool("cent"), cfg.GetFloat64("g"))
	return nil
}

// run builds the synthetic scenario, advances it to completion, and prints
// a gonum/stat summary of the final state, the equivalent of inmaputil's
// end-of-run emissions-total summary.
func run(cmd *cobra.Command, cfg *Cfg) error {
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}

	b, h0, dx, dy, params := buildScenario(cfg)
	if err := checkDimensions(dx, dy, cfg.GetFloat64("g")); err != nil {
		return err
	}

	solver, err := talus.NewSolver(b, h0, nil, nil, nil, dx, dy, params)
	if err != nil {
		return fmt.Errorf("talusutil: building solver: %v", err)
	}

	rec := &talus.MemoryRecorder{}
	driver := &talus.Driver{
		Solver:      solver,
		MaxSteps:    cfg.GetInt("max_steps"),
		MaxTime:     cfg.GetFloat64("max_time"),
		MaxDt:       cfg.GetFloat64("max_dt"),
		CFL:         cfg.GetFloat64("cfl"),
		OutputEvery: cfg.GetInt("output_every"),
		Recorder: talus.RecorderFunc(func(t float64, h *talus.Field) {
			rec.Record(t, h)
			log.WithField("t", t).Debug("snapshot recorded")
		}),
	}

	log.WithFields(logrus.Fields{"nx": cfg.GetInt("nx"), "ny": cfg.GetInt("ny")}).Info("starting run")
	steps, simTime, err := driver.Run(context.Background())
	if err != nil {
		log.WithError(err).Error("run ended with an error")
		return fmt.Errorf("talusutil: run: %v", err)
	}
	log.WithFields(logrus.Fields{"steps": steps, "time": simTime}).Info("run finished")

	thickness := solver.Thickness().Copy()
	ny, nx := thickness.Dims()
	vals := make([]float64, 0, ny*nx)
	for i := 0; i < ny; i++ {
		for j := 0; j < nx; j++ {
			vals = append(vals, thickness.At(i, j))
		}
	}
	mean := stat.Mean(vals, nil)
	var max float64
	for _, v := range vals {
		if v > max {
			max = v
		}
	}
	total := thickness.Sum()

	fmt.Fprintf(cmd.OutOrStdout(), "steps=%d time=%.3gs mean_h=%.6g max_h=%.6g total_h=%.6g\n",
		steps, simTime, mean, max, total)
	return nil
}
