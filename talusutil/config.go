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
	"fmt"

	"github.com/ctessum/unit"
	"github.com/spf13/pflag"
)

// option describes one configuration value: its name, usage text, default,
// and the flag sets it should be registered on. This mirrors the teacher's
// inmaputil options table, trimmed to a single flat scenario instead of
// the teacher's many input-file/shapefile/cloud options.
type option struct {
	name, usage string
	defaultVal  interface{}
	flagsets    []*pflag.FlagSet
}

func (cfg *Cfg) registerOptions() {
	opts := []option{
		{"nx", "number of grid columns", 120, []*pflag.FlagSet{cfg.runCmd.Flags(), cfg.gridInfoCmd.Flags()}},
		{"ny", "number of grid rows", 120, []*pflag.FlagSet{cfg.runCmd.Flags(), cfg.gridInfoCmd.Flags()}},
		{"dx", "grid cell size in the x direction (m)", 1.0, []*pflag.FlagSet{cfg.runCmd.Flags(), cfg.gridInfoCmd.Flags()}},
		{"dy", "grid cell size in the y direction (m)", 1.0, []*pflag.FlagSet{cfg.runCmd.Flags(), cfg.gridInfoCmd.Flags()}},
		{"slope_deg", "uniform bed slope, degrees from horizontal", 30.0, []*pflag.FlagSet{cfg.runCmd.Flags(), cfg.gridInfoCmd.Flags()}},
		{"pile_radius", "initial release pile radius (m)", 10.0, []*pflag.FlagSet{cfg.runCmd.Flags()}},
		{"pile_height", "initial release pile peak thickness (m)", 2.0, []*pflag.FlagSet{cfg.runCmd.Flags()}},
		{"mu", "Coulomb friction coefficient", 0.2, []*pflag.FlagSet{cfg.runCmd.Flags()}},
		{"xi", "Voellmy bed roughness (m/s^2)", 500.0, []*pflag.FlagSet{cfg.runCmd.Flags()}},
		{"vc", "Voellmy/Coulomb crossover velocity at h=1 (m/s)", 4.0, []*pflag.FlagSet{cfg.runCmd.Flags()}},
		{"h_min", "motion threshold thickness (m)", 0.0, []*pflag.FlagSet{cfg.runCmd.Flags()}},
		{"d_min", "pressure-denominator floor (0 selects the modified pressure model)", 0.0, []*pflag.FlagSet{cfg.runCmd.Flags()}},
		{"cent", "include the centripetal term in the effective normal pressure", true, []*pflag.FlagSet{cfg.runCmd.Flags()}},
		{"g", "gravitational acceleration (m/s^2)", 9.81, []*pflag.FlagSet{cfg.runCmd.Flags()}},
		{"max_steps", "maximum number of steps to run (0: unbounded)", 2000, []*pflag.FlagSet{cfg.runCmd.Flags()}},
		{"max_time", "maximum simulated time to reach, seconds (0: unbounded)", 120.0, []*pflag.FlagSet{cfg.runCmd.Flags()}},
		{"max_dt", "maximum time step per call, seconds", 0.5, []*pflag.FlagSet{cfg.runCmd.Flags()}},
		{"cfl", "CFL number bounding the adaptive time step (<=0 disables CFL capping)", 0.5, []*pflag.FlagSet{cfg.runCmd.Flags()}},
		{"output_every", "report a snapshot every N steps (<=0: only the final state)", 50, []*pflag.FlagSet{cfg.runCmd.Flags()}},
		{"verbose", "enable debug-level logging", false, []*pflag.FlagSet{cfg.Root.PersistentFlags()}},
		{"log_file", "write log output to this file in addition to stderr (empty: stderr only)", "", []*pflag.FlagSet{cfg.Root.PersistentFlags()}},
	}

	for _, o := range opts {
		for i, set := range o.flagsets {
			if i != 0 {
				set.AddFlag(o.flagsets[0].Lookup(o.name))
				continue
			}
			switch v := o.defaultVal.(type) {
			case string:
				set.String(o.name, v, o.usage)
			case bool:
				set.Bool(o.name, v, o.usage)
			case int:
				set.Int(o.name, v, o.usage)
			case float64:
				set.Float64(o.name, v, o.usage)
			default:
				panic(fmt.Errorf("talusutil: invalid option default type: %T", o.defaultVal))
			}
			cfg.BindPFlag(o.name, set.Lookup(o.name))
		}
	}
}

// setConfig reads the configuration file named by the "config" flag, if
// any, layering it beneath flags and TALUS_* environment variables.
func setConfig(cfg *Cfg) error {
	if path := cfg.GetString("config"); path != "" {
		cfg.SetConfigFile(path)
		if err := cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("talusutil: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// checkDimensions confirms dx, dy and g carry physically sane SI
// dimensions and signs before they reach the dimensionless numerical core,
// the same config-time sanity pass inmaputil applies to its own physical
// inputs via github.com/ctessum/unit.
func checkDimensions(dx, dy, g float64) error {
	length := unit.Dimensions{unit.LengthDim: 1}
	accel := unit.Dimensions{unit.LengthDim: 1, unit.TimeDim: -2}

	dxU := unit.New(dx, length)
	dyU := unit.New(dy, length)
	gU := unit.New(g, accel)

	if !unit.DimensionsMatch(dxU, unit.New(1, length)) || dxU.Value() <= 0 {
		return fmt.Errorf("talusutil: dx must be a positive length in meters, got %g", dx)
	}
	if !unit.DimensionsMatch(dyU, unit.New(1, length)) || dyU.Value() <= 0 {
		return fmt.Errorf("talusutil: dy must be a positive length in meters, got %g", dy)
	}
	if !unit.DimensionsMatch(gU, unit.New(1, accel)) || gU.Value() <= 0 {
		return fmt.Errorf("talusutil: g must be a positive acceleration in m/s^2, got %g", g)
	}
	return nil
}
