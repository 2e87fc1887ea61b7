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

// Package talusutil provides the Cobra/Viper command-line front end for the
// talus avalanche solver, following the layout of the teacher's own
// inmaputil package: a Cfg wrapping *viper.Viper, a tree of *cobra.Command
// subcommands, and a layered flags > environment > config file > defaults
// configuration resolution.
package talusutil

import (
	"fmt"

	"github.com/lnashier/viper"
	"github.com/spf13/cobra"

	"github.com/talusflow/talus"
)

// Cfg holds the command tree and the configuration it reads from.
type Cfg struct {
	*viper.Viper

	Root, versionCmd, runCmd, gridInfoCmd *cobra.Command
}

// InitializeConfig builds the talus command tree: a root command plus
// "run", "grid-info" and "version" subcommands, with every option
// registered and bound per the teacher's Cfg/InitializeConfig pattern.
func InitializeConfig() *Cfg {
	cfg := &Cfg{Viper: viper.New()}

	cfg.Root = &cobra.Command{
		Use:   "talus",
		Short: "A depth-averaged gravity-driven mass-flow solver.",
		Long: `talus simulates rapid gravity-driven mass flows (avalanches) over
terrain using a two-dimensional explicit finite-volume scheme closed by a
modified Voellmy rheology.

Configuration can be set with command-line flags, a TOML configuration file
(--config), or environment variables of the form TALUS_name. Flags take
precedence over the environment, which takes precedence over the
configuration file, which takes precedence over the built-in defaults.`,
		DisableAutoGenTag: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return setConfig(cfg)
		},
	}
	cfg.Root.PersistentFlags().String("config", "", "path to a TOML configuration file")
	cfg.BindPFlag("config", cfg.Root.PersistentFlags().Lookup("config"))

	cfg.versionCmd = &cobra.Command{
		Use:               "version",
		Short:             "Print the version number",
		DisableAutoGenTag: true,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "talus v%s\n", talus.Version)
		},
	}

	cfg.gridInfoCmd = &cobra.Command{
		Use:               "grid-info",
		Short:             "Print the grid and parameter configuration without running a simulation",
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return gridInfo(cmd, cfg)
		},
	}

	cfg.runCmd = &cobra.Command{
		Use:               "run",
		Short:             "Run a simulation on a synthetic inclined-plane scenario",
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfg)
		},
	}

	cfg.registerOptions()
	cfg.Root.AddCommand(cfg.versionCmd, cfg.gridInfoCmd, cfg.runCmd)
	cfg.SetEnvPrefix("TALUS")
	cfg.AutomaticEnv()

	return cfg
}

// Execute runs the talus command tree against os.Args, the entry point
// called from cmd/talus/main.go.
func Execute() error {
	return InitializeConfig().Root.Execute()
}
