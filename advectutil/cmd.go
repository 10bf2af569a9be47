/*
Copyright © 2024 the InMAP authors.
This file is part of Advect.

Advect is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Advect is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Advect.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package advectutil holds the configuration and command-line interface
// for the advect simulation driver.
package advectutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lnashier/viper"
	"github.com/spatialmodel/advect"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to Advect.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Grid.Type",
			usage: `
              Grid.Type specifies the grid to run on. Valid options are
              "raster" and "hex".`,
			defaultVal: "raster",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Grid.Rows",
			usage: `
              Grid.Rows specifies the number of node rows in the grid.`,
			defaultVal: 50,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Grid.Cols",
			usage: `
              Grid.Cols specifies the number of node columns in the grid.`,
			defaultVal: 50,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Grid.Spacing",
			usage: `
              Grid.Spacing specifies the node spacing [m].`,
			defaultVal: 1.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Velocity.X",
			usage: `
              Velocity.X specifies the x component of the uniform advection
              velocity [m/y].`,
			defaultVal: 1.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Velocity.Y",
			usage: `
              Velocity.Y specifies the y component of the uniform advection
              velocity [m/y].`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "InitialCondition.Amplitude",
			usage: `
              InitialCondition.Amplitude specifies the peak value of the
              Gaussian tracer bump placed at the grid center.`,
			defaultVal: 1.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "InitialCondition.Width",
			usage: `
              InitialCondition.Width specifies the standard deviation of the
              Gaussian tracer bump [m].`,
			defaultVal: 3.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "NumSteps",
			usage: `
              NumSteps is the number of time steps to calculate.`,
			defaultVal: 100,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "CFLFraction",
			usage: `
              CFLFraction is the fraction of the
              Courant-Friedrichs-Lewy-stable time step to use. It must be
              greater than zero and should be no larger than one.`,
			defaultVal: 0.2,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile is the path where the final tracer field should be
              written in NetCDF format. If it is empty, no file is written.`,
			defaultVal: "advect_output.ncf",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "PlotFile",
			usage: `
              PlotFile is the path where a plot of the final mid-row tracer
              profile should be saved. If it is empty, no plot is made.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("ADVECT")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(runCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("advect: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "advect",
	Short: "A TVD advection solver for regular grids.",
	Long: `Advect numerically solves the advection equation on a regular
raster or hexagonal grid using a total variation diminishing finite-volume
scheme.

Configuration can be changed by using a configuration file (and providing
the path to the file using the --config flag), by using command-line
arguments, or by setting environment variables in the format 'ADVECT_var'
where 'var' is the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of Advect.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Advect v%s\n", advect.Version)
	},
	DisableAutoGenTag: true,
}

// runCmd is a command that runs an advection simulation.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an advection simulation.",
	Long: `run builds the grid specified in the configuration, places a
Gaussian tracer bump at its center, and advects it under a uniform velocity
field for the configured number of time steps.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := simConfig(Cfg)
		if err != nil {
			return err
		}
		return RunSim(cfg)
	},
	DisableAutoGenTag: true,
}

// checkOutputFile makes sure that the directory of the output file f
// exists, and expands any environment variables.
func checkOutputFile(f string) (string, error) {
	f = os.ExpandEnv(f)
	if f == "" {
		return f, nil
	}
	if dir := filepath.Dir(f); dir != "." {
		if _, err := os.Stat(dir); err != nil {
			return f, fmt.Errorf("advect: output directory: %v", err)
		}
	}
	return f, nil
}
