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

package advectutil

import (
	"fmt"
	"math"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"gonum.org/v1/gonum/floats"

	"github.com/spatialmodel/advect"
	"github.com/spatialmodel/advect/grid"
)

// FieldTracer is the name of the node field created for the transported
// scalar.
const FieldTracer = "tracer__concentration"

// SimConfig holds the information needed to run an advection simulation.
type SimConfig struct {
	GridType             string // "raster" or "hex"
	Rows, Cols           int
	Spacing              float64
	VelocityX, VelocityY float64 // uniform velocity components [m/y]
	Amplitude, Width     float64 // Gaussian initial condition
	NumSteps             int
	CFLFraction          float64
	OutputFile           string
	PlotFile             string
}

// simConfig extracts a SimConfig from configuration information.
func simConfig(cfg *viper.Viper) (*SimConfig, error) {
	c := &SimConfig{GridType: cfg.GetString("Grid.Type")}
	var err error
	for _, v := range []struct {
		name string
		dst  *float64
	}{
		{"Grid.Spacing", &c.Spacing},
		{"Velocity.X", &c.VelocityX},
		{"Velocity.Y", &c.VelocityY},
		{"InitialCondition.Amplitude", &c.Amplitude},
		{"InitialCondition.Width", &c.Width},
		{"CFLFraction", &c.CFLFraction},
	} {
		if *v.dst, err = cast.ToFloat64E(cfg.Get(v.name)); err != nil {
			return nil, fmt.Errorf("advect: reading '%s': %v", v.name, err)
		}
	}
	for _, v := range []struct {
		name string
		dst  *int
	}{
		{"Grid.Rows", &c.Rows},
		{"Grid.Cols", &c.Cols},
		{"NumSteps", &c.NumSteps},
	} {
		if *v.dst, err = cast.ToIntE(cfg.Get(v.name)); err != nil {
			return nil, fmt.Errorf("advect: reading '%s': %v", v.name, err)
		}
	}
	if c.OutputFile, err = checkOutputFile(cfg.GetString("OutputFile")); err != nil {
		return nil, err
	}
	if c.PlotFile, err = checkOutputFile(cfg.GetString("PlotFile")); err != nil {
		return nil, err
	}
	if c.Rows < 3 || c.Cols < 3 {
		return nil, fmt.Errorf("advect: the grid needs at least 3 rows and 3 columns; have %d×%d", c.Rows, c.Cols)
	}
	if c.Spacing <= 0 {
		return nil, fmt.Errorf("advect: grid spacing must be positive; have %g", c.Spacing)
	}
	if c.CFLFraction <= 0 {
		return nil, fmt.Errorf("advect: CFLFraction must be positive; have %g", c.CFLFraction)
	}
	return c, nil
}

// RunSim builds the configured grid, places a Gaussian tracer bump at its
// center, and advects it under the configured uniform velocity for
// NumSteps time steps, logging progress and writing the configured
// outputs.
func RunSim(cfg *SimConfig) error {
	var g *grid.Grid
	switch cfg.GridType {
	case "raster":
		g = grid.NewRaster(cfg.Rows, cfg.Cols, cfg.Spacing)
	case "hex":
		g = grid.NewHex(cfg.Rows, cfg.Cols, cfg.Spacing)
	default:
		return fmt.Errorf("advect: invalid grid type %q; must be \"raster\" or \"hex\"", cfg.GridType)
	}

	tracer := g.AddZerosAtNode(FieldTracer)
	setGaussian(g, tracer, cfg.Amplitude, cfg.Width)

	// Project the uniform velocity onto each link direction.
	vel := g.AddZerosAtLink(advect.FieldVelocity)
	for i := range vel {
		a := g.Link(i).Angle
		vel[i] = cfg.VelocityX*math.Cos(a) + cfg.VelocityY*math.Sin(a)
	}

	dt := advect.CFLTimeStep(g, vel, cfg.CFLFraction)
	if math.IsInf(dt, 1) {
		return fmt.Errorf("advect: the velocity is zero on every active link; there is nothing to advect")
	}

	s, err := advect.NewSolver(g, FieldTracer)
	if err != nil {
		return err
	}

	log := logrus.StandardLogger()
	log.WithFields(logrus.Fields{
		"grid":  cfg.GridType,
		"nodes": g.NumberOfNodes(),
		"links": g.NumberOfLinks(),
		"dt":    dt,
	}).Info("starting advection simulation")

	logEvery := cfg.NumSteps / 10
	if logEvery == 0 {
		logEvery = 1
	}
	for step := 1; step <= cfg.NumSteps; step++ {
		s.RunOneStep(dt)
		if step%logEvery == 0 || step == cfg.NumSteps {
			log.WithFields(logrus.Fields{
				"step": step,
				"time": float64(step) * dt,
				"mass": coreMass(g, tracer),
				"max":  floats.Max(tracer),
			}).Info("advecting")
		}
	}

	if cfg.OutputFile != "" {
		if err := WriteNetCDF(cfg.OutputFile, FieldTracer, nodeFieldToArray(tracer, cfg.Rows, cfg.Cols)); err != nil {
			return err
		}
		log.WithField("file", cfg.OutputFile).Info("wrote tracer field")
	}
	if cfg.PlotFile != "" {
		if err := PlotProfile(cfg.PlotFile, g, tracer, cfg.Rows, cfg.Cols); err != nil {
			return err
		}
		log.WithField("file", cfg.PlotFile).Info("wrote profile plot")
	}
	return nil
}

// setGaussian fills v with a Gaussian bump of the given peak amplitude and
// standard deviation centered on the middle of the grid.
func setGaussian(g *grid.Grid, v []float64, amplitude, width float64) {
	var cx, cy float64
	for i := 0; i < g.NumberOfNodes(); i++ {
		cx += g.NodeX(i)
		cy += g.NodeY(i)
	}
	cx /= float64(g.NumberOfNodes())
	cy /= float64(g.NumberOfNodes())
	for i := range v {
		dx := g.NodeX(i) - cx
		dy := g.NodeY(i) - cy
		v[i] = amplitude * math.Exp(-(dx*dx+dy*dy)/(2*width*width))
	}
}

// coreMass returns the total tracer mass in the domain interior.
func coreMass(g *grid.Grid, v []float64) float64 {
	var m float64
	for _, n := range g.CoreNodes() {
		m += v[n] * g.CellArea()
	}
	return m
}
