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

package advect

import (
	"math"
	"testing"

	"github.com/spatialmodel/advect/grid"
)

const testField = "tracer__concentration"

// testGrid creates a raster grid with a tracer field holding a Gaussian
// bump and a velocity field projected from the uniform velocity (ux, uy).
func testGrid(rows, cols int, ux, uy float64) (*grid.Grid, []float64, []float64) {
	g := grid.NewRaster(rows, cols, 1)
	tracer := g.AddZerosAtNode(testField)
	cx := float64(cols-1) / 2
	cy := float64(rows-1) / 2
	for i := range tracer {
		dx := g.NodeX(i) - cx
		dy := g.NodeY(i) - cy
		tracer[i] = math.Exp(-(dx*dx + dy*dy) / 8)
	}
	vel := g.AddZerosAtLink(FieldVelocity)
	for i := range vel {
		a := g.Link(i).Angle
		vel[i] = ux*math.Cos(a) + uy*math.Sin(a)
	}
	return g, tracer, vel
}

func TestNewSolverMissingFields(t *testing.T) {
	g := grid.NewRaster(5, 5, 1)
	if _, err := NewSolver(g, testField); err == nil {
		t.Error("expected an error for a missing scalar field")
	}
	g.AddZerosAtNode(testField)
	if _, err := NewSolver(g, testField); err == nil {
		t.Error("expected an error for a missing velocity field")
	}
	g.AddZerosAtLink(FieldVelocity)
	s, err := NewSolver(g, testField)
	if err != nil {
		t.Fatal(err)
	}
	if !g.HasAtLink(FieldFlux) {
		t.Error("the flux field was not created")
	}
	if s == nil {
		t.Fatal("nil solver")
	}
}

func TestUpdateZeroTimeStep(t *testing.T) {
	g, tracer, _ := testGrid(5, 7, 1, 0.5)
	s, err := NewSolver(g, testField)
	if err != nil {
		t.Fatal(err)
	}
	before := make([]float64, len(tracer))
	copy(before, tracer)
	s.Update(0)
	for i := range tracer {
		if tracer[i] != before[i] {
			t.Fatalf("node %d changed with dt = 0: %g != %g", i, tracer[i], before[i])
		}
	}
}

func TestFlatFieldPreserved(t *testing.T) {
	g, tracer, vel := testGrid(6, 6, 1, 1)
	for i := range tracer {
		tracer[i] = 3.7
	}
	s, err := NewSolver(g, testField)
	if err != nil {
		t.Fatal(err)
	}
	roc := s.CalcRateOfChangeAtNodes()
	for i, r := range roc {
		if absDifferent(r, 0, 1e-14) {
			t.Errorf("node %d: rate of change %g for a flat field", i, r)
		}
	}
	dt := CFLTimeStep(g, vel, 0.5)
	for step := 0; step < 10; step++ {
		s.RunOneStep(dt)
	}
	for i, v := range tracer {
		if absDifferent(v, 3.7, 1e-12) {
			t.Errorf("node %d: flat field drifted to %g", i, v)
		}
	}
}

func TestBoundaryNodesUnchanged(t *testing.T) {
	g, tracer, vel := testGrid(7, 9, 1, -0.3)
	s, err := NewSolver(g, testField)
	if err != nil {
		t.Fatal(err)
	}
	before := make([]float64, len(tracer))
	copy(before, tracer)
	dt := CFLTimeStep(g, vel, 0.5)
	for step := 0; step < 25; step++ {
		s.RunOneStep(dt)
	}
	for i := 0; i < g.NumberOfNodes(); i++ {
		if g.Status(i) == grid.CoreNode {
			continue
		}
		if tracer[i] != before[i] {
			t.Errorf("boundary node %d changed: %g != %g", i, tracer[i], before[i])
		}
	}
}

func TestFluxIsVelocityTimesFaceValue(t *testing.T) {
	g, tracer, vel := testGrid(6, 8, 0.8, 0.4)
	s, err := NewSolver(g, testField)
	if err != nil {
		t.Fatal(err)
	}
	s.CalcRateOfChangeAtNodes()
	flux, err := g.AtLink(FieldFlux)
	if err != nil {
		t.Fatal(err)
	}
	// Rebuild the blended face values from the exported pieces.
	uwl := FindUpwindLinkAtLink(g, LinkVelocity(vel))
	low := g.MapNodeToLinkLinearUpwind(tracer, vel, nil)
	high := g.MapNodeToLinkLaxWendroff(tracer, vel, nil)
	r := UpwindToLocalGradRatio(g, tracer, uwl, nil)
	for _, l := range g.ActiveLinks() {
		ψ := FluxLimVanLeer(r[l])
		want := vel[l] * (ψ*high[l] + (1-ψ)*low[l])
		if flux[l] != want {
			t.Errorf("link %d: flux %g, want velocity × face value %g", l, flux[l], want)
		}
	}
}

func TestMassConservation(t *testing.T) {
	g, tracer, vel := testGrid(9, 9, 1, 0.6)
	s, err := NewSolver(g, testField)
	if err != nil {
		t.Fatal(err)
	}
	massBefore := 0.0
	for _, n := range g.CoreNodes() {
		massBefore += tracer[n] * g.CellArea()
	}
	dt := CFLTimeStep(g, vel, 0.3)
	s.RunOneStep(dt)
	massAfter := 0.0
	for _, n := range g.CoreNodes() {
		massAfter += tracer[n] * g.CellArea()
	}
	// The interior mass change must exactly balance the flux through the
	// links connecting core nodes to boundary nodes.
	flux, err := g.AtLink(FieldFlux)
	if err != nil {
		t.Fatal(err)
	}
	boundaryOutflow := 0.0
	for _, l := range g.ActiveLinks() {
		lk := g.Link(l)
		if g.Status(lk.Tail) == grid.CoreNode && g.Status(lk.Head) != grid.CoreNode {
			boundaryOutflow += flux[l] * g.FaceWidth()
		}
		if g.Status(lk.Head) == grid.CoreNode && g.Status(lk.Tail) != grid.CoreNode {
			boundaryOutflow -= flux[l] * g.FaceWidth()
		}
	}
	if absDifferent(massAfter-massBefore, -dt*boundaryOutflow, 1e-10) {
		t.Errorf("mass change %g does not balance boundary flux %g",
			massAfter-massBefore, -dt*boundaryOutflow)
	}
}

func TestPeakMovesDownwind(t *testing.T) {
	g, tracer, vel := testGrid(5, 21, 1, 0)
	s, err := NewSolver(g, testField)
	if err != nil {
		t.Fatal(err)
	}
	centroid := func() float64 {
		var m, mx float64
		for _, n := range g.CoreNodes() {
			m += tracer[n]
			mx += tracer[n] * g.NodeX(n)
		}
		return mx / m
	}
	x0 := centroid()
	dt := CFLTimeStep(g, vel, 0.2)
	for step := 0; step < 10; step++ {
		s.RunOneStep(dt)
	}
	if x1 := centroid(); x1 <= x0 {
		t.Errorf("center of mass did not move downwind: %g -> %g", x0, x1)
	}
	// The scheme must not create values above the initial maximum.
	for _, n := range g.CoreNodes() {
		if tracer[n] > 1+1e-9 {
			t.Errorf("node %d overshot: %g > 1", n, tracer[n])
		}
	}
}

func TestCFLTimeStep(t *testing.T) {
	g := grid.NewRaster(4, 4, 1)
	u := make([]float64, g.NumberOfLinks())
	for i := range u {
		u[i] = 2
	}
	if dt := CFLTimeStep(g, u, 1); absDifferent(dt, 0.5, 1e-12) {
		t.Errorf("have %g, want 0.5", dt)
	}
	if dt := CFLTimeStep(g, u, 0.25); absDifferent(dt, 0.125, 1e-12) {
		t.Errorf("have %g, want 0.125", dt)
	}
	if dt := CFLTimeStep(g, make([]float64, g.NumberOfLinks()), 1); !math.IsInf(dt, 1) {
		t.Errorf("zero velocity: have %g, want +Inf", dt)
	}
}
