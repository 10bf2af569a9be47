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
	"math"
	"testing"

	"github.com/spatialmodel/advect/grid"
)

func TestSimConfigDefaults(t *testing.T) {
	c, err := simConfig(Cfg)
	if err != nil {
		t.Fatal(err)
	}
	if c.GridType != "raster" {
		t.Errorf("grid type: have %q, want raster", c.GridType)
	}
	if c.Rows != 50 || c.Cols != 50 {
		t.Errorf("grid size: have %d×%d, want 50×50", c.Rows, c.Cols)
	}
	if c.CFLFraction != 0.2 {
		t.Errorf("CFLFraction: have %g, want 0.2", c.CFLFraction)
	}
}

func TestSimConfigInvalid(t *testing.T) {
	tests := []struct {
		key string
		val interface{}
	}{
		{"Grid.Rows", 2},
		{"Grid.Spacing", -1.0},
		{"CFLFraction", 0.0},
		{"NumSteps", "not a number"},
	}
	for _, test := range tests {
		old := Cfg.Get(test.key)
		Cfg.Set(test.key, test.val)
		if _, err := simConfig(Cfg); err == nil {
			t.Errorf("%s = %v: expected an error", test.key, test.val)
		}
		Cfg.Set(test.key, old)
	}
}

func TestSetGaussian(t *testing.T) {
	g := grid.NewRaster(5, 5, 1)
	v := make([]float64, g.NumberOfNodes())
	setGaussian(g, v, 2, 1.5)
	if v[12] != 2 { // center node
		t.Errorf("peak: have %g, want 2", v[12])
	}
	// Symmetry about the center.
	pairs := [][2]int{{11, 13}, {7, 17}, {0, 24}, {6, 18}}
	for _, p := range pairs {
		if v[p[0]] != v[p[1]] {
			t.Errorf("nodes %d and %d: %g != %g", p[0], p[1], v[p[0]], v[p[1]])
		}
	}
	for i, val := range v {
		if val <= 0 || val > 2 {
			t.Errorf("node %d: value %g out of range", i, val)
		}
	}
}

func TestCoreMass(t *testing.T) {
	g := grid.NewRaster(4, 5, 2)
	v := make([]float64, g.NumberOfNodes())
	for i := range v {
		v[i] = 1
	}
	// 6 core nodes with 2×2 m cells.
	if m := coreMass(g, v); math.Abs(m-24) > 1e-12 {
		t.Errorf("have %g, want 24", m)
	}
}

func TestCheckOutputFile(t *testing.T) {
	if f, err := checkOutputFile(""); err != nil || f != "" {
		t.Errorf("empty path: have %q, %v", f, err)
	}
	if _, err := checkOutputFile("out.ncf"); err != nil {
		t.Errorf("relative path: %v", err)
	}
	if _, err := checkOutputFile("/no/such/directory/out.ncf"); err == nil {
		t.Error("missing directory: expected an error")
	}
}
