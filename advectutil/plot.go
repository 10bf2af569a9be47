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
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/spatialmodel/advect/grid"
)

// PlotProfile saves a plot of v along the middle node row of g to
// filename. The output format is determined by the file extension.
func PlotProfile(filename string, g *grid.Grid, v []float64, rows, cols int) error {
	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = "Tracer concentration"
	p.X.Label.Text = "x [m]"
	p.Y.Label.Text = "concentration"

	r := rows / 2
	pts := make(plotter.XYs, cols)
	for c := 0; c < cols; c++ {
		n := r*cols + c
		pts[c].X = g.NodeX(n)
		pts[c].Y = v[n]
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(l, plotter.NewGrid())
	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}
