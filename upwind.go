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

import "github.com/spatialmodel/advect/grid"

// Velocity specifies the link-parallel advection velocity used to resolve
// upwind directions: either a single uniform value or one value per link.
// Use UniformVelocity or LinkVelocity to create one.
type Velocity struct {
	perLink []float64
	uniform float64
}

// UniformVelocity returns a Velocity that is u on every link.
func UniformVelocity(u float64) Velocity { return Velocity{uniform: u} }

// LinkVelocity returns a Velocity with one value per link.
func LinkVelocity(u []float64) Velocity { return Velocity{perLink: u} }

// FindUpwindLinkAtLink returns, for every link, the index of the link
// immediately upwind for the flow direction given by v, or grid.NoLink if
// the upwind direction leaves the grid or lands on an inactive link.
// Velocity values of exactly zero count as positive.
//
// For example, on a 3×4 raster grid (see grid.NewRaster for the link
// numbering) with active links 4, 5, 7, 8, 9, 11, and 12, a uniform
// positive velocity gives upwind links [-1, -1, -1, 7, 8, 4, 5] at the
// active links, and a uniform negative velocity gives
// [11, 12, 8, 9, -1, -1, -1].
func FindUpwindLinkAtLink(g *grid.Grid, v Velocity) []int {
	uwl := make([]int, g.NumberOfLinks())
	selectUpwind(g.ParallelLinksAtLink(), v, uwl)
	return uwl
}

// selectUpwind fills out with the sign-appropriate candidate from the
// parallel-link table: entry 0 (behind) for nonnegative velocity, entry 1
// (ahead) for negative velocity.
func selectUpwind(pll [][2]int, v Velocity, out []int) {
	if v.perLink == nil {
		w := 0
		if v.uniform < 0 {
			w = 1
		}
		for i := range out {
			out[i] = pll[i][w]
		}
		return
	}
	for i := range out {
		out[i] = pll[i][0]
	}
	for i, u := range v.perLink {
		if u < 0 {
			out[i] = pll[i][1]
		}
	}
}
