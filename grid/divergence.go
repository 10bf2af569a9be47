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

package grid

// CalcFluxDivAtNode computes the net outward volumetric flux per unit cell
// area at each node from per-link fluxes. Only active links contribute:
// positive flux on a link is directed from tail to head, so it leaves the
// tail cell and enters the head cell through a face of width FaceWidth.
// The result is zero at boundary nodes, which have no cell.
//
// If out is nil a new slice is allocated; otherwise the result is written
// into out, which must have one element per node.
func (g *Grid) CalcFluxDivAtNode(flux, out []float64) []float64 {
	if out == nil {
		out = make([]float64, g.NumberOfNodes())
	} else {
		for i := range out {
			out[i] = 0
		}
	}
	for _, i := range g.activeLinks {
		l := g.links[i]
		q := flux[i] * g.faceWidth / g.cellArea
		if g.status[l.Tail] == CoreNode {
			out[l.Tail] += q
		}
		if g.status[l.Head] == CoreNode {
			out[l.Head] -= q
		}
	}
	return out
}
