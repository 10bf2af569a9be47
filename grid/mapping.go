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

// MapNodeToLinkLinearUpwind assigns to each link the value of v at the node
// on the upwind side of the link for the flow direction given by u: the
// tail node where u ≥ 0, the head node where u < 0. If out is nil a new
// slice is allocated; otherwise the result is written into out, which must
// have one element per link.
func (g *Grid) MapNodeToLinkLinearUpwind(v, u, out []float64) []float64 {
	if out == nil {
		out = make([]float64, len(g.links))
	}
	for i, l := range g.links {
		if u[i] >= 0 {
			out[i] = v[l.Tail]
		} else {
			out[i] = v[l.Head]
		}
	}
	return out
}

// MapNodeToLinkLaxWendroff assigns to each link a Lax-Wendroff weighted
// combination of the node values on either side,
//
//	½((1+c)·v[tail] + (1−c)·v[head]),
//
// where c is the signed link-parallel wave speed or Courant number. With
// c = 0 this is a centered average; c = ±1 selects the tail or head value.
// If out is nil a new slice is allocated; otherwise the result is written
// into out, which must have one element per link.
func (g *Grid) MapNodeToLinkLaxWendroff(v, c, out []float64) []float64 {
	if out == nil {
		out = make([]float64, len(g.links))
	}
	for i, l := range g.links {
		out[i] = 0.5 * ((1+c[i])*v[l.Tail] + (1-c[i])*v[l.Head])
	}
	return out
}
