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

import "math"

// angleTol is the tolerance for treating two links as parallel.
const angleTol = 1e-9

// NoLink is the sentinel returned for a missing parallel link.
const NoLink = -1

// ParallelLinksAtLink returns, for every link, the indices of the two active
// links that continue it in its own direction: entry 0 is the link joined
// head-to-tail behind the tail node, and entry 1 is the link joined
// tail-to-head beyond the head node. An entry is NoLink when the
// continuation leaves the grid or lands on an inactive link.
//
// The table depends only on the grid topology. It is built on the first
// call and reused afterwards; the returned slice is owned by the grid and
// must not be modified.
func (g *Grid) ParallelLinksAtLink() [][2]int {
	if g.parallel != nil {
		return g.parallel
	}
	g.parallel = make([][2]int, len(g.links))
	for i, l := range g.links {
		behind, ahead := NoLink, NoLink
		for _, k := range g.linksAtNode[l.Tail] {
			if k == i || !g.activeMask[k] {
				continue
			}
			if g.links[k].Head == l.Tail && sameAngle(g.links[k].Angle, l.Angle) {
				behind = k
				break
			}
		}
		for _, k := range g.linksAtNode[l.Head] {
			if k == i || !g.activeMask[k] {
				continue
			}
			if g.links[k].Tail == l.Head && sameAngle(g.links[k].Angle, l.Angle) {
				ahead = k
				break
			}
		}
		g.parallel[i] = [2]int{behind, ahead}
	}
	return g.parallel
}

func sameAngle(a, b float64) bool { return math.Abs(a-b) < angleTol }
