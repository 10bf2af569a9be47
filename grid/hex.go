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

// NewHex creates a hexagonal-lattice grid with rows of cols nodes each and
// uniform node spacing. Odd-numbered rows are offset east by half the node
// spacing, and row spacing is s·√3/2, so every interior node has six
// equidistant neighbors. Links point in the three lattice directions east
// (0), northeast (π/3), and northwest (2π/3), and are numbered row by row:
// first the east links within a node row, then the links connecting that
// row to the next. Perimeter nodes are fixed-value boundaries.
//
// Each interior node is surrounded by a hexagonal cell with area (√3/2)·s²
// whose faces have width s/√3.
func NewHex(rows, cols int, spacing float64) *Grid {
	if rows < 3 || cols < 3 {
		panic("grid: a hex grid needs at least 3 rows and 3 columns")
	}
	g := &Grid{
		spacing:   spacing,
		cellArea:  math.Sqrt(3) / 2 * spacing * spacing,
		faceWidth: spacing / math.Sqrt(3),
	}
	g.x = make([]float64, rows*cols)
	g.y = make([]float64, rows*cols)
	g.status = make([]NodeStatus, rows*cols)
	dy := spacing * math.Sqrt(3) / 2
	for r := 0; r < rows; r++ {
		xo := 0.0
		if r%2 == 1 {
			xo = spacing / 2
		}
		for c := 0; c < cols; c++ {
			n := r*cols + c
			g.x[n] = xo + float64(c)*spacing
			g.y[n] = float64(r) * dy
			if r == 0 || r == rows-1 || c == 0 || c == cols-1 {
				g.status[n] = FixedValueBoundary
			}
		}
	}
	const (
		east      = 0.0
		northeast = math.Pi / 3
		northwest = 2 * math.Pi / 3
	)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols-1; c++ {
			g.links = append(g.links, Link{
				Tail: r*cols + c, Head: r*cols + c + 1, Angle: east,
			})
		}
		if r == rows-1 {
			break
		}
		for c := 0; c < cols; c++ {
			n := r*cols + c
			if r%2 == 0 {
				// Row above is offset east by half a spacing.
				if c > 0 {
					g.links = append(g.links, Link{
						Tail: n, Head: (r+1)*cols + c - 1, Angle: northwest,
					})
				}
				g.links = append(g.links, Link{
					Tail: n, Head: (r+1)*cols + c, Angle: northeast,
				})
			} else {
				// Row above is offset west by half a spacing.
				g.links = append(g.links, Link{
					Tail: n, Head: (r+1)*cols + c, Angle: northwest,
				})
				if c < cols-1 {
					g.links = append(g.links, Link{
						Tail: n, Head: (r+1)*cols + c + 1, Angle: northeast,
					})
				}
			}
		}
	}
	return newGrid(g)
}
