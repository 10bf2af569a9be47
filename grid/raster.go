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

// NewRaster creates a rectangular grid with the given number of node rows
// and columns and uniform node spacing. Nodes are numbered row by row from
// the lower left. Links are numbered row by row from the bottom: first the
// horizontal links within a node row, then the vertical links connecting
// that row to the next. Horizontal links point east and vertical links
// point north. Perimeter nodes are fixed-value boundaries.
//
// For example, a grid with 3 rows and 4 columns has the link numbering
//
//	.-14-.-15-.-16-.
//	|    |    |    |
//	10  11   12   13
//	|    |    |    |
//	.--7-.--8-.--9-.
//	|    |    |    |
//	3    4    5    6
//	|    |    |    |
//	.--0-.--1-.--2-.
//
// with active links 4, 5, 7, 8, 9, 11, and 12.
func NewRaster(rows, cols int, spacing float64) *Grid {
	if rows < 3 || cols < 3 {
		panic("grid: a raster grid needs at least 3 rows and 3 columns")
	}
	g := &Grid{
		spacing:   spacing,
		cellArea:  spacing * spacing,
		faceWidth: spacing,
	}
	g.x = make([]float64, rows*cols)
	g.y = make([]float64, rows*cols)
	g.status = make([]NodeStatus, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			n := r*cols + c
			g.x[n] = float64(c) * spacing
			g.y[n] = float64(r) * spacing
			if r == 0 || r == rows-1 || c == 0 || c == cols-1 {
				g.status[n] = FixedValueBoundary
			}
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols-1; c++ {
			g.links = append(g.links, Link{
				Tail: r*cols + c, Head: r*cols + c + 1, Angle: 0,
			})
		}
		if r == rows-1 {
			break
		}
		for c := 0; c < cols; c++ {
			g.links = append(g.links, Link{
				Tail: r*cols + c, Head: (r+1)*cols + c, Angle: math.Pi / 2,
			})
		}
	}
	return newGrid(g)
}
