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

	"github.com/spatialmodel/advect/grid"
)

// maxGradRatio is the value assigned to the smoothness ratio when the
// local gradient is exactly zero but the upwind gradient is not. The
// limiter saturates for large ratios, and the two face reconstructions
// coincide when the local difference vanishes, so any large finite value
// gives the same flux.
const maxGradRatio = 1e6

// UpwindToLocalGradRatio computes, for every link, the ratio of the scalar
// difference across the upwind link to the difference across the link
// itself. The ratio measures local smoothness: near 1 where the field
// varies linearly, and negative across extrema.
//
// Division by a zero local difference is guarded: the ratio is 0 when both
// differences are zero, maxGradRatio (with the sign of the upwind
// difference) when only the local difference is zero, and 0 where there is
// no upwind link, which falls back to the low-order reconstruction next to
// boundaries.
//
// If out is nil a new slice is allocated; otherwise the result is written
// into out, which must have one element per link.
func UpwindToLocalGradRatio(g *grid.Grid, v []float64, upwindLink []int, out []float64) []float64 {
	if out == nil {
		out = make([]float64, g.NumberOfLinks())
	}
	for i := range out {
		uw := upwindLink[i]
		if uw == grid.NoLink {
			out[i] = 0
			continue
		}
		l := g.Link(i)
		u := g.Link(uw)
		localDiff := v[l.Head] - v[l.Tail]
		upwindDiff := v[u.Head] - v[u.Tail]
		switch {
		case localDiff != 0:
			out[i] = upwindDiff / localDiff
		case upwindDiff == 0:
			out[i] = 0
		default:
			out[i] = math.Copysign(maxGradRatio, upwindDiff)
		}
	}
	return out
}

// FluxLimVanLeer is van Leer's flux limiter,
//
//	ψ(r) = (r + |r|) / (1 + |r|).
//
// It is continuous and bounded in [0, 2): ψ(0) = 0, ψ(1) = 1, ψ(r) → 2 as
// r → ∞, and ψ(r) = 0 for all r ≤ 0, so no weight is given to the
// high-order reconstruction where the field is non-monotonic.
func FluxLimVanLeer(r float64) float64 {
	return (r + math.Abs(r)) / (1 + math.Abs(r))
}
