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
	"testing"

	"github.com/spatialmodel/advect/grid"
)

// upwindAt gathers the upwind-link map entries at the active links.
func upwindAt(g *grid.Grid, uwl []int) []int {
	out := make([]int, len(g.ActiveLinks()))
	for i, l := range g.ActiveLinks() {
		out[i] = uwl[l]
	}
	return out
}

func sameInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFindUpwindLinkAtLinkUniform(t *testing.T) {
	g := grid.NewRaster(3, 4, 1)

	uwl := FindUpwindLinkAtLink(g, UniformVelocity(1))
	want := []int{-1, -1, -1, 7, 8, 4, 5}
	if have := upwindAt(g, uwl); !sameInts(have, want) {
		t.Errorf("uniform positive: have %v, want %v", have, want)
	}

	uwl = FindUpwindLinkAtLink(g, UniformVelocity(-1))
	want = []int{11, 12, 8, 9, -1, -1, -1}
	if have := upwindAt(g, uwl); !sameInts(have, want) {
		t.Errorf("uniform negative: have %v, want %v", have, want)
	}

	// Zero velocity counts as positive.
	uwl = FindUpwindLinkAtLink(g, UniformVelocity(0))
	want = []int{-1, -1, -1, 7, 8, 4, 5}
	if have := upwindAt(g, uwl); !sameInts(have, want) {
		t.Errorf("uniform zero: have %v, want %v", have, want)
	}
}

func TestFindUpwindLinkAtLinkMixed(t *testing.T) {
	g := grid.NewRaster(3, 4, 1)
	u := make([]float64, g.NumberOfLinks())
	u[4], u[5] = -1, -1
	u[7] = -1
	u[8], u[9] = 1, 1
	u[11], u[12] = 1, 1
	uwl := FindUpwindLinkAtLink(g, LinkVelocity(u))
	// Each entry is the sign-appropriate candidate for that link.
	want := []int{11, 12, 8, 7, 8, 4, 5}
	if have := upwindAt(g, uwl); !sameInts(have, want) {
		t.Errorf("mixed signs: have %v, want %v", have, want)
	}
}

func TestFindUpwindLinkAtLinkPerLinkZero(t *testing.T) {
	g := grid.NewRaster(3, 4, 1)
	// An all-zero per-link array selects the positive candidates.
	uwl := FindUpwindLinkAtLink(g, LinkVelocity(make([]float64, g.NumberOfLinks())))
	want := []int{-1, -1, -1, 7, 8, 4, 5}
	if have := upwindAt(g, uwl); !sameInts(have, want) {
		t.Errorf("per-link zeros: have %v, want %v", have, want)
	}
}

func TestFindUpwindLinkAtLinkHex(t *testing.T) {
	g := grid.NewHex(5, 5, 1)
	pll := g.ParallelLinksAtLink()
	uwl := FindUpwindLinkAtLink(g, UniformVelocity(2.5))
	for i := range uwl {
		if uwl[i] != pll[i][0] {
			t.Errorf("link %d: have %d, want behind candidate %d", i, uwl[i], pll[i][0])
		}
	}
	uwl = FindUpwindLinkAtLink(g, UniformVelocity(-2.5))
	for i := range uwl {
		if uwl[i] != pll[i][1] {
			t.Errorf("link %d: have %d, want ahead candidate %d", i, uwl[i], pll[i][1])
		}
	}
}
