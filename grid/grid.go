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

// Package grid provides regular raster and hexagonal computational grids
// for finite-volume calculations. A grid is made up of nodes, which hold
// scalar quantities, and links, which connect pairs of adjacent nodes and
// hold fluxes and velocities. Named data fields can be attached to either
// nodes or links.
package grid

import "fmt"

// NodeStatus gives the boundary-condition role of a node.
type NodeStatus int

const (
	// CoreNode is an interior node whose value the model is allowed
	// to update.
	CoreNode NodeStatus = iota

	// FixedValueBoundary is a perimeter node with an externally
	// prescribed value.
	FixedValueBoundary

	// ClosedBoundary is a node that does not participate in the
	// calculation; links touching it carry no flux.
	ClosedBoundary
)

// Link is a directed connection between two adjacent nodes. Links always
// point in the direction of increasing coordinate, so Angle is in [0, π).
type Link struct {
	Tail, Head int     // node indices
	Angle      float64 // direction from tail to head [radians]
}

// Grid is a regular computational grid. Use NewRaster or NewHex to create
// one; the zero value is not usable.
type Grid struct {
	x, y        []float64
	status      []NodeStatus
	links       []Link
	linksAtNode [][]int

	spacing   float64
	cellArea  float64
	faceWidth float64

	activeLinks []int
	activeMask  []bool
	coreNodes   []int

	// parallel is the lazily built table of same-direction neighbor
	// links; see ParallelLinksAtLink.
	parallel [][2]int

	atNode map[string][]float64
	atLink map[string][]float64
}

// newGrid finishes construction once nodes and links are in place.
func newGrid(g *Grid) *Grid {
	g.linksAtNode = make([][]int, len(g.status))
	for i, l := range g.links {
		g.linksAtNode[l.Tail] = append(g.linksAtNode[l.Tail], i)
		g.linksAtNode[l.Head] = append(g.linksAtNode[l.Head], i)
	}
	g.activeMask = make([]bool, len(g.links))
	for i, l := range g.links {
		if g.status[l.Tail] == ClosedBoundary || g.status[l.Head] == ClosedBoundary {
			continue
		}
		if g.status[l.Tail] == CoreNode || g.status[l.Head] == CoreNode {
			g.activeMask[i] = true
			g.activeLinks = append(g.activeLinks, i)
		}
	}
	for i, s := range g.status {
		if s == CoreNode {
			g.coreNodes = append(g.coreNodes, i)
		}
	}
	g.atNode = make(map[string][]float64)
	g.atLink = make(map[string][]float64)
	return g
}

// NumberOfNodes returns the total number of nodes in the grid.
func (g *Grid) NumberOfNodes() int { return len(g.status) }

// NumberOfLinks returns the total number of links in the grid.
func (g *Grid) NumberOfLinks() int { return len(g.links) }

// Link returns the link with index i.
func (g *Grid) Link(i int) Link { return g.links[i] }

// NodeX returns the x coordinate of node i.
func (g *Grid) NodeX(i int) float64 { return g.x[i] }

// NodeY returns the y coordinate of node i.
func (g *Grid) NodeY(i int) float64 { return g.y[i] }

// Status returns the boundary-condition status of node i.
func (g *Grid) Status(i int) NodeStatus { return g.status[i] }

// ActiveLinks returns the indices of the links that are eligible to carry
// flux: links where neither node is closed and at least one node is a core
// node. The returned slice is owned by the grid and must not be modified.
func (g *Grid) ActiveLinks() []int { return g.activeLinks }

// LinkIsActive reports whether link i is an active link.
func (g *Grid) LinkIsActive(i int) bool { return g.activeMask[i] }

// CoreNodes returns the indices of the interior nodes. The returned slice
// is owned by the grid and must not be modified.
func (g *Grid) CoreNodes() []int { return g.coreNodes }

// Spacing returns the node spacing.
func (g *Grid) Spacing() float64 { return g.spacing }

// LinkLength returns the length of link i. All links in a regular grid
// have the same length.
func (g *Grid) LinkLength(i int) float64 { return g.spacing }

// CellArea returns the area of the cell surrounding each core node.
func (g *Grid) CellArea() float64 { return g.cellArea }

// FaceWidth returns the width of the cell face crossed by each link.
func (g *Grid) FaceWidth() float64 { return g.faceWidth }

// AddZerosAtNode attaches a zero-filled node field with the given name and
// returns it. If the field already exists, the existing field is returned
// unchanged.
func (g *Grid) AddZerosAtNode(name string) []float64 {
	if f, ok := g.atNode[name]; ok {
		return f
	}
	f := make([]float64, g.NumberOfNodes())
	g.atNode[name] = f
	return f
}

// AddZerosAtLink attaches a zero-filled link field with the given name and
// returns it. If the field already exists, the existing field is returned
// unchanged.
func (g *Grid) AddZerosAtLink(name string) []float64 {
	if f, ok := g.atLink[name]; ok {
		return f
	}
	f := make([]float64, g.NumberOfLinks())
	g.atLink[name] = f
	return f
}

// AtNode returns the node field with the given name, or an error if no
// such field has been registered.
func (g *Grid) AtNode(name string) ([]float64, error) {
	f, ok := g.atNode[name]
	if !ok {
		return nil, fmt.Errorf("grid: no node field %q", name)
	}
	return f, nil
}

// AtLink returns the link field with the given name, or an error if no
// such field has been registered.
func (g *Grid) AtLink(name string) ([]float64, error) {
	f, ok := g.atLink[name]
	if !ok {
		return nil, fmt.Errorf("grid: no link field %q", name)
	}
	return f, nil
}

// HasAtNode reports whether a node field with the given name exists.
func (g *Grid) HasAtNode(name string) bool {
	_, ok := g.atNode[name]
	return ok
}

// HasAtLink reports whether a link field with the given name exists.
func (g *Grid) HasAtLink(name string) bool {
	_, ok := g.atLink[name]
	return ok
}
