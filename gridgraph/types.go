// SPDX-License-Identifier: MIT
// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph package of github.com/katalvlaran/oramap.
package gridgraph

import (
	"errors"

	"github.com/katalvlaran/oramap/mapgrid"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates a nil grid or one without cells.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one cell")
	// ErrGridShape indicates the tile slice length differs from Width×Height.
	ErrGridShape = errors.New("gridgraph: tile count does not match grid dimensions")
	// ErrEmptyResult indicates the grid has no traversable cell.
	ErrEmptyResult = errors.New("gridgraph: no traversable cells")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns GridOptions with Conn=Conn8, the adjacency
// used for foot traversal on OpenRA maps.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn8}
}

// Region is a set of mutually reachable traversable cells, listed in the
// order the flood fill reached them. Callers treat it as read-only.
type Region []mapgrid.Coord

// Len returns the number of cells in the region.
func (r Region) Len() int { return len(r) }

// Contains reports whether c belongs to the region. O(len(r)).
func (r Region) Contains(c mapgrid.Coord) bool {
	for _, rc := range r {
		if rc == c {
			return true
		}
	}
	return false
}

// Set returns the region as a lookup set.
func (r Region) Set() map[mapgrid.Coord]struct{} {
	s := make(map[mapgrid.Coord]struct{}, len(r))
	for _, c := range r {
		s[c] = struct{}{}
	}
	return s
}

// GridGraph views a map grid as a graph whose vertices are traversable cells.
// It does not copy the grid; the grid must not change while the view is used.
// passable[i] caches traversability of the cell at column-major index i.
type GridGraph struct {
	Width, Height   int
	Conn            Connectivity
	grid            *mapgrid.MapGrid
	passable        []bool
	neighborOffsets [][2]int
}
