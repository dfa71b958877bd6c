// SPDX-License-Identifier: MIT
package gridgraph

import (
	"github.com/katalvlaran/oramap/mapgrid"
	"github.com/katalvlaran/oramap/terrain"
)

// NewGridGraph builds a traversability view of an annotated grid.
// A cell is traversable when its Terrain is in traversable.
// Returns ErrEmptyGrid for a nil or zero-sized grid,
// ErrGridShape if the tile slice does not cover Width×Height.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(grid *mapgrid.MapGrid, traversable terrain.Set, opts GridOptions) (*GridGraph, error) {
	if grid == nil || grid.Width <= 0 || grid.Height <= 0 {
		return nil, ErrEmptyGrid
	}
	if len(grid.Tiles) != grid.Width*grid.Height {
		return nil, ErrGridShape
	}
	passable := make([]bool, len(grid.Tiles))
	for i, t := range grid.Tiles {
		passable[i] = traversable.Has(t.Terrain)
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:           grid.Width,
		Height:          grid.Height,
		Conn:            opts.Conn,
		grid:            grid,
		passable:        passable,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Traversable reports whether (x,y) is inside the grid and passable.
// Complexity: O(1).
func (gg *GridGraph) Traversable(x, y int) bool {
	return gg.InBounds(x, y) && gg.passable[gg.grid.Index(x, y)]
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Neighbors returns the in-bounds cells adjacent to c under gg.Conn,
// excluding c itself. Traversability is not checked.
func (gg *GridGraph) Neighbors(c mapgrid.Coord) []mapgrid.Coord {
	out := make([]mapgrid.Coord, 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		nx, ny := c.X+d[0], c.Y+d[1]
		if gg.InBounds(nx, ny) {
			out = append(out, mapgrid.Coord{X: nx, Y: ny})
		}
	}
	return out
}
