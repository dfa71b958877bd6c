// SPDX-License-Identifier: MIT
package gridgraph

import (
	"github.com/katalvlaran/oramap/mapgrid"
	"github.com/katalvlaran/oramap/terrain"
)

// ConnectedComponents finds all contiguous regions of traversable cells,
// according to gg.Conn connectivity.
// Seeds are taken in column-major scan order (x outer, y inner) and each
// region is flooded breadth-first with a FIFO queue, so both the region
// order and the cell order inside a region are deterministic.
// Non-traversable cells are skipped and never enter a region.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() []Region {
	seen := make([]bool, len(gg.passable))
	var comps []Region
	offsets := gg.NeighborOffsets()

	for x := 0; x < gg.Width; x++ {
		for y := 0; y < gg.Height; y++ {
			i0 := gg.grid.Index(x, y)
			if !gg.passable[i0] || seen[i0] {
				continue
			}
			// BFS to collect component
			queue := []mapgrid.Coord{{X: x, Y: y}}
			seen[i0] = true

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				for _, d := range offsets {
					vx, vy := u.X+d[0], u.Y+d[1]
					if !gg.Traversable(vx, vy) {
						continue
					}
					vi := gg.grid.Index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, mapgrid.Coord{X: vx, Y: vy})
					}
				}
			}
			comps = append(comps, Region(queue))
		}
	}
	return comps
}

// LargestComponent returns the region with the most cells. When several
// regions share the maximum size, the one discovered first wins.
// Returns ErrEmptyResult if no cell is traversable.
func (gg *GridGraph) LargestComponent() (Region, error) {
	var best Region
	for _, r := range gg.ConnectedComponents() {
		if len(r) > len(best) {
			best = r
		}
	}
	if best == nil {
		return nil, ErrEmptyResult
	}
	return best, nil
}

// LargestTraversableRegion returns the largest 8-connected region of cells
// whose terrain is in traversable. grid must already be annotated.
func LargestTraversableRegion(grid *mapgrid.MapGrid, traversable terrain.Set) (Region, error) {
	gg, err := NewGridGraph(grid, traversable, DefaultGridOptions())
	if err != nil {
		return nil, err
	}
	return gg.LargestComponent()
}
