// SPDX-License-Identifier: MIT
package terrain

import "github.com/katalvlaran/oramap/mapgrid"

// Annotate sets Tile.Terrain for every tile of grid from cat.
// Tiles are resolved column-major; the first tile that cannot be resolved
// fails the call with a *TemplateError and leaves grid untouched.
//
// Annotate is idempotent: the label depends only on (Type, Index) and cat.
// Complexity: O(W×H) lookups.
func Annotate(grid *mapgrid.MapGrid, cat Catalog) error {
	labels := make([]string, len(grid.Tiles))
	for i, t := range grid.Tiles {
		label, ok := lookup(cat, t.Type, t.Index)
		if !ok {
			return &TemplateError{
				Coord:    grid.Coordinate(i),
				Template: t.Type,
				Index:    t.Index,
			}
		}
		labels[i] = label
	}
	for i := range grid.Tiles {
		grid.Tiles[i].Terrain = labels[i]
	}
	return nil
}

func lookup(cat Catalog, template uint16, index uint8) (string, bool) {
	tiles, ok := cat.TemplateTiles(template)
	if !ok || int(index) >= len(tiles) || tiles[index] == "" {
		return "", false
	}
	return tiles[index], true
}
