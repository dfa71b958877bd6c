// SPDX-License-Identifier: MIT
// Package terrain resolves decoded tiles to terrain labels.
//
// A tile stores a (template, index) pair; the tileset maps each template to
// an ordered list of terrain labels and the tile's index selects one of them.
// The mod rules name the terrain labels foot units may cross.
//
// What:
//
//   - Catalog: the two lookups the analyses need (template tiles, traversable set).
//   - Annotate: fills Tile.Terrain for every tile of a mapgrid.MapGrid.
//   - ParseTileset / ParseTraversable: read OpenRA tileset and world rules YAML.
//   - ModDirectory: loads and caches catalogs from an OpenRA install tree.
//
// Errors:
//
//   - ErrUnknownTemplate: a tile references a missing template or index.
//   - ErrInvalidCatalog: a tileset or rules document cannot be interpreted.
package terrain
