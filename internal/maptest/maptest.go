// SPDX-License-Identifier: MIT
// Package maptest builds map fixtures for tests: synthetic grids drawn as
// ASCII rows, a reference encoder for the map.bin layout, .oramap
// containers and a matching mod directory.
//
// Rows are written top to bottom, so rows[y][x] is the cell (x,y).
package maptest

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sort"
	"testing/fstest"

	"github.com/klauspost/compress/zip"

	"github.com/katalvlaran/oramap/mapgrid"
	"github.com/katalvlaran/oramap/terrain"
)

// Terrain labels used by FromTerrain.
const (
	Clear = "Clear"
	Rock  = "Rock"
	Water = "Water"
	Road  = "Road"
)

// legend maps ASCII glyphs to terrain labels and template ids.
var legend = map[rune]struct {
	terrain  string
	template uint16
}{
	'.': {Clear, 1},
	'#': {Rock, 2},
	'~': {Water, 3},
	'=': {Road, 4},
}

// FromTerrain builds an annotated grid from glyph rows:
// '.' Clear, '#' Rock, '~' Water, '=' Road.
// Each glyph also sets a distinct tile Type so symmetry checks see it.
func FromTerrain(rows ...string) *mapgrid.MapGrid {
	w, h := rectangle(len(rows), func(y int) int { return len([]rune(rows[y])) })
	g := mapgrid.NewMapGrid(w, h)
	for y, row := range rows {
		for x, r := range []rune(row) {
			def, ok := legend[r]
			if !ok {
				panic(fmt.Sprintf("maptest: unknown glyph %q at (%d,%d)", r, x, y))
			}
			g.Tiles[g.Index(x, y)] = mapgrid.Tile{Type: def.template, Terrain: def.terrain}
		}
	}
	return g
}

// FromTypes builds a grid whose tile Types are taken from rows[y][x].
func FromTypes(rows [][]uint16) *mapgrid.MapGrid {
	w, h := rectangle(len(rows), func(y int) int { return len(rows[y]) })
	g := mapgrid.NewMapGrid(w, h)
	for y, row := range rows {
		for x, t := range row {
			g.Tiles[g.Index(x, y)].Type = t
		}
	}
	return g
}

// WithResources overwrites the resources of g from rows[y][x].
func WithResources(g *mapgrid.MapGrid, rows [][]mapgrid.Resource) *mapgrid.MapGrid {
	for y, row := range rows {
		for x, r := range row {
			g.Resources[g.Index(x, y)] = r
		}
	}
	return g
}

// Encode serialises g in the given format (1 or 2). Terrain labels are not
// part of the payload and are dropped. Format 2 places the heights section
// (one zero byte per cell) between tiles and resources.
func Encode(g *mapgrid.MapGrid, format uint8) []byte {
	cells := g.Width * g.Height
	var (
		buf      []byte
		tilesOff int
	)
	switch format {
	case mapgrid.Format1:
		buf = make([]byte, 5, 5+cells*5)
		tilesOff = 5
	case mapgrid.Format2:
		buf = make([]byte, 17, 17+cells*6)
		tilesOff = 17
	default:
		panic(fmt.Sprintf("maptest: unsupported format %d", format))
	}
	buf[0] = format
	binary.LittleEndian.PutUint16(buf[1:3], uint16(g.Width))
	binary.LittleEndian.PutUint16(buf[3:5], uint16(g.Height))

	for x := 0; x < g.Width; x++ {
		for y := 0; y < g.Height; y++ {
			t := g.Tile(x, y)
			buf = binary.LittleEndian.AppendUint16(buf, t.Type)
			buf = append(buf, t.Index)
		}
	}
	heightsOff := len(buf)
	if format == mapgrid.Format2 {
		buf = append(buf, make([]byte, cells)...)
	}
	resOff := len(buf)
	for x := 0; x < g.Width; x++ {
		for y := 0; y < g.Height; y++ {
			r := g.Resource(x, y)
			buf = append(buf, r.Type, r.Density)
		}
	}
	if format == mapgrid.Format2 {
		binary.LittleEndian.PutUint32(buf[5:9], uint32(tilesOff))
		binary.LittleEndian.PutUint32(buf[9:13], uint32(heightsOff))
		binary.LittleEndian.PutUint32(buf[13:17], uint32(resOff))
	}
	return buf
}

// Uniform returns a w×h grid where every tile has the same type, index and terrain.
func Uniform(w, h int, typ uint16, index uint8, terrain string) *mapgrid.MapGrid {
	g := mapgrid.NewMapGrid(w, h)
	for i := range g.Tiles {
		g.Tiles[i] = mapgrid.Tile{Type: typ, Index: index, Terrain: terrain}
	}
	return g
}

func rectangle(h int, rowLen func(y int) int) (int, int) {
	if h == 0 || rowLen(0) == 0 {
		panic("maptest: empty grid")
	}
	w := rowLen(0)
	for y := 1; y < h; y++ {
		if rowLen(y) != w {
			panic(fmt.Sprintf("maptest: row %d has %d cells, want %d", y, rowLen(y), w))
		}
	}
	return w, h
}

// MapYAML renders a minimal map.yaml with MiniYAML tab indentation.
func MapYAML(title, mod, tileset string, w, h int) string {
	return "MapFormat: 11\n" +
		"RequiresMod: " + mod + "\n" +
		"Title: " + title + "\n" +
		"Author: maptest\n" +
		"Tileset: " + tileset + "\n" +
		fmt.Sprintf("MapSize: %d,%d\n", w, h) +
		fmt.Sprintf("Bounds: 1,1,%d,%d\n", w-2, h-2) +
		"Players:\n" +
		"\tPlayerReference@Neutral:\n" +
		"\t\tName: Neutral\n" +
		"\t\tOwnsWorld: True\n"
}

// Archive packs the given members into an in-memory zip container.
func Archive(members map[string][]byte) []byte {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	names := make([]string, 0, len(members))
	for name := range members {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		w, err := zw.Create(name)
		if err != nil {
			panic(err)
		}
		if _, err = w.Write(members[name]); err != nil {
			panic(err)
		}
	}
	if err := zw.Close(); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// OraMap packs a grid and its metadata into a complete .oramap archive.
func OraMap(title, mod, tileset string, g *mapgrid.MapGrid) []byte {
	return Archive(map[string][]byte{
		"map.yaml": []byte(MapYAML(title, mod, tileset, g.Width, g.Height)),
		"map.bin":  Encode(g, mapgrid.Format2),
	})
}

// Catalog resolves the templates FromTerrain writes; Clear and Road are traversable.
func Catalog() *terrain.MemoryCatalog {
	return &terrain.MemoryCatalog{
		Templates: map[uint16][]string{
			1: {Clear},
			2: {Rock},
			3: {Water},
			4: {Road},
		},
		Traversable: terrain.NewSet(Clear, Road),
	}
}

// ModFS returns an OpenRA-style tree holding the tileset and rules that
// match Catalog for the given mod and tileset names.
func ModFS(mod, tileset string) fstest.MapFS {
	tilesetDoc := "General:\n\tId: " + tileset + "\nTemplates:\n"
	for id, label := range []string{Clear, Rock, Water, Road} {
		tilesetDoc += fmt.Sprintf("\tTemplate@%d:\n\t\tTiles:\n\t\t\t0: %s\n", id+1, label)
	}
	rules := "World:\n\tLocomotor@FOOT:\n\t\tTerrainSpeeds:\n\t\t\t" + Clear + ": 100\n\t\t\t" + Road + ": 100\n"
	return fstest.MapFS{
		terrain.TilesetPath(mod, tileset): {Data: []byte(tilesetDoc)},
		terrain.RulesPath(mod):            {Data: []byte(rules)},
	}
}
