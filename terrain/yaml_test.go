// SPDX-License-Identifier: MIT
package terrain_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/oramap/terrain"
)

// Documents use tab indentation the way OpenRA ships them.
const tilesetYAML = "General:\n" +
	"\tName: Temperate\n" +
	"\tId: TEMPERAT\n" +
	"\n" +
	"Terrain:\n" +
	"\tTerrainType@Clear:\n" +
	"\t\tType: Clear\n" +
	"\n" +
	"Templates:\n" +
	"\tTemplate@255:\n" +
	"\t\tId: 255\n" +
	"\t\tImages: clear1.tem\n" +
	"\t\tSize: 1,1\n" +
	"\t\tTiles:\n" +
	"\t\t\t0: Clear\n" +
	"\tTemplate@1:\n" +
	"\t\tImages: w1.tem\n" +
	"\t\tTiles:\n" +
	"\t\t\t0: Water\n" +
	"\t\t\t2: Rock\n"

const worldYAML = "^BaseWorld:\n" +
	"\tAlwaysVisible:\n" +
	"\tLocomotor@FOOT:\n" +
	"\t\tName: foot\n" +
	"\t\tCrushes: mine, crate\n" +
	"\t\tTerrainSpeeds:\n" +
	"\t\t\tClear: 90\n" +
	"\t\t\tRough: 80\n" +
	"\t\t\tRoad: 100\n" +
	"\tLocomotor@WHEELED:\n" +
	"\t\tName: wheeled\n" +
	"\t\tTerrainSpeeds:\n" +
	"\t\t\tClear: 60\n" +
	"\t\t\tWater: 10\n"

func TestParseTileset(t *testing.T) {
	ts, err := terrain.ParseTileset([]byte(tilesetYAML))
	require.NoError(t, err)

	assert.Equal(t, "TEMPERAT", ts.ID)
	assert.Equal(t, "Temperate", ts.Name)
	assert.Equal(t, []string{"Clear"}, ts.Templates[255])
	assert.Equal(t, []string{"Water", "", "Rock"}, ts.Templates[1])
}

func TestParseTileset_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"NotYAML", "Templates: [unclosed"},
		{"NoTemplates", "General:\n\tName: X\n"},
		{"NonNumericID", "Templates:\n\tTemplate@abc:\n\t\tTiles:\n\t\t\t0: Clear\n"},
		{"IndexOutOfRange", "Templates:\n\tTemplate@3:\n\t\tTiles:\n\t\t\t300: Clear\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := terrain.ParseTileset([]byte(tc.doc))
			assert.ErrorIs(t, err, terrain.ErrInvalidCatalog)
		})
	}
}

func TestParseTraversable(t *testing.T) {
	set, err := terrain.ParseTraversable([]byte(worldYAML))
	require.NoError(t, err)
	assert.Equal(t, []string{"Clear", "Road", "Rough"}, set.Sorted())
}

func TestParseTraversable_MissingLocomotor(t *testing.T) {
	_, err := terrain.ParseTraversable([]byte("World:\n\tAlwaysVisible:\n"))
	assert.ErrorIs(t, err, terrain.ErrInvalidCatalog)
}

func TestModDirectory(t *testing.T) {
	fsys := fstest.MapFS{
		"mods/ra/tilesets/temperat.yaml": {Data: []byte(tilesetYAML)},
		"mods/ra/rules/world.yaml":       {Data: []byte(worldYAML)},
	}
	dir := terrain.NewModDirectory(fsys)

	cat, err := dir.Catalog("ra", "TEMPERAT")
	require.NoError(t, err)
	tiles, ok := cat.TemplateTiles(255)
	require.True(t, ok)
	assert.Equal(t, []string{"Clear"}, tiles)
	assert.True(t, cat.TraversableTerrainTypes().Has("Rough"))

	// cached documents survive removal of the files
	delete(fsys, "mods/ra/tilesets/temperat.yaml")
	_, err = dir.Catalog("ra", "temperat")
	assert.NoError(t, err)
}

func TestModDirectory_Errors(t *testing.T) {
	fsys := fstest.MapFS{
		"mods/ra/tilesets/temperat.yaml": {Data: []byte(tilesetYAML)},
	}
	dir := terrain.NewModDirectory(fsys)

	_, err := dir.Catalog("ra", "snow")
	assert.Error(t, err)

	_, err = dir.Catalog("ra", "temperat")
	assert.ErrorContains(t, err, "mods/ra/rules/world.yaml")

	_, err = dir.Catalog("", "temperat")
	assert.ErrorIs(t, err, terrain.ErrInvalidCatalog)
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "mods/cnc/tilesets/desert.yaml", terrain.TilesetPath("cnc", "DESERT"))
	assert.Equal(t, "mods/cnc/rules/world.yaml", terrain.RulesPath("cnc"))
}
