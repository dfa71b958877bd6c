// SPDX-License-Identifier: MIT
package analysis

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/oramap/gridgraph"
	"github.com/katalvlaran/oramap/internal/maptest"
	"github.com/katalvlaran/oramap/mapgrid"
	"github.com/katalvlaran/oramap/oramap"
	"github.com/katalvlaran/oramap/symmetry"
	"github.com/katalvlaran/oramap/terrain"
)

const (
	testMod     = "ra"
	testTileset = "TEMPERAT"
)

func crossGrid() *mapgrid.MapGrid {
	return maptest.FromTerrain(
		".#.",
		"...",
		".#.",
	)
}

// staticSource serves one catalog for every mod and tileset.
type staticSource struct{ cat terrain.Catalog }

func (s staticSource) Catalog(string, string) (terrain.Catalog, error) { return s.cat, nil }

func readArchive(t *testing.T, name string, raw []byte) *oramap.Archive {
	t.Helper()
	a, err := oramap.Read(bytes.NewReader(raw), int64(len(raw)), name)
	require.NoError(t, err)
	return a
}

func TestAnalyze(t *testing.T) {
	payload := maptest.Encode(crossGrid(), mapgrid.Format1)

	an, err := Analyze(payload, maptest.Catalog())
	require.NoError(t, err)
	assert.Equal(t, mapgrid.Format1, an.Header.Format)
	assert.Equal(t, 7, an.Region.Len())
	assert.Equal(t, maptest.Rock, an.Grid.Tile(1, 0).Terrain)
	assert.Equal(t, []symmetry.Class{symmetry.Horizontal, symmetry.Vertical, symmetry.Rotation180}, an.Symmetries)
	assert.Equal(t, []symmetry.Class{symmetry.Horizontal, symmetry.Vertical}, an.ResourceSymmetries)
}

func TestAnalyzeStageErrors(t *testing.T) {
	cat := maptest.Catalog()

	_, err := Analyze([]byte{2, 1}, cat)
	assert.ErrorIs(t, err, mapgrid.ErrTruncated)

	unknown := maptest.Encode(maptest.FromTypes([][]uint16{{1, 9}}), mapgrid.Format2)
	_, err = Analyze(unknown, cat)
	assert.ErrorIs(t, err, terrain.ErrUnknownTemplate)

	blocked := maptest.Encode(maptest.FromTerrain("#~", "~#"), mapgrid.Format2)
	_, err = Analyze(blocked, cat)
	assert.ErrorIs(t, err, gridgraph.ErrEmptyResult)
}

func TestAnalyzeArchive(t *testing.T) {
	src := terrain.NewModDirectory(maptest.ModFS(testMod, testTileset))
	a := readArchive(t, "cross.oramap", maptest.OraMap("Cross", testMod, testTileset, crossGrid()))

	res, err := AnalyzeArchive(a, src)
	require.NoError(t, err)
	assert.False(t, res.Failed())
	assert.Equal(t, Result{
		Archive:            "cross.oramap",
		Title:              "Cross",
		Mod:                testMod,
		Tileset:            testTileset,
		Format:             mapgrid.Format2,
		Width:              3,
		Height:             3,
		BiggestArea:        7,
		Symmetries:         []string{"horizontal", "vertical", "rotation-180"},
		ResourceSymmetries: []string{"horizontal", "vertical"},
	}, res)
}

func TestAnalyzeArchiveFailures(t *testing.T) {
	src := terrain.NewModDirectory(maptest.ModFS(testMod, testTileset))

	t.Run("missing tileset", func(t *testing.T) {
		a := readArchive(t, "snow.oramap", maptest.OraMap("Snow", testMod, "SNOW", crossGrid()))
		res, err := AnalyzeArchive(a, src)
		require.Error(t, err)
		assert.True(t, res.Failed())
		assert.Equal(t, KindCatalog, res.ErrorKind)
		assert.Equal(t, "Snow", res.Title)
	})

	t.Run("truncated payload", func(t *testing.T) {
		raw := maptest.Archive(map[string][]byte{
			oramap.MetadataMember: []byte(maptest.MapYAML("Short", testMod, testTileset, 10, 10)),
			oramap.PayloadMember:  append([]byte{1, 10, 0, 10, 0}, make([]byte, 50)...),
		})
		res, err := AnalyzeArchive(readArchive(t, "short.oramap", raw), src)
		assert.ErrorIs(t, err, mapgrid.ErrTruncated)
		assert.Equal(t, KindTruncated, res.ErrorKind)
		assert.Zero(t, res.Width)
	})

	t.Run("unknown template", func(t *testing.T) {
		g := maptest.FromTypes([][]uint16{{1, 1}, {1, 42}})
		a := readArchive(t, "odd.oramap", maptest.OraMap("Odd", testMod, testTileset, g))
		res, err := AnalyzeArchive(a, src)
		assert.ErrorIs(t, err, terrain.ErrUnknownTemplate)
		assert.Equal(t, KindUnknownTemplate, res.ErrorKind)
		assert.Contains(t, res.Error, "42")
	})
}

func TestAnalyzeFileMissing(t *testing.T) {
	res, err := AnalyzeFile("/nonexistent/none.oramap", staticSource{maptest.Catalog()})
	require.Error(t, err)
	assert.Equal(t, KindArchive, res.ErrorKind)
	assert.Equal(t, "/nonexistent/none.oramap", res.Archive)
}

func TestKind(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{fmt.Errorf("wrap: %w", mapgrid.ErrInvalidHeader), KindInvalidHeader},
		{mapgrid.ErrTruncated, KindTruncated},
		{&terrain.TemplateError{Template: 7}, KindUnknownTemplate},
		{symmetry.ErrNotSquare, KindNotSquare},
		{symmetry.ErrUnsupported, KindUnsupported},
		{gridgraph.ErrEmptyResult, KindEmptyResult},
		{terrain.ErrInvalidCatalog, KindCatalog},
		{oramap.ErrMissingMember, KindArchive},
		{errors.New("boom"), KindOther},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Kind(tc.err), "%v", tc.err)
	}
}
