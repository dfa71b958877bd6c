// SPDX-License-Identifier: MIT
package oramap_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/oramap/internal/maptest"
	"github.com/katalvlaran/oramap/mapgrid"
	"github.com/katalvlaran/oramap/oramap"
)

func TestParseMetadata(t *testing.T) {
	m, err := oramap.ParseMetadata([]byte(maptest.MapYAML("Forest Path", "ra", "TEMPERAT", 64, 48)))
	require.NoError(t, err)

	assert.Equal(t, oramap.Metadata{
		MapFormat:   11,
		RequiresMod: "ra",
		Title:       "Forest Path",
		Author:      "maptest",
		Tileset:     "TEMPERAT",
		MapSize:     "64,48",
		Bounds:      "1,1,62,46",
	}, m)

	w, h, err := m.Size()
	require.NoError(t, err)
	assert.Equal(t, 64, w)
	assert.Equal(t, 48, h)
}

func TestParseMetadata_Errors(t *testing.T) {
	_, err := oramap.ParseMetadata([]byte("Title: [broken"))
	assert.ErrorIs(t, err, oramap.ErrInvalidMetadata)

	_, _, err = oramap.Metadata{MapSize: "64"}.Size()
	assert.ErrorIs(t, err, oramap.ErrInvalidMetadata)
	_, _, err = oramap.Metadata{MapSize: "64,x"}.Size()
	assert.ErrorIs(t, err, oramap.ErrInvalidMetadata)
}

func TestOpen(t *testing.T) {
	g := maptest.Uniform(3, 2, 1, 0, maptest.Clear)
	path := filepath.Join(t.TempDir(), "plains.oramap")
	require.NoError(t, os.WriteFile(path, maptest.OraMap("Plains", "ra", "TEMPERAT", g), 0o644))

	a, err := oramap.Open(path)
	require.NoError(t, err)
	assert.Equal(t, path, a.Name)
	assert.Equal(t, "Plains", a.Metadata.Title)
	assert.Equal(t, "ra", a.Metadata.RequiresMod)
	assert.Equal(t, "TEMPERAT", a.Metadata.Tileset)

	hdr, decoded, err := mapgrid.Decode(a.Payload)
	require.NoError(t, err)
	assert.Equal(t, mapgrid.Format2, hdr.Format)
	assert.Equal(t, 3, decoded.Width)
	assert.Equal(t, 2, decoded.Height)
}

func TestRead_Errors(t *testing.T) {
	onlyYAML := maptest.Archive(map[string][]byte{
		oramap.MetadataMember: []byte("Title: x\n"),
	})
	onlyBin := maptest.Archive(map[string][]byte{
		oramap.PayloadMember: {1, 1, 0, 1, 0, 0, 0, 0, 0, 0},
	})
	badYAML := maptest.Archive(map[string][]byte{
		oramap.MetadataMember: []byte("Title: [x"),
		oramap.PayloadMember:  {1},
	})

	cases := []struct {
		name string
		data []byte
		err  error
	}{
		{"NoPayload", onlyYAML, oramap.ErrMissingMember},
		{"NoMetadata", onlyBin, oramap.ErrMissingMember},
		{"BadMetadata", badYAML, oramap.ErrInvalidMetadata},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := oramap.Read(bytes.NewReader(tc.data), int64(len(tc.data)), tc.name)
			assert.ErrorIs(t, err, tc.err)
			assert.ErrorContains(t, err, tc.name)
		})
	}

	notZip := []byte("definitely not a zip file")
	_, err := oramap.Read(bytes.NewReader(notZip), int64(len(notZip)), "junk")
	assert.Error(t, err)

	_, err = oramap.Open(filepath.Join(t.TempDir(), "missing.oramap"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
