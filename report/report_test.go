// SPDX-License-Identifier: MIT
package report

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/oramap/analysis"
	"github.com/katalvlaran/oramap/internal/maptest"
	"github.com/katalvlaran/oramap/oramap"
	"github.com/katalvlaran/oramap/terrain"
)

var (
	okResult = analysis.Result{
		Archive:            "maps/cross.oramap",
		Title:              "Cross",
		Mod:                "ra",
		Tileset:            "TEMPERAT",
		Format:             2,
		Width:              3,
		Height:             3,
		BiggestArea:        7,
		Symmetries:         []string{"horizontal", "vertical", "rotation-180"},
		ResourceSymmetries: []string{"horizontal", "vertical"},
	}
	failedResult = analysis.Result{
		Archive:            "maps/broken.oramap",
		Title:              "Broken",
		Symmetries:         []string{},
		ResourceSymmetries: []string{},
		ErrorKind:          analysis.KindTruncated,
		Error:              "mapgrid: truncated payload",
	}
)

func TestJSONLZstdWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "report.jsonl.zst")
	w, err := NewJSONLZstdWriter(path)
	require.NoError(t, err)

	require.NoError(t, w.Write("run-1", okResult))
	require.NoError(t, w.Write("run-1", failedResult))
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	assert.ErrorIs(t, w.Write("run-1", okResult), ErrClosed)

	recs, err := ReadJSONLZstd(path)
	require.NoError(t, err)
	want := []Record{
		{RunID: "run-1", Result: okResult},
		{RunID: "run-1", Result: failedResult},
	}
	if diff := cmp.Diff(want, recs); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONLZstdWriterConcurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.jsonl.zst")
	w, err := NewJSONLZstdWriter(path)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, w.Write("run", okResult))
		}()
	}
	wg.Wait()
	require.NoError(t, w.Close())

	recs, err := ReadJSONLZstd(path)
	require.NoError(t, err)
	assert.Len(t, recs, 16)
}

func TestSQLiteStore(t *testing.T) {
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "db", "maps.db"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Write("run-1", okResult))
	require.NoError(t, store.Write("run-1", failedResult))
	require.NoError(t, store.Write("run-2", okResult))
	// same key replaces
	require.NoError(t, store.Write("run-1", okResult))

	got, err := store.Results(context.Background(), "run-1")
	require.NoError(t, err)
	if diff := cmp.Diff([]analysis.Result{failedResult, okResult}, got); diff != "" {
		t.Fatalf("results mismatch (-want +got):\n%s", diff)
	}

	got, err = store.Results(context.Background(), "missing")
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, store.Close())
	require.NoError(t, store.Close())
}

func TestOpenSQLiteEmptyPath(t *testing.T) {
	_, err := OpenSQLite("")
	assert.Error(t, err)
}

func TestRunnerWithSinks(t *testing.T) {
	dir := t.TempDir()
	raw := maptest.OraMap("Cross", "ra", "TEMPERAT", maptest.FromTerrain(".#.", "...", ".#."))
	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+oramap.Ext), raw, 0o644))
	}

	out := t.TempDir()
	jw, err := NewJSONLZstdWriter(filepath.Join(out, "report.jsonl.zst"))
	require.NoError(t, err)
	store, err := OpenSQLite(filepath.Join(out, "maps.db"))
	require.NoError(t, err)
	defer store.Close()

	r := &analysis.Runner{
		Catalogs: terrain.NewModDirectory(maptest.ModFS("ra", "TEMPERAT")),
		Workers:  2,
		Sinks:    []analysis.Sink{jw, store},
	}
	sum, err := r.RunDir(context.Background(), dir)
	require.NoError(t, err)
	require.NoError(t, jw.Close())

	recs, err := ReadJSONLZstd(filepath.Join(out, "report.jsonl.zst"))
	require.NoError(t, err)
	assert.Len(t, recs, 3)
	for _, rec := range recs {
		assert.Equal(t, sum.RunID, rec.RunID)
		assert.Equal(t, 7, rec.BiggestArea)
	}

	rows, err := store.Results(context.Background(), sum.RunID)
	require.NoError(t, err)
	if diff := cmp.Diff(sum.Results, rows); diff != "" {
		t.Fatalf("stored rows differ from summary (-summary +db):\n%s", diff)
	}
}
