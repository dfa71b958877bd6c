// SPDX-License-Identifier: MIT
package analysis

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/oramap/gridgraph"
	"github.com/katalvlaran/oramap/mapgrid"
	"github.com/katalvlaran/oramap/oramap"
	"github.com/katalvlaran/oramap/symmetry"
	"github.com/katalvlaran/oramap/terrain"
)

// CatalogSource supplies the terrain catalog for a mod and tileset.
// *terrain.ModDirectory implements it.
type CatalogSource interface {
	Catalog(mod, tileset string) (terrain.Catalog, error)
}

// Analysis is the full outcome of one payload.
type Analysis struct {
	Header             mapgrid.Header
	Grid               *mapgrid.MapGrid
	Region             gridgraph.Region
	Symmetries         []symmetry.Class
	ResourceSymmetries []symmetry.Class
}

// Analyze decodes payload, annotates it with cat and runs both analyses.
// The first failing stage ends the call.
func Analyze(payload []byte, cat terrain.Catalog) (*Analysis, error) {
	hdr, grid, err := mapgrid.Decode(payload)
	if err != nil {
		return nil, err
	}
	if err = terrain.Annotate(grid, cat); err != nil {
		return nil, err
	}
	region, err := gridgraph.LargestTraversableRegion(grid, cat.TraversableTerrainTypes())
	if err != nil {
		return nil, err
	}
	syms, err := symmetry.ValidSymmetries(grid)
	if err != nil {
		return nil, err
	}
	resSyms, err := symmetry.ValidResourceSymmetries(grid)
	if err != nil {
		return nil, err
	}
	return &Analysis{
		Header:             hdr,
		Grid:               grid,
		Region:             region,
		Symmetries:         syms,
		ResourceSymmetries: resSyms,
	}, nil
}

// Result is the per-archive record handed to sinks.
type Result struct {
	Archive            string   `json:"archive"`
	Title              string   `json:"title,omitempty"`
	Mod                string   `json:"mod,omitempty"`
	Tileset            string   `json:"tileset,omitempty"`
	Format             uint8    `json:"format,omitempty"`
	Width              int      `json:"width,omitempty"`
	Height             int      `json:"height,omitempty"`
	BiggestArea        int      `json:"biggest_area"`
	Symmetries         []string `json:"symmetries"`
	ResourceSymmetries []string `json:"resource_symmetries"`
	ErrorKind          string   `json:"error_kind,omitempty"`
	Error              string   `json:"error,omitempty"`
}

// Failed reports whether the archive could not be analysed.
func (r Result) Failed() bool { return r.ErrorKind != "" }

// AnalyzeArchive resolves the catalog named by the archive metadata and
// analyses its payload. The returned Result always names the archive; on
// failure it also carries the error kind and message.
func AnalyzeArchive(a *oramap.Archive, src CatalogSource) (Result, error) {
	res := Result{
		Archive: a.Name,
		Title:   a.Metadata.Title,
		Mod:     a.Metadata.RequiresMod,
		Tileset: a.Metadata.Tileset,
	}
	cat, err := src.Catalog(a.Metadata.RequiresMod, a.Metadata.Tileset)
	if err != nil {
		return res.failAs(KindCatalog, fmt.Errorf("catalog: %w", err))
	}
	an, err := Analyze(a.Payload, cat)
	if err != nil {
		return res.fail(err)
	}
	res.Format = an.Header.Format
	res.Width = an.Grid.Width
	res.Height = an.Grid.Height
	res.BiggestArea = an.Region.Len()
	res.Symmetries = symmetry.Names(an.Symmetries)
	res.ResourceSymmetries = symmetry.Names(an.ResourceSymmetries)
	return res, nil
}

// AnalyzeFile opens the archive at path and analyses it.
func AnalyzeFile(path string, src CatalogSource) (Result, error) {
	a, err := oramap.Open(path)
	if err != nil {
		return Result{Archive: path}.failAs(KindArchive, err)
	}
	return AnalyzeArchive(a, src)
}

func (r Result) fail(err error) (Result, error) {
	return r.failAs(Kind(err), err)
}

func (r Result) failAs(kind string, err error) (Result, error) {
	r.ErrorKind = kind
	r.Error = err.Error()
	return r, err
}

// Error kinds reported in results.
const (
	KindInvalidHeader   = "invalid_header"
	KindTruncated       = "truncated"
	KindUnknownTemplate = "unknown_template"
	KindNotSquare       = "not_square"
	KindUnsupported     = "unsupported"
	KindEmptyResult     = "empty_result"
	KindArchive         = "archive"
	KindCatalog         = "catalog"
	KindOther           = "other"
)

var kinds = []struct {
	err  error
	kind string
}{
	{mapgrid.ErrInvalidHeader, KindInvalidHeader},
	{mapgrid.ErrTruncated, KindTruncated},
	{terrain.ErrUnknownTemplate, KindUnknownTemplate},
	{symmetry.ErrNotSquare, KindNotSquare},
	{symmetry.ErrUnsupported, KindUnsupported},
	{gridgraph.ErrEmptyResult, KindEmptyResult},
	{terrain.ErrInvalidCatalog, KindCatalog},
	{oramap.ErrMissingMember, KindArchive},
	{oramap.ErrInvalidMetadata, KindArchive},
}

// Kind maps an error to a stable kind name; "" for nil.
func Kind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindOther
}
