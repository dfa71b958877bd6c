// SPDX-License-Identifier: MIT
package terrain

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/oramap/mapgrid"
)

// Sentinel errors for terrain lookups.
var (
	// ErrUnknownTemplate indicates a tile whose template or index is not in the catalog.
	ErrUnknownTemplate = errors.New("terrain: unknown template")
	// ErrInvalidCatalog indicates a tileset or rules document that cannot be used.
	ErrInvalidCatalog = errors.New("terrain: invalid catalog")
)

// TemplateError names the tile that failed to resolve during Annotate.
// It matches ErrUnknownTemplate via errors.Is.
type TemplateError struct {
	Coord    mapgrid.Coord
	Template uint16
	Index    uint8
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("terrain: unknown template %d index %d at %s", e.Template, e.Index, e.Coord)
}

// Is reports whether target is ErrUnknownTemplate.
func (e *TemplateError) Is(target error) bool {
	return target == ErrUnknownTemplate
}

// Set is a set of terrain labels.
type Set map[string]struct{}

// NewSet builds a Set from labels.
func NewSet(labels ...string) Set {
	s := make(Set, len(labels))
	for _, l := range labels {
		s[l] = struct{}{}
	}
	return s
}

// Has reports whether label is in the set.
func (s Set) Has(label string) bool {
	_, ok := s[label]
	return ok
}

// Sorted returns the labels in lexical order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for l := range s {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Catalog is the terrain vocabulary of one mod and tileset.
//
// TemplateTiles returns the terrain labels of a template ordered by tile
// index; an empty label marks an index the template does not define.
// TraversableTerrainTypes returns the labels counted as passable.
type Catalog interface {
	TemplateTiles(template uint16) ([]string, bool)
	TraversableTerrainTypes() Set
}

// MemoryCatalog is a Catalog backed by in-memory tables.
type MemoryCatalog struct {
	Templates   map[uint16][]string
	Traversable Set
}

// NewCatalog combines a parsed tileset with a traversable set.
func NewCatalog(ts *Tileset, traversable Set) *MemoryCatalog {
	return &MemoryCatalog{Templates: ts.Templates, Traversable: traversable}
}

// TemplateTiles implements Catalog.
func (c *MemoryCatalog) TemplateTiles(template uint16) ([]string, bool) {
	tiles, ok := c.Templates[template]
	return tiles, ok
}

// TraversableTerrainTypes implements Catalog.
func (c *MemoryCatalog) TraversableTerrainTypes() Set {
	return c.Traversable
}
