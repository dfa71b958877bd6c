// SPDX-License-Identifier: MIT
package symmetry

import (
	"fmt"

	"github.com/katalvlaran/oramap/mapgrid"
)

// mapping is the geometric rule of one class. Column x scans y in
// rows(x,w,h) for every x in [0, cols(w)).
type mapping struct {
	square    bool
	resources bool
	cols      func(w int) int
	rows      func(x, w, h int) (lo, hi int)
	partner   func(x, y, w, h int) (int, int)
}

func ceilHalf(n int) int { return (n + 1) / 2 }

func allCols(w int) int { return w }

var mappings = map[Class]mapping{
	Horizontal: {
		resources: true,
		cols:      allCols,
		rows:      func(_, _, h int) (int, int) { return 0, ceilHalf(h) },
		partner:   func(x, y, _, h int) (int, int) { return x, h - 1 - y },
	},
	Vertical: {
		resources: true,
		cols:      ceilHalf,
		rows:      func(_, _, h int) (int, int) { return 0, h },
		partner:   func(x, y, w, _ int) (int, int) { return w - 1 - x, y },
	},
	DiagonalBottomLeftTopRight: {
		square:  true,
		cols:    allCols,
		rows:    func(x, _, h int) (int, int) { return 0, h - x },
		partner: func(x, y, w, h int) (int, int) { return w - 1 - y, h - 1 - x },
	},
	DiagonalTopLeftBottomRight: {
		square:  true,
		cols:    allCols,
		rows:    func(x, _, h int) (int, int) { return x, h },
		partner: func(x, y, _, _ int) (int, int) { return y, x },
	},
	Rotation180: {
		cols:    allCols,
		rows:    func(_, _, h int) (int, int) { return 0, ceilHalf(h) },
		partner: func(x, y, w, h int) (int, int) { return w - 1 - x, h - 1 - y },
	},
}

func (m mapping) inDomain(x, y, w, h int) bool {
	if x < 0 || x >= m.cols(w) {
		return false
	}
	lo, hi := m.rows(x, w, h)
	return y >= lo && y < hi
}

// lookup validates class, field and grid shape and returns the mapping.
func lookup(grid *mapgrid.MapGrid, class Class, field Field) (mapping, error) {
	if grid == nil {
		return mapping{}, ErrNilGrid
	}
	m, ok := mappings[class]
	if !ok {
		return mapping{}, fmt.Errorf("%w: %d", ErrUnknownClass, int(class))
	}
	if field == FieldResource && !m.resources {
		return mapping{}, fmt.Errorf("%s %s: %w", class, field, ErrUnsupported)
	}
	if m.square && !grid.IsSquare() {
		return mapping{}, fmt.Errorf("%s on %dx%d: %w", class, grid.Width, grid.Height, ErrNotSquare)
	}
	return m, nil
}

// Errors lists the cells whose field value differs from their partner under
// class. Each mismatching pair is reported once, as (scanned cell, partner),
// in scan order; when a partner also lies in the scanned domain and comes
// earlier, the pair was already compared and is skipped.
//
// Returns ErrNotSquare for diagonal classes on non-square grids and
// ErrUnsupported for resource checks other than Horizontal or Vertical.
// Complexity: O(W×H).
func Errors(grid *mapgrid.MapGrid, class Class, field Field) ([]Pair, error) {
	m, err := lookup(grid, class, field)
	if err != nil {
		return nil, err
	}
	w, h := grid.Width, grid.Height
	equal := equalTiles
	if field == FieldResource {
		equal = equalResources
	}

	var out []Pair
	for x := 0; x < m.cols(w); x++ {
		lo, hi := m.rows(x, w, h)
		for y := lo; y < hi; y++ {
			px, py := m.partner(x, y, w, h)
			if (px < x || (px == x && py < y)) && m.inDomain(px, py, w, h) {
				continue
			}
			if !equal(grid, grid.Index(x, y), grid.Index(px, py)) {
				out = append(out, Pair{
					A: mapgrid.Coord{X: x, Y: y},
					B: mapgrid.Coord{X: px, Y: py},
				})
			}
		}
	}
	return out, nil
}

func equalTiles(g *mapgrid.MapGrid, i, j int) bool {
	return g.Tiles[i].Type == g.Tiles[j].Type
}

func equalResources(g *mapgrid.MapGrid, i, j int) bool {
	return g.Resources[i] == g.Resources[j]
}

// IsSymmetric reports whether Errors finds no mismatch.
func IsSymmetric(grid *mapgrid.MapGrid, class Class, field Field) (bool, error) {
	errs, err := Errors(grid, class, field)
	if err != nil {
		return false, err
	}
	return len(errs) == 0, nil
}

// ValidSymmetries returns, in Classes order, every class under which the
// tile layer has no mismatch. Each class is evaluated independently.
// Diagonal classes are never valid on a non-square grid.
func ValidSymmetries(grid *mapgrid.MapGrid) ([]Class, error) {
	return valid(grid, FieldTile, Classes)
}

// ValidResourceSymmetries is ValidSymmetries for the resource layer,
// restricted to Horizontal and Vertical.
func ValidResourceSymmetries(grid *mapgrid.MapGrid) ([]Class, error) {
	return valid(grid, FieldResource, []Class{Horizontal, Vertical})
}

func valid(grid *mapgrid.MapGrid, field Field, classes []Class) ([]Class, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	out := []Class{}
	for _, c := range classes {
		if mappings[c].square && !grid.IsSquare() {
			continue
		}
		ok, err := IsSymmetric(grid, c, field)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, c)
		}
	}
	return out, nil
}
