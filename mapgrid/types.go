// SPDX-License-Identifier: MIT
package mapgrid

import (
	"errors"
	"fmt"
)

// Sentinel errors for map payload decoding.
var (
	// ErrInvalidHeader indicates an unknown format tag or non-positive dimensions.
	ErrInvalidHeader = errors.New("mapgrid: invalid header")
	// ErrTruncated indicates the buffer is shorter than the declared layout.
	ErrTruncated = errors.New("mapgrid: truncated payload")
)

// Supported on-disk format tags.
const (
	Format1 uint8 = 1
	Format2 uint8 = 2
)

// Fixed record and header sizes in bytes.
const (
	baseHeaderSize = 5
	v2HeaderSize   = 17
	tileRecordSize = 3
	resRecordSize  = 2
)

// Header describes the payload layout. HeightsOffset is decoded for
// format 2 but not used by any analysis.
type Header struct {
	Format          uint8
	Width           uint16
	Height          uint16
	TilesOffset     uint32
	HeightsOffset   uint32
	ResourcesOffset uint32
}

// Coord is a grid coordinate, 0 <= X < Width, 0 <= Y < Height.
type Coord struct {
	X, Y int
}

// String formats the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Tile is a single decoded map cell. Type and Index come from the payload;
// Terrain is filled in later by terrain.Annotate.
type Tile struct {
	Type    uint16
	Index   uint8
	Terrain string
}

// Resource is a decoded resource cell. Two resources are equal when both
// fields match.
type Resource struct {
	Type    uint8
	Density uint8
}

// MapGrid owns Width×Height tiles and resources with no gaps.
// Both slices are column-major: the cell (x,y) lives at x*Height + y.
type MapGrid struct {
	Width, Height int
	Tiles         []Tile
	Resources     []Resource
}

// NewMapGrid allocates a zero-valued grid of the given size.
// Width and Height must be positive.
func NewMapGrid(width, height int) *MapGrid {
	n := width * height
	return &MapGrid{
		Width:     width,
		Height:    height,
		Tiles:     make([]Tile, n),
		Resources: make([]Resource, n),
	}
}

// InBounds reports whether (x,y) lies within the grid.
func (g *MapGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index maps (x,y) to its column-major slice position.
func (g *MapGrid) Index(x, y int) int {
	return x*g.Height + y
}

// Coordinate converts a column-major index back to a Coord.
func (g *MapGrid) Coordinate(idx int) Coord {
	return Coord{X: idx / g.Height, Y: idx % g.Height}
}

// Tile returns the tile at (x,y). The caller guarantees InBounds(x,y).
func (g *MapGrid) Tile(x, y int) Tile {
	return g.Tiles[g.Index(x, y)]
}

// Resource returns the resource at (x,y). The caller guarantees InBounds(x,y).
func (g *MapGrid) Resource(x, y int) Resource {
	return g.Resources[g.Index(x, y)]
}

// IsSquare reports whether Width == Height.
func (g *MapGrid) IsSquare() bool {
	return g.Width == g.Height
}
