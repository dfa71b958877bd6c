// SPDX-License-Identifier: MIT
package symmetry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/oramap/mapgrid"
)

// Sentinel errors for symmetry checks.
var (
	// ErrNotSquare signals a diagonal class requested on a grid with Width != Height.
	ErrNotSquare = errors.New("symmetry: diagonal symmetry requires a square grid")
	// ErrUnsupported signals a field/class combination that is not defined.
	ErrUnsupported = errors.New("symmetry: unsupported field for class")
	// ErrUnknownClass signals a Class value outside the enumeration.
	ErrUnknownClass = errors.New("symmetry: unknown class")
	// ErrNilGrid signals a nil grid argument.
	ErrNilGrid = errors.New("symmetry: grid is nil")
)

// Class is a symmetry class.
type Class int

const (
	Horizontal Class = iota + 1
	Vertical
	DiagonalBottomLeftTopRight
	DiagonalTopLeftBottomRight
	Rotation180
)

// Classes lists all classes in evaluation order.
var Classes = []Class{
	Horizontal,
	Vertical,
	DiagonalBottomLeftTopRight,
	DiagonalTopLeftBottomRight,
	Rotation180,
}

var classNames = map[Class]string{
	Horizontal:                 "horizontal",
	Vertical:                   "vertical",
	DiagonalBottomLeftTopRight: "diagonal-bl-tr",
	DiagonalTopLeftBottomRight: "diagonal-tl-br",
	Rotation180:                "rotation-180",
}

// String returns the class name used in reports.
func (c Class) String() string {
	if n, ok := classNames[c]; ok {
		return n
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// ParseClass is the inverse of Class.String.
func ParseClass(s string) (Class, error) {
	for c, n := range classNames {
		if strings.EqualFold(n, s) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownClass, s)
}

// Names returns the String form of each class.
func Names(cs []Class) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.String()
	}
	return out
}

// Field selects which layer of the grid is compared.
type Field int

const (
	// FieldTile compares Tile.Type.
	FieldTile Field = iota
	// FieldResource compares the full Resource value.
	FieldResource
)

func (f Field) String() string {
	if f == FieldResource {
		return "resource"
	}
	return "tile"
}

// Pair is one mismatch: cell A differs from its partner B.
type Pair struct {
	A, B mapgrid.Coord
}

func (p Pair) String() string {
	return p.A.String() + "-" + p.B.String()
}
