// SPDX-License-Identifier: MIT
// Package symmetry validates the geometric symmetry of a map grid.
//
// Five classes are supported, each a pure coordinate mapping:
//
//	Horizontal                  (x,y) ↔ (x, H-1-y)       mirror across the middle row
//	Vertical                    (x,y) ↔ (W-1-x, y)       mirror across the middle column
//	DiagonalBottomLeftTopRight  (x,y) ↔ (W-1-y, H-1-x)   mirror across the anti-diagonal
//	DiagonalTopLeftBottomRight  (x,y) ↔ (y, x)           mirror across the main diagonal
//	Rotation180                 (x,y) ↔ (W-1-x, H-1-y)   half turn about the centre
//
// Errors compares every scanned cell with its partner and lists the pairs
// whose values differ, once per pair, in scan order (x outer, y inner).
// Tiles compare by template Type; resources compare by full value.
//
// Errors:
//
//   - ErrNotSquare: a diagonal class was requested on a non-square grid.
//   - ErrUnsupported: resource symmetry requested for a class other than
//     Horizontal or Vertical.
//   - ErrUnknownClass: the Class value is not one of the five classes.
//
// Complexity: O(W×H) per class; ValidSymmetries is O(5×W×H).
package symmetry
