// SPDX-License-Identifier: MIT
// Package mapgrid decodes the binary payload of an OpenRA map (map.bin)
// into a rectangular grid of tiles and a parallel grid of resources.
//
// What:
//
//   - Header: format tag, width, height and section offsets.
//   - MapGrid: Width×Height tiles and resources, stored column-major.
//   - Decode: pure function from an immutable byte buffer to Header+MapGrid.
//
// Layout (little-endian):
//
//	offset 0: uint8 format, uint16 width, uint16 height
//	format 1: tiles at 5, resources at 5 + 3·W·H
//	format 2: uint32 tilesOffset, heightsOffset, resourcesOffset at [5:17)
//	tile record:     uint16 template, uint8 index   (3 bytes)
//	resource record: uint8 type, uint8 density      (2 bytes)
//
// Records are stored column-major: x in [0,W) outer, y in [0,H) inner.
//
// Errors:
//
//   - ErrInvalidHeader: unknown format tag or zero width/height.
//   - ErrTruncated: buffer shorter than the declared layout requires.
//
// Complexity: Decode is O(W×H) time and memory.
package mapgrid
