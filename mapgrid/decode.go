// SPDX-License-Identifier: MIT
package mapgrid

import (
	"encoding/binary"
	"fmt"
)

// Decode parses a map.bin payload into its Header and a fully populated
// MapGrid. The input buffer is never modified or retained.
//
// Returns ErrInvalidHeader for an unknown format tag or zero dimensions,
// ErrTruncated when the buffer cannot hold the declared header or sections.
// Complexity: O(W×H).
func Decode(data []byte) (Header, *MapGrid, error) {
	hdr, err := DecodeHeader(data)
	if err != nil {
		return Header{}, nil, err
	}

	w, h := int(hdr.Width), int(hdr.Height)
	cells := uint64(w) * uint64(h)
	if err = checkSection(data, "tiles", hdr.TilesOffset, cells*tileRecordSize); err != nil {
		return Header{}, nil, err
	}
	hasResources := hdr.Format == Format1 || hdr.ResourcesOffset != 0
	if hasResources {
		if err = checkSection(data, "resources", hdr.ResourcesOffset, cells*resRecordSize); err != nil {
			return Header{}, nil, err
		}
	}

	grid := NewMapGrid(w, h)
	decodeTiles(data[hdr.TilesOffset:], grid)
	if hasResources {
		decodeResources(data[hdr.ResourcesOffset:], grid)
	}

	return hdr, grid, nil
}

// DecodeHeader reads only the header and derives the section offsets.
// Format 1 offsets are fixed; format 2 offsets are read from bytes [5:17).
func DecodeHeader(data []byte) (Header, error) {
	if len(data) < baseHeaderSize {
		return Header{}, fmt.Errorf("%w: header needs %d bytes, have %d", ErrTruncated, baseHeaderSize, len(data))
	}
	hdr := Header{
		Format: data[0],
		Width:  binary.LittleEndian.Uint16(data[1:3]),
		Height: binary.LittleEndian.Uint16(data[3:5]),
	}
	if hdr.Width == 0 || hdr.Height == 0 {
		return Header{}, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidHeader, hdr.Width, hdr.Height)
	}

	switch hdr.Format {
	case Format1:
		hdr.TilesOffset = baseHeaderSize
		hdr.ResourcesOffset = baseHeaderSize + tileRecordSize*uint32(hdr.Width)*uint32(hdr.Height)
	case Format2:
		if len(data) < v2HeaderSize {
			return Header{}, fmt.Errorf("%w: format 2 header needs %d bytes, have %d", ErrTruncated, v2HeaderSize, len(data))
		}
		hdr.TilesOffset = binary.LittleEndian.Uint32(data[5:9])
		hdr.HeightsOffset = binary.LittleEndian.Uint32(data[9:13])
		hdr.ResourcesOffset = binary.LittleEndian.Uint32(data[13:17])
	default:
		return Header{}, fmt.Errorf("%w: unknown format %d", ErrInvalidHeader, hdr.Format)
	}

	return hdr, nil
}

// checkSection verifies that size bytes starting at offset fit in data.
func checkSection(data []byte, name string, offset uint32, size uint64) error {
	if uint64(offset)+size > uint64(len(data)) {
		return fmt.Errorf("%w: %s section [%d:%d) exceeds %d bytes",
			ErrTruncated, name, offset, uint64(offset)+size, len(data))
	}
	return nil
}

// decodeTiles consumes 3-byte tile records column-major into grid.Tiles.
func decodeTiles(buf []byte, grid *MapGrid) {
	pos := 0
	for x := 0; x < grid.Width; x++ {
		for y := 0; y < grid.Height; y++ {
			grid.Tiles[grid.Index(x, y)] = Tile{
				Type:  binary.LittleEndian.Uint16(buf[pos : pos+2]),
				Index: buf[pos+2],
			}
			pos += tileRecordSize
		}
	}
}

// decodeResources consumes 2-byte resource records column-major into grid.Resources.
func decodeResources(buf []byte, grid *MapGrid) {
	pos := 0
	for x := 0; x < grid.Width; x++ {
		for y := 0; y < grid.Height; y++ {
			grid.Resources[grid.Index(x, y)] = Resource{
				Type:    buf[pos],
				Density: buf[pos+1],
			}
			pos += resRecordSize
		}
	}
}
