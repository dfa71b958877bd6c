// SPDX-License-Identifier: MIT
package mapgrid_test

import (
	"fmt"

	"github.com/katalvlaran/oramap/mapgrid"
)

// ExampleDecode decodes a hand-written format 1 payload for a 2×1 map.
// Records are column-major: tiles for (0,0) then (1,0), then resources.
func ExampleDecode() {
	payload := []byte{
		1,             // format
		2, 0,          // width
		1, 0,          // height
		0x10, 0x00, 0, // tile (0,0): template 16, index 0
		0x11, 0x00, 3, // tile (1,0): template 17, index 3
		0, 0,          // resource (0,0)
		1, 12,         // resource (1,0): type 1, density 12
	}

	hdr, grid, err := mapgrid.Decode(payload)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("format %d, %dx%d, resources at %d\n", hdr.Format, grid.Width, grid.Height, hdr.ResourcesOffset)
	fmt.Println(grid.Tile(1, 0).Type, grid.Tile(1, 0).Index, grid.Resource(1, 0).Density)
	// Output:
	// format 1, 2x1, resources at 11
	// 17 3 12
}
