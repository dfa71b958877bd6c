// SPDX-License-Identifier: MIT
// Package oramap inspects OpenRA map files: it decodes the binary map
// payload, labels every cell with its terrain type and answers two design
// questions about a map. How large is the biggest area a foot unit can
// roam, and which mirror or rotation symmetries does the layout satisfy?
//
// What is inside?
//
//	mapgrid/   map.bin header and tile/resource grid decoder (formats 1 and 2)
//	terrain/   terrain catalogs, tileset and rules loaders, grid annotation
//	gridgraph/ grid connectivity (Conn4/Conn8) and largest traversable region
//	symmetry/  per-class mismatch lists and valid symmetry classes
//	oramap/    .oramap archive reader (map.yaml + map.bin)
//	analysis/  single-map pipeline and bounded concurrent batch runner
//	report/    zstd JSONL and sqlite result sinks
//	config/    environment configuration
//	cmd/mapcheck command-line batch scanner
//
// Quick start:
//
//	mods := terrain.NewModDirectory(os.DirFS("/opt/openra"))
//	a, _ := oramap.Open("maps/desert-rats.oramap")
//	res, err := analysis.AnalyzeArchive(a, mods)
//	fmt.Println(res.Title, res.BiggestArea, res.Symmetries, err)
//
// Grids are stored column-major, exactly as the payload lays them out:
// cell (x,y) lives at index x*Height+y.
package oramap
