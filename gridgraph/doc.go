// SPDX-License-Identifier: MIT
// Package gridgraph treats an annotated map grid as a graph of traversable
// cells and finds connected regions ("islands" of passable terrain).
//
// What:
//
//   - GridGraph wraps a *mapgrid.MapGrid with a traversable terrain set.
//   - ConnectedComponents floods every region in column-major scan order.
//   - LargestTraversableRegion returns the biggest region, first found on ties.
//
// Why:
//
//   - Map validation: a playable map keeps most of its passable ground reachable.
//   - Balance checks: compare the largest region against the map area.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//
// Options:
//
//   - GridOptions.Conn: Conn8 (Moore neighbourhood, default) or Conn4.
//
// Errors:
//
//   - ErrEmptyGrid: grid is nil or has no cells.
//   - ErrGridShape: tile slice does not hold Width×Height entries.
//   - ErrEmptyResult: no traversable cell exists.
package gridgraph
