// SPDX-License-Identifier: MIT
// Package analysis wires the map pipeline together:
//
//	archive → mapgrid.Decode → terrain.Annotate → gridgraph / symmetry
//
// Analyze runs the pipeline on one payload. Runner processes many archives
// on a bounded worker pool; a failing archive is recorded with its error
// kind and never stops the batch.
package analysis
