// SPDX-License-Identifier: MIT
// Package report persists analysis results.
//
// JSONLZstdWriter streams one JSON object per archive into a
// zstd-compressed file. SQLiteStore records the same rows in a sqlite
// database keyed by run id and archive. Both implement analysis.Sink.
package report
