// SPDX-License-Identifier: MIT
package report

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/oramap/analysis"
)

// ErrClosed is returned by writes after Close.
var ErrClosed = errors.New("report: sink is closed")

// Record is one line of a JSONL report.
type Record struct {
	RunID string `json:"run_id"`
	analysis.Result
}

// JSONLZstdWriter appends Records to a .jsonl.zst file.
type JSONLZstdWriter struct {
	mu     sync.Mutex
	f      *os.File
	enc    *zstd.Encoder
	w      *bufio.Writer
	closed bool
}

// NewJSONLZstdWriter creates or truncates path and its parent directories.
func NewJSONLZstdWriter(path string) (*JSONLZstdWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &JSONLZstdWriter{
		f:   f,
		enc: enc,
		w:   bufio.NewWriterSize(enc, 64*1024),
	}, nil
}

// Write appends one record. It is safe for concurrent use.
func (w *JSONLZstdWriter) Write(runID string, r analysis.Result) error {
	b, err := json.Marshal(Record{RunID: runID, Result: r})
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}
	if _, err = w.w.Write(b); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

// Close flushes the buffer, finishes the zstd frame and closes the file.
func (w *JSONLZstdWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true

	errFlush := w.w.Flush()
	errEnc := w.enc.Close()
	errFile := w.f.Close()
	return errors.Join(errFlush, errEnc, errFile)
}

// ReadJSONLZstd decodes every record from a report written by JSONLZstdWriter.
func ReadJSONLZstd(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	var out []Record
	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		var rec Record
		if err = json.Unmarshal(sc.Bytes(), &rec); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, sc.Err()
}
