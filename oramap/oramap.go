// SPDX-License-Identifier: MIT
// Package oramap reads OpenRA map archives (.oramap): a zip container with a
// map.yaml metadata document and a map.bin payload.
package oramap

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zip"
	"gopkg.in/yaml.v3"
)

// Member names inside an archive.
const (
	MetadataMember = "map.yaml"
	PayloadMember  = "map.bin"
)

// Ext is the archive file extension.
const Ext = ".oramap"

var (
	// ErrMissingMember indicates the archive lacks map.yaml or map.bin.
	ErrMissingMember = errors.New("oramap: missing archive member")
	// ErrInvalidMetadata indicates map.yaml could not be parsed.
	ErrInvalidMetadata = errors.New("oramap: invalid metadata")
)

// Metadata is the subset of map.yaml used by the analyses and reports.
type Metadata struct {
	MapFormat   int    `yaml:"MapFormat"`
	RequiresMod string `yaml:"RequiresMod"`
	Title       string `yaml:"Title"`
	Author      string `yaml:"Author"`
	Tileset     string `yaml:"Tileset"`
	MapSize     string `yaml:"MapSize"`
	Bounds      string `yaml:"Bounds"`
}

// Size parses MapSize ("W,H"). It is informational; the payload header is
// authoritative for decoding.
func (m Metadata) Size() (w, h int, err error) {
	ws, hs, ok := strings.Cut(m.MapSize, ",")
	if !ok {
		return 0, 0, fmt.Errorf("%w: MapSize %q", ErrInvalidMetadata, m.MapSize)
	}
	if w, err = strconv.Atoi(strings.TrimSpace(ws)); err != nil {
		return 0, 0, fmt.Errorf("%w: MapSize %q", ErrInvalidMetadata, m.MapSize)
	}
	if h, err = strconv.Atoi(strings.TrimSpace(hs)); err != nil {
		return 0, 0, fmt.Errorf("%w: MapSize %q", ErrInvalidMetadata, m.MapSize)
	}
	return w, h, nil
}

// Archive is an extracted map archive.
type Archive struct {
	Name     string
	Metadata Metadata
	Payload  []byte
}

// ParseMetadata decodes a map.yaml document. Tabs are expanded to two
// spaces first, since MiniYAML indents with tabs.
func ParseMetadata(raw []byte) (Metadata, error) {
	var m Metadata
	raw = bytes.ReplaceAll(raw, []byte("\t"), []byte("  "))
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return Metadata{}, fmt.Errorf("%w: %v", ErrInvalidMetadata, err)
	}
	return m, nil
}

// Open reads the archive at path.
func Open(path string) (*Archive, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, err
	}
	return Read(f, st.Size(), path)
}

// Read extracts map.yaml and map.bin from a zip stream of the given size.
// name identifies the archive in errors and results.
func Read(r io.ReaderAt, size int64, name string) (*Archive, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	rawMeta, err := readMember(zr, MetadataMember)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	payload, err := readMember(zr, PayloadMember)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	meta, err := ParseMetadata(rawMeta)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &Archive{Name: name, Metadata: meta, Payload: payload}, nil
}

func readMember(zr *zip.Reader, member string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name != member {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", member, err)
		}
		defer rc.Close()
		b, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", member, err)
		}
		return b, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrMissingMember, member)
}
