// SPDX-License-Identifier: MIT
package terrain

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// footLocomotor is the rules key whose TerrainSpeeds define passable terrain.
const footLocomotor = "Locomotor@FOOT"

// Tileset is the part of an OpenRA tileset document the analyses use.
// Templates maps a template id to its terrain labels ordered by tile index.
type Tileset struct {
	ID        string
	Name      string
	Templates map[uint16][]string
}

type tilesetDoc struct {
	General struct {
		ID   string `yaml:"Id"`
		Name string `yaml:"Name"`
	} `yaml:"General"`
	Templates map[string]templateDoc `yaml:"Templates"`
}

type templateDoc struct {
	ID    *int           `yaml:"Id"`
	Tiles map[int]string `yaml:"Tiles"`
}

// MiniYAML indents with tabs, which YAML forbids.
func normalizeTabs(raw []byte) []byte {
	return bytes.ReplaceAll(raw, []byte("\t"), []byte("  "))
}

// ParseTileset decodes a tileset document. A template's id is its Id field,
// or the suffix of its "Template@<id>" key when Id is absent.
func ParseTileset(raw []byte) (*Tileset, error) {
	var doc tilesetDoc
	if err := yaml.Unmarshal(normalizeTabs(raw), &doc); err != nil {
		return nil, fmt.Errorf("%w: tileset: %v", ErrInvalidCatalog, err)
	}
	if len(doc.Templates) == 0 {
		return nil, fmt.Errorf("%w: tileset has no Templates", ErrInvalidCatalog)
	}

	ts := &Tileset{
		ID:        doc.General.ID,
		Name:      doc.General.Name,
		Templates: make(map[uint16][]string, len(doc.Templates)),
	}
	for key, tpl := range doc.Templates {
		id, err := templateID(key, tpl)
		if err != nil {
			return nil, err
		}
		tiles, err := orderTiles(key, tpl.Tiles)
		if err != nil {
			return nil, err
		}
		ts.Templates[id] = tiles
	}
	return ts, nil
}

func templateID(key string, tpl templateDoc) (uint16, error) {
	raw := ""
	if tpl.ID != nil {
		raw = strconv.Itoa(*tpl.ID)
	} else if _, suffix, ok := strings.Cut(key, "@"); ok {
		raw = suffix
	}
	id, err := strconv.ParseUint(raw, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: template %q has no numeric id", ErrInvalidCatalog, key)
	}
	return uint16(id), nil
}

// orderTiles turns the index→label map into a slice; undefined indices stay "".
func orderTiles(key string, tiles map[int]string) ([]string, error) {
	maxIdx := -1
	for idx := range tiles {
		if idx < 0 || idx > 255 {
			return nil, fmt.Errorf("%w: template %q tile index %d out of range", ErrInvalidCatalog, key, idx)
		}
		if idx > maxIdx {
			maxIdx = idx
		}
	}
	out := make([]string, maxIdx+1)
	for idx, label := range tiles {
		out[idx] = label
	}
	return out, nil
}

// ParseTraversable collects the TerrainSpeeds keys of every Locomotor@FOOT
// block in a rules document, at any nesting depth.
func ParseTraversable(raw []byte) (Set, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(normalizeTabs(raw), &root); err != nil {
		return nil, fmt.Errorf("%w: rules: %v", ErrInvalidCatalog, err)
	}
	out := Set{}
	found := false
	walkMappings(&root, func(key string, value *yaml.Node) {
		if key != footLocomotor || value.Kind != yaml.MappingNode {
			return
		}
		speeds := mappingValue(value, "TerrainSpeeds")
		if speeds == nil || speeds.Kind != yaml.MappingNode {
			return
		}
		found = true
		for i := 0; i+1 < len(speeds.Content); i += 2 {
			out[speeds.Content[i].Value] = struct{}{}
		}
	})
	if !found {
		return nil, fmt.Errorf("%w: rules have no %s.TerrainSpeeds", ErrInvalidCatalog, footLocomotor)
	}
	return out, nil
}

// walkMappings calls fn for every key/value pair of every mapping below n.
func walkMappings(n *yaml.Node, fn func(key string, value *yaml.Node)) {
	switch n.Kind {
	case yaml.DocumentNode, yaml.SequenceNode:
		for _, c := range n.Content {
			walkMappings(c, fn)
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			fn(n.Content[i].Value, n.Content[i+1])
			walkMappings(n.Content[i+1], fn)
		}
	}
}

func mappingValue(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}
