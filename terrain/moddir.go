// SPDX-License-Identifier: MIT
package terrain

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"
)

// ModDirectory loads catalogs from an OpenRA install tree:
//
//	mods/<mod>/tilesets/<tileset, lower-cased>.yaml
//	mods/<mod>/rules/world.yaml
//
// Parsed documents are cached, so one ModDirectory can be shared by
// concurrent workers.
type ModDirectory struct {
	fsys fs.FS

	mu          sync.Mutex
	tilesets    map[string]*Tileset
	traversable map[string]Set
}

// NewModDirectory wraps fsys, typically os.DirFS(openraDir).
func NewModDirectory(fsys fs.FS) *ModDirectory {
	return &ModDirectory{
		fsys:        fsys,
		tilesets:    make(map[string]*Tileset),
		traversable: make(map[string]Set),
	}
}

// TilesetPath returns the tileset document path for mod and tileset.
func TilesetPath(mod, tileset string) string {
	return path.Join("mods", mod, "tilesets", strings.ToLower(tileset)+".yaml")
}

// RulesPath returns the world rules document path for mod.
func RulesPath(mod string) string {
	return path.Join("mods", mod, "rules", "world.yaml")
}

// Catalog returns the catalog for a map that requires mod and uses tileset.
func (d *ModDirectory) Catalog(mod, tileset string) (Catalog, error) {
	if mod == "" || tileset == "" {
		return nil, fmt.Errorf("%w: empty mod %q or tileset %q", ErrInvalidCatalog, mod, tileset)
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	ts, err := d.tilesetLocked(mod, tileset)
	if err != nil {
		return nil, err
	}
	trav, err := d.traversableLocked(mod)
	if err != nil {
		return nil, err
	}
	return NewCatalog(ts, trav), nil
}

func (d *ModDirectory) tilesetLocked(mod, tileset string) (*Tileset, error) {
	p := TilesetPath(mod, tileset)
	if ts, ok := d.tilesets[p]; ok {
		return ts, nil
	}
	raw, err := fs.ReadFile(d.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("load tileset %s: %w", p, err)
	}
	ts, err := ParseTileset(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	d.tilesets[p] = ts
	return ts, nil
}

func (d *ModDirectory) traversableLocked(mod string) (Set, error) {
	p := RulesPath(mod)
	if s, ok := d.traversable[p]; ok {
		return s, nil
	}
	raw, err := fs.ReadFile(d.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("load rules %s: %w", p, err)
	}
	s, err := ParseTraversable(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	d.traversable[p] = s
	return s, nil
}
