package maps

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// DefaultMapID is the map played when none is named.
const DefaultMapID = "meadow"

// Loader handles loading maps from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new map loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all map files.
// Invalid files are skipped. Returns maps sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Map, error) {
	var maps []Map

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		if !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		m, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		maps = append(maps, m)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sortByID(maps)
	return maps, nil
}

// LoadFile loads and validates a single map file.
func (l *Loader) LoadFile(path string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Map{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	m, err := load(data)
	if err != nil {
		return Map{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	m.FilePath = path
	return m, nil
}

// LoadByID loads a specific map by ID.
func (l *Loader) LoadByID(id string) (Map, error) {
	maps, err := l.LoadAll()
	if err != nil {
		return Map{}, err
	}

	for _, m := range maps {
		if m.ID == id {
			return m, nil
		}
	}

	return Map{}, fmt.Errorf("map not found: %s", id)
}

// ListIDs returns all map IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	maps, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	return ids(maps), nil
}

// Builtin returns the maps shipped with the binary, sorted by ID.
func Builtin() ([]Map, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("reading built-in maps: %w", err)
	}

	maps := make([]Map, 0, len(entries))
	for _, e := range entries {
		data, err := builtinFS.ReadFile("builtin/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("reading built-in map %s: %w", e.Name(), err)
		}
		m, err := load(data)
		if err != nil {
			return nil, fmt.Errorf("built-in map %s: %w", e.Name(), err)
		}
		maps = append(maps, m)
	}

	sortByID(maps)
	return maps, nil
}

// Catalog merges the built-in maps with those found under dirs. A user map
// replaces a built-in with the same ID. Missing directories are skipped.
func Catalog(dirs ...string) ([]Map, error) {
	builtin, err := Builtin()
	if err != nil {
		return nil, err
	}

	byID := make(map[string]Map, len(builtin))
	for _, m := range builtin {
		byID[m.ID] = m
	}

	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		found, err := NewLoader(dir).LoadAll()
		if err != nil {
			return nil, err
		}
		for _, m := range found {
			byID[m.ID] = m
		}
	}

	out := make([]Map, 0, len(byID))
	for _, m := range byID {
		out = append(out, m)
	}
	sortByID(out)
	return out, nil
}

// Find returns the map with the given ID from a catalog.
func Find(catalog []Map, id string) (Map, bool) {
	for _, m := range catalog {
		if m.ID == id {
			return m, true
		}
	}
	return Map{}, false
}

func load(data []byte) (Map, error) {
	m, err := Parse(data)
	if err != nil {
		return Map{}, err
	}
	if err := m.Validate(); err != nil {
		return Map{}, err
	}
	m.markPath()
	return m, nil
}

func sortByID(maps []Map) {
	sort.Slice(maps, func(i, j int) bool {
		return maps[i].ID < maps[j].ID
	})
}

func ids(maps []Map) []string {
	out := make([]string, len(maps))
	for i, m := range maps {
		out[i] = m.ID
	}
	return out
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
