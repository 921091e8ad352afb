// Package levels provides level loading and export for Block Jam.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/blockjam/internal/games/blockjam/core"
	"github.com/vovakirdan/blockjam/internal/games/blockjam/levels/formats"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Layout   core.Layout
	Metadata map[string]string
	FilePath string
}

// NewState creates a game state from this level.
func (l *Level) NewState() (*core.State, error) {
	s, err := core.NewState(l.Layout)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	return s, nil
}

// FromState captures the current layout of a state as a level.
func FromState(id, name string, s *core.State) Level {
	return Level{
		ID:     id,
		Name:   name,
		Layout: s.Layout(),
		Metadata: map[string]string{
			"seed": fmt.Sprintf("%d", s.Seed),
		},
	}
}

// Loader handles loading levels from a file system.
type Loader struct {
	fsys fs.FS
	root string
}

// NewLoader creates a level loader for a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{fsys: os.DirFS(root), root: root}
}

// Builtin returns a loader for the levels shipped with the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		panic(err) // The embed pattern guarantees the directory exists
	}
	return &Loader{fsys: sub, root: "builtin"}
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		if !isSupportedExtension(ext) {
			return nil
		}

		level, err := l.loadFS(p)
		if err != nil {
			// Skip invalid files
			return nil
		}

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.root, err)
	}

	// Sort by ID for determinism
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

func (l *Loader) loadFS(p string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}
	level, err := parse(data, p)
	if err != nil {
		return Level{}, err
	}
	level.FilePath = path.Join(filepath.ToSlash(l.root), p)
	return level, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// LoadFile loads a single level file from disk.
func LoadFile(p string) (Level, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}
	level, err := parse(data, p)
	if err != nil {
		return Level{}, err
	}
	level.FilePath = p
	return level, nil
}

// Save writes a level as YAML, creating parent directories.
func Save(p string, level Level) error {
	data, err := formats.MarshalYAML(formats.Level{
		ID:       level.ID,
		Name:     level.Name,
		Layout:   level.Layout,
		Metadata: level.Metadata,
	})
	if err != nil {
		return fmt.Errorf("encoding level %s: %w", level.ID, err)
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", p, err)
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return fmt.Errorf("writing file %s: %w", p, err)
	}
	return nil
}

func parse(data []byte, p string) (Level, error) {
	parsed, err := parseByExtension(data, strings.ToLower(path.Ext(filepath.ToSlash(p))))
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	return Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Layout:   parsed.Layout,
		Metadata: parsed.Metadata,
	}, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
