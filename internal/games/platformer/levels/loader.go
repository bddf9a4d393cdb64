// Package levels loads platformer level plans from YAML files.
// The default campaign is embedded; extra levels can be loaded from any
// directory and reloaded while the game runs.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/engine"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels/formats"
)

//go:embed data/*.yaml
var builtinFS embed.FS

// ErrNotFound is returned by LoadByID for unknown ids.
var ErrNotFound = errors.New("level not found")

// Level is a complete level definition.
type Level struct {
	ID       string
	Name     string
	Plan     []string
	Metadata map[string]string
	FilePath string
}

// Build constructs a playable engine level from the plan.
func (l Level) Build(opts ...engine.Option) (*engine.Level, error) {
	lvl, err := engine.NewLevel(l.Plan, opts...)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	return lvl, nil
}

// Size returns the plan width and height in tiles.
func (l Level) Size() (w, h int) {
	if len(l.Plan) == 0 {
		return 0, 0
	}
	return len(l.Plan[0]), len(l.Plan)
}

// Validate reports whether the plan builds into an engine level.
func Validate(l Level) error {
	_, err := l.Build()
	return err
}

// Loader reads level files from a directory tree.
type Loader struct {
	fsys   fs.FS
	dir    string // Root inside fsys
	prefix string // Prepended to paths for FilePath
	logger *log.Logger
}

// NewLoader creates a loader for a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{
		fsys:   os.DirFS(root),
		dir:    ".",
		prefix: root,
		logger: log.New(io.Discard),
	}
}

// NewFSLoader creates a loader over an arbitrary file system.
// FilePath values are reported as name:path.
func NewFSLoader(fsys fs.FS, name string) *Loader {
	return &Loader{
		fsys:   fsys,
		dir:    ".",
		prefix: name + ":",
		logger: log.New(io.Discard),
	}
}

// Builtin returns a loader for the embedded campaign.
func Builtin() *Loader {
	return &Loader{
		fsys:   builtinFS,
		dir:    "data",
		prefix: "builtin:",
		logger: log.New(io.Discard),
	}
}

// SetLogger sets where skipped files are reported.
func (l *Loader) SetLogger(logger *log.Logger) {
	if logger != nil {
		l.logger = logger
	}
}

// Root returns the directory the loader reads from.
func (l *Loader) Root() string {
	return l.prefix
}

// LoadAll loads every valid level, sorted by ID.
// Unreadable files, unparseable files and plans the engine rejects are
// skipped with a warning.
func (l *Loader) LoadAll() ([]Level, error) {
	lvls, problems, err := l.scan()
	if err != nil {
		return nil, err
	}
	for _, p := range problems {
		l.logger.Warn("skipping level", "err", p)
	}
	return lvls, nil
}

// Check loads every level and returns the valid ones together with one
// error per problem found.
func (l *Loader) Check() ([]Level, []error, error) {
	return l.scan()
}

func (l *Loader) scan() ([]Level, []error, error) {
	var (
		lvls     []Level
		problems []error
		seen     = make(map[string]string)
	)

	err := fs.WalkDir(l.fsys, l.dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(path.Ext(p)) {
			return nil
		}

		rel, _ := strings.CutPrefix(p, l.dir+"/")
		parsed, err := l.LoadFile(rel)
		if err != nil {
			problems = append(problems, err)
			return nil
		}

		for _, lvl := range parsed {
			if first, dup := seen[lvl.ID]; dup {
				problems = append(problems, fmt.Errorf("%s: duplicate id %q, first defined in %s", lvl.FilePath, lvl.ID, first))
				continue
			}
			if err := Validate(lvl); err != nil {
				problems = append(problems, fmt.Errorf("%s: %w", lvl.FilePath, err))
				continue
			}
			seen[lvl.ID] = lvl.FilePath
			lvls = append(lvls, lvl)
		}
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("walking directory %s: %w", l.prefix, err)
	}

	slices.SortStableFunc(lvls, func(a, b Level) int {
		return strings.Compare(a.ID, b.ID)
	})
	return lvls, problems, nil
}

// LoadFile parses one file, named relative to the loader root.
// The plans are not validated.
func (l *Loader) LoadFile(name string) ([]Level, error) {
	display := l.displayPath(name)

	data, err := fs.ReadFile(l.fsys, path.Join(l.dir, name))
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", display, err)
	}

	var parsed []formats.Level
	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".yaml", ".yml":
		parsed, err = formats.ParseYAML(data)
	default:
		err = fmt.Errorf("unsupported extension: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", display, err)
	}

	out := make([]Level, len(parsed))
	for i, p := range parsed {
		out[i] = Level{
			ID:       p.ID,
			Name:     p.Name,
			Plan:     p.Plan,
			Metadata: p.Metadata,
			FilePath: display,
		}
	}
	return out, nil
}

// LoadByID loads the level with the given id.
func (l *Loader) LoadByID(id string) (Level, error) {
	lvls, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	i := slices.IndexFunc(lvls, func(lvl Level) bool { return lvl.ID == id })
	if i < 0 {
		return Level{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return lvls[i], nil
}

// ListIDs returns the ids of all valid levels in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	lvls, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(lvls))
	for i, lvl := range lvls {
		ids[i] = lvl.ID
	}
	return ids, nil
}

func (l *Loader) displayPath(name string) string {
	if strings.HasSuffix(l.prefix, ":") {
		return l.prefix + name
	}
	return filepath.Join(l.prefix, filepath.FromSlash(name))
}

func isSupportedExtension(ext string) bool {
	return slices.Contains(formats.FormatExtensions(), strings.ToLower(ext))
}
