package levels

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/engine"
)

// testdataPath returns the path to testdata/levels.
func testdataPath() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "testdata", "levels")
}

func ids(lvls []Level) []string {
	out := make([]string, len(lvls))
	for i, l := range lvls {
		out[i] = l.ID
	}
	return out
}

func TestLoadAllSkipsInvalid(t *testing.T) {
	var buf bytes.Buffer
	loader := NewLoader(testdataPath())
	loader.SetLogger(log.New(&buf))

	lvls, err := loader.LoadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha", "bravo", "charlie", "delta"}, ids(lvls))
	assert.Equal(t, 3, strings.Count(buf.String(), "skipping level"))
}

func TestCheckReportsProblems(t *testing.T) {
	lvls, problems, err := NewLoader(testdataPath()).Check()
	require.NoError(t, err)
	assert.Len(t, lvls, 4)
	require.Len(t, problems, 3)

	joined := ""
	for _, p := range problems {
		joined += p.Error() + "\n"
	}
	assert.Contains(t, joined, "broken.yaml")
	assert.Contains(t, joined, "noplayer")
	assert.Contains(t, joined, `duplicate id "charlie"`)

	var noPlayer bool
	for _, p := range problems {
		noPlayer = noPlayer || errors.Is(p, engine.ErrNoPlayer)
	}
	assert.True(t, noPlayer, "engine construction errors should stay inspectable")
}

func TestDuplicateKeepsFirst(t *testing.T) {
	lvl, err := NewLoader(testdataPath()).LoadByID("charlie")
	require.NoError(t, err)
	assert.Equal(t, "Charlie", lvl.Name)
	assert.True(t, strings.HasSuffix(lvl.FilePath, "pack.yml"), "got %s", lvl.FilePath)
}

func TestLoadByIDNested(t *testing.T) {
	lvl, err := NewLoader(testdataPath()).LoadByID("delta")
	require.NoError(t, err)

	assert.Equal(t, []string{"@ =", "xxx"}, lvl.Plan)
	assert.Equal(t, filepath.Join(testdataPath(), "nested", "delta.yaml"), lvl.FilePath)

	w, h := lvl.Size()
	assert.Equal(t, 3, w)
	assert.Equal(t, 2, h)
}

func TestLoadByIDNotFound(t *testing.T) {
	_, err := NewLoader(testdataPath()).LoadByID("nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadAllMissingRoot(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "missing")).LoadAll()
	assert.Error(t, err)
}

func TestListIDsDeterministic(t *testing.T) {
	loader := NewLoader(testdataPath())

	first, err := loader.ListIDs()
	require.NoError(t, err)
	second, err := loader.ListIDs()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.IsIncreasing(t, first)
}

func TestLoadFileUnsupported(t *testing.T) {
	_, err := NewLoader(testdataPath()).LoadFile("notes.txt")
	assert.ErrorContains(t, err, "unsupported extension")
}

func TestFSLoader(t *testing.T) {
	fsys := fstest.MapFS{
		"b.yaml":     {Data: []byte("id: b\nplan: [\"@\", \"x\"]\n")},
		"sub/a.yml":  {Data: []byte("id: a\nplan: [\"@o\", \"xx\"]\n")},
		"readme.md":  {Data: []byte("# levels")},
		"bad.yaml":   {Data: []byte("id: bad\nplan: [\"@\", \"xx\"]\n")},
		"other.yaml": {Data: []byte("plan: [\"@\"]\n")},
	}

	lvls, problems, err := NewFSLoader(fsys, "mem").Check()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids(lvls))
	assert.Equal(t, "mem:sub/a.yml", lvls[0].FilePath)
	assert.Len(t, problems, 2)
}

func TestLevelBuild(t *testing.T) {
	lvl := Level{ID: "t", Plan: []string{"@ o", "xxx"}}

	built, err := lvl.Build(engine.WithParams(engine.DefaultParams()))
	require.NoError(t, err)
	assert.Equal(t, 3, built.Width())
	assert.Equal(t, 1, built.CoinsLeft())

	_, err = Level{ID: "ragged", Plan: []string{"@ ", "x"}}.Build()
	assert.ErrorIs(t, err, engine.ErrRaggedPlan)
	assert.ErrorContains(t, err, "level ragged")
}

func TestBuiltinCampaign(t *testing.T) {
	lvls, problems, err := Builtin().Check()
	require.NoError(t, err)
	assert.Empty(t, problems)
	require.GreaterOrEqual(t, len(lvls), 5)

	assert.Equal(t, "01-first-steps", lvls[0].ID)
	assert.IsIncreasing(t, ids(lvls))

	for _, lvl := range lvls {
		built, err := lvl.Build()
		require.NoError(t, err, lvl.ID)
		assert.Positive(t, built.CoinsLeft(), "%s has nothing to collect", lvl.ID)
		assert.True(t, strings.HasPrefix(lvl.FilePath, "builtin:"), lvl.FilePath)
	}
}

func TestLoaderPicksUpNewFiles(t *testing.T) {
	dir := t.TempDir()
	loader := NewLoader(dir)

	got, err := loader.ListIDs()
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.yaml"), []byte("id: new\nplan: [\"@\", \"x\"]\n"), 0o644))

	got, err = loader.ListIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, got)
}
