package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockjam/internal/games/blockjam/core"
)

func TestLoadBlockJam_EmbeddedDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadBlockJam("")
	require.NoError(t, err)
	assert.Equal(t, DefaultBlockJamConfig(), cfg)
}

func TestLoadBlockJam_UserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".blockjam", "configs")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blockjam.yaml"),
		[]byte("generation:\n  grid_size: 6\ntheme:\n  name: mono\n"), 0o644))

	cfg, err := LoadBlockJam("")
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Generation.GridSize)
	assert.Equal(t, "mono", cfg.Theme.Name)
	// Unset keys keep their defaults.
	assert.Equal(t, 7, cfg.Generation.MaxShapes)
}

func TestLoadBlockJam_CustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("generation:\n  min_shapes: 1\n  max_shapes: 2\n"), 0o644))

	cfg, err := LoadBlockJam(path)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Generation.MinShapes)
	assert.Equal(t, 2, cfg.Generation.MaxShapes)
}

func TestLoadBlockJam_CustomPathErrors(t *testing.T) {
	_, err := LoadBlockJam(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("generation: [oops"), 0o644))
	_, err = LoadBlockJam(bad)
	assert.Error(t, err)
}

func TestEmbeddedYAMLMatchesHardcoded(t *testing.T) {
	assert.NotEmpty(t, DefaultYAML())
	t.Setenv("HOME", t.TempDir())
	cfg, err := LoadBlockJam("")
	require.NoError(t, err)
	assert.Equal(t, DefaultBlockJamConfig().Generation, cfg.Generation)
}

func TestToGenParams(t *testing.T) {
	cfg := DefaultBlockJamConfig()
	cfg.Generation.Palette = []string{"red", "blue"}
	cfg.Generation.MaxColors = 2
	cfg.Generation.MinColors = 1

	p, err := cfg.ToGenParams()
	require.NoError(t, err)
	assert.Equal(t, 8, p.GridSize)
	assert.Equal(t, []core.Color{core.ColorRed, core.ColorBlue}, p.Palette)
	assert.Equal(t, 1, p.MinColors)
	assert.Equal(t, 2, p.MaxColors)
}

func TestToGenParams_Errors(t *testing.T) {
	cfg := DefaultBlockJamConfig()
	cfg.Generation.Palette = []string{"magenta"}
	_, err := cfg.ToGenParams()
	assert.ErrorContains(t, err, "magenta")

	cfg = DefaultBlockJamConfig()
	cfg.Generation.MinShapes = 9
	cfg.Generation.MaxShapes = 3
	_, err = cfg.ToGenParams()
	assert.Error(t, err)
}

func TestApplyBlockJamPreset(t *testing.T) {
	normal := DefaultBlockJamConfig()
	ApplyBlockJamPreset(&normal, DifficultyNormal)
	assert.Equal(t, DefaultBlockJamConfig(), normal)

	easy := DefaultBlockJamConfig()
	ApplyBlockJamPreset(&easy, DifficultyEasy)
	hard := DefaultBlockJamConfig()
	ApplyBlockJamPreset(&hard, DifficultyHard)

	assert.Less(t, easy.Generation.MaxShapes, normal.Generation.MaxShapes)
	assert.Greater(t, hard.Generation.MaxShapes, normal.Generation.MaxShapes)

	for _, cfg := range []BlockJamConfig{easy, hard} {
		_, err := cfg.ToGenParams()
		assert.NoError(t, err)
	}
}

func TestParseDifficulty(t *testing.T) {
	p, err := ParseDifficulty("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyNormal, p)

	p, err = ParseDifficulty("hard")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, p)

	_, err = ParseDifficulty("fixed")
	assert.Error(t, err)
}
