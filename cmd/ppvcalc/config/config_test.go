package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// chdirTemp runs the test from a temp dir holding a .ppvcalc
// directory, so ConfigDir resolves locally instead of under $HOME.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".ppvcalc"), 0755))

	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
	return dir
}

func TestDefaultConfig(t *testing.T) {
	require := require.New(t)

	cfg := DefaultConfig()
	require.Equal(10000, cfg.Population)
	require.Equal(90.0, cfg.Sensitivity)
	require.Equal(95.0, cfg.Specificity)
	require.Equal(5.0, cfg.Prevalence)
	require.Empty(cfg.Theme)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	require := require.New(t)
	chdirTemp(t)

	want := Config{
		Theme:       "dark",
		Population:  2000,
		Sensitivity: 80,
		Specificity: 99.5,
		Prevalence:  1,
	}
	require.NoError(Save(want))

	got, err := Load()
	require.NoError(err)
	require.Equal(want, got)
}

func TestLoadRepairsNonPositivePopulation(t *testing.T) {
	require := require.New(t)
	chdirTemp(t)

	cfg := DefaultConfig()
	cfg.Population = -5
	require.NoError(Save(cfg))

	got, err := Load()
	require.NoError(err)
	require.Equal(10000, got.Population)
}

func TestLoadMalformedFile(t *testing.T) {
	require := require.New(t)
	dir := chdirTemp(t)

	path := filepath.Join(dir, ".ppvcalc", "config.json")
	require.NoError(os.WriteFile(path, []byte("{not json"), 0644))

	cfg, err := Load()
	require.Error(err)
	require.Equal(DefaultConfig(), cfg)
}
