package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func readTheme(t *testing.T, path string) ThemeConfig {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var cfg struct {
		Theme struct {
			Preset string         `yaml:"preset"`
			Mode   string         `yaml:"mode"`
			Colors map[string]any `yaml:"colors"`
		} `yaml:"theme"`
	}
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	return ThemeConfig{Preset: cfg.Theme.Preset, Mode: cfg.Theme.Mode, Colors: cfg.Theme.Colors}
}

func TestSaveTheme_CreatesNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, SaveTheme(path, ThemeConfig{Preset: "nord", Mode: "dark"}))

	theme := readTheme(t, path)
	assert.Equal(t, "nord", theme.Preset)
	assert.Equal(t, "dark", theme.Mode)
}

func TestSaveTheme_ReplacesExistingThemeSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme:\n  preset: dracula\n"), 0o600))

	require.NoError(t, SaveTheme(path, ThemeConfig{Preset: "nord"}))

	theme := readTheme(t, path)
	assert.Equal(t, "nord", theme.Preset)
	assert.Empty(t, theme.Mode)
}

func TestSaveTheme_PreservesOtherSectionsAndComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	original := "# my config\ndebug: true\n\nui:\n  show_status_bar: false # keep hidden\n"
	require.NoError(t, os.WriteFile(path, []byte(original), 0o600))

	require.NoError(t, SaveTheme(path, ThemeConfig{Preset: "high-contrast"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "# my config")
	assert.Contains(t, text, "# keep hidden")
	assert.Contains(t, text, "debug: true")
	assert.Equal(t, "high-contrast", readTheme(t, path).Preset)
}

func TestSaveTheme_WritesColorOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	theme := ThemeConfig{
		Preset: "default",
		Colors: map[string]any{"text.primary": "#FFFFFF"},
	}
	require.NoError(t, SaveTheme(path, theme))

	got := readTheme(t, path)
	assert.Equal(t, "#FFFFFF", got.FlattenedColors()["text.primary"])
}

func TestSaveTheme_EmptyThemeWritesEmptySection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, SaveTheme(path, ThemeConfig{}))

	theme := readTheme(t, path)
	assert.Empty(t, theme.Preset)
	assert.Empty(t, theme.Colors)
}
