// Package config provides configuration types, defaults, and
// persistence for lumen.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lumenui/lumen/internal/log"
	"github.com/lumenui/lumen/internal/ui/styles"
)

// Config holds all configuration options for lumen.
type Config struct {
	Debug bool        `mapstructure:"debug"`
	UI    UIConfig    `mapstructure:"ui"`
	Theme ThemeConfig `mapstructure:"theme"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowStatusBar bool `mapstructure:"show_status_bar"`
	ShowHelp      bool `mapstructure:"show_help"` // Show the key help line on startup
}

// ThemeConfig holds all theme customization options.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base (optional).
	// Run 'lumen themes' to list valid values.
	Preset string `mapstructure:"preset"`

	// Mode forces light or dark mode. If empty, uses terminal detection.
	// Valid values: "light", "dark", ""
	Mode string `mapstructure:"mode"`

	// Colors allows overriding individual color tokens.
	// Supports both nested YAML structure and dot notation.
	// Example YAML:
	//   colors:
	//     text:
	//       primary: "#FF0000"
	// Or quoted dot notation:
	//   colors:
	//     "text.primary": "#FF0000"
	Colors map[string]any `mapstructure:"colors"`
}

// FlattenedColors returns the Colors map flattened to dot-notation keys.
// This handles both nested YAML structures and already-flat keys.
func (t ThemeConfig) FlattenedColors() map[string]string {
	result := make(map[string]string)
	flattenColors("", t.Colors, result)
	return result
}

// flattenColors recursively flattens a nested map into dot-notation keys.
func flattenColors(prefix string, m map[string]any, result map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			result[key] = val
		case map[string]any:
			flattenColors(key, val, result)
		case map[any]any:
			// YAML sometimes produces map[any]any instead of map[string]any
			converted := make(map[string]any)
			for mk, mv := range val {
				if strKey, ok := mk.(string); ok {
					converted[strKey] = mv
				}
			}
			flattenColors(key, converted, result)
		}
	}
}

// ValidateTheme checks the theme section against the known presets
// and modes without mutating any styles.
func ValidateTheme(t ThemeConfig) error {
	if t.Preset != "" && t.Preset != "default" {
		if _, ok := styles.Presets[t.Preset]; !ok {
			return fmt.Errorf("unknown theme preset: %s", t.Preset)
		}
	}
	switch t.Mode {
	case "", "light", "dark":
	default:
		return fmt.Errorf("invalid theme mode %q (expected light, dark, or empty)", t.Mode)
	}
	return nil
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		Debug: false,
		UI: UIConfig{
			ShowStatusBar: true,
			ShowHelp:      true,
		},
		Theme: ThemeConfig{
			// Default theme uses the "default" preset
			Preset: "",
		},
	}
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Lumen Configuration

# Write debug log to lumen.log
debug: false

# UI settings
ui:
  show_status_bar: true  # Show status bar at bottom
  show_help: true        # Show the key help line on startup

# Theme configuration
# Use a preset theme or customize individual colors
theme:
  # Use a preset (run 'lumen themes' to see available presets):
  # preset: catppuccin-mocha
  #
  # Available presets:
  #   default           - Default lumen theme
  #   catppuccin-mocha  - Warm, cozy dark theme
  #   dracula           - Classic dark theme
  #   nord              - Cool arctic theme
  #   high-contrast     - Maximum readability
  #
  # Force light or dark rendering (default: detect from terminal):
  # mode: dark
  #
  # Override individual color tokens:
  # colors:
  #   text:
  #     primary: "#FFFFFF"
  #   button:
  #     primary.bg: "#5F5FD7"
`
}

// WriteDefaultConfig creates a config file at the given path with default
// settings and comments. Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
