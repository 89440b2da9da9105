// Package styles contains Lip Gloss style definitions.
package styles

// Preset represents a complete color theme.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets contains all built-in theme presets.
var Presets = map[string]Preset{
	"default":          DefaultPreset,
	"catppuccin-mocha": CatppuccinMochaPreset,
	"dracula":          DraculaPreset,
	"nord":             NordPreset,
	"high-contrast":    HighContrastPreset,
}

// DefaultPreset is the stock lumen color scheme.
// Color values match the styles.go AdaptiveColor definitions (Dark values).
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default lumen theme",
	Colors: map[ColorToken]string{
		// Text hierarchy
		TokenTextPrimary:     "#CCCCCC",
		TokenTextSecondary:   "#BBBBBB",
		TokenTextMuted:       "#696969",
		TokenTextPlaceholder: "#777777",

		// Borders
		TokenBorderDefault:   "#696969",
		TokenBorderHighlight: "#54A0FF",

		// Status indicators
		TokenStatusSuccess: "#73F59F",
		TokenStatusWarning: "#FECA57",
		TokenStatusError:   "#FF8787",

		// Selection
		TokenSelectionIndicator: "#FFFFFF",

		// Buttons
		TokenButtonText:             "#FFFFFF",
		TokenButtonPrimaryBg:        "#1A5276",
		TokenButtonPrimaryFocusBg:   "#3498DB",
		TokenButtonSecondaryBg:      "#2D3436",
		TokenButtonSecondaryFocusBg: "#636E72",
		TokenButtonDangerBg:         "#922B21",
		TokenButtonDangerFocusBg:    "#E74C3C",
		TokenButtonDisabledBg:       "#2D2D2D",

		// Forms
		TokenFormBorder:      "#8C8C8C",
		TokenFormBorderFocus: "#FFFFFF",
		TokenFormLabel:       "#8C8C8C",
		TokenFormLabelFocus:  "#FFFFFF",

		// Overlays/Modals
		TokenOverlayTitle:  "#C9C9C9",
		TokenOverlayBorder: "#8C8C8C",

		// Popovers
		TokenPopoverBorder:    "#8C8C8C",
		TokenPopoverIndicator: "#54A0FF",

		// Toggles
		TokenToggleOn:   "#73F59F",
		TokenToggleOff:  "#636E72",
		TokenToggleKnob: "#FFFFFF",

		// Pager
		TokenPagerDot:       "#696969",
		TokenPagerDotActive: "#54A0FF",

		// Badges
		TokenBadgeText: "#FFFFFF",
	},
}

// CatppuccinMochaPreset is the Catppuccin Mocha (dark) theme.
// Colors from: https://catppuccin.com/palette
var CatppuccinMochaPreset = Preset{
	Name:        "catppuccin-mocha",
	Description: "Catppuccin Mocha - warm, cozy dark theme",
	Colors: map[ColorToken]string{
		// Text hierarchy
		TokenTextPrimary:     "#CDD6F4", // text
		TokenTextSecondary:   "#BAC2DE", // subtext1
		TokenTextMuted:       "#6C7086", // overlay0
		TokenTextPlaceholder: "#585B70", // surface2

		// Borders
		TokenBorderDefault:   "#6C7086", // overlay0
		TokenBorderHighlight: "#89B4FA", // blue

		// Status indicators
		TokenStatusSuccess: "#A6E3A1", // green
		TokenStatusWarning: "#F9E2AF", // yellow
		TokenStatusError:   "#F38BA8", // red

		// Selection
		TokenSelectionIndicator: "#CDD6F4", // text

		// Buttons
		TokenButtonText:             "#1E1E2E", // base
		TokenButtonPrimaryBg:        "#89B4FA", // blue
		TokenButtonPrimaryFocusBg:   "#B4BEFE", // lavender
		TokenButtonSecondaryBg:      "#45475A", // surface1
		TokenButtonSecondaryFocusBg: "#585B70", // surface2
		TokenButtonDangerBg:         "#F38BA8", // red
		TokenButtonDangerFocusBg:    "#EBA0AC", // maroon
		TokenButtonDisabledBg:       "#313244", // surface0

		// Forms
		TokenFormBorder:      "#6C7086", // overlay0
		TokenFormBorderFocus: "#CDD6F4", // text
		TokenFormLabel:       "#6C7086", // overlay0
		TokenFormLabelFocus:  "#CDD6F4", // text

		// Overlays/Modals
		TokenOverlayTitle:  "#CDD6F4", // text
		TokenOverlayBorder: "#6C7086", // overlay0

		// Popovers
		TokenPopoverBorder:    "#6C7086", // overlay0
		TokenPopoverIndicator: "#89B4FA", // blue

		// Toggles
		TokenToggleOn:   "#A6E3A1", // green
		TokenToggleOff:  "#585B70", // surface2
		TokenToggleKnob: "#CDD6F4", // text

		// Pager
		TokenPagerDot:       "#6C7086", // overlay0
		TokenPagerDotActive: "#89B4FA", // blue

		// Badges
		TokenBadgeText: "#1E1E2E", // base
	},
}

// DraculaPreset is the Dracula theme.
// Colors from: https://draculatheme.com/contribute
var DraculaPreset = Preset{
	Name:        "dracula",
	Description: "Dracula - dark theme with vibrant colors",
	Colors: map[ColorToken]string{
		// Text hierarchy
		TokenTextPrimary:     "#F8F8F2", // foreground
		TokenTextSecondary:   "#F8F8F2", // foreground
		TokenTextMuted:       "#6272A4", // comment
		TokenTextPlaceholder: "#6272A4", // comment

		// Borders
		TokenBorderDefault:   "#6272A4", // comment
		TokenBorderHighlight: "#BD93F9", // purple

		// Status indicators
		TokenStatusSuccess: "#50FA7B", // green
		TokenStatusWarning: "#F1FA8C", // yellow
		TokenStatusError:   "#FF5555", // red

		// Selection
		TokenSelectionIndicator: "#F8F8F2", // foreground

		// Buttons
		TokenButtonText:             "#282A36", // background
		TokenButtonPrimaryBg:        "#BD93F9", // purple
		TokenButtonPrimaryFocusBg:   "#FF79C6", // pink
		TokenButtonSecondaryBg:      "#44475A", // current line
		TokenButtonSecondaryFocusBg: "#6272A4", // comment
		TokenButtonDangerBg:         "#FF5555", // red
		TokenButtonDangerFocusBg:    "#FF6E6E", // lighter red
		TokenButtonDisabledBg:       "#44475A", // current line

		// Forms
		TokenFormBorder:      "#6272A4", // comment
		TokenFormBorderFocus: "#F8F8F2", // foreground
		TokenFormLabel:       "#6272A4", // comment
		TokenFormLabelFocus:  "#F8F8F2", // foreground

		// Overlays/Modals
		TokenOverlayTitle:  "#F8F8F2", // foreground
		TokenOverlayBorder: "#6272A4", // comment

		// Popovers
		TokenPopoverBorder:    "#6272A4", // comment
		TokenPopoverIndicator: "#BD93F9", // purple

		// Toggles
		TokenToggleOn:   "#50FA7B", // green
		TokenToggleOff:  "#44475A", // current line
		TokenToggleKnob: "#F8F8F2", // foreground

		// Pager
		TokenPagerDot:       "#6272A4", // comment
		TokenPagerDotActive: "#BD93F9", // purple

		// Badges
		TokenBadgeText: "#282A36", // background
	},
}

// NordPreset is the Nord theme.
// Colors from: https://www.nordtheme.com/docs/colors-and-palettes
// Polar Night: #2E3440-#4C566A (backgrounds), Snow Storm: #D8DEE9-#ECEFF4 (text),
// Frost: #8FBCBB-#5E81AC (accents), Aurora: #BF616A/#D08770/#EBCB8B/#A3BE8C/#B48EAD.
var NordPreset = Preset{
	Name:        "nord",
	Description: "Nord - arctic, north-bluish palette",
	Colors: map[ColorToken]string{
		// Text hierarchy
		TokenTextPrimary:     "#ECEFF4", // snow storm 3
		TokenTextSecondary:   "#E5E9F0", // snow storm 2
		TokenTextMuted:       "#4C566A", // polar night 4
		TokenTextPlaceholder: "#4C566A", // polar night 4

		// Borders
		TokenBorderDefault:   "#4C566A", // polar night 4
		TokenBorderHighlight: "#88C0D0", // frost 2

		// Status indicators
		TokenStatusSuccess: "#A3BE8C", // aurora green
		TokenStatusWarning: "#EBCB8B", // aurora yellow
		TokenStatusError:   "#BF616A", // aurora red

		// Selection
		TokenSelectionIndicator: "#ECEFF4", // snow storm 3

		// Buttons
		TokenButtonText:             "#2E3440", // polar night 1
		TokenButtonPrimaryBg:        "#5E81AC", // frost 4
		TokenButtonPrimaryFocusBg:   "#81A1C1", // frost 3
		TokenButtonSecondaryBg:      "#3B4252", // polar night 2
		TokenButtonSecondaryFocusBg: "#4C566A", // polar night 4
		TokenButtonDangerBg:         "#BF616A", // aurora red
		TokenButtonDangerFocusBg:    "#D08770", // aurora orange
		TokenButtonDisabledBg:       "#3B4252", // polar night 2

		// Forms
		TokenFormBorder:      "#4C566A", // polar night 4
		TokenFormBorderFocus: "#ECEFF4", // snow storm 3
		TokenFormLabel:       "#4C566A", // polar night 4
		TokenFormLabelFocus:  "#ECEFF4", // snow storm 3

		// Overlays/Modals
		TokenOverlayTitle:  "#ECEFF4", // snow storm 3
		TokenOverlayBorder: "#4C566A", // polar night 4

		// Popovers
		TokenPopoverBorder:    "#4C566A", // polar night 4
		TokenPopoverIndicator: "#88C0D0", // frost 2

		// Toggles
		TokenToggleOn:   "#A3BE8C", // aurora green
		TokenToggleOff:  "#4C566A", // polar night 4
		TokenToggleKnob: "#ECEFF4", // snow storm 3

		// Pager
		TokenPagerDot:       "#4C566A", // polar night 4
		TokenPagerDotActive: "#88C0D0", // frost 2

		// Badges
		TokenBadgeText: "#2E3440", // polar night 1
	},
}

// HighContrastPreset maximizes legibility for low-color terminals.
var HighContrastPreset = Preset{
	Name:        "high-contrast",
	Description: "High contrast - maximum legibility",
	Colors: map[ColorToken]string{
		// Text hierarchy
		TokenTextPrimary:     "#FFFFFF",
		TokenTextSecondary:   "#FFFFFF",
		TokenTextMuted:       "#AAAAAA",
		TokenTextPlaceholder: "#AAAAAA",

		// Borders
		TokenBorderDefault:   "#FFFFFF",
		TokenBorderHighlight: "#FFFF00",

		// Status indicators
		TokenStatusSuccess: "#00FF00",
		TokenStatusWarning: "#FFFF00",
		TokenStatusError:   "#FF0000",

		// Selection
		TokenSelectionIndicator: "#FFFF00",

		// Buttons
		TokenButtonText:             "#000000",
		TokenButtonPrimaryBg:        "#00FFFF",
		TokenButtonPrimaryFocusBg:   "#FFFFFF",
		TokenButtonSecondaryBg:      "#AAAAAA",
		TokenButtonSecondaryFocusBg: "#FFFFFF",
		TokenButtonDangerBg:         "#FF0000",
		TokenButtonDangerFocusBg:    "#FF5555",
		TokenButtonDisabledBg:       "#555555",

		// Forms
		TokenFormBorder:      "#FFFFFF",
		TokenFormBorderFocus: "#FFFF00",
		TokenFormLabel:       "#FFFFFF",
		TokenFormLabelFocus:  "#FFFF00",

		// Overlays/Modals
		TokenOverlayTitle:  "#FFFFFF",
		TokenOverlayBorder: "#FFFFFF",

		// Popovers
		TokenPopoverBorder:    "#FFFFFF",
		TokenPopoverIndicator: "#FFFF00",

		// Toggles
		TokenToggleOn:   "#00FF00",
		TokenToggleOff:  "#AAAAAA",
		TokenToggleKnob: "#FFFFFF",

		// Pager
		TokenPagerDot:       "#AAAAAA",
		TokenPagerDotActive: "#FFFF00",

		// Badges
		TokenBadgeText: "#000000",
	},
}
