package playground

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lumenui/lumen/internal/ui/styles"
)

// GetTokenColor returns the hex color value for a token, mapped to
// the current theme.
func GetTokenColor(token styles.ColorToken) string {
	switch token {
	// Text hierarchy
	case styles.TokenTextPrimary:
		return styles.TextPrimaryColor.Dark
	case styles.TokenTextSecondary:
		return styles.TextSecondaryColor.Dark
	case styles.TokenTextMuted:
		return styles.TextMutedColor.Dark
	case styles.TokenTextPlaceholder:
		return styles.TextPlaceholderColor.Dark

	// Borders
	case styles.TokenBorderDefault:
		return styles.BorderDefaultColor.Dark
	case styles.TokenBorderHighlight:
		return styles.BorderHighlightFocusColor.Dark

	// Status indicators
	case styles.TokenStatusSuccess:
		return styles.StatusSuccessColor.Dark
	case styles.TokenStatusWarning:
		return styles.StatusWarningColor.Dark
	case styles.TokenStatusError:
		return styles.StatusErrorColor.Dark

	// Selection
	case styles.TokenSelectionIndicator:
		return styles.SelectionIndicatorColor.Dark

	// Buttons
	case styles.TokenButtonText:
		return styles.ButtonTextColor.Dark
	case styles.TokenButtonPrimaryBg:
		return styles.ButtonPrimaryBgColor.Dark
	case styles.TokenButtonPrimaryFocusBg:
		return styles.ButtonPrimaryFocusBgColor.Dark
	case styles.TokenButtonSecondaryBg:
		return styles.ButtonSecondaryBgColor.Dark
	case styles.TokenButtonSecondaryFocusBg:
		return styles.ButtonSecondaryFocusBgColor.Dark
	case styles.TokenButtonDangerBg:
		return styles.ButtonDangerBgColor.Dark
	case styles.TokenButtonDangerFocusBg:
		return styles.ButtonDangerFocusBgColor.Dark
	case styles.TokenButtonDisabledBg:
		return styles.ButtonDisabledBgColor.Dark

	// Forms
	case styles.TokenFormBorder:
		return styles.FormBorderColor.Dark
	case styles.TokenFormBorderFocus:
		return styles.FormBorderFocusColor.Dark
	case styles.TokenFormLabel:
		return styles.FormLabelColor.Dark
	case styles.TokenFormLabelFocus:
		return styles.FormLabelFocusColor.Dark

	// Overlays
	case styles.TokenOverlayTitle:
		return styles.OverlayTitleColor.Dark
	case styles.TokenOverlayBorder:
		return styles.OverlayBorderColor.Dark

	// Popovers
	case styles.TokenPopoverBorder:
		return styles.PopoverBorderColor.Dark
	case styles.TokenPopoverIndicator:
		return styles.PopoverIndicatorColor.Dark

	// Toggles
	case styles.TokenToggleOn:
		return styles.ToggleOnColor.Dark
	case styles.TokenToggleOff:
		return styles.ToggleOffColor.Dark
	case styles.TokenToggleKnob:
		return styles.ToggleKnobColor.Dark

	// Pager
	case styles.TokenPagerDot:
		return styles.PagerDotColor.Dark
	case styles.TokenPagerDotActive:
		return styles.PagerDotActiveColor.Dark

	// Badges
	case styles.TokenBadgeText:
		return styles.BadgeTextColor.Dark
	}
	return ""
}

// ThemeTokensDemoModel lists every color token with a swatch.
type ThemeTokensDemoModel struct {
	offset int
	width  int
	height int
}

func createThemeTokensDemo(width, height int) DemoModel {
	return &ThemeTokensDemoModel{width: width, height: height}
}

func (m *ThemeTokensDemoModel) Update(msg tea.Msg) (DemoModel, tea.Cmd, string) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, ""
	}

	maxOffset := max(len(styles.AllTokens())-m.visibleRows(), 0)
	switch keyMsg.String() {
	case "down", "j":
		if m.offset < maxOffset {
			m.offset++
		}
	case "up", "k":
		if m.offset > 0 {
			m.offset--
		}
	}
	return m, nil, ""
}

func (m *ThemeTokensDemoModel) visibleRows() int {
	return max(m.height-4, 5)
}

func (m *ThemeTokensDemoModel) View() string {
	tokens := styles.AllTokens()
	rows := m.visibleRows()
	end := min(m.offset+rows, len(tokens))

	nameStyle := lipgloss.NewStyle().Foreground(styles.TextSecondaryColor).Width(28)
	valueStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor)

	var sb strings.Builder
	for _, token := range tokens[m.offset:end] {
		hex := GetTokenColor(token)
		swatch := lipgloss.NewStyle().
			Background(lipgloss.Color(hex)).
			Render("      ")
		sb.WriteString(swatch)
		sb.WriteString(" ")
		sb.WriteString(nameStyle.Render(string(token)))
		sb.WriteString(valueStyle.Render(hex))
		sb.WriteString("\n")
	}
	if end < len(tokens) || m.offset > 0 {
		sb.WriteString(lipgloss.NewStyle().Foreground(styles.TextMutedColor).
			Render("j/k to scroll"))
	}
	return sb.String()
}

func (m *ThemeTokensDemoModel) SetSize(width, height int) DemoModel {
	m.width = width
	m.height = height
	return m
}

func (m *ThemeTokensDemoModel) Reset() DemoModel {
	return createThemeTokensDemo(m.width, m.height)
}

func (m *ThemeTokensDemoModel) WantsEsc() bool { return false }
