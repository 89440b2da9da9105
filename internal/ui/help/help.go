// Package help contains the keybinding help overlay.
package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/lumenui/lumen/internal/keys"
	"github.com/lumenui/lumen/internal/ui/styles"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.OverlayTitleColor).
			PaddingLeft(2)

	dividerStyle = lipgloss.NewStyle().
			Foreground(styles.OverlayBorderColor)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.OverlayTitleColor).
			MarginTop(1)

	keyStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondaryColor).
			Width(11)

	descStyle = lipgloss.NewStyle().
			Foreground(styles.TextMutedColor)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.OverlayBorderColor)

	contentStyle = lipgloss.NewStyle().
			Padding(0, 2)

	footerStyle = lipgloss.NewStyle().
			Foreground(styles.TextMutedColor).
			MarginTop(1)
)

// Model holds the help overlay state.
type Model struct {
	keyMap keys.KeyMap
}

// New creates a help overlay for the given keymap.
func New(keyMap keys.KeyMap) Model {
	return Model{keyMap: keyMap}
}

// View renders the help box.
func (m Model) View() string {
	columnStyle := lipgloss.NewStyle().MarginRight(4)

	k := m.keyMap

	var navCol strings.Builder
	navCol.WriteString(sectionStyle.Render("Navigation"))
	navCol.WriteString("\n")
	navCol.WriteString(renderBinding(k.Up))
	navCol.WriteString(renderBinding(k.Down))
	navCol.WriteString(renderBinding(k.Left))
	navCol.WriteString(renderBinding(k.Right))

	var actionsCol strings.Builder
	actionsCol.WriteString(sectionStyle.Render("Actions"))
	actionsCol.WriteString("\n")
	actionsCol.WriteString(renderBinding(k.Enter))
	actionsCol.WriteString(renderBinding(k.NextFocus))
	actionsCol.WriteString(renderBinding(k.PrevFocus))
	actionsCol.WriteString(renderBinding(k.Reset))

	var generalCol strings.Builder
	generalCol.WriteString(sectionStyle.Render("General"))
	generalCol.WriteString("\n")
	generalCol.WriteString(renderBinding(k.CycleTheme))
	generalCol.WriteString(renderBinding(k.Help))
	generalCol.WriteString(renderBinding(k.Escape))
	generalCol.WriteString(renderBinding(k.Quit))

	columns := lipgloss.JoinHorizontal(
		lipgloss.Top,
		columnStyle.Render(navCol.String()),
		columnStyle.Render(actionsCol.String()),
		generalCol.String(),
	)

	columnsWidth := lipgloss.Width(columns)
	boxWidth := columnsWidth + 4

	body := contentStyle.Render(columns + "\n" + footerStyle.Render("Press ? or esc to close"))
	divider := dividerStyle.Render(strings.Repeat("─", boxWidth))

	var content strings.Builder
	content.WriteString(titleStyle.Render("Keybindings"))
	content.WriteString("\n")
	content.WriteString(divider)
	content.WriteString("\n")
	content.WriteString(body)

	return boxStyle.Width(boxWidth).Render(content.String())
}

func renderBinding(b key.Binding) string {
	help := b.Help()
	return keyStyle.Render(help.Key) + descStyle.Render(help.Desc) + "\n"
}
