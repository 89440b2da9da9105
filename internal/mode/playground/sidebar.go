package playground

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lumenui/lumen/internal/ui/styles"
)

// renderSidebar renders the component list sidebar.
// The height parameter is reserved for future scrolling support.
func renderSidebar(demos []ComponentDemo, selectedIndex, width, _ int, focused bool) string {
	var sb strings.Builder
	pad := " " // 1 char padding

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.TextPrimaryColor)
	selectedStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.SelectionIndicatorColor)
	normalStyle := lipgloss.NewStyle().Foreground(styles.TextSecondaryColor)

	if focused {
		headerStyle = headerStyle.Foreground(styles.SelectionIndicatorColor)
	}

	sb.WriteString(pad + headerStyle.Render("Components"))
	sb.WriteString("\n")
	sb.WriteString(pad + lipgloss.NewStyle().Foreground(styles.BorderDefaultColor).Render(strings.Repeat("─", max(width-4, 1))))
	sb.WriteString("\n")

	for i, demo := range demos {
		var line string
		if i == selectedIndex {
			indicator := styles.SelectionIndicatorStyle.Render("●")
			name := selectedStyle.Render(demo.Name)
			line = pad + indicator + " " + name
		} else {
			name := normalStyle.Render(demo.Name)
			line = pad + "  " + name
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return sb.String()
}
