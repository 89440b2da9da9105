package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Config controls compositing: the viewport size and the top-left cell at
// which the foreground is placed.
type Config struct {
	// Width is the total viewport width.
	Width int
	// Height is the total viewport height.
	Height int
	// X, Y is the origin of the foreground within the viewport. Negative
	// values are clamped to the viewport edge.
	X int
	Y int
}

// Compose renders foreground content on top of background at the configured
// origin. Uses ANSI-aware string manipulation so styling in both the
// foreground and the background is preserved.
func Compose(cfg Config, fg, bg string) string {
	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")

	// Pad background to full height
	for len(bgLines) < cfg.Height {
		bgLines = append(bgLines, strings.Repeat(" ", cfg.Width))
	}

	startX, startY := clampOrigin(cfg.X, cfg.Y)

	// Overlay foreground onto background
	for i, fgLine := range fgLines {
		bgY := startY + i
		if bgY >= len(bgLines) {
			break
		}

		bgLine := bgLines[bgY]
		fgLineWidth := ansi.StringWidth(fgLine)

		// Get left portion of background (ANSI-aware truncation)
		leftPart := ansi.Truncate(bgLine, startX, "")

		// Pad left part if background is shorter than startX
		leftWidth := ansi.StringWidth(leftPart)
		if leftWidth < startX {
			leftPart += strings.Repeat(" ", startX-leftWidth)
		}

		// Get right portion of background after the overlay
		endX := startX + fgLineWidth
		bgWidth := ansi.StringWidth(bgLine)
		var rightPart string
		if endX < bgWidth {
			// TruncateLeft removes chars from the left, keeping the right
			rightPart = ansi.TruncateLeft(bgLine, endX, "")
		}

		// Combine: left background + foreground + right background
		bgLines[bgY] = leftPart + fgLine + rightPart
	}

	return strings.Join(bgLines, "\n")
}

// CenterOrigin returns the origin that centers fg within a viewport.
func CenterOrigin(width, height int, fg string) (x, y int) {
	fgWidth := lipgloss.Width(fg)
	fgHeight := lipgloss.Height(fg)
	return clampOrigin((width-fgWidth)/2, (height-fgHeight)/2)
}

// clampOrigin keeps an origin inside the viewport.
func clampOrigin(x, y int) (int, int) {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y
}
