// Package badge renders compact initial badges for names, with a
// background color picked deterministically from a shared palette.
package badge

import (
	"hash/fnv"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"github.com/lumenui/lumen/internal/ui/styles"
)

// Initials derives up to two uppercase initials from name. Multi-word
// names take the first rune of the first and last words; single words
// take their first two runes.
func Initials(name string) string {
	fields := strings.Fields(name)
	switch len(fields) {
	case 0:
		return "?"
	case 1:
		runes := []rune(fields[0])
		if len(runes) == 1 {
			return strings.ToUpper(string(runes[0]))
		}
		return strings.ToUpper(string(runes[:2]))
	default:
		first := []rune(fields[0])[0]
		last := []rune(fields[len(fields)-1])[0]
		return strings.ToUpper(string([]rune{first, last}))
	}
}

// Color picks a palette color for name. The choice is stable across
// runs so the same name always gets the same badge.
func Color(name string) lipgloss.AdaptiveColor {
	h := fnv.New32a()
	h.Write([]byte(normalize(name)))
	return styles.BadgePalette[int(h.Sum32()%uint32(len(styles.BadgePalette)))]
}

func normalize(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, name)
}

// Render draws the badge for name.
func Render(name string) string {
	return lipgloss.NewStyle().
		Background(Color(name)).
		Foreground(styles.BadgeTextColor).
		Bold(true).
		Padding(0, 1).
		Render(Initials(name))
}
