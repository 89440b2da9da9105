// Package pager provides a horizontally paged view with a dot
// indicator.
package pager

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lumenui/lumen/internal/ui/styles"
)

// Page is a single pane in the pager.
type Page struct {
	Title   string
	Content string
}

// PageChangedMsg is sent when the visible page changes.
type PageChangedMsg struct {
	Index int
}

// Model is the pager component state.
type Model struct {
	pages   []Page
	index   int
	width   int
	focused bool
}

// New creates a pager over pages. The first page is visible.
func New(pages []Page) Model {
	return Model{pages: pages}
}

func (m Model) Focus() Model {
	m.focused = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	return m
}

func (m Model) Focused() bool { return m.focused }

// Index returns the visible page index.
func (m Model) Index() int { return m.index }

// Count returns the number of pages.
func (m Model) Count() int { return len(m.pages) }

// SetWidth sets the width used to center the dot indicator.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// Update pages left and right. Navigation stops at the edges rather
// than wrapping.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}

	switch keyMsg.String() {
	case "left", "h":
		return m.goTo(m.index - 1)
	case "right", "l":
		return m.goTo(m.index + 1)
	}
	return m, nil
}

func (m Model) goTo(index int) (Model, tea.Cmd) {
	if index < 0 || index >= len(m.pages) || index == m.index {
		return m, nil
	}
	m.index = index
	return m, func() tea.Msg { return PageChangedMsg{Index: index} }
}

// View renders the current page above the dot indicator.
func (m Model) View() string {
	if len(m.pages) == 0 {
		return ""
	}

	page := m.pages[m.index]
	var b strings.Builder
	if page.Title != "" {
		title := lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.TextPrimaryColor).
			Render(page.Title)
		b.WriteString(title)
		b.WriteString("\n\n")
	}
	b.WriteString(page.Content)
	b.WriteString("\n\n")
	b.WriteString(m.renderDots())
	return b.String()
}

func (m Model) renderDots() string {
	active := lipgloss.NewStyle().Foreground(styles.PagerDotActiveColor)
	inactive := lipgloss.NewStyle().Foreground(styles.PagerDotColor)

	dots := make([]string, len(m.pages))
	for i := range m.pages {
		if i == m.index {
			dots[i] = active.Render("●")
		} else {
			dots[i] = inactive.Render("○")
		}
	}
	row := strings.Join(dots, " ")
	if m.width > 0 {
		row = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, row)
	}
	return row
}
