// Package button provides a focusable push button with primary,
// secondary and danger variants.
package button

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lumenui/lumen/internal/ui/styles"
)

// Variant selects the button's visual treatment.
type Variant int

const (
	Primary Variant = iota
	Secondary
	Danger
)

// PressedMsg is sent when a focused button is activated.
type PressedMsg struct {
	ID string
}

// Config controls button appearance and behavior.
type Config struct {
	ID       string // Identifier carried in PressedMsg
	Label    string
	Variant  Variant
	Disabled bool
}

// Model is the button component state.
type Model struct {
	config  Config
	focused bool
}

// New creates a button from cfg.
func New(cfg Config) Model {
	return Model{config: cfg}
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

func (m Model) Disabled() bool { return m.config.Disabled }

// SetDisabled toggles availability. Disabling a button also drops its
// focus highlight.
func (m Model) SetDisabled(disabled bool) Model {
	m.config.Disabled = disabled
	return m
}

func (m Model) Label() string { return m.config.Label }

// Update handles activation keys. Only a focused, enabled button
// emits PressedMsg.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused || m.config.Disabled {
		return m, nil
	}

	switch keyMsg.String() {
	case "enter", " ":
		id := m.config.ID
		return m, func() tea.Msg { return PressedMsg{ID: id} }
	}
	return m, nil
}

// View renders the button with its variant style.
func (m Model) View() string {
	return m.style().Render(m.config.Label)
}

func (m Model) style() lipgloss.Style {
	if m.config.Disabled {
		return styles.DisabledButtonStyle
	}
	switch m.config.Variant {
	case Secondary:
		if m.focused {
			return styles.SecondaryButtonFocusedStyle
		}
		return styles.SecondaryButtonStyle
	case Danger:
		if m.focused {
			return styles.DangerButtonFocusedStyle
		}
		return styles.DangerButtonStyle
	default:
		if m.focused {
			return styles.PrimaryButtonFocusedStyle
		}
		return styles.PrimaryButtonStyle
	}
}
