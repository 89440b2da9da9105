// Package toggle provides an on/off switch component.
package toggle

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lumenui/lumen/internal/ui/styles"
)

// ChangedMsg is sent when the toggle flips.
type ChangedMsg struct {
	ID string
	On bool
}

// Config controls the toggle.
type Config struct {
	ID       string
	Label    string
	On       bool
	Disabled bool
}

// Model is the toggle component state.
type Model struct {
	config  Config
	on      bool
	focused bool
}

func New(cfg Config) Model {
	return Model{config: cfg, on: cfg.On}
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

func (m Model) On() bool { return m.on }

// SetOn forces the toggle state without emitting ChangedMsg.
func (m Model) SetOn(on bool) Model {
	m.on = on
	return m
}

// Update flips the toggle on enter or space while focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused || m.config.Disabled {
		return m, nil
	}

	switch keyMsg.String() {
	case "enter", " ":
		m.on = !m.on
		id, on := m.config.ID, m.on
		return m, func() tea.Msg { return ChangedMsg{ID: id, On: on} }
	}
	return m, nil
}

// View renders a track with a knob on the active side, followed by
// the label.
func (m Model) View() string {
	trackColor := styles.ToggleOffColor
	if m.on {
		trackColor = styles.ToggleOnColor
	}
	trackStyle := lipgloss.NewStyle().Foreground(trackColor)
	knobStyle := lipgloss.NewStyle().Foreground(styles.ToggleKnobColor)

	var track string
	if m.on {
		track = trackStyle.Render("──") + knobStyle.Render("●")
	} else {
		track = knobStyle.Render("●") + trackStyle.Render("──")
	}

	labelColor := styles.TextSecondaryColor
	if m.focused {
		labelColor = styles.TextPrimaryColor
	}
	if m.config.Disabled {
		labelColor = styles.TextMutedColor
	}
	label := lipgloss.NewStyle().Foreground(labelColor).Render(m.config.Label)

	if m.config.Label == "" {
		return track
	}
	return track + " " + label
}
