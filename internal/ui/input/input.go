// Package input wraps a text input in a labeled form section.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lumenui/lumen/internal/ui/styles"
)

// Config controls the input field.
type Config struct {
	Label       string
	Placeholder string
	Value       string
	MaxLength   int // Character limit (0 = unlimited)
	Hint        string
	Width       int // Section width (0 = default 40)

	// Validate is run against the current value on every change. A
	// non-nil error is shown below the field.
	Validate func(string) error
}

// Model is the input component state.
type Model struct {
	config Config
	field  textinput.Model
	err    error
}

// New creates an input from cfg.
func New(cfg Config) Model {
	ti := textinput.New()
	ti.Placeholder = cfg.Placeholder
	ti.Prompt = ""
	if cfg.MaxLength > 0 {
		ti.CharLimit = cfg.MaxLength
	}
	if cfg.Value != "" {
		ti.SetValue(cfg.Value)
	}
	width := cfg.Width
	if width <= 0 {
		width = 40
	}
	ti.Width = width - 4
	cfg.Width = width

	return Model{config: cfg, field: ti}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Focus() (Model, tea.Cmd) {
	cmd := m.field.Focus()
	return m, cmd
}

func (m Model) Blur() Model {
	m.field.Blur()
	return m
}

func (m Model) Focused() bool { return m.field.Focused() }

func (m Model) Value() string { return m.field.Value() }

// SetValue replaces the current value and revalidates.
func (m Model) SetValue(value string) Model {
	m.field.SetValue(value)
	m.err = m.validate()
	return m
}

// Err returns the current validation error, if any.
func (m Model) Err() error { return m.err }

// Valid reports whether the current value passes validation.
func (m Model) Valid() bool { return m.validate() == nil }

func (m Model) validate() error {
	if m.config.Validate == nil {
		return nil
	}
	return m.config.Validate(m.field.Value())
}

// Update forwards messages to the underlying text input and
// revalidates after edits.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)
	m.err = m.validate()
	return m, cmd
}

// View renders the field inside a bordered section with its label,
// plus the validation error when present.
func (m Model) View() string {
	content := []string{m.field.View()}
	section := styles.RenderFormSection(
		content, m.config.Label, m.config.Hint,
		m.config.Width, m.field.Focused(), styles.BorderHighlightFocusColor,
	)
	if m.err != nil {
		return section + "\n" + styles.ErrorStyle.Render(m.err.Error())
	}
	return section
}
