// Package modal provides a reusable modal component for confirmation
// dialogs and input prompts, presented through the overlay registry.
package modal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lumenui/lumen/internal/ui/button"
	"github.com/lumenui/lumen/internal/ui/input"
	"github.com/lumenui/lumen/internal/ui/overlay"
	"github.com/lumenui/lumen/internal/ui/styles"
)

// FieldConfig defines a single input field.
type FieldConfig struct {
	Key         string // Identifier for this field (used in SubmitMsg.Values)
	Label       string // Label displayed in the field section border
	Placeholder string // Placeholder text shown when empty
	Value       string // Initial value (optional)
	MaxLength   int    // Character limit (0 = unlimited)
}

// Config controls modal appearance and behavior.
type Config struct {
	Title          string         // Modal title (e.g., "New Theme", "Confirm Delete")
	Message        string         // Optional message/prompt text
	Fields         []FieldConfig  // Input fields; if empty, modal is in confirmation mode
	ConfirmVariant button.Variant // Style for the confirm button (default: Primary)
	MinWidth       int            // Minimum width (0 = default 40)
}

// SubmitMsg is sent when the user confirms the modal. Values contains
// field values keyed by FieldConfig.Key.
type SubmitMsg struct {
	Values map[string]string
}

// CancelMsg is sent when the user dismisses the modal.
type CancelMsg struct{}

// Focusable identifies which button is focused once focus leaves the
// fields.
type Focusable int

const (
	FocusConfirm Focusable = iota
	FocusCancel
)

// Model is the modal component state.
type Model struct {
	config       Config
	fields       []input.Model
	fieldKeys    []string
	hasFields    bool
	focusedField int // Which field is focused (-1 if on buttons)
	focusedBtn   Focusable
	confirm      button.Model
	cancel       button.Model
}

// New creates a modal from cfg. With fields it operates in input
// mode; without, it is a plain confirm/cancel dialog.
func New(cfg Config) Model {
	confirmLabel := "Confirm"
	if len(cfg.Fields) > 0 {
		confirmLabel = "Save"
	}

	m := Model{
		config:       cfg,
		hasFields:    len(cfg.Fields) > 0,
		focusedField: 0,
		focusedBtn:   FocusConfirm,
		confirm:      button.New(button.Config{ID: "confirm", Label: confirmLabel, Variant: cfg.ConfirmVariant}),
		cancel:       button.New(button.Config{ID: "cancel", Label: "Cancel", Variant: button.Secondary}),
	}

	if m.hasFields {
		m.fields = make([]input.Model, len(cfg.Fields))
		m.fieldKeys = make([]string, len(cfg.Fields))
		for i, fieldCfg := range cfg.Fields {
			field := input.New(input.Config{
				Label:       fieldCfg.Label,
				Placeholder: fieldCfg.Placeholder,
				Value:       fieldCfg.Value,
				MaxLength:   fieldCfg.MaxLength,
				Width:       m.contentWidth(),
			})
			if i == 0 {
				field, _ = field.Focus()
			}
			m.fields[i] = field
			m.fieldKeys[i] = fieldCfg.Key
		}
	} else {
		m.focusedField = -1
		m.confirm = m.confirm.Focus()
	}

	return m
}

// Init starts the cursor blink in input mode.
func (m Model) Init() tea.Cmd {
	if m.hasFields {
		return m.fields[0].Init()
	}
	return nil
}

// Update handles messages for the modal.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "down", "ctrl+n":
			return m.nextField(), nil

		case "shift+tab", "up", "ctrl+p":
			return m.prevField(), nil

		case "left", "right":
			if m.focusedField == -1 {
				return m.flipButtons(), nil
			}

		case "enter":
			if m.focusedField >= 0 {
				return m.nextField(), nil
			}
			if m.focusedBtn == FocusConfirm {
				return m.submit()
			}
			return m, cancelCmd

		case "esc":
			return m, cancelCmd
		}
	}

	if m.hasFields && m.focusedField >= 0 && m.focusedField < len(m.fields) {
		var cmd tea.Cmd
		m.fields[m.focusedField], cmd = m.fields[m.focusedField].Update(msg)
		return m, cmd
	}
	return m, nil
}

func cancelCmd() tea.Msg { return CancelMsg{} }

// submit builds the values map. In input mode every field must be
// non-empty for the submit to go through.
func (m Model) submit() (Model, tea.Cmd) {
	for _, field := range m.fields {
		if field.Value() == "" {
			return m, nil
		}
	}
	values := make(map[string]string)
	for i, field := range m.fields {
		values[m.fieldKeys[i]] = field.Value()
	}
	return m, func() tea.Msg { return SubmitMsg{Values: values} }
}

func (m Model) flipButtons() Model {
	if m.focusedBtn == FocusConfirm {
		m.focusedBtn = FocusCancel
	} else {
		m.focusedBtn = FocusConfirm
	}
	return m.syncButtonFocus()
}

func (m Model) nextField() Model {
	if m.focusedField >= 0 {
		m.fields[m.focusedField] = m.fields[m.focusedField].Blur()
		if m.focusedField < len(m.fields)-1 {
			m.focusedField++
			m.fields[m.focusedField], _ = m.fields[m.focusedField].Focus()
		} else {
			m.focusedField = -1
			m.focusedBtn = FocusConfirm
		}
	} else if m.focusedBtn == FocusConfirm {
		m.focusedBtn = FocusCancel
	} else if m.hasFields {
		m.focusedField = 0
		m.fields[0], _ = m.fields[0].Focus()
	} else {
		m.focusedBtn = FocusConfirm
	}
	return m.syncButtonFocus()
}

func (m Model) prevField() Model {
	if m.focusedField >= 0 {
		m.fields[m.focusedField] = m.fields[m.focusedField].Blur()
		if m.focusedField > 0 {
			m.focusedField--
			m.fields[m.focusedField], _ = m.fields[m.focusedField].Focus()
		} else {
			m.focusedField = -1
			m.focusedBtn = FocusCancel
		}
	} else if m.focusedBtn == FocusCancel {
		m.focusedBtn = FocusConfirm
	} else if m.hasFields {
		m.focusedField = len(m.fields) - 1
		m.fields[m.focusedField], _ = m.fields[m.focusedField].Focus()
	} else {
		m.focusedBtn = FocusCancel
	}
	return m.syncButtonFocus()
}

func (m Model) syncButtonFocus() Model {
	onButtons := m.focusedField == -1
	if onButtons && m.focusedBtn == FocusConfirm {
		m.confirm = m.confirm.Focus()
	} else {
		m.confirm = m.confirm.Blur()
	}
	if onButtons && m.focusedBtn == FocusCancel {
		m.cancel = m.cancel.Focus()
	} else {
		m.cancel = m.cancel.Blur()
	}
	return m
}

func (m Model) contentWidth() int {
	width := 40
	if m.config.MinWidth > width {
		width = m.config.MinWidth
	}
	if w := lipgloss.Width(m.config.Title); w > width {
		width = w
	}
	return width
}

// View renders the modal box.
func (m Model) View() string {
	contentWidth := m.contentWidth()
	boxWidth := contentWidth + 2

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor).
		PaddingLeft(1)
	divider := lipgloss.NewStyle().
		Foreground(styles.OverlayBorderColor).
		Render(strings.Repeat("─", boxWidth))

	var content strings.Builder
	if m.config.Message != "" {
		msgStyle := lipgloss.NewStyle().
			Foreground(styles.TextPrimaryColor).
			Width(contentWidth)
		content.WriteString(msgStyle.Render(m.config.Message))
		content.WriteString("\n\n")
	}
	for _, field := range m.fields {
		content.WriteString(field.View())
		content.WriteString("\n\n")
	}
	content.WriteString(m.confirm.View() + "  " + m.cancel.View())

	var result strings.Builder
	result.WriteString(titleStyle.Render(m.config.Title))
	result.WriteString("\n")
	result.WriteString(divider)
	result.WriteString("\n")
	result.WriteString(lipgloss.NewStyle().Padding(1, 1).Render(content.String()))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Width(boxWidth).
		Render(result.String())
}

// Present shows the modal through reg. The returned ID hides it
// again via reg.Hide; dismiss runs when the user clicks or escapes
// outside the modal.
func (m Model) Present(reg *overlay.Registry, dismiss func()) overlay.ID {
	return reg.Show(m, overlay.DismissConfig{
		AllowBackdrop:     true,
		OnBackdropDismiss: dismiss,
	})
}

// FocusedField returns the currently focused field index (-1 if on
// buttons).
func (m Model) FocusedField() int {
	return m.focusedField
}

// FocusedButton returns which button holds focus when no field does.
func (m Model) FocusedButton() Focusable {
	return m.focusedBtn
}
