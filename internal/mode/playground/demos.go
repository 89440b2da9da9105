package playground

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lumenui/lumen/internal/log"
	"github.com/lumenui/lumen/internal/ui/badge"
	"github.com/lumenui/lumen/internal/ui/button"
	"github.com/lumenui/lumen/internal/ui/input"
	"github.com/lumenui/lumen/internal/ui/modal"
	"github.com/lumenui/lumen/internal/ui/overlay"
	"github.com/lumenui/lumen/internal/ui/pager"
	"github.com/lumenui/lumen/internal/ui/popover"
	"github.com/lumenui/lumen/internal/ui/styles"
	"github.com/lumenui/lumen/internal/ui/toggle"
)

// ComponentDemo represents a demo-able component in the playground.
type ComponentDemo struct {
	Name        string
	Description string
	Create      func(width, height int) DemoModel
}

// DemoModel is the interface that all demo models must implement.
type DemoModel interface {
	Update(msg tea.Msg) (DemoModel, tea.Cmd, string) // Returns model, cmd, and last action string
	View() string
	SetSize(width, height int) DemoModel
	Reset() DemoModel
	WantsEsc() bool // Returns true while the demo needs the Esc key (e.g., open overlay)
}

// GetComponentDemos returns the registry of all component demos.
func GetComponentDemos() []ComponentDemo {
	return []ComponentDemo{
		{
			Name:        "button",
			Description: "Push buttons in three variants",
			Create:      createButtonDemo,
		},
		{
			Name:        "toggle",
			Description: "On/off switches",
			Create:      createToggleDemo,
		},
		{
			Name:        "input",
			Description: "Validated text input fields",
			Create:      createInputDemo,
		},
		{
			Name:        "badge",
			Description: "Initial badges with stable colors",
			Create:      createBadgeDemo,
		},
		{
			Name:        "pager",
			Description: "Paged views with dot indicator",
			Create:      createPagerDemo,
		},
		{
			Name:        "modal",
			Description: "Confirmation and input dialogs",
			Create:      createModalDemo,
		},
		{
			Name:        "popover",
			Description: "Anchored popovers with placement",
			Create:      createPopoverDemo,
		},
		{
			Name:        "log stream",
			Description: "Live debug log feed",
			Create:      createLogDemo,
		},
		{
			Name:        "Theme Tokens",
			Description: "All theme color tokens",
			Create:      createThemeTokensDemo,
		},
	}
}

func renderDemoArea(demo DemoModel, lastAction string) string {
	var sb strings.Builder

	// Demo content with 1 char padding
	if demo != nil {
		lines := strings.Split(demo.View(), "\n")
		for i, line := range lines {
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(" " + line)
		}
	}

	if lastAction != "" {
		sb.WriteString("\n\n")
		actionStyle := lipgloss.NewStyle().
			Foreground(styles.TextMutedColor).
			Italic(true)
		sb.WriteString(" " + actionStyle.Render("Last action: "+lastAction))
	}

	return sb.String()
}

// =============================================================================
// Button Demo
// =============================================================================

// ButtonDemoModel showcases buttons in every variant.
type ButtonDemoModel struct {
	buttons []button.Model
	focused int
	width   int
	height  int
}

func createButtonDemo(width, height int) DemoModel {
	buttons := []button.Model{
		button.New(button.Config{ID: "primary", Label: "Primary", Variant: button.Primary}),
		button.New(button.Config{ID: "secondary", Label: "Secondary", Variant: button.Secondary}),
		button.New(button.Config{ID: "danger", Label: "Delete", Variant: button.Danger}),
		button.New(button.Config{ID: "disabled", Label: "Disabled", Disabled: true}),
	}
	buttons[0] = buttons[0].Focus()
	return &ButtonDemoModel{buttons: buttons, width: width, height: height}
}

func (m *ButtonDemoModel) Update(msg tea.Msg) (DemoModel, tea.Cmd, string) {
	switch msg := msg.(type) {
	case button.PressedMsg:
		return m, nil, "Pressed: " + msg.ID

	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			return m.moveFocus(-1), nil, ""
		case "right", "l":
			return m.moveFocus(1), nil, ""
		}
		var cmd tea.Cmd
		m.buttons[m.focused], cmd = m.buttons[m.focused].Update(msg)
		return m, cmd, ""
	}
	return m, nil, ""
}

func (m *ButtonDemoModel) moveFocus(delta int) DemoModel {
	m.buttons[m.focused] = m.buttons[m.focused].Blur()
	m.focused = (m.focused + delta + len(m.buttons)) % len(m.buttons)
	m.buttons[m.focused] = m.buttons[m.focused].Focus()
	return m
}

func (m *ButtonDemoModel) View() string {
	views := make([]string, len(m.buttons))
	for i, b := range m.buttons {
		views[i] = b.View()
	}
	hint := lipgloss.NewStyle().Foreground(styles.TextMutedColor).
		Render("←/→ move focus, enter to press")
	return strings.Join(views, "  ") + "\n\n" + hint
}

func (m *ButtonDemoModel) SetSize(width, height int) DemoModel {
	m.width = width
	m.height = height
	return m
}

func (m *ButtonDemoModel) Reset() DemoModel {
	return createButtonDemo(m.width, m.height)
}

func (m *ButtonDemoModel) WantsEsc() bool { return false }

// =============================================================================
// Toggle Demo
// =============================================================================

// ToggleDemoModel showcases toggles.
type ToggleDemoModel struct {
	toggles []toggle.Model
	focused int
	width   int
	height  int
}

func createToggleDemo(width, height int) DemoModel {
	toggles := []toggle.Model{
		toggle.New(toggle.Config{ID: "notifications", Label: "Notifications", On: true}),
		toggle.New(toggle.Config{ID: "sounds", Label: "Sounds"}),
		toggle.New(toggle.Config{ID: "telemetry", Label: "Telemetry (locked)", Disabled: true}),
	}
	toggles[0] = toggles[0].Focus()
	return &ToggleDemoModel{toggles: toggles, width: width, height: height}
}

func (m *ToggleDemoModel) Update(msg tea.Msg) (DemoModel, tea.Cmd, string) {
	switch msg := msg.(type) {
	case toggle.ChangedMsg:
		state := "off"
		if msg.On {
			state = "on"
		}
		return m, nil, fmt.Sprintf("Toggled %s %s", msg.ID, state)

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			return m.moveFocus(-1), nil, ""
		case "down", "j":
			return m.moveFocus(1), nil, ""
		}
		var cmd tea.Cmd
		m.toggles[m.focused], cmd = m.toggles[m.focused].Update(msg)
		return m, cmd, ""
	}
	return m, nil, ""
}

func (m *ToggleDemoModel) moveFocus(delta int) DemoModel {
	m.toggles[m.focused] = m.toggles[m.focused].Blur()
	m.focused = (m.focused + delta + len(m.toggles)) % len(m.toggles)
	m.toggles[m.focused] = m.toggles[m.focused].Focus()
	return m
}

func (m *ToggleDemoModel) View() string {
	var sb strings.Builder
	for i, t := range m.toggles {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(t.View())
	}
	hint := lipgloss.NewStyle().Foreground(styles.TextMutedColor).
		Render("j/k move focus, enter to flip")
	sb.WriteString("\n\n" + hint)
	return sb.String()
}

func (m *ToggleDemoModel) SetSize(width, height int) DemoModel {
	m.width = width
	m.height = height
	return m
}

func (m *ToggleDemoModel) Reset() DemoModel {
	return createToggleDemo(m.width, m.height)
}

func (m *ToggleDemoModel) WantsEsc() bool { return false }

// =============================================================================
// Input Demo
// =============================================================================

// InputDemoModel showcases the validated text input.
type InputDemoModel struct {
	name   input.Model
	email  input.Model
	width  int
	height int
}

func createInputDemo(width, height int) DemoModel {
	name := input.New(input.Config{
		Label:       "Name",
		Placeholder: "Ada Lovelace",
		MaxLength:   40,
	})
	email := input.New(input.Config{
		Label:       "Email",
		Placeholder: "ada@example.com",
		Hint:        "tab to switch",
		Validate: func(v string) error {
			if v != "" && !strings.Contains(v, "@") {
				return errors.New("must contain @")
			}
			return nil
		},
	})
	name, _ = name.Focus()
	return &InputDemoModel{name: name, email: email, width: width, height: height}
}

func (m *InputDemoModel) Update(msg tea.Msg) (DemoModel, tea.Cmd, string) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "tab" {
		if m.name.Focused() {
			m.name = m.name.Blur()
			var cmd tea.Cmd
			m.email, cmd = m.email.Focus()
			return m, cmd, ""
		}
		m.email = m.email.Blur()
		var cmd tea.Cmd
		m.name, cmd = m.name.Focus()
		return m, cmd, ""
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	if m.name.Focused() {
		m.name, cmd = m.name.Update(msg)
		cmds = append(cmds, cmd)
	} else {
		m.email, cmd = m.email.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...), ""
}

func (m *InputDemoModel) View() string {
	return m.name.View() + "\n\n" + m.email.View()
}

func (m *InputDemoModel) SetSize(width, height int) DemoModel {
	m.width = width
	m.height = height
	return m
}

func (m *InputDemoModel) Reset() DemoModel {
	return createInputDemo(m.width, m.height)
}

func (m *InputDemoModel) WantsEsc() bool { return false }

// =============================================================================
// Badge Demo
// =============================================================================

// BadgeDemoModel showcases initial badges.
type BadgeDemoModel struct {
	names  []string
	width  int
	height int
}

func createBadgeDemo(width, height int) DemoModel {
	return &BadgeDemoModel{
		names: []string{
			"Ada Lovelace", "Grace Hopper", "Alan Turing",
			"Barbara Liskov", "katherine johnson", "x",
		},
		width:  width,
		height: height,
	}
}

func (m *BadgeDemoModel) Update(tea.Msg) (DemoModel, tea.Cmd, string) {
	return m, nil, ""
}

func (m *BadgeDemoModel) View() string {
	var sb strings.Builder
	nameStyle := lipgloss.NewStyle().Foreground(styles.TextSecondaryColor)
	for i, name := range m.names {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(badge.Render(name) + " " + nameStyle.Render(name))
	}
	return sb.String()
}

func (m *BadgeDemoModel) SetSize(width, height int) DemoModel {
	m.width = width
	m.height = height
	return m
}

func (m *BadgeDemoModel) Reset() DemoModel {
	return createBadgeDemo(m.width, m.height)
}

func (m *BadgeDemoModel) WantsEsc() bool { return false }

// =============================================================================
// Pager Demo
// =============================================================================

// PagerDemoModel showcases the view pager.
type PagerDemoModel struct {
	pager  pager.Model
	width  int
	height int
}

func createPagerDemo(width, height int) DemoModel {
	p := pager.New([]pager.Page{
		{Title: "Welcome", Content: "Use ←/→ to flip through pages."},
		{Title: "Components", Content: "Each page can hold arbitrary rendered content."},
		{Title: "Theming", Content: "Dots below track the current position."},
	})
	p.SetWidth(width - 2)
	return &PagerDemoModel{pager: p.Focus(), width: width, height: height}
}

func (m *PagerDemoModel) Update(msg tea.Msg) (DemoModel, tea.Cmd, string) {
	switch msg := msg.(type) {
	case pager.PageChangedMsg:
		return m, nil, fmt.Sprintf("Page %d of %d", msg.Index+1, m.pager.Count())
	case tea.KeyMsg:
		var cmd tea.Cmd
		m.pager, cmd = m.pager.Update(msg)
		return m, cmd, ""
	}
	return m, nil, ""
}

func (m *PagerDemoModel) View() string {
	return m.pager.View()
}

func (m *PagerDemoModel) SetSize(width, height int) DemoModel {
	m.width = width
	m.height = height
	m.pager.SetWidth(width - 2)
	return m
}

func (m *PagerDemoModel) Reset() DemoModel {
	return createPagerDemo(m.width, m.height)
}

func (m *PagerDemoModel) WantsEsc() bool { return false }

// =============================================================================
// Modal Demo
// =============================================================================

// ModalDemoModel showcases modals presented through an overlay
// registry owned by the demo.
type ModalDemoModel struct {
	registry *overlay.Registry
	overlays *overlay.Stack
	modal    *modal.Model
	modalID  overlay.ID
	width    int
	height   int
}

func createModalDemo(width, height int) DemoModel {
	registry := overlay.NewRegistry()
	stack := overlay.NewStack()
	registry.Mount(stack)
	return &ModalDemoModel{registry: registry, overlays: stack, width: width, height: height}
}

func (m *ModalDemoModel) Update(msg tea.Msg) (DemoModel, tea.Cmd, string) {
	switch msg := msg.(type) {
	case modal.SubmitMsg:
		m.close()
		if len(msg.Values) > 0 {
			return m, nil, "Submitted: " + msg.Values["name"]
		}
		return m, nil, "Confirmed"

	case modal.CancelMsg:
		m.close()
		return m, nil, "Cancelled"

	case tea.KeyMsg:
		if m.modal != nil {
			updated, cmd := m.modal.Update(msg)
			m.modal = &updated
			m.represent()
			return m, cmd, ""
		}
		switch msg.String() {
		case "c":
			mdl := modal.New(modal.Config{
				Title:          "Confirm Delete",
				Message:        "Really delete this item?",
				ConfirmVariant: button.Danger,
			})
			m.open(mdl)
			return m, mdl.Init(), "Opened confirm modal"
		case "i":
			mdl := modal.New(modal.Config{
				Title: "New Item",
				Fields: []modal.FieldConfig{
					{Key: "name", Label: "Name", Placeholder: "item name"},
				},
			})
			m.open(mdl)
			return m, mdl.Init(), "Opened input modal"
		}
	}
	return m, nil, ""
}

func (m *ModalDemoModel) open(mdl modal.Model) {
	m.modal = &mdl
	m.modalID = mdl.Present(m.registry, func() { m.modal = nil })
}

func (m *ModalDemoModel) represent() {
	m.modalID = m.registry.Hide(m.modalID)
	if m.modal != nil {
		m.modalID = m.modal.Present(m.registry, func() { m.modal = nil })
	}
}

func (m *ModalDemoModel) close() {
	m.modalID = m.registry.Hide(m.modalID)
	m.modal = nil
}

func (m *ModalDemoModel) View() string {
	hint := lipgloss.NewStyle().Foreground(styles.TextMutedColor).
		Render("c: confirm modal, i: input modal")
	bg := hint + strings.Repeat("\n", max(m.height-2, 0))
	if m.overlays.Len() > 0 {
		return m.overlays.Render(bg, m.width, m.height)
	}
	return bg
}

func (m *ModalDemoModel) SetSize(width, height int) DemoModel {
	m.width = width
	m.height = height
	return m
}

func (m *ModalDemoModel) Reset() DemoModel {
	return createModalDemo(m.width, m.height)
}

func (m *ModalDemoModel) WantsEsc() bool { return m.modal != nil || m.overlays.Len() > 0 }

// =============================================================================
// Popover Demo
// =============================================================================

// demoMeasurer reports a fixed anchor frame inside the demo canvas.
type demoMeasurer struct {
	anchor popover.Rect
}

func (d demoMeasurer) Measure(string) (popover.Frames, error) {
	return popover.Frames{Anchor: d.anchor}, nil
}

var popoverPlacements = []string{
	"top", "top-start", "top-end",
	"bottom", "bottom-start", "bottom-end",
	"left", "right",
}

// PopoverDemoModel showcases popovers anchored to a button.
type PopoverDemoModel struct {
	registry  *overlay.Registry
	overlays  *overlay.Stack
	popover   popover.Model
	anchor    button.Model
	placement int
	width     int
	height    int
}

func createPopoverDemo(width, height int) DemoModel {
	registry := overlay.NewRegistry()
	stack := overlay.NewStack()
	registry.Mount(stack)

	m := &PopoverDemoModel{
		registry: registry,
		overlays: stack,
		anchor:   button.New(button.Config{ID: "anchor", Label: "Anchor"}).Focus(),
		width:    width,
		height:   height,
	}
	m.popover = m.buildPopover()
	return m
}

func (m *PopoverDemoModel) buildPopover() popover.Model {
	return popover.New(popover.Config{
		Registry:  m.registry,
		Measurer:  demoMeasurer{anchor: m.anchorRect()},
		Placement: popoverPlacements[m.placement],
	})
}

// anchorRect is where View draws the anchor button.
func (m *PopoverDemoModel) anchorRect() popover.Rect {
	w := lipgloss.Width(m.anchor.View())
	h := lipgloss.Height(m.anchor.View())
	return popover.Rect{
		X:      max((m.width-w)/2, 0),
		Y:      max((m.height-h)/2, 0),
		Width:  w,
		Height: h,
	}
}

func (m *PopoverDemoModel) Update(msg tea.Msg) (DemoModel, tea.Cmd, string) {
	switch msg := msg.(type) {
	case popover.MeasuredMsg:
		var cmd tea.Cmd
		m.popover, cmd = m.popover.Update(msg)
		if m.popover.Visible() {
			return m, cmd, "Popover at " + popoverPlacements[m.placement]
		}
		return m, cmd, ""

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", " ":
			var cmd tea.Cmd
			m.popover, cmd = m.popover.Show("Anchored content\nplacement: " + popoverPlacements[m.placement])
			return m, cmd, ""
		case "tab":
			m.popover = m.popover.Hide()
			m.placement = (m.placement + 1) % len(popoverPlacements)
			m.popover = m.buildPopover()
			return m, nil, "Placement: " + popoverPlacements[m.placement]
		case "esc":
			if m.overlays.DismissBackdrop() != overlay.None {
				m.popover = m.popover.Hide()
				return m, nil, "Dismissed popover"
			}
		}
	}
	return m, nil, ""
}

func (m *PopoverDemoModel) View() string {
	anchor := m.anchorRect()

	hint := lipgloss.NewStyle().Foreground(styles.TextMutedColor).
		Render("enter: show, tab: cycle placement, esc: dismiss")

	// Blank canvas with the anchor button at its measured position
	lines := make([]string, max(m.height-1, anchor.Y+anchor.Height))
	canvas := hint + "\n" + strings.Join(lines, "\n")
	canvas = overlay.Compose(overlay.Config{
		Width:  m.width,
		Height: max(m.height-1, anchor.Y+anchor.Height),
		X:      anchor.X,
		Y:      anchor.Y,
	}, m.anchor.View(), canvas)

	if m.overlays.Len() > 0 {
		return m.overlays.Render(canvas, m.width, m.height)
	}
	return canvas
}

func (m *PopoverDemoModel) SetSize(width, height int) DemoModel {
	m.width = width
	m.height = height
	m.popover = m.popover.Hide()
	m.popover = m.buildPopover()
	return m
}

func (m *PopoverDemoModel) Reset() DemoModel {
	return createPopoverDemo(m.width, m.height)
}

func (m *PopoverDemoModel) WantsEsc() bool { return m.overlays.Len() > 0 }

// =============================================================================
// Log Stream Demo
// =============================================================================

const logDemoMaxLines = 10

// LogDemoModel streams entries from the debug log broker.
type LogDemoModel struct {
	listener *log.Listener
	cancel   context.CancelFunc
	lines    []string
	started  bool
	counter  int
	width    int
	height   int
}

func createLogDemo(width, height int) DemoModel {
	ctx, cancel := context.WithCancel(context.Background())
	return &LogDemoModel{
		listener: log.NewListener(ctx),
		cancel:   cancel,
		width:    width,
		height:   height,
	}
}

func (m *LogDemoModel) Update(msg tea.Msg) (DemoModel, tea.Cmd, string) {
	switch msg := msg.(type) {
	case log.Event:
		m.lines = append(m.lines, strings.TrimRight(msg.Payload, "\n"))
		if len(m.lines) > logDemoMaxLines {
			m.lines = m.lines[len(m.lines)-logDemoMaxLines:]
		}
		return m, m.listener.Listen(), ""

	case tea.KeyMsg:
		if msg.String() == "enter" && m.listener != nil {
			m.counter++
			log.Info(log.CatPlayground, "sample entry", "n", m.counter)
			if !m.started {
				m.started = true
				return m, m.listener.Listen(), "Streaming log"
			}
			return m, nil, ""
		}
	}
	return m, nil, ""
}

func (m *LogDemoModel) View() string {
	muted := lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	if m.listener == nil {
		return muted.Render("Logging is off. Restart with --debug to stream entries.")
	}

	var sb strings.Builder
	sb.WriteString(muted.Render("enter: write a sample entry"))
	sb.WriteString("\n\n")
	if len(m.lines) == 0 {
		sb.WriteString(muted.Render("(no entries yet)"))
	}
	lineStyle := lipgloss.NewStyle().Foreground(styles.TextSecondaryColor)
	for _, line := range m.lines {
		sb.WriteString(lineStyle.Render(line))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m *LogDemoModel) SetSize(width, height int) DemoModel {
	m.width = width
	m.height = height
	return m
}

func (m *LogDemoModel) Reset() DemoModel {
	m.cancel()
	return createLogDemo(m.width, m.height)
}

func (m *LogDemoModel) WantsEsc() bool { return false }
