// Package playground provides a component showcase and theme token viewer.
package playground

import (
	"context"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lumenui/lumen/internal/keys"
	"github.com/lumenui/lumen/internal/log"
	"github.com/lumenui/lumen/internal/pubsub"
	"github.com/lumenui/lumen/internal/ui/button"
	"github.com/lumenui/lumen/internal/ui/help"
	"github.com/lumenui/lumen/internal/ui/modal"
	"github.com/lumenui/lumen/internal/ui/overlay"
	"github.com/lumenui/lumen/internal/ui/styles"
)

// FocusPane represents which pane has focus.
type FocusPane int

const (
	// FocusSidebar means the sidebar has focus.
	FocusSidebar FocusPane = iota
	// FocusDemo means the demo area has focus.
	FocusDemo
)

// Model holds the playground state.
type Model struct {
	// View state
	focus         FocusPane
	selectedIndex int
	lastAction    string

	// Components
	demos          []ComponentDemo
	demoModel      DemoModel
	demoModelIndex int // tracks which demo is currently loaded

	// Overlay plumbing: the playground owns the registry and mounts
	// the stack as its presenter.
	registry *overlay.Registry
	overlays *overlay.Stack

	// Quit confirmation modal
	quitModal   *modal.Model
	quitModalID overlay.ID

	// Keybinding help overlay
	helpID overlay.ID

	// Overlay visibility events surfaced in the status line
	overlayEvents   *pubsub.Broker[overlay.ID]
	overlayListener *pubsub.ContinuousListener[overlay.ID]

	// Theme cycling
	themePresets []string
	themeIndex   int

	keyMap keys.KeyMap

	// Dimensions
	width    int
	height   int
	quitting bool
}

// New creates a new playground model.
func New() Model {
	registry := overlay.NewRegistry()
	stack := overlay.NewStack()
	registry.Mount(stack)

	events := pubsub.NewBroker[overlay.ID]()
	stack.SetEvents(events)
	listener := pubsub.NewContinuousListener(context.Background(), events)

	presets := make([]string, 0, len(styles.Presets))
	for name := range styles.Presets {
		presets = append(presets, name)
	}
	sort.Strings(presets)

	return Model{
		focus:           FocusSidebar,
		demos:           GetComponentDemos(),
		demoModelIndex:  -1, // no demo loaded yet
		registry:        registry,
		overlays:        stack,
		overlayEvents:   events,
		overlayListener: listener,
		themePresets:    presets,
		keyMap:          keys.DefaultKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.overlayListener.Listen()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.demoModel != nil {
			demoWidth, demoHeight := m.getDemoAreaDimensions()
			m.demoModel = m.demoModel.SetSize(demoWidth, demoHeight)
		}
		return m, nil

	case modal.SubmitMsg:
		// User confirmed quit
		if m.quitModal != nil {
			m.quitting = true
			return m, tea.Quit
		}
		return m.forwardToDemo(msg)

	case modal.CancelMsg:
		if m.quitModal != nil {
			m = m.closeQuitModal()
			return m, nil
		}
		return m.forwardToDemo(msg)

	case pubsub.Event[overlay.ID]:
		switch msg.Type {
		case pubsub.ShownEvent:
			m.lastAction = "Overlay shown"
		case pubsub.HiddenEvent:
			m.lastAction = "Overlay hidden"
		}
		return m, m.overlayListener.Listen()

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	default:
		// Forward other messages to the demo model
		return m.forwardToDemo(msg)
	}
}

func (m Model) forwardToDemo(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.demoModel == nil {
		return m, nil
	}
	var cmd tea.Cmd
	var action string
	m.demoModel, cmd, action = m.demoModel.Update(msg)
	if action != "" {
		m.lastAction = action
	}
	return m, cmd
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C always handled first - quit immediately if modal open, else confirm
	if msg.String() == "ctrl+c" {
		if m.quitModal != nil {
			m.quitting = true
			return m, tea.Quit
		}
		return m.openQuitModal()
	}

	// If quit modal is showing, forward to it and re-present the
	// updated snapshot.
	if m.quitModal != nil {
		updated, cmd := m.quitModal.Update(msg)
		m.quitModal = &updated
		m = m.representQuitModal()
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keyMap.Quit):
		if m.focus == FocusSidebar {
			return m.openQuitModal()
		}

	case key.Matches(msg, m.keyMap.CycleTheme):
		// Only from the sidebar so demos with text entry keep the key.
		if m.focus == FocusSidebar {
			return m.cycleTheme()
		}

	case key.Matches(msg, m.keyMap.Help):
		// Same restriction as CycleTheme: "?" belongs to text entry
		// when a demo has focus.
		if m.focus == FocusSidebar {
			return m.toggleHelp()
		}

	case key.Matches(msg, m.keyMap.Escape):
		// Backdrop dismissal goes to the topmost dismissable overlay
		// before it means anything else.
		if id := m.overlays.DismissBackdrop(); id != overlay.None {
			if id == m.helpID {
				m.helpID = overlay.None
			}
			m.lastAction = "Dismissed overlay"
			return m, nil
		}
		// A demo with its own overlay open gets the key.
		if m.focus == FocusDemo && m.demoModel != nil && m.demoModel.WantsEsc() {
			return m.handleDemoKeys(msg)
		}
		if m.focus == FocusDemo {
			m.focus = FocusSidebar
			return m, nil
		}
	}

	return m.handleComponentListKeys(msg)
}

// handleComponentListKeys handles keys in the component list view.
func (m Model) handleComponentListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.NextFocus), key.Matches(msg, m.keyMap.PrevFocus):
		if m.focus == FocusSidebar {
			m.focus = FocusDemo
			m.ensureDemoLoaded()
		} else {
			m.focus = FocusSidebar
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Right):
		if m.focus == FocusSidebar {
			m.focus = FocusDemo
			m.ensureDemoLoaded()
			return m, nil
		}

	case key.Matches(msg, m.keyMap.Reset):
		if m.demoModel != nil {
			m.demoModel = m.demoModel.Reset()
			m.lastAction = "Reset: " + m.demos[m.selectedIndex].Name
			return m, nil
		}
	}

	if m.focus == FocusSidebar {
		return m.handleSidebarKeys(msg)
	}
	return m.handleDemoKeys(msg)
}

// ensureDemoLoaded loads the demo for the current selection if not
// already loaded.
func (m *Model) ensureDemoLoaded() {
	if m.demoModelIndex != m.selectedIndex && m.selectedIndex < len(m.demos) {
		demoWidth, demoHeight := m.getDemoAreaDimensions()
		m.demoModel = m.demos[m.selectedIndex].Create(demoWidth, demoHeight)
		m.demoModelIndex = m.selectedIndex
		log.Debug(log.CatPlayground, "loaded demo", "name", m.demos[m.selectedIndex].Name)
	}
}

// handleSidebarKeys handles keys when sidebar is focused.
func (m Model) handleSidebarKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Down):
		m.selectedIndex++
		if m.selectedIndex >= len(m.demos) {
			m.selectedIndex = 0 // Wrap to top
		}
		m.ensureDemoLoaded()
	case key.Matches(msg, m.keyMap.Up):
		m.selectedIndex--
		if m.selectedIndex < 0 {
			m.selectedIndex = len(m.demos) - 1 // Wrap to bottom
		}
		m.ensureDemoLoaded()
	case key.Matches(msg, m.keyMap.Enter):
		m.ensureDemoLoaded()
		m.focus = FocusDemo
	}

	return m, nil
}

// handleDemoKeys handles keys when demo area is focused.
func (m Model) handleDemoKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.demoModel != nil {
		var cmd tea.Cmd
		var action string
		m.demoModel, cmd, action = m.demoModel.Update(msg)
		if action != "" {
			m.lastAction = action
		}
		return m, cmd
	}
	return m, nil
}

// openQuitModal presents a quit confirmation through the overlay
// registry.
func (m Model) openQuitModal() (Model, tea.Cmd) {
	mdl := modal.New(modal.Config{
		Title:          "Quit Playground",
		Message:        "Are you sure you want to exit?",
		ConfirmVariant: button.Danger,
	})
	m.quitModal = &mdl
	m.quitModalID = mdl.Present(m.registry, func() {})
	return m, mdl.Init()
}

// representQuitModal refreshes the registry entry so the stack
// renders the modal's current state.
func (m Model) representQuitModal() Model {
	m.quitModalID = m.registry.Hide(m.quitModalID)
	if m.quitModal != nil {
		m.quitModalID = m.quitModal.Present(m.registry, func() {})
	}
	return m
}

// toggleHelp shows or hides the keybinding overlay through the
// registry.
func (m Model) toggleHelp() (Model, tea.Cmd) {
	if m.helpID != overlay.None {
		m.helpID = m.registry.Hide(m.helpID)
		return m, nil
	}
	m.helpID = m.registry.Show(help.New(m.keyMap), overlay.DismissConfig{AllowBackdrop: true})
	return m, nil
}

func (m Model) closeQuitModal() Model {
	m.quitModalID = m.registry.Hide(m.quitModalID)
	m.quitModal = nil
	return m
}

// cycleTheme applies the next built-in preset.
func (m Model) cycleTheme() (Model, tea.Cmd) {
	if len(m.themePresets) == 0 {
		return m, nil
	}
	m.themeIndex = (m.themeIndex + 1) % len(m.themePresets)
	name := m.themePresets[m.themeIndex]
	if err := styles.ApplyTheme(styles.ThemeConfig{Preset: name}); err != nil {
		log.ErrorErr(log.CatTheme, "failed to apply preset", err, "preset", name)
		return m, nil
	}
	m.lastAction = "Theme: " + name
	log.Info(log.CatTheme, "applied preset", "preset", name)
	return m, nil
}

// getDemoAreaDimensions calculates the demo area dimensions.
func (m Model) getDemoAreaDimensions() (int, int) {
	sidebarWidth := m.getSidebarWidth()
	gap := 2
	demoWidth := m.width - sidebarWidth - gap - 4 // -4 for borders
	demoHeight := m.height - 6                    // -6 for header/footer
	return max(demoWidth, 20), max(demoHeight, 10)
}

// getSidebarWidth returns the sidebar width (30% of total, min 20, max 30).
func (m Model) getSidebarWidth() int {
	w := m.width * 30 / 100
	return max(min(w, 30), 20)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	content := (&m).renderComponentListView()

	// Composite any active overlays over the base view
	if m.overlays.Len() > 0 {
		return m.overlays.Render(content, m.width, m.height)
	}
	return content
}

// renderComponentListView renders the main view with sidebar + demo area.
func (m *Model) renderComponentListView() string {
	m.ensureDemoLoaded()

	sidebarWidth := m.getSidebarWidth()
	gap := 2
	demoWidth := m.width - sidebarWidth - gap

	contentHeight := m.height - 3

	sidebarContent := renderSidebar(m.demos, m.selectedIndex, sidebarWidth, contentHeight, m.focus == FocusSidebar)
	sidebar := styles.RenderWithTitleBorder(
		sidebarContent, "", sidebarWidth, contentHeight,
		m.focus == FocusSidebar, styles.OverlayTitleColor, styles.BorderHighlightFocusColor,
	)

	var demoContent string
	var demoName string
	if m.selectedIndex < len(m.demos) {
		demoName = m.demos[m.selectedIndex].Name
		demoContent = renderDemoArea(m.demoModel, m.lastAction)
	}
	demoArea := styles.RenderWithTitleBorder(
		demoContent, demoName, demoWidth, contentHeight,
		m.focus == FocusDemo, styles.OverlayTitleColor, styles.BorderHighlightFocusColor,
	)

	gapStr := strings.Repeat(" ", gap)
	mainContent := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, gapStr, demoArea)

	// Footer - single line, full width, derived from the keymap
	footerStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor).Width(m.width)
	var footerParts []string
	for _, binding := range m.keyMap.ShortHelp() {
		h := binding.Help()
		footerParts = append(footerParts, h.Key+": "+h.Desc)
	}
	if m.demoModel != nil {
		h := m.keyMap.Reset.Help()
		footerParts = append(footerParts, h.Key+": "+h.Desc)
	}
	footer := footerStyle.Render(strings.Join(footerParts, "  │  "))

	return mainContent + "\n" + footer
}
