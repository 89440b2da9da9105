package playground

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenui/lumen/internal/ui/modal"
	"github.com/lumenui/lumen/internal/ui/styles"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func sized() Model {
	m := New()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model)
}

func TestNew_StartsOnSidebar(t *testing.T) {
	m := New()
	assert.Equal(t, FocusSidebar, m.focus)
	assert.Equal(t, 0, m.selectedIndex)
	assert.NotEmpty(t, m.demos)
}

func TestSidebarNavigation_Wraps(t *testing.T) {
	m := sized()
	count := len(m.demos)

	updated, _ := m.Update(keyMsg("up"))
	m = updated.(Model)
	assert.Equal(t, count-1, m.selectedIndex, "up from first wraps to last")

	updated, _ = m.Update(keyMsg("down"))
	m = updated.(Model)
	assert.Equal(t, 0, m.selectedIndex, "down from last wraps to first")
}

func TestTab_SwitchesFocus(t *testing.T) {
	m := sized()

	updated, _ := m.Update(keyMsg("tab"))
	m = updated.(Model)
	assert.Equal(t, FocusDemo, m.focus)

	updated, _ = m.Update(keyMsg("tab"))
	m = updated.(Model)
	assert.Equal(t, FocusSidebar, m.focus)
}

func TestEnter_LoadsDemoAndFocusesIt(t *testing.T) {
	m := sized()

	updated, _ := m.Update(keyMsg("enter"))
	m = updated.(Model)

	assert.Equal(t, FocusDemo, m.focus)
	require.NotNil(t, m.demoModel)
	assert.Equal(t, 0, m.demoModelIndex)
}

func TestCtrlC_PresentsQuitModalThroughRegistry(t *testing.T) {
	m := sized()

	updated, _ := m.Update(keyMsg("ctrl+c"))
	m = updated.(Model)

	require.NotNil(t, m.quitModal)
	assert.Equal(t, 1, m.overlays.Len())
}

func TestCtrlC_TwiceQuits(t *testing.T) {
	m := sized()

	updated, _ := m.Update(keyMsg("ctrl+c"))
	m = updated.(Model)
	updated, cmd := m.Update(keyMsg("ctrl+c"))
	m = updated.(Model)

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.True(t, m.quitting)
}

func TestQuitModal_CancelCloses(t *testing.T) {
	m := sized()

	updated, _ := m.Update(keyMsg("ctrl+c"))
	m = updated.(Model)
	updated, _ = m.Update(modal.CancelMsg{})
	m = updated.(Model)

	assert.Nil(t, m.quitModal)
	assert.Equal(t, 0, m.overlays.Len())
}

func TestQuitModal_SubmitQuits(t *testing.T) {
	m := sized()

	updated, _ := m.Update(keyMsg("ctrl+c"))
	m = updated.(Model)
	updated, cmd := m.Update(modal.SubmitMsg{})
	m = updated.(Model)

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.True(t, m.quitting)
}

func TestEsc_DismissesQuitModalViaBackdrop(t *testing.T) {
	m := sized()

	updated, _ := m.Update(keyMsg("ctrl+c"))
	m = updated.(Model)
	require.Equal(t, 1, m.overlays.Len())

	// Esc goes to the modal itself, which emits CancelMsg.
	updated, cmd := m.Update(keyMsg("esc"))
	m = updated.(Model)
	require.NotNil(t, cmd)
	assert.IsType(t, modal.CancelMsg{}, cmd())
}

func TestCycleTheme_AppliesNextPreset(t *testing.T) {
	t.Cleanup(func() {
		require.NoError(t, styles.ApplyTheme(styles.ThemeConfig{}))
	})

	m := sized()
	updated, _ := m.Update(keyMsg("t"))
	m = updated.(Model)

	assert.Contains(t, m.lastAction, "Theme: ")
}

func TestView_RendersSidebarAndFooter(t *testing.T) {
	m := sized()
	view := m.View()

	assert.Contains(t, view, "Components")
	for _, binding := range m.keyMap.ShortHelp() {
		assert.Contains(t, view, binding.Help().Key+": "+binding.Help().Desc)
	}
	for _, demo := range m.demos {
		assert.Contains(t, view, demo.Name)
	}
}

func TestView_OverlaysQuitModal(t *testing.T) {
	m := sized()

	updated, _ := m.Update(keyMsg("ctrl+c"))
	m = updated.(Model)

	assert.Contains(t, m.View(), "Quit Playground")
}

func TestView_EmptyAfterQuit(t *testing.T) {
	m := sized()
	m.quitting = true
	assert.Empty(t, m.View())
}

func TestGetComponentDemos_AllCreateAndRender(t *testing.T) {
	for _, demo := range GetComponentDemos() {
		t.Run(demo.Name, func(t *testing.T) {
			model := demo.Create(60, 20)
			require.NotNil(t, model)
			assert.NotPanics(t, func() { _ = model.View() })

			model = model.SetSize(80, 24)
			assert.NotPanics(t, func() { _ = model.View() })

			assert.NotNil(t, model.Reset())
		})
	}
}

func TestGetTokenColor_CoversAllTokens(t *testing.T) {
	for _, token := range styles.AllTokens() {
		assert.NotEmpty(t, GetTokenColor(token), "token %s has no color mapping", token)
	}
}

func TestShiftTab_SwitchesFocus(t *testing.T) {
	m := sized()

	updated, _ := m.Update(keyMsg("shift+tab"))
	m = updated.(Model)
	assert.Equal(t, FocusDemo, m.focus)

	updated, _ = m.Update(keyMsg("shift+tab"))
	m = updated.(Model)
	assert.Equal(t, FocusSidebar, m.focus)
}

func TestHelpKey_TogglesOverlay(t *testing.T) {
	m := sized()

	updated, _ := m.Update(keyMsg("?"))
	m = updated.(Model)
	require.Equal(t, 1, m.overlays.Len())
	assert.Contains(t, m.View(), "Keybindings")

	updated, _ = m.Update(keyMsg("?"))
	m = updated.(Model)
	assert.Equal(t, 0, m.overlays.Len())
	assert.NotContains(t, m.View(), "Keybindings")
}

func TestHelpOverlay_EscDismissesAndReopens(t *testing.T) {
	m := sized()

	updated, _ := m.Update(keyMsg("?"))
	m = updated.(Model)
	require.Equal(t, 1, m.overlays.Len())

	updated, _ = m.Update(keyMsg("esc"))
	m = updated.(Model)
	require.Equal(t, 0, m.overlays.Len())

	// The dismissed id was cleared, so the next press shows again
	// instead of toggling a stale entry off.
	updated, _ = m.Update(keyMsg("?"))
	m = updated.(Model)
	assert.Equal(t, 1, m.overlays.Len())
}

func TestHelpKey_ForwardedToFocusedDemo(t *testing.T) {
	m := sized()

	updated, _ := m.Update(keyMsg("tab"))
	m = updated.(Model)
	require.Equal(t, FocusDemo, m.focus)

	updated, _ = m.Update(keyMsg("?"))
	m = updated.(Model)
	assert.Equal(t, 0, m.overlays.Len())
}

func TestCtrlR_ResetsLoadedDemo(t *testing.T) {
	m := sized()

	updated, _ := m.Update(keyMsg("enter"))
	m = updated.(Model)
	require.NotNil(t, m.demoModel)

	updated, _ = m.Update(keyMsg("ctrl+r"))
	m = updated.(Model)
	assert.Contains(t, m.lastAction, "Reset: ")
}

func TestLeftKey_StaysWithFocusedDemo(t *testing.T) {
	m := sized()

	updated, _ := m.Update(keyMsg("enter"))
	m = updated.(Model)
	require.Equal(t, FocusDemo, m.focus)

	updated, _ = m.Update(keyMsg("left"))
	m = updated.(Model)
	assert.Equal(t, FocusDemo, m.focus)
}
