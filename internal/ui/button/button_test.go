package button

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pressEnter() tea.Msg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func TestButton_PressEmitsMsgWithID(t *testing.T) {
	m := New(Config{ID: "save", Label: "Save"}).Focus()

	_, cmd := m.Update(pressEnter())
	require.NotNil(t, cmd)

	msg, ok := cmd().(PressedMsg)
	require.True(t, ok)
	assert.Equal(t, "save", msg.ID)
}

func TestButton_SpaceAlsoActivates(t *testing.T) {
	m := New(Config{ID: "ok", Label: "OK"}).Focus()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	require.NotNil(t, cmd)
	assert.Equal(t, PressedMsg{ID: "ok"}, cmd())
}

func TestButton_UnfocusedIgnoresKeys(t *testing.T) {
	m := New(Config{ID: "save", Label: "Save"})

	_, cmd := m.Update(pressEnter())
	assert.Nil(t, cmd)
}

func TestButton_DisabledNeverEmits(t *testing.T) {
	m := New(Config{ID: "save", Label: "Save", Disabled: true}).Focus()

	_, cmd := m.Update(pressEnter())
	assert.Nil(t, cmd)
}

func TestButton_FocusBlur(t *testing.T) {
	m := New(Config{Label: "Go"})
	assert.False(t, m.Focused())

	m = m.Focus()
	assert.True(t, m.Focused())

	m = m.Blur()
	assert.False(t, m.Focused())
}

func TestButton_ViewContainsLabel(t *testing.T) {
	for _, v := range []Variant{Primary, Secondary, Danger} {
		m := New(Config{Label: "Delete", Variant: v})
		assert.Contains(t, m.View(), "Delete")
		assert.Contains(t, m.Focus().View(), "Delete")
	}
}

func TestButton_SetDisabled(t *testing.T) {
	m := New(Config{ID: "x", Label: "X"}).Focus()
	m = m.SetDisabled(true)

	assert.True(t, m.Disabled())
	_, cmd := m.Update(pressEnter())
	assert.Nil(t, cmd)

	m = m.SetDisabled(false)
	_, cmd = m.Update(pressEnter())
	assert.NotNil(t, cmd)
}
