package help

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenui/lumen/internal/keys"
)

func TestHelp_View_ContainsSections(t *testing.T) {
	view := New(keys.DefaultKeyMap()).View()

	assert.Contains(t, view, "Navigation")
	assert.Contains(t, view, "Actions")
	assert.Contains(t, view, "General")
}

func TestHelp_View_ContainsKeybindings(t *testing.T) {
	k := keys.DefaultKeyMap()
	view := New(k).View()

	for _, group := range k.FullHelp() {
		for _, binding := range group {
			assert.Contains(t, view, binding.Help().Key)
			assert.Contains(t, view, binding.Help().Desc)
		}
	}
}

func TestHelp_View_ContainsTitle(t *testing.T) {
	view := New(keys.DefaultKeyMap()).View()
	assert.Contains(t, view, "Keybindings")
}

func TestHelp_View_ContainsFooter(t *testing.T) {
	view := New(keys.DefaultKeyMap()).View()
	assert.Contains(t, view, "Press ? or esc to close")
}

func TestHelp_View_Stability(t *testing.T) {
	m := New(keys.DefaultKeyMap())
	require.Equal(t, m.View(), m.View())
}
