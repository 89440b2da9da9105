package badge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/lumenui/lumen/internal/ui/styles"
)

func TestInitials(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Ada Lovelace", "AL"},
		{"grace brewster murray hopper", "GH"},
		{"alan", "AL"},
		{"x", "X"},
		{"", "?"},
		{"   ", "?"},
		{"  alan  turing  ", "AT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Initials(tt.name))
		})
	}
}

func TestColor_StableForSameName(t *testing.T) {
	assert.Equal(t, Color("Ada Lovelace"), Color("Ada Lovelace"))
	assert.Equal(t, Color("Ada Lovelace"), Color("ada lovelace"))
	assert.Equal(t, Color("Ada Lovelace"), Color("AdaLovelace"))
}

func TestColor_SpreadsAcrossPalette(t *testing.T) {
	names := []string{
		"Ada Lovelace", "Grace Hopper", "Alan Turing", "Barbara Liskov",
		"Donald Knuth", "Edsger Dijkstra", "Frances Allen", "John Backus",
	}
	seen := map[string]bool{}
	for _, name := range names {
		seen[Color(name).Dark] = true
	}
	assert.Greater(t, len(seen), 1, "palette should not collapse to one color")
}

func TestRender_ContainsInitials(t *testing.T) {
	assert.Contains(t, Render("Ada Lovelace"), "AL")
}

func TestColor_AnyNameMapsIntoPalette(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		name := rapid.String().Draw(t, "name")
		c := Color(name)
		assert.Contains(t, styles.BadgePalette, c)
	})
}
