package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestRenderFormSection(t *testing.T) {
	focusColor := lipgloss.Color("#54A0FF")

	tests := []struct {
		name         string
		content      []string
		title        string
		hint         string
		width        int
		focused      bool
		wantContains []string
	}{
		{
			name:    "basic section with title",
			content: []string{"  Content line"},
			title:   "Name",
			width:   30,
			wantContains: []string{
				"╭─ Name",
				"│",
				"Content line",
				"╰",
			},
		},
		{
			name:    "section with title and hint",
			content: []string{"  Input here"},
			title:   "Query",
			hint:    "required",
			width:   40,
			wantContains: []string{
				"╭─ Query",
				"(required)",
				"Input here",
			},
		},
		{
			name:    "empty title renders plain border",
			content: []string{"Content"},
			title:   "",
			width:   20,
			wantContains: []string{
				"╭",
				"╮",
				"Content",
				"╰",
				"╯",
			},
		},
		{
			name:    "multiple content lines",
			content: []string{"Line 1", "Line 2", "Line 3"},
			title:   "Items",
			width:   25,
			wantContains: []string{
				"Line 1",
				"Line 2",
				"Line 3",
			},
		},
		{
			name:    "focused section",
			content: []string{"Focused content"},
			title:   "Focus",
			width:   30,
			focused: true,
			wantContains: []string{
				"╭─ Focus",
				"Focused content",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RenderFormSection(tt.content, tt.title, tt.hint, tt.width, tt.focused, focusColor)
			for _, want := range tt.wantContains {
				assert.Contains(t, result, want)
			}
		})
	}
}

func TestRenderFormSection_ContentPadding(t *testing.T) {
	result := RenderFormSection([]string{"ab"}, "", "", 10, false, lipgloss.Color("#FFF"))

	lines := strings.Split(result, "\n")
	assert.Len(t, lines, 3)
	// Content row is padded to the inner width so the right border aligns
	assert.Equal(t, 10, lipgloss.Width(lines[1]))
}

func TestRenderFormSection_EmptyContent(t *testing.T) {
	result := RenderFormSection(nil, "Empty", "", 20, false, lipgloss.Color("#FFF"))

	// Top and bottom borders still render
	assert.Contains(t, result, "╭─ Empty")
	assert.Contains(t, result, "╰")
}

func TestRenderFormSection_LineCount(t *testing.T) {
	result := RenderFormSection([]string{"1", "2"}, "T", "", 15, false, lipgloss.Color("#FFF"))

	lines := strings.Split(result, "\n")
	// top border + 2 content rows + bottom border
	assert.Len(t, lines, 4)
}
