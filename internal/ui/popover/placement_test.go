package popover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestParsePlacement(t *testing.T) {
	tests := []struct {
		raw  string
		want Placement
	}{
		{"top", Placement{SideTop, AlignNone}},
		{"top-start", Placement{SideTop, AlignStart}},
		{"top-end", Placement{SideTop, AlignEnd}},
		{"bottom", Placement{SideBottom, AlignNone}},
		{"bottom-start", Placement{SideBottom, AlignStart}},
		{"bottom-end", Placement{SideBottom, AlignEnd}},
		{"left", Placement{SideLeft, AlignNone}},
		{"left-start", Placement{SideLeft, AlignStart}},
		{"left-end", Placement{SideLeft, AlignEnd}},
		{"right", Placement{SideRight, AlignNone}},
		{"right-start", Placement{SideRight, AlignStart}},
		{"right-end", Placement{SideRight, AlignEnd}},
		{"TOP-START", Placement{SideTop, AlignStart}},
		{" bottom ", Placement{SideBottom, AlignNone}},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePlacement(tt.raw))
		})
	}
}

func TestParsePlacement_UnknownFallsBackToDefault(t *testing.T) {
	for _, raw := range []string{"diagonal", "", "top-middle", "bottom-", "up", "left-start-extra"} {
		assert.Equal(t, DefaultPlacement, ParsePlacement(raw), "raw=%q", raw)
	}
}

func TestPlacement_RoundTripsThroughString(t *testing.T) {
	for _, side := range []Side{SideTop, SideBottom, SideLeft, SideRight} {
		for _, align := range []Align{AlignNone, AlignStart, AlignEnd} {
			p := Placement{Side: side, Align: align}
			assert.Equal(t, p, ParsePlacement(p.String()), "placement %s", p)
		}
	}
}

func TestPlacement_ReverseIsInvolution(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := Placement{
			Side:  Side(rapid.IntRange(0, 3).Draw(t, "side")),
			Align: Align(rapid.IntRange(0, 2).Draw(t, "align")),
		}
		assert.Equal(t, p, p.Reverse().Reverse())
		assert.NotEqual(t, p.Side, p.Reverse().Side)
		assert.Equal(t, p.Align, p.Reverse().Align)
	})
}

func TestResolve_TopStart(t *testing.T) {
	anchor := Rect{X: 10, Y: 20, Width: 100, Height: 40}
	content := Rect{Width: 60, Height: 30}

	frame, indicator := Resolve(anchor, content, ParsePlacement("top-start"), Offsets{})

	assert.Equal(t, Rect{X: 10, Y: -10, Width: 60, Height: 30}, frame)
	assert.Equal(t, Placement{SideBottom, AlignStart}, indicator)
}

func TestResolve_BottomSitsFlushAndCentered(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		anchor := Rect{
			X:      rapid.IntRange(-50, 200).Draw(t, "ax"),
			Y:      rapid.IntRange(-50, 200).Draw(t, "ay"),
			Width:  rapid.IntRange(0, 120).Draw(t, "aw"),
			Height: rapid.IntRange(0, 60).Draw(t, "ah"),
		}
		content := Rect{
			Width:  rapid.IntRange(0, 120).Draw(t, "cw"),
			Height: rapid.IntRange(0, 60).Draw(t, "ch"),
		}

		frame, _ := Resolve(anchor, content, ParsePlacement("bottom"), Offsets{})

		assert.Equal(t, anchor.Y+anchor.Height, frame.Y)
		assert.Equal(t, anchor.X+(anchor.Width-content.Width)/2, frame.X)
	})
}

func TestResolve_UnknownPlacementMatchesDefault(t *testing.T) {
	anchor := Rect{X: 5, Y: 7, Width: 30, Height: 3}
	content := Rect{Width: 12, Height: 5}

	unknown, _ := Resolve(anchor, content, ParsePlacement("diagonal"), Offsets{})
	fallback, _ := Resolve(anchor, content, DefaultPlacement, Offsets{})

	assert.Equal(t, fallback, unknown)
}

func TestResolve_AllSides(t *testing.T) {
	anchor := Rect{X: 20, Y: 10, Width: 10, Height: 4}
	content := Rect{Width: 6, Height: 2}

	tests := []struct {
		placement string
		want      Rect
	}{
		{"top", Rect{X: 22, Y: 8, Width: 6, Height: 2}},
		{"bottom", Rect{X: 22, Y: 14, Width: 6, Height: 2}},
		{"left", Rect{X: 14, Y: 11, Width: 6, Height: 2}},
		{"right", Rect{X: 30, Y: 11, Width: 6, Height: 2}},
		{"top-end", Rect{X: 24, Y: 8, Width: 6, Height: 2}},
		{"left-start", Rect{X: 14, Y: 10, Width: 6, Height: 2}},
		{"right-end", Rect{X: 30, Y: 12, Width: 6, Height: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.placement, func(t *testing.T) {
			frame, _ := Resolve(anchor, content, ParsePlacement(tt.placement), Offsets{})
			assert.Equal(t, tt.want, frame)
		})
	}
}

func TestResolve_AppliesOffsets(t *testing.T) {
	anchor := Rect{X: 10, Y: 10, Width: 10, Height: 2}
	content := Rect{Width: 4, Height: 2}
	off := Offsets{Top: 1, Left: 3, Right: 1, Start: 2}

	frame, _ := Resolve(anchor, content, ParsePlacement("bottom"), off)

	// bottom base: x = 10 + (10-4)/2 = 13, y = 12
	assert.Equal(t, Rect{X: 13 + 3 - 1 + 2, Y: 12 + 1, Width: 4, Height: 2}, frame)
}

func TestResolve_IsDeterministic(t *testing.T) {
	anchor := Rect{X: 3, Y: 9, Width: 40, Height: 6}
	content := Rect{Width: 15, Height: 4}
	off := Offsets{End: 2}

	first, firstInd := Resolve(anchor, content, ParsePlacement("right-end"), off)
	second, secondInd := Resolve(anchor, content, ParsePlacement("right-end"), off)

	assert.Equal(t, first, second)
	assert.Equal(t, firstInd, secondInd)
}

func TestParseOffsets(t *testing.T) {
	tests := []struct {
		name string
		decl map[string]string
		want Offsets
	}{
		{"nil map", nil, Offsets{}},
		{"empty map", map[string]string{}, Offsets{}},
		{"all edges", map[string]string{
			"top": "1", "bottom": "2", "left": "3", "right": "4", "start": "5", "end": "6",
		}, Offsets{Top: 1, Bottom: 2, Left: 3, Right: 4, Start: 5, End: 6}},
		{"negative values", map[string]string{"top": "-3"}, Offsets{Top: -3}},
		{"whitespace", map[string]string{"left": " 7 "}, Offsets{Left: 7}},
		{"malformed ignored", map[string]string{
			"top": "abc", "bottom": "2px", "left": "", "right": "8",
		}, Offsets{Right: 8}},
		{"unknown keys ignored", map[string]string{"diagonal": "5"}, Offsets{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseOffsets(tt.decl))
		})
	}
}
