package popover

import (
	"strconv"
	"strings"
)

// Rect is a frame in terminal cells with a top-left origin.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Side is the anchor edge a popover attaches to.
type Side int

const (
	SideTop Side = iota
	SideBottom
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "bottom"
}

// opposite returns the 180-degree rotation of the side.
func (s Side) opposite() Side {
	switch s {
	case SideTop:
		return SideBottom
	case SideBottom:
		return SideTop
	case SideLeft:
		return SideRight
	default:
		return SideLeft
	}
}

// Align is the cross-axis alignment against the anchor.
type Align int

const (
	AlignNone Align = iota
	AlignStart
	AlignEnd
)

func (a Align) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignEnd:
		return "end"
	}
	return ""
}

// Placement combines an anchor side with a cross-axis alignment,
// covering the twelve supported values such as "top", "top-start"
// and "right-end".
type Placement struct {
	Side  Side
	Align Align
}

// DefaultPlacement is used whenever a requested placement cannot be
// parsed.
var DefaultPlacement = Placement{Side: SideBottom, Align: AlignNone}

func (p Placement) String() string {
	if p.Align == AlignNone {
		return p.Side.String()
	}
	return p.Side.String() + "-" + p.Align.String()
}

// Reverse flips the side while keeping the alignment. It orients the
// indicator arrow back toward the anchor and is its own inverse.
func (p Placement) Reverse() Placement {
	return Placement{Side: p.Side.opposite(), Align: p.Align}
}

// ParsePlacement reads a raw placement string such as "top-start".
// Unrecognized input falls back to DefaultPlacement rather than
// returning an error.
func ParsePlacement(raw string) Placement {
	side, align, _ := strings.Cut(strings.TrimSpace(strings.ToLower(raw)), "-")

	p := Placement{}
	switch side {
	case "top":
		p.Side = SideTop
	case "bottom":
		p.Side = SideBottom
	case "left":
		p.Side = SideLeft
	case "right":
		p.Side = SideRight
	default:
		return DefaultPlacement
	}

	switch align {
	case "":
		p.Align = AlignNone
	case "start":
		p.Align = AlignStart
	case "end":
		p.Align = AlignEnd
	default:
		return DefaultPlacement
	}
	return p
}

// Offsets are per-edge cell adjustments declared on the anchor. Left
// and Right shift the resolved origin horizontally, Top and Bottom
// vertically, and Start and End shift along the cross axis of the
// resolved side.
type Offsets struct {
	Top    int
	Bottom int
	Left   int
	Right  int
	Start  int
	End    int
}

// ParseOffsets reads offset declarations from string form. Missing or
// malformed entries count as zero.
func ParseOffsets(decl map[string]string) Offsets {
	var o Offsets
	o.Top = parseOffset(decl, "top")
	o.Bottom = parseOffset(decl, "bottom")
	o.Left = parseOffset(decl, "left")
	o.Right = parseOffset(decl, "right")
	o.Start = parseOffset(decl, "start")
	o.End = parseOffset(decl, "end")
	return o
}

func parseOffset(decl map[string]string, key string) int {
	raw, ok := decl[key]
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

// Resolve computes the frame for content of the given size placed
// against anchor, plus the placement for the indicator arrow. The
// content frame sits flush against the requested anchor edge, aligned
// on the cross axis, then adjusted by the anchor's offsets. Identical
// inputs always produce identical outputs.
func Resolve(anchor Rect, content Rect, p Placement, off Offsets) (Rect, Placement) {
	frame := Rect{Width: content.Width, Height: content.Height}

	switch p.Side {
	case SideTop:
		frame.Y = anchor.Y - content.Height
		frame.X = alignCross(anchor.X, anchor.Width, content.Width, p.Align)
	case SideBottom:
		frame.Y = anchor.Y + anchor.Height
		frame.X = alignCross(anchor.X, anchor.Width, content.Width, p.Align)
	case SideLeft:
		frame.X = anchor.X - content.Width
		frame.Y = alignCross(anchor.Y, anchor.Height, content.Height, p.Align)
	case SideRight:
		frame.X = anchor.X + anchor.Width
		frame.Y = alignCross(anchor.Y, anchor.Height, content.Height, p.Align)
	}

	frame.X += off.Left - off.Right
	frame.Y += off.Top - off.Bottom
	switch p.Side {
	case SideTop, SideBottom:
		frame.X += off.Start - off.End
	case SideLeft, SideRight:
		frame.Y += off.Start - off.End
	}

	return frame, p.Reverse()
}

// alignCross positions the content on the axis perpendicular to the
// placement side.
func alignCross(anchorPos, anchorSize, contentSize int, align Align) int {
	switch align {
	case AlignStart:
		return anchorPos
	case AlignEnd:
		return anchorPos + anchorSize - contentSize
	default:
		return anchorPos + (anchorSize-contentSize)/2
	}
}
