package popover

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lumenui/lumen/internal/log"
	"github.com/lumenui/lumen/internal/ui/overlay"
	"github.com/lumenui/lumen/internal/ui/styles"
)

// ErrNoMeasurer reports a show request on a popover that was built
// without a Measurer.
var ErrNoMeasurer = errors.New("popover: no measurer configured")

// Frames carries the measured anchor and content rectangles a
// Measurer reports back.
type Frames struct {
	Anchor  Rect
	Content Rect
}

// Measurer resolves the on-screen frames for a popover's anchor and
// content. Measurement may be asynchronous; the result is delivered
// through the returned command.
type Measurer interface {
	Measure(body string) (Frames, error)
}

// MeasuredMsg reports a finished measurement for a specific show
// request. Results from superseded requests carry a stale generation
// and are dropped.
type MeasuredMsg struct {
	Generation int
	Frames     Frames
	Err        error
}

type phase int

const (
	phaseHidden phase = iota
	phaseMeasuring
	phaseShown
)

// Config configures a popover.
type Config struct {
	Registry  *overlay.Registry
	Measurer  Measurer
	Placement string
	Offsets   map[string]string
}

// Model is a popover anchored to another element. Showing one runs
// measurement first; the popover only becomes visible once its frame
// has been resolved against the measured anchor.
type Model struct {
	registry  *overlay.Registry
	measurer  Measurer
	placement Placement
	offsets   Offsets

	phase      phase
	generation int
	body       string
	id         overlay.ID
	frame      Rect
	indicator  Placement
}

// New creates a hidden popover from cfg. The placement string is
// parsed up front so a bad value degrades to the default exactly once.
func New(cfg Config) Model {
	return Model{
		registry:  cfg.Registry,
		measurer:  cfg.Measurer,
		placement: ParsePlacement(cfg.Placement),
		offsets:   ParseOffsets(cfg.Offsets),
	}
}

// Show starts presenting body. Any in-flight measurement is
// superseded and an already-visible popover is re-measured in place.
// Once shown the registry entry allows backdrop dismissal; the model
// does not observe the presenter removing it, so the owner that routes
// a backdrop dismiss (e.g. Stack.DismissBackdrop) must call Hide to
// bring the model back in sync.
func (m Model) Show(body string) (Model, tea.Cmd) {
	m.generation++
	m.phase = phaseMeasuring
	m.body = body

	gen := m.generation
	measurer := m.measurer
	return m, func() tea.Msg {
		if measurer == nil {
			return MeasuredMsg{Generation: gen, Err: ErrNoMeasurer}
		}
		frames, err := measurer.Measure(body)
		return MeasuredMsg{Generation: gen, Frames: frames, Err: err}
	}
}

// Hide dismisses the popover. A measurement still in flight is
// cancelled by generation.
func (m Model) Hide() Model {
	m.generation++
	m.phase = phaseHidden
	if m.registry != nil {
		m.id = m.registry.Hide(m.id)
	}
	return m
}

// Visible reports whether the popover has a resolved frame on screen.
// It reflects this model's own state, not the presenter's: after a
// backdrop dismiss it stays true until Hide is called.
func (m Model) Visible() bool {
	return m.phase == phaseShown
}

// Frame returns the resolved content frame. Only meaningful while
// Visible.
func (m Model) Frame() Rect {
	return m.frame
}

// Indicator returns the placement of the arrow pointing back at the
// anchor.
func (m Model) Indicator() Placement {
	return m.indicator
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	measured, ok := msg.(MeasuredMsg)
	if !ok {
		return m, nil
	}
	if measured.Generation != m.generation || m.phase != phaseMeasuring {
		log.Debug(log.CatPopover, "dropping stale measurement",
			"got", measured.Generation, "want", m.generation)
		return m, nil
	}
	if measured.Err != nil {
		log.Warn(log.CatPopover, "measurement failed", "error", measured.Err.Error())
		m.phase = phaseHidden
		return m, nil
	}

	content := measured.Frames.Content
	if content.Width == 0 && content.Height == 0 {
		rendered := m.render()
		content = Rect{Width: lipgloss.Width(rendered), Height: lipgloss.Height(rendered)}
	}

	m.frame, m.indicator = Resolve(measured.Frames.Anchor, content, m.placement, m.offsets)
	m.phase = phaseShown
	if m.registry != nil {
		m.registry.Hide(m.id)
		m.id = m.registry.Show(m, overlay.DismissConfig{AllowBackdrop: true})
	}
	return m, nil
}

// Origin pins the popover at its resolved frame instead of the
// stack's centered default. Coordinates may be negative; Compose
// clamps them to the viewport when splicing.
func (m Model) Origin(_, _ int) (int, int) {
	return m.frame.X, m.frame.Y
}

func (m Model) View() string {
	if m.phase != phaseShown {
		return ""
	}
	return m.render()
}

func (m Model) render() string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.PopoverBorderColor).
		Padding(0, 1)
	box := border.Render(m.body)
	return attachIndicator(box, m.indicator)
}

var indicatorGlyphs = map[Side]string{
	SideTop:    "▲",
	SideBottom: "▼",
	SideLeft:   "◀",
	SideRight:  "▶",
}

// attachIndicator adds the arrow row or column on the indicated side
// of the rendered box, aligned to match the placement's cross-axis
// alignment.
func attachIndicator(box string, indicator Placement) string {
	glyph := lipgloss.NewStyle().
		Foreground(styles.PopoverIndicatorColor).
		Render(indicatorGlyphs[indicator.Side])
	width := lipgloss.Width(box)
	height := lipgloss.Height(box)

	switch indicator.Side {
	case SideTop:
		return crossLine(glyph, width, indicator.Align) + "\n" + box
	case SideBottom:
		return box + "\n" + crossLine(glyph, width, indicator.Align)
	case SideLeft:
		column := crossColumn(glyph, height, indicator.Align)
		return lipgloss.JoinHorizontal(lipgloss.Top, column, box)
	default:
		column := crossColumn(glyph, height, indicator.Align)
		return lipgloss.JoinHorizontal(lipgloss.Top, box, column)
	}
}

func crossLine(glyph string, width int, align Align) string {
	pos := crossOffset(width, align)
	return strings.Repeat(" ", pos) + glyph + strings.Repeat(" ", max(0, width-pos-1))
}

func crossColumn(glyph string, height int, align Align) string {
	pos := crossOffset(height, align)
	lines := make([]string, height)
	for i := range lines {
		if i == pos {
			lines[i] = glyph
		} else {
			lines[i] = " "
		}
	}
	return strings.Join(lines, "\n")
}

// crossOffset picks the arrow slot along an edge of the given size,
// staying one cell inside the corner so the arrow lines up with the
// box border rather than its rounded corners.
func crossOffset(size int, align Align) int {
	switch align {
	case AlignStart:
		return min(1, size-1)
	case AlignEnd:
		return max(0, size-2)
	default:
		return size / 2
	}
}
