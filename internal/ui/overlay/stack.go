package overlay

import (
	"github.com/google/uuid"

	"github.com/lumenui/lumen/internal/log"
	"github.com/lumenui/lumen/internal/pubsub"
)

// Positioned is an optional Content capability. Content that implements it
// chooses its own origin within the viewport (popovers anchored to an
// element); everything else is centered.
type Positioned interface {
	Content
	// Origin returns the top-left cell of the overlay within a viewport of
	// the given size.
	Origin(width, height int) (x, y int)
}

// record is one visible overlay. Records are owned exclusively by the stack
// from Show until Hide and are never shared.
type record struct {
	id      ID
	content Content
	cfg     DismissConfig
}

// Stack is the standard Presenter: an insertion-ordered set of overlay
// records. Later insertions render on top.
type Stack struct {
	records []record
	events  *pubsub.Broker[ID]
}

// NewStack creates an empty presenter stack.
func NewStack() *Stack {
	return &Stack{}
}

// SetEvents attaches a broker that receives a ShownEvent or HiddenEvent for
// every visibility change.
func (s *Stack) SetEvents(b *pubsub.Broker[ID]) {
	s.events = b
}

func (s *Stack) publish(t pubsub.EventType, id ID) {
	if s.events != nil {
		s.events.Publish(t, id)
	}
}

// Show implements Presenter. IDs come from a UUID source so uniqueness holds
// even under rapid repeated calls.
func (s *Stack) Show(content Content, cfg DismissConfig) ID {
	id := ID(uuid.NewString())
	s.records = append(s.records, record{id: id, content: content, cfg: cfg})
	log.Debug(log.CatOverlay, "overlay shown", "id", id, "depth", len(s.records))
	s.publish(pubsub.ShownEvent, id)
	return id
}

// Hide implements Presenter. Removing an absent id is a no-op.
func (s *Stack) Hide(id ID) ID {
	for i, rec := range s.records {
		if rec.id == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			log.Debug(log.CatOverlay, "overlay hidden", "id", id, "depth", len(s.records))
			s.publish(pubsub.HiddenEvent, id)
			break
		}
	}
	return None
}

// Len returns the number of visible overlays.
func (s *Stack) Len() int {
	return len(s.records)
}

// Top returns the id of the topmost overlay, or None when empty.
func (s *Stack) Top() ID {
	if len(s.records) == 0 {
		return None
	}
	return s.records[len(s.records)-1].id
}

// DismissBackdrop delivers a backdrop dismiss to the topmost overlay that
// allows it. Returns the id of the overlay that was dismissed, or None when
// nothing accepted the gesture. The record is removed before the callback
// runs so the callback may immediately show a new overlay.
func (s *Stack) DismissBackdrop() ID {
	for i := len(s.records) - 1; i >= 0; i-- {
		rec := s.records[i]
		if !rec.cfg.AllowBackdrop {
			continue
		}
		s.records = append(s.records[:i], s.records[i+1:]...)
		log.Debug(log.CatOverlay, "backdrop dismiss", "id", rec.id)
		s.publish(pubsub.HiddenEvent, rec.id)
		if rec.cfg.OnBackdropDismiss != nil {
			rec.cfg.OnBackdropDismiss()
		}
		return rec.id
	}
	return None
}

// Render composites every visible overlay over the background in insertion
// order. Content that implements Positioned picks its own origin; other
// content is centered.
func (s *Stack) Render(bg string, width, height int) string {
	out := bg
	for _, rec := range s.records {
		fg := rec.content.View()
		var x, y int
		if p, ok := rec.content.(Positioned); ok {
			x, y = p.Origin(width, height)
		} else {
			x, y = CenterOrigin(width, height, fg)
		}
		out = Compose(Config{Width: width, Height: height, X: x, Y: y}, fg, out)
	}
	return out
}
