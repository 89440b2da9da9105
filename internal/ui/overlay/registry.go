// Package overlay provides the presentation layer for modal content: a
// registry that tracks which overlays are visible, a stack presenter that
// owns their z-order, and ANSI-aware compositing for rendering them on top
// of background views without clearing the screen.
package overlay

// ID identifies a visible overlay. The empty string means "no overlay":
// callers store the value returned by Show and write the value returned by
// Hide back into the same slot, so repeated hides are naturally no-ops.
type ID string

// None is the sentinel for "no overlay".
const None ID = ""

// Content is the renderable payload of an overlay. The registry treats it as
// opaque; the presenter calls View when compositing.
type Content interface {
	View() string
}

// Text is a pre-rendered Content.
type Text string

// View implements Content.
func (t Text) View() string { return string(t) }

// DismissConfig controls how an overlay reacts to a backdrop dismiss
// request (e.g. the user pressing esc or clicking outside the overlay).
type DismissConfig struct {
	// AllowBackdrop makes the overlay dismissable from the backdrop.
	AllowBackdrop bool
	// OnBackdropDismiss is invoked when a backdrop dismiss occurs.
	OnBackdropDismiss func()
}

// Presenter is the renderer-side contract. Exactly one presenter is mounted
// at a time; it owns the overlay records and re-renders whenever they change.
type Presenter interface {
	// Show registers content under a fresh unique ID and returns it.
	Show(content Content, cfg DismissConfig) ID
	// Hide removes the overlay for id (no-op if absent) and returns None.
	Hide(id ID) ID
}

// Registry routes show/hide requests from arbitrary call sites to whichever
// Presenter is currently mounted. It is constructed explicitly and passed by
// reference; the composition root owns it and mounts its presenter on
// activation. With no presenter mounted the registry degrades to a no-op
// dispatcher, so overlay-triggering code may run before the visual tree
// exists without crashing.
//
// The registry is meant to be driven from a single Bubble Tea update loop;
// it does no locking of its own.
type Registry struct {
	presenter Presenter
}

// NewRegistry creates an empty registry with no presenter mounted.
func NewRegistry() *Registry {
	return &Registry{}
}

// Mount registers the active presenter. Last writer wins: mounting replaces
// any previous binding and subsequent show/hide route to the new presenter.
func (r *Registry) Mount(p Presenter) {
	r.presenter = p
}

// Unmount clears the presenter binding. Idempotent.
func (r *Registry) Unmount() {
	r.presenter = nil
}

// Mounted reports whether a presenter is currently mounted.
func (r *Registry) Mounted() bool {
	return r.presenter != nil
}

// Show presents content through the mounted presenter and returns its ID.
// Returns None when no presenter is mounted; callers must tolerate that.
func (r *Registry) Show(content Content, cfg DismissConfig) ID {
	if r.presenter == nil {
		return None
	}
	return r.presenter.Show(content, cfg)
}

// Hide removes the overlay for id. Always returns None so callers can write
// the result back into their own "current overlay" slot, making repeated
// hides safe. Hiding an unknown or empty id is a no-op.
func (r *Registry) Hide(id ID) ID {
	if r.presenter == nil {
		return None
	}
	return r.presenter.Hide(id)
}
