package overlay

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenui/lumen/internal/pubsub"
)

// positionedText is test content that pins itself to a fixed origin.
type positionedText struct {
	text string
	x, y int
}

func (p positionedText) View() string               { return p.text }
func (p positionedText) Origin(_, _ int) (int, int) { return p.x, p.y }

func TestStack_ShowAssignsUniqueIDs(t *testing.T) {
	stack := NewStack()

	a := stack.Show(Text("a"), DismissConfig{})
	b := stack.Show(Text("b"), DismissConfig{})

	require.NotEqual(t, None, a)
	require.NotEqual(t, None, b)
	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, stack.Len())
}

func TestStack_TopFollowsInsertionOrder(t *testing.T) {
	stack := NewStack()

	assert.Equal(t, None, stack.Top())

	a := stack.Show(Text("a"), DismissConfig{})
	b := stack.Show(Text("b"), DismissConfig{})
	assert.Equal(t, b, stack.Top())

	stack.Hide(b)
	assert.Equal(t, a, stack.Top())
}

func TestStack_HideMiddleRecordKeepsOrder(t *testing.T) {
	stack := NewStack()

	stack.Show(Text("bottom"), DismissConfig{})
	mid := stack.Show(Text("middle"), DismissConfig{})
	top := stack.Show(Text("top"), DismissConfig{})

	stack.Hide(mid)

	assert.Equal(t, 2, stack.Len())
	assert.Equal(t, top, stack.Top())
}

func TestStack_DismissBackdropSkipsNonDismissable(t *testing.T) {
	stack := NewStack()

	dismissed := ""
	lower := stack.Show(Text("dialog"), DismissConfig{
		AllowBackdrop:     true,
		OnBackdropDismiss: func() { dismissed = "dialog" },
	})
	stack.Show(Text("pinned"), DismissConfig{AllowBackdrop: false})

	got := stack.DismissBackdrop()

	// The topmost overlay refuses the backdrop; the dialog below takes it.
	assert.Equal(t, lower, got)
	assert.Equal(t, "dialog", dismissed)
	assert.Equal(t, 1, stack.Len())
}

func TestStack_DismissBackdropWithNothingDismissable(t *testing.T) {
	stack := NewStack()
	stack.Show(Text("pinned"), DismissConfig{})

	assert.Equal(t, None, stack.DismissBackdrop())
	assert.Equal(t, 1, stack.Len())
}

func TestStack_DismissBackdropCallbackMayShow(t *testing.T) {
	stack := NewStack()

	var next ID
	stack.Show(Text("first"), DismissConfig{
		AllowBackdrop: true,
		OnBackdropDismiss: func() {
			next = stack.Show(Text("second"), DismissConfig{})
		},
	})

	stack.DismissBackdrop()

	require.NotEqual(t, None, next)
	assert.Equal(t, 1, stack.Len())
	assert.Equal(t, next, stack.Top())
}

func TestStack_RenderCentersPlainContent(t *testing.T) {
	stack := NewStack()
	stack.Show(Text("XX"), DismissConfig{})

	bg := strings.TrimSuffix(strings.Repeat("....\n", 3), "\n")
	result := stack.Render(bg, 4, 3)

	lines := strings.Split(result, "\n")
	assert.Equal(t, ".XX.", lines[1])
}

func TestStack_RenderHonorsPositionedContent(t *testing.T) {
	stack := NewStack()
	stack.Show(positionedText{text: "X", x: 0, y: 0}, DismissConfig{})

	bg := "....\n....\n...."
	result := stack.Render(bg, 4, 3)

	lines := strings.Split(result, "\n")
	assert.Equal(t, "X...", lines[0])
}

func TestStack_RenderStacksInInsertionOrder(t *testing.T) {
	stack := NewStack()
	stack.Show(positionedText{text: "AA", x: 0, y: 0}, DismissConfig{})
	stack.Show(positionedText{text: "B", x: 0, y: 0}, DismissConfig{})

	result := stack.Render("....\n....", 4, 2)

	lines := strings.Split(result, "\n")
	// Later insertion renders on top of the earlier one.
	assert.Equal(t, "BA..", lines[0])
}

func TestStack_PublishesVisibilityEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	broker := pubsub.NewBroker[ID]()
	defer broker.Close()
	ch := broker.Subscribe(ctx)

	s := NewStack()
	s.SetEvents(broker)

	id := s.Show(Text("hi"), DismissConfig{AllowBackdrop: true})

	event := <-ch
	require.Equal(t, pubsub.ShownEvent, event.Type)
	require.Equal(t, id, event.Payload)

	s.DismissBackdrop()

	event = <-ch
	require.Equal(t, pubsub.HiddenEvent, event.Type)
	require.Equal(t, id, event.Payload)
}

func TestStack_HidePublishesOnlyForKnownIDs(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	broker := pubsub.NewBroker[ID]()
	defer broker.Close()
	ch := broker.Subscribe(ctx)

	s := NewStack()
	s.SetEvents(broker)

	s.Hide(ID("never-shown"))
	id := s.Show(Text("hi"), DismissConfig{})
	s.Hide(id)

	event := <-ch
	assert.Equal(t, pubsub.ShownEvent, event.Type)
	event = <-ch
	assert.Equal(t, pubsub.HiddenEvent, event.Type)
	assert.Equal(t, id, event.Payload)
}
