package window

import (
	"github.com/avitaltamir/arfima/internal/config"
	"github.com/avitaltamir/arfima/internal/fileops"
	"github.com/avitaltamir/arfima/internal/keys"
	"github.com/avitaltamir/arfima/internal/mode"
)

// Event is a request from a pane to the application. Panes never change
// application state directly.
type Event interface {
	isEvent()
}

// UpdatePrecommand replaces the pending precommand.
type UpdatePrecommand struct {
	Precommand mode.Precommand
}

// SetError replaces the error shown in the status bar. A nil Err clears it.
type SetError struct {
	Err error
}

// ChangeMode switches the input mode.
type ChangeMode struct {
	Mode mode.Mode
}

// Open asks the application to open Path in the tree.
type Open struct {
	Path     string
	ForceNew bool
}

// ResetView asks the application to reload every pane.
type ResetView struct{}

func (UpdatePrecommand) isEvent() {}
func (SetError) isEvent()         {}
func (ChangeMode) isEvent()       {}
func (Open) isEvent()             {}
func (ResetView) isEvent()        {}

// EventContext is handed down the tree with every key. Panes read the mode
// and collaborators from it and queue events on it.
type EventContext struct {
	Mode   mode.Mode
	Config *config.Config
	Opener fileops.Opener
	Keys   keys.KeyMap

	events []Event
}

// Emit queues an event.
func (c *EventContext) Emit(e Event) {
	c.events = append(c.events, e)
}

// Drain returns the queued events in emission order and empties the queue.
func (c *EventContext) Drain() []Event {
	events := c.events
	c.events = nil
	return events
}
