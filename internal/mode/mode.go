// Package mode defines the input modes of the application.
package mode

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
)

// PrecommandKind tags a pending Normal mode modifier.
type PrecommandKind int

const (
	None PrecommandKind = iota
	Leader
	Repeat
	RepeatWindow
)

// Precommand is a modifier waiting for the next command key.
type Precommand struct {
	Kind  PrecommandKind
	Count int // Used by Repeat and RepeatWindow
}

// RepeatOf returns a Repeat precommand.
func RepeatOf(n int) Precommand {
	return Precommand{Kind: Repeat, Count: n}
}

// RepeatWindowOf returns a RepeatWindow precommand.
func RepeatWindowOf(n int) Precommand {
	return Precommand{Kind: RepeatWindow, Count: n}
}

// CountOr returns the digit count, or def when no count is pending.
func (p Precommand) CountOr(def int) int {
	if p.Kind == Repeat {
		return p.Count
	}
	return def
}

// String renders the precommand for the status bar.
func (p Precommand) String() string {
	switch p.Kind {
	case Leader:
		return "<space>"
	case Repeat:
		return fmt.Sprint(p.Count)
	case RepeatWindow:
		return fmt.Sprintf("%d^W", p.Count)
	default:
		return ""
	}
}

// Mode is one of the input modes below. The set is closed.
type Mode interface {
	Name() string
	isMode()
}

// Normal is the resting mode.
type Normal struct {
	Precommand Precommand
}

// Adding collects the name of a new file or directory.
type Adding struct {
	Input textinput.Model
}

// Renaming collects a new name for Original.
type Renaming struct {
	Original string
	Input    textinput.Model
}

// Removing asks for confirmation before deleting Path.
type Removing struct {
	Path    string
	Confirm bool // Whether "yes" is highlighted
}

// Opening lets the user pick an application for Path.
type Opening struct {
	Apps     []string
	Path     string
	Selected int
}

// Commanding edits a colon command line.
type Commanding struct {
	Input textinput.Model
	// Cursor is the history offset; 0 is the live buffer, -1 the newest entry
	Cursor int
	// Saved holds the live buffer while browsing history
	Saved string
}

// Help shows the key binding table.
type Help struct {
	Selected int
}

func (Normal) Name() string     { return "NORMAL" }
func (Adding) Name() string     { return "ADD" }
func (Renaming) Name() string   { return "RENAME" }
func (Removing) Name() string   { return "REMOVE" }
func (Opening) Name() string    { return "OPEN" }
func (Commanding) Name() string { return "COMMAND" }
func (Help) Name() string       { return "HELP" }

func (Normal) isMode()     {}
func (Adding) isMode()     {}
func (Renaming) isMode()   {}
func (Removing) isMode()   {}
func (Opening) isMode()    {}
func (Commanding) isMode() {}
func (Help) isMode()       {}

// newInput returns a focused single line buffer.
func newInput(value string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 4096
	ti.SetValue(value)
	ti.CursorEnd()
	ti.Focus()
	return ti
}

// NewAdding starts Adding with an empty buffer.
func NewAdding() Adding {
	return Adding{Input: newInput("")}
}

// NewRenaming starts Renaming with the buffer preseeded with name.
func NewRenaming(name string) Renaming {
	return Renaming{Original: name, Input: newInput(name)}
}

// NewCommanding starts Commanding with an empty buffer at the live position.
func NewCommanding() Commanding {
	return Commanding{Input: newInput("")}
}
