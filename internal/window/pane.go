// Package window implements the pane tree: directory and bookmarks leaves,
// splits that tile them, focus routing and the consuming tree operations.
package window

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avitaltamir/arfima/internal/config"
	"github.com/avitaltamir/arfima/internal/layout"
	"github.com/avitaltamir/arfima/internal/theme"
)

// Kind identifies the concrete type of a pane.
type Kind int

const (
	KindNull Kind = iota
	KindSplit
	KindDirectory
	KindBookmarks
)

func (k Kind) String() string {
	switch k {
	case KindSplit:
		return "split"
	case KindDirectory:
		return "directory"
	case KindBookmarks:
		return "bookmarks"
	default:
		return "null"
	}
}

// ErrInvalidDirectoryPath is returned when a pane is pointed at something
// that is not a directory.
var ErrInvalidDirectoryPath = errors.New("not a directory")

// InvalidDirectoryError carries the offending path.
type InvalidDirectoryError struct {
	Path string
}

func (e *InvalidDirectoryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, ErrInvalidDirectoryPath)
}

func (e *InvalidDirectoryError) Unwrap() error {
	return ErrInvalidDirectoryPath
}

// Pane is a node of the window tree. Consuming operations (Split, Remove,
// CloseFocused, Open) return the pane that replaces the receiver in its slot.
type Pane interface {
	ID() uint32
	Kind() Kind

	// View renders the pane into exactly width x height cells.
	View(ctx RenderContext, width, height int, focused bool) string
	// HandleKey reports whether the key was consumed. Panes must not act on
	// keys that arrive with handled set.
	HandleKey(ctx *EventContext, msg tea.KeyMsg, focused, handled bool) bool
	// Reset reloads the pane contents. On failure the prior contents stay.
	Reset(cfg *config.Config) error

	SizePolicy() layout.SizePolicy
	AdjustSize(axis layout.Axis, delta int, parent *ParentInfo) bool

	Split(axis layout.Axis, count int) Pane
	Includes(id uint32) bool
	IncludesKind(k Kind) (uint32, bool)
	// Remove returns nil when removing id empties the subtree.
	Remove(id uint32) Pane
	// CloseFocused returns nil when the focused leaf was the last one.
	CloseFocused() Pane
	// Open returns the receiver unchanged together with the error on failure.
	Open(path string, forceNew bool) (Pane, error)

	NextWindow() bool
	PrevWindow() bool
	AbsNextWindow()
	AbsPrevWindow()
	Focused() Pane
}

// ParentInfo describes the split a pane sits in when it is asked to resize.
type ParentInfo struct {
	Axis     layout.Axis
	Siblings int
}

// RenderContext is the read-only state panes draw with.
type RenderContext struct {
	Config *config.Config
	Theme  *theme.Theme
}

var lastID atomic.Uint32

// NextID issues a process-wide unique pane id. Zero is reserved for Null.
func NextID() uint32 {
	return lastID.Add(1)
}

var bookmarksID = sync.OnceValue(NextID)

// BookmarksID is the id shared by every bookmarks pane, so that the pane
// can be found and removed from any tree.
func BookmarksID() uint32 {
	return bookmarksID()
}
