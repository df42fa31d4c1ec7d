package window

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avitaltamir/arfima/internal/config"
	"github.com/avitaltamir/arfima/internal/layout"
)

// Null fills a slot while its previous occupant is being transformed.
// Structural operations on it are defects and panic.
var Null Pane = nullPane{}

type nullPane struct{}

func (nullPane) ID() uint32 { return 0 }
func (nullPane) Kind() Kind { return KindNull }

func (nullPane) View(RenderContext, int, int, bool) string { return "" }

func (nullPane) HandleKey(*EventContext, tea.KeyMsg, bool, bool) bool { return false }

func (nullPane) Reset(*config.Config) error { return nil }

func (nullPane) SizePolicy() layout.SizePolicy { return layout.ProportionalPolicy() }

func (nullPane) AdjustSize(layout.Axis, int, *ParentInfo) bool { return false }

func (nullPane) Split(layout.Axis, int) Pane {
	panic("window: split on null pane")
}

func (nullPane) Includes(uint32) bool { return false }

func (nullPane) IncludesKind(Kind) (uint32, bool) { return 0, false }

func (nullPane) Remove(uint32) Pane {
	panic("window: remove on null pane")
}

func (nullPane) CloseFocused() Pane {
	panic("window: close on null pane")
}

func (nullPane) Open(string, bool) (Pane, error) {
	panic("window: open on null pane")
}

func (nullPane) NextWindow() bool { return false }
func (nullPane) PrevWindow() bool { return false }
func (nullPane) AbsNextWindow()   {}
func (nullPane) AbsPrevWindow()   {}

func (p nullPane) Focused() Pane { return p }
