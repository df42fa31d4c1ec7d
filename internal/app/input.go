package app

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avitaltamir/arfima/internal/layout"
	"github.com/avitaltamir/arfima/internal/mode"
	"github.com/avitaltamir/arfima/internal/window"
)

// maxCount caps digit accumulation.
const maxCount = 99999

// handleMode is the mode layer. It reports whether it consumed the key.
func (m *Model) handleMode(msg tea.KeyMsg) (bool, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quit()
		return true, nil
	}

	if _, ok := m.mode.(mode.Normal); !ok && key.Matches(msg, m.keys.Cancel) {
		m.mode = mode.Normal{}
		m.err = nil
		return true, nil
	}

	switch md := m.mode.(type) {
	case mode.Normal:
		return m.handleNormal(msg, md.Precommand), nil
	case mode.Adding, mode.Renaming:
		if key.Matches(msg, m.keys.Accept) {
			return false, nil
		}
		cmd, err := m.updateBuffer(msg)
		return err == nil, cmd
	case mode.Removing:
		return m.handleRemoving(msg, md), nil
	case mode.Opening:
		return m.handleOpening(msg, md), nil
	case mode.Commanding:
		return m.handleCommanding(msg, md)
	case mode.Help:
		return m.handleHelp(msg, md), nil
	}
	return false, nil
}

func (m *Model) handleNormal(msg tea.KeyMsg, pre mode.Precommand) bool {
	k := m.keys

	switch pre.Kind {
	case mode.Leader:
		if key.Matches(msg, k.Bookmarks) {
			m.mode = mode.Normal{}
			m.toggleBookmarks()
			return true
		}
	case mode.RepeatWindow:
		if m.handleWindow(msg, pre.Count) {
			m.mode = mode.Normal{}
			return true
		}
	}

	switch {
	case key.Matches(msg, k.Count):
		digit := int(msg.Runes[0] - '0')
		count := digit
		if pre.Kind == mode.Repeat {
			count = min(pre.Count*10+digit, maxCount)
		}
		m.mode = mode.Normal{Precommand: mode.RepeatOf(count)}

	case key.Matches(msg, k.Window):
		// A second ctrl+w is a focus move, handled above
		count := 1
		if pre.Kind == mode.Repeat {
			count = pre.Count
		}
		m.mode = mode.Normal{Precommand: mode.RepeatWindowOf(count)}

	case key.Matches(msg, k.Leader):
		m.mode = mode.Normal{Precommand: mode.Precommand{Kind: mode.Leader}}

	case key.Matches(msg, k.Command):
		m.mode = mode.NewCommanding()

	case key.Matches(msg, k.Help):
		m.mode = mode.Help{}

	case key.Matches(msg, k.Close):
		m.mode = mode.Normal{}
		m.closeFocused()

	case key.Matches(msg, k.Reset):
		m.reset()

	default:
		return false
	}
	return true
}

// handleWindow runs a command that follows ctrl+w. count repeats it.
func (m *Model) handleWindow(msg tea.KeyMsg, count int) bool {
	k := m.keys
	n := max(count, 1)

	switch {
	case key.Matches(msg, k.Window), key.Matches(msg, k.NextWindow):
		for range count {
			window.Next(m.tree)
		}
	case key.Matches(msg, k.PrevWindow):
		for range count {
			window.Prev(m.tree)
		}
	case key.Matches(msg, k.SplitHorizontal):
		m.split(layout.Horizontal, n)
	case key.Matches(msg, k.SplitVertical):
		m.split(layout.Vertical, n)
	case key.Matches(msg, k.Grow):
		m.resize(layout.Horizontal, n)
	case key.Matches(msg, k.Shrink):
		m.resize(layout.Horizontal, -n)
	case key.Matches(msg, k.GrowVertical):
		m.resize(layout.Vertical, n)
	case key.Matches(msg, k.ShrinkVertical):
		m.resize(layout.Vertical, -n)
	default:
		return false
	}
	return true
}

func (m *Model) resize(axis layout.Axis, delta int) {
	if !m.tree.AdjustSize(axis, delta, nil) {
		slog.Debug("resize refused", "axis", axis, "delta", delta)
	}
}

// updateBuffer forwards msg to the text buffer of the current mode.
func (m *Model) updateBuffer(msg tea.KeyMsg) (tea.Cmd, error) {
	var cmd tea.Cmd
	switch md := m.mode.(type) {
	case mode.Adding:
		md.Input, cmd = md.Input.Update(msg)
		m.mode = md
	case mode.Renaming:
		md.Input, cmd = md.Input.Update(msg)
		m.mode = md
	case mode.Commanding:
		md.Input, cmd = md.Input.Update(msg)
		m.mode = md
	default:
		return nil, ErrIncorrectInputMode
	}
	return cmd, nil
}

func (m *Model) handleRemoving(msg tea.KeyMsg, r mode.Removing) bool {
	k := m.keys

	switch {
	case key.Matches(msg, k.ChooseYes):
		r.Confirm = true
		m.mode = r
	case key.Matches(msg, k.ChooseNo):
		r.Confirm = false
		m.mode = r
	case key.Matches(msg, k.Deny):
		m.mode = mode.Normal{}
		m.err = nil
	default:
		// y and enter are left to the pane that owns the entry
		return false
	}
	return true
}

func (m *Model) handleOpening(msg tea.KeyMsg, o mode.Opening) bool {
	k := m.keys
	last := max(len(o.Apps)-1, 0)

	switch {
	case key.Matches(msg, k.Down):
		o.Selected = min(o.Selected+1, last)
	case key.Matches(msg, k.Up):
		o.Selected = max(o.Selected-1, 0)
	case key.Matches(msg, k.Top):
		o.Selected = 0
	case key.Matches(msg, k.Bottom):
		o.Selected = last
	case key.Matches(msg, k.Accept):
		if o.Selected >= len(o.Apps) {
			return true
		}
		if err := m.opener.OpenWith(o.Apps[o.Selected], o.Path); err != nil {
			m.setError(err)
			return true
		}
		slog.Info("opened", "path", o.Path, "app", o.Apps[o.Selected])
		m.mode = mode.Normal{}
		m.err = nil
		return true
	default:
		return false
	}
	m.mode = o
	return true
}

func (m *Model) handleHelp(msg tea.KeyMsg, h mode.Help) bool {
	k := m.keys
	last := max(len(k.Entries())-1, 0)

	switch {
	case key.Matches(msg, k.Close), key.Matches(msg, k.Help):
		m.mode = mode.Normal{}
		return true
	case key.Matches(msg, k.Down):
		h.Selected = min(h.Selected+1, last)
	case key.Matches(msg, k.Up):
		h.Selected = max(h.Selected-1, 0)
	case key.Matches(msg, k.Top):
		h.Selected = 0
	case key.Matches(msg, k.Bottom):
		h.Selected = last
	}
	m.mode = h
	return true
}
