package app

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avitaltamir/arfima/internal/command"
	"github.com/avitaltamir/arfima/internal/mode"
)

// handleCommanding edits the command line. Every key is consumed.
func (m *Model) handleCommanding(msg tea.KeyMsg, c mode.Commanding) (bool, tea.Cmd) {
	k := m.keys

	switch {
	case key.Matches(msg, k.HistoryPrev):
		m.walkHistory(c, -1)
	case key.Matches(msg, k.HistoryNext):
		m.walkHistory(c, 1)
	case key.Matches(msg, k.Accept):
		return true, m.submit(c.Input.Value())
	default:
		cmd, err := m.updateBuffer(msg)
		if err != nil {
			m.setError(err)
		}
		return true, cmd
	}
	return true, nil
}

// walkHistory moves the history cursor by step. Leaving the live line saves
// it; coming back restores it. Steps past the live line or the oldest entry
// are ignored.
func (m *Model) walkHistory(c mode.Commanding, step int) {
	defer func() { m.mode = c }()

	if c.Cursor == 0 {
		if step > 0 {
			return
		}
		line, ok := m.history.FromCurrent(-1)
		if !ok {
			return
		}
		c.Saved = c.Input.Value()
		c.Cursor = -1
		setLine(&c, line)
		return
	}

	if c.Cursor+step < -m.history.Len() {
		return
	}
	c.Cursor += step
	if c.Cursor == 0 {
		setLine(&c, c.Saved)
		c.Saved = ""
		return
	}
	line, ok := m.history.FromCurrent(c.Cursor)
	if !ok {
		c.Cursor -= step
		return
	}
	setLine(&c, line)
}

func setLine(c *mode.Commanding, line string) {
	c.Input.SetValue(line)
	c.Input.CursorEnd()
}

// submit records line, parses it and runs the result. The mode returns to
// Normal whether or not the line parses.
func (m *Model) submit(line string) tea.Cmd {
	m.mode = mode.Normal{}
	if strings.TrimSpace(line) == "" {
		return nil
	}

	m.history.Push(line)
	cmd, err := command.Parse(line)
	if err != nil {
		m.setError(err)
		return nil
	}
	slog.Debug("command", "line", line)
	return m.execute(cmd)
}

func (m *Model) execute(cmd command.Command) tea.Cmd {
	switch c := cmd.(type) {
	case command.Quit:
		if c.All {
			m.quit()
		} else {
			m.closeFocused()
		}

	case command.Save:
		return m.saveConfig()

	case command.SetBool:
		active := c.Action == command.Enable
		if c.Action == command.Toggle {
			// Both options toggle against the absolute number setting
			active = !m.cfg.Number.Active
		}
		switch c.Option {
		case command.Number:
			m.cfg.Number.Active = active
		case command.RelativeNumber:
			m.cfg.Number.Relative = active
			if active {
				m.cfg.Number.Active = true
			}
		}
		m.err = nil

	case command.SetHistorySize:
		size := max(c.Size, 1)
		m.cfg.History.Size = size
		m.history.Resize(size)
	}
	return nil
}

// saveConfig writes a snapshot of the configuration off the update loop.
func (m *Model) saveConfig() tea.Cmd {
	cfg := *m.cfg
	path := m.cfgPath
	return func() tea.Msg {
		return ConfigSavedMsg{Path: path, Err: cfg.Save(path)}
	}
}
