// Package keys holds the key bindings of every mode and the help table built from them.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the application.
type KeyMap struct {
	// Global keys
	Quit    key.Binding
	Help    key.Binding
	Reset   key.Binding
	Command key.Binding
	Leader  key.Binding
	Window  key.Binding
	Close   key.Binding
	Count   key.Binding

	// Navigation
	Down   key.Binding
	Up     key.Binding
	Parent key.Binding
	Enter  key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Entry actions
	OpenWith key.Binding
	Add      key.Binding
	Rename   key.Binding
	Remove   key.Binding
	Yank     key.Binding

	// After the leader key
	Bookmarks key.Binding

	// After the window key
	SplitHorizontal key.Binding
	SplitVertical   key.Binding
	NextWindow      key.Binding
	PrevWindow      key.Binding
	Grow            key.Binding
	Shrink          key.Binding
	GrowVertical    key.Binding
	ShrinkVertical  key.Binding

	// Prompts
	Accept      key.Binding
	Cancel      key.Binding
	Confirm     key.Binding
	Deny        key.Binding
	ChooseYes   key.Binding
	ChooseNo    key.Binding
	HistoryPrev key.Binding
	HistoryNext key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("ctrl+h"),
			key.WithHelp("ctrl+h", "help"),
		),
		Reset: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "reset"),
		),
		Command: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "command line"),
		),
		Leader: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "leader"),
		),
		Window: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("ctrl+w", "window command"),
		),
		Close: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "close window"),
		),
		Count: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "count"),
		),

		// Navigation
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Parent: key.NewBinding(
			key.WithKeys("h", "left", "backspace"),
			key.WithHelp("←/h", "parent directory"),
		),
		Enter: key.NewBinding(
			key.WithKeys("l", "right", "enter"),
			key.WithHelp("→/l", "open"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("home/g", "go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("end/G", "go to bottom"),
		),

		// Entry actions
		OpenWith: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open with"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Rename: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rename"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "remove"),
		),
		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy path"),
		),

		// Leader
		Bookmarks: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("space n", "toggle bookmarks"),
		),

		// Window
		SplitHorizontal: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("ctrl+w h", "split side by side"),
		),
		SplitVertical: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("ctrl+w v", "split stacked"),
		),
		NextWindow: key.NewBinding(
			key.WithKeys("j", "right"),
			key.WithHelp("ctrl+w j", "next window"),
		),
		PrevWindow: key.NewBinding(
			key.WithKeys("k", "left"),
			key.WithHelp("ctrl+w k", "previous window"),
		),
		Grow: key.NewBinding(
			key.WithKeys("+"),
			key.WithHelp("ctrl+w +", "wider"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("ctrl+w -", "narrower"),
		),
		GrowVertical: key.NewBinding(
			key.WithKeys("="),
			key.WithHelp("ctrl+w =", "taller"),
		),
		ShrinkVertical: key.NewBinding(
			key.WithKeys("_"),
			key.WithHelp("ctrl+w _", "shorter"),
		),

		// Prompts
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "accept"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "yes"),
		),
		Deny: key.NewBinding(
			key.WithKeys("n", "N"),
			key.WithHelp("n", "no"),
		),
		ChooseYes: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "highlight yes"),
		),
		ChooseNo: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "highlight no"),
		),
		HistoryPrev: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "older command"),
		),
		HistoryNext: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "newer command"),
		),
	}
}

// ShortHelp returns the short help text for the key map.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Command, k.Window, k.Quit}
}

// FullHelp returns the full help text for the key map.
func (k KeyMap) FullHelp() [][]key.Binding {
	sections := k.Sections()
	out := make([][]key.Binding, len(sections))
	for i, s := range sections {
		out[i] = s.Bindings
	}
	return out
}

// Section is a titled group of bindings in the help table.
type Section struct {
	Title    string
	Bindings []key.Binding
}

// Sections returns the help table grouped by mode.
func (k KeyMap) Sections() []Section {
	return []Section{
		{"Normal", []key.Binding{
			k.Down, k.Up, k.Parent, k.Enter, k.Top, k.Bottom,
			k.OpenWith, k.Add, k.Rename, k.Remove, k.Yank,
			k.Count, k.Close, k.Command, k.Help, k.Reset, k.Quit,
		}},
		{"Leader", []key.Binding{k.Leader, k.Bookmarks}},
		{"Window", []key.Binding{
			k.Window, k.SplitHorizontal, k.SplitVertical, k.NextWindow, k.PrevWindow,
			k.Grow, k.Shrink, k.GrowVertical, k.ShrinkVertical,
		}},
		{"Prompts", []key.Binding{
			k.Accept, k.Cancel, k.Confirm, k.Deny, k.ChooseYes, k.ChooseNo,
		}},
		{"Command line", []key.Binding{k.HistoryPrev, k.HistoryNext}},
	}
}

// Entry is one row of the flattened help table.
type Entry struct {
	Section string
	Key     string
	Desc    string
}

// Entries flattens Sections into the rows the help view scrolls through.
func (k KeyMap) Entries() []Entry {
	var out []Entry
	for _, s := range k.Sections() {
		for _, b := range s.Bindings {
			h := b.Help()
			out = append(out, Entry{Section: s.Title, Key: h.Key, Desc: h.Desc})
		}
	}
	return out
}
