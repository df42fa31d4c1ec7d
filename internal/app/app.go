package app

import (
	"errors"
	"log/slog"
	"sort"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avitaltamir/arfima/internal/config"
	"github.com/avitaltamir/arfima/internal/fileops"
	"github.com/avitaltamir/arfima/internal/history"
	"github.com/avitaltamir/arfima/internal/keys"
	"github.com/avitaltamir/arfima/internal/layout"
	"github.com/avitaltamir/arfima/internal/mode"
	"github.com/avitaltamir/arfima/internal/theme"
	"github.com/avitaltamir/arfima/internal/watch"
	"github.com/avitaltamir/arfima/internal/window"
)

// Version is the application version, set at build time via ldflags
var Version = "dev"

// ErrIncorrectInputMode is returned when a mode specific action runs in
// another mode.
var ErrIncorrectInputMode = errors.New("incorrect input mode")

// Options configures a new Model.
type Options struct {
	Dir        string
	Config     *config.Config
	ConfigPath string
	Opener     fileops.Opener
	Watcher    *watch.Watcher // Optional
}

// Model is the root application model.
type Model struct {
	tree window.Pane
	mode mode.Mode
	err  error

	cfg     *config.Config
	cfgPath string
	history *history.Ring[string]
	opener  fileops.Opener
	watcher *watch.Watcher

	theme *theme.Theme
	keys  keys.KeyMap

	// Window dimensions
	width  int
	height int
	ready  bool

	quitting bool
}

// New opens opts.Dir in a single directory pane.
func New(opts Options) (Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	pane, err := window.NewDirectoryPane(opts.Dir)
	if err != nil {
		return Model{}, err
	}

	th, ok := theme.ByName(cfg.UI.Theme)
	if !ok && cfg.UI.Theme != "" {
		slog.Warn("unknown theme", "name", cfg.UI.Theme)
	}
	th.UseNerdFonts = cfg.UI.NerdFonts
	theme.ApplyTheme(th)

	opener := opts.Opener
	if opener == nil {
		opener = fileops.NewSystem()
	}

	cfgPath := opts.ConfigPath
	if cfgPath == "" {
		if p, err := config.DefaultPath(); err == nil {
			cfgPath = p
		}
	}

	return Model{
		tree:    pane,
		mode:    mode.Normal{},
		cfg:     cfg,
		cfgPath: cfgPath,
		history: history.New[string](cfg.History.Size),
		opener:  opener,
		watcher: opts.Watcher,
		theme:   th,
		keys:    keys.DefaultKeyMap(),
	}, nil
}

// Init starts watching the open directories.
func (m Model) Init() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	m.syncWatcher()
	return m.watcher.Wait()
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		if m.quitting {
			return m, tea.Quit
		}
		m.syncWatcher()
		return m, cmd

	case watch.EventMsg:
		if m.watcher == nil {
			return m, nil
		}
		return m, tea.Batch(m.watcher.Wait(), m.watcher.Record(msg))

	case watch.FlushMsg:
		if m.watcher != nil {
			m.reloadDirs(m.watcher.Flush())
		}
		return m, nil

	case ConfigSavedMsg:
		if msg.Err != nil {
			slog.Error("save config", "path", msg.Path, "error", msg.Err)
			m.err = msg.Err
			return m, nil
		}
		slog.Info("config saved", "path", msg.Path)
		return m, nil
	}

	return m, nil
}

// handleKey runs the mode layer, then offers the key to the pane tree and
// applies the events the panes queued.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	handled, cmd := m.handleMode(msg)
	if m.quitting {
		return nil
	}

	ctx := &window.EventContext{
		Mode:   m.mode,
		Config: m.cfg,
		Opener: m.opener,
		Keys:   m.keys,
	}
	m.tree.HandleKey(ctx, msg, true, handled)

	if !handled {
		m.clearPrecommand()
	}
	m.apply(ctx.Drain())
	return cmd
}

// apply processes pane events in emission order.
func (m *Model) apply(events []window.Event) {
	for _, e := range events {
		switch e := e.(type) {
		case window.UpdatePrecommand:
			if n, ok := m.mode.(mode.Normal); ok {
				n.Precommand = e.Precommand
				m.mode = n
			}
		case window.SetError:
			m.setError(e.Err)
		case window.ChangeMode:
			m.mode = e.Mode
		case window.Open:
			m.open(e.Path, e.ForceNew)
		case window.ResetView:
			m.setError(m.tree.Reset(m.cfg))
		}
	}
}

func (m *Model) setError(err error) {
	if err != nil {
		slog.Warn("surfaced error", "error", err)
	}
	m.err = err
}

func (m *Model) clearPrecommand() {
	if n, ok := m.mode.(mode.Normal); ok && n.Precommand.Kind != mode.None {
		m.mode = mode.Normal{}
	}
}

// transform hands the tree to f with Null in its place and stores the
// result. A nil result means the last pane closed.
func (m *Model) transform(f func(window.Pane) window.Pane) {
	tree := m.tree
	m.tree = window.Null
	next := f(tree)
	if next == nil {
		slog.Info("last pane closed")
		m.quit()
		return
	}
	m.tree = next
}

func (m *Model) open(path string, forceNew bool) {
	var err error
	m.transform(func(tree window.Pane) window.Pane {
		var next window.Pane
		next, err = tree.Open(path, forceNew)
		return next
	})
	m.setError(err)
}

func (m *Model) split(axis layout.Axis, count int) {
	m.transform(func(tree window.Pane) window.Pane {
		return tree.Split(axis, count)
	})
}

func (m *Model) closeFocused() {
	m.transform(func(tree window.Pane) window.Pane {
		return tree.CloseFocused()
	})
}

func (m *Model) toggleBookmarks() {
	m.transform(func(tree window.Pane) window.Pane {
		return window.ToggleBookmarks(tree, m.cfg)
	})
}

// reset returns to plain Normal mode and reloads every pane.
func (m *Model) reset() {
	m.mode = mode.Normal{}
	m.err = nil
	m.setError(m.tree.Reset(m.cfg))
}

func (m *Model) quit() {
	m.quitting = true
	if m.watcher != nil {
		if err := m.watcher.Close(); err != nil {
			slog.Debug("close watcher", "error", err)
		}
	}
}

// openDirs returns the directories shown by directory panes.
func (m Model) openDirs() []string {
	seen := make(map[string]bool)
	var dirs []string
	for _, p := range window.Leaves(m.tree) {
		d, ok := p.(*window.DirectoryPane)
		if !ok || seen[d.Directory()] {
			continue
		}
		seen[d.Directory()] = true
		dirs = append(dirs, d.Directory())
	}
	sort.Strings(dirs)
	return dirs
}

func (m Model) syncWatcher() {
	if m.watcher != nil && !m.quitting {
		m.watcher.Sync(m.openDirs())
	}
}

// reloadDirs reloads the directory panes showing any of dirs.
func (m *Model) reloadDirs(dirs []string) {
	changed := make(map[string]bool, len(dirs))
	for _, d := range dirs {
		changed[d] = true
	}
	for _, p := range window.Leaves(m.tree) {
		d, ok := p.(*window.DirectoryPane)
		if !ok || !changed[d.Directory()] {
			continue
		}
		if err := d.Reset(m.cfg); err != nil {
			slog.Debug("reload after change", "dir", d.Directory(), "error", err)
		}
	}
}

// Tree returns the root of the window tree.
func (m Model) Tree() window.Pane {
	return m.tree
}

// Mode returns the current input mode.
func (m Model) Mode() mode.Mode {
	return m.mode
}

// Err returns the error shown in the status bar.
func (m Model) Err() error {
	return m.err
}

// History returns the command history.
func (m Model) History() *history.Ring[string] {
	return m.history
}

// Config returns the live configuration.
func (m Model) Config() *config.Config {
	return m.cfg
}

// Quitting reports whether the application is shutting down.
func (m Model) Quitting() bool {
	return m.quitting
}
