// Package watch reports changes to the directories shown in open panes.
package watch

import (
	"log/slog"
	"path/filepath"
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// DebounceInterval is how long changes are collected before panes reload.
const DebounceInterval = 250 * time.Millisecond

// EventMsg is a single filesystem event.
type EventMsg struct {
	Path string
	Op   fsnotify.Op
}

// FlushMsg is sent when the debounce interval has passed.
type FlushMsg struct{}

// Watcher tracks a set of directories. Wait runs on the program's command
// goroutine; every other method is called from Update.
type Watcher struct {
	fs         *fsnotify.Watcher
	dirs       map[string]bool
	pending    map[string]bool
	debouncing bool
}

// New starts an fsnotify watcher with nothing watched yet.
func New() (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fs:      fs,
		dirs:    make(map[string]bool),
		pending: make(map[string]bool),
	}, nil
}

// Sync makes the watched set equal to dirs.
func (w *Watcher) Sync(dirs []string) {
	want := make(map[string]bool, len(dirs))
	for _, d := range dirs {
		want[d] = true
	}

	for d := range w.dirs {
		if want[d] {
			continue
		}
		if err := w.fs.Remove(d); err != nil {
			slog.Debug("unwatch failed", "dir", d, "error", err)
		}
		delete(w.dirs, d)
	}
	for d := range want {
		if w.dirs[d] {
			continue
		}
		if err := w.fs.Add(d); err != nil {
			slog.Warn("watch failed", "dir", d, "error", err)
			continue
		}
		w.dirs[d] = true
	}
}

// Watched returns the watched directories in sorted order.
func (w *Watcher) Watched() []string {
	return sortedKeys(w.dirs)
}

// Wait returns a command that blocks until the next filesystem event.
func (w *Watcher) Wait() tea.Cmd {
	events, errs := w.fs.Events, w.fs.Errors
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-events:
				if !ok {
					return nil
				}
				return EventMsg{Path: event.Name, Op: event.Op}
			case err, ok := <-errs:
				if !ok {
					return nil
				}
				slog.Warn("watcher error", "error", err)
			}
		}
	}
}

// Record marks the directory holding msg.Path as changed and schedules a
// flush unless one is already pending.
func (w *Watcher) Record(msg EventMsg) tea.Cmd {
	dir := filepath.Dir(msg.Path)
	if w.dirs[msg.Path] {
		// The watched directory itself went away or was renamed
		dir = msg.Path
	}
	w.pending[dir] = true

	if w.debouncing {
		return nil
	}
	w.debouncing = true
	return tea.Tick(DebounceInterval, func(time.Time) tea.Msg {
		return FlushMsg{}
	})
}

// Flush returns the changed directories collected since the last flush.
func (w *Watcher) Flush() []string {
	dirs := sortedKeys(w.pending)
	w.pending = make(map[string]bool)
	w.debouncing = false
	return dirs
}

// Close stops the watcher. Pending Wait commands return nil.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
