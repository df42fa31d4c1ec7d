package window

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avitaltamir/arfima/internal/config"
	"github.com/avitaltamir/arfima/internal/entry"
	"github.com/avitaltamir/arfima/internal/layout"
	"github.com/avitaltamir/arfima/internal/mode"
	"github.com/avitaltamir/arfima/internal/theme"
)

// BookmarksPane lists the user directories and configured paths. It never
// touches the filesystem itself; opening an entry is delegated upward.
type BookmarksPane struct {
	entries  []entry.Entry
	selected int
	policy   layout.SizePolicy
}

// NewBookmarksPane builds the pane from cfg with its fixed width.
func NewBookmarksPane(cfg *config.Config) *BookmarksPane {
	return &BookmarksPane{
		entries: bookmarkEntries(cfg),
		policy:  layout.FixedPolicy(layout.BookmarksWidth),
	}
}

// bookmarkEntries lists the user directories first, then the configured
// paths. Missing paths and duplicates are skipped.
func bookmarkEntries(cfg *config.Config) []entry.Entry {
	var paths []string
	if cfg.CommonEntries.UserDirs {
		paths = append(paths, config.UserDirs()...)
	}
	paths = append(paths, cfg.Bookmarks()...)

	seen := make(map[string]bool, len(paths))
	entries := make([]entry.Entry, 0, len(paths))
	for _, p := range paths {
		if seen[p] {
			continue
		}
		seen[p] = true

		e, err := entry.Stat(p)
		if err != nil {
			slog.Debug("skipping bookmark", "path", p, "error", err)
			continue
		}
		entries = append(entries, e)
	}
	return entries
}

// ToggleBookmarks removes the bookmarks pane from tree, or places one at
// the left edge. It returns nil when removing the pane empties the tree.
func ToggleBookmarks(tree Pane, cfg *config.Config) Pane {
	if tree.Includes(BookmarksID()) {
		return tree.Remove(BookmarksID())
	}
	return NewSplit(layout.Horizontal, []Pane{NewBookmarksPane(cfg), tree}, 0)
}

func (b *BookmarksPane) ID() uint32 { return BookmarksID() }
func (b *BookmarksPane) Kind() Kind { return KindBookmarks }

// Entries returns the listed bookmarks.
func (b *BookmarksPane) Entries() []entry.Entry { return b.entries }

// Selected returns the selection index.
func (b *BookmarksPane) Selected() int { return b.selected }

func (b *BookmarksPane) View(ctx RenderContext, width, height int, focused bool) string {
	return renderListing(ctx, listing{
		title:    "Bookmarks",
		icon:     theme.Bookmark,
		entries:  b.entries,
		selected: b.selected,
		accent:   true,
	}, width, height, focused)
}

func (b *BookmarksPane) HandleKey(ctx *EventContext, msg tea.KeyMsg, focused, handled bool) bool {
	if !focused || handled {
		return false
	}
	m, ok := ctx.Mode.(mode.Normal)
	if !ok {
		return false
	}
	k := ctx.Keys

	switch {
	case key.Matches(msg, k.Down):
		b.selected += m.Precommand.CountOr(1)
	case key.Matches(msg, k.Up):
		b.selected -= m.Precommand.CountOr(1)
	case key.Matches(msg, k.Top):
		b.selected = m.Precommand.CountOr(1) - 1
	case key.Matches(msg, k.Bottom):
		b.selected = len(b.entries) - 1
	case key.Matches(msg, k.Enter):
		b.open(ctx, false)
	case key.Matches(msg, k.OpenWith):
		b.open(ctx, true)
	default:
		return false
	}

	b.selected = max(min(b.selected, len(b.entries)-1), 0)
	ctx.Emit(UpdatePrecommand{})
	return true
}

func (b *BookmarksPane) open(ctx *EventContext, forceNew bool) {
	if b.selected >= len(b.entries) {
		return
	}
	e := b.entries[b.selected]
	if !e.IsDir() {
		if err := ctx.Opener.OpenDefault(e.Path); err != nil {
			ctx.Emit(SetError{Err: err})
		}
		return
	}
	ctx.Emit(Open{Path: e.Path, ForceNew: forceNew})
}

func (b *BookmarksPane) Reset(cfg *config.Config) error {
	b.entries = bookmarkEntries(cfg)
	b.selected = max(min(b.selected, len(b.entries)-1), 0)
	return nil
}

func (b *BookmarksPane) SizePolicy() layout.SizePolicy { return b.policy }

func (b *BookmarksPane) AdjustSize(axis layout.Axis, delta int, parent *ParentInfo) bool {
	return adjustLeaf(&b.policy, axis, delta, parent)
}

// Split is refused; the pane stays alone.
func (b *BookmarksPane) Split(layout.Axis, int) Pane { return b }

func (b *BookmarksPane) Includes(id uint32) bool { return id == BookmarksID() }

func (b *BookmarksPane) IncludesKind(k Kind) (uint32, bool) {
	if k != KindBookmarks {
		return 0, false
	}
	return BookmarksID(), true
}

func (b *BookmarksPane) Remove(id uint32) Pane {
	if id == BookmarksID() {
		return nil
	}
	return b
}

func (b *BookmarksPane) CloseFocused() Pane { return nil }

// Open places a directory pane to the right of the bookmarks and focuses it.
func (b *BookmarksPane) Open(path string, _ bool) (Pane, error) {
	pane, err := NewDirectoryPane(path)
	if err != nil {
		return b, err
	}
	return NewSplit(layout.Horizontal, []Pane{b, pane}, 1), nil
}

func (b *BookmarksPane) NextWindow() bool { return false }
func (b *BookmarksPane) PrevWindow() bool { return false }
func (b *BookmarksPane) AbsNextWindow()   {}
func (b *BookmarksPane) AbsPrevWindow()   {}
func (b *BookmarksPane) Focused() Pane    { return b }
