package window

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avitaltamir/arfima/internal/config"
	"github.com/avitaltamir/arfima/internal/fileops"
	"github.com/avitaltamir/arfima/internal/keys"
	"github.com/avitaltamir/arfima/internal/layout"
	"github.com/avitaltamir/arfima/internal/mode"
	"github.com/avitaltamir/arfima/internal/theme"
)

// makeTree creates files under a temp dir. Names ending in "/" become directories.
func makeTree(t *testing.T, names ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range names {
		path := filepath.Join(root, name)
		if strings.HasSuffix(name, "/") {
			require.NoError(t, os.MkdirAll(path, 0755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	}
	return root
}

func numberedFiles(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("file%02d.txt", i+1)
	}
	return names
}

func newPane(t *testing.T, dir string) *DirectoryPane {
	t.Helper()
	p, err := NewDirectoryPane(dir)
	require.NoError(t, err)
	return p
}

type fakeOpener struct {
	apps     []string
	err      error
	defaults []string
}

func (f *fakeOpener) OpenDefault(path string) error {
	f.defaults = append(f.defaults, path)
	return f.err
}

func (f *fakeOpener) Candidates(string) ([]string, error) { return f.apps, f.err }

func (f *fakeOpener) OpenWith(string, string) error { return f.err }

func eventContext(m mode.Mode) *EventContext {
	return &EventContext{
		Mode:   m,
		Config: config.Default(),
		Opener: &fakeOpener{},
		Keys:   keys.DefaultKeyMap(),
	}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewDirectoryPane(t *testing.T) {
	root := makeTree(t, "b/", "a.txt", "file10.txt", "file2.txt")

	t.Run("lists directories first in natural order", func(t *testing.T) {
		p := newPane(t, root)

		var names []string
		for _, e := range p.Entries() {
			names = append(names, e.Name)
		}
		assert.Equal(t, []string{"b", "a.txt", "file2.txt", "file10.txt"}, names)
		assert.Equal(t, 0, p.Selected())
		assert.NotZero(t, p.ID())
	})

	t.Run("rejects files", func(t *testing.T) {
		_, err := NewDirectoryPane(filepath.Join(root, "a.txt"))

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidDirectoryPath))
		var invalid *InvalidDirectoryError
		require.True(t, errors.As(err, &invalid))
		assert.Equal(t, filepath.Join(root, "a.txt"), invalid.Path)
	})

	t.Run("rejects missing paths", func(t *testing.T) {
		_, err := NewDirectoryPane(filepath.Join(root, "nope"))
		assert.ErrorIs(t, err, ErrInvalidDirectoryPath)
	})
}

func TestIDsAreUnique(t *testing.T) {
	a, b := NextID(), NextID()
	assert.NotEqual(t, a, b)
	assert.NotZero(t, a)
	assert.Equal(t, BookmarksID(), BookmarksID())
	assert.Zero(t, Null.ID())
}

func TestSplitAndCollapse(t *testing.T) {
	root := makeTree(t, numberedFiles(10)...)
	p := newPane(t, root)
	p.selected = 3
	p.policy = layout.FixedPolicy(30)

	tree := p.Split(layout.Horizontal, 1)
	s, ok := tree.(*Split)
	require.True(t, ok)
	require.Len(t, s.Children(), 2)
	assert.Same(t, p, s.Children()[1])
	assert.Equal(t, 0, s.FocusedIndex())
	assert.Equal(t, layout.FixedPolicy(30), s.SizePolicy(), "split takes over the slot policy")

	fresh := s.Children()[0].(*DirectoryPane)
	assert.NotEqual(t, p.ID(), fresh.ID())
	assert.Equal(t, p.Directory(), fresh.Directory())
	assert.Equal(t, 3, fresh.Selected())

	collapsed := tree.CloseFocused()
	assert.Same(t, p, collapsed)
	assert.Equal(t, root, p.Directory())
	assert.Equal(t, 3, p.Selected())
	assert.Equal(t, layout.FixedPolicy(30), p.SizePolicy())
}

func TestSplitCount(t *testing.T) {
	p := newPane(t, makeTree(t, "a.txt"))

	tree := p.Split(layout.Vertical, 3).(*Split)

	assert.Equal(t, layout.Vertical, tree.Axis())
	assert.Len(t, tree.Children(), 4)
	ids := map[uint32]bool{}
	for _, c := range tree.Children() {
		ids[c.ID()] = true
	}
	assert.Len(t, ids, 4)
}

func TestSplitSplitsFocusedChild(t *testing.T) {
	p := newPane(t, makeTree(t, "a.txt"))
	tree := p.Split(layout.Horizontal, 1).(*Split)

	tree.Split(layout.Vertical, 1)

	inner, ok := tree.Children()[0].(*Split)
	require.True(t, ok)
	assert.Equal(t, layout.Vertical, inner.Axis())
	assert.Len(t, Leaves(tree), 3)
}

func TestRemove(t *testing.T) {
	dir := makeTree(t, "a.txt")
	a, b, c := newPane(t, dir), newPane(t, dir), newPane(t, dir)
	inner := NewSplit(layout.Vertical, []Pane{b, c}, 1)
	tree := NewSplit(layout.Horizontal, []Pane{a, inner}, 1)

	t.Run("nested removal collapses the inner split", func(t *testing.T) {
		next := tree.Remove(b.ID())
		s := next.(*Split)
		require.Len(t, s.Children(), 2)
		assert.Same(t, c, s.Children()[1])
		assert.Equal(t, 1, s.FocusedIndex())
	})

	t.Run("removing down to one child collapses the root", func(t *testing.T) {
		next := tree.Remove(c.ID())
		assert.Same(t, a, next)
	})

	t.Run("removing a leaf's own id empties it", func(t *testing.T) {
		assert.Nil(t, a.Remove(a.ID()))
	})

	t.Run("unknown ids leave the tree alone", func(t *testing.T) {
		x, y := newPane(t, dir), newPane(t, dir)
		s := NewSplit(layout.Horizontal, []Pane{x, y}, 0)
		assert.Same(t, s, s.Remove(99999))
	})

	t.Run("removing the split itself", func(t *testing.T) {
		x, y := newPane(t, dir), newPane(t, dir)
		s := NewSplit(layout.Horizontal, []Pane{x, y}, 0)
		assert.Nil(t, s.Remove(s.ID()))
	})
}

func TestRemoveKeepsFocusOnSamePane(t *testing.T) {
	dir := makeTree(t, "a.txt")
	a, b, c := newPane(t, dir), newPane(t, dir), newPane(t, dir)
	s := NewSplit(layout.Horizontal, []Pane{a, b, c}, 2)

	s.Remove(a.ID())

	assert.Same(t, c, s.Focused())
}

func TestIncludesKind(t *testing.T) {
	dir := makeTree(t, "a.txt")
	a, b := newPane(t, dir), newPane(t, dir)
	bm := NewBookmarksPane(config.Default())
	tree := NewSplit(layout.Horizontal, []Pane{bm, NewSplit(layout.Vertical, []Pane{a, b}, 0)}, 0)

	id, ok := tree.IncludesKind(KindDirectory)
	assert.True(t, ok)
	assert.Equal(t, a.ID(), id, "first match in pre-order")

	id, ok = tree.IncludesKind(KindBookmarks)
	assert.True(t, ok)
	assert.Equal(t, BookmarksID(), id)

	_, ok = a.IncludesKind(KindBookmarks)
	assert.False(t, ok)

	assert.True(t, tree.Includes(tree.ID()))
	assert.True(t, tree.Includes(b.ID()))
}

func TestOpen(t *testing.T) {
	root := makeTree(t, "one/x.txt", "two/y.txt")

	t.Run("directory pane renavigates in place", func(t *testing.T) {
		p := newPane(t, root)
		id := p.ID()

		next, err := p.Open(filepath.Join(root, "one"), false)

		require.NoError(t, err)
		assert.Same(t, p, next)
		assert.Equal(t, id, p.ID())
		assert.Equal(t, filepath.Join(root, "one"), p.Directory())
	})

	t.Run("forced open places a sibling", func(t *testing.T) {
		p := newPane(t, root)

		next, err := p.Open(filepath.Join(root, "two"), true)

		require.NoError(t, err)
		s := next.(*Split)
		assert.Len(t, s.Children(), 2)
		assert.Equal(t, filepath.Join(root, "two"), s.Focused().(*DirectoryPane).Directory())
	})

	t.Run("failure returns the pane unchanged", func(t *testing.T) {
		p := newPane(t, root)

		next, err := p.Open(filepath.Join(root, "one", "x.txt"), false)

		assert.ErrorIs(t, err, ErrInvalidDirectoryPath)
		assert.Same(t, p, next)
		assert.Equal(t, root, p.Directory())
	})

	t.Run("split reuses its first directory pane", func(t *testing.T) {
		p := newPane(t, root)
		tree := NewSplit(layout.Horizontal, []Pane{NewBookmarksPane(config.Default()), p}, 0)

		next, err := tree.Open(filepath.Join(root, "two"), false)

		require.NoError(t, err)
		assert.Same(t, tree, next)
		assert.Len(t, tree.Children(), 2)
		assert.Equal(t, 1, tree.FocusedIndex())
		assert.Equal(t, filepath.Join(root, "two"), p.Directory())
	})

	t.Run("split appends when forced", func(t *testing.T) {
		p := newPane(t, root)
		tree := NewSplit(layout.Horizontal, []Pane{NewBookmarksPane(config.Default()), p}, 0)

		_, err := tree.Open(filepath.Join(root, "two"), true)

		require.NoError(t, err)
		assert.Len(t, tree.Children(), 3)
		assert.Equal(t, 2, tree.FocusedIndex())
		assert.Equal(t, root, p.Directory())
	})

	t.Run("bookmarks hand off to a new directory pane", func(t *testing.T) {
		bm := NewBookmarksPane(config.Default())

		next, err := bm.Open(root, false)

		require.NoError(t, err)
		s := next.(*Split)
		assert.Same(t, bm, s.Children()[0])
		assert.Equal(t, 1, s.FocusedIndex())
		assert.Equal(t, KindDirectory, s.Focused().Kind())
	})
}

func TestToggleBookmarks(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	p := newPane(t, makeTree(t, "a.txt"))
	cfg := config.Default()

	tree := ToggleBookmarks(p, cfg)
	s, ok := tree.(*Split)
	require.True(t, ok)
	assert.Equal(t, KindBookmarks, s.Children()[0].Kind())
	assert.Equal(t, layout.FixedPolicy(layout.BookmarksWidth), s.Children()[0].SizePolicy())
	assert.Equal(t, KindBookmarks, tree.Focused().Kind())

	tree = ToggleBookmarks(tree, cfg)
	assert.Same(t, p, tree)

	bm := NewBookmarksPane(cfg)
	assert.Nil(t, ToggleBookmarks(bm, cfg), "removing the only pane empties the tree")
}

func TestBookmarksSplitIsRefused(t *testing.T) {
	bm := NewBookmarksPane(config.Default())
	assert.Same(t, bm, bm.Split(layout.Horizontal, 2))
}

func TestBookmarkEntries(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.Mkdir(filepath.Join(home, "Music"), 0755))
	extra := makeTree(t, "x.txt")

	cfg := config.Default()
	cfg.CommonEntries.OtherPaths = []string{extra, "~/Music", "/does/not/exist"}

	bm := NewBookmarksPane(cfg)
	var paths []string
	for _, e := range bm.Entries() {
		paths = append(paths, e.Path)
	}
	assert.Equal(t, []string{home, filepath.Join(home, "Music"), extra}, paths)

	cfg.CommonEntries.UserDirs = false
	require.NoError(t, bm.Reset(cfg))
	assert.Len(t, bm.Entries(), 2)
}

func TestNavigationCyclesAllLeaves(t *testing.T) {
	dir := makeTree(t, "a.txt")
	a, b, c, d := newPane(t, dir), newPane(t, dir), newPane(t, dir), newPane(t, dir)
	// a | (b / (c | d))
	tree := NewSplit(layout.Horizontal, []Pane{
		a,
		NewSplit(layout.Vertical, []Pane{b, NewSplit(layout.Horizontal, []Pane{c, d}, 1)}, 0),
	}, 0)

	var order []Pane
	for range 4 {
		Next(tree)
		order = append(order, tree.Focused())
	}
	assert.Equal(t, []Pane{b, c, d, a}, order)

	order = nil
	for range 4 {
		Prev(tree)
		order = append(order, tree.Focused())
	}
	assert.Equal(t, []Pane{d, c, b, a}, order)
}

func TestAdjustSize(t *testing.T) {
	dir := makeTree(t, "a.txt")

	t.Run("leaf on matching axis absorbs delta times siblings", func(t *testing.T) {
		a, b := newPane(t, dir), newPane(t, dir)
		tree := NewSplit(layout.Horizontal, []Pane{a, b}, 0)

		assert.True(t, tree.AdjustSize(layout.Horizontal, 2, nil))
		assert.Equal(t, layout.SizePolicy{Kind: layout.ProportionalAdjusted, Delta: 4}, a.SizePolicy())

		assert.True(t, tree.AdjustSize(layout.Horizontal, -1, nil))
		assert.Equal(t, 2, a.SizePolicy().Delta)
	})

	t.Run("no matching axis is refused", func(t *testing.T) {
		a, b := newPane(t, dir), newPane(t, dir)
		tree := NewSplit(layout.Horizontal, []Pane{a, b}, 0)

		assert.False(t, tree.AdjustSize(layout.Vertical, 1, nil))
		assert.Equal(t, layout.ProportionalPolicy(), a.SizePolicy())
	})

	t.Run("enclosing split absorbs when the leaf axis differs", func(t *testing.T) {
		a, b, c := newPane(t, dir), newPane(t, dir), newPane(t, dir)
		inner := NewSplit(layout.Horizontal, []Pane{a, b}, 0)
		tree := NewSplit(layout.Vertical, []Pane{inner, c}, 0)

		assert.True(t, tree.AdjustSize(layout.Vertical, 3, nil))
		assert.Equal(t, layout.ProportionalPolicy(), a.SizePolicy())
		assert.Equal(t, 6, inner.SizePolicy().Delta)
	})

	t.Run("fixed panes keep their baseline", func(t *testing.T) {
		bm := NewBookmarksPane(config.Default())
		a := newPane(t, dir)
		tree := NewSplit(layout.Horizontal, []Pane{bm, a}, 0)

		tree.AdjustSize(layout.Horizontal, -20, nil)

		assert.Equal(t, layout.FixedAdjusted, bm.SizePolicy().Kind)
		assert.Equal(t, layout.MinFixedCells, bm.SizePolicy().FixedCells())
	})
}

func TestDirectoryPaneNormalKeys(t *testing.T) {
	root := makeTree(t, numberedFiles(20)...)

	t.Run("repeat count moves by the whole count", func(t *testing.T) {
		p := newPane(t, root)
		ctx := eventContext(mode.Normal{Precommand: mode.RepeatOf(12)})

		assert.True(t, p.HandleKey(ctx, runeKey('j'), true, false))
		assert.Equal(t, 12, p.Selected())
		assert.Equal(t, []Event{UpdatePrecommand{}}, ctx.Drain())
	})

	t.Run("selection clamps at both ends", func(t *testing.T) {
		p := newPane(t, root)
		p.HandleKey(eventContext(mode.Normal{Precommand: mode.RepeatOf(99)}), runeKey('j'), true, false)
		assert.Equal(t, 19, p.Selected())

		p.HandleKey(eventContext(mode.Normal{Precommand: mode.RepeatOf(99)}), tea.KeyMsg{Type: tea.KeyUp}, true, false)
		assert.Equal(t, 0, p.Selected())
	})

	t.Run("handled keys are ignored", func(t *testing.T) {
		p := newPane(t, root)
		assert.False(t, p.HandleKey(eventContext(mode.Normal{}), runeKey('j'), true, true))
		assert.False(t, p.HandleKey(eventContext(mode.Normal{}), runeKey('j'), false, false))
		assert.Equal(t, 0, p.Selected())
	})

	t.Run("g with a count jumps to that line", func(t *testing.T) {
		p := newPane(t, root)
		p.HandleKey(eventContext(mode.Normal{Precommand: mode.RepeatOf(5)}), runeKey('g'), true, false)
		assert.Equal(t, 4, p.Selected())

		p.HandleKey(eventContext(mode.Normal{}), runeKey('G'), true, false)
		assert.Equal(t, 19, p.Selected())

		p.HandleKey(eventContext(mode.Normal{}), tea.KeyMsg{Type: tea.KeyHome}, true, false)
		assert.Equal(t, 0, p.Selected())
	})

	t.Run("unknown keys are not consumed", func(t *testing.T) {
		p := newPane(t, root)
		ctx := eventContext(mode.Normal{})
		assert.False(t, p.HandleKey(ctx, runeKey('z'), true, false))
		assert.Empty(t, ctx.Drain())
	})

	t.Run("mode keys emit mode changes", func(t *testing.T) {
		p := newPane(t, root)
		p.selected = 2

		ctx := eventContext(mode.Normal{})
		p.HandleKey(ctx, runeKey('d'), true, false)
		events := ctx.Drain()
		require.Len(t, events, 2)
		assert.Equal(t, ChangeMode{Mode: mode.Removing{Path: filepath.Join(root, "file03.txt")}}, events[0])

		p.HandleKey(ctx, runeKey('r'), true, false)
		change := ctx.Drain()[0].(ChangeMode)
		renaming := change.Mode.(mode.Renaming)
		assert.Equal(t, "file03.txt", renaming.Original)
		assert.Equal(t, "file03.txt", renaming.Input.Value())

		p.HandleKey(ctx, runeKey('a'), true, false)
		_, ok := ctx.Drain()[0].(ChangeMode).Mode.(mode.Adding)
		assert.True(t, ok)
	})
}

func TestDirectoryPaneNavigation(t *testing.T) {
	root := makeTree(t, "a/b/c/file.txt", "a/sibling/", "top.txt")

	t.Run("enter descends into directories", func(t *testing.T) {
		p := newPane(t, root)
		p.HandleKey(eventContext(mode.Normal{}), tea.KeyMsg{Type: tea.KeyEnter}, true, false)
		assert.Equal(t, filepath.Join(root, "a"), p.Directory())
	})

	t.Run("enter on a file opens it", func(t *testing.T) {
		p := newPane(t, filepath.Join(root, "a", "b", "c"))
		ctx := eventContext(mode.Normal{})
		opener := ctx.Opener.(*fakeOpener)

		p.HandleKey(ctx, runeKey('l'), true, false)

		assert.Equal(t, []string{filepath.Join(root, "a", "b", "c", "file.txt")}, opener.defaults)
	})

	t.Run("parent selects the directory it came from", func(t *testing.T) {
		p := newPane(t, filepath.Join(root, "a", "sibling"))
		p.HandleKey(eventContext(mode.Normal{}), runeKey('h'), true, false)

		assert.Equal(t, filepath.Join(root, "a"), p.Directory())
		e, _ := p.SelectedEntry()
		assert.Equal(t, "sibling", e.Name)
	})

	t.Run("parent with a count climbs that many levels", func(t *testing.T) {
		p := newPane(t, filepath.Join(root, "a", "b", "c"))
		p.HandleKey(eventContext(mode.Normal{Precommand: mode.RepeatOf(3)}), tea.KeyMsg{Type: tea.KeyBackspace}, true, false)

		assert.Equal(t, root, p.Directory())
		e, _ := p.SelectedEntry()
		assert.Equal(t, "a", e.Name)
	})

	t.Run("a zero count does nothing", func(t *testing.T) {
		p := newPane(t, filepath.Join(root, "a"))
		assert.True(t, p.HandleKey(eventContext(mode.Normal{Precommand: mode.RepeatOf(0)}), runeKey('h'), true, false))
		assert.Equal(t, filepath.Join(root, "a"), p.Directory())
	})
}

func TestDirectoryPaneOpenWith(t *testing.T) {
	root := makeTree(t, "notes.txt")

	t.Run("no candidates is an error", func(t *testing.T) {
		p := newPane(t, root)
		ctx := eventContext(mode.Normal{})

		p.HandleKey(ctx, runeKey('o'), true, false)

		events := ctx.Drain()
		require.NotEmpty(t, events)
		assert.Equal(t, SetError{Err: fileops.ErrNoAppsFound}, events[0])
	})

	t.Run("candidates open the chooser", func(t *testing.T) {
		p := newPane(t, root)
		ctx := eventContext(mode.Normal{})
		ctx.Opener = &fakeOpener{apps: []string{"vim", "less"}}

		p.HandleKey(ctx, runeKey('o'), true, false)

		change := ctx.Drain()[0].(ChangeMode)
		assert.Equal(t, mode.Opening{Apps: []string{"vim", "less"}, Path: filepath.Join(root, "notes.txt")}, change.Mode)
	})
}

func TestDirectoryPanePrompts(t *testing.T) {
	t.Run("adding creates and selects the entry", func(t *testing.T) {
		root := makeTree(t, "a.txt", "b.txt")
		p := newPane(t, root)
		adding := mode.NewAdding()
		adding.Input.SetValue("new.md")
		ctx := eventContext(adding)

		assert.True(t, p.HandleKey(ctx, tea.KeyMsg{Type: tea.KeyEnter}, true, false))

		assert.FileExists(t, filepath.Join(root, "new.md"))
		e, _ := p.SelectedEntry()
		assert.Equal(t, "new.md", e.Name)
		assert.Equal(t, []Event{ResetView{}, ChangeMode{Mode: mode.Normal{}}, SetError{}}, ctx.Drain())
	})

	t.Run("adding ignores other keys", func(t *testing.T) {
		p := newPane(t, makeTree(t, "a.txt"))
		assert.False(t, p.HandleKey(eventContext(mode.NewAdding()), runeKey('x'), true, false))
	})

	t.Run("adding an empty name reports the error", func(t *testing.T) {
		p := newPane(t, makeTree(t, "a.txt"))
		ctx := eventContext(mode.NewAdding())

		p.HandleKey(ctx, tea.KeyMsg{Type: tea.KeyEnter}, true, false)

		events := ctx.Drain()
		require.Len(t, events, 1)
		assert.Error(t, events[0].(SetError).Err)
	})

	t.Run("renaming moves the entry", func(t *testing.T) {
		root := makeTree(t, "old.txt")
		p := newPane(t, root)
		renaming := mode.NewRenaming("old.txt")
		renaming.Input.SetValue("sub/new.txt")
		ctx := eventContext(renaming)

		p.HandleKey(ctx, tea.KeyMsg{Type: tea.KeyEnter}, true, false)

		assert.NoFileExists(t, filepath.Join(root, "old.txt"))
		assert.FileExists(t, filepath.Join(root, "sub", "new.txt"))
		e, _ := p.SelectedEntry()
		assert.Equal(t, "sub", e.Name)
	})

	t.Run("removing with y deletes", func(t *testing.T) {
		root := makeTree(t, "doomed/inner.txt")
		p := newPane(t, root)
		ctx := eventContext(mode.Removing{Path: filepath.Join(root, "doomed")})

		p.HandleKey(ctx, runeKey('y'), true, false)

		assert.NoDirExists(t, filepath.Join(root, "doomed"))
		assert.Contains(t, ctx.Drain(), Event(ResetView{}))
	})

	t.Run("enter deletes only when confirmed", func(t *testing.T) {
		root := makeTree(t, "keep.txt")
		p := newPane(t, root)
		target := filepath.Join(root, "keep.txt")

		ctx := eventContext(mode.Removing{Path: target})
		p.HandleKey(ctx, tea.KeyMsg{Type: tea.KeyEnter}, true, false)
		assert.FileExists(t, target)
		assert.Equal(t, []Event{ChangeMode{Mode: mode.Normal{}}, SetError{}}, ctx.Drain())

		ctx = eventContext(mode.Removing{Path: target, Confirm: true})
		p.HandleKey(ctx, tea.KeyMsg{Type: tea.KeyEnter}, true, false)
		assert.NoFileExists(t, target)
	})
}

func TestReset(t *testing.T) {
	root := makeTree(t, "a.txt", "b.txt", "c.txt")
	p := newPane(t, root)
	p.selected = 2

	require.NoError(t, os.Remove(filepath.Join(root, "c.txt")))
	require.NoError(t, p.Reset(config.Default()))
	assert.Len(t, p.Entries(), 2)
	assert.Equal(t, 1, p.Selected())

	require.NoError(t, os.RemoveAll(root))
	assert.Error(t, p.Reset(config.Default()))
	assert.Len(t, p.Entries(), 2, "failed reload keeps the listing")
}

func TestSplitHandleKeyRoutesToFocused(t *testing.T) {
	root := makeTree(t, numberedFiles(5)...)
	a, b := newPane(t, root), newPane(t, root)
	tree := NewSplit(layout.Horizontal, []Pane{a, b}, 1)

	assert.True(t, tree.HandleKey(eventContext(mode.Normal{}), runeKey('j'), true, false))
	assert.Equal(t, 0, a.Selected())
	assert.Equal(t, 1, b.Selected())

	assert.True(t, tree.HandleKey(eventContext(mode.Normal{}), runeKey('j'), true, true), "handled flag is passed through")
	assert.Equal(t, 1, b.Selected())
}

func TestBookmarksTitle(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	bm := NewBookmarksPane(config.Default())

	top := strings.Split(bm.View(RenderContext{Config: config.Default()}, 40, 6, false), "\n")[0]
	assert.Contains(t, top, theme.Bookmark)
	assert.Contains(t, top, "Bookmarks")
}

func TestViewFillsTheArea(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	root := makeTree(t, numberedFiles(30)...)
	cfg := config.Default()
	cfg.Number.Active = true
	cfg.Number.Relative = true
	ctx := RenderContext{Config: cfg}

	p := newPane(t, root)
	p.selected = 25
	tree := ToggleBookmarks(p.Split(layout.Vertical, 1), cfg)

	for _, size := range [][2]int{{120, 30}, {60, 12}, {30, 5}} {
		t.Run(fmt.Sprintf("%dx%d", size[0], size[1]), func(t *testing.T) {
			out := tree.View(ctx, size[0], size[1], true)
			lines := strings.Split(out, "\n")

			assert.Len(t, lines, size[1])
			for _, line := range lines {
				assert.Equal(t, size[0], lipgloss.Width(line))
			}
		})
	}

	t.Run("selected row stays visible", func(t *testing.T) {
		out := p.View(ctx, 80, 10, true)
		assert.Contains(t, out, "file26.txt")
		assert.NotContains(t, out, "file01.txt")
	})
}

func TestScrollOffset(t *testing.T) {
	assert.Equal(t, 0, scrollOffset(3, 5, 10))
	assert.Equal(t, 0, scrollOffset(4, 20, 5))
	assert.Equal(t, 1, scrollOffset(5, 20, 5))
	assert.Equal(t, 15, scrollOffset(19, 20, 5))
}

func TestNullPanics(t *testing.T) {
	assert.Panics(t, func() { Null.Split(layout.Horizontal, 1) })
	assert.Panics(t, func() { _, _ = Null.Open("/", false) })
	assert.False(t, Null.HandleKey(eventContext(mode.Normal{}), runeKey('j'), true, false))
	assert.Equal(t, "", Null.View(RenderContext{}, 10, 10, true))
}
