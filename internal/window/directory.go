package window

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avitaltamir/arfima/internal/config"
	"github.com/avitaltamir/arfima/internal/entry"
	"github.com/avitaltamir/arfima/internal/fileops"
	"github.com/avitaltamir/arfima/internal/layout"
	"github.com/avitaltamir/arfima/internal/mode"
)

// DirectoryPane lists one directory and tracks a selected entry.
type DirectoryPane struct {
	id       uint32
	dir      string
	entries  []entry.Entry
	selected int
	policy   layout.SizePolicy
}

// NewDirectoryPane opens path in a fresh proportional pane.
func NewDirectoryPane(path string) (*DirectoryPane, error) {
	dir, entries, err := readDirectory(path)
	if err != nil {
		return nil, err
	}
	return &DirectoryPane{
		id:      NextID(),
		dir:     dir,
		entries: entries,
		policy:  layout.ProportionalPolicy(),
	}, nil
}

// readDirectory resolves path and lists it.
func readDirectory(path string) (string, []entry.Entry, error) {
	abs, err := filepath.Abs(config.ExpandHome(path))
	if err != nil {
		return "", nil, err
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return "", nil, &InvalidDirectoryError{Path: path}
	}
	entries, err := entry.ReadDir(abs)
	if err != nil {
		return "", nil, err
	}
	return abs, entries, nil
}

func (p *DirectoryPane) ID() uint32 { return p.id }
func (p *DirectoryPane) Kind() Kind { return KindDirectory }

// Directory returns the absolute path being listed.
func (p *DirectoryPane) Directory() string { return p.dir }

// Entries returns the current listing.
func (p *DirectoryPane) Entries() []entry.Entry { return p.entries }

// Selected returns the selection index.
func (p *DirectoryPane) Selected() int { return p.selected }

// SelectedEntry returns the entry under the cursor, if any.
func (p *DirectoryPane) SelectedEntry() (entry.Entry, bool) {
	if p.selected < 0 || p.selected >= len(p.entries) {
		return entry.Entry{}, false
	}
	return p.entries[p.selected], true
}

// navigate lists path in place, keeping the id and size policy.
func (p *DirectoryPane) navigate(path string) error {
	dir, entries, err := readDirectory(path)
	if err != nil {
		return err
	}
	slog.Debug("navigate", "pane", p.id, "from", p.dir, "to", dir)
	p.dir = dir
	p.entries = entries
	p.selected = 0
	return nil
}

func (p *DirectoryPane) moveCursor(delta int) {
	p.selected += delta
	p.clampSelection()
}

func (p *DirectoryPane) clampSelection() {
	p.selected = max(min(p.selected, len(p.entries)-1), 0)
}

// selectPath moves the cursor to the entry at path, or to the entry that
// contains it when path lies deeper in the listed directory.
func (p *DirectoryPane) selectPath(path string) {
	rel, err := filepath.Rel(p.dir, path)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return
	}
	first := strings.Split(rel, string(filepath.Separator))[0]
	for i, e := range p.entries {
		if e.Name == first {
			p.selected = i
			return
		}
	}
}

func (p *DirectoryPane) View(ctx RenderContext, width, height int, focused bool) string {
	return renderListing(ctx, listing{
		title:    displayPath(p.dir),
		entries:  p.entries,
		selected: p.selected,
		numbers:  ctx.Config != nil && ctx.Config.Number.Active,
		relative: ctx.Config != nil && ctx.Config.Number.Relative,
		metadata: true,
	}, width, height, focused)
}

func (p *DirectoryPane) HandleKey(ctx *EventContext, msg tea.KeyMsg, focused, handled bool) bool {
	if !focused || handled {
		return false
	}

	switch m := ctx.Mode.(type) {
	case mode.Normal:
		return p.handleNormal(ctx, msg, m.Precommand)
	case mode.Adding:
		if !key.Matches(msg, ctx.Keys.Accept) {
			return false
		}
		p.finish(ctx, func() (string, error) {
			return fileops.Add(p.dir, m.Input.Value())
		})
		return true
	case mode.Renaming:
		if !key.Matches(msg, ctx.Keys.Accept) {
			return false
		}
		p.finish(ctx, func() (string, error) {
			return fileops.Rename(p.dir, m.Original, m.Input.Value())
		})
		return true
	case mode.Removing:
		switch {
		case key.Matches(msg, ctx.Keys.Confirm):
			p.remove(ctx, m.Path)
		case key.Matches(msg, ctx.Keys.Accept):
			if m.Confirm {
				p.remove(ctx, m.Path)
			} else {
				ctx.Emit(ChangeMode{Mode: mode.Normal{}})
				ctx.Emit(SetError{})
			}
		default:
			return false
		}
		return true
	default:
		return false
	}
}

func (p *DirectoryPane) handleNormal(ctx *EventContext, msg tea.KeyMsg, pre mode.Precommand) bool {
	k := ctx.Keys

	switch {
	case key.Matches(msg, k.Down):
		p.moveCursor(pre.CountOr(1))

	case key.Matches(msg, k.Up):
		p.moveCursor(-pre.CountOr(1))

	case key.Matches(msg, k.Parent):
		levels := pre.CountOr(1)
		if levels == 0 {
			break
		}
		from, target := p.dir, p.dir
		for range levels {
			parent := filepath.Dir(target)
			if parent == target {
				break
			}
			target = parent
		}
		if target == p.dir {
			break
		}
		if err := p.navigate(target); err != nil {
			ctx.Emit(SetError{Err: err})
			break
		}
		p.selectPath(from)

	case key.Matches(msg, k.Enter):
		e, ok := p.SelectedEntry()
		if !ok {
			break
		}
		if e.IsDir() {
			if err := p.navigate(e.Path); err != nil {
				ctx.Emit(SetError{Err: err})
			}
			break
		}
		if err := ctx.Opener.OpenDefault(e.Path); err != nil {
			ctx.Emit(SetError{Err: err})
		}

	case key.Matches(msg, k.OpenWith):
		e, ok := p.SelectedEntry()
		if !ok || e.IsDir() {
			break
		}
		apps, err := ctx.Opener.Candidates(e.Path)
		switch {
		case err != nil:
			ctx.Emit(SetError{Err: err})
		case len(apps) == 0:
			ctx.Emit(SetError{Err: fileops.ErrNoAppsFound})
		default:
			ctx.Emit(ChangeMode{Mode: mode.Opening{Apps: apps, Path: e.Path}})
		}

	case key.Matches(msg, k.Add):
		ctx.Emit(ChangeMode{Mode: mode.NewAdding()})

	case key.Matches(msg, k.Rename):
		e, ok := p.SelectedEntry()
		if !ok {
			break
		}
		ctx.Emit(ChangeMode{Mode: mode.NewRenaming(e.Name)})

	case key.Matches(msg, k.Remove):
		e, ok := p.SelectedEntry()
		if !ok {
			break
		}
		ctx.Emit(ChangeMode{Mode: mode.Removing{Path: e.Path}})

	case key.Matches(msg, k.Top):
		// A count jumps to that line, counting from one
		p.selected = max(pre.CountOr(1)-1, 0)
		p.clampSelection()

	case key.Matches(msg, k.Bottom):
		p.selected = len(p.entries) - 1
		p.clampSelection()

	case key.Matches(msg, k.Yank):
		e, ok := p.SelectedEntry()
		if !ok {
			break
		}
		if err := fileops.Yank(e.Path); err != nil {
			ctx.Emit(SetError{Err: err})
		}

	default:
		return false
	}

	ctx.Emit(UpdatePrecommand{})
	return true
}

// finish runs a filesystem action that ends a prompt. On success the pane
// selects the new entry and every pane is reloaded.
func (p *DirectoryPane) finish(ctx *EventContext, action func() (string, error)) {
	path, err := action()
	if err != nil {
		slog.Warn("file action failed", "dir", p.dir, "error", err)
		ctx.Emit(SetError{Err: err})
		return
	}
	if err := p.Reset(ctx.Config); err == nil {
		p.selectPath(path)
	}
	ctx.Emit(ResetView{})
	ctx.Emit(ChangeMode{Mode: mode.Normal{}})
	ctx.Emit(SetError{})
}

func (p *DirectoryPane) remove(ctx *EventContext, path string) {
	if err := fileops.Remove(path); err != nil {
		slog.Warn("remove failed", "path", path, "error", err)
		ctx.Emit(SetError{Err: err})
		return
	}
	slog.Info("removed", "path", path)
	ctx.Emit(ResetView{})
	ctx.Emit(ChangeMode{Mode: mode.Normal{}})
	ctx.Emit(SetError{})
}

// Reset re-reads the directory and clamps the selection.
func (p *DirectoryPane) Reset(*config.Config) error {
	entries, err := entry.ReadDir(p.dir)
	if err != nil {
		return fmt.Errorf("reload %s: %w", p.dir, err)
	}
	p.entries = entries
	p.clampSelection()
	return nil
}

func (p *DirectoryPane) SizePolicy() layout.SizePolicy { return p.policy }

func (p *DirectoryPane) AdjustSize(axis layout.Axis, delta int, parent *ParentInfo) bool {
	return adjustLeaf(&p.policy, axis, delta, parent)
}

// Split returns a split of count fresh copies followed by p. The split
// takes over p's slot policy and focuses the first copy.
func (p *DirectoryPane) Split(axis layout.Axis, count int) Pane {
	count = max(count, 1)
	children := make([]Pane, 0, count+1)
	for range count {
		children = append(children, &DirectoryPane{
			id:       NextID(),
			dir:      p.dir,
			entries:  p.entries,
			selected: p.selected,
			policy:   layout.ProportionalPolicy(),
		})
	}
	children = append(children, p)

	policy := p.policy
	p.policy = layout.ProportionalPolicy()
	slog.Debug("split", "pane", p.id, "axis", axis, "count", count)
	return newSplit(axis, children, 0, policy)
}

func (p *DirectoryPane) Includes(id uint32) bool { return p.id == id }

func (p *DirectoryPane) IncludesKind(k Kind) (uint32, bool) {
	if k != KindDirectory {
		return 0, false
	}
	return p.id, true
}

func (p *DirectoryPane) Remove(id uint32) Pane {
	if id == p.id {
		return nil
	}
	return p
}

func (p *DirectoryPane) CloseFocused() Pane { return nil }

// Open renavigates in place, or places a new pane beside p when forceNew is set.
func (p *DirectoryPane) Open(path string, forceNew bool) (Pane, error) {
	if !forceNew {
		if err := p.navigate(path); err != nil {
			return p, err
		}
		return p, nil
	}

	sibling, err := NewDirectoryPane(path)
	if err != nil {
		return p, err
	}
	policy := p.policy
	p.policy = layout.ProportionalPolicy()
	return newSplit(layout.Horizontal, []Pane{p, sibling}, 1, policy), nil
}

func (p *DirectoryPane) NextWindow() bool { return false }
func (p *DirectoryPane) PrevWindow() bool { return false }
func (p *DirectoryPane) AbsNextWindow()   {}
func (p *DirectoryPane) AbsPrevWindow()   {}
func (p *DirectoryPane) Focused() Pane    { return p }

// adjustLeaf folds a resize into a leaf policy when the leaf's parent lies
// along the requested axis.
func adjustLeaf(policy *layout.SizePolicy, axis layout.Axis, delta int, parent *ParentInfo) bool {
	if parent == nil || parent.Axis != axis {
		return false
	}
	*policy = policy.Adjust(delta * parent.Siblings)
	return true
}

// displayPath shortens the home directory to ~.
func displayPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home+string(filepath.Separator)) {
		return "~" + path[len(home):]
	}
	return path
}
