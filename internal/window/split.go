package window

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/avitaltamir/arfima/internal/config"
	"github.com/avitaltamir/arfima/internal/layout"
)

// Split tiles two or more children along an axis. A split with fewer than
// two children never survives a tree operation: it collapses into its remaining
// child or disappears.
type Split struct {
	id       uint32
	axis     layout.Axis
	children []Pane
	focused  int
	policy   layout.SizePolicy
}

// NewSplit builds a proportional split focused on children[focused].
func NewSplit(axis layout.Axis, children []Pane, focused int) *Split {
	return newSplit(axis, children, focused, layout.ProportionalPolicy())
}

func newSplit(axis layout.Axis, children []Pane, focused int, policy layout.SizePolicy) *Split {
	if len(children) < 2 {
		panic("window: split needs at least two children")
	}
	return &Split{
		id:       NextID(),
		axis:     axis,
		children: children,
		focused:  min(max(focused, 0), len(children)-1),
		policy:   policy,
	}
}

func (s *Split) ID() uint32 { return s.id }
func (s *Split) Kind() Kind { return KindSplit }

// Axis returns the direction children are laid out along.
func (s *Split) Axis() layout.Axis { return s.axis }

// Children returns the child panes in layout order.
func (s *Split) Children() []Pane { return s.children }

// FocusedIndex returns the index of the focused child.
func (s *Split) FocusedIndex() int { return s.focused }

func (s *Split) View(ctx RenderContext, width, height int, focused bool) string {
	policies := make([]layout.SizePolicy, len(s.children))
	for i, c := range s.children {
		policies[i] = c.SizePolicy()
	}
	sizes := layout.Allocate(s.axis.Length(width, height), policies)

	parts := make([]string, 0, len(s.children))
	for i, c := range s.children {
		if sizes[i] <= 0 {
			continue
		}
		w, h := width, height
		if s.axis == layout.Horizontal {
			w = sizes[i]
		} else {
			h = sizes[i]
		}
		parts = append(parts, c.View(ctx, w, h, focused && i == s.focused))
	}

	if s.axis == layout.Horizontal {
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// HandleKey offers the key to every child; only the focused path may act.
// Once a child consumes the key the rest see it as handled.
func (s *Split) HandleKey(ctx *EventContext, msg tea.KeyMsg, focused, handled bool) bool {
	for i, c := range s.children {
		if c.HandleKey(ctx, msg, focused && i == s.focused, handled) {
			handled = true
		}
	}
	return handled
}

func (s *Split) Reset(cfg *config.Config) error {
	var errs []error
	for _, c := range s.children {
		if err := c.Reset(cfg); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Split) SizePolicy() layout.SizePolicy { return s.policy }

// AdjustSize offers the delta to the focused child first. If no descendant
// lies on a matching axis, the split itself absorbs it, scaled by the number
// of siblings it shares its parent with.
func (s *Split) AdjustSize(axis layout.Axis, delta int, parent *ParentInfo) bool {
	own := &ParentInfo{Axis: s.axis, Siblings: len(s.children)}
	if s.children[s.focused].AdjustSize(axis, delta, own) {
		return true
	}
	if parent != nil && parent.Axis == axis {
		s.policy = s.policy.Adjust(delta * parent.Siblings)
		return true
	}
	return false
}

// Split splits the focused child.
func (s *Split) Split(axis layout.Axis, count int) Pane {
	s.children[s.focused] = s.children[s.focused].Split(axis, count)
	return s
}

func (s *Split) Includes(id uint32) bool {
	if s.id == id {
		return true
	}
	for _, c := range s.children {
		if c.Includes(id) {
			return true
		}
	}
	return false
}

// IncludesKind returns the first pane of kind k in pre-order.
func (s *Split) IncludesKind(k Kind) (uint32, bool) {
	if k == KindSplit {
		return s.id, true
	}
	for _, c := range s.children {
		if id, ok := c.IncludesKind(k); ok {
			return id, true
		}
	}
	return 0, false
}

func (s *Split) Remove(id uint32) Pane {
	if s.id == id {
		return nil
	}
	for i, c := range s.children {
		if !c.Includes(id) {
			continue
		}
		if c.ID() == id {
			return s.removeAt(i)
		}
		next := c.Remove(id)
		if next == nil {
			return s.removeAt(i)
		}
		s.children[i] = next
		return s
	}
	return s
}

func (s *Split) CloseFocused() Pane {
	if next := s.children[s.focused].CloseFocused(); next != nil {
		s.children[s.focused] = next
		return s
	}
	return s.removeAt(s.focused)
}

// removeAt drops child i and collapses the split when fewer than two
// children remain. A surviving child takes over the split's slot policy
// unless it reserves fixed cells of its own.
func (s *Split) removeAt(i int) Pane {
	s.children = append(s.children[:i], s.children[i+1:]...)
	if i < s.focused {
		s.focused--
	}
	s.focused = min(s.focused, len(s.children)-1)

	switch len(s.children) {
	case 0:
		return nil
	case 1:
		survivor := s.children[0]
		if !survivor.SizePolicy().IsFixed() {
			setPolicy(survivor, s.policy)
		}
		return survivor
	default:
		return s
	}
}

// Open renavigates the first directory pane in the subtree, or appends a
// new one when forceNew is set or none exists.
func (s *Split) Open(path string, forceNew bool) (Pane, error) {
	if !forceNew {
		if id, ok := s.IncludesKind(KindDirectory); ok {
			for i, c := range s.children {
				if !c.Includes(id) {
					continue
				}
				next, err := c.Open(path, false)
				s.children[i] = next
				if err != nil {
					return s, err
				}
				s.focused = i
				return s, nil
			}
		}
	}

	pane, err := NewDirectoryPane(path)
	if err != nil {
		return s, err
	}
	s.children = append(s.children, pane)
	s.focused = len(s.children) - 1
	return s, nil
}

// NextWindow moves focus to the next leaf in layout order without
// wrapping. It reports false when the last leaf of the subtree is focused.
func (s *Split) NextWindow() bool {
	if s.children[s.focused].NextWindow() {
		return true
	}
	if s.focused < len(s.children)-1 {
		s.focused++
		focusFirst(s.children[s.focused])
		return true
	}
	return false
}

// PrevWindow is the mirror of NextWindow.
func (s *Split) PrevWindow() bool {
	if s.children[s.focused].PrevWindow() {
		return true
	}
	if s.focused > 0 {
		s.focused--
		focusLast(s.children[s.focused])
		return true
	}
	return false
}

// AbsNextWindow advances the focused index with wrapping and descends to
// the first leaf of the new child.
func (s *Split) AbsNextWindow() {
	s.focused = (s.focused + 1) % len(s.children)
	focusFirst(s.children[s.focused])
}

// AbsPrevWindow steps back with wrapping and descends to the last leaf of
// the new child.
func (s *Split) AbsPrevWindow() {
	s.focused = (s.focused - 1 + len(s.children)) % len(s.children)
	focusLast(s.children[s.focused])
}

func focusFirst(p Pane) {
	for s, ok := p.(*Split); ok; s, ok = s.children[s.focused].(*Split) {
		s.focused = 0
	}
}

func focusLast(p Pane) {
	for s, ok := p.(*Split); ok; s, ok = s.children[s.focused].(*Split) {
		s.focused = len(s.children) - 1
	}
}

func (s *Split) Focused() Pane {
	return s.children[s.focused].Focused()
}

// Leaves returns the leaves of the tree rooted at p in layout order.
func Leaves(p Pane) []Pane {
	s, ok := p.(*Split)
	if !ok {
		return []Pane{p}
	}
	var out []Pane
	for _, c := range s.children {
		out = append(out, Leaves(c)...)
	}
	return out
}

// Next moves focus one leaf forward across the whole tree, wrapping at the end.
func Next(root Pane) {
	if !root.NextWindow() {
		root.AbsNextWindow()
	}
}

// Prev moves focus one leaf backward across the whole tree, wrapping at the start.
func Prev(root Pane) {
	if !root.PrevWindow() {
		root.AbsPrevWindow()
	}
}

func setPolicy(p Pane, policy layout.SizePolicy) {
	switch p := p.(type) {
	case *Split:
		p.policy = policy
	case *DirectoryPane:
		p.policy = policy
	case *BookmarksPane:
		p.policy = policy
	}
}
