package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/avitaltamir/arfima/internal/entry"
	"github.com/avitaltamir/arfima/internal/keys"
	"github.com/avitaltamir/arfima/internal/layout"
	"github.com/avitaltamir/arfima/internal/mode"
	"github.com/avitaltamir/arfima/internal/theme"
	"github.com/avitaltamir/arfima/internal/window"
)

const (
	modalWidth     = 56
	helpModalWidth = 64
	maxModalRows   = 12
)

// View renders the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}

	height := max(m.height-layout.StatusBarHeight, 0)
	var main string
	if modal := m.renderModal(); modal != "" {
		main = lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, modal)
	} else {
		ctx := window.RenderContext{Config: m.cfg, Theme: m.theme}
		main = m.tree.View(ctx, m.width, height, true)
	}

	return lipgloss.JoinVertical(lipgloss.Left, main, m.renderStatusBar())
}

// renderModal returns the dialog for the current mode, or "" when the
// panes should be shown.
func (m Model) renderModal() string {
	width := min(modalWidth, m.width)

	switch md := m.mode.(type) {
	case mode.Adding:
		return theme.RenderModal("Add", m.renderPrompt(md.Input.View(), "name with an extension creates a file"), width)
	case mode.Renaming:
		return theme.RenderModal("Rename "+md.Original, m.renderPrompt(md.Input.View(), ""), width)
	case mode.Removing:
		return theme.RenderModal("Remove", m.renderRemoving(md, width), width)
	case mode.Opening:
		return theme.RenderModal("Open with", m.renderOpening(md, width), width)
	case mode.Help:
		return theme.RenderModal("Help", m.renderHelp(md), min(helpModalWidth, m.width))
	}
	return ""
}

func (m Model) renderPrompt(input, hint string) string {
	if hint == "" {
		return input
	}
	return input + "\n" + theme.EntryMeta.Render(hint)
}

func (m Model) renderRemoving(r mode.Removing, width int) string {
	yes, no := theme.ButtonInactive, theme.ButtonActive
	if r.Confirm {
		yes, no = theme.ButtonActive, theme.ButtonInactive
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top, yes.Render("Yes"), "  ", no.Render("No"))

	path := entry.Truncate(r.Path, max(width-6, 1))
	return theme.ModalOption.Render("Delete "+path+"?") + "\n\n" +
		lipgloss.PlaceHorizontal(max(width-4, 1), lipgloss.Center, buttons)
}

func (m Model) renderOpening(o mode.Opening, width int) string {
	offset := max(o.Selected-maxModalRows+1, 0)
	var lines []string
	for i := offset; i < len(o.Apps) && i < offset+maxModalRows; i++ {
		name := entry.PadRight(entry.Truncate(o.Apps[i], max(width-6, 1)), max(width-6, 1))
		if i == o.Selected {
			lines = append(lines, theme.ModalOptionSelected.Render(name))
		} else {
			lines = append(lines, theme.ModalOption.Render(name))
		}
	}
	return strings.Join(lines, "\n")
}

// renderHelp shows a window of the help table around the selected row.
func (m Model) renderHelp(h mode.Help) string {
	entries := m.keys.Entries()
	rows := max(min(maxModalRows, m.height-8), 1)
	offset := max(h.Selected-rows+1, 0)

	keyWidth := 0
	for _, e := range entries {
		keyWidth = max(keyWidth, lipgloss.Width(e.Key))
	}

	var lines []string
	section := ""
	for i := offset; i < len(entries) && i < offset+rows; i++ {
		e := entries[i]
		if e.Section != section || i == offset {
			section = e.Section
			lines = append(lines, theme.HelpSection.Render(section))
		}
		lines = append(lines, helpRow(e, keyWidth, i == h.Selected))
	}

	footer := theme.EntryMeta.Render(fmt.Sprintf("%d/%d  esc to close", h.Selected+1, len(entries)))
	return strings.Join(lines, "\n") + "\n\n" + footer
}

func helpRow(e keys.Entry, keyWidth int, selected bool) string {
	k := entry.PadRight(e.Key, keyWidth)
	if selected {
		return theme.ModalOptionSelected.Render("  " + k + "  " + e.Desc)
	}
	return "  " + theme.HelpKey.Render(k) + "  " + theme.HelpDesc.Render(e.Desc)
}

func (m Model) renderStatusBar() string {
	style := theme.StatusBarStyle.Width(m.width).MaxWidth(m.width).MaxHeight(1)

	left := theme.StatusBarMode.Render(m.mode.Name())

	switch md := m.mode.(type) {
	case mode.Commanding:
		left += " :" + md.Input.View()
	case mode.Normal:
		if pre := md.Precommand.String(); pre != "" {
			left += theme.StatusBarHighlight.Render(" " + pre)
		}
	}

	if m.err != nil {
		left += theme.StatusBarError.Render(m.err.Error())
	} else if d, ok := m.tree.Focused().(*window.DirectoryPane); ok {
		if e, ok := d.SelectedEntry(); ok {
			left += theme.StatusBarSection.Render(e.Name + "  " + e.SizeString() + "  " + e.ModString())
		}
	}

	right := theme.StatusBarSection.Render(m.theme.Name + " │ " + Version)

	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right)-2, 0)
	return style.Render(left + strings.Repeat(" ", gap) + right)
}
