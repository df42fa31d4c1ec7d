package window

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/avitaltamir/arfima/internal/entry"
	"github.com/avitaltamir/arfima/internal/layout"
	"github.com/avitaltamir/arfima/internal/theme"
)

const (
	sizeColumnWidth     = 9
	modifiedColumnWidth = 15
	// Below this inner width the metadata columns are dropped
	metadataMinWidth = 48
)

// listing is what a leaf hands to renderListing.
type listing struct {
	title    string
	icon     string
	entries  []entry.Entry
	selected int
	numbers  bool
	relative bool
	metadata bool
	accent   bool
}

// renderListing draws a bordered entry list of exactly width x height cells.
func renderListing(ctx RenderContext, l listing, width, height int, focused bool) string {
	if width < 4 || height < 3 {
		return blank(width, height)
	}
	th := ctx.Theme
	if th == nil {
		th = theme.DefaultTheme()
	}

	innerWidth := layout.ContentWidth(width)
	rows := layout.ContentHeight(height)

	showMeta := l.metadata && innerWidth >= metadataMinWidth
	if showMeta {
		rows-- // Header
	}
	offset := scrollOffset(l.selected, len(l.entries), rows)

	numberWidth := 0
	if l.numbers {
		numberWidth = len(strconv.Itoa(len(l.entries))) + 1
	}
	nameWidth := innerWidth - numberWidth - 2 // Icon and its gap
	if showMeta {
		nameWidth -= sizeColumnWidth + modifiedColumnWidth
	}

	var lines []string
	if showMeta {
		header := strings.Repeat(" ", numberWidth+2) +
			entry.PadRight("Name", nameWidth) +
			fmt.Sprintf("%*s", sizeColumnWidth, "Size") + "  " +
			entry.PadRight("Modified", modifiedColumnWidth-2)
		lines = append(lines, theme.EntryMeta.Bold(true).Render(header))
	}

	if len(l.entries) == 0 {
		lines = append(lines, theme.EntryEmpty.Render(" empty"))
	}

	for i := offset; i < len(l.entries) && i < offset+rows; i++ {
		e := l.entries[i]
		selected := i == l.selected

		var b strings.Builder
		if l.numbers {
			b.WriteString(lineNumber(i, l.selected, l.relative, numberWidth-1))
			b.WriteString(" ")
		}

		name := entry.PadRight(entry.Truncate(e.Name, nameWidth), nameWidth)
		row := entryIcon(th, e) + " " + name
		if showMeta {
			row += fmt.Sprintf("%*s", sizeColumnWidth, e.SizeString()) + "  " +
				entry.PadRight(entry.Truncate(e.ModString(), modifiedColumnWidth-2), modifiedColumnWidth-2)
		}

		switch {
		case selected && focused:
			b.WriteString(theme.EntrySelected.Render(row))
		case selected:
			b.WriteString(theme.EntrySelectedInactive.Render(row))
		case e.Kind == entry.Directory:
			b.WriteString(theme.EntryDir.Render(row))
		case e.Kind == entry.Other:
			b.WriteString(theme.EntryOther.Render(row))
		default:
			b.WriteString(theme.EntryFile.Render(row))
		}
		lines = append(lines, b.String())
	}

	scroll := -1.0
	if maxOffset := len(l.entries) - rows; maxOffset > 0 {
		scroll = float64(offset) / float64(maxOffset) * 100
	}
	hints := ""
	if len(l.entries) > 0 {
		hints = fmt.Sprintf("%d/%d", l.selected+1, len(l.entries))
	}

	return theme.RenderPanelWithTitle(strings.Join(lines, "\n"), theme.PanelTitleOptions{
		Title:         l.title,
		Icon:          l.icon,
		IconStyle:     theme.BookmarkStyle,
		ScrollPercent: scroll,
		BottomHints:   hints,
		Accent:        l.accent,
	}, width, height, focused)
}

// scrollOffset returns the first visible row that keeps selected on screen.
func scrollOffset(selected, total, rows int) int {
	if rows <= 0 || total <= rows {
		return 0
	}
	offset := max(selected-rows+1, 0)
	return min(offset, total-rows)
}

// lineNumber renders the number column. In relative mode the selected row
// shows its absolute number and the others their distance from it.
func lineNumber(i, selected int, relative bool, width int) string {
	n := i + 1
	if relative && i != selected {
		n = max(i-selected, selected-i)
	}
	text := fmt.Sprintf("%*d", width, n)
	if i == selected {
		return theme.LineNumberCurrent.Render(text)
	}
	return theme.LineNumber.Render(text)
}

func entryIcon(th *theme.Theme, e entry.Entry) string {
	switch e.Kind {
	case entry.Directory:
		return th.GetDirIcon(e.Name)
	case entry.Other:
		return th.GetOtherIcon()
	default:
		return th.GetFileIcon(e.Extension())
	}
}

// blank fills an area too small for a panel.
func blank(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Width(width).Height(height).Render("")
}
