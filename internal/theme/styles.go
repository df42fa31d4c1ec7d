package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Border definitions
var (
	// NeonBorder uses heavy lines for a bold look
	NeonBorder = lipgloss.Border{
		Top:         "━",
		Bottom:      "━",
		Left:        "┃",
		Right:       "┃",
		TopLeft:     "┏",
		TopRight:    "┓",
		BottomLeft:  "┗",
		BottomRight: "┛",
	}

	// GlowBorder uses rounded corners for a softer look
	GlowBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "╰",
		BottomRight: "╯",
	}

	// DoubleBorder for modals
	DoubleBorder = lipgloss.Border{
		Top:         "═",
		Bottom:      "═",
		Left:        "║",
		Right:       "║",
		TopLeft:     "╔",
		TopRight:    "╗",
		BottomLeft:  "╚",
		BottomRight: "╝",
	}
)

// Entry list styles
var (
	EntryDir              lipgloss.Style
	EntryFile             lipgloss.Style
	EntryOther            lipgloss.Style
	EntrySelected         lipgloss.Style
	EntrySelectedInactive lipgloss.Style
	EntryMeta             lipgloss.Style
	EntryEmpty            lipgloss.Style
	LineNumber            lipgloss.Style
	LineNumberCurrent     lipgloss.Style
	BookmarkStyle         lipgloss.Style
)

// Status bar styles
var (
	StatusBarStyle     lipgloss.Style
	StatusBarMode      lipgloss.Style
	StatusBarSection   lipgloss.Style
	StatusBarHighlight lipgloss.Style
	StatusBarError     lipgloss.Style
)

// Modal styles
var (
	ModalStyle          lipgloss.Style
	ModalTitle          lipgloss.Style
	ModalOption         lipgloss.Style
	ModalOptionSelected lipgloss.Style
	ButtonActive        lipgloss.Style
	ButtonInactive      lipgloss.Style
	HelpSection         lipgloss.Style
	HelpKey             lipgloss.Style
	HelpDesc            lipgloss.Style
)

// regenerateStyles rebuilds all style variables based on current color values.
// Called when theme changes.
func regenerateStyles() {
	// Entry list styles
	EntryDir = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)

	EntryFile = lipgloss.NewStyle().
		Foreground(TextPrimary)

	EntryOther = lipgloss.NewStyle().
		Foreground(ColorWarning)

	EntrySelected = lipgloss.NewStyle().
		Foreground(BgPrimary).
		Background(ColorFocus).
		Bold(true)

	EntrySelectedInactive = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	EntryMeta = lipgloss.NewStyle().
		Foreground(TextMuted)

	EntryEmpty = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	LineNumber = lipgloss.NewStyle().
		Foreground(TextDim).
		Align(lipgloss.Right)

	LineNumberCurrent = lipgloss.NewStyle().
		Foreground(ColorWarning).
		Bold(true)

	BookmarkStyle = lipgloss.NewStyle().
		Foreground(ColorAccent)

	// Status bar styles
	StatusBarStyle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Padding(0, 1)

	StatusBarMode = lipgloss.NewStyle().
		Foreground(BgPrimary).
		Background(ColorPrimary).
		Bold(true).
		Padding(0, 1)

	StatusBarSection = lipgloss.NewStyle().
		Foreground(TextMuted).
		Padding(0, 1)

	StatusBarHighlight = lipgloss.NewStyle().
		Foreground(ColorWarning).
		Bold(true)

	StatusBarError = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true).
		Padding(0, 1)

	// Modal styles
	ModalStyle = lipgloss.NewStyle().
		Border(DoubleBorder).
		BorderForeground(ColorPrimary).
		Background(BgModal).
		Padding(0, 1)

	ModalTitle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)

	ModalOption = lipgloss.NewStyle().
		Foreground(TextPrimary)

	ModalOptionSelected = lipgloss.NewStyle().
		Foreground(BgPrimary).
		Background(ColorFocus).
		Bold(true)

	ButtonActive = lipgloss.NewStyle().
		Foreground(BgPrimary).
		Background(ColorSuccess).
		Bold(true).
		Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
		Foreground(TextMuted).
		Padding(0, 2)

	HelpSection = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	HelpKey = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
		Foreground(TextSecondary)
}

// FormatScrollIndicator returns a formatted scroll percentage indicator.
// Returns empty string if percent is 100 (at bottom) or invalid.
func FormatScrollIndicator(percent float64) string {
	if percent >= 99.9 || percent < 0 {
		return ""
	}
	return fmt.Sprintf("%d%%", int(percent))
}

// PanelTitleOptions configures what to show in panel borders.
type PanelTitleOptions struct {
	Title         string  // Main title text, usually the pane's directory
	Icon          string  // Drawn before the title in IconStyle
	IconStyle     lipgloss.Style
	ScrollPercent float64 // Scroll position (0-100), negative to hide
	BottomHints   string  // Text for the bottom border (e.g. "3/17")
	Accent        bool    // Use the accent color for an unfocused border
}

// RenderPanelWithTitle renders content in a panel with title embedded in the border.
func RenderPanelWithTitle(content string, opts PanelTitleOptions, width, height int, focused bool) string {
	if width < 4 || height < 2 {
		return ""
	}

	// Choose border style and colors based on focus
	var border lipgloss.Border
	var borderColor lipgloss.Color
	var titleColor lipgloss.Color

	switch {
	case focused:
		border = NeonBorder
		borderColor = ColorPrimary
		titleColor = ColorSecondary
	case opts.Accent:
		border = GlowBorder
		borderColor = ColorAccent
		titleColor = ColorAccent
	default:
		border = GlowBorder
		borderColor = TextDim
		titleColor = TextDim
	}

	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Foreground(titleColor).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(TextMuted)
	scrollStyle := lipgloss.NewStyle().Foreground(TextDim)

	// Calculate inner width (minus 2 for side borders)
	innerWidth := width - 2

	topBorder := buildTopBorder(border, borderStyle, titleStyle, scrollStyle, opts, innerWidth)
	bottomBorder := buildBottomBorder(border, borderStyle, hintStyle, opts.BottomHints, innerWidth)

	contentHeight := max(height-2, 0)
	contentLines := strings.Split(content, "\n")
	renderedLines := make([]string, contentHeight)

	// Style for truncating lines with ANSI codes
	lineStyle := lipgloss.NewStyle().MaxWidth(innerWidth)

	for i := range contentHeight {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		line = lineStyle.Render(line)
		if lineLen := lipgloss.Width(line); lineLen < innerWidth {
			line += strings.Repeat(" ", innerWidth-lineLen)
		}
		renderedLines[i] = borderStyle.Render(border.Left) + line + borderStyle.Render(border.Right)
	}

	var result strings.Builder
	result.WriteString(topBorder)
	result.WriteString("\n")
	if contentHeight > 0 {
		result.WriteString(strings.Join(renderedLines, "\n"))
		result.WriteString("\n")
	}
	result.WriteString(bottomBorder)

	return result.String()
}

// buildTopBorder creates the top border with the title and an optional scroll indicator.
func buildTopBorder(border lipgloss.Border, borderStyle, titleStyle, scrollStyle lipgloss.Style, opts PanelTitleOptions, innerWidth int) string {
	leftFiller := min(2, innerWidth)

	// Long titles keep their tail, which is the interesting part of a path
	room := innerWidth - leftFiller - 4
	if opts.Icon != "" {
		room -= lipgloss.Width(opts.Icon) + 1
	}
	title := opts.Title
	if room <= 0 {
		title = ""
	} else if lipgloss.Width(title) > room {
		title = "…" + tail(title, room-1)
	}

	var titleSegment string
	if title != "" {
		icon := ""
		if opts.Icon != "" {
			icon = opts.IconStyle.Render(opts.Icon) + " "
		}
		titleSegment = "[ " + icon + titleStyle.Render(title) + " ]"
	}

	var scrollSegment string
	if text := FormatScrollIndicator(opts.ScrollPercent); text != "" {
		scrollSegment = "[ " + scrollStyle.Render(text) + " ]"
	}

	titleWidth := lipgloss.Width(titleSegment)
	scrollWidth := lipgloss.Width(scrollSegment)
	if leftFiller+titleWidth+2*scrollWidth > innerWidth {
		scrollSegment, scrollWidth = "", 0
	}
	rightFiller := max(innerWidth-leftFiller-titleWidth-scrollWidth, 0)

	var result strings.Builder
	result.WriteString(borderStyle.Render(border.TopLeft))
	result.WriteString(borderStyle.Render(strings.Repeat(border.Top, leftFiller)))
	result.WriteString(titleSegment)
	if scrollSegment != "" {
		result.WriteString(borderStyle.Render(strings.Repeat(border.Top, rightFiller-scrollWidth)))
		result.WriteString(scrollSegment)
		result.WriteString(borderStyle.Render(strings.Repeat(border.Top, scrollWidth)))
	} else {
		result.WriteString(borderStyle.Render(strings.Repeat(border.Top, rightFiller)))
	}
	result.WriteString(borderStyle.Render(border.TopRight))

	return result.String()
}

// buildBottomBorder creates the bottom border with optional hints.
func buildBottomBorder(border lipgloss.Border, borderStyle, hintStyle lipgloss.Style, hints string, innerWidth int) string {
	hintSegment := ""
	if hints != "" {
		hintSegment = "[ " + hintStyle.Render(hints) + " ]"
	}
	hintWidth := lipgloss.Width(hintSegment)
	if hintWidth == 0 || hintWidth+2 > innerWidth {
		return borderStyle.Render(border.BottomLeft) +
			borderStyle.Render(strings.Repeat(border.Bottom, innerWidth)) +
			borderStyle.Render(border.BottomRight)
	}

	leftFiller := 2
	rightFiller := innerWidth - leftFiller - hintWidth

	var result strings.Builder
	result.WriteString(borderStyle.Render(border.BottomLeft))
	result.WriteString(borderStyle.Render(strings.Repeat(border.Bottom, leftFiller)))
	result.WriteString(hintSegment)
	result.WriteString(borderStyle.Render(strings.Repeat(border.Bottom, rightFiller)))
	result.WriteString(borderStyle.Render(border.BottomRight))

	return result.String()
}

// RenderModal draws a titled box for the mode overlays.
func RenderModal(title, body string, width int) string {
	content := ModalTitle.Render(title)
	if body != "" {
		content += "\n\n" + body
	}
	return ModalStyle.Width(max(width-2, 1)).Render(content)
}

// tail returns the last n runes of s.
func tail(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	return string(r[len(r)-n:])
}
