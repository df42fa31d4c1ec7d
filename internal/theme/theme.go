package theme

import "github.com/charmbracelet/lipgloss"

// Theme holds all visual configuration for the application.
type Theme struct {
	// Name of the theme, as written in the config file
	Name string

	// Color palette
	Colors ColorPalette

	// Whether to use Nerd Font icons
	UseNerdFonts bool
}

// ColorPalette holds all color definitions.
type ColorPalette struct {
	// Accent colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Focus     lipgloss.Color
	Success   lipgloss.Color
	Error     lipgloss.Color
	Warning   lipgloss.Color
	Accent    lipgloss.Color

	// Background colors
	BgPrimary lipgloss.Color
	BgModal   lipgloss.Color

	// Text colors
	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	TextMuted     lipgloss.Color
	TextDim       lipgloss.Color
}

// DefaultTheme returns the default theme.
func DefaultTheme() *Theme {
	return MidnightMiamiTheme()
}

// GetFileIcon returns the icon for a file, respecting the UseNerdFonts setting.
func (t *Theme) GetFileIcon(ext string) string {
	if !t.UseNerdFonts {
		return IconFilePlain
	}
	return GetFileIcon(ext)
}

// GetDirIcon returns the icon for a directory, respecting the UseNerdFonts setting.
func (t *Theme) GetDirIcon(name string) string {
	if !t.UseNerdFonts {
		return IconDirPlain
	}
	if icon := GetDirIcon(name); icon != "" {
		return icon
	}
	return IconDir
}

// GetOtherIcon returns the icon for sockets, devices and broken links.
func (t *Theme) GetOtherIcon() string {
	if !t.UseNerdFonts {
		return IconOtherPlain
	}
	return IconOther
}
