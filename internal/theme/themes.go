package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Available themes, keyed by the name written in the config file
var themes = map[string]func() *Theme{
	"midnight-miami":  MidnightMiamiTheme,
	"lobster-boy":     LobsterBoyTheme,
	"vampire-weekend": VampireWeekendTheme,
}

func init() {
	ApplyTheme(DefaultTheme())
}

// Names returns the names accepted by ByName.
func Names() []string {
	return []string{"midnight-miami", "lobster-boy", "vampire-weekend"}
}

// ByName returns the named theme. Unknown or empty names return the default
// theme and false.
func ByName(name string) (*Theme, bool) {
	build, ok := themes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return DefaultTheme(), false
	}
	return build(), true
}

// ApplyTheme sets all the global color variables to match the theme.
func ApplyTheme(t *Theme) {
	ColorPrimary = t.Colors.Primary
	ColorSecondary = t.Colors.Secondary
	ColorFocus = t.Colors.Focus
	ColorSuccess = t.Colors.Success
	ColorError = t.Colors.Error
	ColorWarning = t.Colors.Warning
	ColorAccent = t.Colors.Accent

	BgPrimary = t.Colors.BgPrimary
	BgModal = t.Colors.BgModal

	TextPrimary = t.Colors.TextPrimary
	TextSecondary = t.Colors.TextSecondary
	TextMuted = t.Colors.TextMuted
	TextDim = t.Colors.TextDim

	regenerateStyles()
}

// MidnightMiamiTheme - Neon pink and cyan on deep purple
func MidnightMiamiTheme() *Theme {
	return &Theme{
		Name:         "midnight-miami",
		UseNerdFonts: true,
		Colors: ColorPalette{
			Primary:       MagentaBlaze,
			Secondary:     CyberCyan,
			Focus:         HotPink,
			Success:       MatrixGreen,
			Error:         NeonRed,
			Warning:       ElectricYellow,
			Accent:        LaserPurple,
			BgPrimary:     VoidPurple,
			BgModal:       DeepSpace,
			TextPrimary:   PureWhite,
			TextSecondary: Silver,
			TextMuted:     MutedLavender,
			TextDim:       DimPurple,
		},
	}
}

// LobsterBoyTheme - Fresh from the seafood shack
func LobsterBoyTheme() *Theme {
	return &Theme{
		Name:         "lobster-boy",
		UseNerdFonts: true,
		Colors: ColorPalette{
			Primary:       lipgloss.Color("#E63946"), // Cooked lobster
			Secondary:     lipgloss.Color("#5CC8E4"), // Bright ocean
			Focus:         lipgloss.Color("#F4A261"), // Melted butter
			Success:       lipgloss.Color("#2A9D8F"), // Seaweed
			Error:         lipgloss.Color("#9B2226"), // Old bay stain
			Warning:       lipgloss.Color("#E9C46A"), // Lemon wedge
			Accent:        lipgloss.Color("#7EC8E3"), // Seafoam
			BgPrimary:     lipgloss.Color("#0A1628"), // Midnight ocean
			BgModal:       lipgloss.Color("#132238"), // Deep sea
			TextPrimary:   lipgloss.Color("#F1FAEE"), // Sea foam white
			TextSecondary: lipgloss.Color("#A8DADC"), // Pale aqua
			TextMuted:     lipgloss.Color("#6B8E9F"), // Foggy coast
			TextDim:       lipgloss.Color("#3D5A6C"), // Stormy sea
		},
	}
}

// VampireWeekendTheme - Gothic but make it indie
func VampireWeekendTheme() *Theme {
	return &Theme{
		Name:         "vampire-weekend",
		UseNerdFonts: true,
		Colors: ColorPalette{
			Primary:       lipgloss.Color("#8B0000"), // Fresh blood
			Secondary:     lipgloss.Color("#C0C0C0"), // Moonlight silver
			Focus:         lipgloss.Color("#DC143C"), // Crimson kiss
			Success:       lipgloss.Color("#228B22"), // Graveyard moss
			Error:         lipgloss.Color("#FF0000"), // Arterial spray
			Warning:       lipgloss.Color("#FFD700"), // Candlelight
			Accent:        lipgloss.Color("#9932CC"), // Dark orchid
			BgPrimary:     lipgloss.Color("#0D0D0D"), // Coffin interior
			BgModal:       lipgloss.Color("#1A1A1A"), // Castle stone
			TextPrimary:   lipgloss.Color("#F5F5F5"), // Pale complexion
			TextSecondary: lipgloss.Color("#B8B8B8"), // Aged parchment
			TextMuted:     lipgloss.Color("#6E6E6E"), // Dusty tome
			TextDim:       lipgloss.Color("#3D3D3D"), // Shadow
		},
	}
}
