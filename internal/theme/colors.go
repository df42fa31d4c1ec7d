package theme

import "github.com/charmbracelet/lipgloss"

// Neon Core Colors - Primary accent colors for the default theme
var (
	MagentaBlaze   = lipgloss.Color("#FF00FF") // Primary accent
	CyberCyan      = lipgloss.Color("#00FFFF") // Secondary accent, directories
	HotPink        = lipgloss.Color("#FF10F0") // Selections/Focus
	MatrixGreen    = lipgloss.Color("#39FF14") // Success, confirm buttons
	NeonRed        = lipgloss.Color("#FF3131") // Errors, destructive actions
	ElectricYellow = lipgloss.Color("#FFFF00") // Pending precommand
	LaserPurple    = lipgloss.Color("#7B68EE") // Bookmarks pane
)

// Background Colors
var (
	VoidPurple = lipgloss.Color("#0D0221") // Primary background
	DeepSpace  = lipgloss.Color("#1A0A2E") // Modal backgrounds
)

// Text Colors - Text hierarchy from bright to dim
var (
	PureWhite     = lipgloss.Color("#FFFFFF") // Primary text
	Silver        = lipgloss.Color("#E0E0E0") // Secondary text
	MutedLavender = lipgloss.Color("#888899") // Metadata columns
	DimPurple     = lipgloss.Color("#4A4A6A") // Line numbers, inactive borders
)

// Semantic Color Aliases - Use these in components for consistency
var (
	ColorPrimary   = MagentaBlaze
	ColorSecondary = CyberCyan
	ColorFocus     = HotPink
	ColorSuccess   = MatrixGreen
	ColorError     = NeonRed
	ColorWarning   = ElectricYellow
	ColorAccent    = LaserPurple

	BgPrimary = VoidPurple
	BgModal   = DeepSpace

	TextPrimary   = PureWhite
	TextSecondary = Silver
	TextMuted     = MutedLavender
	TextDim       = DimPurple
)
