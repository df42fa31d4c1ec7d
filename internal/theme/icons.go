package theme

// Plain icons used when Nerd Fonts are disabled
const (
	IconDirPlain   = "▸"
	IconFilePlain  = " "
	IconOtherPlain = "?"
)

// Nerd Font icons without a more specific match
const (
	IconDir   = "\uf07b"
	IconOther = "\uf0c1"
)

// Bookmark marks the bookmarks pane title.
const Bookmark = "★"

// FileIcons maps file extensions to Nerd Font icons
var FileIcons = map[string]string{
	// Go
	".go":  "󰟓",
	".mod": "󰏗",
	".sum": "󰏗",

	// Web
	".js":   "",
	".ts":   "",
	".tsx":  "",
	".jsx":  "",
	".html": "",
	".css":  "",
	".scss": "",
	".vue":  "",
	".svelte": "",

	// Data
	".json": "",
	".yaml": "",
	".yml":  "",
	".toml": "",
	".xml":  "",

	// Documentation
	".md":       "󰍔",
	".mdx":      "󰍔",
	".txt":      "",
	".rst":      "",

	// Config
	".env":        "󰈙",
	".gitignore":  "",
	".dockerignore": "",

	// Shell
	".sh":   "",
	".bash": "",
	".zsh":  "",
	".fish": "",

	// Python
	".py":  "",
	".pyi": "",
	".pyc": "",

	// Rust
	".rs": "",

	// C/C++
	".c":   "",
	".h":   "",
	".cpp": "",
	".hpp": "",

	// Java/Kotlin
	".java": "",
	".kt":   "",

	// Ruby
	".rb":   "",
	".rake": "",

	// Docker
	"Dockerfile": "",
	".dockerfile": "",

	// Git
	".git": "",

	// Images
	".png":  "",
	".jpg":  "",
	".jpeg": "",
	".gif":  "",
	".svg":  "",
	".ico":  "",

	// Archives
	".zip": "",
	".tar": "",
	".gz":  "",

	// Default
	"": "",
}

// DirIcons maps directory names to Nerd Font icons
var DirIcons = map[string]string{
	"Desktop":   "\uf108", // Monitor
	"Documents": "\uf02d", // Book
	"Downloads": "\uf019", // Download arrow
	"Music":     "\uf001", // Note
	"Pictures":  "\uf03e", // Picture
	"Public":    "\uf0ac", // Globe
	"Templates": "\uf15c", // Page
	"Videos":    "\uf03d", // Camera
	".git":      "\ue702", // Git icon
	".config":   "\uf013", // Cog
	"src":       "\uf07c", // Folder open
	"bin":       "\uf489", // Binary
}

// GetFileIcon returns the appropriate icon for a file extension.
func GetFileIcon(ext string) string {
	if icon, ok := FileIcons[ext]; ok {
		return icon
	}
	return FileIcons[""]
}

// GetDirIcon returns the appropriate icon for a directory name.
func GetDirIcon(name string) string {
	if icon, ok := DirIcons[name]; ok {
		return icon
	}
	return ""
}
