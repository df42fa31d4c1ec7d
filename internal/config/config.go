// Package config loads and saves the TOML configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	configDirName  = ".config"
	appDirName     = "arfima"
	configFileName = "config.toml"

	// DefaultHistorySize is the command history capacity on first run.
	DefaultHistorySize = 50
)

var (
	ErrLoad  = errors.New("failed to load config")
	ErrParse = errors.New("failed to parse config")
	ErrSave  = errors.New("failed to save config")
)

// Config represents the persisted user configuration.
type Config struct {
	Number        NumberConfig        `toml:"number"`
	History       HistoryConfig       `toml:"history"`
	CommonEntries CommonEntriesConfig `toml:"common_entries"`
	UI            UIConfig            `toml:"ui"`
}

// NumberConfig controls line numbers in directory panes.
type NumberConfig struct {
	Active   bool `toml:"active"`
	Relative bool `toml:"relative"`
}

// HistoryConfig controls the command line history.
type HistoryConfig struct {
	Size int `toml:"size"`
}

// CommonEntriesConfig controls what the bookmarks pane lists.
type CommonEntriesConfig struct {
	// UserDirs adds the home directory and the usual user folders
	UserDirs bool `toml:"user_dirs"`
	// OtherPaths are extra bookmarks; a leading ~/ is expanded on use
	OtherPaths []string `toml:"other_paths"`
}

// UIConfig holds cosmetic settings.
type UIConfig struct {
	Theme     string `toml:"theme,omitempty"`
	NerdFonts bool   `toml:"nerd_fonts"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		History:       HistoryConfig{Size: DefaultHistorySize},
		CommonEntries: CommonEntriesConfig{UserDirs: true},
		UI:            UIConfig{NerdFonts: true},
	}
}

// DefaultPath returns ~/.config/arfima/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, appDirName, configFileName), nil
}

// Load reads the configuration at path on top of the defaults.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return Default(), fmt.Errorf("%w: %w", ErrParse, err)
	}

	if cfg.History.Size < 1 {
		cfg.History.Size = 1
	}
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	return nil
}

// Bookmarks returns the configured extra paths with ~ expanded.
func (c *Config) Bookmarks() []string {
	paths := make([]string, 0, len(c.CommonEntries.OtherPaths))
	for _, p := range c.CommonEntries.OtherPaths {
		paths = append(paths, ExpandHome(p))
	}
	return paths
}

// ExpandHome replaces a leading ~/ with the user's home directory.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}
	return path
}

var userDirNames = []string{
	"Desktop",
	"Documents",
	"Downloads",
	"Music",
	"Pictures",
	"Public",
	"Templates",
	"Videos",
}

// UserDirs returns the home directory followed by the usual user folders
// that exist on this machine.
func UserDirs() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	dirs := []string{home}
	for _, name := range userDirNames {
		p := filepath.Join(home, name)
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			dirs = append(dirs, p)
		}
	}
	return dirs
}
