// Package entry reads directory listings and formats entry metadata.
package entry

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
)

// Kind classifies a directory entry.
type Kind int

const (
	File Kind = iota
	Directory
	Other
)

// Entry is one item of a directory listing.
type Entry struct {
	Name    string
	Path    string
	Kind    Kind
	Size    int64     // File size in bytes
	ModTime time.Time // Zero when unknown
}

// Stat builds an entry for a single path. Symlinks to directories count
// as directories.
func Stat(path string) (Entry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Entry{}, err
	}
	return fromInfo(filepath.Base(path), path, info), nil
}

// ReadDir lists path with directories first, then in natural order.
// Entries that cannot be stat'ed are skipped.
func ReadDir(path string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		childPath := filepath.Join(path, de.Name())

		info, err := de.Info()
		if err != nil {
			continue // Skip files we can't stat
		}
		if info.Mode()&fs.ModeSymlink != 0 {
			if target, err := os.Stat(childPath); err == nil {
				info = target
			}
		}

		entries = append(entries, fromInfo(de.Name(), childPath, info))
	}

	Sort(entries)
	return entries, nil
}

func fromInfo(name, path string, info fs.FileInfo) Entry {
	e := Entry{
		Name:    name,
		Path:    path,
		ModTime: info.ModTime(),
	}
	switch {
	case info.IsDir():
		e.Kind = Directory
	case info.Mode().IsRegular():
		e.Kind = File
		e.Size = info.Size()
	default:
		e.Kind = Other
	}
	return e
}

// Sort orders entries with directories first, then by natural name order.
func Sort(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.IsDir() != b.IsDir() {
			return a.IsDir() // Directories come first
		}
		if c := CompareNatural(a.Name, b.Name); c != 0 {
			return c < 0
		}
		return a.Name < b.Name
	})
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Kind == Directory
}

// IsHidden returns true for dot files.
func (e Entry) IsHidden() bool {
	return strings.HasPrefix(e.Name, ".")
}

// Extension returns the lowercased file extension (empty for directories).
func (e Entry) Extension() string {
	if e.IsDir() {
		return ""
	}
	return strings.ToLower(filepath.Ext(e.Name))
}

// SizeString returns a human readable size, or "-" for non-files.
func (e Entry) SizeString() string {
	if e.Kind != File {
		return "-"
	}
	return humanize.Bytes(uint64(e.Size))
}

// ModString returns the modification time as a relative phrase.
func (e Entry) ModString() string {
	if e.ModTime.IsZero() {
		return ""
	}
	return humanize.Time(e.ModTime)
}

// Truncate shortens s to at most width terminal cells, ending in an ellipsis.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// PadRight fills s with spaces up to width terminal cells.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}
