// Package fileops creates, renames, removes and opens filesystem entries.
package fileops

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
)

var ErrEmptyName = errors.New("name must not be empty")

// Add creates name inside dir. A name with an extension becomes an empty
// file; anything else becomes a directory. Missing parents are created.
// An existing file is left untouched and reported with fs.ErrExist.
func Add(dir, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}

	target := filepath.Join(dir, name)
	if filepath.Ext(target) == "" {
		if err := os.MkdirAll(target, 0755); err != nil {
			return "", err
		}
		return target, nil
	}

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return "", err
	}
	f, err := os.OpenFile(target, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", err
	}
	return target, f.Close()
}

// Rename moves dir/original to dir/name, creating intermediate directories.
func Rename(dir, original, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}

	from := filepath.Join(dir, original)
	to := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(to), 0755); err != nil {
		return "", err
	}
	if err := os.Rename(from, to); err != nil {
		return "", err
	}
	return to, nil
}

// Remove deletes path; directories are removed with their contents.
func Remove(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return os.RemoveAll(path)
	}
	return os.Remove(path)
}

// Yank copies path to the system clipboard.
func Yank(path string) error {
	if err := clipboard.WriteAll(path); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
