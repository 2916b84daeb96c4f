// Package vault models notes as files in a directory tree and performs the
// rename that gives a note its generated title.
package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Document references a note file by path. The file itself is not owned by
// this package; it is read and renamed in place.
type Document struct {
	Path string
}

// Read returns the document's full text content.
func (d Document) Read() (string, error) {
	data, err := os.ReadFile(d.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", d.Path, err)
	}
	return string(data), nil
}

// Ext returns the document's file extension, including the dot.
func (d Document) Ext() string {
	return filepath.Ext(d.Path)
}

// Base returns the document's base name without the extension.
func (d Document) Base() string {
	base := filepath.Base(d.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// TargetPath computes the rename destination for the given title: the
// original directory and extension are preserved, only the base name changes.
func (d Document) TargetPath(title string) string {
	return filepath.Join(filepath.Dir(d.Path), title+d.Ext())
}

// RenameTo renames the document to carry the given (already sanitized) title
// and returns the new path. Renaming to the current path is a no-op success.
// An existing file at the destination is an error; os.Rename would silently
// replace it.
func (d *Document) RenameTo(title string) (string, error) {
	target := d.TargetPath(title)
	if filepath.Clean(target) == filepath.Clean(d.Path) {
		return d.Path, nil
	}

	if _, err := os.Stat(target); err == nil {
		return "", fmt.Errorf("destination already exists: %s", target)
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to check destination %s: %w", target, err)
	}

	if err := os.Rename(d.Path, target); err != nil {
		return "", fmt.Errorf("failed to rename %s: %w", d.Path, err)
	}

	d.Path = target
	return target, nil
}
