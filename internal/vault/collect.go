package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultExtensions are the note types the batch command picks up when
// walking a directory.
var DefaultExtensions = map[string]bool{
	".md":   true,
	".html": true,
	".htm":  true,
}

// Collect expands a mix of file and directory arguments into documents, in
// input order. Directories are walked recursively; hidden files and hidden
// directories (leading '.') are skipped, as are files whose extension is not
// in supported. Explicitly named files are always included.
func Collect(paths []string, supported map[string]bool) ([]Document, error) {
	if supported == nil {
		supported = DefaultExtensions
	}

	var docs []Document
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("failed to access %s: %w", p, err)
		}

		if !info.IsDir() {
			docs = append(docs, Document{Path: p})
			continue
		}

		err = filepath.Walk(p, func(path string, fi os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			name := filepath.Base(path)
			if fi.IsDir() {
				if path != p && strings.HasPrefix(name, ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.HasPrefix(name, ".") {
				return nil
			}
			if !supported[filepath.Ext(path)] {
				return nil
			}
			docs = append(docs, Document{Path: path})
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("error walking the path %q: %w", p, err)
		}
	}

	return docs, nil
}
