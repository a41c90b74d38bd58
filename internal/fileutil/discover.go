// Package fileutil provides the filesystem plumbing shared by the commands:
// input discovery, transparent decompression, and file copies.
package fileutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// inventoryExts are the recognized inventory filename endings.
var inventoryExts = []string{".json", ".json.xz", ".json.gz"}

// IsInventoryName reports whether name ends in a recognized extension.
func IsInventoryName(name string) bool {
	for _, ext := range inventoryExts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// CollectJSON expands paths into a sorted, deduplicated list of inventory
// files. Directory arguments are scanned for recognized names, descending
// into subdirectories only when recursive is set. Explicit files with
// unrecognized names and paths that cannot be examined are skipped.
func CollectJSON(paths []string, recursive bool) []string {
	seen := make(map[string]bool)
	var files []string

	add := func(path string) {
		if seen[path] {
			return
		}
		seen[path] = true
		files = append(files, path)
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}

		if !info.IsDir() {
			if IsInventoryName(filepath.Base(path)) {
				add(path)
			}
			continue
		}

		if recursive {
			_ = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
				if err != nil || d.IsDir() {
					return nil
				}
				if IsInventoryName(d.Name()) {
					add(p)
				}
				return nil
			})
			continue
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() || !IsInventoryName(entry.Name()) {
				continue
			}
			add(filepath.Join(path, entry.Name()))
		}
	}

	sort.Strings(files)
	return files
}

// CompressionExt returns the trailing compression extension of name, or ""
// for plain files.
func CompressionExt(name string) string {
	switch {
	case strings.HasSuffix(name, ".xz"):
		return ".xz"
	case strings.HasSuffix(name, ".gz"):
		return ".gz"
	}
	return ""
}

// OutputName derives the plain-JSON output filename for an input file name:
// the compression extension is dropped, and suffix, when set, is inserted
// before the final .json.
func OutputName(name, suffix string) string {
	base := strings.TrimSuffix(name, CompressionExt(name))
	if suffix == "" {
		return base
	}
	return strings.TrimSuffix(base, ".json") + suffix + ".json"
}
