// Package discovery locates CMake files eligible for documentation
// generation.
package discovery

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
)

const cmakeExt = ".cmake"

// defaultSkipDirs contains directory names excluded from discovery.
var defaultSkipDirs = map[string]bool{
	".git":  true,
	"build": true,
	"dist":  true,
}

// Options controls directory discovery.
type Options struct {
	Recursive bool
	SkipDirs  []string // extra directory names to exclude
}

// Find returns the files to document for one input argument. A file path
// returns itself; a directory is searched for *.cmake files (extension
// matched case-insensitively), descending into subdirectories only when
// Recursive is set. Returned paths are sorted within each directory by
// the walk order, which is deterministic.
func Find(path string, opts Options) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() && !info.IsDir() {
		return nil, fmt.Errorf("%s: unsupported special file", path)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	skip := make(map[string]bool, len(defaultSkipDirs)+len(opts.SkipDirs))
	for name := range defaultSkipDirs {
		skip[name] = true
	}
	for _, name := range opts.SkipDirs {
		skip[name] = true
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Printf("discovery: skipping %q: %v", p, err)
			return nil
		}
		if d.IsDir() {
			if p == path {
				return nil
			}
			if skip[d.Name()] || !opts.Recursive {
				return filepath.SkipDir
			}
			return nil
		}
		if IsCMakeFile(p) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", path, err)
	}
	return files, nil
}

// IsCMakeFile reports whether the path has a .cmake extension, ignoring
// case.
func IsCMakeFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), cmakeExt)
}
