package conffile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	cerrors "github.com/confcrypt/confcrypt/internal/errors"
)

// LoadFile reads and parses a confcrypt file from disk.
func LoadFile(path string) (FileState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", cerrors.ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to read confcrypt file at %s: %w", path, err)
	}
	state, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return state, nil
}

// WriteFile renders the state and writes it to disk, one element per line
// with a trailing newline.
func WriteFile(path string, state FileState) error {
	lines := Render(state)
	content := strings.Join(lines, "\n")
	if content != "" {
		content += "\n"
	}
	// #nosec G306 -- values are already encrypted; the file is meant to be committed.
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write confcrypt file at %s: %w", path, err)
	}
	return nil
}

// ResolveFiles takes user-provided paths, directories, or globs and returns
// the matching .econf files, deduplicated, in first-seen order.
func ResolveFiles(patterns []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		resolved, err := resolvePattern(pattern)
		if err != nil {
			return nil, err
		}
		for _, f := range resolved {
			if !seen[f] {
				seen[f] = true
				files = append(files, f)
			}
		}
	}

	if len(files) == 0 {
		return nil, cerrors.ErrNoFilesFound
	}
	return files, nil
}

func resolvePattern(pattern string) ([]string, error) {
	// Directories are searched recursively.
	info, err := os.Stat(pattern)
	if err == nil && info.IsDir() {
		return findFilesInDir(pattern)
	}

	// Use doublestar for ** support.
	if strings.ContainsAny(pattern, "*?[") {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		var filtered []string
		for _, m := range matches {
			info, err := os.Stat(m)
			if err != nil || info.IsDir() {
				continue
			}
			if isConfFile(m) {
				filtered = append(filtered, m)
			}
		}
		return filtered, nil
	}

	// Literal file path.
	if _, err := os.Stat(pattern); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", cerrors.ErrFileNotFound, pattern)
	}
	if !isConfFile(pattern) {
		return nil, fmt.Errorf("file is not a confcrypt file: %s", pattern)
	}
	return []string{pattern}, nil
}

func findFilesInDir(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if isConfFile(path) {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

func isConfFile(path string) bool {
	return strings.HasSuffix(filepath.Base(path), ".econf")
}
