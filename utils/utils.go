package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
)

// EnsureDir makes sure a directory exists
func EnsureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0755)
}

func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// ExpandGlobs expands patterns including negations.
// Example:
//
//	"./models/*.go", "!./models/skip.go"
func ExpandGlobs(patterns ...string) ([]string, error) {
	include := []string{}
	exclude := []string{}

	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if after, ok := strings.CutPrefix(p, "!"); ok {
			exclude = append(exclude, after)
		} else {
			include = append(include, p)
		}
	}

	results := map[string]struct{}{}

	for _, pattern := range include {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			results[m] = struct{}{}
		}
	}

	for _, pattern := range exclude {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			delete(results, m)
		}
	}

	out := make([]string, 0, len(results))
	for k := range results {
		out = append(out, k)
	}

	return out, nil
}

// UniqueDirs converts file paths to unique directories
func UniqueDirs(files []string) []string {
	dirs := map[string]struct{}{}
	for _, f := range files {
		info, err := os.Stat(f)
		if err != nil {
			continue
		}
		dir := f
		if !info.IsDir() {
			dir = filepath.Dir(f)
		}
		dirs[dir] = struct{}{}
	}

	out := make([]string, 0, len(dirs))
	for d := range dirs {
		out = append(out, d)
	}
	return out
}

// loadMode is enough to read file comments; no type checking is needed
const loadMode = packages.NeedName | packages.NeedFiles | packages.NeedSyntax

// LoadPackages loads Go packages relative to dir. Patterns are either import
// paths ("./...", "example.com/pkg") or file globs ("./models/*.go").
func LoadPackages(dir string, patterns ...string) ([]*packages.Package, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = wd
	}
	if allPatternsAreImportPaths(patterns) {
		return packages.Load(&packages.Config{Mode: loadMode, Dir: dir}, patterns...)
	}
	return loadPackagesByFilePattern(dir, patterns...)
}

// allPatternsAreImportPaths checks if all patterns look like Go import paths
func allPatternsAreImportPaths(patterns []string) bool {
	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if after, ok := strings.CutPrefix(pattern, "!"); ok {
			pattern = after
		}
		// "./..." is an import path pattern; "./models/*.go" is a file glob
		if strings.Contains(pattern, ".go") || strings.Contains(pattern, "*") {
			return false
		}
	}
	return true
}

func loadPackagesByFilePattern(dir string, patterns ...string) ([]*packages.Package, error) {
	abs := make([]string, len(patterns))
	for i, p := range patterns {
		neg := strings.HasPrefix(p, "!")
		p = strings.TrimPrefix(p, "!")
		if !filepath.IsAbs(p) {
			p = filepath.Join(dir, p)
		}
		if neg {
			p = "!" + p
		}
		abs[i] = p
	}

	files, err := ExpandGlobs(abs...)
	if err != nil {
		return nil, err
	}

	dirs := UniqueDirs(files)
	if len(dirs) == 0 {
		return nil, fmt.Errorf("no directories found from patterns %v", patterns)
	}

	return packages.Load(&packages.Config{Mode: loadMode, Dir: dir}, dirs...)
}
