// Package scanner enumerates the files under the scan directories.
package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"github.com/mwhitfield/deadwood/pkg/config"
)

var bakRE = regexp.MustCompile(`(?i)\.bak(\d+)?$`)

// Scanner finds analyzable files in a set of directories.
type Scanner struct {
	allowed       map[string]bool
	includeHidden bool
	patterns      []string
	useGitignore  bool
}

// New creates a scanner from configuration.
func New(cfg *config.Config) *Scanner {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Scanner{
		allowed:       cfg.AllowedExtensions(),
		includeHidden: cfg.Scan.IncludeHidden,
		patterns:      cfg.Scan.Exclude.Patterns,
		useGitignore:  cfg.Scan.Exclude.Gitignore,
	}
}

// Collect walks every scan directory and returns the matching files as
// canonical absolute paths, deduplicated and sorted. A nonexistent scan
// directory is a configuration error and fails the whole run.
func (s *Scanner) Collect(root string, dirs []string) ([]string, error) {
	return s.collect(root, dirs, false)
}

// CollectWithBackups is Collect plus files already moved aside as *.bak,
// matched on their pre-backup extension.
func (s *Scanner) CollectWithBackups(root string, dirs []string) ([]string, error) {
	return s.collect(root, dirs, true)
}

func (s *Scanner) collect(root string, dirs []string, includeBaks bool) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	matcher := s.buildMatcher(absRoot)

	seen := make(map[string]bool)
	var files []string

	for _, dir := range dirs {
		base := dir
		if !filepath.IsAbs(base) {
			base = filepath.Join(absRoot, base)
		}
		base = filepath.Clean(base)

		info, err := os.Stat(base)
		if err != nil || !info.IsDir() {
			return nil, fmt.Errorf("scan directory does not exist: %s", base)
		}

		walkErr := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Unreadable entries contribute nothing.
				return nil
			}
			if path == base {
				return nil
			}

			name := d.Name()
			hidden := strings.HasPrefix(name, ".")

			if d.IsDir() {
				if hidden && !s.includeHidden {
					return filepath.SkipDir
				}
				if matcher != nil && matcher.Match(relParts(absRoot, path), true) {
					return filepath.SkipDir
				}
				return nil
			}

			if hidden && !s.includeHidden {
				return nil
			}
			if matcher != nil && matcher.Match(relParts(absRoot, path), false) {
				return nil
			}
			ext := strings.ToLower(filepath.Ext(path))
			if bakRE.MatchString(name) {
				if !includeBaks {
					return nil
				}
				ext = strings.ToLower(filepath.Ext(bakRE.ReplaceAllString(name, "")))
			}
			if !s.allowed[ext] {
				return nil
			}

			path = filepath.Clean(path)
			if !seen[path] {
				seen[path] = true
				files = append(files, path)
			}
			return nil
		})
		if walkErr != nil {
			return nil, walkErr
		}
	}

	sort.Strings(files)
	return files, nil
}

// buildMatcher assembles a gitignore matcher from config patterns and,
// optionally, the root .gitignore file.
func (s *Scanner) buildMatcher(root string) gitignore.Matcher {
	var patterns []gitignore.Pattern
	for _, p := range s.patterns {
		patterns = append(patterns, gitignore.ParsePattern(p, nil))
	}

	if s.useGitignore {
		if data, err := os.ReadFile(filepath.Join(root, ".gitignore")); err == nil {
			for _, line := range strings.Split(string(data), "\n") {
				line = strings.TrimSpace(line)
				if line == "" || strings.HasPrefix(line, "#") {
					continue
				}
				patterns = append(patterns, gitignore.ParsePattern(line, nil))
			}
		}
	}

	if len(patterns) == 0 {
		return nil
	}
	return gitignore.NewMatcher(patterns)
}

func relParts(root, path string) []string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	return strings.Split(rel, string(filepath.Separator))
}
