package reach

import (
	"os"
	"path/filepath"

	"github.com/mwhitfield/deadwood/pkg/config"
	"github.com/mwhitfield/deadwood/pkg/lang"
)

// SelectRoots produces the entry-point seed for reachability.
//
// Explicit entries win: each is resolved against the project root and kept
// only if it exists on disk (a missing entry is dropped, not fatal). With no
// surviving entries, the conventional candidate paths are probed, plus an
// index.html/index.htm probe in each scan directory. If nothing matches, the
// first MarkupFallback discovered markup files seed the set — a documented
// heuristic that may under- or over-approximate the true entry points.
func SelectRoots(root string, scanDirs, files []string, cfg config.RootsConfig) []string {
	if len(cfg.Entries) > 0 {
		if roots := existingEntries(root, cfg.Entries); len(roots) > 0 {
			return roots
		}
	}

	if roots := conventionalRoots(root, scanDirs, cfg.Candidates); len(roots) > 0 {
		return roots
	}

	return markupFallback(files, cfg.MarkupFallback)
}

func existingEntries(root string, entries []string) []string {
	var roots []string
	seen := make(map[string]bool)
	for _, entry := range entries {
		path := entry
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, path)
		}
		path = filepath.Clean(path)
		if seen[path] {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			seen[path] = true
			roots = append(roots, path)
		}
	}
	return roots
}

func conventionalRoots(root string, scanDirs, candidates []string) []string {
	var roots []string
	seen := make(map[string]bool)
	add := func(path string) {
		path = filepath.Clean(path)
		if seen[path] {
			return
		}
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			seen[path] = true
			roots = append(roots, path)
		}
	}

	for _, c := range candidates {
		add(filepath.Join(root, filepath.FromSlash(c)))
	}
	for _, dir := range scanDirs {
		add(filepath.Join(dir, "index.html"))
		add(filepath.Join(dir, "index.htm"))
	}
	return roots
}

// markupFallback seeds the root set with the first n markup files in sorted
// order. Best effort only.
func markupFallback(files []string, n int) []string {
	var roots []string
	for _, f := range files {
		if len(roots) >= n {
			break
		}
		if lang.KindOf(lang.Ext(f)) == lang.KindMarkup {
			roots = append(roots, f)
		}
	}
	return roots
}
