// Package classify partitions directories by how much of their content is
// still reachable.
package classify

import (
	"path/filepath"
	"sort"
	"strings"
)

// Classification is the directory-level verdict over an analyzed file set.
//
// A directory is Unnecessary when every file it contains (within scan scope)
// is unreachable, and Keep when it holds a strict mix of reachable and
// unreachable files. Fully reachable directories appear in neither list.
// OtherUnused lists unreachable files whose immediate directory is not
// already reported as unnecessary, so nothing is listed twice.
type Classification struct {
	Unnecessary []string
	Keep        []string
	OtherUnused []string
}

// Classify computes the directory partition. All paths are absolute; sorting
// is case-insensitive on the path relative to root so listings match the
// report order.
func Classify(root string, files []string, reachable map[string]bool, scanDirs []string) Classification {
	// First pass: attribute every file to each ancestor directory that lies
	// within a scan directory.
	dirFiles := make(map[string][]string)
	for _, f := range files {
		for dir := filepath.Dir(f); withinAny(dir, scanDirs); dir = filepath.Dir(dir) {
			dirFiles[dir] = append(dirFiles[dir], f)
			if dir == filepath.Dir(dir) {
				break
			}
		}
	}

	// Second pass: classify each directory from its owned file set.
	var c Classification
	unnecessarySet := make(map[string]bool)
	for dir, owned := range dirFiles {
		used, unused := 0, 0
		for _, f := range owned {
			if reachable[f] {
				used++
			} else {
				unused++
			}
		}
		switch {
		case used == 0 && unused > 0:
			c.Unnecessary = append(c.Unnecessary, dir)
			unnecessarySet[dir] = true
		case used > 0 && unused > 0:
			c.Keep = append(c.Keep, dir)
		}
	}

	for _, f := range files {
		if !reachable[f] && !unnecessarySet[filepath.Dir(f)] {
			c.OtherUnused = append(c.OtherUnused, f)
		}
	}

	sortRel(root, c.Unnecessary)
	sortRel(root, c.Keep)
	sortRel(root, c.OtherUnused)
	return c
}

// withinAny reports whether dir equals or descends from any scan directory.
func withinAny(dir string, scanDirs []string) bool {
	for _, sd := range scanDirs {
		if dir == sd || strings.HasPrefix(dir, sd+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// sortRel orders paths case-insensitively by their path relative to root,
// approximating editor file-list order.
func sortRel(root string, paths []string) {
	sort.Slice(paths, func(i, j int) bool {
		a, b := relLower(root, paths[i]), relLower(root, paths[j])
		if a != b {
			return a < b
		}
		return paths[i] < paths[j]
	})
}

func relLower(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	return strings.ToLower(filepath.ToSlash(rel))
}
