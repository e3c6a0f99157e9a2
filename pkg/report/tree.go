package report

import (
	"path/filepath"
	"sort"
	"strings"
)

// Rel returns path relative to root with forward slashes, falling back to
// the path itself when no relative form exists.
func Rel(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

func rels(root string, paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = Rel(root, p)
	}
	return out
}

func sortedRels(root string, paths []string) []string {
	out := rels(root, paths)
	sortCaseInsensitive(out)
	return out
}

func sortCaseInsensitive(entries []string) {
	sort.Slice(entries, func(i, j int) bool {
		a, b := strings.ToLower(entries[i]), strings.ToLower(entries[j])
		if a != b {
			return a < b
		}
		return entries[i] < entries[j]
	})
}

// Tree renders files as an indentation-based directory tree. Paths are
// sorted case-insensitively by their root-relative form; each path segment
// is emitted once per shared-prefix depth change, so a segment reappears
// only when its ancestor path diverges from the previous entry.
func Tree(root string, files []string) string {
	if len(files) == 0 {
		return "(none)"
	}

	entries := rels(root, files)
	sortCaseInsensitive(entries)

	var b strings.Builder
	var prev []string
	for _, entry := range entries {
		parts := strings.Split(entry, "/")

		shared := 0
		for shared < len(parts) && shared < len(prev) && parts[shared] == prev[shared] {
			shared++
		}
		for depth := shared; depth < len(parts); depth++ {
			b.WriteString(strings.Repeat("  ", depth))
			b.WriteString(parts[depth])
			b.WriteByte('\n')
		}
		prev = parts
	}
	return strings.TrimRight(b.String(), "\n")
}
