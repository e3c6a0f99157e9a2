// Package resolve maps raw reference strings to files on disk.
package resolve

import (
	"os"
	"path/filepath"
	"strings"
)

// suffixCandidates is the ordered list of extensions tried against a
// candidate path, starting with the path as written. Order is part of the
// resolver contract: a suffix match always wins over an index-file match.
var suffixCandidates = []string{
	"", ".js", ".jsx", ".ts", ".tsx", ".mjs", ".cjs",
	".css", ".scss", ".less", ".html", ".htm", ".py",
}

// indexCandidates is the ordered list of index file extensions tried when a
// candidate path names a directory.
var indexCandidates = []string{
	".js", ".ts", ".tsx", ".jsx", ".mjs", ".cjs", ".html", ".htm", ".py",
}

// Resolver turns reference strings into absolute file paths. Resolution
// failures are expected (dangling, external, or dynamically built paths) and
// are reported by the boolean, never as an error.
type Resolver struct {
	// Root anchors root-relative references (those starting with "/").
	Root string
}

// New creates a resolver anchored at the given project root.
func New(root string) Resolver {
	return Resolver{Root: root}
}

// Resolve maps a raw reference found in the file `from` to an existing file.
// Fragment (#...) and query (?...) suffixes are stripped first. The result is
// deterministic: the same inputs always yield the same file or no file.
func (r Resolver) Resolve(ref, from string) (string, bool) {
	ref = Clean(ref)
	if ref == "" {
		return "", false
	}

	var base string
	if strings.HasPrefix(ref, "/") {
		base = filepath.Join(r.Root, strings.TrimPrefix(ref, "/"))
	} else {
		base = filepath.Join(filepath.Dir(from), ref)
	}
	base = filepath.Clean(base)

	for _, ext := range suffixCandidates {
		if isFile(base + ext) {
			return base + ext, true
		}
	}

	if isDir(base) {
		for _, ext := range indexCandidates {
			p := filepath.Join(base, "index"+ext)
			if isFile(p) {
				return p, true
			}
		}
	}

	return "", false
}

// Clean strips the trailing fragment and query from a reference.
func Clean(ref string) string {
	if i := strings.IndexByte(ref, '#'); i >= 0 {
		ref = ref[:i]
	}
	if i := strings.IndexByte(ref, '?'); i >= 0 {
		ref = ref[:i]
	}
	return ref
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
