// Package lang classifies file extensions: which reference extractor
// handles them and how header comments are written.
package lang

import (
	"path/filepath"
	"sort"
	"strings"
)

// Kind selects the reference extractor family for an extension.
type Kind int

const (
	KindNone Kind = iota
	KindScript
	KindPython
	KindMarkup
	KindStylesheet
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindScript:
		return "script"
	case KindPython:
		return "python"
	case KindMarkup:
		return "markup"
	case KindStylesheet:
		return "stylesheet"
	default:
		return "none"
	}
}

var kinds = map[string]Kind{
	".js":   KindScript,
	".jsx":  KindScript,
	".ts":   KindScript,
	".tsx":  KindScript,
	".mjs":  KindScript,
	".cjs":  KindScript,
	".py":   KindPython,
	".html": KindMarkup,
	".htm":  KindMarkup,
	".css":  KindStylesheet,
	".scss": KindStylesheet,
	".less": KindStylesheet,
}

// KindOf returns the extractor kind for an extension. The extension may be
// given with or without the leading dot and in any case.
func KindOf(ext string) Kind {
	return kinds[Normalize(ext)]
}

// Normalize lower-cases an extension and ensures a leading dot.
func Normalize(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// Ext returns the normalized extension of a path.
func Ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// Style is the comment delimiter pair used when stamping file headers.
type Style struct {
	Prefix string
	Suffix string
}

var styles = map[string]Style{
	".js":   {"// ", ""},
	".jsx":  {"// ", ""},
	".ts":   {"// ", ""},
	".tsx":  {"// ", ""},
	".mjs":  {"// ", ""},
	".cjs":  {"// ", ""},
	".c":    {"// ", ""},
	".cpp":  {"// ", ""},
	".h":    {"// ", ""},
	".hpp":  {"// ", ""},
	".java": {"// ", ""},
	".cs":   {"// ", ""},
	".py":   {"# ", ""},
	".sh":   {"# ", ""},
	".rb":   {"# ", ""},
	".pl":   {"# ", ""},
	".ps1":  {"# ", ""},
	".css":  {"/* ", " */"},
	".scss": {"/* ", " */"},
	".less": {"/* ", " */"},
	".html": {"<!-- ", " -->"},
	".htm":  {"<!-- ", " -->"},
	".php":  {"// ", ""},
	".yml":  {"# ", ""},
	".yaml": {"# ", ""},
	".toml": {"# ", ""},
	".ini":  {"; ", ""},
	".cfg":  {"# ", ""},
	".env":  {"# ", ""},
	".sql":  {"-- ", ""},
	".md":   {"<!-- ", " -->"},
}

// uncommentable extensions are text formats with no comment syntax.
var uncommentable = map[string]bool{
	".json": true,
}

// CommentStyle returns the header comment style for an extension.
func CommentStyle(ext string) (Style, bool) {
	s, ok := styles[Normalize(ext)]
	return s, ok
}

// Uncommentable reports whether ext is a known text format with no comment
// syntax.
func Uncommentable(ext string) bool {
	return uncommentable[Normalize(ext)]
}

// Commentable reports whether a header comment can be written for ext.
func Commentable(ext string) bool {
	ext = Normalize(ext)
	if uncommentable[ext] {
		return false
	}
	_, ok := styles[ext]
	return ok
}

// KnownExtensions returns the default scan allowlist: every extension with a
// registered comment style, sorted.
func KnownExtensions() []string {
	exts := make([]string, 0, len(styles))
	for ext := range styles {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
