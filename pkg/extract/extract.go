// Package extract pulls raw relative-reference strings out of file content.
// Each extractor handles one family of file types; a Registry maps extensions
// to extractors so the graph builder never hard-codes parser selection.
package extract

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/mwhitfield/deadwood/pkg/lang"
)

// Extractor yields the raw relative references found in file content.
// Implementations must never fail: undecodable or unparseable input yields
// an empty result, not an error.
type Extractor interface {
	Extract(content []byte) []string
}

// Registry maps a normalized extension to its extractor.
type Registry map[string]Extractor

// NewRegistry builds the default registry from the lang kind table.
func NewRegistry() Registry {
	r := make(Registry)
	script := NewScript()
	python := NewPython()
	markup := NewMarkup()
	style := NewStylesheet()

	for _, ext := range []string{".js", ".jsx", ".ts", ".tsx", ".mjs", ".cjs"} {
		r[ext] = script
	}
	r[".py"] = python
	for _, ext := range []string{".html", ".htm"} {
		r[ext] = markup
	}
	for _, ext := range []string{".css", ".scss", ".less"} {
		r[ext] = style
	}
	return r
}

// For returns the extractor registered for a path's extension, or nil.
func (r Registry) For(path string) Extractor {
	return r[lang.Ext(path)]
}

// LooksRelative reports whether a reference is a relative or root-relative
// path. Bare module names and external URLs fail this test and are ignored.
func LooksRelative(s string) bool {
	return strings.HasPrefix(s, "./") || strings.HasPrefix(s, "../") || strings.HasPrefix(s, "/")
}

const binarySniffLen = 2048

// Textual reports whether content can be treated as UTF-8 text. Binary files
// contribute no references.
func Textual(content []byte) bool {
	sniff := content
	if len(sniff) > binarySniffLen {
		sniff = sniff[:binarySniffLen]
	}
	if bytes.IndexByte(sniff, 0) >= 0 {
		return false
	}
	return utf8.Valid(content)
}

// keepRelative filters refs down to relative-looking ones.
func keepRelative(refs []string) []string {
	var out []string
	for _, ref := range refs {
		ref = strings.TrimSpace(ref)
		if LooksRelative(ref) {
			out = append(out, ref)
		}
	}
	return out
}
