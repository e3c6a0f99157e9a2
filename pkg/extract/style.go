package extract

import "regexp"

var (
	cssImportRE = regexp.MustCompile(`(?i)@import\s+(?:url\()?['"]?([^'")]+)['"]?\)?`)
	cssURLRE    = regexp.MustCompile(`(?i)url\(\s*['"]?([^'")]+)['"]?\s*\)`)
)

// StylesheetExtractor scans CSS-family sources for @import statements and
// url(...) references.
type StylesheetExtractor struct{}

// NewStylesheet creates a stylesheet extractor.
func NewStylesheet() *StylesheetExtractor {
	return &StylesheetExtractor{}
}

// Extract implements Extractor.
func (e *StylesheetExtractor) Extract(content []byte) []string {
	var refs []string
	for _, m := range cssImportRE.FindAllSubmatch(content, -1) {
		refs = append(refs, string(m[1]))
	}
	for _, m := range cssURLRE.FindAllSubmatch(content, -1) {
		refs = append(refs, string(m[1]))
	}
	return keepRelative(refs)
}
