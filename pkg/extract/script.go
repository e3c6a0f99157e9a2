package extract

import "regexp"

// scriptImportRE matches the module specifier of static imports, dynamic
// import() calls, and require() calls.
var scriptImportRE = regexp.MustCompile(`(?:import\s+[^'"]*from\s*|import\s*\(\s*|require\s*\(\s*)['"]([^'"]+)['"]`)

// ScriptExtractor scans JS/TS-family sources for import and require
// specifiers. Bare module names (package imports) are ignored; only
// relative specifiers can resolve to files in the tree.
type ScriptExtractor struct{}

// NewScript creates a script extractor.
func NewScript() *ScriptExtractor {
	return &ScriptExtractor{}
}

// Extract implements Extractor.
func (e *ScriptExtractor) Extract(content []byte) []string {
	var refs []string
	for _, m := range scriptImportRE.FindAllSubmatch(content, -1) {
		refs = append(refs, string(m[1]))
	}
	return keepRelative(refs)
}
