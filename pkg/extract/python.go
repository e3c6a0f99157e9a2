package extract

import (
	"context"
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// pyRelativeImportRE is the lexical fallback for relative imports when the
// parse tree is unusable.
var pyRelativeImportRE = regexp.MustCompile(`from\s+(\.+[a-zA-Z0-9_.]+)\s+import\s+`)

// PythonExtractor finds relative imports (from .mod import x) in Python
// sources. It parses the syntax tree when possible and degrades to a regex
// scan when the file contains syntax errors, so a half-broken module still
// contributes whatever references it declares.
type PythonExtractor struct{}

// NewPython creates a Python extractor.
func NewPython() *PythonExtractor {
	return &PythonExtractor{}
}

// Extract implements Extractor. Extractors run concurrently across files, so
// a parser is created per call rather than shared.
func (e *PythonExtractor) Extract(content []byte) []string {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return pythonFallback(content)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return pythonFallback(content)
	}

	var refs []string
	collectRelativeImports(root, content, &refs)
	return refs
}

// collectRelativeImports walks the tree gathering relative from-imports.
func collectRelativeImports(node *sitter.Node, source []byte, refs *[]string) {
	if node.Type() == "import_from_statement" {
		if module := node.ChildByFieldName("module_name"); module != nil && module.Type() == "relative_import" {
			if dotted := namedChildOfType(module, "dotted_name"); dotted != nil {
				*refs = append(*refs, moduleCandidates(dotted.Content(source))...)
			}
		}
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		collectRelativeImports(node.NamedChild(i), source, refs)
	}
}

func namedChildOfType(node *sitter.Node, typ string) *sitter.Node {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if c := node.NamedChild(i); c.Type() == typ {
			return c
		}
	}
	return nil
}

// moduleCandidates converts a dotted module path into relative file path
// candidates: the .py file first, then the bare path (which lets the
// resolver try its own suffix and index fallbacks).
func moduleCandidates(module string) []string {
	rel := "./" + strings.ReplaceAll(strings.Trim(module, "."), ".", "/")
	return []string{rel + ".py", rel}
}

// pythonFallback regex-scans for the same relative-import pattern.
func pythonFallback(content []byte) []string {
	var refs []string
	for _, m := range pyRelativeImportRE.FindAllSubmatch(content, -1) {
		refs = append(refs, moduleCandidates(string(m[1]))...)
	}
	return refs
}
