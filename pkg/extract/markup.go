package extract

import (
	"bytes"

	"golang.org/x/net/html"
)

// refAttrs are the tag attributes that can point at other files.
var refAttrs = map[string]bool{
	"src":      true,
	"href":     true,
	"data-src": true,
	"poster":   true,
}

// MarkupExtractor streams HTML tags and collects reference-bearing
// attribute values.
type MarkupExtractor struct{}

// NewMarkup creates a markup extractor.
func NewMarkup() *MarkupExtractor {
	return &MarkupExtractor{}
}

// Extract implements Extractor. The tokenizer is tolerant of malformed
// markup, so there is no failure mode beyond running out of input.
func (e *MarkupExtractor) Extract(content []byte) []string {
	z := html.NewTokenizer(bytes.NewReader(content))
	var refs []string
	for {
		switch z.Next() {
		case html.ErrorToken:
			return keepRelative(refs)
		case html.StartTagToken, html.SelfClosingTagToken:
			for _, attr := range z.Token().Attr {
				if refAttrs[attr.Key] {
					refs = append(refs, attr.Val)
				}
			}
		}
	}
}
