// Package export renders reconstructed document text to other formats.
//
// The pipeline's output blob uses markdown-style structure markers
// (headings, list items, rules), so HTML export is a markdown rendering
// pass rather than a bespoke formatter.
package export

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
)

// ToHTML renders a reconstructed text blob to an HTML fragment.
func ToHTML(text string) (string, error) {
	md := goldmark.New()

	var buf bytes.Buffer
	if err := md.Convert([]byte(text), &buf); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return buf.String(), nil
}
