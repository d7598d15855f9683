// Package hocr reads hOCR documents (the HTML-based OCR output format)
// into textweave pages. It is an extraction-collaborator adapter: OCR
// engines emit positioned words, and this package maps them onto the
// pipeline's fragment model.
package hocr

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/textweave/model"
)

// Reader exposes a parsed hOCR document as a sequence of pages. It
// implements the textweave Source interface.
type Reader struct {
	name  string
	pages []*model.Page
}

// Open parses an hOCR file.
func Open(filename string) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open hocr: %w", err)
	}
	defer f.Close()

	return Parse(f, filename)
}

// Parse parses hOCR markup from r. The name is used as the document's
// display name.
func Parse(r io.Reader, name string) (*Reader, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse hocr: %w", err)
	}

	reader := &Reader{name: name}
	reader.walk(doc)

	for i, p := range reader.pages {
		p.Number = i + 1
	}
	return reader, nil
}

// Name returns the document's display name.
func (r *Reader) Name() string { return r.name }

// PageCount returns the number of ocr_page elements found.
func (r *Reader) PageCount() (int, error) { return len(r.pages), nil }

// Page returns the 1-based page. hOCR coordinates are image pixels
// measured top-down, so no vertical flip is needed.
func (r *Reader) Page(number int) (*model.Page, error) {
	if number < 1 || number > len(r.pages) {
		return nil, fmt.Errorf("page %d out of range 1..%d", number, len(r.pages))
	}
	return r.pages[number-1], nil
}

// Close releases nothing; the file is consumed during Open.
func (r *Reader) Close() error { return nil }

// walk descends the HTML tree collecting ocr_page elements and, within
// them, ocrx_word spans.
func (r *Reader) walk(n *html.Node) {
	if n.Type == html.ElementNode && hasClass(n, "ocr_page") {
		r.pages = append(r.pages, parsePage(n))
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.walk(c)
	}
}

// parsePage builds a page from an ocr_page element. The page bbox gives
// the dimensions; every descendant ocrx_word becomes one fragment.
func parsePage(n *html.Node) *model.Page {
	page := &model.Page{}
	if box, ok := parseBBox(attr(n, "title")); ok {
		page.Width = box.x1 - box.x0
		page.Height = box.y1 - box.y0
	}

	var collect func(*html.Node)
	collect = func(node *html.Node) {
		if node.Type == html.ElementNode && hasClass(node, "ocrx_word") {
			if box, ok := parseBBox(attr(node, "title")); ok {
				word := strings.TrimSpace(textContent(node))
				page.Fragments = append(page.Fragments, model.Fragment{
					Text:         word,
					X:            box.x0,
					Y:            box.y0,
					Width:        box.x1 - box.x0,
					Height:       box.y1 - box.y0,
					IsWhitespace: word == "",
				})
			}
			return
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)

	return page
}

type bbox struct {
	x0, y0, x1, y1 float64
}

// parseBBox extracts the bbox property from an hOCR title attribute, e.g.
// `bbox 60 70 120 90; x_wconf 95`.
func parseBBox(title string) (bbox, bool) {
	for _, prop := range strings.Split(title, ";") {
		fields := strings.Fields(strings.TrimSpace(prop))
		if len(fields) != 5 || fields[0] != "bbox" {
			continue
		}

		coords := make([]float64, 4)
		for i, raw := range fields[1:] {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return bbox{}, false
			}
			coords[i] = v
		}
		return bbox{x0: coords[0], y0: coords[1], x1: coords[2], y1: coords[3]}, true
	}
	return bbox{}, false
}

// hasClass reports whether the element carries the given class.
func hasClass(n *html.Node, class string) bool {
	for _, field := range strings.Fields(attr(n, "class")) {
		if field == class {
			return true
		}
	}
	return false
}

// attr returns the value of the named attribute, or "".
func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// textContent returns the concatenated text of a node's subtree.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
