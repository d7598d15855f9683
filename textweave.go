// Package textweave reconstructs readable, structurally annotated text
// from unordered collections of positioned text fragments extracted from
// paginated documents.
//
// The pipeline infers the dominant body text size, clusters fragments into
// reading-order lines, rebuilds word spacing from horizontal gap
// statistics, classifies headings, lists, and paragraph breaks, suppresses
// recurring page furniture (page numbers, running headers and footers),
// and repairs hyphenation and hard line wraps. Output is a single UTF-8
// blob with markdown-style structure markers.
//
// Basic usage:
//
//	src := textweave.NewDocumentSource("report.pdf", pages)
//	out, err := textweave.New(src).Text(context.Background())
//	if err != nil {
//	    // handle error
//	}
//
// Fragment extraction itself is a collaborator's concern: anything
// implementing Source can feed the pipeline. The hocr subpackage provides
// a ready-made source for hOCR files.
package textweave

import (
	"github.com/tsawler/textweave/hocr"
)

// New creates a Reconstructor for the given source with default options.
func New(source Source) *Reconstructor {
	return &Reconstructor{
		source:  source,
		options: DefaultOptions(),
	}
}

// NewWithOptions creates a Reconstructor with custom options.
func NewWithOptions(source Source, options Options) *Reconstructor {
	return &Reconstructor{
		source:  source,
		options: options,
	}
}

// OpenHOCR opens an hOCR file (OCR output with positioned words) as a
// reconstruction source.
//
// Example:
//
//	r, err := textweave.OpenHOCR("scan.hocr")
//	if err != nil {
//	    // handle error
//	}
//	out, err := textweave.New(r).Text(ctx)
func OpenHOCR(filename string) (*hocr.Reader, error) {
	return hocr.Open(filename)
}
