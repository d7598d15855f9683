package textweave

import (
	"fmt"

	"github.com/tsawler/textweave/model"
)

// Source supplies one document's pages to the pipeline. Implementations
// own the underlying extraction resources; Close releases them and is
// called by the pipeline on every exit path, including cancellation.
//
// A source that needs a passphrase it was not given must return an error
// wrapping ErrPasswordRequired from PageCount or Page so the condition can
// be surfaced as "password protected" without parsing message text.
type Source interface {
	// Name returns the document's display name, typically a file name
	Name() string

	// PageCount returns the total number of pages
	PageCount() (int, error)

	// Page returns the 1-based page with its dimensions and fragments
	Page(number int) (*model.Page, error)

	// Close releases extraction resources
	Close() error
}

// DocumentSource is an in-memory Source for callers that already hold
// extracted pages, and for tests.
type DocumentSource struct {
	name  string
	pages []*model.Page
}

// NewDocumentSource creates a source over in-memory pages. Pages are used
// in slice order; their Number fields are assigned sequentially from 1.
func NewDocumentSource(name string, pages []*model.Page) *DocumentSource {
	for i, p := range pages {
		p.Number = i + 1
	}
	return &DocumentSource{name: name, pages: pages}
}

// Name returns the document's display name.
func (s *DocumentSource) Name() string { return s.name }

// PageCount returns the number of pages.
func (s *DocumentSource) PageCount() (int, error) { return len(s.pages), nil }

// Page returns the 1-based page.
func (s *DocumentSource) Page(number int) (*model.Page, error) {
	if number < 1 || number > len(s.pages) {
		return nil, fmt.Errorf("page %d out of range 1..%d", number, len(s.pages))
	}
	return s.pages[number-1], nil
}

// Close is a no-op for in-memory sources.
func (s *DocumentSource) Close() error { return nil }
