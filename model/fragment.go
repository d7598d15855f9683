package model

import "strings"

// Fragment represents one contiguous run of positioned text as reported by
// an extraction source. Y is measured top-down (0 at the top of the page);
// Height approximates the font size.
type Fragment struct {
	// Text is the fragment's decoded text content
	Text string

	// X and Y are the fragment's position on the page, Y top-down
	X, Y float64

	// Width and Height are the fragment's extent; Height approximates font size
	Width, Height float64

	// Page is the 1-based page number the fragment belongs to
	Page int

	// IsWhitespace marks fragments whose text is blank but which still
	// represent a gap in the source (explicit space runs)
	IsWhitespace bool
}

// Right returns the X coordinate of the fragment's right edge.
func (f Fragment) Right() float64 {
	return f.X + f.Width
}

// IsBlank reports whether the fragment carries no visible text.
func (f Fragment) IsBlank() bool {
	return strings.TrimSpace(f.Text) == ""
}

// NewFragment creates a fragment, deriving the IsWhitespace flag from the
// text content.
func NewFragment(text string, x, y, width, height float64, page int) Fragment {
	return Fragment{
		Text:         text,
		X:            x,
		Y:            y,
		Width:        width,
		Height:       height,
		Page:         page,
		IsWhitespace: strings.TrimSpace(text) == "",
	}
}

// Page holds the fragments of a single source page together with its
// dimensions. Fragments may arrive in any order; the layout package
// establishes reading order.
type Page struct {
	// Number is the 1-based page number
	Number int

	// Width and Height are the page dimensions in source units
	Width, Height float64

	// Fragments are the page's text fragments, unordered
	Fragments []Fragment

	// BottomUp indicates the source reports Y increasing upward (PDF
	// convention). Ingestion flips such pages to top-down coordinates.
	BottomUp bool
}

// TextBytes returns the total number of encoded text bytes on the page.
// Used to enforce the per-page resource cap.
func (p *Page) TextBytes() int {
	total := 0
	for _, f := range p.Fragments {
		total += len(f.Text)
	}
	return total
}

// FlipVertical returns a copy of the page with all fragment Y coordinates
// converted from bottom-up to top-down. Pages already top-down are returned
// unchanged.
func (p *Page) FlipVertical() *Page {
	if !p.BottomUp {
		return p
	}

	flipped := &Page{
		Number:    p.Number,
		Width:     p.Width,
		Height:    p.Height,
		Fragments: make([]Fragment, len(p.Fragments)),
	}
	for i, f := range p.Fragments {
		f.Y = p.Height - f.Y - f.Height
		flipped.Fragments[i] = f
	}
	return flipped
}
