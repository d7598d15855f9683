package layout

import (
	"testing"

	"github.com/tsawler/textweave/model"
)

func buildLine(t *testing.T, fragments ...model.Fragment) LineRecord {
	t.Helper()
	line := Line{Page: 1, Fragments: fragments}
	if len(fragments) > 0 {
		line.Y = fragments[0].Y
	}
	return NewTextBuilder().Build(line)
}

func TestTextBuilder_Empty(t *testing.T) {
	record := NewTextBuilder().Build(Line{Page: 1})
	if record.Text != "" {
		t.Errorf("Expected empty text, got %q", record.Text)
	}
}

func TestTextBuilder_SingleFragment(t *testing.T) {
	record := buildLine(t, makeTestFragment("Hello", 100, 50, 40, 12, 1))
	if record.Text != "Hello" {
		t.Errorf("Expected 'Hello', got %q", record.Text)
	}
	if record.MaxHeight != 12 {
		t.Errorf("Expected max height 12, got %v", record.MaxHeight)
	}
}

func TestTextBuilder_WordGapAboveThreshold(t *testing.T) {
	// Bimodal gaps: tight intra-word gaps of 0.5 and one word gap of
	// 11.5. The adaptive threshold lands between, so exactly one space is
	// inserted.
	record := buildLine(t,
		makeTestFragment("Ne", 0, 50, 12, 12, 1),
		makeTestFragment("w", 12.5, 50, 6, 12, 1),
		makeTestFragment("Yo", 30, 50, 13, 12, 1),
		makeTestFragment("rk", 43.5, 50, 12, 12, 1),
	)

	if record.Text != "New York" {
		t.Errorf("Expected 'New York', got %q", record.Text)
	}
}

func TestTextBuilder_WhitespaceMarkerForcesSpace(t *testing.T) {
	record := buildLine(t,
		makeTestFragment("New", 0, 50, 30, 12, 1),
		makeTestFragment(" ", 30, 50, 4, 12, 1),
		makeTestFragment("York", 34, 50, 35, 12, 1),
	)

	if record.Text != "New York" {
		t.Errorf("Expected 'New York', got %q", record.Text)
	}
}

func TestTextBuilder_CJKAdjacencySuppressesSpace(t *testing.T) {
	// Near-zero gap between ideographs never yields a space, even with an
	// explicit whitespace marker in between.
	record := buildLine(t,
		makeTestFragment("东", 0, 50, 12, 12, 1),
		makeTestFragment(" ", 12, 50, 2, 12, 1),
		makeTestFragment("京", 14, 50, 12, 12, 1),
	)

	if record.Text != "东京" {
		t.Errorf("Expected '东京', got %q", record.Text)
	}
}

func TestTextBuilder_DegenerateSingleGlyphRecovery(t *testing.T) {
	// One fragment per glyph: under the normal threshold the line builds
	// with no spaces at all, which triggers the loose rebuild.
	glyphs := "Helloworld"
	xs := []float64{0, 6.5, 13, 19.5, 26, 35, 41.5, 48, 54.5, 61}

	fragments := make([]model.Fragment, 0, len(xs))
	for i, r := range glyphs {
		fragments = append(fragments, makeTestFragment(string(r), xs[i], 50, 6, 12, 1))
	}

	record := buildLine(t, fragments...)

	if record.Text != "Hello world" {
		t.Errorf("Expected 'Hello world' after loose rebuild, got %q", record.Text)
	}
}

func TestTextBuilder_DropsEmptyNonWhitespaceFragments(t *testing.T) {
	empty := model.Fragment{Text: "", X: 30, Y: 50, Width: 0, Height: 12, Page: 1}

	record := buildLine(t,
		makeTestFragment("solo", 0, 50, 30, 12, 1),
		empty,
	)

	if record.Text != "solo" {
		t.Errorf("Expected 'solo', got %q", record.Text)
	}
}

func TestTextBuilder_CollapsesInternalWhitespace(t *testing.T) {
	record := buildLine(t,
		makeTestFragment("a\tb", 0, 50, 20, 12, 1),
		makeTestFragment(" ", 20, 50, 3, 12, 1),
		makeTestFragment(" ", 23, 50, 3, 12, 1),
		makeTestFragment("c", 26, 50, 8, 12, 1),
	)

	if record.Text != "a b c" {
		t.Errorf("Expected collapsed spacing 'a b c', got %q", record.Text)
	}
}

func TestTextBuilder_MaxHeightIgnoresWhitespaceMarkers(t *testing.T) {
	record := buildLine(t,
		makeTestFragment("x", 0, 50, 8, 12, 1),
		makeTestFragment(" ", 8, 50, 3, 40, 1),
	)

	if record.MaxHeight != 12 {
		t.Errorf("Expected max height 12, got %v", record.MaxHeight)
	}
}
