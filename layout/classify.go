package layout

import (
	"regexp"
	"strings"

	"github.com/tsawler/textweave/model"
)

// ClassifierConfig holds configuration for structural classification. The
// gap ratios and the dense-run cutoff are empirically tuned; they are
// exposed here rather than inlined so callers can adjust them for document
// styles the defaults were never tested against.
type ClassifierConfig struct {
	// ParagraphGapRatio scales the body height into the vertical gap that
	// starts a new paragraph (default: 1.5)
	ParagraphGapRatio float64

	// RuleGapRatio scales the body height into the vertical gap that,
	// combined with a heading, inserts a horizontal rule (default: 1.8)
	RuleGapRatio float64

	// DenseGapRatio scales the body height into the gap below which lines
	// count as tightly spaced (default: 0.9)
	DenseGapRatio float64

	// DenseRunLimit is the dense-run length at which rule insertion is
	// suppressed, avoiding spurious rules inside list-like content
	// (default: 3)
	DenseRunLimit int

	// Furniture configures recurring page-marker suppression
	Furniture FurnitureConfig
}

// DefaultClassifierConfig returns sensible default configuration.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		ParagraphGapRatio: 1.5,
		RuleGapRatio:      1.8,
		DenseGapRatio:     0.9,
		DenseRunLimit:     3,
		Furniture:         DefaultFurnitureConfig(),
	}
}

// Classifier assigns structure to the full ordered line sequence of a
// document: heading levels, normalized list markers, paragraph breaks,
// section rules, and page-furniture suppression. It needs the whole
// document because furniture detection is statistical across pages.
type Classifier struct {
	config ClassifierConfig
}

// NewClassifier creates a classifier with default configuration.
func NewClassifier() *Classifier {
	return &Classifier{config: DefaultClassifierConfig()}
}

// NewClassifierWithConfig creates a classifier with custom configuration.
func NewClassifierWithConfig(config ClassifierConfig) *Classifier {
	return &Classifier{config: config}
}

var orderedListPattern = regexp.MustCompile(`^\d+\.`)

// Assemble produces the structured text body from the document's ordered
// line records. Records must be in reading order across all pages.
func (c *Classifier) Assemble(records []LineRecord, stats model.DocumentStats) string {
	furniture := c.detectFurniture(records, stats)

	var out []string
	var prev *LineRecord
	dense := 0

	for i := range records {
		r := records[i]
		if strings.TrimSpace(r.Text) == "" {
			continue
		}
		if furniture[i] {
			continue
		}

		text, isList := normalizeListItem(r.Text)
		prefix := ""
		if !isList {
			prefix = c.headingPrefix(r.MaxHeight, stats)
		}

		samePage := prev != nil && prev.Page == r.Page
		if prev != nil && !samePage {
			dense = 0
		}
		gap := 0.0
		if samePage {
			gap = r.Y - prev.Y
		}

		switch {
		case samePage && gap > stats.BodyHeight*c.config.RuleGapRatio &&
			prefix != "" && dense < c.config.DenseRunLimit && lastNonBlank(out) != "---":
			out = append(out, "", "---", "")
		case samePage && gap > stats.BodyHeight*c.config.ParagraphGapRatio:
			out = append(out, "")
		}

		out = append(out, prefix+text)

		if samePage {
			if gap < stats.BodyHeight*c.config.DenseGapRatio {
				dense++
			} else {
				dense = 0
			}
		}
		if isList {
			dense++
		}
		prev = &records[i]
	}

	return strings.Join(out, "\n")
}

// headingPrefix maps a line's maximum fragment height to a markdown
// heading marker. The document title itself uses "#", so detected headings
// start at level 2.
func (c *Classifier) headingPrefix(maxHeight float64, stats model.DocumentStats) string {
	switch {
	case maxHeight >= stats.SubHeaderThreshold:
		return "## "
	case maxHeight >= stats.HeaderThreshold:
		return "### "
	default:
		return ""
	}
}

// normalizeListItem rewrites bullet lines to the normalized "- " marker
// and recognizes ordered-list items. List detection takes precedence over
// heading detection: a list line is never promoted to a heading.
func normalizeListItem(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return text, false
	}

	switch r := []rune(trimmed)[0]; r {
	case '•', '●', '-':
		rest := strings.TrimLeft(trimmed[len(string(r)):], " \t")
		return "- " + rest, true
	}

	if orderedListPattern.MatchString(trimmed) {
		return trimmed, true
	}
	return trimmed, false
}

// lastNonBlank returns the most recent non-blank output line.
func lastNonBlank(out []string) string {
	for i := len(out) - 1; i >= 0; i-- {
		if strings.TrimSpace(out[i]) != "" {
			return out[i]
		}
	}
	return ""
}
