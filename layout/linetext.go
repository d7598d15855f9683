package layout

import (
	"sort"
	"strings"

	"github.com/tsawler/textweave/model"
	wtext "github.com/tsawler/textweave/text"
)

// TextConfig holds configuration for line text assembly.
type TextConfig struct {
	// BaseGapFactor scales the average character width into the minimum
	// word-gap threshold (default: 0.6)
	BaseGapFactor float64

	// FallbackGap is the threshold used when no character width data is
	// available (default: 2 units)
	FallbackGap float64

	// BimodalRatio is the p90/median gap ratio above which the gap
	// distribution is treated as bimodal, i.e. a mix of letter spacing and
	// word spacing (default: 1.6)
	BimodalRatio float64

	// MinGapSamples is the number of gap samples required before the
	// bimodal test applies (default: 3)
	MinGapSamples int

	// MedianGapFactor scales the median gap into the word-gap threshold
	// for unimodal distributions (default: 1.4)
	MedianGapFactor float64

	// SingleCharShare is the fraction of single-character fragments above
	// which a spaceless line triggers the loose rebuild (default: 0.6)
	SingleCharShare float64

	// LooseBaseFactor and LooseMedianFactor parametrize the rebuild
	// threshold for one-fragment-per-glyph documents (defaults: 0.6, 1.1)
	LooseBaseFactor   float64
	LooseMedianFactor float64
}

// DefaultTextConfig returns sensible default configuration.
func DefaultTextConfig() TextConfig {
	return TextConfig{
		BaseGapFactor:     0.6,
		FallbackGap:       2.0,
		BimodalRatio:      1.6,
		MinGapSamples:     3,
		MedianGapFactor:   1.4,
		SingleCharShare:   0.6,
		LooseBaseFactor:   0.6,
		LooseMedianFactor: 1.1,
	}
}

// TextBuilder converts a line's fragments into a single text string,
// inferring word boundaries from horizontal gaps. PDF-like sources do not
// encode spaces reliably, so spacing is reconstructed statistically.
type TextBuilder struct {
	config TextConfig
}

// NewTextBuilder creates a text builder with default configuration.
func NewTextBuilder() *TextBuilder {
	return &TextBuilder{config: DefaultTextConfig()}
}

// NewTextBuilderWithConfig creates a text builder with custom configuration.
func NewTextBuilderWithConfig(config TextConfig) *TextBuilder {
	return &TextBuilder{config: config}
}

// Build derives the line's text and record view.
func (b *TextBuilder) Build(line Line) LineRecord {
	record := LineRecord{
		Page: line.Page,
		Y:    line.Y,
	}

	// Keep whitespace markers (they flag explicit gaps) but drop fragments
	// that carry neither text nor a gap.
	fragments := make([]model.Fragment, 0, len(line.Fragments))
	for _, f := range line.Fragments {
		if f.Text == "" && !f.IsWhitespace {
			continue
		}
		fragments = append(fragments, f)
	}
	if len(fragments) == 0 {
		return record
	}

	words := nonWhitespace(fragments)
	for _, f := range words {
		if f.Height > record.MaxHeight {
			record.MaxHeight = f.Height
		}
	}

	base := b.baseThreshold(words)
	gaps := positiveGaps(words)
	median, p90 := gapQuantiles(gaps)
	threshold := b.wordGapThreshold(base, median, p90, len(gaps))

	built := b.assemble(fragments, threshold)

	// One-fragment-per-glyph documents produce a spaceless string under
	// the normal threshold; rebuild with a looser one keyed to the median
	// inter-glyph gap.
	if !strings.Contains(built, " ") && median > 0 && b.singleCharHeavy(words) {
		loose := base * b.config.LooseBaseFactor
		if m := median * b.config.LooseMedianFactor; m > loose {
			loose = m
		}
		built = b.assemble(fragments, loose)
	}

	record.Text = collapseSpaces(built)
	return record
}

// BuildAll derives records for a sequence of lines.
func (b *TextBuilder) BuildAll(lines []Line) []LineRecord {
	records := make([]LineRecord, 0, len(lines))
	for _, line := range lines {
		records = append(records, b.Build(line))
	}
	return records
}

// baseThreshold computes the minimum word-gap threshold from the average
// character width of the line.
func (b *TextBuilder) baseThreshold(words []model.Fragment) float64 {
	totalWidth := 0.0
	totalChars := 0
	for _, f := range words {
		totalWidth += f.Width
		totalChars += len([]rune(f.Text))
	}
	if totalChars == 0 || totalWidth <= 0 {
		return b.config.FallbackGap
	}
	return (totalWidth / float64(totalChars)) * b.config.BaseGapFactor
}

// wordGapThreshold picks the adaptive word-gap threshold from the gap
// distribution. A bimodal distribution (letter gaps plus word gaps) uses
// the midpoint between median and p90; otherwise the scaled median or the
// base threshold applies. The result is never below the base threshold.
func (b *TextBuilder) wordGapThreshold(base, median, p90 float64, samples int) float64 {
	threshold := base
	switch {
	case samples >= b.config.MinGapSamples && p90 > median*b.config.BimodalRatio:
		threshold = (median + p90) / 2
	case median > 0:
		threshold = median * b.config.MedianGapFactor
	}
	if threshold < base {
		threshold = base
	}
	return threshold
}

// assemble concatenates fragments, inserting a single space where the gap
// to the previous fragment exceeds the threshold or an explicit whitespace
// marker intervenes. The inserted space is suppressed when the characters
// on both sides of the gap are CJK, since those scripts do not use
// inter-word spaces.
func (b *TextBuilder) assemble(fragments []model.Fragment, threshold float64) string {
	var sb strings.Builder
	var prev *model.Fragment
	pendingSpace := false

	for i := range fragments {
		f := fragments[i]
		if f.IsWhitespace {
			pendingSpace = true
			continue
		}

		if prev != nil {
			gap := f.X - prev.Right()
			if pendingSpace || gap > threshold {
				if !wtext.NoSpaceBetween(wtext.LastRune(prev.Text), wtext.FirstRune(f.Text)) {
					sb.WriteByte(' ')
				}
			}
		}
		sb.WriteString(f.Text)
		prev = &fragments[i]
		pendingSpace = false
	}

	return sb.String()
}

// singleCharHeavy reports whether more than the configured share of
// fragments are single characters.
func (b *TextBuilder) singleCharHeavy(words []model.Fragment) bool {
	if len(words) == 0 {
		return false
	}
	single := 0
	for _, f := range words {
		if len([]rune(f.Text)) == 1 {
			single++
		}
	}
	return float64(single)/float64(len(words)) > b.config.SingleCharShare
}

// nonWhitespace filters out whitespace-marker fragments.
func nonWhitespace(fragments []model.Fragment) []model.Fragment {
	words := make([]model.Fragment, 0, len(fragments))
	for _, f := range fragments {
		if !f.IsWhitespace {
			words = append(words, f)
		}
	}
	return words
}

// positiveGaps returns the positive horizontal gaps between adjacent
// non-whitespace fragments, sorted ascending.
func positiveGaps(words []model.Fragment) []float64 {
	var gaps []float64
	for i := 1; i < len(words); i++ {
		gap := words[i].X - words[i-1].Right()
		if gap > 0 {
			gaps = append(gaps, gap)
		}
	}
	sort.Float64s(gaps)
	return gaps
}

// gapQuantiles returns the median and 90th-percentile of a sorted gap
// list.
func gapQuantiles(sorted []float64) (median, p90 float64) {
	n := len(sorted)
	if n == 0 {
		return 0, 0
	}
	median = sorted[n/2]
	idx := (n * 9) / 10
	if idx >= n {
		idx = n - 1
	}
	p90 = sorted[idx]
	return median, p90
}

// collapseSpaces trims the string and collapses internal runs of spaces
// and tabs to a single space.
func collapseSpaces(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	space := false
	for _, r := range s {
		if r == ' ' || r == '\t' {
			space = true
			continue
		}
		if space && sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		space = false
		sb.WriteRune(r)
	}
	return sb.String()
}
