package text

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeConfig holds configuration for the normalization pass.
type NormalizeConfig struct {
	// MaxBlankRun is the number of consecutive blank lines at which a run
	// collapses to a single blank line (default: 3)
	MaxBlankRun int
}

// DefaultNormalizeConfig returns sensible default configuration.
func DefaultNormalizeConfig() NormalizeConfig {
	return NormalizeConfig{
		MaxBlankRun: 3,
	}
}

// Normalizer performs the final text cleanup pass: hyphenation repair,
// hard-wrap paragraph merging, and blank-line collapsing. The result is
// NFC-normalized UTF-8.
type Normalizer struct {
	config NormalizeConfig
}

// NewNormalizer creates a normalizer with default configuration.
func NewNormalizer() *Normalizer {
	return &Normalizer{config: DefaultNormalizeConfig()}
}

// NewNormalizerWithConfig creates a normalizer with custom configuration.
func NewNormalizerWithConfig(config NormalizeConfig) *Normalizer {
	return &Normalizer{config: config}
}

// Normalize runs the full cleanup pass over assembled document text.
func (n *Normalizer) Normalize(s string) string {
	s = MergeHyphenation(s)
	s = n.mergeHardWraps(s)
	s = n.CollapseBlankLines(s)
	return norm.NFC.String(s)
}

// hyphenBreak matches a letter or digit, a hyphen, a line break, and
// another letter or digit: the signature of a hyphenated word split across
// lines.
var hyphenBreak = regexp.MustCompile(`([\p{L}\p{N}])-\n([\p{L}\p{N}])`)

// MergeHyphenation rejoins words hyphenated across line breaks
// ("exam-\nple" becomes "example"). The operation is idempotent.
func MergeHyphenation(s string) string {
	// Repeat until stable: consecutive hyphen breaks share boundary runes,
	// so a single ReplaceAll pass can miss the second of two adjacent
	// matches.
	for {
		merged := hyphenBreak.ReplaceAllString(s, "$1$2")
		if merged == s {
			return merged
		}
		s = merged
	}
}

var orderedItemPattern = regexp.MustCompile(`^\d+\.`)

// IsHeadingLine reports whether a line carries a markdown heading marker.
func IsHeadingLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "#")
}

// IsListLine reports whether a line is a bullet or ordered list item.
func IsListLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "- ") || orderedItemPattern.MatchString(trimmed)
}

// IsRuleLine reports whether a line is a horizontal rule marker.
func IsRuleLine(line string) bool {
	return strings.TrimSpace(line) == "---"
}

// mergeHardWraps re-joins consecutive lines into paragraphs. Blank lines,
// headings, list items, and rule markers are hard boundaries; a line whose
// text ends in sentence-final punctuation closes its paragraph. A list
// item may absorb a following plain line (a wrapped list entry), but a
// list item never merges into preceding text.
func (n *Normalizer) mergeHardWraps(s string) string {
	lines := strings.Split(s, "\n")

	var out []string
	buffer := ""
	haveBuffer := false

	flush := func() {
		if haveBuffer {
			out = append(out, buffer)
			buffer = ""
			haveBuffer = false
		}
	}

	for _, line := range lines {
		if !haveBuffer {
			if strings.TrimSpace(line) == "" {
				out = append(out, line)
				continue
			}
			buffer = line
			haveBuffer = true
			continue
		}

		if !n.canJoin(buffer, line) {
			flush()
			if strings.TrimSpace(line) == "" {
				out = append(out, line)
				continue
			}
			buffer = line
			haveBuffer = true
			continue
		}

		continuation := strings.TrimLeft(line, " \t")
		if NoSpaceBetween(LastRune(buffer), FirstRune(continuation)) {
			buffer += continuation
		} else {
			buffer += " " + continuation
		}
	}
	flush()

	return strings.Join(out, "\n")
}

// canJoin decides whether line continues the paragraph held in buffer.
func (n *Normalizer) canJoin(buffer, line string) bool {
	if strings.TrimSpace(buffer) == "" || strings.TrimSpace(line) == "" {
		return false
	}
	if IsHeadingLine(buffer) || IsHeadingLine(line) {
		return false
	}
	if IsRuleLine(buffer) || IsRuleLine(line) {
		return false
	}
	// An incoming list item starts its own paragraph; a list item already
	// in the buffer may still be continued by a plain wrapped line.
	if IsListLine(line) {
		return false
	}
	if endsSentence(buffer) {
		return false
	}
	return true
}

// endsSentence reports whether the buffer's last non-space character is
// sentence-final punctuation. A trailing dash signals a deliberate wrap,
// not a sentence end.
func endsSentence(s string) bool {
	trimmed := strings.TrimRight(s, " \t")
	if trimmed == "" {
		return false
	}
	last := LastRune(trimmed)
	switch last {
	case '-', '–', '—':
		return false
	case '.', '!', '?', '。', '！', '？', '．':
		return true
	}
	return false
}

// CollapseBlankLines collapses runs of MaxBlankRun or more consecutive
// blank lines to a single blank line. The operation is idempotent.
func (n *Normalizer) CollapseBlankLines(s string) string {
	limit := n.config.MaxBlankRun
	if limit < 2 {
		limit = 2
	}

	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blanks := 0

	emitBlanks := func() {
		if blanks == 0 {
			return
		}
		if blanks >= limit {
			out = append(out, "")
		} else {
			for i := 0; i < blanks; i++ {
				out = append(out, "")
			}
		}
		blanks = 0
	}

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			blanks++
			continue
		}
		emitBlanks()
		out = append(out, line)
	}
	emitBlanks()

	return strings.Join(out, "\n")
}
