package textweave

import (
	"github.com/tsawler/textweave/layout"
	wtext "github.com/tsawler/textweave/text"
)

// DefaultMaxPageTextBytes is the per-page cap on extracted text, guarding
// against pathological documents exhausting memory.
const DefaultMaxPageTextBytes = 200 << 20 // 200 MB

// Options holds configuration for the whole reconstruction pipeline. The
// zero value is not usable; start from DefaultOptions.
type Options struct {
	// Sequence configures reading-order line clustering
	Sequence layout.SequenceConfig

	// Text configures line text assembly and word-gap inference
	Text layout.TextConfig

	// Classifier configures heading, list, paragraph, and furniture rules
	Classifier layout.ClassifierConfig

	// Normalize configures the final cleanup pass
	Normalize wtext.NormalizeConfig

	// MaxPageTextBytes caps extracted text per page; exceeding it fails
	// the document (default: DefaultMaxPageTextBytes)
	MaxPageTextBytes int

	// KeepPageMarkers disables recurring page-furniture suppression
	KeepPageMarkers bool

	// Footer is the attribution line appended after the trailing
	// separator; empty suppresses the footer block entirely
	Footer string
}

// DefaultOptions returns the default pipeline configuration.
func DefaultOptions() Options {
	return Options{
		Sequence:         layout.DefaultSequenceConfig(),
		Text:             layout.DefaultTextConfig(),
		Classifier:       layout.DefaultClassifierConfig(),
		Normalize:        wtext.DefaultNormalizeConfig(),
		MaxPageTextBytes: DefaultMaxPageTextBytes,
		Footer:           "*Reconstructed by textweave*",
	}
}
