package layout

import (
	"context"
	"sort"

	"github.com/tsawler/textweave/model"
)

// Line is an ordered cluster of fragments judged to lie on the same visual
// text line of one page. The anchor Y is the Y of the line's first-seen
// fragment; it does not drift as fragments join the cluster.
type Line struct {
	// Page is the 1-based page number shared by all fragments
	Page int

	// Y is the anchor Y coordinate (top-down) of the line
	Y float64

	// Fragments are the line's fragments, sorted by X ascending
	Fragments []model.Fragment
}

// LineRecord is the derived, read-only view of a line after text building.
// It is the unit the Classifier and Normalizer operate on.
type LineRecord struct {
	// Page is the 1-based page number
	Page int

	// Y is the line's anchor Y coordinate (top-down)
	Y float64

	// Text is the assembled line text
	Text string

	// MaxHeight is the largest fragment height in the line
	MaxHeight float64
}

// SequenceConfig holds configuration for reading-order sequencing.
type SequenceConfig struct {
	// BaselineJitter is the Y epsilon under which two fragments are
	// ordered by X instead of Y, absorbing sub-pixel baseline noise
	// (default: 2 units)
	BaselineJitter float64

	// MinLineTolerance is the floor for the line clustering tolerance
	// (default: 2 units)
	MinLineTolerance float64

	// LineToleranceRatio scales the body height into the clustering
	// tolerance (default: 0.25)
	LineToleranceRatio float64

	// CancelCheckInterval is how many fragments are processed between
	// cancellation checks (default: 200)
	CancelCheckInterval int
}

// DefaultSequenceConfig returns sensible default configuration.
func DefaultSequenceConfig() SequenceConfig {
	return SequenceConfig{
		BaselineJitter:      2.0,
		MinLineTolerance:    2.0,
		LineToleranceRatio:  0.25,
		CancelCheckInterval: 200,
	}
}

// Sequencer sorts and clusters fragments into ordered visual lines.
type Sequencer struct {
	config SequenceConfig
}

// NewSequencer creates a sequencer with default configuration.
func NewSequencer() *Sequencer {
	return &Sequencer{config: DefaultSequenceConfig()}
}

// NewSequencerWithConfig creates a sequencer with custom configuration.
func NewSequencerWithConfig(config SequenceConfig) *Sequencer {
	return &Sequencer{config: config}
}

// LineTolerance returns the Y distance at which a fragment opens a new
// line, derived from the document's body height.
func (s *Sequencer) LineTolerance(bodyHeight float64) float64 {
	tolerance := bodyHeight * s.config.LineToleranceRatio
	if tolerance < s.config.MinLineTolerance {
		tolerance = s.config.MinLineTolerance
	}
	return tolerance
}

// Sequence orders fragments into lines in final reading order across the
// whole document. It checks ctx at bounded intervals and returns ctx.Err()
// on cancellation.
func (s *Sequencer) Sequence(ctx context.Context, fragments []model.Fragment, stats model.DocumentStats) ([]Line, error) {
	if len(fragments) == 0 {
		return nil, nil
	}

	sorted := make([]model.Fragment, len(fragments))
	copy(sorted, fragments)
	jitter := s.config.BaselineJitter
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Page != b.Page {
			return a.Page < b.Page
		}
		if diff := a.Y - b.Y; diff <= -jitter || diff >= jitter {
			return diff < 0
		}
		return a.X < b.X
	})

	tolerance := s.LineTolerance(stats.BodyHeight)
	interval := s.config.CancelCheckInterval
	if interval <= 0 {
		interval = 200
	}

	var lines []Line
	var current *Line

	for i, frag := range sorted {
		if i%interval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		if current == nil || frag.Page != current.Page || absFloat(frag.Y-current.Y) >= tolerance {
			if current != nil {
				current.freeze()
				lines = append(lines, *current)
			}
			current = &Line{
				Page:      frag.Page,
				Y:         frag.Y,
				Fragments: []model.Fragment{frag},
			}
			continue
		}
		current.Fragments = append(current.Fragments, frag)
	}
	if current != nil {
		current.freeze()
		lines = append(lines, *current)
	}

	return lines, nil
}

// freeze re-sorts the line's fragments by X before the line is published.
// Fragments can arrive out of X order within the jitter band of the global
// sort.
func (l *Line) freeze() {
	sort.SliceStable(l.Fragments, func(i, j int) bool {
		return l.Fragments[i].X < l.Fragments[j].X
	})
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
