package layout

import (
	"math"
	"strings"
	"unicode"

	"github.com/tsawler/textweave/model"
)

// FurnitureConfig holds configuration for recurring page-marker detection.
// Page furniture (page numbers, running headers and footers) is identified
// statistically across pages rather than by a fixed "looks like a page
// number" pattern, so arbitrary running-header text is caught too.
type FurnitureConfig struct {
	// Disabled switches furniture suppression off entirely
	Disabled bool

	// BandRatio is the fraction of the page height at the top and bottom
	// considered the furniture zone (default: 0.10)
	BandRatio float64

	// MaxHeightRatio is the fraction of the body height below which a
	// line is visually subordinate enough to be furniture (default: 0.95)
	MaxHeightRatio float64

	// MinPageShare is the fraction of pages a normalized marker must
	// recur on (default: 0.4)
	MinPageShare float64

	// MinPages is the floor for the recurrence threshold (default: 2)
	MinPages int

	// BucketMin and BucketHeightRatio control the Y quantization used to
	// tolerate slight vertical drift between pages: bucket size is
	// max(BucketMin, bodyHeight*BucketHeightRatio) (defaults: 4, 0.5)
	BucketMin         float64
	BucketHeightRatio float64
}

// DefaultFurnitureConfig returns sensible default configuration.
func DefaultFurnitureConfig() FurnitureConfig {
	return FurnitureConfig{
		BandRatio:         0.10,
		MaxHeightRatio:    0.95,
		MinPageShare:      0.4,
		MinPages:          2,
		BucketMin:         4.0,
		BucketHeightRatio: 0.5,
	}
}

type regionBand int

const (
	bandTop regionBand = iota
	bandBottom
)

type furnitureKey struct {
	text   string
	band   regionBand
	bucket int
}

type furnitureGroup struct {
	pages   map[int]struct{}
	members []int
}

// detectFurniture returns the set of record indices flagged as page
// furniture. A line qualifies as a candidate when it sits in the top or
// bottom band of its page and its height is below the body text; a
// candidate group is furniture when its normalized text recurs at the same
// banded Y bucket on enough distinct pages.
func (c *Classifier) detectFurniture(records []LineRecord, stats model.DocumentStats) map[int]bool {
	cfg := c.config.Furniture
	if cfg.Disabled {
		return nil
	}

	bucketSize := stats.BodyHeight * cfg.BucketHeightRatio
	if bucketSize < cfg.BucketMin {
		bucketSize = cfg.BucketMin
	}

	groups := make(map[furnitureKey]*furnitureGroup)

	for i, r := range records {
		pageHeight := stats.PageHeights[r.Page]
		if pageHeight <= 0 {
			continue
		}
		if r.MaxHeight >= stats.BodyHeight*cfg.MaxHeightRatio {
			continue
		}

		var band regionBand
		switch {
		case r.Y < pageHeight*cfg.BandRatio:
			band = bandTop
		case r.Y > pageHeight*(1-cfg.BandRatio):
			band = bandBottom
		default:
			continue
		}

		normalized := normalizeMarkerText(r.Text)
		if normalized == "" {
			continue
		}

		key := furnitureKey{
			text:   normalized,
			band:   band,
			bucket: int(r.Y / bucketSize),
		}
		group := groups[key]
		if group == nil {
			group = &furnitureGroup{pages: make(map[int]struct{})}
			groups[key] = group
		}
		group.pages[r.Page] = struct{}{}
		group.members = append(group.members, i)
	}

	needed := int(math.Ceil(float64(stats.PageCount) * cfg.MinPageShare))
	if needed < cfg.MinPages {
		needed = cfg.MinPages
	}

	flagged := make(map[int]bool)
	for _, group := range groups {
		if len(group.pages) < needed {
			continue
		}
		for _, idx := range group.members {
			flagged[idx] = true
		}
	}
	return flagged
}

// normalizeMarkerText canonicalizes candidate furniture text: lower-case,
// punctuation and symbols stripped, every digit run collapsed to a single
// placeholder digit, whitespace removed. "Page 12 of 130" and
// "Page 7 of 130" normalize identically.
func normalizeMarkerText(s string) string {
	var sb strings.Builder
	inDigits := false
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsDigit(r):
			if !inDigits {
				sb.WriteByte('0')
			}
			inDigits = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r) || unicode.IsSpace(r):
			inDigits = false
		default:
			inDigits = false
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
