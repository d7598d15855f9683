package model

import "math"

// DefaultBodyHeight is the body text height assumed when a document has no
// text fragments at all (image-only pages).
const DefaultBodyHeight = 12.0

// DocumentStats holds document-wide measurements computed once from all
// fragments. Every later pipeline stage treats it as read-only
// configuration.
type DocumentStats struct {
	// BodyHeight is the modal (most frequent) fragment height, rounded to
	// one decimal. The mode resists skew from headers and footnotes in a
	// way the mean does not.
	BodyHeight float64

	// HeaderThreshold is the minimum line height for a level-3 heading
	HeaderThreshold float64

	// SubHeaderThreshold is the minimum line height for a level-2 heading
	SubHeaderThreshold float64

	// PageHeights maps 1-based page numbers to page heights
	PageHeights map[int]float64

	// PageCount is the total number of pages in the document
	PageCount int
}

// ComputeStats builds document statistics from all fragments and page
// dimensions. When no fragments exist, BodyHeight falls back to
// DefaultBodyHeight; callers short-circuit such documents before reaching
// the layout stages.
func ComputeStats(fragments []Fragment, pages []*Page) DocumentStats {
	stats := DocumentStats{
		BodyHeight:  bodyHeight(fragments),
		PageHeights: make(map[int]float64, len(pages)),
		PageCount:   len(pages),
	}
	stats.HeaderThreshold = stats.BodyHeight * 1.15
	stats.SubHeaderThreshold = stats.BodyHeight * 1.4

	for _, p := range pages {
		stats.PageHeights[p.Number] = p.Height
	}
	return stats
}

// bodyHeight returns the most frequent fragment height, rounded to one
// decimal. Ties resolve to the smallest height so the result is stable
// regardless of input order.
func bodyHeight(fragments []Fragment) float64 {
	counts := make(map[float64]int)
	for _, f := range fragments {
		counts[roundTenth(f.Height)]++
	}
	if len(counts) == 0 {
		return DefaultBodyHeight
	}

	best := 0.0
	bestCount := 0
	for h, n := range counts {
		if n > bestCount || (n == bestCount && h < best) {
			best = h
			bestCount = n
		}
	}
	return best
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
