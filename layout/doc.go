// Package layout reconstructs reading order and document structure from
// positioned text fragments.
//
// It provides three detectors, each following the same shape: a struct
// configured by a Config value with a Default*Config constructor.
//
//   - Sequencer clusters fragments into ordered visual lines per page.
//   - TextBuilder converts a line's fragments into a text string, inferring
//     word boundaries from horizontal gaps.
//   - Classifier assigns heading levels, normalizes list markers, inserts
//     paragraph breaks and section rules, and suppresses recurring page
//     furniture (page numbers, running headers and footers).
package layout
