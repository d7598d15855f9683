// Package text provides script-aware text utilities and the final
// normalization pass of the textweave pipeline: hyphenation repair,
// hard-wrap paragraph merging, and blank-line collapsing.
package text
