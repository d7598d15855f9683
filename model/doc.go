// Package model defines the core data types shared across the textweave
// pipeline: positioned text fragments, pages, and the document-wide
// statistics that parametrize the layout heuristics.
//
// All types in this package are plain values. Fragments are immutable once
// created; DocumentStats is computed once per document and treated as
// read-only configuration by every later stage.
package model
