package textweave

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tsawler/textweave/layout"
	"github.com/tsawler/textweave/model"
	wtext "github.com/tsawler/textweave/text"
)

// Reconstructor runs the reconstruction pipeline over one document. It is
// single-use and not safe for concurrent use; process multiple documents
// with Batch or with one Reconstructor each.
type Reconstructor struct {
	source  Source
	options Options
}

// Options returns a copy of the reconstructor's options.
func (r *Reconstructor) Options() Options {
	return r.options
}

// Text runs the pipeline and returns the reconstructed blob. The source is
// closed before Text returns, on every path. Cancellation surfaces as
// ctx.Err(); use Result for the full per-document status taxonomy.
func (r *Reconstructor) Text(ctx context.Context) (string, error) {
	defer r.source.Close()
	return r.reconstruct(ctx)
}

// Result runs the pipeline and converts any failure into a per-document
// status. Nothing escapes the document boundary: errors, cancellation, and
// panics all land in the Result.
func (r *Reconstructor) Result(ctx context.Context) (result Result) {
	result.Name = r.source.Name()

	defer func() {
		if rec := recover(); rec != nil {
			result = Result{
				Name:   result.Name,
				Status: StatusFailed,
				Err:    fmt.Errorf("reconstruction panic: %v", rec),
			}
		}
	}()
	defer r.source.Close()

	text, err := r.reconstruct(ctx)
	result.Status, result.Err = classifyError(err)
	if result.Status == StatusProcessed {
		result.Text = text
	}
	return result
}

// Batch processes documents strictly one at a time, in order. A failure or
// cancellation of one document never aborts its siblings; callers that
// want to stop a whole batch cancel ctx, and the remaining documents come
// back as StatusNotProcessed.
func Batch(ctx context.Context, sources []Source) []Result {
	results := make([]Result, 0, len(sources))
	for _, src := range sources {
		results = append(results, New(src).Result(ctx))
	}
	return results
}

// reconstruct runs the pipeline stages in order: ingestion, statistics,
// sequencing, line text building, classification, normalization.
func (r *Reconstructor) reconstruct(ctx context.Context) (string, error) {
	title := documentTitle(r.source.Name())

	pages, fragments, err := r.ingest(ctx)
	if err != nil {
		return "", err
	}

	if !hasText(fragments) {
		return placeholder(title), nil
	}

	stats := model.ComputeStats(fragments, pages)

	opts := r.options
	opts.Classifier.Furniture.Disabled = opts.Classifier.Furniture.Disabled || opts.KeepPageMarkers

	sequencer := layout.NewSequencerWithConfig(opts.Sequence)
	lines, err := sequencer.Sequence(ctx, fragments, stats)
	if err != nil {
		return "", err
	}

	records := layout.NewTextBuilderWithConfig(opts.Text).BuildAll(lines)
	body := layout.NewClassifierWithConfig(opts.Classifier).Assemble(records, stats)
	body = wtext.NewNormalizerWithConfig(opts.Normalize).Normalize(body)

	return frame(title, body, opts.Footer), nil
}

// ingest pulls every page from the source, normalizes coordinates to
// top-down, enforces the per-page text cap, and flattens fragments into a
// single document-ordered slice. ctx is checked at each page boundary and
// every CancelCheckInterval fragments.
func (r *Reconstructor) ingest(ctx context.Context) ([]*model.Page, []model.Fragment, error) {
	count, err := r.source.PageCount()
	if err != nil {
		return nil, nil, fmt.Errorf("page count: %w", err)
	}

	interval := r.options.Sequence.CancelCheckInterval
	if interval <= 0 {
		interval = 200
	}

	pages := make([]*model.Page, 0, count)
	var fragments []model.Fragment
	processed := 0

	for n := 1; n <= count; n++ {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		page, err := r.source.Page(n)
		if err != nil {
			return nil, nil, fmt.Errorf("page %d: %w", n, err)
		}
		if limit := r.options.MaxPageTextBytes; limit > 0 && page.TextBytes() > limit {
			return nil, nil, fmt.Errorf("page %d: %w", n, ErrPageTextLimit)
		}

		page = page.FlipVertical()
		pages = append(pages, page)

		for _, f := range page.Fragments {
			if processed%interval == 0 {
				if err := ctx.Err(); err != nil {
					return nil, nil, err
				}
			}
			processed++

			f.Page = page.Number
			fragments = append(fragments, f)
		}
	}

	return pages, fragments, nil
}

// hasText reports whether any fragment carries visible text.
func hasText(fragments []model.Fragment) bool {
	for _, f := range fragments {
		if !f.IsBlank() {
			return true
		}
	}
	return false
}

// documentTitle derives the output title from the source name, with any
// directory and extension stripped.
func documentTitle(name string) string {
	base := filepath.Base(name)
	if ext := filepath.Ext(base); ext != "" && ext != base {
		base = base[:len(base)-len(ext)]
	}
	if base == "" || base == "." {
		return "document"
	}
	return base
}

// placeholder is the output for documents with no text fragments, such as
// image-only scans.
func placeholder(title string) string {
	return "# " + title + "\n\nNo text detected.\n"
}

// frame wraps the reconstructed body with the title header and the
// trailing separator plus attribution footer.
func frame(title, body, footer string) string {
	var sb strings.Builder
	sb.WriteString("# ")
	sb.WriteString(title)
	sb.WriteString("\n\n")
	sb.WriteString(strings.TrimRight(body, "\n"))
	if footer != "" {
		sb.WriteString("\n\n---\n\n")
		sb.WriteString(footer)
	}
	sb.WriteString("\n")
	return sb.String()
}
