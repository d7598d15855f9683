package textweave

import (
	"context"
	"errors"
	"strings"
)

// ErrPasswordRequired is returned (wrapped) by sources when a document
// needs a passphrase that was missing or incorrect. It is the primary
// signal for the "password protected" condition; message-text matching is
// only a fallback for sources that cannot wrap it.
var ErrPasswordRequired = errors.New("password required")

// ErrPageTextLimit is returned when a single page's extracted text exceeds
// the configured byte cap. It is fatal for the document, not the batch.
var ErrPageTextLimit = errors.New("page text exceeds size limit")

// Status classifies the outcome of processing one document.
type Status int

const (
	// StatusProcessed means reconstruction completed and Text is valid
	StatusProcessed Status = iota

	// StatusNotProcessed means the document was cancelled before
	// completion; not a failure, and no message accompanies it
	StatusNotProcessed

	// StatusPasswordProtected means the document requires a passphrase
	StatusPasswordProtected

	// StatusFailed means extraction or reconstruction failed for this
	// document
	StatusFailed
)

// String returns a string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusProcessed:
		return "processed"
	case StatusNotProcessed:
		return "not processed"
	case StatusPasswordProtected:
		return "password protected"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the per-document outcome. Failures in one document never
// affect its siblings in a batch.
type Result struct {
	// Name is the source document's display name
	Name string

	// Text is the reconstructed blob; empty unless Status is
	// StatusProcessed
	Text string

	// Status classifies the outcome
	Status Status

	// Err carries the failure reason for StatusFailed and
	// StatusPasswordProtected; nil otherwise
	Err error
}

// classifyError maps a pipeline error onto the per-document status
// taxonomy. Cancellation is not a failure and carries no message.
func classifyError(err error) (Status, error) {
	if err == nil {
		return StatusProcessed, nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return StatusNotProcessed, nil
	}
	if errors.Is(err, ErrPasswordRequired) || mentionsPassword(err) {
		return StatusPasswordProtected, err
	}
	return StatusFailed, err
}

// mentionsPassword is the message-text fallback for extraction layers that
// cannot wrap ErrPasswordRequired.
func mentionsPassword(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "password") || strings.Contains(msg, "encrypted")
}
