package submissiondb

import "errors"

var (
	// ErrSubmissionNotFound is returned when no submission exists for an ID.
	ErrSubmissionNotFound = errors.New("submission not found")
)
