package submissiondb

import (
	"context"

	"github.com/codeclash-oj/codeclash/app/shared/sharedtypes"
)

// VerdictResult reports what ApplyVerdict did to a submission row.
type VerdictResult struct {
	Submission Submission
	// PreviousOutcome is the outcome the row held before the verdict was
	// applied.
	PreviousOutcome sharedtypes.Outcome
	// Conflict is set when a terminal outcome was overwritten by a
	// different terminal outcome.
	Conflict bool
}

// SubmissionDB handles database operations for submissions and their contest
// attributions.
type SubmissionDB interface {
	CreateSubmission(ctx context.Context, submission *Submission) (*Submission, error)
	GetSubmission(ctx context.Context, id sharedtypes.SubmissionID) (*Submission, error)
	ListUserSubmissions(ctx context.Context, userID sharedtypes.UserID) ([]Submission, error)
	ApplyVerdict(ctx context.Context, id sharedtypes.SubmissionID, outcome sharedtypes.Outcome, executionTimeMS, memoryKB int64) (*VerdictResult, error)
	ListSubmissionEvents(ctx context.Context, problemIDs []sharedtypes.ProblemID, userIDs []sharedtypes.UserID, window sharedtypes.ContestWindow) ([]sharedtypes.SubmissionEvent, error)
	UpsertContestSubmissions(ctx context.Context, rows []ContestSubmission) error
}
