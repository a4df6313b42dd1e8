package submissionservice

import (
	"context"

	submissiondb "github.com/codeclash-oj/codeclash/app/modules/submission/infrastructure/repositories"
	"github.com/codeclash-oj/codeclash/app/shared/sharedtypes"
)

// Service is the submission module's public surface. Solution upload and
// forwarding to the judge live outside this service; it owns the event
// store: submission rows, verdict application, and the snapshot reads the
// standings engine consumes.
type Service interface {
	CreateSubmission(ctx context.Context, userID sharedtypes.UserID, problemID sharedtypes.ProblemID, language string) (*submissiondb.Submission, error)
	GetSubmission(ctx context.Context, id sharedtypes.SubmissionID) (*submissiondb.Submission, error)
	ListUserSubmissions(ctx context.Context, userID sharedtypes.UserID) ([]submissiondb.Submission, error)
	ApplyJudgeVerdict(ctx context.Context, id sharedtypes.SubmissionID, outcome sharedtypes.Outcome, executionTimeMS, memoryKB int64) (*submissiondb.Submission, error)
	ListSubmissionEvents(ctx context.Context, problemIDs []sharedtypes.ProblemID, userIDs []sharedtypes.UserID, window sharedtypes.ContestWindow) ([]sharedtypes.SubmissionEvent, error)
	UpsertContestSubmissions(ctx context.Context, rows []submissiondb.ContestSubmission) error
}
