package submissionservice

import (
	"context"

	submissiondb "github.com/codeclash-oj/codeclash/app/modules/submission/infrastructure/repositories"
	"github.com/codeclash-oj/codeclash/app/shared/sharedtypes"
)

// FakeSubmissionDB provides a programmable stub for the
// submissiondb.SubmissionDB interface.
type FakeSubmissionDB struct {
	trace []string

	CreateSubmissionFunc         func(ctx context.Context, submission *submissiondb.Submission) (*submissiondb.Submission, error)
	GetSubmissionFunc            func(ctx context.Context, id sharedtypes.SubmissionID) (*submissiondb.Submission, error)
	ListUserSubmissionsFunc      func(ctx context.Context, userID sharedtypes.UserID) ([]submissiondb.Submission, error)
	ApplyVerdictFunc             func(ctx context.Context, id sharedtypes.SubmissionID, outcome sharedtypes.Outcome, executionTimeMS, memoryKB int64) (*submissiondb.VerdictResult, error)
	ListSubmissionEventsFunc     func(ctx context.Context, problemIDs []sharedtypes.ProblemID, userIDs []sharedtypes.UserID, window sharedtypes.ContestWindow) ([]sharedtypes.SubmissionEvent, error)
	UpsertContestSubmissionsFunc func(ctx context.Context, rows []submissiondb.ContestSubmission) error
}

var _ submissiondb.SubmissionDB = (*FakeSubmissionDB)(nil)

func NewFakeSubmissionDB() *FakeSubmissionDB {
	return &FakeSubmissionDB{trace: []string{}}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeSubmissionDB) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeSubmissionDB) CreateSubmission(ctx context.Context, submission *submissiondb.Submission) (*submissiondb.Submission, error) {
	f.trace = append(f.trace, "CreateSubmission")
	if f.CreateSubmissionFunc != nil {
		return f.CreateSubmissionFunc(ctx, submission)
	}
	created := *submission
	created.ID = 1
	return &created, nil
}

func (f *FakeSubmissionDB) GetSubmission(ctx context.Context, id sharedtypes.SubmissionID) (*submissiondb.Submission, error) {
	f.trace = append(f.trace, "GetSubmission")
	if f.GetSubmissionFunc != nil {
		return f.GetSubmissionFunc(ctx, id)
	}
	return nil, submissiondb.ErrSubmissionNotFound
}

func (f *FakeSubmissionDB) ListUserSubmissions(ctx context.Context, userID sharedtypes.UserID) ([]submissiondb.Submission, error) {
	f.trace = append(f.trace, "ListUserSubmissions")
	if f.ListUserSubmissionsFunc != nil {
		return f.ListUserSubmissionsFunc(ctx, userID)
	}
	return nil, nil
}

func (f *FakeSubmissionDB) ApplyVerdict(ctx context.Context, id sharedtypes.SubmissionID, outcome sharedtypes.Outcome, executionTimeMS, memoryKB int64) (*submissiondb.VerdictResult, error) {
	f.trace = append(f.trace, "ApplyVerdict")
	if f.ApplyVerdictFunc != nil {
		return f.ApplyVerdictFunc(ctx, id, outcome, executionTimeMS, memoryKB)
	}
	return &submissiondb.VerdictResult{
		Submission: submissiondb.Submission{ID: id, Outcome: outcome},
	}, nil
}

func (f *FakeSubmissionDB) ListSubmissionEvents(ctx context.Context, problemIDs []sharedtypes.ProblemID, userIDs []sharedtypes.UserID, window sharedtypes.ContestWindow) ([]sharedtypes.SubmissionEvent, error) {
	f.trace = append(f.trace, "ListSubmissionEvents")
	if f.ListSubmissionEventsFunc != nil {
		return f.ListSubmissionEventsFunc(ctx, problemIDs, userIDs, window)
	}
	return nil, nil
}

func (f *FakeSubmissionDB) UpsertContestSubmissions(ctx context.Context, rows []submissiondb.ContestSubmission) error {
	f.trace = append(f.trace, "UpsertContestSubmissions")
	if f.UpsertContestSubmissionsFunc != nil {
		return f.UpsertContestSubmissionsFunc(ctx, rows)
	}
	return nil
}
