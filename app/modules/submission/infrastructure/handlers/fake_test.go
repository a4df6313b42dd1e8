package submissionhandlers

import (
	"context"
	"time"

	contestservice "github.com/codeclash-oj/codeclash/app/modules/contest/application"
	standingsservice "github.com/codeclash-oj/codeclash/app/modules/standings/application"
	standingstypes "github.com/codeclash-oj/codeclash/app/modules/standings/domain/types"
	submissionservice "github.com/codeclash-oj/codeclash/app/modules/submission/application"
	submissiondb "github.com/codeclash-oj/codeclash/app/modules/submission/infrastructure/repositories"
	"github.com/codeclash-oj/codeclash/app/shared/sharedtypes"
)

// FakeSubmissionService provides a programmable stub for the
// submissionservice.Service interface.
type FakeSubmissionService struct {
	ApplyJudgeVerdictFunc func(ctx context.Context, id sharedtypes.SubmissionID, outcome sharedtypes.Outcome, executionTimeMS, memoryKB int64) (*submissiondb.Submission, error)
}

var _ submissionservice.Service = (*FakeSubmissionService)(nil)

func (f *FakeSubmissionService) CreateSubmission(ctx context.Context, userID sharedtypes.UserID, problemID sharedtypes.ProblemID, language string) (*submissiondb.Submission, error) {
	return nil, nil
}

func (f *FakeSubmissionService) GetSubmission(ctx context.Context, id sharedtypes.SubmissionID) (*submissiondb.Submission, error) {
	return nil, submissiondb.ErrSubmissionNotFound
}

func (f *FakeSubmissionService) ListUserSubmissions(ctx context.Context, userID sharedtypes.UserID) ([]submissiondb.Submission, error) {
	return nil, nil
}

func (f *FakeSubmissionService) ApplyJudgeVerdict(ctx context.Context, id sharedtypes.SubmissionID, outcome sharedtypes.Outcome, executionTimeMS, memoryKB int64) (*submissiondb.Submission, error) {
	if f.ApplyJudgeVerdictFunc != nil {
		return f.ApplyJudgeVerdictFunc(ctx, id, outcome, executionTimeMS, memoryKB)
	}
	return &submissiondb.Submission{ID: id, Outcome: outcome}, nil
}

func (f *FakeSubmissionService) ListSubmissionEvents(ctx context.Context, problemIDs []sharedtypes.ProblemID, userIDs []sharedtypes.UserID, window sharedtypes.ContestWindow) ([]sharedtypes.SubmissionEvent, error) {
	return nil, nil
}

func (f *FakeSubmissionService) UpsertContestSubmissions(ctx context.Context, rows []submissiondb.ContestSubmission) error {
	return nil
}

// FakeContestService provides a programmable stub for the
// contestservice.Service interface.
type FakeContestService struct {
	ListContestsForProblemFunc func(ctx context.Context, problemID sharedtypes.ProblemID, at time.Time) ([]sharedtypes.ContestDefinition, error)
}

var _ contestservice.Service = (*FakeContestService)(nil)

func (f *FakeContestService) CreateContest(ctx context.Context, name string, problemIDs []sharedtypes.ProblemID, start, end time.Time) (sharedtypes.ContestDefinition, error) {
	return sharedtypes.ContestDefinition{}, nil
}

func (f *FakeContestService) GetContest(ctx context.Context, id sharedtypes.ContestID) (sharedtypes.ContestDefinition, error) {
	return sharedtypes.ContestDefinition{}, nil
}

func (f *FakeContestService) ListContests(ctx context.Context) ([]sharedtypes.ContestDefinition, error) {
	return nil, nil
}

func (f *FakeContestService) Register(ctx context.Context, contestID sharedtypes.ContestID, userID sharedtypes.UserID) error {
	return nil
}

func (f *FakeContestService) ListRegistrants(ctx context.Context, contestID sharedtypes.ContestID) ([]sharedtypes.UserID, error) {
	return nil, nil
}

func (f *FakeContestService) ListContestsForProblem(ctx context.Context, problemID sharedtypes.ProblemID, at time.Time) ([]sharedtypes.ContestDefinition, error) {
	if f.ListContestsForProblemFunc != nil {
		return f.ListContestsForProblemFunc(ctx, problemID, at)
	}
	return nil, nil
}

// FakeStandingsService provides a programmable stub for the
// standingsservice.Service interface.
type FakeStandingsService struct {
	Invalidated []sharedtypes.ContestID

	InvalidateContestFunc func(ctx context.Context, contestID sharedtypes.ContestID) error
}

var _ standingsservice.Service = (*FakeStandingsService)(nil)

func (f *FakeStandingsService) GetStandings(ctx context.Context, contestID sharedtypes.ContestID) ([]standingstypes.StandingsEntry, error) {
	return nil, nil
}

func (f *FakeStandingsService) InvalidateContest(ctx context.Context, contestID sharedtypes.ContestID) error {
	f.Invalidated = append(f.Invalidated, contestID)
	if f.InvalidateContestFunc != nil {
		return f.InvalidateContestFunc(ctx, contestID)
	}
	return nil
}
