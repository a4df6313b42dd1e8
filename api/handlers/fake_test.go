package handlers

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

// FakeContestService provides a programmable stub for the
// contestservice.Service interface.
type FakeContestService struct {
	CreateContestFunc          func(ctx context.Context, name string, problemIDs []sharedtypes.ProblemID, start, end time.Time) (sharedtypes.ContestDefinition, error)
	GetContestFunc             func(ctx context.Context, id sharedtypes.ContestID) (sharedtypes.ContestDefinition, error)
	ListContestsFunc           func(ctx context.Context) ([]sharedtypes.ContestDefinition, error)
	RegisterFunc               func(ctx context.Context, contestID sharedtypes.ContestID, userID sharedtypes.UserID) error
	ListRegistrantsFunc        func(ctx context.Context, contestID sharedtypes.ContestID) ([]sharedtypes.UserID, error)
	ListContestsForProblemFunc func(ctx context.Context, problemID sharedtypes.ProblemID, at time.Time) ([]sharedtypes.ContestDefinition, error)
}

var _ contestservice.Service = (*FakeContestService)(nil)

func (f *FakeContestService) CreateContest(ctx context.Context, name string, problemIDs []sharedtypes.ProblemID, start, end time.Time) (sharedtypes.ContestDefinition, error) {
	if f.CreateContestFunc != nil {
		return f.CreateContestFunc(ctx, name, problemIDs, start, end)
	}
	return sharedtypes.ContestDefinition{}, nil
}

func (f *FakeContestService) GetContest(ctx context.Context, id sharedtypes.ContestID) (sharedtypes.ContestDefinition, error) {
	if f.GetContestFunc != nil {
		return f.GetContestFunc(ctx, id)
	}
	return sharedtypes.ContestDefinition{}, nil
}

func (f *FakeContestService) ListContests(ctx context.Context) ([]sharedtypes.ContestDefinition, error) {
	if f.ListContestsFunc != nil {
		return f.ListContestsFunc(ctx)
	}
	return nil, nil
}

func (f *FakeContestService) Register(ctx context.Context, contestID sharedtypes.ContestID, userID sharedtypes.UserID) error {
	if f.RegisterFunc != nil {
		return f.RegisterFunc(ctx, contestID, userID)
	}
	return nil
}

func (f *FakeContestService) ListRegistrants(ctx context.Context, contestID sharedtypes.ContestID) ([]sharedtypes.UserID, error) {
	if f.ListRegistrantsFunc != nil {
		return f.ListRegistrantsFunc(ctx, contestID)
	}
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
	GetStandingsFunc      func(ctx context.Context, contestID sharedtypes.ContestID) ([]standingstypes.StandingsEntry, error)
	InvalidateContestFunc func(ctx context.Context, contestID sharedtypes.ContestID) error
}

var _ standingsservice.Service = (*FakeStandingsService)(nil)

func (f *FakeStandingsService) GetStandings(ctx context.Context, contestID sharedtypes.ContestID) ([]standingstypes.StandingsEntry, error) {
	if f.GetStandingsFunc != nil {
		return f.GetStandingsFunc(ctx, contestID)
	}
	return nil, nil
}

func (f *FakeStandingsService) InvalidateContest(ctx context.Context, contestID sharedtypes.ContestID) error {
	if f.InvalidateContestFunc != nil {
		return f.InvalidateContestFunc(ctx, contestID)
	}
	return nil
}

// FakeSubmissionService provides a programmable stub for the
// submissionservice.Service interface.
type FakeSubmissionService struct {
	CreateSubmissionFunc    func(ctx context.Context, userID sharedtypes.UserID, problemID sharedtypes.ProblemID, language string) (*submissiondb.Submission, error)
	GetSubmissionFunc       func(ctx context.Context, id sharedtypes.SubmissionID) (*submissiondb.Submission, error)
	ListUserSubmissionsFunc func(ctx context.Context, userID sharedtypes.UserID) ([]submissiondb.Submission, error)
}

var _ submissionservice.Service = (*FakeSubmissionService)(nil)

func (f *FakeSubmissionService) CreateSubmission(ctx context.Context, userID sharedtypes.UserID, problemID sharedtypes.ProblemID, language string) (*submissiondb.Submission, error) {
	if f.CreateSubmissionFunc != nil {
		return f.CreateSubmissionFunc(ctx, userID, problemID, language)
	}
	return &submissiondb.Submission{ID: 1, UserID: userID, ProblemID: problemID, Language: language, Outcome: sharedtypes.OutcomePending, SubmittedAt: time.Now()}, nil
}

func (f *FakeSubmissionService) GetSubmission(ctx context.Context, id sharedtypes.SubmissionID) (*submissiondb.Submission, error) {
	if f.GetSubmissionFunc != nil {
		return f.GetSubmissionFunc(ctx, id)
	}
	return nil, submissiondb.ErrSubmissionNotFound
}

func (f *FakeSubmissionService) ListUserSubmissions(ctx context.Context, userID sharedtypes.UserID) ([]submissiondb.Submission, error) {
	if f.ListUserSubmissionsFunc != nil {
		return f.ListUserSubmissionsFunc(ctx, userID)
	}
	return nil, nil
}

func (f *FakeSubmissionService) ApplyJudgeVerdict(ctx context.Context, id sharedtypes.SubmissionID, outcome sharedtypes.Outcome, executionTimeMS, memoryKB int64) (*submissiondb.Submission, error) {
	return nil, nil
}

func (f *FakeSubmissionService) ListSubmissionEvents(ctx context.Context, problemIDs []sharedtypes.ProblemID, userIDs []sharedtypes.UserID, window sharedtypes.ContestWindow) ([]sharedtypes.SubmissionEvent, error) {
	return nil, nil
}

func (f *FakeSubmissionService) UpsertContestSubmissions(ctx context.Context, rows []submissiondb.ContestSubmission) error {
	return nil
}
