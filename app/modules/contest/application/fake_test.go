package contestservice

import (
	"context"
	"time"

	contestdb "github.com/codeclash-oj/codeclash/app/modules/contest/infrastructure/repositories"
	"github.com/codeclash-oj/codeclash/app/shared/sharedtypes"
)

// FakeContestDB provides a programmable stub for the contestdb.ContestDB
// interface.
type FakeContestDB struct {
	trace []string

	CreateContestFunc          func(ctx context.Context, contest *contestdb.Contest) (*contestdb.Contest, error)
	GetContestFunc             func(ctx context.Context, id sharedtypes.ContestID) (*contestdb.Contest, error)
	ListContestsFunc           func(ctx context.Context) ([]contestdb.Contest, error)
	CreateRegistrationFunc     func(ctx context.Context, contestID sharedtypes.ContestID, userID sharedtypes.UserID) error
	ListRegistrantsFunc        func(ctx context.Context, contestID sharedtypes.ContestID) ([]sharedtypes.UserID, error)
	ListContestsForProblemFunc func(ctx context.Context, problemID sharedtypes.ProblemID, at time.Time) ([]contestdb.Contest, error)
}

var _ contestdb.ContestDB = (*FakeContestDB)(nil)

func NewFakeContestDB() *FakeContestDB {
	return &FakeContestDB{trace: []string{}}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeContestDB) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeContestDB) CreateContest(ctx context.Context, contest *contestdb.Contest) (*contestdb.Contest, error) {
	f.trace = append(f.trace, "CreateContest")
	if f.CreateContestFunc != nil {
		return f.CreateContestFunc(ctx, contest)
	}
	created := *contest
	created.ID = 1
	return &created, nil
}

func (f *FakeContestDB) GetContest(ctx context.Context, id sharedtypes.ContestID) (*contestdb.Contest, error) {
	f.trace = append(f.trace, "GetContest")
	if f.GetContestFunc != nil {
		return f.GetContestFunc(ctx, id)
	}
	return nil, contestdb.ErrContestNotFound
}

func (f *FakeContestDB) ListContests(ctx context.Context) ([]contestdb.Contest, error) {
	f.trace = append(f.trace, "ListContests")
	if f.ListContestsFunc != nil {
		return f.ListContestsFunc(ctx)
	}
	return nil, nil
}

func (f *FakeContestDB) CreateRegistration(ctx context.Context, contestID sharedtypes.ContestID, userID sharedtypes.UserID) error {
	f.trace = append(f.trace, "CreateRegistration")
	if f.CreateRegistrationFunc != nil {
		return f.CreateRegistrationFunc(ctx, contestID, userID)
	}
	return nil
}

func (f *FakeContestDB) ListRegistrants(ctx context.Context, contestID sharedtypes.ContestID) ([]sharedtypes.UserID, error) {
	f.trace = append(f.trace, "ListRegistrants")
	if f.ListRegistrantsFunc != nil {
		return f.ListRegistrantsFunc(ctx, contestID)
	}
	return nil, nil
}

func (f *FakeContestDB) ListContestsForProblem(ctx context.Context, problemID sharedtypes.ProblemID, at time.Time) ([]contestdb.Contest, error) {
	f.trace = append(f.trace, "ListContestsForProblem")
	if f.ListContestsForProblemFunc != nil {
		return f.ListContestsForProblemFunc(ctx, problemID, at)
	}
	return nil, nil
}
