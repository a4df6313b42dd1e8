package standingsservice

import (
	"context"

	standingstypes "github.com/codeclash-oj/codeclash/app/modules/standings/domain/types"
	"github.com/codeclash-oj/codeclash/app/shared/sharedtypes"
)

// FakeContestRegistry provides a programmable stub for the ContestRegistry
// interface.
type FakeContestRegistry struct {
	trace []string

	GetContestFunc      func(ctx context.Context, id sharedtypes.ContestID) (sharedtypes.ContestDefinition, error)
	ListRegistrantsFunc func(ctx context.Context, id sharedtypes.ContestID) ([]sharedtypes.UserID, error)
}

func NewFakeContestRegistry() *FakeContestRegistry {
	return &FakeContestRegistry{trace: []string{}}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeContestRegistry) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeContestRegistry) GetContest(ctx context.Context, id sharedtypes.ContestID) (sharedtypes.ContestDefinition, error) {
	f.trace = append(f.trace, "GetContest")
	if f.GetContestFunc != nil {
		return f.GetContestFunc(ctx, id)
	}
	return sharedtypes.ContestDefinition{}, nil
}

func (f *FakeContestRegistry) ListRegistrants(ctx context.Context, id sharedtypes.ContestID) ([]sharedtypes.UserID, error) {
	f.trace = append(f.trace, "ListRegistrants")
	if f.ListRegistrantsFunc != nil {
		return f.ListRegistrantsFunc(ctx, id)
	}
	return nil, nil
}

// FakeEventStore provides a programmable stub for the EventStore interface.
type FakeEventStore struct {
	trace []string

	ListSubmissionEventsFunc func(ctx context.Context, problemIDs []sharedtypes.ProblemID, userIDs []sharedtypes.UserID, window sharedtypes.ContestWindow) ([]sharedtypes.SubmissionEvent, error)
}

func NewFakeEventStore() *FakeEventStore {
	return &FakeEventStore{trace: []string{}}
}

func (f *FakeEventStore) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeEventStore) ListSubmissionEvents(ctx context.Context, problemIDs []sharedtypes.ProblemID, userIDs []sharedtypes.UserID, window sharedtypes.ContestWindow) ([]sharedtypes.SubmissionEvent, error) {
	f.trace = append(f.trace, "ListSubmissionEvents")
	if f.ListSubmissionEventsFunc != nil {
		return f.ListSubmissionEventsFunc(ctx, problemIDs, userIDs, window)
	}
	return nil, nil
}

// FakeRecorder provides a programmable stub for the
// ContestSubmissionRecorder interface.
type FakeRecorder struct {
	trace   []string
	Records [][]ContestSubmissionRecord

	UpsertContestSubmissionsFunc func(ctx context.Context, records []ContestSubmissionRecord) error
}

func NewFakeRecorder() *FakeRecorder {
	return &FakeRecorder{trace: []string{}}
}

func (f *FakeRecorder) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeRecorder) UpsertContestSubmissions(ctx context.Context, records []ContestSubmissionRecord) error {
	f.trace = append(f.trace, "UpsertContestSubmissions")
	f.Records = append(f.Records, records)
	if f.UpsertContestSubmissionsFunc != nil {
		return f.UpsertContestSubmissionsFunc(ctx, records)
	}
	return nil
}

// FakeCache provides a programmable stub for the Cache interface.
type FakeCache struct {
	trace []string

	GetFunc        func(ctx context.Context, contestID sharedtypes.ContestID) ([]standingstypes.StandingsEntry, bool, error)
	SetFunc        func(ctx context.Context, contestID sharedtypes.ContestID, entries []standingstypes.StandingsEntry) error
	InvalidateFunc func(ctx context.Context, contestID sharedtypes.ContestID) error
}

func NewFakeCache() *FakeCache {
	return &FakeCache{trace: []string{}}
}

func (f *FakeCache) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeCache) Get(ctx context.Context, contestID sharedtypes.ContestID) ([]standingstypes.StandingsEntry, bool, error) {
	f.trace = append(f.trace, "Get")
	if f.GetFunc != nil {
		return f.GetFunc(ctx, contestID)
	}
	return nil, false, nil
}

func (f *FakeCache) Set(ctx context.Context, contestID sharedtypes.ContestID, entries []standingstypes.StandingsEntry) error {
	f.trace = append(f.trace, "Set")
	if f.SetFunc != nil {
		return f.SetFunc(ctx, contestID, entries)
	}
	return nil
}

func (f *FakeCache) Invalidate(ctx context.Context, contestID sharedtypes.ContestID) error {
	f.trace = append(f.trace, "Invalidate")
	if f.InvalidateFunc != nil {
		return f.InvalidateFunc(ctx, contestID)
	}
	return nil
}
