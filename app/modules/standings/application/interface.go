package standingsservice

import (
	"context"
	"time"

	standingstypes "github.com/codeclash-oj/codeclash/app/modules/standings/domain/types"
	"github.com/codeclash-oj/codeclash/app/shared/sharedtypes"
)

// Service is the standings module's public surface.
type Service interface {
	GetStandings(ctx context.Context, contestID sharedtypes.ContestID) ([]standingstypes.StandingsEntry, error)
	InvalidateContest(ctx context.Context, contestID sharedtypes.ContestID) error
}

// ContestRegistry is the slice of the contest module the standings service
// consumes: definitions and registrant sets.
type ContestRegistry interface {
	GetContest(ctx context.Context, id sharedtypes.ContestID) (sharedtypes.ContestDefinition, error)
	ListRegistrants(ctx context.Context, id sharedtypes.ContestID) ([]sharedtypes.UserID, error)
}

// EventStore returns a point-in-time consistent snapshot of submission
// events for the given problem set, user set, and window, in one batched
// query.
type EventStore interface {
	ListSubmissionEvents(ctx context.Context, problemIDs []sharedtypes.ProblemID, userIDs []sharedtypes.UserID, window sharedtypes.ContestWindow) ([]sharedtypes.SubmissionEvent, error)
}

// ContestSubmissionRecord is one judged submission attributed to a contest,
// persisted so other parts of the system can join on it. Upserts are keyed
// (contest_id, submission_id), which makes reconciliation idempotent across
// repeated recomputations.
type ContestSubmissionRecord struct {
	ContestID    sharedtypes.ContestID
	UserID       sharedtypes.UserID
	ProblemID    sharedtypes.ProblemID
	SubmissionID sharedtypes.SubmissionID
	SubmittedAt  time.Time
	Accepted     bool
	Score        int
}

// ContestSubmissionRecorder persists contest submission attributions.
type ContestSubmissionRecorder interface {
	UpsertContestSubmissions(ctx context.Context, records []ContestSubmissionRecord) error
}

// Cache is a read-through cache for ranked standings. Implementations treat
// a miss as (nil, false, nil).
type Cache interface {
	Get(ctx context.Context, contestID sharedtypes.ContestID) ([]standingstypes.StandingsEntry, bool, error)
	Set(ctx context.Context, contestID sharedtypes.ContestID, entries []standingstypes.StandingsEntry) error
	Invalidate(ctx context.Context, contestID sharedtypes.ContestID) error
}
