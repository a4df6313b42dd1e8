package contestservice

import (
	"context"
	"time"

	"github.com/codeclash-oj/codeclash/app/shared/sharedtypes"
)

// Service is the contest module's public surface: contest definitions and
// registrations. Definitions are immutable once created.
type Service interface {
	CreateContest(ctx context.Context, name string, problemIDs []sharedtypes.ProblemID, start, end time.Time) (sharedtypes.ContestDefinition, error)
	GetContest(ctx context.Context, id sharedtypes.ContestID) (sharedtypes.ContestDefinition, error)
	ListContests(ctx context.Context) ([]sharedtypes.ContestDefinition, error)
	Register(ctx context.Context, contestID sharedtypes.ContestID, userID sharedtypes.UserID) error
	ListRegistrants(ctx context.Context, contestID sharedtypes.ContestID) ([]sharedtypes.UserID, error)
	ListContestsForProblem(ctx context.Context, problemID sharedtypes.ProblemID, at time.Time) ([]sharedtypes.ContestDefinition, error)
}
