package contestdb

import (
	"context"
	"time"

	"github.com/codeclash-oj/codeclash/app/shared/sharedtypes"
)

// ContestDB handles database operations for contests and registrations.
type ContestDB interface {
	CreateContest(ctx context.Context, contest *Contest) (*Contest, error)
	GetContest(ctx context.Context, id sharedtypes.ContestID) (*Contest, error)
	ListContests(ctx context.Context) ([]Contest, error)
	CreateRegistration(ctx context.Context, contestID sharedtypes.ContestID, userID sharedtypes.UserID) error
	ListRegistrants(ctx context.Context, contestID sharedtypes.ContestID) ([]sharedtypes.UserID, error)
	ListContestsForProblem(ctx context.Context, problemID sharedtypes.ProblemID, at time.Time) ([]Contest, error)
}
