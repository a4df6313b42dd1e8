package contestdb

import (
	"time"

	"github.com/codeclash-oj/codeclash/app/shared/sharedtypes"
	"github.com/uptrace/bun"
)

// Contest is the stored contest definition. Immutable once created; the
// standings engine only ever reads it.
type Contest struct {
	bun.BaseModel `bun:"table:contests,alias:c"`

	ID         sharedtypes.ContestID   `bun:"id,pk,autoincrement"`
	Name       string                  `bun:"name,notnull"`
	ProblemIDs []sharedtypes.ProblemID `bun:"problem_ids,type:jsonb,notnull"`
	StartTime  time.Time               `bun:"start_time,notnull"`
	EndTime    time.Time               `bun:"end_time,notnull"`
	CreatedAt  time.Time               `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// Definition maps the row to the cross-module contest definition.
func (c *Contest) Definition() sharedtypes.ContestDefinition {
	return sharedtypes.ContestDefinition{
		ID:         c.ID,
		Name:       c.Name,
		ProblemIDs: c.ProblemIDs,
		Window: sharedtypes.ContestWindow{
			Start: c.StartTime,
			End:   c.EndTime,
		},
	}
}

// Registration is one user's membership in a contest. The (contest_id,
// user_id) pair is unique; membership never changes after creation.
type Registration struct {
	bun.BaseModel `bun:"table:contest_registrations,alias:cr"`

	ID           int64                 `bun:"id,pk,autoincrement"`
	ContestID    sharedtypes.ContestID `bun:"contest_id,notnull"`
	UserID       sharedtypes.UserID    `bun:"user_id,notnull"`
	RegisteredAt time.Time             `bun:"registered_at,nullzero,notnull,default:current_timestamp"`
}
