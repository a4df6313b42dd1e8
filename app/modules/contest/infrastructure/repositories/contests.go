package contestdb

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/codeclash-oj/codeclash/app/shared/sharedtypes"
	"github.com/uptrace/bun"
)

// ContestDBImpl handles database operations for contests.
type ContestDBImpl struct {
	DB *bun.DB
}

var _ ContestDB = (*ContestDBImpl)(nil)

// CreateContest inserts a new contest and returns it with its assigned ID.
func (db *ContestDBImpl) CreateContest(ctx context.Context, contest *Contest) (*Contest, error) {
	if _, err := db.DB.NewInsert().Model(contest).Returning("*").Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to create contest: %w", err)
	}
	return contest, nil
}

// GetContest retrieves one contest by ID.
func (db *ContestDBImpl) GetContest(ctx context.Context, id sharedtypes.ContestID) (*Contest, error) {
	contest := new(Contest)
	err := db.DB.NewSelect().
		Model(contest).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrContestNotFound
		}
		return nil, fmt.Errorf("failed to get contest %d: %w", id, err)
	}
	return contest, nil
}

// ListContests returns all contests, newest first.
func (db *ContestDBImpl) ListContests(ctx context.Context) ([]Contest, error) {
	var contests []Contest
	err := db.DB.NewSelect().
		Model(&contests).
		Order("start_time DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contests: %w", err)
	}
	return contests, nil
}

// CreateRegistration registers a user for a contest. Registering twice is
// detected via the unique (contest_id, user_id) index.
func (db *ContestDBImpl) CreateRegistration(ctx context.Context, contestID sharedtypes.ContestID, userID sharedtypes.UserID) error {
	registration := &Registration{
		ContestID: contestID,
		UserID:    userID,
	}
	res, err := db.DB.NewInsert().
		Model(registration).
		On("CONFLICT (contest_id, user_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to register user %s for contest %d: %w", userID, contestID, err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return ErrDuplicateRegistration
	}
	return nil
}

// ListRegistrants returns the user IDs registered for a contest, ascending,
// so downstream consumers see a deterministic order.
func (db *ContestDBImpl) ListRegistrants(ctx context.Context, contestID sharedtypes.ContestID) ([]sharedtypes.UserID, error) {
	var userIDs []sharedtypes.UserID
	err := db.DB.NewSelect().
		Model((*Registration)(nil)).
		Column("user_id").
		Where("contest_id = ?", contestID).
		Order("user_id ASC").
		Scan(ctx, &userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrants for contest %d: %w", contestID, err)
	}
	return userIDs, nil
}

// ListContestsForProblem returns contests whose problem set contains
// problemID and whose window contains the instant at. Used to find the
// scoreboards a fresh verdict can affect.
func (db *ContestDBImpl) ListContestsForProblem(ctx context.Context, problemID sharedtypes.ProblemID, at time.Time) ([]Contest, error) {
	needle, err := json.Marshal([]sharedtypes.ProblemID{problemID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal problem id: %w", err)
	}

	var contests []Contest
	err = db.DB.NewSelect().
		Model(&contests).
		Where("problem_ids @> ?", string(needle)).
		Where("start_time <= ?", at).
		Where("end_time >= ?", at).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contests for problem %s: %w", problemID, err)
	}
	return contests, nil
}
