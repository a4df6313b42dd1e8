package submissiondb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/codeclash-oj/codeclash/app/shared/sharedtypes"
	"github.com/uptrace/bun"
)

// SubmissionDBImpl handles database operations for submissions.
type SubmissionDBImpl struct {
	DB *bun.DB
}

var _ SubmissionDB = (*SubmissionDBImpl)(nil)

// CreateSubmission inserts a new submission row, defaulting to pending.
func (db *SubmissionDBImpl) CreateSubmission(ctx context.Context, submission *Submission) (*Submission, error) {
	if submission.Outcome == "" {
		submission.Outcome = sharedtypes.OutcomePending
	}
	if _, err := db.DB.NewInsert().Model(submission).Returning("*").Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}
	return submission, nil
}

// GetSubmission retrieves one submission by ID.
func (db *SubmissionDBImpl) GetSubmission(ctx context.Context, id sharedtypes.SubmissionID) (*Submission, error) {
	submission := new(Submission)
	err := db.DB.NewSelect().
		Model(submission).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to get submission %d: %w", id, err)
	}
	return submission, nil
}

// ListUserSubmissions returns a user's submissions, newest first.
func (db *SubmissionDBImpl) ListUserSubmissions(ctx context.Context, userID sharedtypes.UserID) ([]Submission, error) {
	var submissions []Submission
	err := db.DB.NewSelect().
		Model(&submissions).
		Where("user_id = ?", userID).
		Order("submitted_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions for user %s: %w", userID, err)
	}
	return submissions, nil
}

// ApplyVerdict records a judge outcome on a submission row. A pending row
// accepts any verdict. A terminal row hit with a different terminal verdict
// is a data anomaly: the newer verdict wins and the result flags the
// conflict so callers can log and count it.
func (db *SubmissionDBImpl) ApplyVerdict(ctx context.Context, id sharedtypes.SubmissionID, outcome sharedtypes.Outcome, executionTimeMS, memoryKB int64) (*VerdictResult, error) {
	var result *VerdictResult

	err := db.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		submission := new(Submission)
		err := tx.NewSelect().
			Model(submission).
			Where("id = ?", id).
			For("UPDATE").
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrSubmissionNotFound
			}
			return fmt.Errorf("failed to lock submission %d: %w", id, err)
		}

		previous := submission.Outcome
		conflict := previous.Terminal() && outcome.Terminal() && previous != outcome

		submission.Outcome = outcome
		submission.ExecutionTimeMS = executionTimeMS
		submission.MemoryKB = memoryKB
		if outcome.Terminal() {
			submission.JudgedAt = time.Now().UTC()
		}

		if _, err := tx.NewUpdate().
			Model(submission).
			Column("outcome", "execution_time_ms", "memory_kb", "judged_at").
			WherePK().
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to apply verdict to submission %d: %w", id, err)
		}

		result = &VerdictResult{
			Submission:      *submission,
			PreviousOutcome: previous,
			Conflict:        conflict,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ListSubmissionEvents fetches the event snapshot for a standings
// computation in one query: every submission for the given problems and
// users inside the window, ordered by ID so the recording order is stable
// across re-reads.
func (db *SubmissionDBImpl) ListSubmissionEvents(ctx context.Context, problemIDs []sharedtypes.ProblemID, userIDs []sharedtypes.UserID, window sharedtypes.ContestWindow) ([]sharedtypes.SubmissionEvent, error) {
	if len(problemIDs) == 0 || len(userIDs) == 0 {
		return nil, nil
	}

	var submissions []Submission
	err := db.DB.NewSelect().
		Model(&submissions).
		Where("problem_id IN (?)", bun.In(problemIDs)).
		Where("user_id IN (?)", bun.In(userIDs)).
		Where("submitted_at >= ?", window.Start).
		Where("submitted_at <= ?", window.End).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list submission events: %w", err)
	}

	events := make([]sharedtypes.SubmissionEvent, 0, len(submissions))
	for i := range submissions {
		events = append(events, submissions[i].Event())
	}
	return events, nil
}

// UpsertContestSubmissions writes contest attributions idempotently, keyed
// by (contest_id, submission_id). Re-running a reconciliation updates the
// stored verdict fields instead of inserting duplicates.
func (db *SubmissionDBImpl) UpsertContestSubmissions(ctx context.Context, rows []ContestSubmission) error {
	if len(rows) == 0 {
		return nil
	}

	_, err := db.DB.NewInsert().
		Model(&rows).
		On("CONFLICT (contest_id, submission_id) DO UPDATE").
		Set("accepted = EXCLUDED.accepted").
		Set("score = EXCLUDED.score").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert contest submissions: %w", err)
	}
	return nil
}
