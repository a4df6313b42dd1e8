package submissiondb

import (
	"time"

	"github.com/codeclash-oj/codeclash/app/shared/sharedtypes"
	"github.com/uptrace/bun"
)

// Submission is the append-only record of one submitted solution. The row is
// created with a pending outcome when the solution is forwarded to the
// judge; the verdict lands later via the judge event handler. Once a
// terminal outcome is stored it is only ever rewritten by an explicit
// conflict-resolution path (last write wins, logged).
type Submission struct {
	bun.BaseModel `bun:"table:submissions,alias:s"`

	ID                sharedtypes.SubmissionID `bun:"id,pk,autoincrement"`
	UserID            sharedtypes.UserID       `bun:"user_id,notnull"`
	ProblemID         sharedtypes.ProblemID    `bun:"problem_id,notnull"`
	Language          string                   `bun:"language,notnull"`
	Outcome           sharedtypes.Outcome      `bun:"outcome,notnull,default:'pending'"`
	JudgeSubmissionID string                   `bun:"judge_submission_id,nullzero"`
	ExecutionTimeMS   int64                    `bun:"execution_time_ms,nullzero"`
	MemoryKB          int64                    `bun:"memory_kb,nullzero"`
	SubmittedAt       time.Time                `bun:"submitted_at,nullzero,notnull,default:current_timestamp"`
	JudgedAt          time.Time                `bun:"judged_at,nullzero"`
}

// Event maps the row to the cross-module submission event.
func (s *Submission) Event() sharedtypes.SubmissionEvent {
	return sharedtypes.SubmissionEvent{
		ID:          s.ID,
		UserID:      s.UserID,
		ProblemID:   s.ProblemID,
		SubmittedAt: s.SubmittedAt,
		Outcome:     s.Outcome,
	}
}

// ContestSubmission attributes one judged submission to one contest. The
// (contest_id, submission_id) pair is unique, which is what makes the
// standings reconciliation an idempotent upsert: recomputing a scoreboard
// can never double-count a submission.
type ContestSubmission struct {
	bun.BaseModel `bun:"table:contest_submissions,alias:cs"`

	ID           int64                    `bun:"id,pk,autoincrement"`
	ContestID    sharedtypes.ContestID    `bun:"contest_id,notnull"`
	SubmissionID sharedtypes.SubmissionID `bun:"submission_id,notnull"`
	UserID       sharedtypes.UserID       `bun:"user_id,notnull"`
	ProblemID    sharedtypes.ProblemID    `bun:"problem_id,notnull"`
	SubmittedAt  time.Time                `bun:"submitted_at,notnull"`
	Accepted     bool                     `bun:"accepted,notnull"`
	Score        int                      `bun:"score,notnull"`
	CreatedAt    time.Time                `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}
