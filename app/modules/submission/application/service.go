package submissionservice

import (
	"context"
	"fmt"
	"log/slog"

	submissiondb "github.com/codeclash-oj/codeclash/app/modules/submission/infrastructure/repositories"
	"github.com/codeclash-oj/codeclash/app/shared/observability"
	"github.com/codeclash-oj/codeclash/app/shared/sharedtypes"
)

// ErrInvalidOutcome is returned when a verdict payload names an outcome the
// platform does not know.
var ErrInvalidOutcome = fmt.Errorf("invalid submission outcome")

// SubmissionService owns the submission event store.
type SubmissionService struct {
	SubmissionDB submissiondb.SubmissionDB
	logger       *slog.Logger
	metrics      *observability.Metrics
}

var _ Service = (*SubmissionService)(nil)

// NewSubmissionService creates a new SubmissionService. metrics may be nil.
func NewSubmissionService(db submissiondb.SubmissionDB, logger *slog.Logger, metrics *observability.Metrics) *SubmissionService {
	return &SubmissionService{
		SubmissionDB: db,
		logger:       logger,
		metrics:      metrics,
	}
}

// CreateSubmission records a freshly uploaded solution as pending.
func (s *SubmissionService) CreateSubmission(ctx context.Context, userID sharedtypes.UserID, problemID sharedtypes.ProblemID, language string) (*submissiondb.Submission, error) {
	if userID == "" || problemID == "" || language == "" {
		return nil, fmt.Errorf("user, problem and language are required")
	}
	submission, err := s.SubmissionDB.CreateSubmission(ctx, &submissiondb.Submission{
		UserID:    userID,
		ProblemID: problemID,
		Language:  language,
		Outcome:   sharedtypes.OutcomePending,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("submission recorded",
		"submission_id", submission.ID,
		"user_id", userID,
		"problem_id", problemID,
	)
	return submission, nil
}

// GetSubmission returns one submission by ID.
func (s *SubmissionService) GetSubmission(ctx context.Context, id sharedtypes.SubmissionID) (*submissiondb.Submission, error) {
	return s.SubmissionDB.GetSubmission(ctx, id)
}

// ListUserSubmissions returns a user's submissions, newest first.
func (s *SubmissionService) ListUserSubmissions(ctx context.Context, userID sharedtypes.UserID) ([]submissiondb.Submission, error) {
	return s.SubmissionDB.ListUserSubmissions(ctx, userID)
}

// ApplyJudgeVerdict records the judge's outcome for a submission. Conflicting
// terminal verdicts do not fail ingestion: the newer verdict wins, the
// anomaly is logged and counted.
func (s *SubmissionService) ApplyJudgeVerdict(ctx context.Context, id sharedtypes.SubmissionID, outcome sharedtypes.Outcome, executionTimeMS, memoryKB int64) (*submissiondb.Submission, error) {
	if !outcome.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOutcome, outcome)
	}

	result, err := s.SubmissionDB.ApplyVerdict(ctx, id, outcome, executionTimeMS, memoryKB)
	if err != nil {
		return nil, err
	}

	if result.Conflict {
		s.logger.Warn("terminal verdict overwritten",
			"submission_id", id,
			"previous", result.PreviousOutcome,
			"latest", outcome,
		)
		if s.metrics != nil {
			s.metrics.TerminalVerdictConflicts.Inc()
		}
	}
	if s.metrics != nil {
		s.metrics.JudgeVerdicts.WithLabelValues(string(outcome)).Inc()
	}

	s.logger.Info("verdict applied",
		"submission_id", id,
		"outcome", outcome,
		"problem_id", result.Submission.ProblemID,
	)
	return &result.Submission, nil
}

// ListSubmissionEvents returns the consistent event snapshot for a standings
// computation.
func (s *SubmissionService) ListSubmissionEvents(ctx context.Context, problemIDs []sharedtypes.ProblemID, userIDs []sharedtypes.UserID, window sharedtypes.ContestWindow) ([]sharedtypes.SubmissionEvent, error) {
	return s.SubmissionDB.ListSubmissionEvents(ctx, problemIDs, userIDs, window)
}

// UpsertContestSubmissions persists contest attributions for judged
// submissions.
func (s *SubmissionService) UpsertContestSubmissions(ctx context.Context, rows []submissiondb.ContestSubmission) error {
	return s.SubmissionDB.UpsertContestSubmissions(ctx, rows)
}
