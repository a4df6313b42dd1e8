package contestservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	contestdb "github.com/codeclash-oj/codeclash/app/modules/contest/infrastructure/repositories"
	"github.com/codeclash-oj/codeclash/app/shared/sharedtypes"
)

var (
	// ErrInvalidContest is returned when a contest definition fails
	// validation (empty problem set, inverted window).
	ErrInvalidContest = errors.New("invalid contest definition")

	// ErrRegistrationClosed is returned when a user tries to register after
	// the contest has ended.
	ErrRegistrationClosed = errors.New("contest registration closed")
)

// ContestService handles contest definitions and registration membership.
type ContestService struct {
	ContestDB contestdb.ContestDB
	logger    *slog.Logger
}

var _ Service = (*ContestService)(nil)

// NewContestService creates a new ContestService.
func NewContestService(db contestdb.ContestDB, logger *slog.Logger) *ContestService {
	return &ContestService{
		ContestDB: db,
		logger:    logger,
	}
}

// CreateContest validates and persists a new contest definition.
func (s *ContestService) CreateContest(ctx context.Context, name string, problemIDs []sharedtypes.ProblemID, start, end time.Time) (sharedtypes.ContestDefinition, error) {
	if name == "" {
		return sharedtypes.ContestDefinition{}, fmt.Errorf("%w: name is required", ErrInvalidContest)
	}
	if len(problemIDs) == 0 {
		return sharedtypes.ContestDefinition{}, fmt.Errorf("%w: at least one problem is required", ErrInvalidContest)
	}
	if !start.Before(end) {
		return sharedtypes.ContestDefinition{}, fmt.Errorf("%w: start time must precede end time", ErrInvalidContest)
	}
	seen := make(map[sharedtypes.ProblemID]struct{}, len(problemIDs))
	for _, p := range problemIDs {
		if _, dup := seen[p]; dup {
			return sharedtypes.ContestDefinition{}, fmt.Errorf("%w: duplicate problem %s", ErrInvalidContest, p)
		}
		seen[p] = struct{}{}
	}

	contest, err := s.ContestDB.CreateContest(ctx, &contestdb.Contest{
		Name:       name,
		ProblemIDs: problemIDs,
		StartTime:  start.UTC(),
		EndTime:    end.UTC(),
	})
	if err != nil {
		return sharedtypes.ContestDefinition{}, err
	}

	s.logger.Info("contest created",
		"contest_id", contest.ID,
		"name", contest.Name,
		"problems", len(contest.ProblemIDs),
	)
	return contest.Definition(), nil
}

// GetContest returns a contest definition. Propagates
// contestdb.ErrContestNotFound unchanged.
func (s *ContestService) GetContest(ctx context.Context, id sharedtypes.ContestID) (sharedtypes.ContestDefinition, error) {
	contest, err := s.ContestDB.GetContest(ctx, id)
	if err != nil {
		return sharedtypes.ContestDefinition{}, err
	}
	return contest.Definition(), nil
}

// ListContests returns all contest definitions, newest first.
func (s *ContestService) ListContests(ctx context.Context) ([]sharedtypes.ContestDefinition, error) {
	contests, err := s.ContestDB.ListContests(ctx)
	if err != nil {
		return nil, err
	}
	definitions := make([]sharedtypes.ContestDefinition, 0, len(contests))
	for i := range contests {
		definitions = append(definitions, contests[i].Definition())
	}
	return definitions, nil
}

// Register joins userID to a contest. Registration stays open until the
// contest ends; joining mid-contest is allowed, matching the original
// platform's behavior.
func (s *ContestService) Register(ctx context.Context, contestID sharedtypes.ContestID, userID sharedtypes.UserID) error {
	contest, err := s.ContestDB.GetContest(ctx, contestID)
	if err != nil {
		return err
	}
	if time.Now().After(contest.EndTime) {
		return ErrRegistrationClosed
	}

	if err := s.ContestDB.CreateRegistration(ctx, contestID, userID); err != nil {
		return err
	}
	s.logger.Info("user registered for contest", "contest_id", contestID, "user_id", userID)
	return nil
}

// ListRegistrants returns the contest's registrant set in ascending user ID
// order.
func (s *ContestService) ListRegistrants(ctx context.Context, contestID sharedtypes.ContestID) ([]sharedtypes.UserID, error) {
	return s.ContestDB.ListRegistrants(ctx, contestID)
}

// ListContestsForProblem returns the contests a verdict for problemID at the
// given submission instant can affect.
func (s *ContestService) ListContestsForProblem(ctx context.Context, problemID sharedtypes.ProblemID, at time.Time) ([]sharedtypes.ContestDefinition, error) {
	contests, err := s.ContestDB.ListContestsForProblem(ctx, problemID, at)
	if err != nil {
		return nil, err
	}
	definitions := make([]sharedtypes.ContestDefinition, 0, len(contests))
	for i := range contests {
		definitions = append(definitions, contests[i].Definition())
	}
	return definitions, nil
}
