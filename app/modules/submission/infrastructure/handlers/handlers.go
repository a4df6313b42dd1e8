package submissionhandlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	contestservice "github.com/codeclash-oj/codeclash/app/modules/contest/application"
	standingsservice "github.com/codeclash-oj/codeclash/app/modules/standings/application"
	submissionservice "github.com/codeclash-oj/codeclash/app/modules/submission/application"
	submissiondb "github.com/codeclash-oj/codeclash/app/modules/submission/infrastructure/repositories"
	sharedevents "github.com/codeclash-oj/codeclash/app/shared/events"
)

// Handlers binds the submission module's event topics to behavior.
type Handlers interface {
	HandleSubmissionJudged(msg *message.Message) ([]*message.Message, error)
	HandleStandingsInvalidated(msg *message.Message) error
}

// SubmissionHandlers consumes judge verdicts and fans out scoreboard
// invalidations.
type SubmissionHandlers struct {
	submissions submissionservice.Service
	contests    contestservice.Service
	standings   standingsservice.Service
	logger      *slog.Logger
}

var _ Handlers = (*SubmissionHandlers)(nil)

// NewSubmissionHandlers creates the handler set.
func NewSubmissionHandlers(
	submissions submissionservice.Service,
	contests contestservice.Service,
	standings standingsservice.Service,
	logger *slog.Logger,
) *SubmissionHandlers {
	return &SubmissionHandlers{
		submissions: submissions,
		contests:    contests,
		standings:   standings,
		logger:      logger,
	}
}

// HandleSubmissionJudged applies a judge verdict to the event store and
// emits one StandingsInvalidatedV1 message per contest whose scoreboard the
// verdict can affect.
func (h *SubmissionHandlers) HandleSubmissionJudged(msg *message.Message) ([]*message.Message, error) {
	var payload sharedevents.SubmissionJudgedPayloadV1
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		// Malformed payloads never become processable; drop instead of
		// poisoning the retry loop.
		h.logger.Error("failed to decode judge verdict", "error", err, "message_id", msg.UUID)
		return nil, nil
	}

	submission, err := h.submissions.ApplyJudgeVerdict(
		msg.Context(),
		payload.SubmissionID,
		payload.Outcome,
		payload.ExecutionTimeMS,
		payload.MemoryKB,
	)
	if err != nil {
		if errors.Is(err, submissiondb.ErrSubmissionNotFound) {
			h.logger.Warn("verdict for unknown submission dropped", "submission_id", payload.SubmissionID)
			return nil, nil
		}
		if errors.Is(err, submissionservice.ErrInvalidOutcome) {
			h.logger.Error("verdict with unknown outcome dropped", "submission_id", payload.SubmissionID, "outcome", payload.Outcome)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to apply verdict for submission %d: %w", payload.SubmissionID, err)
	}

	contests, err := h.contests.ListContestsForProblem(msg.Context(), submission.ProblemID, submission.SubmittedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to find contests for problem %s: %w", submission.ProblemID, err)
	}

	out := make([]*message.Message, 0, len(contests))
	for _, contest := range contests {
		body, err := json.Marshal(sharedevents.StandingsInvalidatedPayloadV1{ContestID: contest.ID})
		if err != nil {
			return nil, fmt.Errorf("failed to marshal invalidation payload: %w", err)
		}
		out = append(out, message.NewMessage(uuid.New().String(), body))
	}
	return out, nil
}

// HandleStandingsInvalidated drops the cached scoreboard of one contest.
func (h *SubmissionHandlers) HandleStandingsInvalidated(msg *message.Message) error {
	var payload sharedevents.StandingsInvalidatedPayloadV1
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		h.logger.Error("failed to decode invalidation", "error", err, "message_id", msg.UUID)
		return nil
	}
	if err := h.standings.InvalidateContest(msg.Context(), payload.ContestID); err != nil {
		return fmt.Errorf("failed to invalidate standings for contest %d: %w", payload.ContestID, err)
	}
	return nil
}
