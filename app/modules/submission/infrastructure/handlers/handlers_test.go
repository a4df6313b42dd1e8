package submissionhandlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	submissiondb "github.com/codeclash-oj/codeclash/app/modules/submission/infrastructure/repositories"
	sharedevents "github.com/codeclash-oj/codeclash/app/shared/events"
	"github.com/codeclash-oj/codeclash/app/shared/sharedtypes"
)

func newTestHandlers(submissions *FakeSubmissionService, contests *FakeContestService, standings *FakeStandingsService) *SubmissionHandlers {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewSubmissionHandlers(submissions, contests, standings, logger)
}

func judgedMessage(t *testing.T, payload sharedevents.SubmissionJudgedPayloadV1) *message.Message {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return message.NewMessage(watermill.NewUUID(), body)
}

func TestHandleSubmissionJudged_FansOutPerContest(t *testing.T) {
	submittedAt := time.Date(2025, 7, 12, 10, 30, 0, 0, time.UTC)
	submissions := &FakeSubmissionService{
		ApplyJudgeVerdictFunc: func(ctx context.Context, id sharedtypes.SubmissionID, outcome sharedtypes.Outcome, executionTimeMS, memoryKB int64) (*submissiondb.Submission, error) {
			return &submissiondb.Submission{
				ID:          id,
				ProblemID:   "P1",
				Outcome:     outcome,
				SubmittedAt: submittedAt,
			}, nil
		},
	}
	contests := &FakeContestService{
		ListContestsForProblemFunc: func(ctx context.Context, problemID sharedtypes.ProblemID, at time.Time) ([]sharedtypes.ContestDefinition, error) {
			if problemID != "P1" {
				t.Errorf("problemID = %q, want P1", problemID)
			}
			if !at.Equal(submittedAt) {
				t.Errorf("at = %v, want submission time %v", at, submittedAt)
			}
			return []sharedtypes.ContestDefinition{{ID: 1}, {ID: 2}}, nil
		},
	}

	h := newTestHandlers(submissions, contests, &FakeStandingsService{})

	out, err := h.HandleSubmissionJudged(judgedMessage(t, sharedevents.SubmissionJudgedPayloadV1{
		SubmissionID: 7,
		ProblemID:    "P1",
		Outcome:      sharedtypes.OutcomeAccepted,
	}))
	if err != nil {
		t.Fatalf("HandleSubmissionJudged: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d outgoing messages, want 2", len(out))
	}

	var wantContests []sharedtypes.ContestID
	for _, msg := range out {
		var payload sharedevents.StandingsInvalidatedPayloadV1
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			t.Fatalf("unmarshal invalidation: %v", err)
		}
		wantContests = append(wantContests, payload.ContestID)
	}
	if wantContests[0] != 1 || wantContests[1] != 2 {
		t.Errorf("invalidated contests = %v, want [1 2]", wantContests)
	}
}

func TestHandleSubmissionJudged_MalformedPayloadDropped(t *testing.T) {
	h := newTestHandlers(&FakeSubmissionService{}, &FakeContestService{}, &FakeStandingsService{})

	out, err := h.HandleSubmissionJudged(message.NewMessage(watermill.NewUUID(), []byte("{not json")))
	if err != nil {
		t.Errorf("malformed payload must be dropped, got err %v", err)
	}
	if len(out) != 0 {
		t.Errorf("got %d outgoing messages, want 0", len(out))
	}
}

func TestHandleSubmissionJudged_UnknownSubmissionDropped(t *testing.T) {
	submissions := &FakeSubmissionService{
		ApplyJudgeVerdictFunc: func(ctx context.Context, id sharedtypes.SubmissionID, outcome sharedtypes.Outcome, executionTimeMS, memoryKB int64) (*submissiondb.Submission, error) {
			return nil, submissiondb.ErrSubmissionNotFound
		},
	}
	h := newTestHandlers(submissions, &FakeContestService{}, &FakeStandingsService{})

	out, err := h.HandleSubmissionJudged(judgedMessage(t, sharedevents.SubmissionJudgedPayloadV1{
		SubmissionID: 404,
		Outcome:      sharedtypes.OutcomeAccepted,
	}))
	if err != nil {
		t.Errorf("unknown submission must be dropped, got err %v", err)
	}
	if len(out) != 0 {
		t.Errorf("got %d outgoing messages, want 0", len(out))
	}
}

func TestHandleSubmissionJudged_TransientFailureRetried(t *testing.T) {
	dbErr := errors.New("connection reset")
	submissions := &FakeSubmissionService{
		ApplyJudgeVerdictFunc: func(ctx context.Context, id sharedtypes.SubmissionID, outcome sharedtypes.Outcome, executionTimeMS, memoryKB int64) (*submissiondb.Submission, error) {
			return nil, dbErr
		},
	}
	h := newTestHandlers(submissions, &FakeContestService{}, &FakeStandingsService{})

	// Anything that may succeed on retry must surface as an error so the
	// router middleware redelivers it.
	_, err := h.HandleSubmissionJudged(judgedMessage(t, sharedevents.SubmissionJudgedPayloadV1{
		SubmissionID: 7,
		Outcome:      sharedtypes.OutcomeAccepted,
	}))
	if !errors.Is(err, dbErr) {
		t.Errorf("err = %v, want wrapped %v", err, dbErr)
	}
}

func TestHandleStandingsInvalidated(t *testing.T) {
	standings := &FakeStandingsService{}
	h := newTestHandlers(&FakeSubmissionService{}, &FakeContestService{}, standings)

	body, _ := json.Marshal(sharedevents.StandingsInvalidatedPayloadV1{ContestID: 9})
	if err := h.HandleStandingsInvalidated(message.NewMessage(watermill.NewUUID(), body)); err != nil {
		t.Fatalf("HandleStandingsInvalidated: %v", err)
	}
	if len(standings.Invalidated) != 1 || standings.Invalidated[0] != 9 {
		t.Errorf("invalidated = %v, want [9]", standings.Invalidated)
	}
}
