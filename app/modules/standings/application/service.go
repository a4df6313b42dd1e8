package standingsservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	standingstypes "github.com/codeclash-oj/codeclash/app/modules/standings/domain/types"
	"github.com/codeclash-oj/codeclash/app/shared/observability"
	"github.com/codeclash-oj/codeclash/app/shared/sharedtypes"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// StandingsService orchestrates one standings request: fetch the contest and
// its registrants, fetch a consistent event snapshot in a single batched
// query, run the pure aggregation, reconcile contest submission rows, and
// cache the result. The computation itself never touches I/O.
type StandingsService struct {
	registry   ContestRegistry
	eventStore EventStore
	recorder   ContestSubmissionRecorder
	cache      Cache
	aggregator *Aggregator
	logger     *slog.Logger
	tracer     trace.Tracer
	metrics    *observability.Metrics
}

var _ Service = (*StandingsService)(nil)

// NewStandingsService creates a StandingsService. cache, recorder, tracer
// and metrics may be nil; the service degrades to plain recomputation.
func NewStandingsService(
	registry ContestRegistry,
	eventStore EventStore,
	recorder ContestSubmissionRecorder,
	cache Cache,
	cfg standingstypes.ScoringConfig,
	logger *slog.Logger,
	tracer trace.Tracer,
	metrics *observability.Metrics,
) *StandingsService {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("standings")
	}
	aggregator := NewAggregator(cfg, logger)
	if metrics != nil {
		aggregator.OnTerminalConflict = func(sharedtypes.SubmissionID) {
			metrics.TerminalVerdictConflicts.Inc()
		}
	}
	return &StandingsService{
		registry:   registry,
		eventStore: eventStore,
		recorder:   recorder,
		cache:      cache,
		aggregator: aggregator,
		logger:     logger,
		tracer:     tracer,
		metrics:    metrics,
	}
}

// GetStandings returns the ranked scoreboard for contestID.
//
// Registry and event store failures propagate unchanged; retry policy
// belongs to those collaborators, not here. A contest with no registrants
// yields an empty list, not an error.
func (s *StandingsService) GetStandings(ctx context.Context, contestID sharedtypes.ContestID) ([]standingstypes.StandingsEntry, error) {
	ctx, span := s.tracer.Start(ctx, "standings.GetStandings",
		trace.WithAttributes(attribute.Int64("contest.id", int64(contestID))))
	defer span.End()

	if s.cache != nil {
		entries, ok, err := s.cache.Get(ctx, contestID)
		if err != nil {
			s.logger.Warn("standings cache read failed", "contest_id", contestID, "error", err)
		} else if ok {
			if s.metrics != nil {
				s.metrics.StandingsCacheHits.Inc()
			}
			return entries, nil
		}
		if s.metrics != nil {
			s.metrics.StandingsCacheMisses.Inc()
		}
	}

	contest, err := s.registry.GetContest(ctx, contestID)
	if err != nil {
		return nil, err
	}

	registrants, err := s.registry.ListRegistrants(ctx, contestID)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrants for contest %d: %w", contestID, err)
	}

	var events []sharedtypes.SubmissionEvent
	if len(registrants) > 0 {
		events, err = s.eventStore.ListSubmissionEvents(ctx, contest.ProblemIDs, registrants, contest.Window)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch submission snapshot for contest %d: %w", contestID, err)
		}
	}

	started := time.Now()
	collapsed := s.aggregator.CollapseEvents(contest, registrants, events)
	entries := s.aggregator.computeCollapsed(contest, registrants, collapsed)
	if s.metrics != nil {
		s.metrics.StandingsRecomputes.Inc()
		s.metrics.StandingsRecomputeTime.Observe(time.Since(started).Seconds())
	}

	// Persist the contest attribution for every judged submission that
	// counted. The upsert is idempotent, so a failure here only delays the
	// bookkeeping; it never blocks the live scoreboard.
	if s.recorder != nil {
		if err := s.recorder.UpsertContestSubmissions(ctx, s.contestSubmissionRecords(contest, collapsed)); err != nil {
			s.logger.Error("failed to reconcile contest submissions", "contest_id", contestID, "error", err)
		}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, contestID, entries); err != nil {
			s.logger.Warn("standings cache write failed", "contest_id", contestID, "error", err)
		}
	}

	return entries, nil
}

// InvalidateContest drops any cached standings for contestID. Called when a
// new verdict for one of the contest's problems is ingested.
func (s *StandingsService) InvalidateContest(ctx context.Context, contestID sharedtypes.ContestID) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Invalidate(ctx, contestID)
}

func (s *StandingsService) contestSubmissionRecords(contest sharedtypes.ContestDefinition, collapsed []sharedtypes.SubmissionEvent) []ContestSubmissionRecord {
	records := make([]ContestSubmissionRecord, 0, len(collapsed))
	for _, ev := range collapsed {
		if !ev.Outcome.Terminal() {
			continue
		}
		score := 0
		if ev.Outcome == sharedtypes.OutcomeAccepted {
			score = s.aggregator.cfg.PointsPerSolve
		}
		records = append(records, ContestSubmissionRecord{
			ContestID:    contest.ID,
			UserID:       ev.UserID,
			ProblemID:    ev.ProblemID,
			SubmissionID: ev.ID,
			SubmittedAt:  ev.SubmittedAt,
			Accepted:     ev.Outcome == sharedtypes.OutcomeAccepted,
			Score:        score,
		})
	}
	return records
}
