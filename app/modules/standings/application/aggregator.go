package standingsservice

import (
	"log/slog"
	"sort"

	standingstypes "github.com/codeclash-oj/codeclash/app/modules/standings/domain/types"
	"github.com/codeclash-oj/codeclash/app/shared/sharedtypes"
)

// Aggregator derives ranked standings from a frozen snapshot of judged
// submission events. It holds no mutable state, so one instance can serve
// concurrent scoreboard requests without locking; consistency of the input
// snapshot is the caller's responsibility.
type Aggregator struct {
	cfg    standingstypes.ScoringConfig
	logger *slog.Logger

	// OnTerminalConflict is invoked when two different terminal verdicts are
	// recorded for the same submission ID. The later record wins; the
	// computation never aborts on upstream anomalies because it serves a
	// live scoreboard.
	OnTerminalConflict func(id sharedtypes.SubmissionID)
}

// NewAggregator creates an Aggregator with the given scoring configuration.
func NewAggregator(cfg standingstypes.ScoringConfig, logger *slog.Logger) *Aggregator {
	return &Aggregator{
		cfg:    cfg,
		logger: logger,
	}
}

// ComputeStandings builds one ranked scoreboard row per registrant.
//
// Events may arrive unsorted and may contain duplicate submission IDs when a
// pending verdict was later superseded; the input order is the recording
// order and is used to resolve duplicates. Events outside the contest's
// problem set, registrant set, or time window are discarded before anything
// is counted. Calling it twice on identical input yields identical output.
func (a *Aggregator) ComputeStandings(
	contest sharedtypes.ContestDefinition,
	registrants []sharedtypes.UserID,
	events []sharedtypes.SubmissionEvent,
) []standingstypes.StandingsEntry {
	return a.computeCollapsed(contest, registrants, a.CollapseEvents(contest, registrants, events))
}

// computeCollapsed is ComputeStandings after the collapse step. Callers that
// already hold a collapsed slice (the service reuses it for reconciliation)
// skip a second pass over the snapshot.
func (a *Aggregator) computeCollapsed(
	contest sharedtypes.ContestDefinition,
	registrants []sharedtypes.UserID,
	collapsed []sharedtypes.SubmissionEvent,
) []standingstypes.StandingsEntry {
	// Group by (user, problem) and order each group by submission time,
	// breaking ties by submission ID so re-runs are deterministic.
	groups := make(map[sharedtypes.UserID]map[sharedtypes.ProblemID][]sharedtypes.SubmissionEvent)
	for _, ev := range collapsed {
		byProblem, ok := groups[ev.UserID]
		if !ok {
			byProblem = make(map[sharedtypes.ProblemID][]sharedtypes.SubmissionEvent)
			groups[ev.UserID] = byProblem
		}
		byProblem[ev.ProblemID] = append(byProblem[ev.ProblemID], ev)
	}
	for _, byProblem := range groups {
		for _, group := range byProblem {
			sort.Slice(group, func(i, j int) bool {
				if group[i].SubmittedAt.Equal(group[j].SubmittedAt) {
					return group[i].ID < group[j].ID
				}
				return group[i].SubmittedAt.Before(group[j].SubmittedAt)
			})
		}
	}

	// Every registrant gets a row covering every contest problem, including
	// registrants with no submissions at all.
	entries := make([]standingstypes.StandingsEntry, 0, len(registrants))
	for _, userID := range registrants {
		statuses := make(map[sharedtypes.ProblemID]standingstypes.PerProblemStatus, len(contest.ProblemIDs))
		for _, problemID := range contest.ProblemIDs {
			statuses[problemID] = evaluateProblem(groups[userID][problemID], contest.Window.Start)
		}
		entries = append(entries, standingstypes.StandingsEntry{
			UserID:          userID,
			ProblemStatuses: statuses,
		})
	}

	for _, problemID := range contest.ProblemIDs {
		markFirstBlood(problemID, entries)
	}

	for i := range entries {
		a.accumulateTotals(&entries[i])
	}

	return rankEntries(entries)
}

// CollapseEvents filters the snapshot down to this contest and resolves
// duplicate submission IDs to a single event each. Output order follows the
// first appearance of each submission ID. The same collapsed view backs both
// the standings computation and the contest-submission reconciliation, so
// the two can never disagree about which events count.
func (a *Aggregator) CollapseEvents(
	contest sharedtypes.ContestDefinition,
	registrants []sharedtypes.UserID,
	events []sharedtypes.SubmissionEvent,
) []sharedtypes.SubmissionEvent {
	registered := make(map[sharedtypes.UserID]struct{}, len(registrants))
	for _, u := range registrants {
		registered[u] = struct{}{}
	}

	latest := make(map[sharedtypes.SubmissionID]sharedtypes.SubmissionEvent, len(events))
	order := make([]sharedtypes.SubmissionID, 0, len(events))

	for _, ev := range events {
		if !contest.HasProblem(ev.ProblemID) {
			continue
		}
		if _, ok := registered[ev.UserID]; !ok {
			continue
		}
		if !contest.Window.Contains(ev.SubmittedAt) {
			continue
		}

		prev, seen := latest[ev.ID]
		if !seen {
			latest[ev.ID] = ev
			order = append(order, ev.ID)
			continue
		}

		switch {
		case prev.Outcome.Terminal() && ev.Outcome.Terminal() && prev.Outcome != ev.Outcome:
			// Two conflicting final verdicts for one submission. Prefer the
			// most recently recorded one and keep going.
			a.logger.Warn("conflicting terminal verdicts for submission",
				"submission_id", ev.ID,
				"previous", prev.Outcome,
				"latest", ev.Outcome,
			)
			if a.OnTerminalConflict != nil {
				a.OnTerminalConflict(ev.ID)
			}
			latest[ev.ID] = ev
		case ev.Outcome.Terminal():
			// Pending superseded by a final verdict, or a harmless repeat.
			latest[ev.ID] = ev
		default:
			// A pending record never displaces a final verdict.
		}
	}

	collapsed := make([]sharedtypes.SubmissionEvent, 0, len(order))
	for _, id := range order {
		collapsed = append(collapsed, latest[id])
	}
	return collapsed
}

func (a *Aggregator) accumulateTotals(entry *standingstypes.StandingsEntry) {
	for _, status := range entry.ProblemStatuses {
		if status.State != standingstypes.ProblemSolved {
			continue
		}
		entry.SolvedCount++
		entry.TotalScore += a.cfg.PointsPerSolve
		entry.TotalPenalty += status.PenaltyAttempts * a.cfg.PenaltyMinutes
		if status.SolveOffset != nil {
			if entry.FirstSolveTime == nil || *status.SolveOffset < *entry.FirstSolveTime {
				offset := *status.SolveOffset
				entry.FirstSolveTime = &offset
			}
		}
	}
}
