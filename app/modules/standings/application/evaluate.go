package standingsservice

import (
	"time"

	standingstypes "github.com/codeclash-oj/codeclash/app/modules/standings/domain/types"
	"github.com/codeclash-oj/codeclash/app/shared/sharedtypes"
)

// evaluateProblem derives the standings cell for one (user, problem) pair
// from that pair's time-ordered, deduplicated events.
//
// Solving is a one-time transition: once the earliest accepted submission is
// found, everything after it is ignored, so later re-judges or resubmissions
// can never change the status or the penalty.
func evaluateProblem(events []sharedtypes.SubmissionEvent, contestStart time.Time) standingstypes.PerProblemStatus {
	if len(events) == 0 {
		return standingstypes.PerProblemStatus{State: standingstypes.ProblemUntried}
	}

	for i, ev := range events {
		if ev.Outcome != sharedtypes.OutcomeAccepted {
			continue
		}
		// Only rejections strictly before the accept's timestamp are charged.
		// A rejection recorded at the same instant as the accept is free.
		penalty := 0
		for _, prior := range events[:i] {
			if prior.Outcome == sharedtypes.OutcomeRejected && prior.SubmittedAt.Before(ev.SubmittedAt) {
				penalty++
			}
		}
		offset := ev.SubmittedAt.Sub(contestStart)
		return standingstypes.PerProblemStatus{
			State:           standingstypes.ProblemSolved,
			Attempts:        i + 1,
			PenaltyAttempts: penalty,
			SolveOffset:     &offset,
		}
	}

	// A pending re-judge may still become accepted, so pending outranks any
	// rejected attempts that are also present.
	for _, ev := range events {
		if ev.Outcome == sharedtypes.OutcomePending {
			return standingstypes.PerProblemStatus{
				State:    standingstypes.ProblemPending,
				Attempts: len(events),
			}
		}
	}

	rejected := 0
	for _, ev := range events {
		if ev.Outcome == sharedtypes.OutcomeRejected {
			rejected++
		}
	}
	return standingstypes.PerProblemStatus{
		State:    standingstypes.ProblemAttempted,
		Attempts: rejected,
	}
}

// markFirstBlood flags the contest-wide first solver of problemID. Ties on
// the exact same solve offset resolve by ascending user ID.
func markFirstBlood(problemID sharedtypes.ProblemID, entries []standingstypes.StandingsEntry) {
	winner := -1
	var best time.Duration

	for i := range entries {
		status, ok := entries[i].ProblemStatuses[problemID]
		if !ok || status.State != standingstypes.ProblemSolved || status.SolveOffset == nil {
			continue
		}
		offset := *status.SolveOffset
		switch {
		case winner < 0 || offset < best:
			winner, best = i, offset
		case offset == best && entries[i].UserID < entries[winner].UserID:
			winner = i
		}
	}

	if winner < 0 {
		return
	}
	status := entries[winner].ProblemStatuses[problemID]
	status.FirstBlood = true
	entries[winner].ProblemStatuses[problemID] = status
}
