package standingstypes

import (
	"time"

	"github.com/codeclash-oj/codeclash/app/shared/sharedtypes"
)

// ProblemState is the derived per-problem state of one participant.
type ProblemState string

const (
	ProblemUntried   ProblemState = "untried"
	ProblemPending   ProblemState = "pending"
	ProblemAttempted ProblemState = "attempted"
	ProblemSolved    ProblemState = "solved"
)

// PerProblemStatus is the standings cell for one (user, problem) pair.
type PerProblemStatus struct {
	State ProblemState
	// Attempts counts the events considered for this cell. For a solved
	// problem that is everything up to and including the first accepted
	// submission; later resubmissions are ignored.
	Attempts int
	// PenaltyAttempts counts rejected submissions strictly before the first
	// accepted one. Only solved problems contribute penalty.
	PenaltyAttempts int
	// SolveOffset is the duration from contest start to the earliest accepted
	// submission. Nil unless State is ProblemSolved.
	SolveOffset *time.Duration
	// FirstBlood marks the contest-wide first solver of this problem.
	FirstBlood bool
}

// StandingsEntry is one ranked scoreboard row.
type StandingsEntry struct {
	Rank         int
	UserID       sharedtypes.UserID
	SolvedCount  int
	TotalScore   int
	TotalPenalty int // minutes
	// FirstSolveTime is the smallest SolveOffset across solved problems,
	// nil when the participant solved nothing.
	FirstSolveTime  *time.Duration
	ProblemStatuses map[sharedtypes.ProblemID]PerProblemStatus
}

// ScoringConfig carries the scoring knobs that the original system hard-coded.
type ScoringConfig struct {
	// PointsPerSolve is awarded once per solved problem.
	PointsPerSolve int
	// PenaltyMinutes is charged per rejected attempt preceding a problem's
	// eventual accepted submission.
	PenaltyMinutes int
}

// DefaultScoringConfig mirrors the classic 100 points / 20 minute scheme.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{PointsPerSolve: 100, PenaltyMinutes: 20}
}
