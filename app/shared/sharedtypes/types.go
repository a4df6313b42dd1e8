package sharedtypes

import "time"

// UserID identifies a platform account.
type UserID string

// ProblemID identifies a problem in the judge's problem archive.
type ProblemID string

// ContestID identifies a contest.
type ContestID int64

// SubmissionID identifies a single submitted solution. IDs are allocated by
// the submissions table, so they are unique across contests and problems.
type SubmissionID int64

// Outcome is the judge's verdict for one submission.
type Outcome string

const (
	OutcomePending  Outcome = "pending"
	OutcomeAccepted Outcome = "accepted"
	OutcomeRejected Outcome = "rejected"
)

// Terminal reports whether the outcome is a final verdict. A pending
// submission may still be re-judged; accepted and rejected never change.
func (o Outcome) Terminal() bool {
	return o == OutcomeAccepted || o == OutcomeRejected
}

// Valid reports whether o is one of the known outcomes.
func (o Outcome) Valid() bool {
	switch o {
	case OutcomePending, OutcomeAccepted, OutcomeRejected:
		return true
	}
	return false
}

// ContestWindow is the active period of a contest. Both bounds are inclusive
// for submission eligibility.
type ContestWindow struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w ContestWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}
