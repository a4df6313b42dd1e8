package sharedtypes

import "time"

// ContestDefinition is the immutable description of a contest: which problems
// it runs and when. ProblemIDs keeps insertion order, which is also the
// scoreboard column order.
type ContestDefinition struct {
	ID         ContestID
	Name       string
	ProblemIDs []ProblemID
	Window     ContestWindow
}

// HasProblem reports whether the contest's problem set contains id.
func (c ContestDefinition) HasProblem(id ProblemID) bool {
	for _, p := range c.ProblemIDs {
		if p == id {
			return true
		}
	}
	return false
}

// SubmissionEvent is one judged (or still pending) submission as read from
// the submission event store. Events for the same SubmissionID may appear
// more than once when a pending verdict is later superseded by a terminal
// one; consumers collapse them by ID.
type SubmissionEvent struct {
	ID          SubmissionID
	UserID      UserID
	ProblemID   ProblemID
	SubmittedAt time.Time
	Outcome     Outcome
}
