package structs

import (
	"time"

	"github.com/codeclash-oj/codeclash/app/shared/sharedtypes"
)

// CreateContestRequest is the admin payload for creating a contest.
type CreateContestRequest struct {
	Name       string    `json:"name"`
	ProblemIDs []string  `json:"problem_ids"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
}

// Contest is the API view of a contest definition. Times are formatted in
// the location the caller asked for; the default is UTC.
type Contest struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	ProblemIDs []string `json:"problem_ids"`
	StartTime  string   `json:"start_time"`
	EndTime    string   `json:"end_time"`
}

// NewContest maps a definition into the API view, formatting times in loc.
func NewContest(def sharedtypes.ContestDefinition, loc *time.Location) Contest {
	problems := make([]string, 0, len(def.ProblemIDs))
	for _, p := range def.ProblemIDs {
		problems = append(problems, string(p))
	}
	return Contest{
		ID:         int64(def.ID),
		Name:       def.Name,
		ProblemIDs: problems,
		StartTime:  def.Window.Start.In(loc).Format(time.RFC3339),
		EndTime:    def.Window.End.In(loc).Format(time.RFC3339),
	}
}
