package structs

import (
	standingstypes "github.com/codeclash-oj/codeclash/app/modules/standings/domain/types"
	"github.com/codeclash-oj/codeclash/app/shared/sharedtypes"
)

// ProblemCell is one (user, problem) cell of the scoreboard.
type ProblemCell struct {
	ProblemID        string `json:"problem_id"`
	State            string `json:"state"`
	Attempts         int    `json:"attempts"`
	PenaltyAttempts  int    `json:"penalty_attempts"`
	SolveOffsetSecs  *int64 `json:"solve_offset_seconds,omitempty"`
	FirstBlood       bool   `json:"first_blood,omitempty"`
}

// StandingsRow is one ranked scoreboard row. Problems are listed in the
// contest's column order, not map order.
type StandingsRow struct {
	Rank               int           `json:"rank"`
	UserID             string        `json:"user_id"`
	SolvedCount        int           `json:"solved_count"`
	TotalScore         int           `json:"total_score"`
	TotalPenalty       int           `json:"total_penalty"`
	FirstSolveSeconds  *int64        `json:"first_solve_seconds,omitempty"`
	Problems           []ProblemCell `json:"problems"`
}

// StandingsResponse is the full scoreboard payload.
type StandingsResponse struct {
	Contest Contest        `json:"contest"`
	Rows    []StandingsRow `json:"rows"`
}

// NewStandingsRows maps ranked entries into API rows, ordering problem
// cells by the contest's problem order.
func NewStandingsRows(def sharedtypes.ContestDefinition, entries []standingstypes.StandingsEntry) []StandingsRow {
	rows := make([]StandingsRow, 0, len(entries))
	for _, entry := range entries {
		row := StandingsRow{
			Rank:         entry.Rank,
			UserID:       string(entry.UserID),
			SolvedCount:  entry.SolvedCount,
			TotalScore:   entry.TotalScore,
			TotalPenalty: entry.TotalPenalty,
		}
		if entry.FirstSolveTime != nil {
			secs := int64(entry.FirstSolveTime.Seconds())
			row.FirstSolveSeconds = &secs
		}
		for _, problemID := range def.ProblemIDs {
			status := entry.ProblemStatuses[problemID]
			cell := ProblemCell{
				ProblemID:       string(problemID),
				State:           string(status.State),
				Attempts:        status.Attempts,
				PenaltyAttempts: status.PenaltyAttempts,
				FirstBlood:      status.FirstBlood,
			}
			if status.SolveOffset != nil {
				secs := int64(status.SolveOffset.Seconds())
				cell.SolveOffsetSecs = &secs
			}
			if cell.State == "" {
				cell.State = string(standingstypes.ProblemUntried)
			}
			row.Problems = append(row.Problems, cell)
		}
		rows = append(rows, row)
	}
	return rows
}
