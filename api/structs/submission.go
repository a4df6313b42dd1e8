package structs

import (
	"time"

	submissiondb "github.com/codeclash-oj/codeclash/app/modules/submission/infrastructure/repositories"
)

// CreateSubmissionRequest is the payload for POST /api/submissions.
type CreateSubmissionRequest struct {
	ProblemID string `json:"problem_id"`
	Language  string `json:"language"`
}

// Submission is the API view of one submission row.
type Submission struct {
	ID              int64  `json:"id"`
	ProblemID       string `json:"problem_id"`
	Language        string `json:"language"`
	Outcome         string `json:"outcome"`
	ExecutionTimeMS int64  `json:"execution_time_ms,omitempty"`
	MemoryKB        int64  `json:"memory_kb,omitempty"`
	SubmittedAt     string `json:"submitted_at"`
	JudgedAt        string `json:"judged_at,omitempty"`
}

// NewSubmission maps a row into the API view, formatting times in loc.
func NewSubmission(s submissiondb.Submission, loc *time.Location) Submission {
	out := Submission{
		ID:              int64(s.ID),
		ProblemID:       string(s.ProblemID),
		Language:        s.Language,
		Outcome:         string(s.Outcome),
		ExecutionTimeMS: s.ExecutionTimeMS,
		MemoryKB:        s.MemoryKB,
		SubmittedAt:     s.SubmittedAt.In(loc).Format(time.RFC3339),
	}
	if !s.JudgedAt.IsZero() {
		out.JudgedAt = s.JudgedAt.In(loc).Format(time.RFC3339)
	}
	return out
}
