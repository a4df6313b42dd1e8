package app

import (
	"context"

	standingsservice "github.com/codeclash-oj/codeclash/app/modules/standings/application"
	submissionservice "github.com/codeclash-oj/codeclash/app/modules/submission/application"
	submissiondb "github.com/codeclash-oj/codeclash/app/modules/submission/infrastructure/repositories"
)

// contestSubmissionRecorder adapts the submission service to the standings
// module's recorder port.
type contestSubmissionRecorder struct {
	submissions submissionservice.Service
}

var _ standingsservice.ContestSubmissionRecorder = (*contestSubmissionRecorder)(nil)

func (a *contestSubmissionRecorder) UpsertContestSubmissions(ctx context.Context, records []standingsservice.ContestSubmissionRecord) error {
	rows := make([]submissiondb.ContestSubmission, 0, len(records))
	for _, record := range records {
		rows = append(rows, submissiondb.ContestSubmission{
			ContestID:    record.ContestID,
			SubmissionID: record.SubmissionID,
			UserID:       record.UserID,
			ProblemID:    record.ProblemID,
			SubmittedAt:  record.SubmittedAt,
			Accepted:     record.Accepted,
			Score:        record.Score,
		})
	}
	return a.submissions.UpsertContestSubmissions(ctx, rows)
}
