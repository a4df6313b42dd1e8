package sharedevents

import "github.com/codeclash-oj/codeclash/app/shared/sharedtypes"

// Topics consumed and produced by the submission module. Payloads are JSON.
const (
	// SubmissionJudgedV1 carries the judge's verdict for one submission.
	SubmissionJudgedV1 = "judge.submission.judged.v1"

	// StandingsInvalidatedV1 tells the standings module that a contest's
	// cached scoreboard is stale.
	StandingsInvalidatedV1 = "contest.standings.invalidated.v1"
)

// SubmissionJudgedPayloadV1 is published by the judge when it finishes (or
// re-queues) a submission.
type SubmissionJudgedPayloadV1 struct {
	SubmissionID    sharedtypes.SubmissionID `json:"submission_id"`
	ProblemID       sharedtypes.ProblemID    `json:"problem_id"`
	Outcome         sharedtypes.Outcome      `json:"outcome"`
	ExecutionTimeMS int64                    `json:"execution_time_ms,omitempty"`
	MemoryKB        int64                    `json:"memory_kb,omitempty"`
}

// StandingsInvalidatedPayloadV1 names one contest whose cached standings
// must be dropped.
type StandingsInvalidatedPayloadV1 struct {
	ContestID sharedtypes.ContestID `json:"contest_id"`
}
