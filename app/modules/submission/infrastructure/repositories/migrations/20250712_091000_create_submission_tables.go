package submissionmigrations

import (
	"context"
	"fmt"

	submissiondb "github.com/codeclash-oj/codeclash/app/modules/submission/infrastructure/repositories"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating submissions and contest_submissions tables...")

		if _, err := db.NewCreateTable().Model((*submissiondb.Submission)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*submissiondb.ContestSubmission)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		// The standings snapshot query filters on problem, user and window.
		if _, err := db.NewRaw("CREATE INDEX IF NOT EXISTS idx_submissions_problem_user_time ON submissions (problem_id, user_id, submitted_at)").Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewRaw("CREATE INDEX IF NOT EXISTS idx_submissions_user_time ON submissions (user_id, submitted_at DESC)").Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewRaw("CREATE UNIQUE INDEX IF NOT EXISTS idx_contest_submissions_contest_submission ON contest_submissions (contest_id, submission_id)").Exec(ctx); err != nil {
			return err
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping submissions and contest_submissions tables...")

		if _, err := db.NewDropTable().Model((*submissiondb.ContestSubmission)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewDropTable().Model((*submissiondb.Submission)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		return nil
	})
}
