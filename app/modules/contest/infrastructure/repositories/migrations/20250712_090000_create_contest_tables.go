package contestmigrations

import (
	"context"
	"fmt"

	contestdb "github.com/codeclash-oj/codeclash/app/modules/contest/infrastructure/repositories"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating contests and contest_registrations tables...")

		if _, err := db.NewCreateTable().Model((*contestdb.Contest)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*contestdb.Registration)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewRaw("CREATE UNIQUE INDEX IF NOT EXISTS idx_contest_registrations_contest_user ON contest_registrations (contest_id, user_id)").Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewRaw("CREATE INDEX IF NOT EXISTS idx_contests_window ON contests (start_time, end_time)").Exec(ctx); err != nil {
			return err
		}
		// GIN index backs the problem_ids @> containment lookups.
		if _, err := db.NewRaw("CREATE INDEX IF NOT EXISTS idx_contests_problem_ids ON contests USING GIN (problem_ids)").Exec(ctx); err != nil {
			return err
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping contests and contest_registrations tables...")

		if _, err := db.NewDropTable().Model((*contestdb.Registration)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewDropTable().Model((*contestdb.Contest)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		return nil
	})
}
