package bundb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	contestdb "github.com/codeclash-oj/codeclash/app/modules/contest/infrastructure/repositories"
	submissiondb "github.com/codeclash-oj/codeclash/app/modules/submission/infrastructure/repositories"
	"github.com/codeclash-oj/codeclash/config"
)

// DBService bundles the per-module repositories over one connection pool.
type DBService struct {
	ContestDB    *contestdb.ContestDBImpl
	SubmissionDB *submissiondb.SubmissionDBImpl
	db           *bun.DB
}

// GetDB returns the underlying database connection pool.
func (dbService *DBService) GetDB() *bun.DB {
	return dbService.db
}

// NewBunDBService initializes a new DBService with the provided Postgres
// configuration.
func NewBunDBService(ctx context.Context, cfg config.PostgresConfig) (*DBService, error) {
	sqldb, err := pgConn(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := bun.NewDB(sqldb, pgdialect.New())

	db.RegisterModel(&contestdb.Contest{})
	db.RegisterModel(&contestdb.Registration{})
	db.RegisterModel(&submissiondb.Submission{})
	db.RegisterModel(&submissiondb.ContestSubmission{})

	return &DBService{
		ContestDB:    &contestdb.ContestDBImpl{DB: db},
		SubmissionDB: &submissiondb.SubmissionDBImpl{DB: db},
		db:           db,
	}, nil
}

func pgConn(ctx context.Context, dsn string) (*sql.DB, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))

	if err := sqldb.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return sqldb, nil
}
