package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"
	"github.com/urfave/cli/v2"

	contestmigrations "github.com/codeclash-oj/codeclash/app/modules/contest/infrastructure/repositories/migrations"
	submissionmigrations "github.com/codeclash-oj/codeclash/app/modules/submission/infrastructure/repositories/migrations"
	"github.com/codeclash-oj/codeclash/config"
)

// moduleMigrator pairs a module name with its migration set so commands
// run in a stable order.
type moduleMigrator struct {
	name     string
	migrator *migrate.Migrator
}

func main() {
	configFile := flag.String("config", "config.yaml", "Path to the configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	pgdb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Postgres.DSN)))
	db := bun.NewDB(pgdb, pgdialect.New())
	defer db.Close()

	sets := map[string]*migrate.Migrations{
		"contest":    contestmigrations.Migrations,
		"submission": submissionmigrations.Migrations,
	}
	migrators := make([]moduleMigrator, 0, len(sets))
	for name, ms := range sets {
		migrators = append(migrators, moduleMigrator{name: name, migrator: migrate.NewMigrator(db, ms)})
	}
	sort.Slice(migrators, func(i, j int) bool { return migrators[i].name < migrators[j].name })

	cliApp := &cli.App{
		Name:  "bun",
		Usage: "contest platform database migrations",
		Commands: []*cli.Command{
			migrateCommand(migrators),
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func forEach(ctx context.Context, migrators []moduleMigrator, only string, fn func(ctx context.Context, m moduleMigrator) error) error {
	for _, m := range migrators {
		if only != "" && m.name != only {
			continue
		}
		if err := fn(ctx, m); err != nil {
			return fmt.Errorf("module %s: %w", m.name, err)
		}
	}
	return nil
}

func migrateCommand(migrators []moduleMigrator) *cli.Command {
	moduleFlag := &cli.StringFlag{
		Name:  "module",
		Usage: "restrict the command to one module's migration set",
	}

	return &cli.Command{
		Name:  "migrate",
		Usage: "database migrations",
		Subcommands: []*cli.Command{
			{
				Name:  "init",
				Usage: "create migration bookkeeping tables",
				Flags: []cli.Flag{moduleFlag},
				Action: func(c *cli.Context) error {
					return forEach(c.Context, migrators, c.String("module"), func(ctx context.Context, m moduleMigrator) error {
						fmt.Printf("init %s\n", m.name)
						return m.migrator.Init(ctx)
					})
				},
			},
			{
				Name:  "up",
				Usage: "apply pending migrations",
				Flags: []cli.Flag{moduleFlag},
				Action: func(c *cli.Context) error {
					return forEach(c.Context, migrators, c.String("module"), func(ctx context.Context, m moduleMigrator) error {
						group, err := m.migrator.Migrate(ctx)
						if err != nil {
							return err
						}
						if group.IsZero() {
							fmt.Printf("%s: up to date\n", m.name)
							return nil
						}
						fmt.Printf("%s: migrated to %s\n", m.name, group)
						return nil
					})
				},
			},
			{
				Name:  "rollback",
				Usage: "roll back the last migration group",
				Flags: []cli.Flag{moduleFlag},
				Action: func(c *cli.Context) error {
					return forEach(c.Context, migrators, c.String("module"), func(ctx context.Context, m moduleMigrator) error {
						group, err := m.migrator.Rollback(ctx)
						if err != nil {
							return err
						}
						if group.IsZero() {
							fmt.Printf("%s: nothing to roll back\n", m.name)
							return nil
						}
						fmt.Printf("%s: rolled back %s\n", m.name, group)
						return nil
					})
				},
			},
			{
				Name:      "create",
				Usage:     "create a Go migration file in a module's set",
				ArgsUsage: "<module> <name words...>",
				Action: func(c *cli.Context) error {
					target := c.Args().First()
					var chosen *moduleMigrator
					for i := range migrators {
						if migrators[i].name == target {
							chosen = &migrators[i]
							break
						}
					}
					if chosen == nil {
						return fmt.Errorf("unknown module %q", target)
					}
					name := strings.Join(c.Args().Tail(), "_")
					mf, err := chosen.migrator.CreateGoMigration(c.Context, name)
					if err != nil {
						return err
					}
					fmt.Printf("%s: created %s (%s)\n", chosen.name, mf.Name, mf.Path)
					return nil
				},
			},
			{
				Name:  "status",
				Usage: "print migration status per module",
				Flags: []cli.Flag{moduleFlag},
				Action: func(c *cli.Context) error {
					return forEach(c.Context, migrators, c.String("module"), func(ctx context.Context, m moduleMigrator) error {
						ms, err := m.migrator.MigrationsWithStatus(ctx)
						if err != nil {
							return err
						}
						fmt.Printf("%s:\n  all: %s\n  applied: %s\n  pending: %s\n", m.name, ms, ms.Applied(), ms.Unapplied())
						return nil
					})
				},
			},
		},
	}
}
