// Command admin manages the Holocron store: create tables, load seed files
// and report row counts.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/forgo/holocron/api/internal/config"
	"github.com/forgo/holocron/api/internal/database"
	"github.com/forgo/holocron/api/internal/repository"
	"github.com/forgo/holocron/api/internal/service"
)

var databaseURL string

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "admin",
		Short:        "Holocron store administration",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&databaseURL, "database-url", "",
		"database URL (defaults to $DATABASE_URL, then sqlite at "+config.DefaultSQLitePath+")")

	root.AddCommand(newSchemaCmd(), newSeedCmd(), newStatsCmd())
	return root
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Create any missing tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			fmt.Fprintf(cmd.OutOrStdout(), "schema ready (%s)\n", db.Driver())
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed <file.yaml>",
		Short: "Insert characters, planets and users from a YAML seed file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := service.LoadSeedFile(args[0])
			if err != nil {
				return err
			}

			db, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			seeder := service.NewSeederService(service.SeederServiceConfig{
				UserRepo:      repository.NewUserRepository(db),
				CharacterRepo: repository.NewCharacterRepository(db),
				PlanetRepo:    repository.NewPlanetRepository(db),
			})

			result, err := seeder.Seed(cmd.Context(), seed)
			if result != nil {
				out, _ := yaml.Marshal(result)
				fmt.Fprint(cmd.OutOrStdout(), string(out))
			}
			return err
		},
	}
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the row count of every table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			counts, err := repository.NewStatsRepository(db).Counts(cmd.Context())
			if err != nil {
				return err
			}

			out, err := yaml.Marshal(counts)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}

// openStore connects using --database-url or the usual configuration and
// makes sure the tables exist.
func openStore(ctx context.Context) (*database.SQL, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if databaseURL != "" {
		cfg.Database.Driver, cfg.Database.DSN, err = config.ParseDatabaseURL(databaseURL)
		if err != nil {
			return nil, err
		}
	}

	db := database.NewSQL(database.Config{
		Driver:       cfg.Database.Driver,
		DSN:          cfg.Database.DSN,
		QueryTimeout: cfg.Database.QueryTimeout,
	})
	if err := db.Connect(ctx); err != nil {
		return nil, err
	}
	if err := database.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
