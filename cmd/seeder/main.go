// Command seeder loads an Open English WordNet release into the Postgres
// lexicon store used when LEXICON_SOURCE=postgres. It is intended to be run
// offline, not as part of the main server.
//
// Flags:
//
//	--phase          comma-separated list of phases to run (default: all)
//	--dry-run        parse the dataset without touching the database
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/hangman-backend/internal/adapter/postgres"
	"github.com/heartmarshall/hangman-backend/internal/adapter/postgres/vocab"
	"github.com/heartmarshall/hangman-backend/internal/app"
	"github.com/heartmarshall/hangman-backend/internal/app/seeder"
	"github.com/heartmarshall/hangman-backend/internal/config"
	"github.com/heartmarshall/hangman-backend/migrations"
)

// Compile-time interface assertion.
var _ seeder.LexiconStore = (*vocab.Repo)(nil)

func main() {
	phaseFlag := flag.String("phase", "", "comma-separated phases to run: migrate,parse,store (default: all)")
	dryRunFlag := flag.Bool("dry-run", false, "parse the dataset without touching the database")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	_ = godotenv.Load()

	// Load app config (for DB connection).
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *dryRunFlag {
		seederCfg.DryRun = true
	}

	var phases []string
	if *phaseFlag != "" {
		phases = strings.Split(*phaseFlag, ",")
		for i := range phases {
			phases[i] = strings.TrimSpace(phases[i])
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	if seederCfg.DryRun {
		pipeline := seeder.NewPipeline(logger, nil, nil, *seederCfg)
		if err := pipeline.Run(ctx, phases); err != nil {
			logger.Error("pipeline failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("dry run completed")
		return
	}

	if appCfg.Database.DSN == "" {
		logger.Error("DATABASE_DSN is required unless --dry-run is set")
		os.Exit(1)
	}

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repo := vocab.New(pool, postgres.NewTxManager(pool))
	migrate := func(ctx context.Context) error {
		return postgres.Migrate(ctx, logger, pool, migrations.FS)
	}

	pipeline := seeder.NewPipeline(logger, repo, migrate, *seederCfg)
	if err := pipeline.Run(ctx, phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with errors")
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully")
}
