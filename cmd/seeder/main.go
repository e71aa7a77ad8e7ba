// Command seeder loads reference data (care types, location multipliers,
// milestone templates, hotlines and sample facilities) from YAML. Without
// --data it loads the bundled dataset. Every phase is idempotent.
//
// Flags:
//
//	--phase          comma-separated list of phases to run (default: all)
//	--data           path to a dataset YAML file
//	--dry-run        parse and validate without writing to the database
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

	"github.com/jackc/pgx/v5"

	"github.com/kceleski/ava-care-compass/internal/adapter/postgres"
	"github.com/kceleski/ava-care-compass/internal/adapter/postgres/facility"
	"github.com/kceleski/ava-care-compass/internal/adapter/postgres/reference"
	"github.com/kceleski/ava-care-compass/internal/app"
	"github.com/kceleski/ava-care-compass/internal/app/seeder"
	"github.com/kceleski/ava-care-compass/internal/config"
)

func main() {
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	dataFlag := flag.String("data", "", "path to dataset YAML (default: bundled)")
	dryRunFlag := flag.Bool("dry-run", false, "validate the dataset without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

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
	if *dataFlag != "" {
		seederCfg.DataPath = *dataFlag
	}

	phases := seederCfg.Phases
	if *phaseFlag != "" {
		phases = strings.Split(*phaseFlag, ",")
	}
	for i := range phases {
		phases[i] = strings.TrimSpace(phases[i])
	}

	ds, err := seeder.LoadDataset(seederCfg.DataPath)
	if err != nil {
		logger.Error("load dataset", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	pipeline := seeder.NewPipeline(
		logger,
		reference.New(pool),
		facility.New(pool),
		postgres.NewTxManager(pool, postgres.WithIsolation(pgx.RepeatableRead)),
		*seederCfg,
	)

	if err := pipeline.Run(ctx, ds, phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		os.Exit(1)
	}
}
