// Command cleanup deletes places searches older than the retention window,
// along with their places and summaries. Run it from cron.
//
// Flags:
//
//	--days  retention in days, overriding RETENTION_SEARCH_RESULT_DAYS
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/kceleski/ava-care-compass/internal/adapter/postgres"
	"github.com/kceleski/ava-care-compass/internal/adapter/postgres/search"
	"github.com/kceleski/ava-care-compass/internal/app"
	"github.com/kceleski/ava-care-compass/internal/config"
)

func main() {
	days := flag.Int("days", 0, "retention in days (0 uses the configured value)")
	flag.Parse()

	if err := run(*days); err != nil {
		fmt.Fprintf(os.Stderr, "cleanup: %v\n", err)
		os.Exit(1)
	}
}

func run(days int) error {
	if days < 0 {
		return errors.New("--days must not be negative")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if days == 0 {
		days = cfg.Retention.SearchResultDays
	}

	logger := app.NewLogger(cfg.Log).With(slog.String("job", "search_cleanup"))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	deleted, err := search.New(pool).DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("delete searches before %s: %w", cutoff.Format(time.RFC3339), err)
	}

	logger.Info("expired searches removed",
		slog.Int64("deleted", deleted),
		slog.Int("retention_days", days),
		slog.Time("cutoff", cutoff),
	)
	return nil
}
