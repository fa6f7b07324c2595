// Command migrate управляет схемой журнала статусов в PostgreSQL.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/vladislavdragonenkov/kitchen/internal/storage/postgres"
)

const (
	defaultTimeout = 30 * time.Second
	envPostgresDSN = "KITCHEN_POSTGRES_DSN"
)

var errDSNRequired = errors.New(envPostgresDSN + " (or -dsn) is required")

// journalSchema — операции над схемой журнала, которые нужны команде.
type journalSchema interface {
	MigrateUp(ctx context.Context, steps int) (int, error)
	MigrateDown(ctx context.Context, steps int) (int, error)
	MigrationStatus(ctx context.Context) (postgres.MigrationStatus, error)
}

type config struct {
	direction string
	steps     int
	dsn       string
	timeout   time.Duration
}

func parseConfig(args []string, getenv func(string) string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.direction, "direction", "up", "migration direction: up|down|status")
	fs.IntVar(&cfg.steps, "steps", 0, "number of migrations to apply/rollback (0=all for up, 1 for down)")
	fs.StringVar(&cfg.dsn, "dsn", "", "PostgreSQL DSN (fallback: "+envPostgresDSN+")")
	fs.DurationVar(&cfg.timeout, "timeout", defaultTimeout, "overall timeout")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	cfg.direction = strings.ToLower(strings.TrimSpace(cfg.direction))
	switch cfg.direction {
	case "up", "down", "status":
	default:
		return config{}, fmt.Errorf("unsupported direction: %s (use up|down|status)", cfg.direction)
	}
	if cfg.steps < 0 {
		return config{}, fmt.Errorf("steps must be >= 0, got %d", cfg.steps)
	}

	cfg.dsn = strings.TrimSpace(cfg.dsn)
	if cfg.dsn == "" {
		cfg.dsn = strings.TrimSpace(getenv(envPostgresDSN))
	}
	if cfg.dsn == "" {
		return config{}, errDSNRequired
	}
	if cfg.timeout <= 0 {
		cfg.timeout = defaultTimeout
	}
	return cfg, nil
}

func run(ctx context.Context, cfg config, schema journalSchema, out io.Writer) error {
	var prefix string
	switch cfg.direction {
	case "up":
		applied, err := schema.MigrateUp(ctx, cfg.steps)
		if err != nil {
			return fmt.Errorf("migrate up failed: %w", err)
		}
		prefix = fmt.Sprintf("migrate up ok: changed=%d", applied)
	case "down":
		reverted, err := schema.MigrateDown(ctx, cfg.steps)
		if err != nil {
			return fmt.Errorf("migrate down failed: %w", err)
		}
		prefix = fmt.Sprintf("migrate down ok: changed=%d", reverted)
	default:
		prefix = "migration status:"
	}

	status, err := schema.MigrationStatus(ctx)
	if err != nil {
		return fmt.Errorf("migration status failed: %w", err)
	}
	_, err = fmt.Fprintf(out, "%s version=%d applied=%d pending=%d\n", prefix, status.Version, status.Applied, status.Pending)
	return err
}

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Getenv)
	if err != nil {
		fail("%v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.timeout)
	defer cancel()

	store, err := postgres.Open(ctx, cfg.dsn)
	if err != nil {
		fail("open postgres store: %v", err)
	}
	defer store.Close()

	if err := run(ctx, cfg, store, os.Stdout); err != nil {
		fail("%v", err)
	}
}

func fail(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
