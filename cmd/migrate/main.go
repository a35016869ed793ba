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

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/cart/internal/storage/postgres"
)

const (
	defaultTimeout = 30 * time.Second
	envPostgresDSN = "CART_POSTGRES_DSN"
)

var errDSNRequired = errors.New(envPostgresDSN + " (or -dsn) is required")

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Getenv, os.Stdout); err != nil {
		log.WithError(err).Error("migration failed")
		cancel()
		os.Exit(1)
	}
}

// run разбирает флаги и применяет, откатывает или показывает миграции таблицы сессий.
func run(ctx context.Context, args []string, getenv func(string) string, out io.Writer) error {
	flags := flag.NewFlagSet("migrate", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	direction := flags.String("direction", "up", "migration direction: up|down|status")
	steps := flags.Int("steps", 0, "number of migrations to apply/rollback (0=all for up, 1 for down)")
	dsn := flags.String("dsn", "", "PostgreSQL DSN (fallback: "+envPostgresDSN+")")
	if err := flags.Parse(args); err != nil {
		return err
	}

	mode := strings.ToLower(strings.TrimSpace(*direction))
	switch mode {
	case "up", "down", "status":
	default:
		return fmt.Errorf("unsupported direction: %s (use up|down|status)", *direction)
	}

	target := strings.TrimSpace(*dsn)
	if target == "" {
		target = strings.TrimSpace(getenv(envPostgresDSN))
	}
	if target == "" {
		return errDSNRequired
	}

	store, err := postgres.Open(ctx, target)
	if err != nil {
		return fmt.Errorf("open postgres store: %w", err)
	}
	defer store.Close()

	switch mode {
	case "up":
		if err := store.MigrateUp(ctx, *steps); err != nil {
			return fmt.Errorf("migrate up: %w", err)
		}
	case "down":
		n := *steps
		if n <= 0 {
			n = 1
		}
		if err := store.MigrateDown(ctx, n); err != nil {
			return fmt.Errorf("migrate down: %w", err)
		}
	}

	version, count, err := store.MigrationStatus(ctx)
	if err != nil {
		return fmt.Errorf("migration status: %w", err)
	}
	_, err = fmt.Fprintf(out, "%s ok: version=%d applied=%d\n", mode, version, count)
	return err
}
