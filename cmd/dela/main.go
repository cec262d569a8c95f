package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mkurov/dela/internal/application/task"
	"github.com/mkurov/dela/internal/cli"
	"github.com/mkurov/dela/internal/config"
	"github.com/mkurov/dela/internal/storage/memory"
	"github.com/mkurov/dela/internal/storage/sqlite"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to run: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	// Logs go to stderr so stdout stays clean for the menu.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Root context cancels on SIGTERM/SIGINT.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	repo, err := newRepository(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to init storage: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("failed to close storage", "error", err)
		}
	}()
	logger.Info("storage ready", "type", cfg.StorageType)

	svc := task.NewService(repo)

	return cli.New(svc, os.Stdin, os.Stdout, logger).Run(ctx)
}

func newRepository(ctx context.Context, cfg *config.Config) (task.Repository, error) {
	switch cfg.StorageType {
	case config.StorageSQLite:
		return sqlite.NewStore(ctx, cfg.SQLiteDSN)
	default:
		return memory.NewStore(), nil
	}
}
