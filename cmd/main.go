package main

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/onewave/wavecli/internal/api"
	"github.com/onewave/wavecli/internal/repositories"
	"github.com/onewave/wavecli/internal/session"
	"github.com/onewave/wavecli/internal/shared"
	"github.com/onewave/wavecli/internal/store"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if path, err := findConfig(); err == nil {
		if loaded, err := shared.LoadConfig(path); err == nil {
			config = loaded
		} else {
			logger.Warn("failed to load config, using defaults", "path", path, "error", err)
		}
	}

	db, err := openDatabase(config)
	if err != nil {
		logger.Fatalf("failed to open local database: %v", err)
	}
	defer db.Close()

	kv := repositories.NewKVRepository(db)
	snapshots := repositories.NewSnapshotRepository(db)
	gate := session.NewGate(kv, logger)

	client := api.NewClient(config.API.BaseURL,
		api.WithTokenSource(gate.Token),
		api.WithUnauthorizedHook(gate.HandleUnauthorized),
	)

	appStore := store.New(client, logger,
		store.WithSnapshots(snapshots),
		store.WithTokenSource(gate.Token),
	)

	runner := NewRunner(RunnerOpts{
		Config: config,
		Client: client,
		Store:  appStore,
		Gate:   gate,
		DB:     db,
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "wavecli",
		Usage:    "Browse words and tracks captured from song lyrics",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, shared.ErrNotAuthenticated) {
			logger.Error("not signed in, run `wavecli auth login` first")
			os.Exit(1)
		}
		logger.Fatalf("application error: %v", err)
	}
}

// findConfig prefers a config.toml in the working directory, then the
// data directory.
func findConfig() (string, error) {
	if _, err := os.Stat("config.toml"); err == nil {
		return "config.toml", nil
	}
	dataDir, err := shared.DataDir()
	if err != nil {
		return "", err
	}
	path := filepath.Join(dataDir, "config.toml")
	if _, err := os.Stat(path); err != nil {
		return "", err
	}
	return path, nil
}

func openDatabase(config *shared.Config) (*sql.DB, error) {
	path := config.Database.Path
	if path == "" {
		dataDir, err := shared.DataDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dataDir, "wavecli.db")
	}

	db, err := shared.NewDatabase(path)
	if err != nil {
		return nil, err
	}
	shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)
	if err := repositories.Setup(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
