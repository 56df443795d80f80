package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/onewave/wavecli/internal/repositories"
	"github.com/onewave/wavecli/internal/shared"
)

// SetupConfig writes the example config file.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("output")
	if path == "" {
		dataDir, err := shared.DataDir()
		if err != nil {
			return fmt.Errorf("failed to resolve data directory: %w", err)
		}
		path = filepath.Join(dataDir, "config.toml")
	}

	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.logger.Info("config file created", "path", path)
	return r.writePlainln("✓ Config written to %s", path)
}

// SetupDatabase runs the migrations against the configured database.
func (r *Runner) SetupDatabase(ctx context.Context, cmd *cli.Command) error {
	if err := repositories.Setup(r.db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return r.writePlainln("✓ Database ready")
}
