package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/thenoetrevino/atelier/internal/app"
	"github.com/thenoetrevino/atelier/internal/cli/styles"
	"github.com/thenoetrevino/atelier/internal/config"
	"github.com/thenoetrevino/atelier/internal/database"
	"github.com/thenoetrevino/atelier/internal/logging"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App       // Application container with services
	Config *config.Config // Loaded configuration

	db     *sql.DB
	logger io.Closer
}

// NewCLI loads config, applies its theme, opens logging and the database, and builds the app
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	styles.Init(cfg.Theme)

	logFile, err := logging.Init(cfg.LogDir(), cfg.SlogLevel())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	db, err := database.InitDB(ctx, cfg.DBPath())
	if err != nil {
		_ = logFile.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	application := app.New(ctx, db,
		app.WithLogger(logging.Logger),
		app.WithPasswordHash(cfg.Auth.PasswordHash),
	)

	return &CLI{
		App:    application,
		Config: cfg,
		db:     db,
		logger: logFile,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	var errs []error
	if c.db != nil {
		errs = append(errs, c.db.Close())
	}
	if c.logger != nil {
		errs = append(errs, c.logger.Close())
	}
	return errors.Join(errs...)
}
