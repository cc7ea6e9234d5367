package app

import (
	"log/slog"

	"github.com/thenoetrevino/atelier/internal/ids"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger       *slog.Logger
	newID        ids.Generator
	passwordHash string
}

// WithLogger sets the logger for the application; nil keeps the default
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithIDGenerator sets the id generator shared by every collection
func WithIDGenerator(gen ids.Generator) Option {
	return func(cfg *appConfig) {
		cfg.newID = gen
	}
}

// WithPasswordHash requires logins to match the given bcrypt hash
func WithPasswordHash(hash string) Option {
	return func(cfg *appConfig) {
		cfg.passwordHash = hash
	}
}
