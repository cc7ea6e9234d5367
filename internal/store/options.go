package store

import (
	"log/slog"

	"github.com/thenoetrevino/atelier/internal/ids"
)

// Option is a functional option for configuring a Collection
type Option func(*config)

type config struct {
	newID  ids.Generator
	logger *slog.Logger
}

func defaultConfig() config {
	return config{
		newID:  ids.New,
		logger: slog.Default(),
	}
}

// WithIDGenerator overrides how new record ids are produced
func WithIDGenerator(gen ids.Generator) Option {
	return func(cfg *config) {
		if gen != nil {
			cfg.newID = gen
		}
	}
}

// WithLogger sets the logger used to report persistence failures
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
