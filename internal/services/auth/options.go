package auth

import (
	"log/slog"

	"github.com/thenoetrevino/atelier/internal/ids"
)

// Option is a functional option for configuring the auth service
type Option func(*service)

// WithPasswordHash requires logins to match the given bcrypt hash.
// An empty hash accepts any non-empty password.
func WithPasswordHash(hash string) Option {
	return func(s *service) {
		s.passwordHash = hash
	}
}

// WithIDGenerator overrides how user ids are minted
func WithIDGenerator(gen ids.Generator) Option {
	return func(s *service) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithLogger sets the logger used for auth events
func WithLogger(logger *slog.Logger) Option {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}
