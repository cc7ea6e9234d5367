// Package auth tracks the signed-in operator.
//
// There is no identity provider: any non-empty email and password pair is
// accepted unless a bcrypt password hash is configured. The session is
// persisted so separate CLI invocations share it, and it never expires.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/thenoetrevino/atelier/internal/database"
	"github.com/thenoetrevino/atelier/internal/ids"
	"github.com/thenoetrevino/atelier/internal/models"
)

// StorageKey is the slot the session is persisted under
const StorageKey = "auth-storage"

// Service defines all auth-related operations
type Service interface {
	Login(ctx context.Context, creds Credentials) (models.User, error)
	Logout(ctx context.Context)
	IsAuthenticated() bool
	CurrentUser() (models.User, bool)
}

// Credentials is the login input
type Credentials struct {
	Email    string
	Password string
}

// persister saves and loads the session document
type persister interface {
	database.Loader
	Save(ctx context.Context, key string, value any) error
}

// session is the persisted form: {"isAuthenticated":bool,"user":{...}|null}
type session struct {
	IsAuthenticated bool         `json:"isAuthenticated"`
	User            *models.User `json:"user"`
}

type service struct {
	mu           sync.RWMutex
	state        session
	persist      persister
	passwordHash string
	newID        ids.Generator
	logger       *slog.Logger
}

// NewService restores the last saved session, if any
func NewService(ctx context.Context, p persister, opts ...Option) Service {
	s := &service{
		persist: p,
		newID:   ids.New,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	var saved session
	err := p.Load(ctx, StorageKey, &saved)
	switch {
	case errors.Is(err, database.ErrSlotNotFound):
	case err != nil:
		s.logger.Warn("discarding unreadable session", "key", StorageKey, "error", err)
	case saved.IsAuthenticated && saved.User != nil:
		s.state = saved
	}
	return s
}

// Login signs the operator in and persists the session
func (s *service) Login(ctx context.Context, creds Credentials) (models.User, error) {
	email := strings.TrimSpace(creds.Email)
	if email == "" || creds.Password == "" {
		return models.User{}, ErrInvalidCredentials
	}
	if s.passwordHash != "" && !CheckPassword(s.passwordHash, creds.Password) {
		s.logger.Warn("login rejected", "email", email)
		return models.User{}, ErrInvalidCredentials
	}

	user := models.User{
		ID:       s.newID(),
		Email:    email,
		Username: usernameFrom(email),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = session{IsAuthenticated: true, User: &user}
	s.save(ctx)
	s.logger.Info("logged in", "user", user.Username)
	return user, nil
}

// Logout clears the session and persists the cleared state
func (s *service) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = session{}
	s.save(ctx)
	s.logger.Info("logged out")
}

func (s *service) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsAuthenticated
}

func (s *service) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.state.IsAuthenticated || s.state.User == nil {
		return models.User{}, false
	}
	return *s.state.User, true
}

// save must be called with the write lock held
func (s *service) save(ctx context.Context) {
	if err := s.persist.Save(ctx, StorageKey, s.state); err != nil {
		s.logger.Error("failed to persist session", "key", StorageKey, "error", err)
	}
}

// usernameFrom returns the local part of an email address
func usernameFrom(email string) string {
	if i := strings.IndexByte(email, '@'); i >= 0 {
		return email[:i]
	}
	return email
}
