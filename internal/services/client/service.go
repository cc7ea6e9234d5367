// Package client owns the client collection
package client

import (
	"context"

	"github.com/thenoetrevino/atelier/internal/models"
)

// StorageKey is the slot the client collection is persisted under
const StorageKey = "client-storage"

// Service defines all client-related operations
type Service interface {
	// Read operations
	ListClients(ctx context.Context) []models.Client
	GetClient(ctx context.Context, id string) (models.Client, error)
	GetClientsByBoutique(ctx context.Context, boutiqueID string) []models.Client

	// Write operations
	CreateClient(ctx context.Context, req CreateClientRequest) models.Client
	UpdateClient(ctx context.Context, id string, req UpdateClientRequest) (models.Client, error)
	DeleteClient(ctx context.Context, id string) error
}

// CreateClientRequest encapsulates data for creating a client
type CreateClientRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"email"`
	Phone      string `json:"phone" validate:"required"`
	BoutiqueID string `json:"boutiqueId" validate:"required"`
}

// UpdateClientRequest holds a partial update; nil fields keep their value
type UpdateClientRequest struct {
	Name       *string
	Email      *string
	Phone      *string
	BoutiqueID *string
}

// IsEmpty reports whether the request changes nothing
func (r UpdateClientRequest) IsEmpty() bool {
	return r.Name == nil && r.Email == nil && r.Phone == nil && r.BoutiqueID == nil
}

type repository interface {
	List() []models.Client
	Get(id string) (models.Client, bool)
	Filter(pred func(models.Client) bool) []models.Client
	Insert(ctx context.Context, build func(id string) models.Client) models.Client
	Update(ctx context.Context, id string, merge func(models.Client) models.Client) (models.Client, bool)
	Delete(ctx context.Context, id string) bool
}

type service struct {
	repo repository
}

// NewService creates a new client service over the given collection
func NewService(repo repository) Service {
	return &service{repo: repo}
}

func (s *service) ListClients(ctx context.Context) []models.Client {
	return s.repo.List()
}

func (s *service) GetClient(ctx context.Context, id string) (models.Client, error) {
	c, ok := s.repo.Get(id)
	if !ok {
		return models.Client{}, ErrClientNotFound
	}
	return c, nil
}

// GetClientsByBoutique returns the clients attached to boutiqueID in collection order.
// The boutique itself need not exist.
func (s *service) GetClientsByBoutique(ctx context.Context, boutiqueID string) []models.Client {
	return s.repo.Filter(func(c models.Client) bool {
		return c.BoutiqueID == boutiqueID
	})
}

func (s *service) CreateClient(ctx context.Context, req CreateClientRequest) models.Client {
	return s.repo.Insert(ctx, func(id string) models.Client {
		return models.Client{
			ID:         id,
			Name:       req.Name,
			Email:      req.Email,
			Phone:      req.Phone,
			BoutiqueID: req.BoutiqueID,
		}
	})
}

func (s *service) UpdateClient(ctx context.Context, id string, req UpdateClientRequest) (models.Client, error) {
	updated, ok := s.repo.Update(ctx, id, func(existing models.Client) models.Client {
		return ApplyUpdate(existing, req)
	})
	if !ok {
		return models.Client{}, ErrClientNotFound
	}
	return updated, nil
}

// DeleteClient removes a client. Subscriptions referencing it are left untouched.
func (s *service) DeleteClient(ctx context.Context, id string) error {
	if !s.repo.Delete(ctx, id) {
		return ErrClientNotFound
	}
	return nil
}

// ApplyUpdate returns existing with every non-nil field of req applied
func ApplyUpdate(existing models.Client, req UpdateClientRequest) models.Client {
	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Email != nil {
		existing.Email = *req.Email
	}
	if req.Phone != nil {
		existing.Phone = *req.Phone
	}
	if req.BoutiqueID != nil {
		existing.BoutiqueID = *req.BoutiqueID
	}
	return existing
}
