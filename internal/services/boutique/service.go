// Package boutique owns the boutique collection
package boutique

import (
	"context"

	"github.com/thenoetrevino/atelier/internal/models"
)

// StorageKey is the slot the boutique collection is persisted under
const StorageKey = "boutique-storage"

// Service defines all boutique-related operations
type Service interface {
	// Read operations
	ListBoutiques(ctx context.Context) []models.Boutique
	GetBoutique(ctx context.Context, id string) (models.Boutique, error)

	// Write operations
	CreateBoutique(ctx context.Context, req CreateBoutiqueRequest) models.Boutique
	UpdateBoutique(ctx context.Context, id string, req UpdateBoutiqueRequest) (models.Boutique, error)
	DeleteBoutique(ctx context.Context, id string) error
}

// CreateBoutiqueRequest encapsulates data for creating a boutique
type CreateBoutiqueRequest struct {
	Name       string `json:"name" validate:"required"`
	Address    string `json:"address" validate:"required"`
	BusinessID string `json:"businessId" validate:"required"`
}

// UpdateBoutiqueRequest holds a partial update; nil fields keep their value
type UpdateBoutiqueRequest struct {
	Name       *string
	Address    *string
	BusinessID *string
}

// IsEmpty reports whether the request changes nothing
func (r UpdateBoutiqueRequest) IsEmpty() bool {
	return r.Name == nil && r.Address == nil && r.BusinessID == nil
}

// repository defines the collection methods needed by the boutique service
// This interface is private to the service layer
type repository interface {
	List() []models.Boutique
	Get(id string) (models.Boutique, bool)
	Insert(ctx context.Context, build func(id string) models.Boutique) models.Boutique
	Update(ctx context.Context, id string, merge func(models.Boutique) models.Boutique) (models.Boutique, bool)
	Delete(ctx context.Context, id string) bool
}

type service struct {
	repo repository
}

// NewService creates a new boutique service over the given collection
func NewService(repo repository) Service {
	return &service{repo: repo}
}

// ListBoutiques returns every boutique in insertion order
func (s *service) ListBoutiques(ctx context.Context) []models.Boutique {
	return s.repo.List()
}

// GetBoutique retrieves a specific boutique
func (s *service) GetBoutique(ctx context.Context, id string) (models.Boutique, error) {
	b, ok := s.repo.Get(id)
	if !ok {
		return models.Boutique{}, ErrBoutiqueNotFound
	}
	return b, nil
}

// CreateBoutique stores a new boutique. Content is not validated here.
func (s *service) CreateBoutique(ctx context.Context, req CreateBoutiqueRequest) models.Boutique {
	return s.repo.Insert(ctx, func(id string) models.Boutique {
		return models.Boutique{
			ID:         id,
			Name:       req.Name,
			Address:    req.Address,
			BusinessID: req.BusinessID,
		}
	})
}

// UpdateBoutique shallow-merges req into the existing boutique
func (s *service) UpdateBoutique(ctx context.Context, id string, req UpdateBoutiqueRequest) (models.Boutique, error) {
	updated, ok := s.repo.Update(ctx, id, func(existing models.Boutique) models.Boutique {
		return ApplyUpdate(existing, req)
	})
	if !ok {
		return models.Boutique{}, ErrBoutiqueNotFound
	}
	return updated, nil
}

// DeleteBoutique removes a boutique. Clients referencing it are left untouched.
func (s *service) DeleteBoutique(ctx context.Context, id string) error {
	if !s.repo.Delete(ctx, id) {
		return ErrBoutiqueNotFound
	}
	return nil
}

// ApplyUpdate returns existing with every non-nil field of req applied
func ApplyUpdate(existing models.Boutique, req UpdateBoutiqueRequest) models.Boutique {
	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Address != nil {
		existing.Address = *req.Address
	}
	if req.BusinessID != nil {
		existing.BusinessID = *req.BusinessID
	}
	return existing
}
