// Package subscription owns the subscription collection
package subscription

import (
	"context"

	"github.com/thenoetrevino/atelier/internal/models"
)

// StorageKey is the slot the subscription collection is persisted under
const StorageKey = "subscription-storage"

// Service defines all subscription-related operations
type Service interface {
	// Read operations
	ListSubscriptions(ctx context.Context) []models.Subscription
	GetSubscription(ctx context.Context, id string) (models.Subscription, error)
	GetSubscriptionsByClient(ctx context.Context, clientID string) []models.Subscription

	// Write operations
	CreateSubscription(ctx context.Context, req CreateSubscriptionRequest) models.Subscription
	UpdateSubscription(ctx context.Context, id string, req UpdateSubscriptionRequest) (models.Subscription, error)
	DeleteSubscription(ctx context.Context, id string) error
}

// CreateSubscriptionRequest encapsulates data for creating a subscription.
// Dates are YYYY-MM-DD; their order is not checked.
type CreateSubscriptionRequest struct {
	Name      string  `json:"name" validate:"required"`
	Price     float64 `json:"price" validate:"finite,gte=0"`
	StartDate string  `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string  `json:"endDate" validate:"required,datetime=2006-01-02"`
	ClientID  string  `json:"clientId" validate:"required"`
}

// UpdateSubscriptionRequest holds a partial update; nil fields keep their value
type UpdateSubscriptionRequest struct {
	Name      *string
	Price     *float64
	StartDate *string
	EndDate   *string
	ClientID  *string
}

// IsEmpty reports whether the request changes nothing
func (r UpdateSubscriptionRequest) IsEmpty() bool {
	return r.Name == nil && r.Price == nil && r.StartDate == nil && r.EndDate == nil && r.ClientID == nil
}

type repository interface {
	List() []models.Subscription
	Get(id string) (models.Subscription, bool)
	Filter(pred func(models.Subscription) bool) []models.Subscription
	Insert(ctx context.Context, build func(id string) models.Subscription) models.Subscription
	Update(ctx context.Context, id string, merge func(models.Subscription) models.Subscription) (models.Subscription, bool)
	Delete(ctx context.Context, id string) bool
}

type service struct {
	repo repository
}

// NewService creates a new subscription service over the given collection
func NewService(repo repository) Service {
	return &service{repo: repo}
}

func (s *service) ListSubscriptions(ctx context.Context) []models.Subscription {
	return s.repo.List()
}

func (s *service) GetSubscription(ctx context.Context, id string) (models.Subscription, error) {
	sub, ok := s.repo.Get(id)
	if !ok {
		return models.Subscription{}, ErrSubscriptionNotFound
	}
	return sub, nil
}

// GetSubscriptionsByClient returns the subscriptions held by clientID in collection order
func (s *service) GetSubscriptionsByClient(ctx context.Context, clientID string) []models.Subscription {
	return s.repo.Filter(func(sub models.Subscription) bool {
		return sub.ClientID == clientID
	})
}

func (s *service) CreateSubscription(ctx context.Context, req CreateSubscriptionRequest) models.Subscription {
	return s.repo.Insert(ctx, func(id string) models.Subscription {
		return models.Subscription{
			ID:        id,
			Name:      req.Name,
			Price:     req.Price,
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
			ClientID:  req.ClientID,
		}
	})
}

func (s *service) UpdateSubscription(ctx context.Context, id string, req UpdateSubscriptionRequest) (models.Subscription, error) {
	updated, ok := s.repo.Update(ctx, id, func(existing models.Subscription) models.Subscription {
		return ApplyUpdate(existing, req)
	})
	if !ok {
		return models.Subscription{}, ErrSubscriptionNotFound
	}
	return updated, nil
}

// DeleteSubscription removes a subscription. Reminders referencing it are left untouched.
func (s *service) DeleteSubscription(ctx context.Context, id string) error {
	if !s.repo.Delete(ctx, id) {
		return ErrSubscriptionNotFound
	}
	return nil
}

// ApplyUpdate returns existing with every non-nil field of req applied
func ApplyUpdate(existing models.Subscription, req UpdateSubscriptionRequest) models.Subscription {
	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Price != nil {
		existing.Price = *req.Price
	}
	if req.StartDate != nil {
		existing.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		existing.EndDate = *req.EndDate
	}
	if req.ClientID != nil {
		existing.ClientID = *req.ClientID
	}
	return existing
}
