// Package reminder owns the reminder collection.
// Reminders are configuration only; nothing here schedules or sends them.
package reminder

import (
	"context"

	"github.com/thenoetrevino/atelier/internal/models"
)

// StorageKey is the slot the reminder collection is persisted under
const StorageKey = "reminder-storage"

// Service defines all reminder-related operations
type Service interface {
	// Read operations
	ListReminders(ctx context.Context) []models.Reminder
	GetReminder(ctx context.Context, id string) (models.Reminder, error)
	GetRemindersBySubscription(ctx context.Context, subscriptionID string) []models.Reminder

	// Write operations
	CreateReminder(ctx context.Context, req CreateReminderRequest) models.Reminder
	UpdateReminder(ctx context.Context, id string, req UpdateReminderRequest) (models.Reminder, error)
	DeleteReminder(ctx context.Context, id string) error
}

// CreateReminderRequest encapsulates data for creating a reminder
type CreateReminderRequest struct {
	SubscriptionID string          `json:"subscriptionId" validate:"required"`
	Interval       models.Interval `json:"interval" validate:"required,oneof=day week month"`
	Channels       models.Channels `json:"channels" validate:"min=1,dive,oneof=sms email"`
	Message        string          `json:"message" validate:"required"`
}

// UpdateReminderRequest holds a partial update; nil fields keep their value.
// Toggle is applied after Channels, flipping each listed channel in turn.
type UpdateReminderRequest struct {
	SubscriptionID *string
	Interval       *models.Interval
	Channels       *models.Channels
	Message        *string
	Toggle         []models.Channel
}

// IsEmpty reports whether the request changes nothing
func (r UpdateReminderRequest) IsEmpty() bool {
	return r.SubscriptionID == nil && r.Interval == nil && r.Channels == nil &&
		r.Message == nil && len(r.Toggle) == 0
}

type repository interface {
	List() []models.Reminder
	Get(id string) (models.Reminder, bool)
	Filter(pred func(models.Reminder) bool) []models.Reminder
	Insert(ctx context.Context, build func(id string) models.Reminder) models.Reminder
	Update(ctx context.Context, id string, merge func(models.Reminder) models.Reminder) (models.Reminder, bool)
	Delete(ctx context.Context, id string) bool
}

type service struct {
	repo repository
}

// NewService creates a new reminder service over the given collection
func NewService(repo repository) Service {
	return &service{repo: repo}
}

func (s *service) ListReminders(ctx context.Context) []models.Reminder {
	return cloneAll(s.repo.List())
}

func (s *service) GetReminder(ctx context.Context, id string) (models.Reminder, error) {
	r, ok := s.repo.Get(id)
	if !ok {
		return models.Reminder{}, ErrReminderNotFound
	}
	return r.Clone(), nil
}

// GetRemindersBySubscription returns the reminders configured for subscriptionID in collection order
func (s *service) GetRemindersBySubscription(ctx context.Context, subscriptionID string) []models.Reminder {
	return cloneAll(s.repo.Filter(func(r models.Reminder) bool {
		return r.SubscriptionID == subscriptionID
	}))
}

func (s *service) CreateReminder(ctx context.Context, req CreateReminderRequest) models.Reminder {
	created := s.repo.Insert(ctx, func(id string) models.Reminder {
		return models.Reminder{
			ID:             id,
			SubscriptionID: req.SubscriptionID,
			Interval:       req.Interval,
			Channels:       req.Channels.Clone(),
			Message:        req.Message,
		}
	})
	return created.Clone()
}

func (s *service) UpdateReminder(ctx context.Context, id string, req UpdateReminderRequest) (models.Reminder, error) {
	updated, ok := s.repo.Update(ctx, id, func(existing models.Reminder) models.Reminder {
		return ApplyUpdate(existing, req)
	})
	if !ok {
		return models.Reminder{}, ErrReminderNotFound
	}
	return updated.Clone(), nil
}

func (s *service) DeleteReminder(ctx context.Context, id string) error {
	if !s.repo.Delete(ctx, id) {
		return ErrReminderNotFound
	}
	return nil
}

// ApplyUpdate returns a copy of existing with every non-nil field of req applied
func ApplyUpdate(existing models.Reminder, req UpdateReminderRequest) models.Reminder {
	out := existing.Clone()
	if req.SubscriptionID != nil {
		out.SubscriptionID = *req.SubscriptionID
	}
	if req.Interval != nil {
		out.Interval = *req.Interval
	}
	if req.Channels != nil {
		out.Channels = req.Channels.Clone()
	}
	for _, ch := range req.Toggle {
		out.Channels = out.Channels.Toggle(ch)
	}
	if req.Message != nil {
		out.Message = *req.Message
	}
	return out
}

func cloneAll(in []models.Reminder) []models.Reminder {
	for i := range in {
		in[i] = in[i].Clone()
	}
	return in
}
