package app

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/thenoetrevino/atelier/internal/database"
	"github.com/thenoetrevino/atelier/internal/ids"
	"github.com/thenoetrevino/atelier/internal/lookup"
	"github.com/thenoetrevino/atelier/internal/models"
	authservice "github.com/thenoetrevino/atelier/internal/services/auth"
	boutiqueservice "github.com/thenoetrevino/atelier/internal/services/boutique"
	clientservice "github.com/thenoetrevino/atelier/internal/services/client"
	reminderservice "github.com/thenoetrevino/atelier/internal/services/reminder"
	subscriptionservice "github.com/thenoetrevino/atelier/internal/services/subscription"
	"github.com/thenoetrevino/atelier/internal/store"
)

// App holds all application services and provides dependency injection.
// Every collection is loaded from the database once, here.
type App struct {
	// Service layer (business logic)
	BoutiqueService     boutiqueservice.Service
	ClientService       clientservice.Service
	SubscriptionService subscriptionservice.Service
	ReminderService     reminderservice.Service
	AuthService         authservice.Service

	// Directory renders foreign keys for display
	Directory *lookup.Directory
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(ctx context.Context, db *sql.DB, opts ...Option) *App {
	cfg := appConfig{
		logger: slog.Default(),
		newID:  ids.New,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	adapter := database.NewAdapter(db)
	storeOpts := []store.Option{
		store.WithIDGenerator(cfg.newID),
		store.WithLogger(cfg.logger),
	}

	boutiques := boutiqueservice.NewService(
		store.Open[models.Boutique](ctx, adapter, boutiqueservice.StorageKey, storeOpts...))
	clients := clientservice.NewService(
		store.Open[models.Client](ctx, adapter, clientservice.StorageKey, storeOpts...))
	subscriptions := subscriptionservice.NewService(
		store.Open[models.Subscription](ctx, adapter, subscriptionservice.StorageKey, storeOpts...))
	reminders := reminderservice.NewService(
		store.Open[models.Reminder](ctx, adapter, reminderservice.StorageKey, storeOpts...))

	auth := authservice.NewService(ctx, adapter,
		authservice.WithPasswordHash(cfg.passwordHash),
		authservice.WithIDGenerator(cfg.newID),
		authservice.WithLogger(cfg.logger),
	)

	return &App{
		BoutiqueService:     boutiques,
		ClientService:       clients,
		SubscriptionService: subscriptions,
		ReminderService:     reminders,
		AuthService:         auth,
		Directory:           lookup.NewDirectory(boutiques, clients, subscriptions),
	}
}
