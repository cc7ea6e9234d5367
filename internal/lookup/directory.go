// Package lookup resolves foreign keys to display labels.
// Dangling references are expected and render as a fixed fallback.
package lookup

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/atelier/internal/models"
)

// Fallback labels for references that no longer resolve
const (
	UnknownBoutique     = "Unknown Boutique"
	UnknownClient       = "Unknown Client"
	UnknownSubscription = "Unknown Subscription"
)

// ResolveOr looks id up with find and renders it with label.
// Any lookup error yields fallback.
func ResolveOr[T any](find func(id string) (T, error), id string, label func(T) string, fallback string) string {
	v, err := find(id)
	if err != nil {
		return fallback
	}
	return label(v)
}

type boutiqueFinder interface {
	GetBoutique(ctx context.Context, id string) (models.Boutique, error)
}

type clientFinder interface {
	GetClient(ctx context.Context, id string) (models.Client, error)
}

type subscriptionFinder interface {
	GetSubscription(ctx context.Context, id string) (models.Subscription, error)
}

// Directory renders references between boutiques, clients and subscriptions
type Directory struct {
	boutiques     boutiqueFinder
	clients       clientFinder
	subscriptions subscriptionFinder
}

// NewDirectory creates a directory over the given services
func NewDirectory(boutiques boutiqueFinder, clients clientFinder, subscriptions subscriptionFinder) *Directory {
	return &Directory{
		boutiques:     boutiques,
		clients:       clients,
		subscriptions: subscriptions,
	}
}

// BoutiqueName returns the name of the boutique or UnknownBoutique
func (d *Directory) BoutiqueName(ctx context.Context, id string) string {
	return ResolveOr(func(id string) (models.Boutique, error) {
		return d.boutiques.GetBoutique(ctx, id)
	}, id, func(b models.Boutique) string { return b.Name }, UnknownBoutique)
}

// ClientName returns the name of the client or UnknownClient
func (d *Directory) ClientName(ctx context.Context, id string) string {
	return ResolveOr(func(id string) (models.Client, error) {
		return d.clients.GetClient(ctx, id)
	}, id, func(c models.Client) string { return c.Name }, UnknownClient)
}

// SubscriptionLabel returns "<subscription> (<client>)" or UnknownSubscription
func (d *Directory) SubscriptionLabel(ctx context.Context, id string) string {
	return ResolveOr(func(id string) (models.Subscription, error) {
		return d.subscriptions.GetSubscription(ctx, id)
	}, id, func(s models.Subscription) string {
		return fmt.Sprintf("%s (%s)", s.Name, d.ClientName(ctx, s.ClientID))
	}, UnknownSubscription)
}
