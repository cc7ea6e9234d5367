package cli

import (
	"context"

	"github.com/thenoetrevino/atelier/internal/app"
	"github.com/thenoetrevino/atelier/internal/config"
)

type appKey struct{}

// WithApp returns a context carrying a prebuilt app.
// Commands run with it use that app instead of opening the configured database.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey{}, a)
}

// GetCLIFromContext returns a CLI around the app injected with WithApp,
// or initializes a fresh one from the user's configuration
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if a, ok := ctx.Value(appKey{}).(*app.App); ok && a != nil {
		return &CLI{App: a, Config: config.Default()}, nil
	}
	return NewCLI(ctx)
}
