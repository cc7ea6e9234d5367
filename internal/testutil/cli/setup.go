// Package cli provides fixtures for command tests.
// It is separate from testutil to avoid import cycles when service tests import testutil.
package cli

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/atelier/internal/app"
	"github.com/thenoetrevino/atelier/internal/ids"
	"github.com/thenoetrevino/atelier/internal/logging"
	"github.com/thenoetrevino/atelier/internal/services/auth"
	"github.com/thenoetrevino/atelier/internal/testutil"
)

// TestEmail is the operator signed in by SetupCLITest
const TestEmail = "operator@atelier.test"

// SetupCLITest creates an in-memory DB and a signed-in App over it.
// Record ids are predictable: id-1, id-2, ...
func SetupCLITest(t *testing.T, opts ...app.Option) (*sql.DB, *app.App) {
	t.Helper()
	db, appInstance := SetupAnonymousCLITest(t, opts...)

	if _, err := appInstance.AuthService.Login(context.Background(), auth.Credentials{
		Email:    TestEmail,
		Password: "test",
	}); err != nil {
		t.Fatalf("Failed to log in test operator: %v", err)
	}

	return db, appInstance
}

// SetupAnonymousCLITest is SetupCLITest without signing in
func SetupAnonymousCLITest(t *testing.T, opts ...app.Option) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	opts = append([]app.Option{
		app.WithIDGenerator(ids.Sequence("id")),
		app.WithLogger(logging.Discard()),
	}, opts...)

	return db, app.New(context.Background(), db, opts...)
}
