package auth

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/atelier/internal/database"
	"github.com/thenoetrevino/atelier/internal/ids"
	"github.com/thenoetrevino/atelier/internal/testutil"
)

func newTestService(t *testing.T, adapter *database.Adapter, opts ...Option) Service {
	t.Helper()
	opts = append([]Option{WithIDGenerator(ids.Sequence("user"))}, opts...)
	return NewService(context.Background(), adapter, opts...)
}

func TestNewService_StartsSignedOut(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, testutil.SetupTestAdapter(t))

	assert.False(t, svc.IsAuthenticated())
	_, ok := svc.CurrentUser()
	assert.False(t, ok)
}

func TestLogin(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, testutil.SetupTestAdapter(t))

	user, err := svc.Login(context.Background(), Credentials{Email: "jane@shop.io", Password: "pw"})
	require.NoError(t, err)

	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "jane@shop.io", user.Email)
	assert.Equal(t, "jane", user.Username)
	assert.True(t, svc.IsAuthenticated())

	current, ok := svc.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, user, current)
}

func TestLogin_RejectsEmptyInput(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, testutil.SetupTestAdapter(t))

	tests := []Credentials{
		{Email: "", Password: "pw"},
		{Email: "   ", Password: "pw"},
		{Email: "jane@shop.io", Password: ""},
	}
	for _, creds := range tests {
		_, err := svc.Login(context.Background(), creds)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}
	assert.False(t, svc.IsAuthenticated())
}

func TestLogin_WithPasswordHash(t *testing.T) {
	t.Parallel()
	hash, err := HashPassword("secret")
	require.NoError(t, err)

	svc := newTestService(t, testutil.SetupTestAdapter(t), WithPasswordHash(hash))

	_, err = svc.Login(context.Background(), Credentials{Email: "jane@shop.io", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, svc.IsAuthenticated())

	_, err = svc.Login(context.Background(), Credentials{Email: "jane@shop.io", Password: "secret"})
	require.NoError(t, err)
	assert.True(t, svc.IsAuthenticated())
}

func TestLogout(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t, testutil.SetupTestAdapter(t))

	_, err := svc.Login(ctx, Credentials{Email: "jane@shop.io", Password: "pw"})
	require.NoError(t, err)

	svc.Logout(ctx)
	assert.False(t, svc.IsAuthenticated())
	_, ok := svc.CurrentUser()
	assert.False(t, ok)
}

func TestSession_SurvivesReload(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	adapter := testutil.SetupTestAdapter(t)

	user, err := newTestService(t, adapter).Login(ctx, Credentials{Email: "jane@shop.io", Password: "pw"})
	require.NoError(t, err)

	reloaded := newTestService(t, adapter)
	assert.True(t, reloaded.IsAuthenticated())
	current, ok := reloaded.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, user, current)

	reloaded.Logout(ctx)
	assert.False(t, newTestService(t, adapter).IsAuthenticated())
}

func TestSession_PersistedShape(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	adapter := database.NewAdapter(db)
	svc := newTestService(t, adapter)

	svc.Logout(ctx)
	assert.JSONEq(t, `{"isAuthenticated":false,"user":null}`, rawSlot(t, db))

	_, err := svc.Login(ctx, Credentials{Email: "jane@shop.io", Password: "pw"})
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"isAuthenticated":true,"user":{"id":"user-1","email":"jane@shop.io","username":"jane"}}`,
		rawSlot(t, db))
}

func TestHashPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)
	assert.True(t, CheckPassword(hash, "secret"))
	assert.False(t, CheckPassword(hash, "other"))

	_, err = HashPassword("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestUsernameFrom(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "jane", usernameFrom("jane@shop.io"))
	assert.Equal(t, "noatsign", usernameFrom("noatsign"))
}

func rawSlot(t *testing.T, db *sql.DB) string {
	t.Helper()
	var value string
	err := db.QueryRowContext(context.Background(),
		"SELECT value FROM kv_slots WHERE key = ?", StorageKey).Scan(&value)
	require.NoError(t, err)
	return value
}
