package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/atelier/internal/database"
	"github.com/thenoetrevino/atelier/internal/ids"
	"github.com/thenoetrevino/atelier/internal/models"
	"github.com/thenoetrevino/atelier/internal/store"
	"github.com/thenoetrevino/atelier/internal/testutil"
)

func newTestService(t *testing.T, adapter *database.Adapter) Service {
	t.Helper()
	coll := store.Open[models.Client](context.Background(), adapter, StorageKey,
		store.WithIDGenerator(ids.Sequence("client")))
	return NewService(coll)
}

func strPtr(s string) *string { return &s }

func alice(boutiqueID string) CreateClientRequest {
	return CreateClientRequest{
		Name:       "Alice",
		Email:      "a@x.io",
		Phone:      "555",
		BoutiqueID: boutiqueID,
	}
}

func TestCreateClient(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, testutil.SetupTestAdapter(t))

	c := svc.CreateClient(context.Background(), alice("b1"))

	assert.Equal(t, "client-1", c.ID)
	assert.Equal(t, "Alice", c.Name)
	assert.Equal(t, "b1", c.BoutiqueID)
}

func TestGetClientsByBoutique(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t, testutil.SetupTestAdapter(t))

	first := svc.CreateClient(ctx, alice("b1"))
	svc.CreateClient(ctx, alice("b2"))
	third := svc.CreateClient(ctx, alice("b1"))

	got := svc.GetClientsByBoutique(ctx, "b1")
	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID)
	assert.Equal(t, third.ID, got[1].ID)

	none := svc.GetClientsByBoutique(ctx, "nope")
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestUpdateClient_Partial(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t, testutil.SetupTestAdapter(t))
	c := svc.CreateClient(ctx, alice("b1"))

	updated, err := svc.UpdateClient(ctx, c.ID, UpdateClientRequest{Phone: strPtr("556")})
	require.NoError(t, err)
	assert.Equal(t, "556", updated.Phone)
	assert.Equal(t, "a@x.io", updated.Email)
	assert.Equal(t, c.ID, updated.ID)

	_, err = svc.UpdateClient(ctx, "missing", UpdateClientRequest{Phone: strPtr("1")})
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestDeleteClient(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t, testutil.SetupTestAdapter(t))
	c := svc.CreateClient(ctx, alice("b1"))

	require.NoError(t, svc.DeleteClient(ctx, c.ID))
	_, err := svc.GetClient(ctx, c.ID)
	assert.ErrorIs(t, err, ErrClientNotFound)
	assert.ErrorIs(t, svc.DeleteClient(ctx, c.ID), ErrClientNotFound)
}

func TestClients_SurviveReload(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	adapter := testutil.SetupTestAdapter(t)

	newTestService(t, adapter).CreateClient(ctx, alice("b1"))

	got := newTestService(t, adapter).GetClientsByBoutique(ctx, "b1")
	require.Len(t, got, 1)
	assert.Equal(t, "Alice", got[0].Name)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Validate(alice("b1")))

	tests := []struct {
		name    string
		req     CreateClientRequest
		field   string
		message string
	}{
		{"empty name", CreateClientRequest{Email: "a@x.io", Phone: "1", BoutiqueID: "b"}, "name", "Name is required"},
		{"bad email", CreateClientRequest{Name: "A", Email: "nope", Phone: "1", BoutiqueID: "b"}, "email", "Invalid email address"},
		{"empty email", CreateClientRequest{Name: "A", Phone: "1", BoutiqueID: "b"}, "email", "Invalid email address"},
		{"no phone", CreateClientRequest{Name: "A", Email: "a@x.io", BoutiqueID: "b"}, "phone", "Phone number is required"},
		{"no boutique", CreateClientRequest{Name: "A", Email: "a@x.io", Phone: "1"}, "boutiqueId", "Boutique is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(tt.req)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.field, errs[0].Field)
			assert.Equal(t, tt.message, errs[0].Message)
		})
	}
}

func TestValidateUpdate(t *testing.T) {
	t.Parallel()
	existing := models.Client{ID: "c1", Name: "Alice", Email: "a@x.io", Phone: "555", BoutiqueID: "b1"}

	assert.Nil(t, ValidateUpdate(existing, UpdateClientRequest{Phone: strPtr("556")}))

	errs := ValidateUpdate(existing, UpdateClientRequest{Email: strPtr("broken")})
	msg, ok := errs.For("email")
	assert.True(t, ok)
	assert.Equal(t, "Invalid email address", msg)
}
