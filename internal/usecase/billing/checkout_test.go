package billing

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barberpro/internal/billing"
	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/infra/repository"
	"github.com/BruksfildServices01/barberpro/internal/session"
	"github.com/BruksfildServices01/barberpro/internal/store"
)

type fakeProvider struct {
	got billing.Checkout
}

func (f *fakeProvider) CreateCheckout(_ context.Context, in billing.Checkout) (billing.CheckoutSession, error) {
	f.got = in
	return billing.CheckoutSession{ID: "pref-1", URL: "https://mp/pref-1"}, nil
}

func setup(t *testing.T) *repository.Sections {
	t.Helper()
	b, err := store.OpenFile(filepath.Join(t.TempDir(), "db.json"), "2026-10-19")
	require.NoError(t, err)
	return repository.NewSections(b)
}

func TestCreateCheckout(t *testing.T) {
	provider := &fakeProvider{}
	uc := NewCreateCheckout(setup(t), provider)

	out, err := uc.Execute(context.Background(), session.Session{TenantID: store.DemoTenantID}, "premium")
	require.NoError(t, err)
	assert.Equal(t, "https://mp/pref-1", out.URL)
	assert.Equal(t, "demo@barbearia.com", provider.got.PayerEmail)
	assert.Equal(t, "179.9", provider.got.Price.String())
}

func TestCreateCheckout_Errors(t *testing.T) {
	repo := setup(t)
	ctx := context.Background()
	demo := session.Session{TenantID: store.DemoTenantID}

	_, err := NewCreateCheckout(repo, nil).Execute(ctx, demo, "pro")
	assert.True(t, httperr.IsBusiness(err, "billing_disabled"))

	uc := NewCreateCheckout(repo, &fakeProvider{})

	_, err = uc.Execute(ctx, demo, "admin")
	assert.True(t, httperr.IsBusiness(err, "invalid_plan"))

	_, err = uc.Execute(ctx, demo, "gold")
	assert.True(t, httperr.IsBusiness(err, "invalid_plan"))

	_, err = uc.Execute(ctx, session.Session{TenantID: "sumiu"}, "pro")
	assert.True(t, httperr.IsBusiness(err, "tenant_not_found"))
}
