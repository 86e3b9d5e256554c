package billing

import (
	"context"
	"errors"
	"testing"

	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCreator struct {
	got  preference.Request
	resp *preference.Response
	err  error
}

func (f *fakeCreator) Create(_ context.Context, req preference.Request) (*preference.Response, error) {
	f.got = req
	return f.resp, f.err
}

func sampleCheckout() Checkout {
	return Checkout{
		TenantID:   "barbearia_demo",
		PayerEmail: "demo@barbearia.com",
		PlanCode:   "premium",
		PlanName:   "Premium",
		Price:      decimal.RequireFromString("179.90"),
	}
}

func TestBuildPreference(t *testing.T) {
	req := BuildPreference(sampleCheckout(), "https://barberpro.app/ok")

	require.Len(t, req.Items, 1)
	assert.Equal(t, "premium", req.Items[0].ID)
	assert.Equal(t, 179.9, req.Items[0].UnitPrice)
	assert.Equal(t, 1, req.Items[0].Quantity)
	assert.Equal(t, "demo@barbearia.com", req.Payer.Email)
	assert.Equal(t, "barbearia_demo:premium", req.ExternalReference)
	require.NotNil(t, req.BackURLs)
	assert.Equal(t, "https://barberpro.app/ok", req.BackURLs.Success)
}

func TestMercadoPago_CreateCheckout(t *testing.T) {
	fake := &fakeCreator{resp: &preference.Response{ID: "pref-1", InitPoint: "https://mp/checkout/pref-1"}}
	mp := &MercadoPago{client: fake}

	sess, err := mp.CreateCheckout(context.Background(), sampleCheckout())
	require.NoError(t, err)
	assert.Equal(t, CheckoutSession{ID: "pref-1", URL: "https://mp/checkout/pref-1"}, sess)
	assert.Nil(t, fake.got.BackURLs)
}

func TestMercadoPago_ProviderError(t *testing.T) {
	mp := &MercadoPago{client: &fakeCreator{err: errors.New("401")}}

	_, err := mp.CreateCheckout(context.Background(), sampleCheckout())
	assert.Error(t, err)
}
