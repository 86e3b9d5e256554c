package billing

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

type preferenceCreator interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
}

// MercadoPago gera uma preferência de pagamento (checkout pro) por plano.
type MercadoPago struct {
	client     preferenceCreator
	successURL string
}

func NewMercadoPago(accessToken, successURL string) (*MercadoPago, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("billing: mercadopago config: %w", err)
	}

	return &MercadoPago{
		client:     preference.NewClient(cfg),
		successURL: successURL,
	}, nil
}

func (m *MercadoPago) CreateCheckout(ctx context.Context, in Checkout) (CheckoutSession, error) {
	req := BuildPreference(in, m.successURL)

	resp, err := m.client.Create(ctx, req)
	if err != nil {
		return CheckoutSession{}, fmt.Errorf("billing: create preference: %w", err)
	}

	return CheckoutSession{ID: resp.ID, URL: resp.InitPoint}, nil
}

func BuildPreference(in Checkout, successURL string) preference.Request {
	price, _ := in.Price.Float64()

	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				ID:         in.PlanCode,
				Title:      "BarberPro " + in.PlanName,
				Quantity:   1,
				UnitPrice:  price,
				CurrencyID: "BRL",
			},
		},
		Payer: &preference.PayerRequest{
			Email: in.PayerEmail,
		},
		ExternalReference: in.TenantID + ":" + in.PlanCode,
	}

	if successURL != "" {
		req.BackURLs = &preference.BackURLsRequest{Success: successURL}
		req.AutoReturn = "approved"
	}
	return req
}
