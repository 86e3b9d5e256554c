// Package billing cria cobranças de assinatura das barbearias.
package billing

import (
	"context"

	"github.com/shopspring/decimal"
)

type Checkout struct {
	TenantID   string
	PayerEmail string
	PlanCode   string
	PlanName   string
	Price      decimal.Decimal
}

type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type Provider interface {
	CreateCheckout(ctx context.Context, in Checkout) (CheckoutSession, error)
}
