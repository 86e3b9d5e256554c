package billing

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/barberpro/internal/billing"
	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/models"
	"github.com/BruksfildServices01/barberpro/internal/session"
)

type TenantFinder interface {
	FindTenant(ctx context.Context, id string) (models.Tenant, bool, error)
}

type CreateCheckout struct {
	repo     TenantFinder
	provider billing.Provider
}

// provider nil desliga a cobrança (sem MP_ACCESS_TOKEN).
func NewCreateCheckout(repo TenantFinder, provider billing.Provider) *CreateCheckout {
	return &CreateCheckout{repo: repo, provider: provider}
}

func (uc *CreateCheckout) Execute(
	ctx context.Context,
	sess session.Session,
	planCode string,
) (*billing.CheckoutSession, error) {

	if uc.provider == nil {
		return nil, httperr.ErrBusiness("billing_disabled")
	}

	plan, ok := models.Plans[planCode]
	if !ok || plan.Code == models.PlanAdmin {
		return nil, httperr.ErrBusiness("invalid_plan")
	}

	t, ok, err := uc.repo.FindTenant(ctx, sess.TenantID)
	if err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}
	if !ok {
		return nil, httperr.ErrBusiness("tenant_not_found")
	}

	out, err := uc.provider.CreateCheckout(ctx, billing.Checkout{
		TenantID:   t.ID,
		PayerEmail: t.Email,
		PlanCode:   plan.Code,
		PlanName:   plan.Name,
		Price:      plan.Price,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
