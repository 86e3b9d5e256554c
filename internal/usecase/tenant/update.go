package tenant

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/barberpro/internal/dto"
	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/models"
	"github.com/BruksfildServices01/barberpro/internal/session"
)

// Campos nil não mudam.
type UpdateTenantInput struct {
	Plan   *string
	Active *bool
}

type UpdateTenant struct {
	repo Repository
}

func NewUpdateTenant(repo Repository) *UpdateTenant {
	return &UpdateTenant{repo: repo}
}

func (uc *UpdateTenant) Execute(
	ctx context.Context,
	sess session.Session,
	tenantID string,
	in UpdateTenantInput,
) (*dto.TenantDTO, error) {

	if err := requireAdmin(sess); err != nil {
		return nil, err
	}

	var out dto.TenantDTO
	err := uc.repo.WithTenants(ctx, func(ctx context.Context) error {
		t, err := uc.apply(ctx, sess, tenantID, in)
		if err != nil {
			return err
		}
		out = dto.NewTenantDTO(t)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (uc *UpdateTenant) apply(
	ctx context.Context,
	sess session.Session,
	tenantID string,
	in UpdateTenantInput,
) (models.Tenant, error) {

	t, ok, err := uc.repo.FindTenant(ctx, tenantID)
	if err != nil {
		return models.Tenant{}, fmt.Errorf("update tenant: %w", err)
	}
	if !ok {
		return models.Tenant{}, httperr.ErrBusiness("tenant_not_found")
	}

	if in.Plan != nil {
		if !models.IsValidPlan(*in.Plan) {
			return models.Tenant{}, httperr.ErrBusiness("invalid_plan")
		}
		t.Plan = *in.Plan
	}

	if in.Active != nil {
		// o admin não pode se trancar para fora
		if !*in.Active && t.ID == sess.TenantID {
			return models.Tenant{}, httperr.ErrBusiness("cannot_disable_self")
		}
		t.Active = *in.Active
	}

	if err := uc.repo.SaveTenant(ctx, t); err != nil {
		return models.Tenant{}, fmt.Errorf("update tenant: %w", err)
	}

	return t, nil
}
