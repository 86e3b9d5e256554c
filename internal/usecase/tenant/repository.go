package tenant

import (
	"context"

	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/models"
	"github.com/BruksfildServices01/barberpro/internal/session"
)

type Repository interface {
	WithTenants(ctx context.Context, fn func(ctx context.Context) error) error
	Tenants(ctx context.Context) ([]models.Tenant, error)
	SaveTenant(ctx context.Context, t models.Tenant) error
	FindTenant(ctx context.Context, id string) (models.Tenant, bool, error)
	FindTenantByEmail(ctx context.Context, email string) (models.Tenant, bool, error)
	Ledger(ctx context.Context, tenantID string) ([]models.LedgerEntry, error)
}

func requireAdmin(sess session.Session) error {
	if !sess.IsAdmin {
		return httperr.ErrBusiness("forbidden")
	}
	return nil
}
