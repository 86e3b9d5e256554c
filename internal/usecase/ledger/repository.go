package ledger

import (
	"context"

	"github.com/BruksfildServices01/barberpro/internal/models"
)

type Repository interface {
	// WithTenant serializa leitura e gravação da barbearia.
	WithTenant(ctx context.Context, tenantID string, fn func(ctx context.Context) error) error

	Ledger(ctx context.Context, tenantID string) ([]models.LedgerEntry, error)
	SaveLedger(ctx context.Context, tenantID string, list []models.LedgerEntry) error
}
