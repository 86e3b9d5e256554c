package staff

import (
	"context"

	"github.com/BruksfildServices01/barberpro/internal/models"
)

type Repository interface {
	// WithTenant serializa leitura e gravação da barbearia.
	WithTenant(ctx context.Context, tenantID string, fn func(ctx context.Context) error) error

	Staff(ctx context.Context, tenantID string) ([]models.Staff, error)
	SaveStaff(ctx context.Context, tenantID string, list []models.Staff) error
}
