package catalog

import (
	"context"

	"github.com/BruksfildServices01/barberpro/internal/models"
)

type Repository interface {
	// WithTenant serializa leitura e gravação da barbearia.
	WithTenant(ctx context.Context, tenantID string, fn func(ctx context.Context) error) error

	// Services semeia o catálogo padrão quando a barbearia não tem nenhum.
	Services(ctx context.Context, tenantID string) ([]models.Service, error)
	SaveServices(ctx context.Context, tenantID string, list []models.Service) error
}
