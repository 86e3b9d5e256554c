package client

import (
	"context"

	"github.com/BruksfildServices01/barberpro/internal/models"
)

type Repository interface {
	// WithTenant serializa leitura e gravação da barbearia.
	WithTenant(ctx context.Context, tenantID string, fn func(ctx context.Context) error) error

	Clients(ctx context.Context, tenantID string) ([]models.Client, error)
	SaveClients(ctx context.Context, tenantID string, list []models.Client) error
}
