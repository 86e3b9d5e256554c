package store

import (
	"github.com/BruksfildServices01/barberpro/internal/models"
	"github.com/BruksfildServices01/barberpro/internal/password"
)

const (
	AdminTenantID = "barberpro_admin"
	DemoTenantID  = "barbearia_demo"
)

// DefaultTenants são as duas contas criadas junto com uma base vazia.
func DefaultTenants(today string) []models.Tenant {
	return []models.Tenant{
		{
			ID:           AdminTenantID,
			Name:         "BarberPro Admin",
			Email:        "admin@barberpro.com",
			PasswordHash: password.MustHash("admin123"),
			Plan:         models.PlanAdmin,
			Active:       true,
			CreatedAt:    today,
		},
		{
			ID:           DemoTenantID,
			Name:         "Barbearia Demo",
			Email:        "demo@barbearia.com",
			PasswordHash: password.MustHash("demo123"),
			Plan:         models.PlanPro,
			Active:       true,
			CreatedAt:    today,
		},
	}
}
