package appointment

import (
	"context"

	"github.com/BruksfildServices01/barberpro/internal/models"
)

type Repository interface {
	// Serializa leitura-alteração-gravação da barbearia.
	WithTenant(ctx context.Context, tenantID string, fn func(ctx context.Context) error) error

	// -------- Lookups --------
	Clients(ctx context.Context, tenantID string) ([]models.Client, error)
	Staff(ctx context.Context, tenantID string) ([]models.Staff, error)
	Services(ctx context.Context, tenantID string) ([]models.Service, error)

	// -------- Appointment --------
	Appointments(ctx context.Context, tenantID string) ([]models.Appointment, error)
	SaveAppointments(ctx context.Context, tenantID string, list []models.Appointment) error

	// -------- Ledger (receita na conclusão) --------
	Ledger(ctx context.Context, tenantID string) ([]models.LedgerEntry, error)
	SaveLedger(ctx context.Context, tenantID string, list []models.LedgerEntry) error
}
