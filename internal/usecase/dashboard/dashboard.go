package dashboard

import (
	"context"
	"fmt"
	"sort"

	"github.com/BruksfildServices01/barberpro/internal/domain/ledger"
	"github.com/BruksfildServices01/barberpro/internal/dto"
	"github.com/BruksfildServices01/barberpro/internal/models"
	"github.com/BruksfildServices01/barberpro/internal/session"
	"github.com/BruksfildServices01/barberpro/internal/timezone"
)

type Repository interface {
	Appointments(ctx context.Context, tenantID string) ([]models.Appointment, error)
	Clients(ctx context.Context, tenantID string) ([]models.Client, error)
	Staff(ctx context.Context, tenantID string) ([]models.Staff, error)
	Ledger(ctx context.Context, tenantID string) ([]models.LedgerEntry, error)
}

type GetDashboard struct {
	repo  Repository
	clock timezone.Clock
}

func NewGetDashboard(repo Repository, clock timezone.Clock) *GetDashboard {
	return &GetDashboard{repo: repo, clock: clock}
}

func (uc *GetDashboard) Execute(ctx context.Context, sess session.Session) (*dto.DashboardDTO, error) {
	today := timezone.Today(uc.clock)

	appointments, err := uc.repo.Appointments(ctx, sess.TenantID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	clients, err := uc.repo.Clients(ctx, sess.TenantID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	staff, err := uc.repo.Staff(ctx, sess.TenantID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	entries, err := uc.repo.Ledger(ctx, sess.TenantID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	out := &dto.DashboardDTO{
		Date:              today,
		TodayAppointments: []dto.AppointmentListDTO{},
		ClientCount:       len(clients),
		Month:             ledger.MonthlySummary(entries, timezone.CurrentMonth(uc.clock)),
	}

	for _, ap := range appointments {
		if ap.Date == today {
			out.TodayAppointments = append(out.TodayAppointments, dto.NewAppointmentListDTO(ap))
		}
	}
	sort.SliceStable(out.TodayAppointments, func(i, j int) bool {
		return out.TodayAppointments[i].Time < out.TodayAppointments[j].Time
	})
	out.TodayCount = len(out.TodayAppointments)

	for _, s := range staff {
		if s.Active {
			out.ActiveStaffCount++
		}
	}

	return out, nil
}
