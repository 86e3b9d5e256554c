package appointment

import (
	"context"
	"fmt"
	"sort"

	domain "github.com/BruksfildServices01/barberpro/internal/domain/appointment"
	"github.com/BruksfildServices01/barberpro/internal/dto"
	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/session"
	"github.com/BruksfildServices01/barberpro/internal/timezone"
)

type ListAppointmentsByDate struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewListAppointmentsByDate(
	repo domain.Repository,
	clock timezone.Clock,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo:  repo,
		clock: clock,
	}
}

// Execute lista os agendamentos do dia (hoje quando date vem vazio),
// ordenados por horário.
func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	sess session.Session,
	date string,
) ([]dto.AppointmentListDTO, error) {

	if date == "" {
		date = timezone.Today(uc.clock)
	}
	if !timezone.IsDate(date) {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	appointments, err := uc.repo.Appointments(ctx, sess.TenantID)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	out := make([]dto.AppointmentListDTO, 0)
	for _, ap := range appointments {
		if ap.Date == date {
			out = append(out, dto.NewAppointmentListDTO(ap))
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time < out[j].Time
	})
	return out, nil
}
