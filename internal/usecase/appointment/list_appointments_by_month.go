package appointment

import (
	"context"
	"fmt"
	"sort"
	"strings"

	domain "github.com/BruksfildServices01/barberpro/internal/domain/appointment"
	"github.com/BruksfildServices01/barberpro/internal/dto"
	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/session"
)

type ListAppointmentsByMonth struct {
	repo domain.Repository
}

func NewListAppointmentsByMonth(
	repo domain.Repository,
) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{
		repo: repo,
	}
}

func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	sess session.Session,
	year int,
	month int,
) ([]dto.AppointmentListDTO, error) {

	if year < 1 || year > 9999 || month < 1 || month > 12 {
		return nil, httperr.ErrBusiness("invalid_month")
	}
	prefix := fmt.Sprintf("%04d-%02d-", year, month)

	appointments, err := uc.repo.Appointments(ctx, sess.TenantID)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	out := make([]dto.AppointmentListDTO, 0)
	for _, ap := range appointments {
		if strings.HasPrefix(ap.Date, prefix) {
			out = append(out, dto.NewAppointmentListDTO(ap))
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}
