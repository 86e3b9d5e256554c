package appointment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/barberpro/internal/domain/appointment"
	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/metrics"
	"github.com/BruksfildServices01/barberpro/internal/models"
	"github.com/BruksfildServices01/barberpro/internal/session"
	"github.com/BruksfildServices01/barberpro/internal/timezone"
)

type UpdateStatusResult struct {
	Appointment models.Appointment  `json:"appointment"`
	Revenue     *models.LedgerEntry `json:"revenue,omitempty"`
}

type UpdateAppointmentStatus struct {
	repo   domain.Repository
	clock  timezone.Clock
	policy domain.Policy
}

func NewUpdateAppointmentStatus(
	repo domain.Repository,
	clock timezone.Clock,
	policy domain.Policy,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		repo:   repo,
		clock:  clock,
		policy: policy,
	}
}

// Execute aplica a mudança de status. Ao concluir, grava primeiro a receita e
// depois o agendamento: se a segunda gravação falhar, a receita fica e o
// status continua o anterior.
func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	sess session.Session,
	appointmentID string,
	status string,
) (*UpdateStatusResult, error) {

	to, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	var result *UpdateStatusResult
	err = uc.repo.WithTenant(ctx, sess.TenantID, func(ctx context.Context) error {
		var err error
		result, err = uc.apply(ctx, sess.TenantID, appointmentID, to)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// apply roda com a barbearia travada: o status lido é o que vale na gravação.
func (uc *UpdateAppointmentStatus) apply(
	ctx context.Context,
	tenantID string,
	appointmentID string,
	to domain.Status,
) (*UpdateStatusResult, error) {

	appointments, err := uc.repo.Appointments(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	idx := -1
	for i := range appointments {
		if appointments[i].ID == appointmentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	ap := appointments[idx]
	completed, err := domain.Transition(&ap, to, uc.policy)
	if err != nil {
		return nil, err
	}

	result := &UpdateStatusResult{}

	if completed {
		ledger, err := uc.repo.Ledger(ctx, tenantID)
		if err != nil {
			return nil, fmt.Errorf("update status: %w", err)
		}

		entry := domain.RevenueEntry(ap, uuid.NewString(), timezone.Today(uc.clock))
		if err := uc.repo.SaveLedger(ctx, tenantID, append(ledger, entry)); err != nil {
			return nil, fmt.Errorf("update status: %w", err)
		}

		metrics.LedgerEntriesTotal.WithLabelValues(entry.Type, "appointment").Inc()
		result.Revenue = &entry
	}

	appointments[idx] = ap
	if err := uc.repo.SaveAppointments(ctx, tenantID, appointments); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	metrics.AppointmentTransitionsTotal.WithLabelValues(string(to)).Inc()
	result.Appointment = ap
	return result, nil
}
