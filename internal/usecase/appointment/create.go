package appointment

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/barberpro/internal/domain/appointment"
	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/models"
	"github.com/BruksfildServices01/barberpro/internal/session"
	"github.com/BruksfildServices01/barberpro/internal/timezone"
)

type CreateAppointmentInput struct {
	ClientName  string
	StaffName   string
	ServiceName string
	Date        string
	Time        string
	Note        string
}

type CreateAppointment struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewCreateAppointment(
	repo domain.Repository,
	clock timezone.Clock,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		clock: clock,
	}
}

// Execute agenda um atendimento. Cliente, barbeiro e serviço são escolhidos
// pelo nome entre os já cadastrados; o preço do serviço é copiado para o
// agendamento.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	sess session.Session,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	clientName := strings.TrimSpace(in.ClientName)
	staffName := strings.TrimSpace(in.StaffName)
	serviceName := strings.TrimSpace(in.ServiceName)

	if clientName == "" || staffName == "" || serviceName == "" {
		return nil, httperr.ErrBusiness("missing_selection")
	}

	date := in.Date
	if date == "" {
		date = timezone.Today(uc.clock)
	}
	if !timezone.IsDate(date) {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if !timezone.IsClock(in.Time) {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	var ap models.Appointment
	err := uc.repo.WithTenant(ctx, sess.TenantID, func(ctx context.Context) error {
		var err error
		ap, err = uc.schedule(ctx, sess.TenantID, clientName, staffName, serviceName)
		if err != nil {
			return err
		}

		ap.Date = date
		ap.Time = in.Time
		ap.Note = strings.TrimSpace(in.Note)

		appointments, err := uc.repo.Appointments(ctx, sess.TenantID)
		if err != nil {
			return fmt.Errorf("create appointment: %w", err)
		}
		if err := uc.repo.SaveAppointments(ctx, sess.TenantID, append(appointments, ap)); err != nil {
			return fmt.Errorf("create appointment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ap, nil
}

// schedule confere cliente, barbeiro e serviço e monta o agendamento com o
// preço atual do serviço.
func (uc *CreateAppointment) schedule(
	ctx context.Context,
	tenantID, clientName, staffName, serviceName string,
) (models.Appointment, error) {

	// -------- Client --------
	clients, err := uc.repo.Clients(ctx, tenantID)
	if err != nil {
		return models.Appointment{}, fmt.Errorf("create appointment: %w", err)
	}
	if !hasClient(clients, clientName) {
		return models.Appointment{}, httperr.ErrBusiness("client_not_found")
	}

	// -------- Staff --------
	staff, err := uc.repo.Staff(ctx, tenantID)
	if err != nil {
		return models.Appointment{}, fmt.Errorf("create appointment: %w", err)
	}
	member, ok := findStaff(staff, staffName)
	if !ok {
		return models.Appointment{}, httperr.ErrBusiness("staff_not_found")
	}
	if !member.Active {
		return models.Appointment{}, httperr.ErrBusiness("staff_inactive")
	}

	// -------- Service --------
	services, err := uc.repo.Services(ctx, tenantID)
	if err != nil {
		return models.Appointment{}, fmt.Errorf("create appointment: %w", err)
	}
	svc, ok := findService(services, serviceName)
	if !ok {
		return models.Appointment{}, httperr.ErrBusiness("service_not_found")
	}

	return models.Appointment{
		ID:          uuid.NewString(),
		ClientName:  clientName,
		StaffName:   member.Name,
		ServiceName: svc.Name,
		Price:       svc.Price,
		Status:      string(domain.InitialStatus()),
		CreatedAt:   timezone.Today(uc.clock),
	}, nil
}

func hasClient(list []models.Client, name string) bool {
	for _, c := range list {
		if c.Name == name {
			return true
		}
	}
	return false
}

func findStaff(list []models.Staff, name string) (models.Staff, bool) {
	for _, s := range list {
		if s.Name == name {
			return s, true
		}
	}
	return models.Staff{}, false
}

func findService(list []models.Service, name string) (models.Service, bool) {
	for _, s := range list {
		if s.Name == name {
			return s, true
		}
	}
	return models.Service{}, false
}
