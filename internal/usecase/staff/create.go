package staff

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/models"
	"github.com/BruksfildServices01/barberpro/internal/session"
	"github.com/BruksfildServices01/barberpro/internal/timezone"
)

type CreateStaffInput struct {
	Name       string
	Phone      string
	Specialty  string
	Commission int
	// nil = ativo
	Active *bool
}

type CreateStaff struct {
	repo  Repository
	clock timezone.Clock
}

func NewCreateStaff(repo Repository, clock timezone.Clock) *CreateStaff {
	return &CreateStaff{repo: repo, clock: clock}
}

func (uc *CreateStaff) Execute(
	ctx context.Context,
	sess session.Session,
	in CreateStaffInput,
) (*models.Staff, error) {

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, httperr.ErrBusiness("name_required")
	}
	if in.Commission < 0 || in.Commission > 100 {
		return nil, httperr.ErrBusiness("invalid_commission")
	}

	active := true
	if in.Active != nil {
		active = *in.Active
	}

	s := models.Staff{
		ID:         uuid.NewString(),
		Name:       name,
		Phone:      strings.TrimSpace(in.Phone),
		Specialty:  strings.TrimSpace(in.Specialty),
		Commission: in.Commission,
		Active:     active,
		CreatedAt:  timezone.Today(uc.clock),
	}

	err := uc.repo.WithTenant(ctx, sess.TenantID, func(ctx context.Context) error {
		list, err := uc.repo.Staff(ctx, sess.TenantID)
		if err != nil {
			return err
		}
		return uc.repo.SaveStaff(ctx, sess.TenantID, append(list, s))
	})
	if err != nil {
		return nil, fmt.Errorf("create staff: %w", err)
	}
	return &s, nil
}
