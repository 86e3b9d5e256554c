package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/models"
	"github.com/BruksfildServices01/barberpro/internal/session"
)

const MinDurationMin = 15

type CreateServiceInput struct {
	Name        string
	Price       decimal.Decimal
	DurationMin int
}

type CreateService struct {
	repo Repository
}

func NewCreateService(repo Repository) *CreateService {
	return &CreateService{repo: repo}
}

func (uc *CreateService) Execute(
	ctx context.Context,
	sess session.Session,
	in CreateServiceInput,
) (*models.Service, error) {

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, httperr.ErrBusiness("name_required")
	}
	if in.Price.IsNegative() {
		return nil, httperr.ErrBusiness("invalid_price")
	}
	if in.DurationMin < MinDurationMin {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	s := models.Service{
		ID:          uuid.NewString(),
		Name:        name,
		Price:       in.Price.Round(2),
		DurationMin: in.DurationMin,
	}

	err := uc.repo.WithTenant(ctx, sess.TenantID, func(ctx context.Context) error {
		list, err := uc.repo.Services(ctx, sess.TenantID)
		if err != nil {
			return err
		}
		return uc.repo.SaveServices(ctx, sess.TenantID, append(list, s))
	})
	if err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return &s, nil
}
