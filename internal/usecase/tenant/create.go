package tenant

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barberpro/internal/dto"
	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/models"
	"github.com/BruksfildServices01/barberpro/internal/password"
	"github.com/BruksfildServices01/barberpro/internal/session"
	"github.com/BruksfildServices01/barberpro/internal/timezone"
)

const MinPasswordLen = 6

type CreateTenantInput struct {
	Name     string
	Email    string
	Password string
	Plan     string
}

// DomainChecker confirma que o domínio do e-mail recebe mensagens.
type DomainChecker func(ctx context.Context, email string) bool

type CreateTenant struct {
	repo        Repository
	clock       timezone.Clock
	checkDomain DomainChecker
}

// checkDomain pode ser nil (sem checagem de DNS).
func NewCreateTenant(repo Repository, clock timezone.Clock, checkDomain DomainChecker) *CreateTenant {
	return &CreateTenant{repo: repo, clock: clock, checkDomain: checkDomain}
}

func (uc *CreateTenant) Execute(
	ctx context.Context,
	sess session.Session,
	in CreateTenantInput,
) (*dto.TenantDTO, error) {

	if err := requireAdmin(sess); err != nil {
		return nil, err
	}

	// e-mail único: checagem e gravação sob a mesma trava
	var t models.Tenant
	err := uc.repo.WithTenants(ctx, func(ctx context.Context) error {
		var err error
		t, err = uc.build(ctx, in)
		if err != nil {
			return err
		}
		if err := uc.repo.SaveTenant(ctx, t); err != nil {
			return fmt.Errorf("create tenant: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := dto.NewTenantDTO(t)
	return &out, nil
}

func (uc *CreateTenant) build(ctx context.Context, in CreateTenantInput) (models.Tenant, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Tenant{}, httperr.ErrBusiness("name_required")
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if _, err := mail.ParseAddress(email); err != nil || email == "" {
		return models.Tenant{}, httperr.ErrBusiness("invalid_email")
	}
	if len(in.Password) < MinPasswordLen {
		return models.Tenant{}, httperr.ErrBusiness("weak_password")
	}

	plan := in.Plan
	if plan == "" {
		plan = models.PlanBasic
	}
	if !models.IsValidPlan(plan) {
		return models.Tenant{}, httperr.ErrBusiness("invalid_plan")
	}

	if _, exists, err := uc.repo.FindTenantByEmail(ctx, email); err != nil {
		return models.Tenant{}, fmt.Errorf("create tenant: %w", err)
	} else if exists {
		return models.Tenant{}, httperr.ErrBusiness("email_already_exists")
	}

	if uc.checkDomain != nil && !uc.checkDomain(ctx, email) {
		return models.Tenant{}, httperr.ErrBusiness("invalid_email_domain")
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return models.Tenant{}, fmt.Errorf("create tenant: %w", err)
	}

	return models.Tenant{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Plan:         plan,
		Active:       true,
		CreatedAt:    timezone.Today(uc.clock),
	}, nil
}
