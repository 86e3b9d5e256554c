package client

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

type CreateClientInput struct {
	Name      string
	Phone     string
	Email     string
	BirthDate string
	Note      string
}

type CreateClient struct {
	repo  Repository
	clock timezone.Clock
}

func NewCreateClient(repo Repository, clock timezone.Clock) *CreateClient {
	return &CreateClient{repo: repo, clock: clock}
}

func (uc *CreateClient) Execute(
	ctx context.Context,
	sess session.Session,
	in CreateClientInput,
) (*models.Client, error) {

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, httperr.ErrBusiness("name_required")
	}
	if in.BirthDate != "" && !timezone.IsDate(in.BirthDate) {
		return nil, httperr.ErrBusiness("invalid_birth_date")
	}

	c := models.Client{
		ID:        uuid.NewString(),
		Name:      name,
		Phone:     strings.TrimSpace(in.Phone),
		Email:     strings.TrimSpace(in.Email),
		BirthDate: in.BirthDate,
		Note:      strings.TrimSpace(in.Note),
		CreatedAt: timezone.Today(uc.clock),
	}

	err := uc.repo.WithTenant(ctx, sess.TenantID, func(ctx context.Context) error {
		clients, err := uc.repo.Clients(ctx, sess.TenantID)
		if err != nil {
			return err
		}
		return uc.repo.SaveClients(ctx, sess.TenantID, append(clients, c))
	})
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return &c, nil
}
