package catalog

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/barberpro/internal/models"
	"github.com/BruksfildServices01/barberpro/internal/session"
)

type ListServices struct {
	repo Repository
}

func NewListServices(repo Repository) *ListServices {
	return &ListServices{repo: repo}
}

func (uc *ListServices) Execute(ctx context.Context, sess session.Session) ([]models.Service, error) {
	list, err := uc.repo.Services(ctx, sess.TenantID)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return list, nil
}
