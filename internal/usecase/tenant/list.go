package tenant

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/barberpro/internal/dto"
	"github.com/BruksfildServices01/barberpro/internal/session"
)

type ListTenants struct {
	repo Repository
}

func NewListTenants(repo Repository) *ListTenants {
	return &ListTenants{repo: repo}
}

func (uc *ListTenants) Execute(ctx context.Context, sess session.Session) ([]dto.TenantDTO, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}

	tenants, err := uc.repo.Tenants(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}

	out := make([]dto.TenantDTO, 0, len(tenants))
	for _, t := range tenants {
		out = append(out, dto.NewTenantDTO(t))
	}
	return out, nil
}
