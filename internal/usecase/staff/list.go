package staff

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/barberpro/internal/models"
	"github.com/BruksfildServices01/barberpro/internal/session"
)

type ListStaff struct {
	repo Repository
}

func NewListStaff(repo Repository) *ListStaff {
	return &ListStaff{repo: repo}
}

func (uc *ListStaff) Execute(
	ctx context.Context,
	sess session.Session,
	onlyActive bool,
) ([]models.Staff, error) {

	list, err := uc.repo.Staff(ctx, sess.TenantID)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	if !onlyActive {
		return list, nil
	}

	out := make([]models.Staff, 0, len(list))
	for _, s := range list {
		if s.Active {
			out = append(out, s)
		}
	}
	return out, nil
}
