package ledger

import (
	"context"
	"fmt"

	domain "github.com/BruksfildServices01/barberpro/internal/domain/ledger"
	"github.com/BruksfildServices01/barberpro/internal/models"
	"github.com/BruksfildServices01/barberpro/internal/session"
)

type ListEntries struct {
	repo Repository
}

func NewListEntries(repo Repository) *ListEntries {
	return &ListEntries{repo: repo}
}

// Execute devolve os lançamentos do mais recente para o mais antigo.
func (uc *ListEntries) Execute(ctx context.Context, sess session.Session) ([]models.LedgerEntry, error) {
	entries, err := uc.repo.Ledger(ctx, sess.TenantID)
	if err != nil {
		return nil, fmt.Errorf("list ledger: %w", err)
	}
	return domain.NewestFirst(entries), nil
}
