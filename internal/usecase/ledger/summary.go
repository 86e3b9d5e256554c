package ledger

import (
	"context"
	"fmt"

	domain "github.com/BruksfildServices01/barberpro/internal/domain/ledger"
	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/session"
	"github.com/BruksfildServices01/barberpro/internal/timezone"
)

type MonthlySummary struct {
	repo  Repository
	clock timezone.Clock
}

func NewMonthlySummary(repo Repository, clock timezone.Clock) *MonthlySummary {
	return &MonthlySummary{repo: repo, clock: clock}
}

// Execute resume o mês informado (YYYY-MM) ou o mês corrente.
func (uc *MonthlySummary) Execute(
	ctx context.Context,
	sess session.Session,
	month string,
) (domain.Summary, error) {

	if month == "" {
		month = timezone.CurrentMonth(uc.clock)
	}
	if !timezone.IsMonth(month) {
		return domain.Summary{}, httperr.ErrBusiness("invalid_month")
	}

	entries, err := uc.repo.Ledger(ctx, sess.TenantID)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("ledger summary: %w", err)
	}
	return domain.MonthlySummary(entries, month), nil
}
