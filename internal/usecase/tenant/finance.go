package tenant

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barberpro/internal/domain/ledger"
	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/models"
	"github.com/BruksfildServices01/barberpro/internal/session"
	"github.com/BruksfildServices01/barberpro/internal/timezone"
)

type TenantSummary struct {
	TenantID string         `json:"tenant_id"`
	Name     string         `json:"name"`
	Summary  ledger.Summary `json:"summary"`
}

type GlobalSummary struct {
	Month   string          `json:"month"`
	Tenants []TenantSummary `json:"tenants"`
	Total   ledger.Summary  `json:"total"`
}

type GlobalFinance struct {
	repo  Repository
	clock timezone.Clock
}

func NewGlobalFinance(repo Repository, clock timezone.Clock) *GlobalFinance {
	return &GlobalFinance{repo: repo, clock: clock}
}

// Execute soma o mês de todas as barbearias que não são admin.
func (uc *GlobalFinance) Execute(
	ctx context.Context,
	sess session.Session,
	month string,
) (*GlobalSummary, error) {

	if err := requireAdmin(sess); err != nil {
		return nil, err
	}

	if month == "" {
		month = timezone.CurrentMonth(uc.clock)
	}
	if !timezone.IsMonth(month) {
		return nil, httperr.ErrBusiness("invalid_month")
	}

	tenants, err := uc.repo.Tenants(ctx)
	if err != nil {
		return nil, fmt.Errorf("global finance: %w", err)
	}

	out := &GlobalSummary{
		Month:   month,
		Tenants: []TenantSummary{},
		Total:   ledger.MonthlySummary(nil, month),
	}

	for _, t := range tenants {
		if t.IsAdmin() {
			continue
		}

		entries, err := uc.repo.Ledger(ctx, t.ID)
		if err != nil {
			return nil, fmt.Errorf("global finance: %w", err)
		}

		s := ledger.MonthlySummary(entries, month)
		out.Tenants = append(out.Tenants, TenantSummary{TenantID: t.ID, Name: t.Name, Summary: s})
		out.Total = out.Total.Add(s)
	}

	return out, nil
}

// ======================================================
// OVERVIEW (painel do admin)
// ======================================================

type Overview struct {
	TenantCount      int             `json:"tenant_count"`
	ActiveCount      int             `json:"active_count"`
	ByPlan           map[string]int  `json:"by_plan"`
	MonthlyRecurring decimal.Decimal `json:"monthly_recurring"`
}

type GetOverview struct {
	repo Repository
}

func NewGetOverview(repo Repository) *GetOverview {
	return &GetOverview{repo: repo}
}

// Execute conta as barbearias (sem o admin) e soma a mensalidade das ativas.
func (uc *GetOverview) Execute(ctx context.Context, sess session.Session) (*Overview, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}

	tenants, err := uc.repo.Tenants(ctx)
	if err != nil {
		return nil, fmt.Errorf("overview: %w", err)
	}

	out := &Overview{
		ByPlan:           map[string]int{},
		MonthlyRecurring: decimal.Zero,
	}

	for _, t := range tenants {
		if t.IsAdmin() {
			continue
		}
		out.TenantCount++
		out.ByPlan[t.Plan]++

		if t.Active {
			out.ActiveCount++
			if plan, ok := models.Plans[t.Plan]; ok {
				out.MonthlyRecurring = out.MonthlyRecurring.Add(plan.Price)
			}
		}
	}

	return out, nil
}
