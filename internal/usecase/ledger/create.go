package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/barberpro/internal/domain/ledger"
	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/metrics"
	"github.com/BruksfildServices01/barberpro/internal/models"
	"github.com/BruksfildServices01/barberpro/internal/session"
	"github.com/BruksfildServices01/barberpro/internal/timezone"
)

const DefaultCategory = "outros"

type CreateEntryInput struct {
	Date        string
	Description string
	Amount      decimal.Decimal
	Type        string
	Category    string
}

type CreateEntry struct {
	repo  Repository
	clock timezone.Clock
}

func NewCreateEntry(repo Repository, clock timezone.Clock) *CreateEntry {
	return &CreateEntry{repo: repo, clock: clock}
}

func (uc *CreateEntry) Execute(
	ctx context.Context,
	sess session.Session,
	in CreateEntryInput,
) (*models.LedgerEntry, error) {

	description := strings.TrimSpace(in.Description)
	if description == "" {
		return nil, httperr.ErrBusiness("description_required")
	}
	// centavos: valores que arredondam para zero não entram
	amount := in.Amount.Round(2)
	if !amount.IsPositive() {
		return nil, httperr.ErrBusiness("invalid_amount")
	}

	typ, err := domain.ParseType(in.Type)
	if err != nil {
		return nil, err
	}

	date := in.Date
	if date == "" {
		date = timezone.Today(uc.clock)
	}
	if !timezone.IsDate(date) {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = DefaultCategory
	}

	e := models.LedgerEntry{
		ID:          uuid.NewString(),
		Date:        date,
		Description: description,
		Amount:      amount,
		Type:        typ,
		Category:    category,
	}

	err = uc.repo.WithTenant(ctx, sess.TenantID, func(ctx context.Context) error {
		entries, err := uc.repo.Ledger(ctx, sess.TenantID)
		if err != nil {
			return err
		}
		return uc.repo.SaveLedger(ctx, sess.TenantID, append(entries, e))
	})
	if err != nil {
		return nil, fmt.Errorf("create ledger entry: %w", err)
	}

	metrics.LedgerEntriesTotal.WithLabelValues(typ, "manual").Inc()
	return &e, nil
}
