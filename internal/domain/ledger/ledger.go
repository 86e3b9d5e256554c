package ledger

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/models"
)

const (
	TypeRevenue = "revenue"
	TypeExpense = "expense"
)

func ParseType(s string) (string, error) {
	switch t := strings.ToLower(strings.TrimSpace(s)); t {
	case TypeRevenue, TypeExpense:
		return t, nil
	default:
		return "", httperr.ErrBusiness("invalid_type")
	}
}

type Summary struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
	Expense decimal.Decimal `json:"expense"`
	Profit  decimal.Decimal `json:"profit"`
}

// MonthlySummary soma os lançamentos cuja data começa com month (YYYY-MM).
func MonthlySummary(entries []models.LedgerEntry, month string) Summary {
	s := Summary{
		Month:   month,
		Revenue: decimal.Zero,
		Expense: decimal.Zero,
	}

	for _, e := range entries {
		if !strings.HasPrefix(e.Date, month) {
			continue
		}
		switch e.Type {
		case TypeRevenue:
			s.Revenue = s.Revenue.Add(e.Amount)
		case TypeExpense:
			s.Expense = s.Expense.Add(e.Amount)
		}
	}

	s.Profit = s.Revenue.Sub(s.Expense)
	return s
}

// Add acumula resumos de várias barbearias (visão global do admin).
func (s Summary) Add(other Summary) Summary {
	s.Revenue = s.Revenue.Add(other.Revenue)
	s.Expense = s.Expense.Add(other.Expense)
	s.Profit = s.Revenue.Sub(s.Expense)
	return s
}

// NewestFirst ordena por data decrescente, mantendo a ordem de inserção
// entre lançamentos do mesmo dia.
func NewestFirst(entries []models.LedgerEntry) []models.LedgerEntry {
	out := make([]models.LedgerEntry, len(entries))
	copy(out, entries)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}
