package appointment

import (
	"fmt"

	"github.com/BruksfildServices01/barberpro/internal/domain/ledger"
	"github.com/BruksfildServices01/barberpro/internal/models"
)

const RevenueCategory = "serviço"

// ===============================
// Domain Actions
// ===============================

// Transition muda o status e informa se o agendamento acabou de ser
// concluído (e portanto gera receita).
func Transition(ap *models.Appointment, to Status, policy Policy) (bool, error) {
	from := Status(ap.Status)
	if err := CanTransition(policy, from, to); err != nil {
		return false, err
	}

	ap.Status = string(to)
	return to == StatusCompleted, nil
}

// RevenueEntry é o lançamento criado na conclusão. Nunca é estornado.
func RevenueEntry(ap models.Appointment, id, date string) models.LedgerEntry {
	return models.LedgerEntry{
		ID:          id,
		Date:        date,
		Description: fmt.Sprintf("Serviço: %s - %s", ap.ServiceName, ap.ClientName),
		Amount:      ap.Price,
		Type:        ledger.TypeRevenue,
		Category:    RevenueCategory,
	}
}
