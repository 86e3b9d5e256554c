package appointment

import (
	"strings"

	"github.com/BruksfildServices01/barberpro/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusScheduled, StatusCompleted, StatusCanceled:
		return st, nil
	default:
		return "", httperr.ErrBusiness("invalid_status")
	}
}

// InitialStatus de todo agendamento novo.
func InitialStatus() Status {
	return StatusScheduled
}

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

// ===============================
// Transition Policy
// ===============================

type Policy string

const (
	// Só scheduled -> completed|canceled.
	PolicyStrict Policy = "strict"
	// Qualquer status a partir de qualquer status. Cada nova conclusão gera
	// outra receita.
	PolicyPermissive Policy = "permissive"
)

func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PolicyStrict, nil
	case PolicyStrict, PolicyPermissive:
		return p, nil
	default:
		return "", httperr.ErrBusiness("invalid_policy")
	}
}

// ===============================
// Validations
// ===============================

func CanTransition(policy Policy, from, to Status) error {
	if policy == PolicyPermissive {
		return nil
	}
	if from != StatusScheduled || to == StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
