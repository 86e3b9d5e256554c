package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/BruksfildServices01/barberpro/internal/models"
	"github.com/BruksfildServices01/barberpro/internal/session"
)

type SearchClients struct {
	repo Repository
}

func NewSearchClients(repo Repository) *SearchClients {
	return &SearchClients{repo: repo}
}

// Execute filtra por trecho de nome, telefone ou e-mail, sem caixa.
// Consulta vazia devolve todos.
func (uc *SearchClients) Execute(
	ctx context.Context,
	sess session.Session,
	query string,
) ([]models.Client, error) {

	clients, err := uc.repo.Clients(ctx, sess.TenantID)
	if err != nil {
		return nil, fmt.Errorf("search clients: %w", err)
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return clients, nil
	}

	out := make([]models.Client, 0, len(clients))
	for _, c := range clients {
		if strings.Contains(strings.ToLower(c.Name), query) ||
			strings.Contains(strings.ToLower(c.Phone), query) ||
			strings.Contains(strings.ToLower(c.Email), query) {
			out = append(out, c)
		}
	}
	return out, nil
}
