package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/metrics"
	"github.com/BruksfildServices01/barberpro/internal/models"
	"github.com/BruksfildServices01/barberpro/internal/password"
	"github.com/BruksfildServices01/barberpro/internal/session"
	"github.com/BruksfildServices01/barberpro/internal/timezone"
)

type TenantFinder interface {
	Tenants(ctx context.Context) ([]models.Tenant, error)
}

type Authenticate struct {
	repo     TenantFinder
	sessions session.Store
	clock    timezone.Clock
	ttl      time.Duration
}

func NewAuthenticate(
	repo TenantFinder,
	sessions session.Store,
	clock timezone.Clock,
	ttl time.Duration,
) *Authenticate {
	return &Authenticate{
		repo:     repo,
		sessions: sessions,
		clock:    clock,
		ttl:      ttl,
	}
}

// Execute percorre as barbearias procurando e-mail e senha. Qualquer falha
// vira invalid_credentials; account_disabled só aparece com as credenciais
// corretas.
func (uc *Authenticate) Execute(
	ctx context.Context,
	email string,
	plain string,
) (session.Session, models.Tenant, error) {

	tenants, err := uc.repo.Tenants(ctx)
	if err != nil {
		return session.Session{}, models.Tenant{}, fmt.Errorf("authenticate: %w", err)
	}

	email = normalizeEmail(email)
	for _, t := range tenants {
		if normalizeEmail(t.Email) != email || !password.Verify(t.PasswordHash, plain) {
			continue
		}

		if !t.Active {
			metrics.LoginsTotal.WithLabelValues("account_disabled").Inc()
			return session.Session{}, models.Tenant{}, httperr.ErrBusiness("account_disabled")
		}

		sess := session.New(t.ID, t.IsAdmin(), uc.clock.Now(), uc.ttl)
		if err := uc.sessions.Save(ctx, sess); err != nil {
			return session.Session{}, models.Tenant{}, fmt.Errorf("authenticate: %w", err)
		}

		metrics.LoginsTotal.WithLabelValues("ok").Inc()
		return sess, t, nil
	}

	metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
	return session.Session{}, models.Tenant{}, httperr.ErrBusiness("invalid_credentials")
}
