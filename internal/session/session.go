// Package session guarda o contexto autenticado de cada login.
//
// Uma Session é criada no login, passada explicitamente para os casos de uso
// e removida no logout ou quando expira.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("session: not found")

type Session struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func New(tenantID string, isAdmin bool, now time.Time, ttl time.Duration) Session {
	return Session{
		ID:        uuid.NewString(),
		TenantID:  tenantID,
		IsAdmin:   isAdmin,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

type Store interface {
	Save(ctx context.Context, s Session) error
	Get(ctx context.Context, id string) (Session, error)
	Delete(ctx context.Context, id string) error
}
