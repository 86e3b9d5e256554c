package auth

import (
	"context"

	"github.com/BruksfildServices01/barberpro/internal/session"
)

type Logout struct {
	sessions session.Store
}

func NewLogout(sessions session.Store) *Logout {
	return &Logout{sessions: sessions}
}

func (uc *Logout) Execute(ctx context.Context, sess session.Session) error {
	return uc.sessions.Delete(ctx, sess.ID)
}
