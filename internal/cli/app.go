package cli

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/barberpro/internal/blob"
	"github.com/BruksfildServices01/barberpro/internal/config"
	"github.com/BruksfildServices01/barberpro/internal/infra/repository"
	"github.com/BruksfildServices01/barberpro/internal/session"
	"github.com/BruksfildServices01/barberpro/internal/store"
	"github.com/BruksfildServices01/barberpro/internal/timezone"
)

// App é o que os comandos precisam: a mesma base e o mesmo blob store da API.
type App struct {
	Config  *config.Config
	Backend store.Backend
	Repo    *repository.Sections
	Blobs   blob.Store
	Clock   timezone.Clock
}

func (a *App) Close() error {
	return a.Backend.Close()
}

// adminSession age como a conta admin semeada.
func (a *App) adminSession() session.Session {
	return session.Session{ID: "cli", TenantID: store.AdminTenantID, IsAdmin: true}
}

type Opener func(ctx context.Context) (*App, error)

// OpenFromEnv monta o App a partir das variáveis de ambiente.
func OpenFromEnv(ctx context.Context) (*App, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}

	clock := timezone.NewClock(cfg.Timezone)

	backend, err := store.Open(ctx, cfg.Store, timezone.Today(clock))
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	blobs, err := blob.Open(cfg.Blob)
	if err != nil {
		_ = backend.Close()
		return nil, fmt.Errorf("open blob store: %w", err)
	}

	return &App{
		Config:  cfg,
		Backend: backend,
		Repo:    repository.NewSections(backend),
		Blobs:   blobs,
		Clock:   clock,
	}, nil
}
