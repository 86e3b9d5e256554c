package store

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/barberpro/internal/config"
	"github.com/BruksfildServices01/barberpro/internal/db"
)

// Open escolhe o backend pelo driver configurado.
func Open(ctx context.Context, cfg config.StoreConfig, today string) (Backend, error) {
	switch cfg.Driver {
	case "", "file":
		return OpenFile(cfg.FilePath, today)
	case "postgres", "sqlite":
		gdb, err := db.Open(cfg)
		if err != nil {
			return nil, err
		}
		return NewGormBackend(ctx, gdb, today)
	default:
		return nil, fmt.Errorf("store: unsupported driver %q", cfg.Driver)
	}
}
