// Package blob guarda arquivos (logos, backups) fora do armazenamento
// principal: em um diretório local ou num bucket S3 compatível.
package blob

import (
	"context"
	"errors"
	"fmt"

	"github.com/BruksfildServices01/barberpro/internal/config"
)

var ErrNotFound = errors.New("blob: not found")

type Store interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
	Get(ctx context.Context, key string) (Object, error)
}

type Object struct {
	Data        []byte
	ContentType string
}

func Open(cfg config.BlobConfig) (Store, error) {
	switch cfg.Driver {
	case "", "local":
		return NewLocalStore(cfg.LocalDir), nil
	case "s3":
		return NewS3Store(cfg)
	default:
		return nil, fmt.Errorf("blob: unsupported driver %q", cfg.Driver)
	}
}
