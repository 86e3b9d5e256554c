package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"time"

	"github.com/BruksfildServices01/barberpro/internal/blob"
	"github.com/BruksfildServices01/barberpro/internal/models"
)

type Snapshotter interface {
	Snapshot(ctx context.Context) (*models.Document, error)
}

// Uploader grava uma cópia completa do documento no blob storage.
type Uploader struct {
	source Snapshotter
	blobs  blob.Store
	prefix string
	now    func() time.Time
}

func NewUploader(source Snapshotter, blobs blob.Store, prefix string) *Uploader {
	return &Uploader{
		source: source,
		blobs:  blobs,
		prefix: prefix,
		now:    time.Now,
	}
}

func (u *Uploader) Upload(ctx context.Context) (string, error) {
	doc, err := u.source.Snapshot(ctx)
	if err != nil {
		return "", fmt.Errorf("backup: snapshot: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("backup: encode: %w", err)
	}

	key := path.Join(u.prefix, u.now().UTC().Format("20060102T150405.000000000Z")+".json")
	if err := u.blobs.Put(ctx, key, "application/json", data); err != nil {
		return "", err
	}
	return key, nil
}
