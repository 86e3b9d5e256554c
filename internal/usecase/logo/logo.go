package logo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/BruksfildServices01/barberpro/internal/blob"
	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/models"
	"github.com/BruksfildServices01/barberpro/internal/session"
)

const (
	MaxUploadBytes = 5 << 20
	MaxSide        = 512
	// limite de pixels declarados, conferido antes de decodificar
	MaxPixels   = 40_000_000
	Quality     = 80
	ContentType = "image/webp"
)

type Repository interface {
	WithTenants(ctx context.Context, fn func(ctx context.Context) error) error
	FindTenant(ctx context.Context, id string) (models.Tenant, bool, error)
	SaveTenant(ctx context.Context, t models.Tenant) error
}

// ======================================================
// UPLOAD
// ======================================================

type UploadLogo struct {
	repo  Repository
	blobs blob.Store
}

func NewUploadLogo(repo Repository, blobs blob.Store) *UploadLogo {
	return &UploadLogo{repo: repo, blobs: blobs}
}

// Execute aceita PNG, JPEG ou WebP, reduz para caber em 512x512 e grava
// sempre em WebP.
func (uc *UploadLogo) Execute(ctx context.Context, sess session.Session, data []byte) (string, error) {
	if len(data) == 0 {
		return "", httperr.ErrBusiness("invalid_image")
	}
	if len(data) > MaxUploadBytes {
		return "", httperr.ErrBusiness("image_too_large")
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || cfg.Width <= 0 || cfg.Height <= 0 {
		return "", httperr.ErrBusiness("invalid_image")
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return "", httperr.ErrBusiness("image_too_large")
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", httperr.ErrBusiness("invalid_image")
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, fit(img, MaxSide), &webp.Options{Quality: Quality}); err != nil {
		return "", fmt.Errorf("upload logo: encode: %w", err)
	}

	key := "logos/" + sess.TenantID + ".webp"
	err = uc.repo.WithTenants(ctx, func(ctx context.Context) error {
		t, ok, err := uc.repo.FindTenant(ctx, sess.TenantID)
		if err != nil {
			return fmt.Errorf("upload logo: %w", err)
		}
		if !ok {
			return httperr.ErrBusiness("tenant_not_found")
		}

		if err := uc.blobs.Put(ctx, key, ContentType, buf.Bytes()); err != nil {
			return fmt.Errorf("upload logo: %w", err)
		}

		if t.LogoKey == key {
			return nil
		}
		t.LogoKey = key
		if err := uc.repo.SaveTenant(ctx, t); err != nil {
			return fmt.Errorf("upload logo: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return key, nil
}

func fit(src image.Image, max int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= max && h <= max {
		return src
	}

	if w >= h {
		h = h * max / w
		w = max
	} else {
		w = w * max / h
		h = max
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// ======================================================
// GET
// ======================================================

type GetLogo struct {
	repo  Repository
	blobs blob.Store
}

func NewGetLogo(repo Repository, blobs blob.Store) *GetLogo {
	return &GetLogo{repo: repo, blobs: blobs}
}

func (uc *GetLogo) Execute(ctx context.Context, sess session.Session) (blob.Object, error) {
	t, ok, err := uc.repo.FindTenant(ctx, sess.TenantID)
	if err != nil {
		return blob.Object{}, fmt.Errorf("get logo: %w", err)
	}
	if !ok || t.LogoKey == "" {
		return blob.Object{}, httperr.ErrBusiness("logo_not_found")
	}

	obj, err := uc.blobs.Get(ctx, t.LogoKey)
	if errors.Is(err, blob.ErrNotFound) {
		return blob.Object{}, httperr.ErrBusiness("logo_not_found")
	}
	if err != nil {
		return blob.Object{}, err
	}

	obj.ContentType = ContentType
	return obj, nil
}
