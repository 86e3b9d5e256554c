package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barberpro/internal/models"
)

// GormBackend grava uma linha por barbearia e uma por (barbearia, seção),
// então escritas de barbearias diferentes nunca se sobrescrevem.
type GormBackend struct {
	db *gorm.DB
}

var _ Backend = (*GormBackend)(nil)

// NewGormBackend espera as tabelas já migradas (db.Open) e cria as contas
// semente quando a tabela de barbearias está vazia.
func NewGormBackend(ctx context.Context, db *gorm.DB, today string) (*GormBackend, error) {
	b := &GormBackend{db: db}

	var count int64
	if err := db.WithContext(ctx).Model(&models.Tenant{}).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("store: count tenants: %w", err)
	}
	if count == 0 {
		for _, t := range DefaultTenants(today) {
			if err := b.SaveTenant(ctx, t); err != nil {
				return nil, err
			}
		}
	}

	return b, nil
}

func (b *GormBackend) Tenants(ctx context.Context) ([]models.Tenant, error) {
	var tenants []models.Tenant
	if err := b.db.WithContext(ctx).
		Order("id ASC").
		Find(&tenants).Error; err != nil {
		return nil, fmt.Errorf("store: list tenants: %w", err)
	}
	return tenants, nil
}

func (b *GormBackend) SaveTenant(ctx context.Context, t models.Tenant) error {
	if err := b.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&t).Error; err != nil {
		return fmt.Errorf("store: save tenant %s: %w", t.ID, err)
	}
	return nil
}

func (b *GormBackend) ReadSection(ctx context.Context, section models.Section, tenantID string) (json.RawMessage, error) {
	if !section.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSection, section)
	}

	var rec models.SectionRecord
	err := b.db.WithContext(ctx).
		Where("tenant_id = ? AND section = ?", tenantID, string(section)).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: read %s/%s: %w", section, tenantID, err)
	}

	return json.RawMessage(rec.Payload), nil
}

func (b *GormBackend) WriteSection(ctx context.Context, section models.Section, tenantID string, list json.RawMessage) error {
	if !section.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownSection, section)
	}

	rec := models.SectionRecord{
		TenantID: tenantID,
		Section:  string(section),
		Payload:  string(list),
	}

	if err := b.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tenant_id"}, {Name: "section"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&rec).Error; err != nil {
		return fmt.Errorf("store: write %s/%s: %w", section, tenantID, err)
	}
	return nil
}

func (b *GormBackend) Snapshot(ctx context.Context) (*models.Document, error) {
	doc := models.NewDocument()

	tenants, err := b.Tenants(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range tenants {
		doc.Tenants[t.ID] = t
	}

	var records []models.SectionRecord
	if err := b.db.WithContext(ctx).
		Order("tenant_id ASC, section ASC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("store: list sections: %w", err)
	}

	for _, rec := range records {
		if err := decodeSection(doc, models.Section(rec.Section), rec.TenantID, []byte(rec.Payload)); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

func (b *GormBackend) Close() error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
