package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barberpro/internal/config"
	"github.com/BruksfildServices01/barberpro/internal/db"
	"github.com/BruksfildServices01/barberpro/internal/models"
)

func setupGormBackend(t *testing.T) *GormBackend {
	t.Helper()

	gdb, err := db.Open(config.StoreConfig{
		Driver: "sqlite",
		DSN:    filepath.Join(t.TempDir(), "barberpro.db"),
	})
	require.NoError(t, err)

	b, err := NewGormBackend(context.Background(), gdb, "2026-10-19")
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func TestGormBackend_SeedsTenantsOnce(t *testing.T) {
	b := setupGormBackend(t)
	ctx := context.Background()

	tenants, err := b.Tenants(ctx)
	require.NoError(t, err)
	require.Len(t, tenants, 2)
	assert.Equal(t, AdminTenantID, tenants[0].ID)

	again, err := NewGormBackend(ctx, b.db, "2030-01-01")
	require.NoError(t, err)
	tenants, err = again.Tenants(ctx)
	require.NoError(t, err)
	assert.Len(t, tenants, 2)
	assert.Equal(t, "2026-10-19", tenants[1].CreatedAt)
}

func TestGormBackend_SectionsAreIsolatedPerTenant(t *testing.T) {
	b := setupGormBackend(t)
	ctx := context.Background()

	demo := []models.Client{{ID: "c1", Name: "Ana"}}
	admin := []models.Client{{ID: "c2", Name: "Bia"}, {ID: "c3", Name: "Caio"}}

	require.NoError(t, Set(ctx, b, models.SectionClients, DemoTenantID, demo))
	require.NoError(t, Set(ctx, b, models.SectionClients, AdminTenantID, admin))

	// sobrescreve só a linha da demo
	demo = append(demo, models.Client{ID: "c4", Name: "Davi"})
	require.NoError(t, Set(ctx, b, models.SectionClients, DemoTenantID, demo))

	gotDemo, err := Get[models.Client](ctx, b, models.SectionClients, DemoTenantID)
	require.NoError(t, err)
	assert.Equal(t, demo, gotDemo)

	gotAdmin, err := Get[models.Client](ctx, b, models.SectionClients, AdminTenantID)
	require.NoError(t, err)
	assert.Equal(t, admin, gotAdmin)
}

func TestGormBackend_SaveTenantUpserts(t *testing.T) {
	b := setupGormBackend(t)
	ctx := context.Background()

	tenant := models.Tenant{ID: "nova", Name: "Nova", Email: "nova@example.com", PasswordHash: "x", Plan: models.PlanBasic, Active: true}
	require.NoError(t, b.SaveTenant(ctx, tenant))

	tenant.Active = false
	tenant.Plan = models.PlanPremium
	require.NoError(t, b.SaveTenant(ctx, tenant))

	got, ok, err := FindTenant(ctx, b, "nova")
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, got.Active)
	assert.Equal(t, models.PlanPremium, got.Plan)
}

func TestGormBackend_Snapshot(t *testing.T) {
	b := setupGormBackend(t)
	ctx := context.Background()

	require.NoError(t, Set(ctx, b, models.SectionStaff, DemoTenantID, []models.Staff{{ID: "s1", Name: "Carlos"}}))

	doc, err := b.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, doc.Tenants, 2)
	require.Len(t, doc.Staff[DemoTenantID], 1)
	assert.Equal(t, "Carlos", doc.Staff[DemoTenantID][0].Name)
}

func TestGormBackend_AbsentSection(t *testing.T) {
	b := setupGormBackend(t)

	raw, err := b.ReadSection(context.Background(), models.SectionLedger, DemoTenantID)
	require.NoError(t, err)
	assert.Nil(t, raw)
}
