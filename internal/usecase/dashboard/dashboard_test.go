package dashboard

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barberpro/internal/infra/repository"
	"github.com/BruksfildServices01/barberpro/internal/models"
	"github.com/BruksfildServices01/barberpro/internal/session"
	"github.com/BruksfildServices01/barberpro/internal/store"
	"github.com/BruksfildServices01/barberpro/internal/timezone"
)

func TestGetDashboard(t *testing.T) {
	b, err := store.OpenFile(filepath.Join(t.TempDir(), "db.json"), "2026-10-19")
	require.NoError(t, err)
	repo := repository.NewSections(b)
	ctx := context.Background()
	tid := store.DemoTenantID

	require.NoError(t, repo.SaveClients(ctx, tid, []models.Client{{ID: "1", Name: "A"}, {ID: "2", Name: "B"}, {ID: "3", Name: "C"}}))
	require.NoError(t, repo.SaveStaff(ctx, tid, []models.Staff{{Name: "X", Active: true}, {Name: "Y"}}))
	require.NoError(t, repo.SaveAppointments(ctx, tid, []models.Appointment{
		{ID: "a1", Date: "2026-10-19", Time: "16:00", Status: "scheduled"},
		{ID: "a2", Date: "2026-10-19", Time: "08:00", Status: "completed"},
		{ID: "a3", Date: "2026-10-20", Time: "08:00", Status: "scheduled"},
	}))
	require.NoError(t, repo.SaveLedger(ctx, tid, []models.LedgerEntry{
		{Date: "2026-10-19", Type: "revenue", Amount: decimal.NewFromInt(35)},
		{Date: "2026-10-03", Type: "expense", Amount: decimal.NewFromInt(10)},
		{Date: "2026-09-03", Type: "revenue", Amount: decimal.NewFromInt(500)},
	}))

	clock := timezone.FixedClock{T: time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)}
	got, err := NewGetDashboard(repo, clock).Execute(ctx, session.Session{TenantID: tid})
	require.NoError(t, err)

	assert.Equal(t, "2026-10-19", got.Date)
	assert.Equal(t, 2, got.TodayCount)
	assert.Equal(t, "a2", got.TodayAppointments[0].ID)
	assert.Equal(t, 3, got.ClientCount)
	assert.Equal(t, 1, got.ActiveStaffCount)
	assert.True(t, got.Month.Revenue.Equal(decimal.NewFromInt(35)))
	assert.True(t, got.Month.Profit.Equal(decimal.NewFromInt(25)))
}

func TestGetDashboard_EmptyTenant(t *testing.T) {
	b, err := store.OpenFile(filepath.Join(t.TempDir(), "db.json"), "2026-10-19")
	require.NoError(t, err)

	got, err := NewGetDashboard(repository.NewSections(b), timezone.FixedClock{T: time.Now()}).Execute(context.Background(), session.Session{TenantID: "nova"})
	require.NoError(t, err)
	assert.Equal(t, 0, got.TodayCount)
	assert.NotNil(t, got.TodayAppointments)
	assert.True(t, got.Month.Profit.IsZero())
}
