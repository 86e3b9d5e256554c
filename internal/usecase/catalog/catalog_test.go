package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/infra/repository"
	"github.com/BruksfildServices01/barberpro/internal/session"
	"github.com/BruksfildServices01/barberpro/internal/store"
)

var demo = session.Session{ID: "s1", TenantID: store.DemoTenantID}

func setup(t *testing.T) *repository.Sections {
	t.Helper()
	b, err := store.OpenFile(filepath.Join(t.TempDir(), "db.json"), "2026-10-19")
	require.NoError(t, err)
	return repository.NewSections(b)
}

func TestListServices_FirstAccessSeedsDefaults(t *testing.T) {
	list, err := NewListServices(setup(t)).Execute(context.Background(), demo)
	require.NoError(t, err)
	require.Len(t, list, 5)
	assert.Equal(t, "Corte Tradicional", list[0].Name)
	assert.True(t, list[4].Price.Equal(decimal.NewFromInt(120)))
}

func TestCreateService_AppendsToSeededCatalog(t *testing.T) {
	repo := setup(t)
	ctx := context.Background()

	s, err := NewCreateService(repo).Execute(ctx, demo, CreateServiceInput{
		Name:        "Sobrancelha",
		Price:       decimal.NewFromFloat(15.5),
		DurationMin: 15,
	})
	require.NoError(t, err)
	assert.True(t, s.Price.Equal(decimal.NewFromFloat(15.5)))

	list, err := NewListServices(repo).Execute(ctx, demo)
	require.NoError(t, err)
	require.Len(t, list, 6)
	assert.Equal(t, "Sobrancelha", list[5].Name)
}

func TestCreateService_Validation(t *testing.T) {
	repo := setup(t)
	ctx := context.Background()
	uc := NewCreateService(repo)

	cases := map[string]CreateServiceInput{
		"name_required":    {Name: " ", Price: decimal.NewFromInt(10), DurationMin: 30},
		"invalid_price":    {Name: "X", Price: decimal.NewFromInt(-1), DurationMin: 30},
		"invalid_duration": {Name: "X", Price: decimal.NewFromInt(10), DurationMin: 10},
	}
	for code, in := range cases {
		_, err := uc.Execute(ctx, demo, in)
		assert.True(t, httperr.IsBusiness(err, code), code)
	}

	list, err := NewListServices(repo).Execute(ctx, demo)
	require.NoError(t, err)
	assert.Len(t, list, 5)
}

func TestCreateService_FreeServiceAllowed(t *testing.T) {
	s, err := NewCreateService(setup(t)).Execute(context.Background(), demo, CreateServiceInput{
		Name: "Cortesia", Price: decimal.Zero, DurationMin: 15,
	})
	require.NoError(t, err)
	assert.True(t, s.Price.IsZero())
}
