package appointment

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/models"
)

func TestParseStatus(t *testing.T) {
	st, err := ParseStatus(" Completed ")
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, st)

	_, err = ParseStatus("concluído")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicyStrict, p)

	p, err = ParsePolicy("PERMISSIVE")
	require.NoError(t, err)
	assert.Equal(t, PolicyPermissive, p)

	_, err = ParsePolicy("lenient")
	assert.Error(t, err)
}

func TestCanTransition_Strict(t *testing.T) {
	cases := []struct {
		from, to Status
		ok       bool
	}{
		{StatusScheduled, StatusCompleted, true},
		{StatusScheduled, StatusCanceled, true},
		{StatusScheduled, StatusScheduled, false},
		{StatusCompleted, StatusCompleted, false},
		{StatusCompleted, StatusScheduled, false},
		{StatusCanceled, StatusCompleted, false},
	}

	for _, tc := range cases {
		err := CanTransition(PolicyStrict, tc.from, tc.to)
		if tc.ok {
			assert.NoError(t, err, "%s -> %s", tc.from, tc.to)
		} else {
			assert.True(t, httperr.IsBusiness(err, "invalid_state"), "%s -> %s", tc.from, tc.to)
		}
	}
}

func TestTransition_PermissiveAllowsRecompletion(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusCompleted)}

	completed, err := Transition(ap, StatusCompleted, PolicyPermissive)
	require.NoError(t, err)
	assert.True(t, completed)

	completed, err = Transition(ap, StatusScheduled, PolicyPermissive)
	require.NoError(t, err)
	assert.False(t, completed)
	assert.Equal(t, string(StatusScheduled), ap.Status)
}

func TestTransition_StrictLeavesStatusOnError(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusCanceled)}

	_, err := Transition(ap, StatusCompleted, PolicyStrict)
	assert.Error(t, err)
	assert.Equal(t, string(StatusCanceled), ap.Status)
}

func TestRevenueEntry(t *testing.T) {
	ap := models.Appointment{
		ClientName:  "João",
		ServiceName: "Barba",
		Price:       decimal.NewFromInt(30),
	}

	entry := RevenueEntry(ap, "id-1", "2026-10-19")

	assert.Equal(t, "Serviço: Barba - João", entry.Description)
	assert.Equal(t, "revenue", entry.Type)
	assert.Equal(t, "serviço", entry.Category)
	assert.Equal(t, "2026-10-19", entry.Date)
	assert.True(t, entry.Amount.Equal(decimal.NewFromInt(30)))
}
