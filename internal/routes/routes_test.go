package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barberpro/internal/blob"
	domain "github.com/BruksfildServices01/barberpro/internal/domain/appointment"
	infraRepo "github.com/BruksfildServices01/barberpro/internal/infra/repository"
	"github.com/BruksfildServices01/barberpro/internal/session"
	"github.com/BruksfildServices01/barberpro/internal/store"
	"github.com/BruksfildServices01/barberpro/internal/timezone"
	"github.com/BruksfildServices01/barberpro/internal/validators"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := validators.RegisterBindings(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type apiError struct {
	Code string `json:"error_code"`
}

func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	b, err := store.OpenFile(filepath.Join(t.TempDir(), "db.json"), "2026-10-19")
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })

	r := gin.New()
	RegisterRoutes(r, Deps{
		Repo:       infraRepo.NewSections(b),
		Sessions:   session.NewMemoryStore(),
		Tokens:     session.NewTokenIssuer("test-secret"),
		Blobs:      blob.NewLocalStore(t.TempDir()),
		Clock:      timezone.FixedClock{T: time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)},
		Policy:     domain.PolicyStrict,
		SessionTTL: time.Hour,
	})
	return r
}

func call(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func loginAs(t *testing.T, r *gin.Engine, email, pass string) string {
	t.Helper()
	w := call(r, http.MethodPost, "/api/auth/login", "", gin.H{"email": email, "password": pass})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode[struct {
		Token string `json:"token"`
	}](t, w).Token
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[apiError](t, w).Code
}

// ======================================================
// PUBLIC / AUTH
// ======================================================

func TestHealth(t *testing.T) {
	r := setupServer(t)
	w := call(r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	r := setupServer(t)

	w := call(r, http.MethodPost, "/api/auth/login", "", gin.H{"email": "demo@barbearia.com", "password": "errada"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_credentials", errorCode(t, w))

	w = call(r, http.MethodPost, "/api/auth/login", "", gin.H{"email": "nao-e-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_request", errorCode(t, w))
}

func TestLogout_EndsSession(t *testing.T) {
	r := setupServer(t)
	token := loginAs(t, r, "demo@barbearia.com", "demo123")

	w := call(r, http.MethodGet, "/api/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = call(r, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = call(r, http.MethodGet, "/api/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "session_expired", errorCode(t, w))
}

// ======================================================
// SHOP FLOW
// ======================================================

func TestAppointmentFlow(t *testing.T) {
	r := setupServer(t)
	token := loginAs(t, r, "demo@barbearia.com", "demo123")

	w := call(r, http.MethodPost, "/api/me/clients", token, gin.H{"name": "João", "phone": "11999990000"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = call(r, http.MethodPost, "/api/me/staff", token, gin.H{"name": "Carlos", "commission": 40})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = call(r, http.MethodGet, "/api/me/services", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, decode[struct {
		Total int `json:"total"`
	}](t, w).Total)

	w = call(r, http.MethodPost, "/api/me/appointments", token, gin.H{
		"client_name":  "João",
		"staff_name":   "Carlos",
		"service_name": "Barba",
		"date":         "2026-10-19",
		"time":         "25:00",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_time", errorCode(t, w))

	w = call(r, http.MethodPost, "/api/me/appointments", token, gin.H{
		"client_name":  "João",
		"staff_name":   "Carlos",
		"service_name": "Barba",
		"date":         "2026-10-19",
		"time":         "10:00",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	ap := decode[struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}](t, w)
	assert.Equal(t, "scheduled", ap.Status)

	w = call(r, http.MethodGet, "/api/me/appointments?date=2026-10-19", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[struct {
		Total int `json:"total"`
	}](t, w).Total)

	w = call(r, http.MethodPatch, "/api/me/appointments/"+ap.ID+"/status", token, gin.H{"status": "completed"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	res := decode[struct {
		Revenue *struct {
			Amount float64 `json:"amount"`
			Type   string  `json:"type"`
		} `json:"revenue"`
	}](t, w)
	require.NotNil(t, res.Revenue)
	assert.Equal(t, 30.0, res.Revenue.Amount)

	w = call(r, http.MethodPatch, "/api/me/appointments/"+ap.ID+"/status", token, gin.H{"status": "completed"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "invalid_state", errorCode(t, w))

	w = call(r, http.MethodPatch, "/api/me/appointments/nope/status", token, gin.H{"status": "canceled"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = call(r, http.MethodPost, "/api/me/ledger", token, gin.H{
		"description": "Aluguel",
		"amount":      10,
		"type":        "expense",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = call(r, http.MethodGet, "/api/me/ledger/summary?month=2026-10", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	sum := decode[struct {
		Revenue float64 `json:"revenue"`
		Expense float64 `json:"expense"`
		Profit  float64 `json:"profit"`
	}](t, w)
	assert.Equal(t, 30.0, sum.Revenue)
	assert.Equal(t, 10.0, sum.Expense)
	assert.Equal(t, 20.0, sum.Profit)

	w = call(r, http.MethodGet, "/api/me/dashboard", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	dash := decode[struct {
		TodayCount  int `json:"today_count"`
		ClientCount int `json:"client_count"`
	}](t, w)
	assert.Equal(t, 1, dash.TodayCount)
	assert.Equal(t, 1, dash.ClientCount)

	w = call(r, http.MethodGet, "/api/me/appointments/month?year=2026&month=13", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_month", errorCode(t, w))
}

func TestBilling_DisabledWithoutProvider(t *testing.T) {
	r := setupServer(t)
	token := loginAs(t, r, "demo@barbearia.com", "demo123")

	w := call(r, http.MethodPost, "/api/me/billing/checkout", token, gin.H{"plan": "pro"})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "billing_disabled", errorCode(t, w))
}

func TestLogo_NotFound(t *testing.T) {
	r := setupServer(t)
	token := loginAs(t, r, "demo@barbearia.com", "demo123")

	w := call(r, http.MethodGet, "/api/me/logo", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "logo_not_found", errorCode(t, w))
}

// ======================================================
// ADMIN
// ======================================================

func TestAdminRoutes(t *testing.T) {
	r := setupServer(t)
	admin := loginAs(t, r, "admin@barberpro.com", "admin123")
	demo := loginAs(t, r, "demo@barbearia.com", "demo123")

	w := call(r, http.MethodGet, "/api/admin/tenants", demo, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = call(r, http.MethodGet, "/api/me/dashboard", admin, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "shop_only", errorCode(t, w))

	w = call(r, http.MethodPost, "/api/admin/tenants", admin, gin.H{
		"name":     "Barbearia Nova",
		"email":    "nova@barbearia.com",
		"password": "segredo1",
		"plan":     "basic",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[struct {
		ID string `json:"id"`
	}](t, w)

	w = call(r, http.MethodPost, "/api/admin/tenants", admin, gin.H{
		"name":     "Outra",
		"email":    "NOVA@barbearia.com",
		"password": "segredo1",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "email_already_exists", errorCode(t, w))

	w = call(r, http.MethodGet, "/api/admin/tenants", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, decode[struct {
		Total int `json:"total"`
	}](t, w).Total)

	w = call(r, http.MethodPatch, "/api/admin/tenants/"+created.ID, admin, gin.H{"active": false})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = call(r, http.MethodPost, "/api/auth/login", "", gin.H{"email": "nova@barbearia.com", "password": "segredo1"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "account_disabled", errorCode(t, w))

	w = call(r, http.MethodGet, "/api/admin/finance?month=2026-10", admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = call(r, http.MethodGet, "/api/admin/overview", admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
