package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barberpro/internal/models"
	"github.com/BruksfildServices01/barberpro/internal/store"
)

// Sections dá acesso tipado às seções de cada barbearia.
type Sections struct {
	backend store.Backend
	locks   sync.Map // chave -> *sync.Mutex
}

func NewSections(backend store.Backend) *Sections {
	return &Sections{backend: backend}
}

func (r *Sections) Backend() store.Backend {
	return r.backend
}

// --------------------------------------------------
// Locks
// --------------------------------------------------

// tenantsKey trava a lista de barbearias; ids de barbearia nunca são vazios.
const tenantsKey = ""

type heldKey struct{ key string }

// WithTenant serializa leitura-alteração-gravação das seções de uma
// barbearia dentro do processo. Chamadas aninhadas com o ctx recebido
// reaproveitam a trava.
func (r *Sections) WithTenant(ctx context.Context, tenantID string, fn func(ctx context.Context) error) error {
	return r.withLock(ctx, "tenant:"+tenantID, fn)
}

// WithTenants serializa alterações na lista de barbearias.
func (r *Sections) WithTenants(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.withLock(ctx, tenantsKey, fn)
}

func (r *Sections) withLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	if ctx.Value(heldKey{key}) != nil {
		return fn(ctx)
	}

	v, _ := r.locks.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()

	return fn(context.WithValue(ctx, heldKey{key}, true))
}

// --------------------------------------------------
// Tenants
// --------------------------------------------------

func (r *Sections) Tenants(ctx context.Context) ([]models.Tenant, error) {
	return r.backend.Tenants(ctx)
}

func (r *Sections) SaveTenant(ctx context.Context, t models.Tenant) error {
	return r.backend.SaveTenant(ctx, t)
}

func (r *Sections) FindTenant(ctx context.Context, id string) (models.Tenant, bool, error) {
	return store.FindTenant(ctx, r.backend, id)
}

// FindTenantByEmail compara e-mails sem caixa e sem espaços nas pontas.
func (r *Sections) FindTenantByEmail(ctx context.Context, email string) (models.Tenant, bool, error) {
	tenants, err := r.backend.Tenants(ctx)
	if err != nil {
		return models.Tenant{}, false, err
	}

	email = NormalizeEmail(email)
	for _, t := range tenants {
		if NormalizeEmail(t.Email) == email {
			return t, true, nil
		}
	}
	return models.Tenant{}, false, nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// --------------------------------------------------
// Clients
// --------------------------------------------------

func (r *Sections) Clients(ctx context.Context, tenantID string) ([]models.Client, error) {
	return store.Get[models.Client](ctx, r.backend, models.SectionClients, tenantID)
}

func (r *Sections) SaveClients(ctx context.Context, tenantID string, list []models.Client) error {
	return store.Set(ctx, r.backend, models.SectionClients, tenantID, list)
}

// --------------------------------------------------
// Staff
// --------------------------------------------------

func (r *Sections) Staff(ctx context.Context, tenantID string) ([]models.Staff, error) {
	return store.Get[models.Staff](ctx, r.backend, models.SectionStaff, tenantID)
}

func (r *Sections) SaveStaff(ctx context.Context, tenantID string, list []models.Staff) error {
	return store.Set(ctx, r.backend, models.SectionStaff, tenantID, list)
}

// --------------------------------------------------
// Services
// --------------------------------------------------

// DefaultServices é o catálogo inicial de toda barbearia.
func DefaultServices() []models.Service {
	return []models.Service{
		{ID: uuid.NewString(), Name: "Corte Tradicional", Price: decimal.NewFromInt(35), DurationMin: 30},
		{ID: uuid.NewString(), Name: "Corte + Barba", Price: decimal.NewFromInt(60), DurationMin: 60},
		{ID: uuid.NewString(), Name: "Barba", Price: decimal.NewFromInt(30), DurationMin: 30},
		{ID: uuid.NewString(), Name: "Relaxamento", Price: decimal.NewFromInt(80), DurationMin: 60},
		{ID: uuid.NewString(), Name: "Pigmentação", Price: decimal.NewFromInt(120), DurationMin: 90},
	}
}

// Services semeia o catálogo padrão no primeiro acesso e já persiste.
func (r *Sections) Services(ctx context.Context, tenantID string) ([]models.Service, error) {
	list, err := store.Get[models.Service](ctx, r.backend, models.SectionServices, tenantID)
	if err != nil || len(list) > 0 {
		return list, err
	}

	err = r.WithTenant(ctx, tenantID, func(ctx context.Context) error {
		// outra requisição pode ter semeado enquanto esperávamos
		list, err = store.Get[models.Service](ctx, r.backend, models.SectionServices, tenantID)
		if err != nil || len(list) > 0 {
			return err
		}
		list = DefaultServices()
		return r.SaveServices(ctx, tenantID, list)
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *Sections) SaveServices(ctx context.Context, tenantID string, list []models.Service) error {
	return store.Set(ctx, r.backend, models.SectionServices, tenantID, list)
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *Sections) Appointments(ctx context.Context, tenantID string) ([]models.Appointment, error) {
	return store.Get[models.Appointment](ctx, r.backend, models.SectionAppointments, tenantID)
}

func (r *Sections) SaveAppointments(ctx context.Context, tenantID string, list []models.Appointment) error {
	return store.Set(ctx, r.backend, models.SectionAppointments, tenantID, list)
}

// --------------------------------------------------
// Ledger
// --------------------------------------------------

func (r *Sections) Ledger(ctx context.Context, tenantID string) ([]models.LedgerEntry, error) {
	return store.Get[models.LedgerEntry](ctx, r.backend, models.SectionLedger, tenantID)
}

func (r *Sections) SaveLedger(ctx context.Context, tenantID string, list []models.LedgerEntry) error {
	return store.Set(ctx, r.backend, models.SectionLedger, tenantID, list)
}
