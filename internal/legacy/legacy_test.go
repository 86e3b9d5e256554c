package legacy

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barberpro/internal/models"
	"github.com/BruksfildServices01/barberpro/internal/password"
	"github.com/BruksfildServices01/barberpro/internal/store"
)

func sha(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

var oldDoc = []byte(`{
  "barbearias": {
    "barbearia_demo": {"nome": "Barbearia Demo", "email": " Demo@Barbearia.com", "senha_hash": "` + sha("demo123") + `", "plano": "basico", "ativo": true, "criado_em": "2025-01-10"},
    "quebrada": {"nome": "X", "email": "x@x.com", "senha_hash": "", "plano": "ouro", "ativo": true}
  },
  "clientes": {
    "barbearia_demo": [{"id": "c1", "nome": "João", "telefone": "119", "nascimento": "1990-05-01", "obs": "vip"}],
    "quebrada": [{"id": "c9", "nome": "Órfão"}]
  },
  "barbeiros": {
    "barbearia_demo": [{"nome": "Carlos", "comissao": 40, "ativo": true}],
    "sumida": [{"nome": "Pedro", "comissao": 30, "ativo": true}]
  },
  "agendamentos": {"barbearia_demo": [
    {"id": "a1", "data": "2025-02-01", "hora": "10:00", "cliente": "João", "barbeiro": "Carlos", "servico": "Barba", "valor": 30.0, "status": "concluído"},
    {"id": "a2", "data": "2025-02-02", "hora": "11:00", "cliente": "João", "barbeiro": "Carlos", "servico": "Barba", "valor": 30.0, "status": "perdido"}
  ]},
  "financeiro": {"barbearia_demo": [{"id": "f1", "data": "2025-02-01", "descricao": "Serviço: Barba - João", "valor": 30.5, "tipo": "receita", "categoria": "serviço"}]},
  "servicos": {"barbearia_demo": [{"id": "s1", "nome": "Barba", "preco": 30.0, "duracao": 30}]}
}`)

func TestConvert(t *testing.T) {
	doc, rep, err := Convert(oldDoc)
	require.NoError(t, err)

	assert.Equal(t, 1, rep.Tenants)
	assert.Equal(t, 1, rep.Clients)
	assert.Equal(t, 1, rep.Staff)
	assert.Equal(t, 1, rep.Appointments)
	assert.Equal(t, 1, rep.Ledger)
	assert.Equal(t, 1, rep.Services)
	assert.Len(t, rep.Skipped, 4)

	tenant := doc.Tenants["barbearia_demo"]
	assert.Equal(t, "demo@barbearia.com", tenant.Email)
	assert.Equal(t, models.PlanBasic, tenant.Plan)
	assert.True(t, password.Verify(tenant.PasswordHash, "demo123"))

	ap := doc.Appointments["barbearia_demo"][0]
	assert.Equal(t, "completed", ap.Status)
	assert.True(t, ap.Price.Equal(decimal.NewFromInt(30)))

	entry := doc.Ledger["barbearia_demo"][0]
	assert.Equal(t, "revenue", entry.Type)
	assert.True(t, entry.Amount.Equal(decimal.RequireFromString("30.5")))

	assert.NotEmpty(t, doc.Staff["barbearia_demo"][0].ID)
	assert.Equal(t, "vip", doc.Clients["barbearia_demo"][0].Note)
}

func TestConvert_SkipsSectionsOfIgnoredTenants(t *testing.T) {
	doc, rep, err := Convert(oldDoc)
	require.NoError(t, err)

	_, ok := doc.Tenants["quebrada"]
	assert.False(t, ok)
	assert.NotContains(t, doc.Clients, "quebrada")
	assert.NotContains(t, doc.Staff, "sumida")
	assert.Contains(t, rep.Skipped, "clientes quebrada: barbearia ignorada")
	assert.Contains(t, rep.Skipped, "barbeiros sumida: barbearia ignorada")
	assert.Equal(t, 1, rep.Clients)
	assert.Equal(t, 1, rep.Staff)

	for tid := range doc.Clients {
		assert.Contains(t, doc.Tenants, tid)
	}
	for tid := range doc.Staff {
		assert.Contains(t, doc.Tenants, tid)
	}
}

func TestConvert_Rejects(t *testing.T) {
	_, _, err := Convert([]byte(`{`))
	assert.Error(t, err)

	_, _, err = Convert([]byte(`{"clientes": {}}`))
	assert.Error(t, err)
}

func TestWrite(t *testing.T) {
	ctx := context.Background()
	b, err := store.OpenFile(filepath.Join(t.TempDir(), "db.json"), "2026-10-19")
	require.NoError(t, err)

	doc, _, err := Convert(oldDoc)
	require.NoError(t, err)
	require.NoError(t, Write(ctx, b, doc))

	clients, err := store.Get[models.Client](ctx, b, models.SectionClients, "barbearia_demo")
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "João", clients[0].Name)

	tenant, ok, err := store.FindTenant(ctx, b, "barbearia_demo")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, models.PlanBasic, tenant.Plan)
}
