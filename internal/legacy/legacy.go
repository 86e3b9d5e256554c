// Package legacy converte o arquivo JSON da versão anterior do BarberPro
// (chaves em português: barbearias, clientes, barbeiros, agendamentos,
// financeiro, servicos) para o Document atual.
package legacy

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/barberpro/internal/domain/appointment"
	"github.com/BruksfildServices01/barberpro/internal/domain/ledger"
	"github.com/BruksfildServices01/barberpro/internal/models"
	"github.com/BruksfildServices01/barberpro/internal/store"
)

// ======================================================
// FORMATO ANTIGO
// ======================================================

type document struct {
	Barbearias   map[string]barbearia     `json:"barbearias"`
	Clientes     map[string][]cliente     `json:"clientes"`
	Barbeiros    map[string][]barbeiro    `json:"barbeiros"`
	Agendamentos map[string][]agendamento `json:"agendamentos"`
	Financeiro   map[string][]lancamento  `json:"financeiro"`
	Servicos     map[string][]servico     `json:"servicos"`
}

type barbearia struct {
	Nome      string `json:"nome"`
	Email     string `json:"email"`
	SenhaHash string `json:"senha_hash"`
	Plano     string `json:"plano"`
	Ativo     bool   `json:"ativo"`
	CriadoEm  string `json:"criado_em"`
}

type cliente struct {
	ID         string `json:"id"`
	Nome       string `json:"nome"`
	Telefone   string `json:"telefone"`
	Email      string `json:"email"`
	Nascimento string `json:"nascimento"`
	Obs        string `json:"obs"`
	CriadoEm   string `json:"criado_em"`
}

type barbeiro struct {
	ID            string `json:"id"`
	Nome          string `json:"nome"`
	Telefone      string `json:"telefone"`
	Especialidade string `json:"especialidade"`
	Comissao      int    `json:"comissao"`
	Ativo         bool   `json:"ativo"`
	CriadoEm      string `json:"criado_em"`
}

type agendamento struct {
	ID       string          `json:"id"`
	Data     string          `json:"data"`
	Hora     string          `json:"hora"`
	Cliente  string          `json:"cliente"`
	Barbeiro string          `json:"barbeiro"`
	Servico  string          `json:"servico"`
	Valor    decimal.Decimal `json:"valor"`
	Status   string          `json:"status"`
	Obs      string          `json:"obs"`
	CriadoEm string          `json:"criado_em"`
}

type lancamento struct {
	ID        string          `json:"id"`
	Data      string          `json:"data"`
	Descricao string          `json:"descricao"`
	Valor     decimal.Decimal `json:"valor"`
	Tipo      string          `json:"tipo"`
	Categoria string          `json:"categoria"`
}

type servico struct {
	ID      string          `json:"id"`
	Nome    string          `json:"nome"`
	Preco   decimal.Decimal `json:"preco"`
	Duracao int             `json:"duracao"`
}

// ======================================================
// CONVERSÃO
// ======================================================

// Report resume o que foi convertido. Registros com status ou tipo
// desconhecido são pulados e listados em Skipped, assim como as seções de
// barbearias que não entraram no documento.
type Report struct {
	Tenants      int
	Clients      int
	Staff        int
	Appointments int
	Ledger       int
	Services     int
	Skipped      []string
}

var planCodes = map[string]string{
	"basico":  models.PlanBasic,
	"básico":  models.PlanBasic,
	"pro":     models.PlanPro,
	"premium": models.PlanPremium,
	"admin":   models.PlanAdmin,
}

var statusCodes = map[string]domain.Status{
	"agendado":  domain.StatusScheduled,
	"concluído": domain.StatusCompleted,
	"concluido": domain.StatusCompleted,
	"cancelado": domain.StatusCanceled,
}

var entryTypes = map[string]string{
	"receita": ledger.TypeRevenue,
	"despesa": ledger.TypeExpense,
}

// Convert lê o JSON antigo. Senhas continuam como sha256 hex; o login
// aceita esse formato.
func Convert(raw []byte) (*models.Document, Report, error) {
	var old document
	if err := json.Unmarshal(raw, &old); err != nil {
		return nil, Report{}, fmt.Errorf("legacy: parse: %w", err)
	}
	if len(old.Barbearias) == 0 {
		return nil, Report{}, fmt.Errorf("legacy: no barbearias in document")
	}

	doc := models.NewDocument()
	var rep Report

	for _, id := range sortedKeys(old.Barbearias) {
		b := old.Barbearias[id]
		plan, ok := planCodes[strings.ToLower(strings.TrimSpace(b.Plano))]
		if !ok {
			rep.Skipped = append(rep.Skipped, fmt.Sprintf("barbearia %s: plano %q", id, b.Plano))
			continue
		}
		doc.Tenants[id] = models.Tenant{
			ID:           id,
			Name:         b.Nome,
			Email:        strings.ToLower(strings.TrimSpace(b.Email)),
			PasswordHash: b.SenhaHash,
			Plan:         plan,
			Active:       b.Ativo,
			CreatedAt:    b.CriadoEm,
		}
		rep.Tenants++
	}

	for _, tid := range sortedKeys(old.Clientes) {
		list := old.Clientes[tid]
		if orphan(doc, &rep, "clientes", tid) {
			continue
		}
		out := make([]models.Client, 0, len(list))
		for _, c := range list {
			out = append(out, models.Client{
				ID:        idOrNew(c.ID),
				Name:      c.Nome,
				Phone:     c.Telefone,
				Email:     c.Email,
				BirthDate: c.Nascimento,
				Note:      c.Obs,
				CreatedAt: c.CriadoEm,
			})
		}
		doc.Clients[tid] = out
		rep.Clients += len(out)
	}

	for _, tid := range sortedKeys(old.Barbeiros) {
		list := old.Barbeiros[tid]
		if orphan(doc, &rep, "barbeiros", tid) {
			continue
		}
		out := make([]models.Staff, 0, len(list))
		for _, b := range list {
			out = append(out, models.Staff{
				ID:         idOrNew(b.ID),
				Name:       b.Nome,
				Phone:      b.Telefone,
				Specialty:  b.Especialidade,
				Commission: b.Comissao,
				Active:     b.Ativo,
				CreatedAt:  b.CriadoEm,
			})
		}
		doc.Staff[tid] = out
		rep.Staff += len(out)
	}

	for _, tid := range sortedKeys(old.Agendamentos) {
		list := old.Agendamentos[tid]
		if orphan(doc, &rep, "agendamentos", tid) {
			continue
		}
		out := make([]models.Appointment, 0, len(list))
		for _, a := range list {
			status, ok := statusCodes[strings.ToLower(strings.TrimSpace(a.Status))]
			if !ok {
				rep.Skipped = append(rep.Skipped, fmt.Sprintf("agendamento %s/%s: status %q", tid, a.ID, a.Status))
				continue
			}
			out = append(out, models.Appointment{
				ID:          idOrNew(a.ID),
				Date:        a.Data,
				Time:        a.Hora,
				ClientName:  a.Cliente,
				StaffName:   a.Barbeiro,
				ServiceName: a.Servico,
				Price:       a.Valor,
				Status:      string(status),
				Note:        a.Obs,
				CreatedAt:   a.CriadoEm,
			})
		}
		doc.Appointments[tid] = out
		rep.Appointments += len(out)
	}

	for _, tid := range sortedKeys(old.Financeiro) {
		list := old.Financeiro[tid]
		if orphan(doc, &rep, "financeiro", tid) {
			continue
		}
		out := make([]models.LedgerEntry, 0, len(list))
		for _, f := range list {
			typ, ok := entryTypes[strings.ToLower(strings.TrimSpace(f.Tipo))]
			if !ok {
				rep.Skipped = append(rep.Skipped, fmt.Sprintf("lançamento %s/%s: tipo %q", tid, f.ID, f.Tipo))
				continue
			}
			out = append(out, models.LedgerEntry{
				ID:          idOrNew(f.ID),
				Date:        f.Data,
				Description: f.Descricao,
				Amount:      f.Valor,
				Type:        typ,
				Category:    f.Categoria,
			})
		}
		doc.Ledger[tid] = out
		rep.Ledger += len(out)
	}

	for _, tid := range sortedKeys(old.Servicos) {
		list := old.Servicos[tid]
		if orphan(doc, &rep, "servicos", tid) {
			continue
		}
		out := make([]models.Service, 0, len(list))
		for _, s := range list {
			out = append(out, models.Service{
				ID:          idOrNew(s.ID),
				Name:        s.Nome,
				Price:       s.Preco,
				DurationMin: s.Duracao,
			})
		}
		doc.Services[tid] = out
		rep.Services += len(out)
	}

	return doc, rep, nil
}

// ======================================================
// GRAVAÇÃO
// ======================================================

// Write grava o documento convertido no backend, barbearia por barbearia.
// Seções já existentes no destino são substituídas.
func Write(ctx context.Context, b store.Backend, doc *models.Document) error {
	for _, id := range sortedKeys(doc.Tenants) {
		if err := b.SaveTenant(ctx, doc.Tenants[id]); err != nil {
			return fmt.Errorf("legacy: tenant %s: %w", id, err)
		}
	}

	for tid, list := range doc.Clients {
		if err := store.Set(ctx, b, models.SectionClients, tid, list); err != nil {
			return fmt.Errorf("legacy: clients %s: %w", tid, err)
		}
	}
	for tid, list := range doc.Staff {
		if err := store.Set(ctx, b, models.SectionStaff, tid, list); err != nil {
			return fmt.Errorf("legacy: staff %s: %w", tid, err)
		}
	}
	for tid, list := range doc.Appointments {
		if err := store.Set(ctx, b, models.SectionAppointments, tid, list); err != nil {
			return fmt.Errorf("legacy: appointments %s: %w", tid, err)
		}
	}
	for tid, list := range doc.Ledger {
		if err := store.Set(ctx, b, models.SectionLedger, tid, list); err != nil {
			return fmt.Errorf("legacy: ledger %s: %w", tid, err)
		}
	}
	for tid, list := range doc.Services {
		if err := store.Set(ctx, b, models.SectionServices, tid, list); err != nil {
			return fmt.Errorf("legacy: services %s: %w", tid, err)
		}
	}
	return nil
}

// orphan pula seções de barbearias ausentes do documento convertido.
func orphan(doc *models.Document, rep *Report, section, tid string) bool {
	if _, ok := doc.Tenants[tid]; ok {
		return false
	}
	rep.Skipped = append(rep.Skipped, fmt.Sprintf("%s %s: barbearia ignorada", section, tid))
	return true
}

func idOrNew(id string) string {
	if strings.TrimSpace(id) == "" {
		return uuid.NewString()
	}
	return id
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
