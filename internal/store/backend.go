// Package store persists tenants and their per-tenant sections.
//
// Two backends implement the same contract: FileBackend keeps the whole
// document in one JSON file and rewrites it on every change; GormBackend keeps
// one row per tenant and one row per (tenant, section) pair.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/BruksfildServices01/barberpro/internal/models"
)

var ErrUnknownSection = errors.New("store: unknown section")

type Backend interface {
	Tenants(ctx context.Context) ([]models.Tenant, error)
	SaveTenant(ctx context.Context, t models.Tenant) error

	// ReadSection devolve nil quando a barbearia ainda não tem a seção.
	ReadSection(ctx context.Context, section models.Section, tenantID string) (json.RawMessage, error)
	WriteSection(ctx context.Context, section models.Section, tenantID string, list json.RawMessage) error

	Snapshot(ctx context.Context) (*models.Document, error)
	Close() error
}

// WriteHook é chamado depois de cada escrita bem-sucedida. section vem
// vazia quando o que mudou foi o cadastro da barbearia.
type WriteHook func(section models.Section, tenantID string)

type observed struct {
	Backend
	hook WriteHook
}

// Observe decora um Backend para avisar o hook a cada escrita.
func Observe(b Backend, hook WriteHook) Backend {
	if hook == nil {
		return b
	}
	return &observed{Backend: b, hook: hook}
}

func (o *observed) SaveTenant(ctx context.Context, t models.Tenant) error {
	if err := o.Backend.SaveTenant(ctx, t); err != nil {
		return err
	}
	o.hook("", t.ID)
	return nil
}

func (o *observed) WriteSection(ctx context.Context, section models.Section, tenantID string, list json.RawMessage) error {
	if err := o.Backend.WriteSection(ctx, section, tenantID, list); err != nil {
		return err
	}
	o.hook(section, tenantID)
	return nil
}

func decodeSection(doc *models.Document, section models.Section, tenantID string, raw []byte) error {
	var err error
	switch section {
	case models.SectionClients:
		var list []models.Client
		err = json.Unmarshal(raw, &list)
		doc.Clients[tenantID] = list
	case models.SectionStaff:
		var list []models.Staff
		err = json.Unmarshal(raw, &list)
		doc.Staff[tenantID] = list
	case models.SectionAppointments:
		var list []models.Appointment
		err = json.Unmarshal(raw, &list)
		doc.Appointments[tenantID] = list
	case models.SectionLedger:
		var list []models.LedgerEntry
		err = json.Unmarshal(raw, &list)
		doc.Ledger[tenantID] = list
	case models.SectionServices:
		var list []models.Service
		err = json.Unmarshal(raw, &list)
		doc.Services[tenantID] = list
	default:
		return fmt.Errorf("%w: %s", ErrUnknownSection, section)
	}
	if err != nil {
		return fmt.Errorf("store: decode %s/%s: %w", section, tenantID, err)
	}
	return nil
}
