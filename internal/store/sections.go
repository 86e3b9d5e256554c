package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/BruksfildServices01/barberpro/internal/models"
)

// Get devolve a lista da seção para a barbearia, ou lista vazia.
func Get[T any](ctx context.Context, b Backend, section models.Section, tenantID string) ([]T, error) {
	raw, err := b.ReadSection(ctx, section, tenantID)
	if err != nil {
		return nil, err
	}

	out := []T{}
	if len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("store: decode %s/%s: %w", section, tenantID, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// Set substitui a lista inteira da seção e persiste na hora.
func Set[T any](ctx context.Context, b Backend, section models.Section, tenantID string, list []T) error {
	if list == nil {
		list = []T{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("store: encode %s/%s: %w", section, tenantID, err)
	}
	return b.WriteSection(ctx, section, tenantID, raw)
}

// FindTenant faz a busca linear pelo id.
func FindTenant(ctx context.Context, b Backend, id string) (models.Tenant, bool, error) {
	tenants, err := b.Tenants(ctx)
	if err != nil {
		return models.Tenant{}, false, err
	}
	for _, t := range tenants {
		if t.ID == id {
			return t, true, nil
		}
	}
	return models.Tenant{}, false, nil
}
