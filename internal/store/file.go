package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/BruksfildServices01/barberpro/internal/models"
)

// fileDocument é o formato em disco; as seções ficam cruas e só são
// decodificadas por quem lê.
type fileDocument struct {
	Tenants      map[string]models.Tenant   `json:"tenants"`
	Clients      map[string]json.RawMessage `json:"clients"`
	Staff        map[string]json.RawMessage `json:"staff"`
	Appointments map[string]json.RawMessage `json:"appointments"`
	Ledger       map[string]json.RawMessage `json:"ledger"`
	Services     map[string]json.RawMessage `json:"services"`
}

func (d *fileDocument) normalize() {
	if d.Tenants == nil {
		d.Tenants = map[string]models.Tenant{}
	}
	for _, s := range models.Sections {
		if p := d.section(s); *p == nil {
			*p = map[string]json.RawMessage{}
		}
	}
}

func (d *fileDocument) section(s models.Section) *map[string]json.RawMessage {
	switch s {
	case models.SectionClients:
		return &d.Clients
	case models.SectionStaff:
		return &d.Staff
	case models.SectionAppointments:
		return &d.Appointments
	case models.SectionLedger:
		return &d.Ledger
	case models.SectionServices:
		return &d.Services
	}
	return nil
}

// FileBackend guarda tudo em um único documento JSON. Cada escrita regrava
// o arquivo inteiro (arquivo temporário + rename).
//
// O mutex só serializa escritores deste processo. Dois processos apontando
// para o mesmo arquivo ainda disputam a gravação e o último a gravar vence,
// descartando a alteração do outro.
type FileBackend struct {
	mu   sync.Mutex
	path string
	doc  fileDocument
}

var _ Backend = (*FileBackend)(nil)

// OpenFile carrega o documento; se o arquivo não existe, cria a base padrão
// com as duas contas semente.
func OpenFile(path, today string) (*FileBackend, error) {
	b := &FileBackend{path: path}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		b.doc.normalize()
		for _, t := range DefaultTenants(today) {
			b.doc.Tenants[t.ID] = t
		}
		if err := b.flush(); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, fmt.Errorf("store: read %s: %w", path, err)
	default:
		if err := json.Unmarshal(data, &b.doc); err != nil {
			return nil, fmt.Errorf("store: parse %s: %w", path, err)
		}
		b.doc.normalize()
	}

	return b, nil
}

func (b *FileBackend) Path() string {
	return b.path
}

func (b *FileBackend) Tenants(ctx context.Context) ([]models.Tenant, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]models.Tenant, 0, len(b.doc.Tenants))
	for _, t := range b.doc.Tenants {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (b *FileBackend) SaveTenant(ctx context.Context, t models.Tenant) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	prev, existed := b.doc.Tenants[t.ID]
	b.doc.Tenants[t.ID] = t

	if err := b.flush(); err != nil {
		if existed {
			b.doc.Tenants[t.ID] = prev
		} else {
			delete(b.doc.Tenants, t.ID)
		}
		return err
	}
	return nil
}

func (b *FileBackend) ReadSection(ctx context.Context, section models.Section, tenantID string) (json.RawMessage, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	m := b.doc.section(section)
	if m == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSection, section)
	}

	raw, ok := (*m)[tenantID]
	if !ok {
		return nil, nil
	}
	return append(json.RawMessage(nil), raw...), nil
}

func (b *FileBackend) WriteSection(ctx context.Context, section models.Section, tenantID string, list json.RawMessage) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	m := b.doc.section(section)
	if m == nil {
		return fmt.Errorf("%w: %s", ErrUnknownSection, section)
	}

	prev, existed := (*m)[tenantID]
	(*m)[tenantID] = append(json.RawMessage(nil), list...)

	if err := b.flush(); err != nil {
		if existed {
			(*m)[tenantID] = prev
		} else {
			delete(*m, tenantID)
		}
		return err
	}
	return nil
}

func (b *FileBackend) Snapshot(ctx context.Context) (*models.Document, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	data, err := json.Marshal(b.doc)
	if err != nil {
		return nil, fmt.Errorf("store: snapshot: %w", err)
	}

	doc := models.NewDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("store: snapshot: %w", err)
	}
	return doc, nil
}

func (b *FileBackend) Close() error {
	return nil
}

// flush regrava o documento inteiro. Chamar com o mutex travado.
func (b *FileBackend) flush() error {
	data, err := json.MarshalIndent(b.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode: %w", err)
	}

	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("store: mkdir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".barberpro-*.tmp")
	if err != nil {
		return fmt.Errorf("store: temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("store: write: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("store: sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("store: close: %w", err)
	}

	if err := os.Rename(tmp.Name(), b.path); err != nil {
		return fmt.Errorf("store: replace %s: %w", b.path, err)
	}
	return nil
}
