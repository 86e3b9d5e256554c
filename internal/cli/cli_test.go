package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barberpro/internal/blob"
	"github.com/BruksfildServices01/barberpro/internal/config"
	"github.com/BruksfildServices01/barberpro/internal/infra/repository"
	"github.com/BruksfildServices01/barberpro/internal/store"
	"github.com/BruksfildServices01/barberpro/internal/timezone"
)

func testOpener(t *testing.T) (Opener, string) {
	t.Helper()
	dir := t.TempDir()
	blobDir := filepath.Join(dir, "blobs")

	return func(ctx context.Context) (*App, error) {
		b, err := store.OpenFile(filepath.Join(dir, "db.json"), "2026-10-19")
		if err != nil {
			return nil, err
		}
		return &App{
			Config: &config.Config{
				Store:  config.StoreConfig{Driver: "file"},
				Backup: config.BackupConfig{Prefix: "backups"},
			},
			Backend: b,
			Repo:    repository.NewSections(b),
			Blobs:   blob.NewLocalStore(blobDir),
			Clock:   timezone.FixedClock{T: time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)},
		}, nil
	}, dir
}

func run(t *testing.T, open Opener, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd(open)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestInit(t *testing.T) {
	open, _ := testOpener(t)
	out, err := run(t, open, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "2 tenants")
}

func TestTenants_CreateListDisable(t *testing.T) {
	open, _ := testOpener(t)

	out, err := run(t, open, "tenants", "create", "--name", "Nova", "--email", "nova@barbearia.com", "--password", "segredo1")
	require.NoError(t, err)
	assert.Contains(t, out, "nova@barbearia.com")

	_, err = run(t, open, "tenants", "create", "--name", "Outra", "--email", "nova@barbearia.com", "--password", "segredo1")
	assert.Error(t, err)

	out, err = run(t, open, "tenants", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "nova@barbearia.com")
	assert.Contains(t, out, store.DemoTenantID)

	out, err = run(t, open, "tenants", "set-active", store.DemoTenantID, "--active=false")
	require.NoError(t, err)
	assert.Contains(t, out, "active=false")

	_, err = run(t, open, "tenants", "set-active", store.AdminTenantID, "--active=false")
	assert.Error(t, err)
}

func TestSummary(t *testing.T) {
	open, _ := testOpener(t)
	out, err := run(t, open, "summary", "--month", "2026-10")
	require.NoError(t, err)
	assert.Contains(t, out, "month 2026-10")
	assert.Contains(t, out, "TOTAL")

	_, err = run(t, open, "summary", "--month", "outubro")
	assert.Error(t, err)
}

func TestBackup(t *testing.T) {
	open, dir := testOpener(t)
	out, err := run(t, open, "backup")
	require.NoError(t, err)
	assert.Contains(t, out, "backups/")

	entries, err := os.ReadDir(filepath.Join(dir, "blobs", "backups"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestImportLegacy(t *testing.T) {
	open, dir := testOpener(t)
	src := filepath.Join(dir, "old.json")
	require.NoError(t, os.WriteFile(src, []byte(`{
	  "barbearias": {"antiga": {"nome": "Antiga", "email": "antiga@x.com", "senha_hash": "", "plano": "pro", "ativo": true}},
	  "clientes": {"antiga": [{"id": "c1", "nome": "Ana"}]}
	}`), 0o644))

	out, err := run(t, open, "import-legacy", src, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "tenants=1 clients=1")
	assert.NotContains(t, out, "import done")

	out, err = run(t, open, "import-legacy", src)
	require.NoError(t, err)
	assert.Contains(t, out, "import done")

	out, err = run(t, open, "tenants", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "antiga@x.com")
}
