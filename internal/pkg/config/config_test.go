package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, "inventory.db", cfg.Store.Path)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "stderr", cfg.Log.Output)
	assert.Empty(t, cfg.Receipt.Dir)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "freshmart.toml")
	content := `
[store]
driver = "sqlite"
path = "/var/lib/freshmart/shop.db"

[log]
level = "debug"

[receipt]
dir = "/tmp/receipts"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/freshmart/shop.db", cfg.Store.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "/tmp/receipts", cfg.Receipt.Dir)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "freshmart.toml")
	require.NoError(t, os.WriteFile(path, []byte("[store]\npath = \"file.db\"\n"), 0o644))
	t.Setenv("FRESHMART_STORE_PATH", "env.db")
	t.Setenv("FRESHMART_STORE_DRIVER", "SPANNER")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env.db", cfg.Store.Path)
	assert.Equal(t, DriverSpanner, cfg.Store.Driver)
}

func TestLoad_BrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "freshmart.toml")
	require.NoError(t, os.WriteFile(path, []byte("[store\npath ="), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		store   StoreConfig
		wantErr bool
	}{
		{"sqlite ok", StoreConfig{Driver: DriverSQLite, Path: "a.db"}, false},
		{"sqlite without path", StoreConfig{Driver: DriverSQLite}, true},
		{"spanner ok", StoreConfig{Driver: DriverSpanner, SpannerDatabase: "projects/p/instances/i/databases/d"}, false},
		{"spanner without database", StoreConfig{Driver: DriverSpanner}, true},
		{"unknown driver", StoreConfig{Driver: "mysql", Path: "a.db"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Store: tt.store}
			if tt.wantErr {
				assert.Error(t, cfg.Validate())
			} else {
				assert.NoError(t, cfg.Validate())
			}
		})
	}
}
