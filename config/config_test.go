package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := Parse(env.Options{Environment: map[string]string{}})
	require.NoError(t, err)

	assert.Equal(t, DriverFile, cfg.Store.Driver)
	assert.Equal(t, "partsledger.json", cfg.Store.DSN)
	assert.Equal(t, "INR", cfg.Ledger.Currency)
	assert.Equal(t, int64(5), cfg.Ledger.LowStockThreshold)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "@every 1h", cfg.Server.LowStockSchedule)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		environ map[string]string
		check   func(t *testing.T, cfg *Config)
		wantErr bool
	}{
		{
			name: "sqlite store",
			environ: map[string]string{
				"PARTSLEDGER_STORE_DRIVER":        "sqlite",
				"PARTSLEDGER_STORE_DSN":           "/tmp/pl.db",
				"PARTSLEDGER_LOW_STOCK_THRESHOLD": "10",
				"LOG_LEVEL":                       "debug",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DriverSQLite, cfg.Store.Driver)
				assert.Equal(t, "/tmp/pl.db", cfg.Store.DSN)
				assert.Equal(t, int64(10), cfg.Ledger.LowStockThreshold)
				assert.Equal(t, "debug", cfg.Logger.Level)
			},
		},
		{
			name:    "unknown driver",
			environ: map[string]string{"PARTSLEDGER_STORE_DRIVER": "redis"},
			wantErr: true,
		},
		{
			name:    "negative threshold",
			environ: map[string]string{"PARTSLEDGER_LOW_STOCK_THRESHOLD": "-1"},
			wantErr: true,
		},
		{
			name:    "not a number",
			environ: map[string]string{"PARTSLEDGER_LOW_STOCK_THRESHOLD": "five"},
			wantErr: true,
		},
		{
			name:    "bad schedule",
			environ: map[string]string{"PARTSLEDGER_LOW_STOCK_SCHEDULE": "every tuesday"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := Parse(env.Options{Environment: tt.environ})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("PARTSLEDGER_CURRENCY=EUR\n"), 0o644))
	t.Setenv("PARTSLEDGER_CURRENCY", "") // restored after the test
	require.NoError(t, os.Unsetenv("PARTSLEDGER_CURRENCY"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "EUR", cfg.Ledger.Currency)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}
