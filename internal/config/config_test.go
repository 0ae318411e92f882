package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("AUTH_ADMIN_USER", "admin")
	t.Setenv("AUTH_TOKEN_DURATION", "45m")
	t.Setenv("STORAGE_DB_DATABASE_URI", "portal.db")
	t.Setenv("GATEWAY_ADDRESS", "http://localhost:9999")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "admin", cfg.Auth.AdminUser)
	assert.Equal(t, 45*time.Minute, cfg.Auth.TokenDuration)
	assert.Equal(t, "portal.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "http://localhost:9999", cfg.Gateway.HTTPAddress)
}

func TestParseJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{
		"auth": {"admin_user": "root", "token_duration": "2h"},
		"storage": {"db": {"dsn": "postgres://localhost/portal"}},
		"server": {"http_address": "0.0.0.0:8081", "request_timeout": "20s"},
		"gateway": {"http_address": "http://backend:8081"},
		"workers": {"refresh_interval": "10m"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "root", cfg.Auth.AdminUser)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, "postgres://localhost/portal", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://backend:8081", cfg.Gateway.HTTPAddress)
	assert.Equal(t, 10*time.Minute, cfg.Workers.RefreshInterval)
}

func TestParseJSON_FileMissing(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		want    string
	}{
		{name: "localhost with port", input: "localhost:8080", want: "localhost:8080"},
		{name: "ip with port", input: "127.0.0.1:9090", want: "127.0.0.1:9090"},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "bad port", input: "localhost:abc", wantErr: true},
		{name: "negative port", input: "localhost:-1", wantErr: true},
		{name: "bad host", input: "not-an-ip:8080", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, defaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, defaultRefreshInterval, cfg.Workers.RefreshInterval)
	assert.Equal(t, "govportal", cfg.Auth.TokenIssuer)
	assert.NotEmpty(t, cfg.Storage.Files.PublicBaseURL)

	// explicit values survive
	cfg2 := &StructuredConfig{Server: Server{HTTPAddress: "h:1"}}
	cfg2.applyDefaults()
	assert.Equal(t, "h:1", cfg2.Server.HTTPAddress)
}
