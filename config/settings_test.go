package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 24*time.Hour, s.TokenTTL)
	assert.Equal(t, "/login", s.LoginPath)
	assert.Equal(t, "order-events", s.Kafka.OrdersTopic)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
http_addr: ":9000"
public_base_url: "https://cafe.example.com"
token_ttl: 12h
postgres:
  host: db.internal
  port: "6543"
redis:
  host: cache.internal
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("DB_HOST", "db.override")
	t.Setenv("CART_TTL", "30m")

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", s.HTTPAddr)
	assert.Equal(t, "https://cafe.example.com", s.PublicBaseURL)
	assert.Equal(t, 12*time.Hour, s.TokenTTL)
	assert.Equal(t, 30*time.Minute, s.CartTTL)
	assert.Equal(t, "db.override", s.Postgres.Host)
	assert.Equal(t, "6543", s.Postgres.Port)
	assert.Equal(t, "cache.internal", s.Redis.Host)
	assert.Equal(t, "6379", s.Redis.Port)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
	}{
		{
			name: "missing file",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "nope.yaml")
			},
		},
		{
			name: "bad yaml",
			setup: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "bad.yaml")
				require.NoError(t, os.WriteFile(path, []byte("http_addr: [unterminated"), 0o600))
				return path
			},
		},
		{
			name: "bad duration env",
			setup: func(t *testing.T) string {
				t.Setenv("TOKEN_TTL", "forever")
				return ""
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := Load(testCase.setup(t))
			assert.Error(t, err)
		})
	}
}

func TestPostgresDSN(t *testing.T) {
	p := Postgres{Host: "h", Port: "1", Name: "n", User: "u", Password: "p"}
	assert.Equal(t, "host=h port=1 user=u password=p dbname=n sslmode=disable", p.DSN())
}
