package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 8080
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[database]
host = "localhost"
port = 5432
user = "hotel"
password = "secret"
dbname = "hotel_booking"
sslmode = "disable"
max_open_conns = 25
max_idle_conns = 5
conn_max_lifetime = 300

[logs]
file = "logs/service.log"
level = "info"

[metrics]
enabled = true
path = "/metrics"
service_name = "hotel-booking-service"

[mailer]
enabled = true
url = "http://localhost:8090"
timeout = 5
`

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeTempConfig(t, sampleConfig))

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "hotel_booking", cfg.Database.DBName)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "http://localhost:8090", cfg.Mailer.URL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("does-not-exist.toml")
	require.Error(t, err)
}

func TestDSN(t *testing.T) {
	cfg, err := Load(writeTempConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t,
		"host=localhost port=5432 user=hotel password=secret dbname=hotel_booking sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s string) string
	}{
		{
			name:   "нулевой порт",
			mutate: func(s string) string { return strings.Replace(s, "http_port = 8080", "http_port = 0", 1) },
		},
		{
			name:   "пустой host",
			mutate: func(s string) string { return strings.Replace(s, `host = "localhost"`, `host = ""`, 1) },
		},
		{
			name:   "метрики без пути",
			mutate: func(s string) string { return strings.Replace(s, `path = "/metrics"`, `path = ""`, 1) },
		},
		{
			name:   "mailer без url",
			mutate: func(s string) string { return strings.Replace(s, `url = "http://localhost:8090"`, `url = ""`, 1) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeTempConfig(t, tt.mutate(sampleConfig)))
			require.Error(t, err)
		})
	}
}
