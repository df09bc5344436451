package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimal = `
[database]
host = "db"
user = "coach"
password = "secret"
dbname = "scheduling"
`

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse(minimal)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, PaymentsTransportNone, cfg.Payments.Transport)
	assert.False(t, cfg.PricingCache.Enabled)
	assert.Equal(t, "host=db port=5432 user=coach password=secret dbname=scheduling sslmode=disable", cfg.Database.DSN())
}

func TestParseFullConfig(t *testing.T) {
	cfg, err := Parse(minimal + `
[server]
http_port = 9090

[metrics]
enabled = true
service_name = "coach"

[pricing_cache]
enabled = true
addr = "redis:6379"
ttl = 60

[payments]
transport = "Kafka"
brokers = "k1:9092,k2:9092"
topic = "payments"
`)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "redis:6379", cfg.PricingCache.Addr)
	assert.Equal(t, 60, cfg.PricingCache.TTL)
	assert.Equal(t, PaymentsTransportKafka, cfg.Payments.Transport)
}

func TestParseRejectsInconsistentSections(t *testing.T) {
	cases := map[string]string{
		"http without url":     "[payments]\ntransport = \"http\"\n",
		"kafka without broker": "[payments]\ntransport = \"kafka\"\n",
		"unknown transport":    "[payments]\ntransport = \"smtp\"\n",
		"cache without addr":   "[pricing_cache]\nenabled = true\n",
		"bad port":             "[server]\nhttp_port = 70000\n",
		"bad metrics path":     "[metrics]\nenabled = true\npath = \"metrics\"\n",
	}
	for name, extra := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(minimal + extra)
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	_, err := Parse("[server]\nhttp_port = 8080\n")
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(minimal), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "scheduling", cfg.Database.DBName)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
