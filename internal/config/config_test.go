package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_Full(t *testing.T) {
	path := writeConfig(t, `
strategy: Round-Robin
log:
  level: DEBUG
  format: JSON
roundRobin:
  pruneRemoved: true
counter:
  backend: redis
  redis:
    addr: redis:6379
    db: 2
    timeout: 250ms
services:
  - name: http
    requestTypes: [http, https]
    destinations:
      - address: 192.168.0.1
        capacity: 12
      - address: 192.168.0.2
        capacity: 20
  - name: grpc
    requestTypes: [grpc]
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "round-robin", cfg.Strategy)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.RoundRobin.PruneRemoved)
	assert.Equal(t, CounterBackendRedis, cfg.Counter.Backend)
	assert.Equal(t, "redis:6379", cfg.Counter.Redis.Addr)
	assert.Equal(t, 2, cfg.Counter.Redis.DB)
	assert.Equal(t, 250*time.Millisecond, cfg.Counter.Redis.Timeout)
	assert.Equal(t, "router:inflight:", cfg.Counter.Redis.KeyPrefix, "default prefix must survive partial redis section")
	require.Len(t, cfg.Services, 2)
	assert.Equal(t, []string{"http", "https"}, cfg.Services[0].RequestTypes)
	assert.Equal(t, int64(20), cfg.Services[0].Destinations[1].Capacity)
	assert.Empty(t, cfg.Services[1].Destinations)
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, `
services:
  - name: http
    requestTypes: [http]
    destinations:
      - address: a
        capacity: 1
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "least-loaded", cfg.Strategy)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, CounterBackendMemory, cfg.Counter.Backend)
	assert.False(t, cfg.RoundRobin.PruneRemoved)
}

func TestLoadConfig_Errors(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{"no services", `strategy: round-robin`},
		{"unknown strategy", `
strategy: random
services: [{name: http, requestTypes: [http]}]`},
		{"duplicate service", `
services:
  - {name: http, requestTypes: [http]}
  - {name: http, requestTypes: [https]}`},
		{"request type bound twice", `
services:
  - {name: a, requestTypes: [http]}
  - {name: b, requestTypes: [http]}`},
		{"no request types", `
services: [{name: http}]`},
		{"zero capacity", `
services:
  - name: http
    requestTypes: [http]
    destinations: [{address: a, capacity: 0}]`},
		{"duplicate address", `
services:
  - name: http
    requestTypes: [http]
    destinations: [{address: a, capacity: 1}, {address: a, capacity: 2}]`},
		{"unknown counter backend", `
counter: {backend: etcd}
services: [{name: http, requestTypes: [http]}]`},
		{"redis without addr", `
counter: {backend: redis, redis: {addr: ""}}
services: [{name: http, requestTypes: [http]}]`},
		{"broken yaml", `services: [`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tc.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Len(t, cfg.Services, 1)
	assert.Equal(t, "http", cfg.Services[0].Name)
	assert.Len(t, cfg.Services[0].Destinations, 3)
}

func TestLoadConfig_SampleMatchesDefault(t *testing.T) {
	conf, err := LoadConfig(filepath.Join("..", "..", "configs", "router.yml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), conf)
}
