package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoad_Defaults(t *testing.T) {
	cfg, rest, err := Load([]string{"status"}, envFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, []string{"status"}, rest)
	assert.Equal(t, StoreBolt, cfg.StoreDriver)
	assert.Equal(t, TransportHTTP, cfg.Transport)
	assert.Equal(t, 4, cfg.SyncConcurrency)
	assert.Equal(t, 5, cfg.MaxAttempts)
	assert.Equal(t, 500*time.Millisecond, cfg.BaseBackoff)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docsync.yaml")
	yamlData := `
data_path: /tmp/from-yaml.db
transport: socket
owner: alice
max_attempts: 7
base_backoff: 1s
max_backoff: 1m
sqs:
  region: eu-west-1
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(yamlData), 0600))

	env := envFrom(map[string]string{
		"DOCSYNC_OWNER":        "bob",
		"DOCSYNC_MAX_ATTEMPTS": "9",
	})

	cfg, _, err := Load([]string{"-config", path, "-max-attempts", "3", "pull"}, env)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/from-yaml.db", cfg.DataPath, "из YAML")
	assert.Equal(t, TransportSocket, cfg.Transport, "из YAML")
	assert.Equal(t, "bob", cfg.Owner, "env перекрывает YAML")
	assert.Equal(t, 3, cfg.MaxAttempts, "флаг перекрывает env")
	assert.Equal(t, time.Second, cfg.BaseBackoff)
	assert.Equal(t, time.Minute, cfg.MaxBackoff)
	assert.Equal(t, "eu-west-1", cfg.SQS.Region)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB, "default сохраняется")
}

func TestLoad_ConfigFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store_driver: sqlite\n"), 0600))

	cfg, _, err := Load(nil, envFrom(map[string]string{"DOCSYNC_CONFIG": path}))
	require.NoError(t, err)
	assert.Equal(t, StoreSQLite, cfg.StoreDriver)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{name: "unknown flag", args: []string{"-nope"}},
		{name: "missing file", args: []string{"-config", "/nonexistent/docsync.yaml"}},
		{name: "bad env int", env: map[string]string{"DOCSYNC_MAX_ATTEMPTS": "many"}},
		{name: "bad env duration", env: map[string]string{"DOCSYNC_BASE_BACKOFF": "soon"}},
		{name: "unknown store", args: []string{"-store", "mongo"}},
		{name: "bad backoff", args: []string{"-base-backoff", "1m", "-max-backoff", "1s"}},
		{name: "zero concurrency", args: []string{"-concurrency", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Load(tt.args, envFrom(tt.env))
			assert.Error(t, err)
		})
	}
}

func TestSQLitePath(t *testing.T) {
	cfg := &Config{DataPath: "/var/lib/docsync/state.db"}
	assert.Equal(t, "/var/lib/docsync/state.sqlite", cfg.SQLitePath())
}
