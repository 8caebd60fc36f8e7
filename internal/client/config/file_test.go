package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseFile_JSON(t *testing.T) {
	path := writeTemp(t, "cfg.json", `{
		"server_url": "https://notes.example.com/api/v1",
		"request_timeout": "15s",
		"online_check_interval": 2000000000,
		"verbose": true
	}`)

	cfg := &Config{DatabasePath: "keep.db"}
	require.NoError(t, parseFile(cfg, []string{"-config", path}))

	assert.Equal(t, "https://notes.example.com/api/v1", cfg.ServerURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.OnlineCheckInterval)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "keep.db", cfg.DatabasePath, "absent keys leave values alone")
}

func TestParseFile_YAML(t *testing.T) {
	path := writeTemp(t, "cfg.yml", "server_url: http://10.0.0.2:8000/api/v1\nrequest_timeout: 1m\ndatabase_path: /var/lib/scripto.db\n")

	cfg := &Config{OnlineCheckInterval: 42 * time.Second}
	require.NoError(t, parseFile(cfg, []string{"-c", path}))

	assert.Equal(t, "http://10.0.0.2:8000/api/v1", cfg.ServerURL)
	assert.Equal(t, time.Minute, cfg.RequestTimeout)
	assert.Equal(t, "/var/lib/scripto.db", cfg.DatabasePath)
	assert.Equal(t, 42*time.Second, cfg.OnlineCheckInterval)
}

func TestParseFile_NoFlag(t *testing.T) {
	cfg := &Config{ServerURL: "http://defaults:1234"}
	require.NoError(t, parseFile(cfg, []string{"-a", "http://x"}))
	assert.Equal(t, "http://defaults:1234", cfg.ServerURL)
}

func TestParseFile_Errors(t *testing.T) {
	bad := writeTemp(t, "bad.json", `{ this is not valid json`)
	assert.Error(t, parseFile(&Config{}, []string{"-c", bad}))

	badYAML := writeTemp(t, "bad.yaml", "request_timeout: soon\n")
	assert.Error(t, parseFile(&Config{}, []string{"-c", badYAML}))

	assert.Error(t, parseFile(&Config{}, []string{"-c", filepath.Join(t.TempDir(), "missing.json")}))
}

func TestLoad_Precedence(t *testing.T) {
	path := writeTemp(t, "cfg.yaml", "server_url: http://from-file/api/v1\nonline_check_interval: 7s\n")

	cfg, err := Load([]string{"-c", path, "-a", "http://from-flag/api/v1"})
	require.NoError(t, err)

	assert.Equal(t, "http://from-flag/api/v1", cfg.ServerURL, "flags override the file")
	assert.Equal(t, 7*time.Second, cfg.OnlineCheckInterval, "file overrides defaults")
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}
