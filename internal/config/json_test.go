package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSONFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_Success(t *testing.T) {
	path := writeJSONFile(t, `{
		"app": {"version": "0.9.0", "log_level": "error"},
		"forms": {"submitter": "remote", "submit_delay": "2s", "navigate_delay": 1000000000, "submit_timeout": "8s", "definitions_dir": "defs"},
		"storage": {"db": {"dsn": "sqlite://forms.db"}},
		"server": {"http_address": ":8081", "request_timeout": "1m"},
		"adapter": {"http_address": "localhost:8081", "request_timeout": "5s"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "0.9.0", cfg.App.Version)
	assert.Equal(t, "error", cfg.App.LogLevel)
	assert.Equal(t, SubmitterRemote, cfg.Forms.Submitter)
	assert.Equal(t, 2*time.Second, cfg.Forms.SubmitDelay)
	assert.Equal(t, time.Second, cfg.Forms.NavigateDelay)
	assert.Equal(t, 8*time.Second, cfg.Forms.SubmitTimeout)
	assert.Equal(t, "defs", cfg.Forms.DefinitionsDir)
	assert.Equal(t, "sqlite://forms.db", cfg.Storage.DB.DSN)
	assert.Equal(t, ":8081", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, "localhost:8081", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	_, err := parseJSON(writeJSONFile(t, `{"app":`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	_, err := parseJSON(writeJSONFile(t, `{"forms": {"submit_delay": "whenever"}}`))
	require.Error(t, err)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	cfg, err := parseJSON(writeJSONFile(t, `{}`))
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := Duration(1500 * time.Millisecond).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1.5s"`, string(data))
}
