package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_MissingFileUsesDefaults verifies an absent config file is not an
// error; defaults plus env apply.
func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8090", cfg.Primary.Endpoint)
	assert.Equal(t, "http://localhost:8091", cfg.Signals.Endpoint)
	assert.False(t, cfg.SkipConfirm)
}

// TestLoad_FileOverridesDefaults verifies YAML values replace the built-in
// defaults.
func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
primary:
  endpoint: https://store.example.com
  timeoutMs: 9000
actorId: petra
journalPath: /tmp/j.db
skipConfirm: true
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://store.example.com", cfg.Primary.Endpoint)
	assert.Equal(t, 9000, cfg.Primary.TimeoutMs)
	assert.Equal(t, "petra", cfg.ActorID)
	assert.Equal(t, "/tmp/j.db", cfg.JournalPath)
	assert.True(t, cfg.SkipConfirm)

	// Sections absent from the file keep their defaults.
	assert.Equal(t, "http://localhost:8091", cfg.Signals.Endpoint)
}

// TestLoad_EnvOverridesFile verifies NORTHSTAR_* variables win over the file.
func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("actorId: petra\ntoken: filetoken\n"), 0644))

	t.Setenv("NORTHSTAR_ACTOR", "sol")
	t.Setenv("NORTHSTAR_TOKEN", "envtoken")
	t.Setenv("NORTHSTAR_SKIP_CONFIRM", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "sol", cfg.ActorID)
	assert.Equal(t, "envtoken", cfg.Token)
	assert.True(t, cfg.SkipConfirm)
}

// TestLoad_MalformedYAMLFails verifies parse errors are reported rather than
// silently ignored.
func TestLoad_MalformedYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("primary: [not a mapping"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

// TestGatewayConversions verifies the settings map onto gateway configs
// unchanged.
func TestGatewayConversions(t *testing.T) {
	cfg := Config{
		Primary: GatewaySettings{Endpoint: "http://a", TimeoutMs: 100},
		Signals: GatewaySettings{Endpoint: "http://b", TimeoutMs: 200},
	}

	assert.Equal(t, "http://a", cfg.PrimaryGateway().Endpoint)
	assert.Equal(t, 100, cfg.PrimaryGateway().TimeoutMs)
	assert.Equal(t, "http://b", cfg.SignalGateway().Endpoint)
	assert.Equal(t, 200, cfg.SignalGateway().TimeoutMs)
}
