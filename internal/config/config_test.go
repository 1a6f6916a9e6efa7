package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/andyle182810/gappwrite/httpclient"
	"github.com/andyle182810/gappwrite/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
log_level: debug
endpoint: https://cloud.example.com/v1
project: main
key: secret-key
timeout: 10s
profiles:
  local:
    endpoint: https://localhost/v1
    project: dev
    self_signed: true
    locale: fr
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "appwrite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(writeConfig(t, "{}"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, config.DefaultProfile, cfg.Profile)
	assert.Equal(t, httpclient.DefaultEndpoint, cfg.Endpoint)
	assert.Equal(t, httpclient.DefaultTimeout, cfg.Timeout)
	assert.Empty(t, cfg.Profiles)
}

func TestLoad_File(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "https://cloud.example.com/v1", cfg.Endpoint)
	assert.Equal(t, 10*time.Second, cfg.Timeout)

	local, err := cfg.Lookup("local")
	require.NoError(t, err)
	assert.Equal(t, config.Profile{
		Endpoint:   "https://localhost/v1",
		Project:    "dev",
		Key:        "",
		JWT:        "",
		Locale:     "fr",
		SelfSigned: true,
		Timeout:    0,
	}, local)

	def, err := cfg.Lookup("")
	require.NoError(t, err)
	assert.Equal(t, "main", def.Project)
	assert.Equal(t, "secret-key", def.Key)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, sampleYAML)

	t.Setenv("APPWRITE_PROJECT", "from-env")
	t.Setenv("APPWRITE_SELF_SIGNED", "true")
	t.Setenv("APPWRITE_PROFILE", "local")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Project)
	assert.True(t, cfg.SelfSigned)
	assert.Equal(t, "local", cfg.Profile)
	assert.Equal(t, "secret-key", cfg.Key)
}

func TestLoad_ConfigPathFromEnvironment(t *testing.T) {
	t.Setenv(config.EnvConfigPath, writeConfig(t, sampleYAML))

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "main", cfg.Project)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "invalid endpoint", content: "endpoint: not a url"},
		{name: "invalid profile endpoint", content: "profiles:\n  bad:\n    endpoint: nope"},
		{name: "unknown selected profile", content: "profile: staging"},
		{name: "negative rate limit", content: "rate_limit: -1"},
		{name: "malformed yaml", content: "endpoint: [unclosed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.Load(writeConfig(t, tt.content))
			require.Error(t, err)
		})
	}

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestConfig_LookupUnknown(t *testing.T) {
	t.Parallel()

	_, err := config.Default().Lookup("staging")
	require.ErrorIs(t, err, config.ErrUnknownProfile)
}

func TestConfig_Registry(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(writeConfig(t, sampleYAML+"profile: local\nrate_limit: 5\n"))
	require.NoError(t, err)

	registry, err := cfg.Registry()
	require.NoError(t, err)

	assert.Equal(t, []string{"default", "local"}, registry.Names())
	assert.Equal(t, "local", registry.DefaultName())

	local := registry.Client("local")
	assert.Equal(t, "https://localhost/v1", local.Endpoint())
	assert.True(t, local.SelfSigned())
	assert.Equal(t, "dev", local.Config()["project"])
	assert.Equal(t, "fr", local.Config()["locale"])

	def := registry.Client(config.DefaultProfile)
	assert.False(t, def.SelfSigned())
	assert.Equal(t, "main", def.Config()["project"])
	assert.Equal(t, "secret-key", def.Config()["key"])
	assert.Equal(t, "secret-key", def.Headers()[httpclient.HeaderKey])
}
