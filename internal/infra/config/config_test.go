package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultsValidate(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, ":8080", cfg.HTTP.Address)
	require.Empty(t, cfg.LLM.APIKey, "missing llm credential must be a valid default")
	require.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
}

func TestLoadFromFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  address: ":9090"
airQuality:
  timeout: 3s
llm:
  model: gpt-test
`), 0o644))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("HTTP_ADDRESS", ":7070")
	t.Setenv("LLM_API_KEY", "sk-test")
	t.Setenv("AIR_QUALITY_TIMEOUT", "2s")

	cfg, err := Load()
	require.NoError(t, err)
	// Env wins over file, file wins over defaults.
	require.Equal(t, ":7070", cfg.HTTP.Address)
	require.Equal(t, "sk-test", cfg.LLM.APIKey)
	require.Equal(t, "gpt-test", cfg.LLM.Model)
	require.Equal(t, 2*time.Second, cfg.AirQuality.Timeout)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := defaultConfig()
	cfg.AirQuality.Timeout = 0
	require.Error(t, cfg.Validate())

	cfg = defaultConfig()
	cfg.Chat.Prompt = ""
	require.Error(t, cfg.Validate())

	cfg = defaultConfig()
	cfg.HTTP.RateLimit.RequestsPerMinute = 0
	require.Error(t, cfg.Validate())
}
