package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "http://localhost:5255/api", cfg.API.BaseURL)
	assert.Equal(t, "15s", cfg.API.Timeout)
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.False(t, cfg.Logging.Enabled)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5255/api", cfg.API.BaseURL)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api:
  base_url: http://catalog.internal:8080/api
  timeout: 30s
ui:
  theme: light
logging:
  enabled: true
  level: debug
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://catalog.internal:8080/api", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.TimeoutDuration())
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.True(t, cfg.Logging.Enabled)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api: [not a mapping"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SHELFCTL_API_URL", "http://override:9999/api")
	t.Setenv("SHELFCTL_THEME", "light")
	t.Setenv("SHELFCTL_LOG_DIR", t.TempDir())

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "http://override:9999/api", cfg.API.BaseURL)
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.True(t, cfg.Logging.Enabled, "a log dir override turns logging on")
}

func TestTimeoutDurationFallback(t *testing.T) {
	cases := map[string]time.Duration{
		"45s":     45 * time.Second,
		"":        15 * time.Second,
		"garbage": 15 * time.Second,
		"-5s":     15 * time.Second,
	}
	for in, want := range cases {
		c := APIConfig{Timeout: in}
		assert.Equal(t, want, c.TimeoutDuration(), "timeout %q", in)
	}
}
