package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8000", c.APIBaseURL)
	assert.Equal(t, "http://localhost:5173", c.AppOrigin)
	assert.Equal(t, "poleforge.db", c.DatabaseDSN)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}

func TestParseEnv_OverridesDefaults(t *testing.T) {
	t.Setenv("POLEFORGE_API_BASE_URL", "https://api.poleforge.example")
	t.Setenv("POLEFORGE_REQUEST_TIMEOUT", "30s")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "https://api.poleforge.example", c.APIBaseURL)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.Equal(t, "http://localhost:5173", c.AppOrigin, "unset vars leave values untouched")
}

func TestParseJson_OverlaysOnlyPresentFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")

	raw, err := json.Marshal(map[string]any{
		"api_base_url":    "https://json.poleforge.example",
		"request_timeout": "45s",
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	origArgs := os.Args
	os.Args = []string{"client", "-c", path}
	t.Cleanup(func() { os.Args = origArgs })

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "https://json.poleforge.example", c.APIBaseURL)
	assert.Equal(t, 45*time.Second, c.RequestTimeout)
	assert.Equal(t, "poleforge.db", c.DatabaseDSN, "absent fields keep their defaults")
}

func TestParseFlags_OverridesDefaults(t *testing.T) {
	origArgs := os.Args
	os.Args = []string{"client", "-a", "https://flag.poleforge.example", "-t", "60"}
	t.Cleanup(func() { os.Args = origArgs })

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, "https://flag.poleforge.example", c.APIBaseURL)
	assert.Equal(t, 60*time.Second, c.RequestTimeout)
}

func TestLoadConfig_FlagBeatsEnv(t *testing.T) {
	t.Setenv("POLEFORGE_API_BASE_URL", "https://env.poleforge.example")

	origArgs := os.Args
	os.Args = []string{"client", "-a", "https://flag.poleforge.example"}
	t.Cleanup(func() { os.Args = origArgs })

	cfg := LoadConfig()
	assert.Equal(t, "https://flag.poleforge.example", cfg.APIBaseURL)
}
