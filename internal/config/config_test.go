package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/plantdeck/internal/catalog"
)

// isolate points the default config dir at a temp dir and clears env overrides
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	for _, env := range []string{
		"PLANTDECK_API_KEY", "PLANTDECK_API_BASE_URL", "PLANTDECK_API_HOST",
		"PLANTDECK_API_TIMEOUT", "PLANTDECK_LOG_LEVEL", "PLANTDECK_LOG_FILE",
		"PLANTDECK_UI_ALT_SCREEN", FallbackKeyEnv,
	} {
		t.Setenv(env, "")
	}
	return dir
}

func writeFile(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "plantdeck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := NewLoader("").Load()

	require.NoError(t, err)
	assert.Equal(t, catalog.DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, catalog.DefaultHost, cfg.API.Host)
	assert.Equal(t, time.Duration(0), cfg.API.Timeout)
	assert.Empty(t, cfg.API.Key)
	assert.Empty(t, cfg.Log.Level)
	assert.True(t, cfg.UI.AltScreen)
	assert.False(t, cfg.HasAPIKey())
}

func TestLoad_File(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, `
api:
  base_url: http://localhost:8080/
  key: file-key
  timeout: 5s
log:
  level: debug
ui:
  alt_screen: false
`)

	loader := NewLoader(path)
	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL, "trailing slash trimmed")
	assert.Equal(t, catalog.DefaultHost, cfg.API.Host)
	assert.Equal(t, "file-key", cfg.API.Key)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.UI.AltScreen)
	assert.Equal(t, path, loader.ConfigFileUsed())
}

func TestLoad_DefaultPathFile(t *testing.T) {
	dir := isolate(t)
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only applies on linux")
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, appName), 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, appName, configFile), []byte("api:\n  key: xdg-key\n"), 0600))

	cfg, err := NewLoader("").Load()

	require.NoError(t, err)
	assert.Equal(t, "xdg-key", cfg.API.Key)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "api:\n  key: file-key\n  host: file.host\n")
	t.Setenv("PLANTDECK_API_KEY", "env-key")
	t.Setenv("PLANTDECK_API_TIMEOUT", "250ms")

	cfg, err := NewLoader(path).Load()

	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.API.Key)
	assert.Equal(t, "file.host", cfg.API.Host)
	assert.Equal(t, 250*time.Millisecond, cfg.API.Timeout)
}

func TestLoad_RapidAPIKeyFallback(t *testing.T) {
	isolate(t)
	t.Setenv(FallbackKeyEnv, "rapid-key")

	cfg, err := NewLoader("").Load()
	require.NoError(t, err)
	assert.Equal(t, "rapid-key", cfg.API.Key)

	t.Setenv("PLANTDECK_API_KEY", "own-key")
	cfg, err = NewLoader("").Load()
	require.NoError(t, err)
	assert.Equal(t, "own-key", cfg.API.Key, "PLANTDECK_API_KEY wins over the fallback")
}

func TestLoad_FlagsOverrideEverything(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "api:\n  key: file-key\n")
	t.Setenv("PLANTDECK_API_KEY", "env-key")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("api-key", "", "")
	flags.String("base-url", "", "")
	require.NoError(t, flags.Parse([]string{"--api-key", "flag-key"}))

	loader := NewLoader(path)
	require.NoError(t, loader.BindFlag(KeyAPIKey, flags.Lookup("api-key")))
	require.NoError(t, loader.BindFlag(KeyBaseURL, flags.Lookup("base-url")))
	require.NoError(t, loader.BindFlag(KeyHost, nil))

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "flag-key", cfg.API.Key)
	assert.Equal(t, catalog.DefaultBaseURL, cfg.API.BaseURL, "unchanged flag does not override")
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	dir := isolate(t)

	_, err := NewLoader(filepath.Join(dir, "nope.yaml")).Load()

	assert.Error(t, err)
}

func TestLoad_InvalidFile(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "api: [not, a, map\n")

	_, err := NewLoader(path).Load()

	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"relative url", func(c *Config) { c.API.BaseURL = "/api" }, KeyBaseURL},
		{"ftp url", func(c *Config) { c.API.BaseURL = "ftp://example.com" }, KeyBaseURL},
		{"empty host", func(c *Config) { c.API.Host = "" }, KeyHost},
		{"negative timeout", func(c *Config) { c.API.Timeout = -time.Second }, KeyTimeout},
		{"missing key allowed", func(c *Config) { c.API.Key = "" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRequestConfig(t *testing.T) {
	cfg := Default()
	cfg.API.Key = "secret"
	cfg.API.Timeout = 3 * time.Second

	rc := cfg.RequestConfig()

	assert.Equal(t, catalog.RequestConfig{
		BaseURL: catalog.DefaultBaseURL,
		APIKey:  "secret",
		Host:    catalog.DefaultHost,
		Timeout: 3 * time.Second,
	}, rc)
}

func TestMaskKey(t *testing.T) {
	assert.Equal(t, "", MaskKey(""))
	assert.Equal(t, "***", MaskKey("abc"))
	assert.Equal(t, "********6789", MaskKey("0123456789"))

	cfg := Default()
	cfg.API.Key = "0123456789"
	masked := cfg.Masked()
	assert.Equal(t, "********6789", masked.API.Key)
	assert.Equal(t, "0123456789", cfg.API.Key, "original untouched")
}

func TestGetConfigPath(t *testing.T) {
	dir := isolate(t)

	path, err := GetConfigPath()

	require.NoError(t, err)
	assert.Equal(t, configFile, filepath.Base(path))
	assert.Contains(t, path, appName)
	if runtime.GOOS == "linux" {
		assert.Equal(t, filepath.Join(dir, appName, configFile), path)
	}
}

func TestWriteDefault(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "nested", "config.yaml")

	written, err := WriteDefault(path, false)
	require.NoError(t, err)
	assert.Equal(t, path, written)

	info, err := os.Stat(path)
	require.NoError(t, err)
	if runtime.GOOS != "windows" {
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# plantdeck configuration"))
	assert.Contains(t, string(data), "base_url: "+catalog.DefaultBaseURL)

	// The written file loads back to the defaults
	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)

	_, err = WriteDefault(path, false)
	assert.ErrorIs(t, err, ErrConfigExists)

	_, err = WriteDefault(path, true)
	assert.NoError(t, err)
}
