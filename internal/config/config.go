package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/muurk/plantdeck/internal/catalog"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "PLANTDECK"

// Configuration keys
const (
	KeyBaseURL   = "api.base_url"
	KeyHost      = "api.host"
	KeyAPIKey    = "api.key"
	KeyTimeout   = "api.timeout"
	KeyLogLevel  = "log.level"
	KeyLogFile   = "log.file"
	KeyAltScreen = "ui.alt_screen"
)

// FallbackKeyEnv is read for the API key when PLANTDECK_API_KEY is unset
const FallbackKeyEnv = "RAPIDAPI_KEY"

// Config is the effective plantdeck configuration
type Config struct {
	API APIConfig `mapstructure:"api" yaml:"api"`
	Log LogConfig `mapstructure:"log" yaml:"log"`
	UI  UIConfig  `mapstructure:"ui" yaml:"ui"`
}

// APIConfig holds the catalog endpoint settings
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url" yaml:"base_url"`
	Host    string        `mapstructure:"host" yaml:"host"`
	Key     string        `mapstructure:"key" yaml:"key"`
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// LogConfig holds logging settings. An empty level disables logging.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

// UIConfig holds interactive browser settings
type UIConfig struct {
	AltScreen bool `mapstructure:"alt_screen" yaml:"alt_screen"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		API: APIConfig{
			BaseURL: catalog.DefaultBaseURL,
			Host:    catalog.DefaultHost,
		},
		UI: UIConfig{AltScreen: true},
	}
}

// Loader resolves a Config from flags, environment, file and defaults
type Loader struct {
	v          *viper.Viper
	configFile string
	explicit   bool
}

// NewLoader prepares a loader. An empty configFile means the default
// path, which may be absent.
func NewLoader(configFile string) *Loader {
	v := viper.New()

	def := Default()
	v.SetDefault(KeyBaseURL, def.API.BaseURL)
	v.SetDefault(KeyHost, def.API.Host)
	v.SetDefault(KeyAPIKey, "")
	v.SetDefault(KeyTimeout, def.API.Timeout)
	v.SetDefault(KeyLogLevel, "")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyAltScreen, def.UI.AltScreen)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv(KeyAPIKey, EnvPrefix+"_API_KEY", FallbackKeyEnv)

	return &Loader{v: v, configFile: configFile, explicit: configFile != ""}
}

// BindFlag lets a command-line flag override key. Unchanged flags do not
// override anything. A nil flag is ignored.
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return nil
	}
	return l.v.BindPFlag(key, flag)
}

// Load reads the config file (if any) and returns the validated config
func (l *Loader) Load() (*Config, error) {
	if err := l.readFile(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	cfg.API.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.API.BaseURL), "/")
	cfg.API.Host = strings.TrimSpace(cfg.API.Host)
	cfg.API.Key = strings.TrimSpace(cfg.API.Key)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ConfigFileUsed returns the file values were read from, or "" when none
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

func (l *Loader) readFile() error {
	path := l.configFile
	if !l.explicit {
		var err error
		path, err = GetConfigPath()
		if err != nil {
			// No home directory: run on env and defaults.
			return nil
		}
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return nil
		}
	}

	l.v.SetConfigFile(path)
	l.v.SetConfigType("yaml")
	if err := l.v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return nil
}

// Validate checks the values the catalog client cannot work without.
// A missing API key is allowed; the API rejects the request instead.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("invalid %s %q: must be an absolute http(s) URL", KeyBaseURL, c.API.BaseURL)
	}
	if c.API.Host == "" {
		return fmt.Errorf("%s must not be empty", KeyHost)
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("%s must not be negative, got %s", KeyTimeout, c.API.Timeout)
	}
	return nil
}

// HasAPIKey reports whether a key is configured
func (c *Config) HasAPIKey() bool {
	return c.API.Key != ""
}

// RequestConfig returns the immutable request configuration for the catalog client
func (c *Config) RequestConfig() catalog.RequestConfig {
	return catalog.RequestConfig{
		BaseURL: c.API.BaseURL,
		APIKey:  c.API.Key,
		Host:    c.API.Host,
		Timeout: c.API.Timeout,
	}
}

// Masked returns a copy safe to print: the API key is reduced to its last
// four characters.
func (c *Config) Masked() Config {
	out := *c
	out.API.Key = MaskKey(c.API.Key)
	return out
}

// MaskKey hides all but the last four characters of key
func MaskKey(key string) string {
	switch {
	case key == "":
		return ""
	case len(key) <= 4:
		return strings.Repeat("*", len(key))
	default:
		return strings.Repeat("*", 8) + key[len(key)-4:]
	}
}
