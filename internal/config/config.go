// Package config loads and persists holocron settings.
//
// Values are resolved in increasing precedence: built-in defaults, the YAML
// file at ~/.holocron/config.yaml (or $HOLOCRON_HOME/config.yaml), HOLOCRON_*
// environment variables, and finally CLI flags applied by the caller.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rshade/holocron/internal/pagination"
	"github.com/rshade/holocron/internal/swapi"
)

// Output formats accepted by the search command.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

const configFileName = "config.yaml"

// Validation errors.
var (
	ErrInvalidBaseURL = errors.New("api.base_url must be an absolute http(s) URL")
	ErrInvalidTimeout = errors.New("api.timeout must be > 0")
	ErrInvalidFormat  = errors.New("output.default_format must be one of table, json, yaml")
)

// Config is the root configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Search  SearchConfig  `yaml:"search"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`

	configPath string
}

// APIConfig configures the SWAPI client.
type APIConfig struct {
	BaseURL   string        `yaml:"base_url"   env:"HOLOCRON_API_BASE_URL"`
	Timeout   time.Duration `yaml:"timeout"    env:"HOLOCRON_API_TIMEOUT"`
	UserAgent string        `yaml:"user_agent" env:"HOLOCRON_API_USER_AGENT"`
}

// SearchConfig holds search defaults.
type SearchConfig struct {
	DefaultPageSize int `yaml:"default_page_size" env:"HOLOCRON_PAGE_SIZE"`
}

// OutputConfig holds rendering defaults for non-interactive output.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" env:"HOLOCRON_OUTPUT_FORMAT"`
}

// LoggingConfig mirrors logging.Config in file form.
type LoggingConfig struct {
	Level  string `yaml:"level"  env:"HOLOCRON_LOG_LEVEL"`
	Format string `yaml:"format" env:"HOLOCRON_LOG_FORMAT"`
	File   string `yaml:"file"   env:"HOLOCRON_LOG_FILE"`
}

// Default returns the built-in configuration without touching disk.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:   swapi.DefaultBaseURL,
			Timeout:   swapi.DefaultTimeout,
			UserAgent: swapi.DefaultUserAgent,
		},
		Search: SearchConfig{DefaultPageSize: pagination.DefaultPageSize},
		Output: OutputConfig{DefaultFormat: FormatTable},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "json",
		},
	}
}

// New returns the defaults overlaid with the config file, if present, and
// the environment. Load errors are swallowed; use Load to see them.
func New() *Config {
	cfg, err := Load("")
	if err != nil {
		cfg = Default()
		if path, pathErr := DefaultConfigPath(); pathErr == nil {
			cfg.configPath = path
		}
	}
	return cfg
}

// Load reads the configuration from path (the default path when empty),
// then applies environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile is Load without environment overrides. Use it when the result is
// going to be saved back to disk.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := Default()
	cfg.configPath = path

	if _, err := os.Stat(path); err == nil {
		if mergeErr := ShallowMergeYAML(cfg, path); mergeErr != nil {
			return nil, mergeErr
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("cannot access config path %s: %w", path, err)
	}
	return cfg, nil
}

// ConfigPath returns the file this configuration is read from and saved to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes the file Save writes to.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Save writes the configuration as YAML, creating the directory if needed.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path is not set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", c.configPath, err)
	}
	return nil
}

// Validate checks every section and returns all problems joined.
func (c *Config) Validate() error {
	var errs []error

	u, err := url.Parse(c.API.BaseURL)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.API.BaseURL))
	}
	if c.API.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: got %s", ErrInvalidTimeout, c.API.Timeout))
	}
	if !pagination.IsValidPageSize(c.Search.DefaultPageSize) {
		errs = append(errs, fmt.Errorf("search.default_page_size: %w: got %d",
			pagination.ErrInvalidPageSize, c.Search.DefaultPageSize))
	}
	if !IsValidFormat(c.Output.DefaultFormat) {
		errs = append(errs, fmt.Errorf("%w: got %q", ErrInvalidFormat, c.Output.DefaultFormat))
	}

	return errors.Join(errs...)
}

// IsValidFormat reports whether format is a supported output format.
func IsValidFormat(format string) bool {
	switch format {
	case FormatTable, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// DefaultConfigPath returns the path of the config file in the config dir.
func DefaultConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}
