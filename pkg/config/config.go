package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashgraph-online/registry-broker-tools-go/pkg/registrybroker"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

const (
	EnvBaseURL  = "REGISTRY_BROKER_BASE_URL"
	EnvAPIKey   = "REGISTRY_BROKER_API_KEY"
	EnvTimeout  = "REGISTRY_BROKER_TIMEOUT"
	EnvLogLevel = "REGISTRY_BROKER_LOG_LEVEL"

	DefaultLogLevel = "info"
)

type Config struct {
	BaseURL  string   `toml:"base_url"`
	APIKey   string   `toml:"api_key"`
	Timeout  Duration `toml:"timeout"`
	LogLevel string   `toml:"log_level"`
}

// Duration decodes TOML strings such as "30s" into a time.Duration.
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

type LoadOptions struct {
	// ConfigFile is an optional TOML file. A missing file is an error only
	// when the path was given explicitly.
	ConfigFile string
	// EnvFiles are .env files loaded before reading the environment. Values
	// already present in the environment are not overwritten.
	EnvFiles []string
	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

func Default() Config {
	return Config{
		BaseURL:  registrybroker.DefaultBaseURL,
		Timeout:  Duration(registrybroker.DefaultHTTPTimeout),
		LogLevel: DefaultLogLevel,
	}
}

func Load(options LoadOptions) (Config, error) {
	cfg := Default()

	if strings.TrimSpace(options.ConfigFile) != "" {
		if err := cfg.mergeFile(options.ConfigFile); err != nil {
			return Config{}, err
		}
	}

	for _, envFile := range options.EnvFiles {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load env file '%s': %w", envFile, err)
		}
	}

	lookup := options.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if err := cfg.mergeEnv(lookup); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var fileConfig Config
	if err := toml.Unmarshal(data, &fileConfig); err != nil {
		return fmt.Errorf("failed to parse TOML: %w", err)
	}
	c.apply(fileConfig)
	return nil
}

func (c *Config) mergeEnv(lookup func(string) (string, bool)) error {
	var envConfig Config
	if value, ok := lookup(EnvBaseURL); ok {
		envConfig.BaseURL = value
	}
	if value, ok := lookup(EnvAPIKey); ok {
		envConfig.APIKey = value
	}
	if value, ok := lookup(EnvLogLevel); ok {
		envConfig.LogLevel = value
	}
	if value, ok := lookup(EnvTimeout); ok && strings.TrimSpace(value) != "" {
		if err := envConfig.Timeout.UnmarshalText([]byte(value)); err != nil {
			return fmt.Errorf("invalid %s: %w", EnvTimeout, err)
		}
	}
	c.apply(envConfig)
	return nil
}

// apply overlays the non-zero fields of other.
func (c *Config) apply(other Config) {
	if strings.TrimSpace(other.BaseURL) != "" {
		c.BaseURL = strings.TrimSpace(other.BaseURL)
	}
	if strings.TrimSpace(other.APIKey) != "" {
		c.APIKey = strings.TrimSpace(other.APIKey)
	}
	if other.Timeout != 0 {
		c.Timeout = other.Timeout
	}
	if strings.TrimSpace(other.LogLevel) != "" {
		c.LogLevel = strings.ToLower(strings.TrimSpace(other.LogLevel))
	}
}

func (c Config) Validate() error {
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	return nil
}

// HTTPTimeout returns the timeout as a time.Duration.
func (c Config) HTTPTimeout() time.Duration {
	return time.Duration(c.Timeout)
}
