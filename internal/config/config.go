// Package config provides configuration loading and validation for the service and CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/jonathan/interview-mailer/internal/llm"
	"github.com/spf13/viper"
)

// Config is the full service configuration.
// Values come from defaults, then an optional config file, then environment variables.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	LLM    LLMConfig    `mapstructure:"llm"`
	Log    LogConfig    `mapstructure:"log"`
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// LLMConfig holds the model service connection settings
type LLMConfig struct {
	Provider   string        `mapstructure:"provider"`    // azure, openai or gemini
	APIKey     string        `mapstructure:"api_key"`     // never hard-coded
	Endpoint   string        `mapstructure:"endpoint"`    // Azure resource URL or OpenAI-compatible base URL
	APIVersion string        `mapstructure:"api_version"` // Azure only
	Model      string        `mapstructure:"model"`       // deployment or model id
	Timeout    time.Duration `mapstructure:"timeout"`     // per model call
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Defaults
const (
	DefaultPort      = 8000
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// Load reads configuration. path may be empty, in which case only defaults and the
// environment are used. A .env file in the working directory is loaded first if present.
func Load(path string) (*Config, error) {
	loadEnvFile(".env")

	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultPort)

	v.SetDefault("llm.provider", string(llm.ProviderAzure))
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.endpoint", "")
	v.SetDefault("llm.api_version", llm.DefaultAPIVersion)
	v.SetDefault("llm.model", llm.DefaultModel)
	v.SetDefault("llm.timeout", llm.DefaultTimeout)

	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
}

// loadEnvFile loads variables from path without overriding ones already set.
func loadEnvFile(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	_ = godotenv.Load(path)
}

// Validate checks value ranges. Model credentials are checked by ModelConfig().Validate
// so commands that never call the model can still start.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config error: 'server.port' must be between 1 and 65535")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config error: unknown log level %q", c.Log.Level)
	}

	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("config error: unknown log format %q", c.Log.Format)
	}

	if c.LLM.Timeout < 0 {
		return errors.New("config error: 'llm.timeout' must be non-negative")
	}

	return nil
}

// ModelConfig converts the llm section into the client configuration.
func (c *Config) ModelConfig() *llm.Config {
	return &llm.Config{
		Provider:   llm.Provider(c.LLM.Provider),
		APIKey:     c.LLM.APIKey,
		Endpoint:   c.LLM.Endpoint,
		APIVersion: c.LLM.APIVersion,
		Model:      c.LLM.Model,
		Timeout:    c.LLM.Timeout,
	}
}
