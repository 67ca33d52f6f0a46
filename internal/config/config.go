// Package config loads application configuration and prompt templates.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/Veraticus/budgetbuddy/internal/common"
)

// DefaultCategories is the stock category set used when none are configured.
// Order matters: it is the tie-break for substring matching during category
// normalization.
var DefaultCategories = []string{
	"groceries",
	"dining",
	"entertainment",
	"transportation",
	"utilities",
	"shopping",
	"health",
	"other",
}

// Config is the full application configuration.
type Config struct {
	LLM        LLMConfig
	Database   DatabaseConfig
	Server     ServerConfig
	Logging    LoggingConfig
	Prompts    Prompts
	Categories []string
}

// LLMConfig configures the language model client.
type LLMConfig struct {
	Provider    string
	Model       string
	APIKey      string
	Temperature float64
	MaxTokens   int
	RateLimit   int
	CacheTTL    time.Duration
}

// DatabaseConfig configures the SQLite store.
type DatabaseConfig struct {
	Path string
}

// ServerConfig configures the HTTP adapter.
type ServerConfig struct {
	Addr string
	Mode string
}

// LoggingConfig configures the process logger.
type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from the global viper instance, applying
// defaults for anything unset. The caller (cmd layer) is responsible for
// pointing viper at a config file and binding environment variables.
func Load() (*Config, error) {
	return FromViper(viper.GetViper())
}

// FromViper builds a Config from an explicit viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	cfg := &Config{
		LLM: LLMConfig{
			Provider:    v.GetString("llm.provider"),
			Model:       v.GetString("llm.model"),
			APIKey:      v.GetString("llm.api_key"),
			Temperature: v.GetFloat64("llm.temperature"),
			MaxTokens:   v.GetInt("llm.max_tokens"),
			RateLimit:   v.GetInt("llm.rate_limit"),
			CacheTTL:    v.GetDuration("llm.cache_ttl"),
		},
		Database: DatabaseConfig{
			Path: ExpandPath(v.GetString("database.path")),
		},
		Server: ServerConfig{
			Addr: v.GetString("server.addr"),
			Mode: v.GetString("server.mode"),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
		},
		Prompts:    promptsFromViper(v),
		Categories: v.GetStringSlice("categories"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("llm.provider", "anthropic")
	v.SetDefault("llm.temperature", 0.0)
	v.SetDefault("llm.max_tokens", 1000)
	v.SetDefault("llm.rate_limit", 0)
	v.SetDefault("llm.cache_ttl", time.Duration(0))
	v.SetDefault("database.path", "~/.local/share/budgetbuddy/budgetbuddy.db")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("categories", DefaultCategories)
}

func (c *Config) validate() error {
	if len(c.Categories) == 0 {
		return fmt.Errorf("%w: categories must not be empty", common.ErrInvalidConfig)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("%w: database.path", common.ErrMissingConfig)
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 1 {
		return fmt.Errorf("%w: llm.temperature must be between 0 and 1", common.ErrInvalidConfig)
	}
	return nil
}
