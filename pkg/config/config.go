// Package config loads summary-kit configuration from an optional YAML
// file with environment variable overrides.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host           string   `yaml:"host" env:"SERVER_HOST"`
	Port           int      `yaml:"port" env:"SERVER_PORT"`
	RateLimitRPS   float64  `yaml:"rate_limit_rps" env:"SERVER_RATE_LIMIT_RPS"`
	RateLimitBurst int      `yaml:"rate_limit_burst" env:"SERVER_RATE_LIMIT_BURST"`
	AllowedOrigins []string `yaml:"allowed_origins" env:"SERVER_ALLOWED_ORIGINS" envSeparator:","`
}

// GroqConfig holds cloud backend settings
type GroqConfig struct {
	APIKey  string `yaml:"api_key" env:"GROQ_API_KEY"`
	BaseURL string `yaml:"base_url" env:"GROQ_BASE_URL"`
}

// OllamaConfig holds local backend settings
type OllamaConfig struct {
	BaseURL string `yaml:"base_url" env:"OLLAMA_BASE_URL"`
}

// ValidationConfig bounds accepted input text
type ValidationConfig struct {
	MinWords int `yaml:"min_words" env:"VALIDATION_MIN_WORDS"`
	MaxWords int `yaml:"max_words" env:"VALIDATION_MAX_WORDS"`
}

// SummaryConfig controls summary generation defaults
type SummaryConfig struct {
	DefaultMaxLengthWords int `yaml:"default_max_length_words" env:"SUMMARY_DEFAULT_MAX_LENGTH_WORDS"`
}

// Config is the root configuration
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Groq       GroqConfig       `yaml:"groq"`
	Ollama     OllamaConfig     `yaml:"ollama"`
	Validation ValidationConfig `yaml:"validation"`
	Summary    SummaryConfig    `yaml:"summary"`
	LogLevel   string           `yaml:"log_level" env:"LOG_LEVEL"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host:           "0.0.0.0",
			Port:           8080,
			RateLimitRPS:   10,
			RateLimitBurst: 20,
			AllowedOrigins: []string{"*"},
		},
		Groq: GroqConfig{
			BaseURL: "https://api.groq.com/openai/v1",
		},
		Ollama: OllamaConfig{
			BaseURL: "http://localhost:11434",
		},
		Validation: ValidationConfig{
			MinWords: 50,
			MaxWords: 10000,
		},
		Summary: SummaryConfig{
			DefaultMaxLengthWords: 150,
		},
		LogLevel: "info",
	}
}

// Load reads path (if non-empty and present) over the defaults, then
// applies environment overrides on top.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("reading config file: %w", err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for contradictions.
func (c Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Validation.MinWords < 0 {
		return fmt.Errorf("validation min_words must not be negative")
	}
	if c.Validation.MaxWords < c.Validation.MinWords {
		return fmt.Errorf("validation max_words %d below min_words %d", c.Validation.MaxWords, c.Validation.MinWords)
	}
	if c.Summary.DefaultMaxLengthWords <= 0 {
		return fmt.Errorf("summary default_max_length_words must be positive")
	}
	if c.Ollama.BaseURL == "" {
		return fmt.Errorf("ollama base_url must not be empty")
	}
	return nil
}
