package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/promptforge/promptforge/internal/llm"
)

// Default models per provider.
const (
	defaultGeminiModel = "gemini-2.5-pro"
	defaultOpenAIModel = "gpt-4o"
)

// AppConfig holds all configuration for the service, loaded from the
// environment and an optional config.yaml.
type AppConfig struct {
	Port         string
	RedisAddr    string
	Provider     string
	GeminiAPIKey string
	OpenAIAPIKey string
	ModelID      string
	Sampling     llm.Sampling
}

// fileConfig is the shape of the optional config.yaml. Anything left zero
// falls back to the built-in defaults.
type fileConfig struct {
	Model    string        `yaml:"model"`
	Sampling *llm.Sampling `yaml:"sampling"`
}

// LoadConfig loads configuration from a .env file, environment variables,
// and an optional config.yaml. In release mode configuration is expected to
// come directly from the environment, so no .env file is read.
func LoadConfig() (*AppConfig, error) {
	if os.Getenv("GIN_MODE") != "release" {
		_ = godotenv.Load()
	}

	cfg := &AppConfig{
		Port:         os.Getenv("PORT"),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		Provider:     os.Getenv("LLM_PROVIDER"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		ModelID:      os.Getenv("MODEL_ID"),
		Sampling:     llm.DefaultSampling(),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.RedisAddr == "" {
		cfg.RedisAddr = "localhost:6379"
	}
	if cfg.Provider == "" {
		cfg.Provider = "gemini"
	}

	if data, err := os.ReadFile("config.yaml"); err == nil {
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("failed to parse config.yaml: %w", err)
		}
		if fc.Model != "" {
			cfg.ModelID = fc.Model
		}
		if fc.Sampling != nil {
			cfg.Sampling = *fc.Sampling
		}
	}

	if cfg.ModelID == "" {
		switch cfg.Provider {
		case "openai":
			cfg.ModelID = defaultOpenAIModel
		default:
			cfg.ModelID = defaultGeminiModel
		}
	}

	switch cfg.Provider {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY environment variable is not set")
		}
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
		}
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q (want gemini or openai)", cfg.Provider)
	}

	return cfg, nil
}
