package session

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the session configuration loaded from environment variables.
type Config struct {
	// Provider selection
	Provider string
	Model    string

	// API keys
	GoogleKey    string
	AnthropicKey string
	OpenAIKey    string

	// Tool config
	Workdir string

	// Loop config
	MaxTurns int

	// Optional MCP server command; its tools register alongside the
	// built-ins when set.
	MCPServer string
}

// LoadConfig loads configuration from environment variables.
// It loads a .env file if present (silent fail if not found).
func LoadConfig() (*Config, error) {
	godotenv.Load() // Load .env file if present

	workdir := os.Getenv("GEMINI_WORKDIR")
	if workdir == "" {
		workdir, _ = os.Getwd()
	}

	cfg := &Config{
		Provider:     getEnvOrDefault("GEMINI_PROVIDER", "google"),
		Model:        os.Getenv("GEMINI_MODEL"),
		GoogleKey:    os.Getenv("GEMINI_API_KEY"),
		AnthropicKey: os.Getenv("ANTHROPIC_API_KEY"),
		OpenAIKey:    os.Getenv("OPENAI_API_KEY"),
		Workdir:      workdir,
		MaxTurns:     getEnvIntOrDefault("GEMINI_MAX_TURNS", 50),
		MCPServer:    os.Getenv("GEMINI_MCP_SERVER"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	switch c.Provider {
	case "google":
		if c.GoogleKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required for google provider")
		}
	case "anthropic":
		if c.AnthropicKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required for anthropic provider")
		}
	case "openai":
		if c.OpenAIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for openai provider")
		}
	default:
		return fmt.Errorf("unknown provider: %s (must be google, anthropic, or openai)", c.Provider)
	}

	if c.MaxTurns <= 0 {
		return fmt.Errorf("GEMINI_MAX_TURNS must be positive, got %d", c.MaxTurns)
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
