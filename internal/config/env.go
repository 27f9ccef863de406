package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// APIKeys holds all API keys loaded from environment
type APIKeys struct {
	OpenAI   string
	Deepgram string
	Gemini   string
}

// envPaths are searched in order; the first existing file wins.
var envPaths = []string{
	".env",
	".env.local",
	"../.env",
	"../../.env",
}

// LoadEnv loads environment variables from the first .env file found.
// A missing file is not an error: keys may be set in the process environment.
// It returns the path that was loaded, or "" when none was found.
func LoadEnv() (string, error) {
	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		if err := godotenv.Load(envPath); err != nil {
			return "", fmt.Errorf("error loading %s file: %w", envPath, err)
		}
		return envPath, nil
	}
	return "", nil
}

// GetAPIKeys retrieves and validates API keys from environment variables
func GetAPIKeys() (*APIKeys, error) {
	apiKeys := &APIKeys{
		OpenAI:   strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		Deepgram: strings.TrimSpace(os.Getenv("DEEPGRAM_API_KEY")),
		Gemini:   strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
	}

	if apiKeys.OpenAI != "" {
		if err := ValidateAPIKey(apiKeys.OpenAI, "OpenAI"); err != nil {
			return nil, fmt.Errorf("invalid OPENAI_API_KEY: %w", err)
		}
	}
	if apiKeys.Deepgram != "" {
		if err := ValidateAPIKey(apiKeys.Deepgram, "Deepgram"); err != nil {
			return nil, fmt.Errorf("invalid DEEPGRAM_API_KEY: %w", err)
		}
	}
	if apiKeys.Gemini != "" {
		if err := ValidateAPIKey(apiKeys.Gemini, "Gemini"); err != nil {
			return nil, fmt.Errorf("invalid GEMINI_API_KEY: %w", err)
		}
	}

	return apiKeys, nil
}

// Available lists the names of the configured keys.
func (k *APIKeys) Available() []string {
	var names []string
	if k.OpenAI != "" {
		names = append(names, "OpenAI")
	}
	if k.Deepgram != "" {
		names = append(names, "Deepgram")
	}
	if k.Gemini != "" {
		names = append(names, "Gemini")
	}
	return names
}

// RequireFor checks that the keys needed by the selected providers are present.
// It fails fast so the server never starts with a provider it cannot call.
func (k *APIKeys) RequireFor(cfg *Config) error {
	switch cfg.Transcription.Provider {
	case ProviderDeepgram:
		if k.Deepgram == "" {
			return fmt.Errorf("transcription provider %q requires DEEPGRAM_API_KEY", ProviderDeepgram)
		}
	case ProviderOpenAI:
		if k.OpenAI == "" {
			return fmt.Errorf("transcription provider %q requires OPENAI_API_KEY", ProviderOpenAI)
		}
	}

	switch cfg.Generation.Provider {
	case ProviderOpenAI:
		if k.OpenAI == "" {
			return fmt.Errorf("generation provider %q requires OPENAI_API_KEY", ProviderOpenAI)
		}
	case ProviderGemini:
		if k.Gemini == "" {
			return fmt.Errorf("generation provider %q requires GEMINI_API_KEY", ProviderGemini)
		}
	}
	return nil
}

// GetProjectRoot finds the project root directory by looking for go.mod
func GetProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("could not find project root (go.mod not found)")
}

// InitializeConfig loads the .env file, the optional YAML config and the API keys.
// This is the main entry point for configuration loading
func InitializeConfig(configPath string) (*Config, *APIKeys, error) {
	if _, err := LoadEnv(); err != nil {
		return nil, nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	apiKeys, err := GetAPIKeys()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get API keys: %w", err)
	}

	return cfg, apiKeys, nil
}
