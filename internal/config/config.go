package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"tagtemanin/internal/llm"
)

// Config holds all configuration for the application.
type Config struct {
	LLMBaseURL string
	// LLMAPIKey may be empty; the model caller reports it as a configuration
	// error on first use.
	LLMAPIKey            string
	ModelChain           llm.ModelChain
	AttemptTimeout       time.Duration
	FailFastClientErrors bool
	APIPort              string
	LogLevel             slog.Level
	LogFormat            string
}

// chainFile is the YAML layout of LLM_MODEL_CHAIN_FILE.
type chainFile struct {
	Models []string `yaml:"models"`
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates the rest.
// If a .env or .env.local file exists in the current directory or a parent, it is loaded.
// Environment variables already set take precedence over file values.
func Load() (*Config, error) {
	loadDotEnv()

	cfg := &Config{
		LLMBaseURL: getEnv("LLM_BASE_URL", "https://api.groq.com/openai/v1"),
		LLMAPIKey:  strings.TrimSpace(os.Getenv("GROQ_API_KEY")),
		APIPort:    getEnv("API_PORT", "9000"),
		LogFormat:  strings.ToLower(getEnv("LOG_FORMAT", "text")),
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL is invalid: %w", err)
	}

	chain, err := loadModelChain()
	if err != nil {
		return nil, err
	}
	cfg.ModelChain = chain

	timeout, err := time.ParseDuration(getEnv("LLM_ATTEMPT_TIMEOUT", llm.DefaultAttemptTimeout.String()))
	if err != nil {
		return nil, fmt.Errorf("LLM_ATTEMPT_TIMEOUT must be a valid duration: %w", err)
	}
	if timeout < 0 {
		return nil, fmt.Errorf("LLM_ATTEMPT_TIMEOUT must not be negative")
	}
	cfg.AttemptTimeout = timeout

	failFast, err := strconv.ParseBool(getEnv("LLM_FAIL_FAST_CLIENT_ERRORS", "false"))
	if err != nil {
		return nil, fmt.Errorf("LLM_FAIL_FAST_CLIENT_ERRORS must be a boolean: %w", err)
	}
	cfg.FailFastClientErrors = failFast

	return cfg, nil
}

// loadModelChain resolves the chain from LLM_MODEL_CHAIN, then
// LLM_MODEL_CHAIN_FILE, then the built-in default.
func loadModelChain() (llm.ModelChain, error) {
	if raw := os.Getenv("LLM_MODEL_CHAIN"); strings.TrimSpace(raw) != "" {
		chain := llm.ParseModelChain(raw)
		if err := chain.Validate(); err != nil {
			return nil, fmt.Errorf("LLM_MODEL_CHAIN: %w", err)
		}
		return chain, nil
	}

	if path := os.Getenv("LLM_MODEL_CHAIN_FILE"); path != "" {
		chain, err := LoadChainFile(path)
		if err != nil {
			return nil, err
		}
		return chain, nil
	}

	return llm.DefaultModelChain.Clone(), nil
}

// LoadChainFile reads a YAML file with a top-level "models" list.
func LoadChainFile(path string) (llm.ModelChain, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve model chain path: %w", err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("read model chain file %q: %w", absPath, err)
	}

	var file chainFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse model chain file %q: %w", absPath, err)
	}

	chain := make(llm.ModelChain, 0, len(file.Models))
	for _, model := range file.Models {
		chain = append(chain, strings.TrimSpace(model))
	}
	if err := chain.Validate(); err != nil {
		return nil, fmt.Errorf("model chain file %q: %w", absPath, err)
	}
	return chain, nil
}

// loadDotEnv loads .env.local and .env from the working directory, or from the
// nearest parent that has one. Missing files are ignored.
func loadDotEnv() {
	wd, err := os.Getwd()
	if err != nil {
		return
	}
	dir := wd
	for i := 0; i < 5; i++ { // Limit search depth
		found := false
		for _, name := range []string{".env.local", ".env"} {
			envPath := filepath.Join(dir, name)
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				found = true
			}
		}
		if found {
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return // Reached filesystem root
		}
		dir = parent
	}
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
