// Package config reads process configuration from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Providers and session stores that can be selected.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"

	StoreMemory = "memory"
	StoreCache  = "cache"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	LLM struct {
		Provider      string
		OpenAIKey     string
		OpenAIBaseURL string
		AnthropicKey  string
		Model         string
		Temperature   float64
		MaxTokens     int
		Timeout       time.Duration
		MaxRetries    int
		RatePerSecond float64
	}

	HTTPAddr    string
	CORSOrigins []string

	SessionStore string
	SessionTTL   time.Duration

	// KnowledgeFile replaces the built-in seed data when set.
	KnowledgeFile string

	LogLevel  string
	LogFormat string
}

// Load reads envFile (if it exists) and then the environment. A missing
// env file is not an error; a malformed value is.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		HTTPAddr:      getEnv("HTTP_ADDR", ":8080"),
		CORSOrigins:   splitList(getEnv("CORS_ORIGINS", "*")),
		SessionStore:  strings.ToLower(getEnv("SESSION_STORE", StoreMemory)),
		KnowledgeFile: getEnv("KNOWLEDGE_FILE", ""),
		LogLevel:      strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:     strings.ToLower(getEnv("LOG_FORMAT", "text")),
	}
	cfg.LLM.Provider = strings.ToLower(getEnv("LLM_PROVIDER", ProviderOpenAI))
	cfg.LLM.OpenAIKey = getEnv("OPENAI_API_KEY", "")
	cfg.LLM.OpenAIBaseURL = getEnv("OPENAI_BASE_URL", "")
	cfg.LLM.AnthropicKey = getEnv("ANTHROPIC_API_KEY", "")
	cfg.LLM.Model = getEnv("LLM_MODEL", "")

	var err error
	if cfg.LLM.Temperature, err = getFloat("LLM_TEMPERATURE", 0.3); err != nil {
		return nil, err
	}
	if cfg.LLM.MaxTokens, err = getInt("LLM_MAX_TOKENS", 512); err != nil {
		return nil, err
	}
	if cfg.LLM.Timeout, err = getDuration("LLM_TIMEOUT", 20*time.Second); err != nil {
		return nil, err
	}
	if cfg.LLM.MaxRetries, err = getInt("LLM_MAX_RETRIES", 2); err != nil {
		return nil, err
	}
	if cfg.LLM.RatePerSecond, err = getFloat("LLM_RATE_PER_SEC", 2); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = getDuration("SESSION_TTL", 2*time.Hour); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case ProviderOpenAI:
		if c.LLM.OpenAIKey == "" {
			return fmt.Errorf("%w: OPENAI_API_KEY is required for the openai provider", ErrInvalid)
		}
	case ProviderAnthropic:
		if c.LLM.AnthropicKey == "" {
			return fmt.Errorf("%w: ANTHROPIC_API_KEY is required for the anthropic provider", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown LLM_PROVIDER %q", ErrInvalid, c.LLM.Provider)
	}

	switch c.SessionStore {
	case StoreMemory, StoreCache:
	default:
		return fmt.Errorf("%w: unknown SESSION_STORE %q", ErrInvalid, c.SessionStore)
	}
	if c.SessionStore == StoreCache && c.SessionTTL <= 0 {
		return fmt.Errorf("%w: SESSION_TTL must be positive", ErrInvalid)
	}

	if c.LLM.MaxRetries < 0 {
		return fmt.Errorf("%w: LLM_MAX_RETRIES must not be negative", ErrInvalid)
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("%w: LLM_TEMPERATURE must be between 0 and 2", ErrInvalid)
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: LOG_FORMAT must be text or json", ErrInvalid)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalid, key, err)
	}
	return n, nil
}

func getFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalid, key, err)
	}
	return f, nil
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalid, key, err)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
