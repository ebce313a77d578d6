// Package config provides application settings loaded from environment variables.
//
// Settings are created via New() which handles:
// - Environment variable parsing with validation
// - Default value application
// - Backend-specific model and API key lookup
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/safar-ai/safar/chat"
	"github.com/safar-ai/safar/llm"
)

// Settings holds all application configuration.
type Settings struct {
	LLM       LLMConfig
	Chat      ChatConfig
	Cache     CacheConfig
	Retention RetentionConfig
	Server    ServerConfig
	Tools     ToolsConfig
}

// LLMConfig holds model backend configuration.
type LLMConfig struct {
	Backend     llm.Backend
	Model       string
	MaxTokens   int
	Temperature float32
	OllamaURL   string
}

// ChatConfig holds orchestrator configuration.
type ChatConfig struct {
	MaxToolRounds  int
	GatewayTimeout time.Duration
}

// CacheConfig holds tool result cache configuration.
type CacheConfig struct {
	TTL        time.Duration
	SweepEvery time.Duration
}

// RetentionConfig bounds stored conversation state.
type RetentionConfig struct {
	MaxConversations int
	MaxIdle          time.Duration
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port            int
	RateLimitPerMin float64
	RateLimitBurst  int
}

// ToolsConfig holds tool-level configuration.
type ToolsConfig struct {
	SerpAPIKey  string
	HTTPTimeout time.Duration
	SQLitePath  string
}

// New loads settings for the given backend from environment variables.
// Returns an error for an unknown backend or a malformed variable.
func New(backend string) (Settings, error) {
	b, err := llm.ParseBackend(backend)
	if err != nil {
		return Settings{}, err
	}

	model := os.Getenv(strings.ToUpper(b.String()) + "_MODEL")
	if model == "" {
		model = b.DefaultModel()
	}

	maxTokens, err := getEnvInt("LLM_MAX_TOKENS", 10000)
	if err != nil {
		return Settings{}, err
	}
	temperature, err := getEnvFloat64("LLM_TEMPERATURE", 0.7)
	if err != nil {
		return Settings{}, err
	}

	maxToolRounds, err := getEnvInt("CHAT_MAX_TOOL_ROUNDS", chat.DefaultMaxToolRounds)
	if err != nil {
		return Settings{}, err
	}
	gatewayTimeout, err := getEnvSeconds("GATEWAY_TIMEOUT_SECS", 120*time.Second)
	if err != nil {
		return Settings{}, err
	}

	cacheTTL, err := getEnvSeconds("CACHE_TTL_SECONDS", time.Hour)
	if err != nil {
		return Settings{}, err
	}
	cacheSweep, err := getEnvSeconds("CACHE_SWEEP_SECONDS", 10*time.Minute)
	if err != nil {
		return Settings{}, err
	}

	maxConversations, err := getEnvInt("RETENTION_MAX_CONVERSATIONS", 1000)
	if err != nil {
		return Settings{}, err
	}
	maxIdle, err := getEnvSeconds("RETENTION_MAX_IDLE_SECS", 24*time.Hour)
	if err != nil {
		return Settings{}, err
	}

	port, err := getEnvInt("PORT", 3000)
	if err != nil {
		return Settings{}, err
	}
	ratePerMin, err := getEnvFloat64("RATE_LIMIT_PER_MIN", 20)
	if err != nil {
		return Settings{}, err
	}
	rateBurst, err := getEnvInt("RATE_LIMIT_BURST", 10)
	if err != nil {
		return Settings{}, err
	}

	httpTimeout, err := getEnvSeconds("TOOL_HTTP_TIMEOUT_SECS", 30*time.Second)
	if err != nil {
		return Settings{}, err
	}

	ollamaURL := os.Getenv("OLLAMA_URL")
	if ollamaURL == "" {
		ollamaURL = llm.DefaultOllamaURL
	}

	return Settings{
		LLM: LLMConfig{
			Backend:     b,
			Model:       model,
			MaxTokens:   maxTokens,
			Temperature: float32(temperature),
			OllamaURL:   ollamaURL,
		},
		Chat: ChatConfig{
			MaxToolRounds:  maxToolRounds,
			GatewayTimeout: gatewayTimeout,
		},
		Cache: CacheConfig{
			TTL:        cacheTTL,
			SweepEvery: cacheSweep,
		},
		Retention: RetentionConfig{
			MaxConversations: maxConversations,
			MaxIdle:          maxIdle,
		},
		Server: ServerConfig{
			Port:            port,
			RateLimitPerMin: ratePerMin,
			RateLimitBurst:  rateBurst,
		},
		Tools: ToolsConfig{
			SerpAPIKey:  os.Getenv("SERPAPI_KEY"),
			HTTPTimeout: httpTimeout,
			SQLitePath:  os.Getenv("SQLITE_PATH"),
		},
	}, nil
}

// MustNew loads settings for the given backend, panicking on error.
// Use this only when configuration errors should be fatal.
func MustNew(backend string) Settings {
	settings, err := New(backend)
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return settings
}

// Environment variable helpers with proper error handling

func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q: %w", key, val, err)
	}
	return i, nil
}

func getEnvFloat64(key string, defaultVal float64) (float64, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q: %w", key, val, err)
	}
	return f, nil
}

func getEnvSeconds(key string, defaultVal time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	secs, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q: %w", key, val, err)
	}
	return time.Duration(secs) * time.Second, nil
}
