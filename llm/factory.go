// Gateway factory - creates a configured backend from a provider name.
//
//	gw, err := llm.NewGateway(llm.BackendGemini, llm.Options{})          // defaults
//	gw, err := llm.NewGateway(llm.BackendOllama, llm.Options{Model: "llama3.1"})

package llm

import (
	"fmt"
	"os"
	"strings"
)

// Backend identifies a supported model backend.
type Backend int

const (
	// BackendGemini is Google Gemini (the default backend).
	BackendGemini Backend = iota
	// BackendOllama is a local OpenAI-compatible Ollama server.
	BackendOllama
	// BackendOpenAI is the hosted OpenAI API.
	BackendOpenAI
	// BackendAnthropic is the Anthropic Messages API.
	BackendAnthropic
)

// String returns the canonical backend name.
func (b Backend) String() string {
	switch b {
	case BackendGemini:
		return "gemini"
	case BackendOllama:
		return "ollama"
	case BackendOpenAI:
		return "openai"
	case BackendAnthropic:
		return "anthropic"
	default:
		return "unknown"
	}
}

// EnvVar returns the environment variable holding this backend's API key.
// Ollama needs no key and returns "".
func (b Backend) EnvVar() string {
	switch b {
	case BackendGemini:
		return "GEMINI_API_KEY"
	case BackendOpenAI:
		return "OPENAI_API_KEY"
	case BackendAnthropic:
		return "ANTHROPIC_API_KEY"
	default:
		return ""
	}
}

// DefaultModel returns the default model identifier for this backend.
func (b Backend) DefaultModel() string {
	switch b {
	case BackendGemini:
		return "gemini-2.5-pro"
	case BackendOllama:
		return "gpt-oss:120b-cloud"
	case BackendOpenAI:
		return "gpt-4o"
	case BackendAnthropic:
		return "claude-sonnet-4-20250514"
	default:
		return ""
	}
}

// ParseBackend parses a backend name (case-insensitive, accepting common
// aliases).
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(s) {
	case "gemini", "google":
		return BackendGemini, nil
	case "ollama", "local":
		return BackendOllama, nil
	case "openai", "gpt":
		return BackendOpenAI, nil
	case "anthropic", "claude":
		return BackendAnthropic, nil
	default:
		return 0, fmt.Errorf("unknown backend: %q", s)
	}
}

// Options configures a gateway. Zero values fall back to per-backend
// defaults.
type Options struct {
	Model       string
	MaxTokens   uint32
	Temperature float32
	BaseURL     string // Ollama only
}

// NewGateway creates a gateway for the given backend, reading the API key
// from the backend's environment variable.
func NewGateway(backend Backend, opts Options) (Gateway, error) {
	model := opts.Model
	if model == "" {
		model = backend.DefaultModel()
	}
	maxTokens := opts.MaxTokens
	if maxTokens == 0 {
		maxTokens = 10000
	}
	temperature := opts.Temperature
	if temperature == 0 {
		temperature = 0.7
	}

	apiKey := ""
	if envVar := backend.EnvVar(); envVar != "" {
		apiKey = os.Getenv(envVar)
		if apiKey == "" {
			return nil, fmt.Errorf("%s: %s environment variable not set", backend, envVar)
		}
	}

	switch backend {
	case BackendGemini:
		return NewGeminiGateway(apiKey, model, maxTokens, temperature), nil
	case BackendOllama:
		return NewOllamaGateway(opts.BaseURL, model, maxTokens, temperature), nil
	case BackendOpenAI:
		return NewOpenAIGateway(apiKey, model, maxTokens, temperature), nil
	case BackendAnthropic:
		return NewAnthropicGateway(apiKey, model, maxTokens, temperature), nil
	default:
		return nil, fmt.Errorf("unknown backend type: %v", backend)
	}
}
