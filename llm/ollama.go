// Ollama gateway - a local OpenAI-compatible backend.
//
// Ollama exposes an OpenAI-compatible endpoint at <base>/v1, so the gateway
// reuses the go-openai client with a custom base URL. No API key is required;
// the library insists on a non-empty token, so a placeholder is used.

package llm

import (
	openai "github.com/sashabaranov/go-openai"
)

// DefaultOllamaURL is the standard local Ollama endpoint.
const DefaultOllamaURL = "http://localhost:11434"

// NewOllamaGateway creates a gateway for a local Ollama server.
// baseURL is the Ollama address without the /v1 suffix.
func NewOllamaGateway(baseURL, model string, maxTokens uint32, temperature float32) *OpenAIGateway {
	if baseURL == "" {
		baseURL = DefaultOllamaURL
	}
	cfg := openai.DefaultConfig("ollama")
	cfg.BaseURL = baseURL + "/v1"

	return &OpenAIGateway{
		name:        "ollama",
		client:      openai.NewClientWithConfig(cfg),
		model:       model,
		maxTokens:   int(maxTokens),
		temperature: temperature,
	}
}
