package config

import (
	"testing"
	"time"

	"github.com/safar-ai/safar/llm"
)

func TestNewDefaults(t *testing.T) {
	settings, err := New("gemini")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if settings.LLM.Backend != llm.BackendGemini {
		t.Errorf("backend = %v, want gemini", settings.LLM.Backend)
	}
	if settings.LLM.Model != "gemini-2.5-pro" {
		t.Errorf("model = %q", settings.LLM.Model)
	}
	if settings.Chat.MaxToolRounds != 5 {
		t.Errorf("maxToolRounds = %d, want 5", settings.Chat.MaxToolRounds)
	}
	if settings.Cache.TTL != time.Hour {
		t.Errorf("cache TTL = %v, want 1h", settings.Cache.TTL)
	}
	if settings.Cache.SweepEvery != 10*time.Minute {
		t.Errorf("cache sweep = %v, want 10m", settings.Cache.SweepEvery)
	}
	if settings.Server.Port != 3000 {
		t.Errorf("port = %d, want 3000", settings.Server.Port)
	}
	if settings.LLM.OllamaURL != llm.DefaultOllamaURL {
		t.Errorf("ollama URL = %q", settings.LLM.OllamaURL)
	}
}

func TestNewBackendAliases(t *testing.T) {
	tests := []struct {
		alias string
		want  llm.Backend
	}{
		{"google", llm.BackendGemini},
		{"claude", llm.BackendAnthropic},
		{"gpt", llm.BackendOpenAI},
		{"local", llm.BackendOllama},
	}
	for _, tt := range tests {
		settings, err := New(tt.alias)
		if err != nil {
			t.Errorf("New(%q) failed: %v", tt.alias, err)
			continue
		}
		if settings.LLM.Backend != tt.want {
			t.Errorf("New(%q).Backend = %v, want %v", tt.alias, settings.LLM.Backend, tt.want)
		}
	}
}

func TestNewUnknownBackend(t *testing.T) {
	if _, err := New("cohere"); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestNewEnvOverrides(t *testing.T) {
	t.Setenv("GEMINI_MODEL", "gemini-2.5-flash")
	t.Setenv("CHAT_MAX_TOOL_ROUNDS", "3")
	t.Setenv("CACHE_TTL_SECONDS", "120")
	t.Setenv("RETENTION_MAX_CONVERSATIONS", "50")
	t.Setenv("PORT", "8080")
	t.Setenv("SERPAPI_KEY", "secret")

	settings, err := New("gemini")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if settings.LLM.Model != "gemini-2.5-flash" {
		t.Errorf("model = %q", settings.LLM.Model)
	}
	if settings.Chat.MaxToolRounds != 3 {
		t.Errorf("maxToolRounds = %d, want 3", settings.Chat.MaxToolRounds)
	}
	if settings.Cache.TTL != 2*time.Minute {
		t.Errorf("cache TTL = %v, want 2m", settings.Cache.TTL)
	}
	if settings.Retention.MaxConversations != 50 {
		t.Errorf("maxConversations = %d, want 50", settings.Retention.MaxConversations)
	}
	if settings.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", settings.Server.Port)
	}
	if settings.Tools.SerpAPIKey != "secret" {
		t.Errorf("serpapi key = %q", settings.Tools.SerpAPIKey)
	}
}

func TestNewInvalidValues(t *testing.T) {
	t.Setenv("CHAT_MAX_TOOL_ROUNDS", "many")

	if _, err := New("gemini"); err == nil {
		t.Error("expected error for non-numeric CHAT_MAX_TOOL_ROUNDS")
	}
}
