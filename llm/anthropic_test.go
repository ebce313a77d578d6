package llm

import (
	"encoding/json"
	"testing"
)

func TestToAnthropicToolsRequiredVariants(t *testing.T) {
	// A declaration decoded from JSON carries []any where in-process
	// declarations carry []string; both must survive conversion.
	var decoded ToolDefinition
	raw := `{"name":"getHotels","description":"hotel search","parameters":{"type":"object","properties":{"city":{"type":"string"}},"required":["city"]}}`
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		t.Fatalf("failed to decode declaration: %v", err)
	}

	inProcess := ToolDefinition{
		Name:        "getRestaurants",
		Description: "restaurant search",
		Parameters: map[string]any{
			"type":       "object",
			"properties": map[string]any{"city": map[string]any{"type": "string"}},
			"required":   []string{"city"},
		},
	}

	converted := toAnthropicTools([]ToolDefinition{decoded, inProcess})
	if len(converted) != 2 {
		t.Fatalf("got %d tools, want 2", len(converted))
	}
	for i, tool := range converted {
		required := tool.OfTool.InputSchema.Required
		if len(required) != 1 || required[0] != "city" {
			t.Errorf("tool %d required = %v, want [city]", i, required)
		}
	}
}
