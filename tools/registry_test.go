package tools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/safar-ai/safar/llm"
)

// stubTool is a minimal Tool for registry tests.
type stubTool struct {
	name     string
	category string
	result   any
	err      error
}

func (s *stubTool) Declaration() llm.ToolDefinition {
	return llm.ToolDefinition{
		Name:        s.name,
		Description: "stub",
		Parameters:  map[string]any{"type": "object"},
	}
}

func (s *stubTool) Category() string { return s.category }

func (s *stubTool) Execute(_ context.Context, _ json.RawMessage) (any, error) {
	return s.result, s.err
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register(&stubTool{name: "alpha", category: CategoryHotels}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	tool, ok := registry.Get("alpha")
	if !ok {
		t.Fatal("expected to find registered tool")
	}
	if tool.Category() != CategoryHotels {
		t.Errorf("category = %q, want %q", tool.Category(), CategoryHotels)
	}

	if _, ok := registry.Get("missing"); ok {
		t.Error("expected miss for unregistered name")
	}
}

func TestRegistryDuplicateName(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register(&stubTool{name: "alpha"}); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	err := registry.Register(&stubTool{name: "alpha"})
	if !errors.Is(err, ErrAlreadyRegistered) {
		t.Errorf("expected ErrAlreadyRegistered, got %v", err)
	}
}

func TestRegistryDeclarationsSorted(t *testing.T) {
	registry := NewRegistry()
	for _, name := range []string{"zebra", "alpha", "mango"} {
		if err := registry.Register(&stubTool{name: name}); err != nil {
			t.Fatalf("Register(%q) failed: %v", name, err)
		}
	}

	decls := registry.Declarations()
	want := []string{"alpha", "mango", "zebra"}
	if len(decls) != len(want) {
		t.Fatalf("got %d declarations, want %d", len(decls), len(want))
	}
	for i, name := range want {
		if decls[i].Name != name {
			t.Errorf("declarations[%d].Name = %q, want %q", i, decls[i].Name, name)
		}
	}
}

func TestRegistryExecuteUnknownTool(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.Execute(context.Background(), "ghost", nil)
	if !errors.Is(err, ErrUnknownTool) {
		t.Errorf("expected ErrUnknownTool, got %v", err)
	}
}

func TestRegistryExecuteDispatch(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(&stubTool{name: "alpha", result: "payload"}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	result, err := registry.Execute(context.Background(), "alpha", nil)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result != "payload" {
		t.Errorf("result = %v, want payload", result)
	}
}

func TestWithTravelDefaults(t *testing.T) {
	registry, err := WithTravelDefaults(Config{})
	if err != nil {
		t.Fatalf("WithTravelDefaults failed: %v", err)
	}

	want := []string{
		"estimateLocalTransport",
		"getHotels",
		"getRestaurants",
		"getTransportOptions",
		"searchAttractions",
	}
	names := registry.Names()
	if len(names) != len(want) {
		t.Fatalf("got %d tools, want %d: %v", len(names), len(want), names)
	}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("names[%d] = %q, want %q", i, names[i], name)
		}
	}
}

func TestRegistryCategory(t *testing.T) {
	registry, err := WithTravelDefaults(Config{})
	if err != nil {
		t.Fatalf("WithTravelDefaults failed: %v", err)
	}

	tests := []struct {
		tool string
		want string
	}{
		{"getHotels", CategoryHotels},
		{"searchAttractions", CategoryAttractions},
		{"getRestaurants", CategoryRestaurants},
		{"getTransportOptions", CategoryTransport},
		{"estimateLocalTransport", CategoryLocalTransport},
		{"nope", ""},
	}
	for _, tt := range tests {
		if got := registry.Category(tt.tool); got != tt.want {
			t.Errorf("Category(%q) = %q, want %q", tt.tool, got, tt.want)
		}
	}
}
