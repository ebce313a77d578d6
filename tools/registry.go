// Tool registry - the typed catalog of invocable capabilities.
//
// Information Hiding:
// - Tool storage and lookup implementation hidden
// - Registration and discovery mechanisms abstracted

package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/safar-ai/safar/llm"
)

// ErrAlreadyRegistered is returned when a tool name is registered twice.
// Duplicate registration is a configuration error, fatal at startup.
var ErrAlreadyRegistered = errors.New("tool already registered")

// ErrUnknownTool is returned when executing a name with no registered
// handler. The orchestrator recovers from this locally; it never aborts a
// turn.
var ErrUnknownTool = errors.New("unknown tool")

// Registry maps tool names to executable handlers and their declarations.
// A registered tool always carries both: a declared tool with no handler
// cannot exist by construction.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

// NewRegistry creates a new empty tool registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds a tool to the registry.
// Returns ErrAlreadyRegistered if the name is taken.
func (r *Registry) Register(tool Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := tool.Declaration().Name
	if _, exists := r.tools[name]; exists {
		return fmt.Errorf("%w: %q", ErrAlreadyRegistered, name)
	}
	r.tools[name] = tool
	return nil
}

// Get returns a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tool, exists := r.tools[name]
	return tool, exists
}

// Names returns all registered tool names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Declarations returns the declarations for all registered tools, in sorted
// name order. Advertised to the model gateway on every send so the model
// always sees the current tool surface.
func (r *Registry) Declarations() []llm.ToolDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)

	decls := make([]llm.ToolDefinition, 0, len(names))
	for _, name := range names {
		decls = append(decls, r.tools[name].Declaration())
	}
	return decls
}

// Category returns the aggregation category for a tool name, or "" if the
// name is not registered.
func (r *Registry) Category(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if tool, exists := r.tools[name]; exists {
		return tool.Category()
	}
	return ""
}

// Execute looks up and invokes the named tool. Returns ErrUnknownTool for an
// unregistered name. Handler errors propagate unwrapped in meaning: the
// caller translates them into failure results fed back to the model.
func (r *Registry) Execute(ctx context.Context, name string, args json.RawMessage) (any, error) {
	tool, exists := r.Get(name)
	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}
	return tool.Execute(ctx, args)
}

// Config holds shared tool configuration.
type Config struct {
	// SerpAPIKey enables live hotel lookups when set; empty means generated
	// data only.
	SerpAPIKey string

	// HTTPTimeout bounds outbound tool requests. Zero means 30 seconds.
	HTTPTimeout time.Duration

	// Logger receives tool-level events. The zero value is a nop logger.
	Logger zerolog.Logger
}

func (c Config) httpTimeout() time.Duration {
	if c.HTTPTimeout == 0 {
		return 30 * time.Second
	}
	return c.HTTPTimeout
}

// WithTravelDefaults creates a registry with the standard travel tool set.
// Returns an error if any registration fails.
func WithTravelDefaults(cfg Config) (*Registry, error) {
	registry := NewRegistry()

	all := []Tool{
		NewHotelsTool(cfg),
		NewAttractionsTool(cfg),
		NewRestaurantsTool(cfg),
		NewTransportTool(cfg),
		NewLocalTransportTool(cfg),
	}

	for _, t := range all {
		if err := registry.Register(t); err != nil {
			return nil, fmt.Errorf("failed to register travel tools: %w", err)
		}
	}

	return registry, nil
}
