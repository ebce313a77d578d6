// Package tools provides the travel tool system: the registry the
// orchestrator dispatches through, the TTL result cache, and the tool
// implementations themselves.
//
// Information Hiding:
// - Tool data sources (live API vs generated dataset) hidden per tool
// - Registry storage and lookup hidden
// - Cache key derivation and expiry hidden
package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/safar-ai/safar/llm"
)

// Result categories. Each tool belongs to exactly one category; the
// orchestrator aggregates structured outputs under these keys, last writer
// wins within a turn.
const (
	CategoryHotels         = "hotels"
	CategoryAttractions    = "attractions"
	CategoryRestaurants    = "restaurants"
	CategoryTransport      = "transport"
	CategoryLocalTransport = "localTransport"
)

// Tool is a named, schema-described capability the model may request.
//
// Execute returns the tool-specific structured payload (a record or slice of
// records from the model package). Errors are propagated to the caller, who
// converts them into model-visible failure results - a tool must not decide
// how its failure is presented.
type Tool interface {
	// Declaration returns the machine-readable description advertised to the
	// model gateway: name, description, JSON-schema parameters.
	Declaration() llm.ToolDefinition

	// Category returns the aggregation key for this tool's results.
	Category() string

	// Execute runs the tool with the given JSON arguments.
	Execute(ctx context.Context, args json.RawMessage) (any, error)
}

// decodeArgs unmarshals tool arguments into a typed parameter struct.
// A nil or empty payload decodes to the zero value.
func decodeArgs(args json.RawMessage, v any) error {
	if len(args) == 0 {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// clampResults bounds a result count to [1, fallback] semantics: zero or
// negative requests use the default.
func clampResults(requested, def int) int {
	if requested <= 0 {
		return def
	}
	return requested
}
