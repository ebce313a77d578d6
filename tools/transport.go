// Intercity transport search tool.

package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/safar-ai/safar/llm"
)

const defaultTransportResults = 4

var validModes = map[string]bool{"flight": true, "train": true, "bus": true}

// TransportTool searches intercity transport options between two cities.
type TransportTool struct {
	logger zerolog.Logger
}

// NewTransportTool creates the intercity transport search tool.
func NewTransportTool(cfg Config) *TransportTool {
	return &TransportTool{logger: cfg.Logger}
}

// Declaration returns the tool definition advertised to the model.
func (t *TransportTool) Declaration() llm.ToolDefinition {
	return llm.ToolDefinition{
		Name:        "getTransportOptions",
		Description: "Search for intercity transport options (flight, train, or bus) between two cities, with schedules and prices in INR.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"origin": map[string]any{
					"type":        "string",
					"description": "Departure city",
				},
				"destination": map[string]any{
					"type":        "string",
					"description": "Arrival city",
				},
				"mode": map[string]any{
					"type":        "string",
					"description": "Transport mode: flight, train, or bus",
				},
				"date": map[string]any{
					"type":        "string",
					"description": "Travel date in YYYY-MM-DD format",
				},
				"maxPrice": map[string]any{
					"type":        "number",
					"description": "Maximum fare in INR. Zero means no limit.",
				},
			},
			"required": []string{"origin", "destination", "mode"},
		},
	}
}

// Category returns the aggregation key for intercity transport results.
func (t *TransportTool) Category() string { return CategoryTransport }

type transportArgs struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Mode        string `json:"mode"`
	Date        string `json:"date"`
	MaxPrice    int    `json:"maxPrice"`
}

// Execute returns transport options matching the filters.
func (t *TransportTool) Execute(ctx context.Context, args json.RawMessage) (any, error) {
	var a transportArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Origin == "" || a.Destination == "" {
		return nil, fmt.Errorf("origin and destination are required")
	}
	if !validModes[a.Mode] {
		return nil, fmt.Errorf("mode must be flight, train, or bus, got %q", a.Mode)
	}

	return generatedTransport(a.Origin, a.Destination, a.Mode, a.MaxPrice, defaultTransportResults), nil
}
