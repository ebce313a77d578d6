// Attraction search tool.

package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/safar-ai/safar/llm"
)

const defaultAttractionResults = 8

// AttractionsTool searches points of interest in a city, filtered by
// category and minimum rating.
type AttractionsTool struct {
	logger zerolog.Logger
}

// NewAttractionsTool creates the attraction search tool.
func NewAttractionsTool(cfg Config) *AttractionsTool {
	return &AttractionsTool{logger: cfg.Logger}
}

// Declaration returns the tool definition advertised to the model.
func (t *AttractionsTool) Declaration() llm.ToolDefinition {
	return llm.ToolDefinition{
		Name:        "searchAttractions",
		Description: "Search for tourist attractions and points of interest in a city. Supports filtering by category (history, nature, beaches, spirituality, shopping, adventure) and minimum rating.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"city": map[string]any{
					"type":        "string",
					"description": "City to search attractions in",
				},
				"categories": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Categories to include: history, nature, beaches, spirituality, shopping, adventure. Empty means all.",
				},
				"minRating": map[string]any{
					"type":        "number",
					"description": "Minimum rating from 0 to 5",
				},
				"maxResults": map[string]any{
					"type":        "number",
					"description": "Maximum number of results, default 8",
				},
			},
			"required": []string{"city"},
		},
	}
}

// Category returns the aggregation key for attraction results.
func (t *AttractionsTool) Category() string { return CategoryAttractions }

type attractionArgs struct {
	City       string   `json:"city"`
	Categories []string `json:"categories"`
	MinRating  float64  `json:"minRating"`
	MaxResults int      `json:"maxResults"`
}

// Execute returns attractions matching the filters.
func (t *AttractionsTool) Execute(ctx context.Context, args json.RawMessage) (any, error) {
	var a attractionArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.City == "" {
		return nil, fmt.Errorf("city is required")
	}
	limit := clampResults(a.MaxResults, defaultAttractionResults)

	return generatedAttractions(a.City, a.Categories, a.MinRating, limit), nil
}
