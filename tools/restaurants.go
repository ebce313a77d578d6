// Restaurant search tool.

package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/safar-ai/safar/llm"
)

const defaultRestaurantResults = 6

// RestaurantsTool searches dining options in a city, filtered by dietary
// preference, rating, and price level.
type RestaurantsTool struct {
	logger zerolog.Logger
}

// NewRestaurantsTool creates the restaurant search tool.
func NewRestaurantsTool(cfg Config) *RestaurantsTool {
	return &RestaurantsTool{logger: cfg.Logger}
}

// Declaration returns the tool definition advertised to the model.
func (t *RestaurantsTool) Declaration() llm.ToolDefinition {
	return llm.ToolDefinition{
		Name:        "getRestaurants",
		Description: "Search for restaurants in a city. Supports filtering by dietary preference (vegetarian, vegan, non-veg), minimum rating, and price level from 1 (budget) to 4 (luxury).",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"city": map[string]any{
					"type":        "string",
					"description": "City to search restaurants in",
				},
				"diet": map[string]any{
					"type":        "string",
					"description": "Dietary preference: vegetarian, vegan, or non-veg. Empty means any.",
				},
				"minRating": map[string]any{
					"type":        "number",
					"description": "Minimum rating from 0 to 5",
				},
				"priceLevel": map[string]any{
					"type":        "number",
					"description": "Price level from 1 (budget) to 4 (luxury). Zero means any.",
				},
				"maxResults": map[string]any{
					"type":        "number",
					"description": "Maximum number of results, default 6",
				},
			},
			"required": []string{"city"},
		},
	}
}

// Category returns the aggregation key for restaurant results.
func (t *RestaurantsTool) Category() string { return CategoryRestaurants }

type restaurantArgs struct {
	City       string  `json:"city"`
	Diet       string  `json:"diet"`
	MinRating  float64 `json:"minRating"`
	PriceLevel int     `json:"priceLevel"`
	MaxResults int     `json:"maxResults"`
}

// Execute returns restaurants matching the filters.
func (t *RestaurantsTool) Execute(ctx context.Context, args json.RawMessage) (any, error) {
	var a restaurantArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.City == "" {
		return nil, fmt.Errorf("city is required")
	}
	limit := clampResults(a.MaxResults, defaultRestaurantResults)

	return generatedRestaurants(a.City, a.Diet, a.MinRating, a.PriceLevel, limit), nil
}
