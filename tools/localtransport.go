// Local transport fare estimation tool.

package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/safar-ai/safar/llm"
	"github.com/safar-ai/safar/model"
)

// Fare model constants, INR.
const (
	localBaseFare       = 50
	perKmRideshare      = 12
	perKmAutoOrTaxi     = 18
	minutesPerKm        = 3
	defaultTripDistance = 10
)

// Known landmark distances from a city center, km.
var landmarkDistances = map[string]int{
	"airport":         15,
	"railway station": 5,
	"bus stand":       3,
}

// LocalTransportTool estimates fares for trips within a city using a simple
// distance-based model.
type LocalTransportTool struct {
	logger zerolog.Logger
}

// NewLocalTransportTool creates the local fare estimation tool.
func NewLocalTransportTool(cfg Config) *LocalTransportTool {
	return &LocalTransportTool{logger: cfg.Logger}
}

// Declaration returns the tool definition advertised to the model.
func (t *LocalTransportTool) Declaration() llm.ToolDefinition {
	return llm.ToolDefinition{
		Name:        "estimateLocalTransport",
		Description: "Estimate the fare and duration for a local trip within a city, e.g. airport to hotel. Covers auto-rickshaw, taxi, and rideshare.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"city": map[string]any{
					"type":        "string",
					"description": "City the trip takes place in",
				},
				"from": map[string]any{
					"type":        "string",
					"description": "Trip origin, e.g. 'airport' or a hotel name",
				},
				"to": map[string]any{
					"type":        "string",
					"description": "Trip destination",
				},
				"mode": map[string]any{
					"type":        "string",
					"description": "Transport mode: auto, taxi, or rideshare. Default auto.",
				},
			},
			"required": []string{"city", "from", "to"},
		},
	}
}

// Category returns the aggregation key for local fare estimates.
func (t *LocalTransportTool) Category() string { return CategoryLocalTransport }

type localTransportArgs struct {
	City string `json:"city"`
	From string `json:"from"`
	To   string `json:"to"`
	Mode string `json:"mode"`
}

// Execute estimates the fare for the described trip.
func (t *LocalTransportTool) Execute(ctx context.Context, args json.RawMessage) (any, error) {
	var a localTransportArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.City == "" || a.From == "" || a.To == "" {
		return nil, fmt.Errorf("city, from, and to are required")
	}

	mode := a.Mode
	switch mode {
	case "":
		mode = "auto"
	case "auto", "taxi", "rideshare":
	default:
		return nil, fmt.Errorf("mode must be auto, taxi, or rideshare, got %q", mode)
	}

	distance := estimateDistance(a.From, a.To)
	perKm := perKmAutoOrTaxi
	if mode == "rideshare" {
		perKm = perKmRideshare
	}

	return model.TransportEstimate{
		Mode:          mode,
		DistanceKm:    distance,
		DurationMin:   distance * minutesPerKm,
		EstimatedFare: localBaseFare + distance*perKm,
		Currency:      "INR",
		Generated:     true,
	}, nil
}

// estimateDistance guesses the trip distance from landmark names in either
// endpoint, falling back to a typical in-city trip.
func estimateDistance(from, to string) int {
	for _, endpoint := range []string{strings.ToLower(from), strings.ToLower(to)} {
		for landmark, km := range landmarkDistances {
			if strings.Contains(endpoint, landmark) {
				return km
			}
		}
	}
	return defaultTripDistance
}
