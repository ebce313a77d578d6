package json

import (
	"testing"

	"github.com/safar-ai/safar/model"
)

const itineraryJSON = `{"destination":"Jaipur","startDate":"2026-09-10","travelers":2,"days":[{"day":1,"date":"2026-09-10","activities":[{"time":"09:00","kind":"attraction","name":"Amber Fort","cost":500}],"dayCost":500}],"totalCost":500}`

func TestExtractItineraryVariants(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"pure JSON", itineraryJSON},
		{"json fence", "```json\n" + itineraryJSON + "\n```"},
		{"bare fence", "```\n" + itineraryJSON + "\n```"},
		{"embedded in prose", "Here is your itinerary:\n" + itineraryJSON + "\nSafe travels!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			itinerary, err := ExtractJSONFromResponse[model.Itinerary](tt.response)
			if err != nil {
				t.Fatalf("ExtractJSONFromResponse failed: %v", err)
			}
			if itinerary.Destination != "Jaipur" {
				t.Errorf("destination = %q, want Jaipur", itinerary.Destination)
			}
			if itinerary.TotalCost != 500 {
				t.Errorf("totalCost = %d, want 500", itinerary.TotalCost)
			}
			if len(itinerary.Days) != 1 || len(itinerary.Days[0].Activities) != 1 {
				t.Errorf("days = %+v", itinerary.Days)
			}
		})
	}
}

func TestExtractNoObject(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"plain text", "I could not build an itinerary from this conversation."},
		{"unbalanced braces", "{ destination: Jaipur"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ExtractJSONFromResponse[model.Itinerary](tt.response); err == nil {
				t.Error("expected extraction error")
			}
		})
	}
}

func TestExtractMismatchedShape(t *testing.T) {
	// A valid object that doesn't decode into the target type.
	_, err := ExtractJSONFromResponse[model.Itinerary](`{"travelers":"two"}`)
	if err == nil {
		t.Error("expected unmarshal error for wrong field type")
	}
}
