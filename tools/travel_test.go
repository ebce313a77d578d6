package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/safar-ai/safar/model"
)

func TestHotelsToolGeneratedFallback(t *testing.T) {
	tool := NewHotelsTool(Config{})

	result, err := tool.Execute(context.Background(),
		json.RawMessage(`{"city":"Jaipur","maxResults":3}`))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	hotels, ok := result.([]model.Hotel)
	if !ok {
		t.Fatalf("result type = %T, want []model.Hotel", result)
	}
	if len(hotels) != 3 {
		t.Fatalf("got %d hotels, want 3", len(hotels))
	}
	for _, h := range hotels {
		if !h.Generated {
			t.Errorf("hotel %q should be flagged generated", h.Name)
		}
		if h.Currency != "INR" {
			t.Errorf("hotel %q currency = %q, want INR", h.Name, h.Currency)
		}
	}
}

func TestHotelsToolPriceAndRatingFilters(t *testing.T) {
	tool := NewHotelsTool(Config{})

	result, err := tool.Execute(context.Background(),
		json.RawMessage(`{"city":"Jaipur","maxPrice":4000,"minRating":4.0}`))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	for _, h := range result.([]model.Hotel) {
		if h.PricePerNight > 4000 {
			t.Errorf("hotel %q price %d exceeds maxPrice", h.Name, h.PricePerNight)
		}
		if h.Rating < 4.0 {
			t.Errorf("hotel %q rating %.1f below minRating", h.Name, h.Rating)
		}
	}
}

func TestHotelsToolUnknownCity(t *testing.T) {
	tool := NewHotelsTool(Config{})

	result, err := tool.Execute(context.Background(),
		json.RawMessage(`{"city":"Atlantis"}`))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(result.([]model.Hotel)) == 0 {
		t.Error("unknown city should still return generated hotels")
	}
}

func TestHotelsToolRequiresCity(t *testing.T) {
	tool := NewHotelsTool(Config{})
	if _, err := tool.Execute(context.Background(), json.RawMessage(`{}`)); err == nil {
		t.Error("expected error when city is missing")
	}
}

func TestAttractionsToolCategoryFilter(t *testing.T) {
	tool := NewAttractionsTool(Config{})

	result, err := tool.Execute(context.Background(),
		json.RawMessage(`{"city":"Goa","categories":["beaches"]}`))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	attractions := result.([]model.Attraction)
	if len(attractions) == 0 {
		t.Fatal("expected beach attractions in Goa")
	}
	for _, a := range attractions {
		if a.Category != "beaches" {
			t.Errorf("attraction %q category = %q, want beaches", a.Name, a.Category)
		}
	}
}

func TestAttractionsToolMinRating(t *testing.T) {
	tool := NewAttractionsTool(Config{})

	result, err := tool.Execute(context.Background(),
		json.RawMessage(`{"city":"Jaipur","minRating":4.5}`))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	for _, a := range result.([]model.Attraction) {
		if a.Rating < 4.5 {
			t.Errorf("attraction %q rating %.1f below minRating", a.Name, a.Rating)
		}
	}
}

func TestRestaurantsToolVegetarianFilter(t *testing.T) {
	tool := NewRestaurantsTool(Config{})

	result, err := tool.Execute(context.Background(),
		json.RawMessage(`{"city":"Jaipur","diet":"vegetarian"}`))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	restaurants := result.([]model.Restaurant)
	if len(restaurants) == 0 {
		t.Fatal("expected vegetarian restaurants in Jaipur")
	}
	for _, r := range restaurants {
		if !r.Vegetarian {
			t.Errorf("restaurant %q is not vegetarian", r.Name)
		}
	}
}

func TestTransportToolModeValidation(t *testing.T) {
	tool := NewTransportTool(Config{})

	_, err := tool.Execute(context.Background(),
		json.RawMessage(`{"origin":"Delhi","destination":"Jaipur","mode":"teleport"}`))
	if err == nil {
		t.Error("expected error for invalid mode")
	}
}

func TestTransportToolTrainOptions(t *testing.T) {
	tool := NewTransportTool(Config{})

	result, err := tool.Execute(context.Background(),
		json.RawMessage(`{"origin":"Delhi","destination":"Jaipur","mode":"train"}`))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	options := result.([]model.TransportOption)
	if len(options) == 0 {
		t.Fatal("expected train options")
	}
	for _, o := range options {
		if o.Mode != "train" {
			t.Errorf("option mode = %q, want train", o.Mode)
		}
		if o.Origin != "Delhi" || o.Destination != "Jaipur" {
			t.Errorf("option route = %s->%s, want Delhi->Jaipur", o.Origin, o.Destination)
		}
	}
}

func TestTransportToolMaxPrice(t *testing.T) {
	tool := NewTransportTool(Config{})

	result, err := tool.Execute(context.Background(),
		json.RawMessage(`{"origin":"Delhi","destination":"Goa","mode":"flight","maxPrice":5000}`))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	for _, o := range result.([]model.TransportOption) {
		if o.Price > 5000 {
			t.Errorf("option %s price %d exceeds maxPrice", o.Number, o.Price)
		}
	}
}

func TestLocalTransportFareModel(t *testing.T) {
	tool := NewLocalTransportTool(Config{})

	tests := []struct {
		name       string
		args       string
		wantKm     int
		wantFare   int
		wantMode   string
		wantMinute int
	}{
		{
			name:       "airport pickup by auto",
			args:       `{"city":"Jaipur","from":"Jaipur Airport","to":"Taj Jai Mahal Palace"}`,
			wantKm:     15,
			wantFare:   50 + 15*18,
			wantMode:   "auto",
			wantMinute: 45,
		},
		{
			name:       "railway station by rideshare",
			args:       `{"city":"Delhi","from":"New Delhi Railway Station","to":"hotel","mode":"rideshare"}`,
			wantKm:     5,
			wantFare:   50 + 5*12,
			wantMode:   "rideshare",
			wantMinute: 15,
		},
		{
			name:       "unknown endpoints use default distance",
			args:       `{"city":"Goa","from":"Baga Beach","to":"Calangute","mode":"taxi"}`,
			wantKm:     10,
			wantFare:   50 + 10*18,
			wantMode:   "taxi",
			wantMinute: 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tool.Execute(context.Background(), json.RawMessage(tt.args))
			if err != nil {
				t.Fatalf("Execute failed: %v", err)
			}

			estimate := result.(model.TransportEstimate)
			if estimate.DistanceKm != tt.wantKm {
				t.Errorf("distance = %d, want %d", estimate.DistanceKm, tt.wantKm)
			}
			if estimate.EstimatedFare != tt.wantFare {
				t.Errorf("fare = %d, want %d", estimate.EstimatedFare, tt.wantFare)
			}
			if estimate.Mode != tt.wantMode {
				t.Errorf("mode = %q, want %q", estimate.Mode, tt.wantMode)
			}
			if estimate.DurationMin != tt.wantMinute {
				t.Errorf("duration = %d, want %d", estimate.DurationMin, tt.wantMinute)
			}
		})
	}
}

func TestLocalTransportInvalidMode(t *testing.T) {
	tool := NewLocalTransportTool(Config{})

	_, err := tool.Execute(context.Background(),
		json.RawMessage(`{"city":"Goa","from":"a","to":"b","mode":"helicopter"}`))
	if err == nil {
		t.Error("expected error for invalid mode")
	}
}
