// Hotel search tool.
//
// Information Hiding:
// - Data source selection (SerpAPI vs generated dataset) hidden
// - SerpAPI request/response shape hidden

package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/safar-ai/safar/llm"
	"github.com/safar-ai/safar/model"
)

const defaultHotelResults = 5

// HotelsTool searches lodging options for a city. With a SerpAPI key it
// queries the Google Hotels engine and falls back to the generated dataset on
// any failure; without a key it serves generated data directly.
type HotelsTool struct {
	apiKey string
	client *http.Client
	logger zerolog.Logger
}

// NewHotelsTool creates the hotel search tool from shared tool config.
func NewHotelsTool(cfg Config) *HotelsTool {
	return &HotelsTool{
		apiKey: cfg.SerpAPIKey,
		client: &http.Client{Timeout: cfg.httpTimeout()},
		logger: cfg.Logger,
	}
}

// Declaration returns the tool definition advertised to the model.
func (t *HotelsTool) Declaration() llm.ToolDefinition {
	return llm.ToolDefinition{
		Name:        "getHotels",
		Description: "Search for hotels in a city with optional price and rating filters. Returns hotel names, prices per night in INR, ratings, and amenities.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"city": map[string]any{
					"type":        "string",
					"description": "City to search hotels in, e.g. 'Jaipur'",
				},
				"checkIn": map[string]any{
					"type":        "string",
					"description": "Check-in date in YYYY-MM-DD format",
				},
				"checkOut": map[string]any{
					"type":        "string",
					"description": "Check-out date in YYYY-MM-DD format",
				},
				"maxPrice": map[string]any{
					"type":        "number",
					"description": "Maximum price per night in INR",
				},
				"minRating": map[string]any{
					"type":        "number",
					"description": "Minimum guest rating from 0 to 5",
				},
				"maxResults": map[string]any{
					"type":        "number",
					"description": "Maximum number of results to return, default 5",
				},
			},
			"required": []string{"city"},
		},
	}
}

// Category returns the aggregation key for hotel results.
func (t *HotelsTool) Category() string { return CategoryHotels }

type hotelArgs struct {
	City       string  `json:"city"`
	CheckIn    string  `json:"checkIn"`
	CheckOut   string  `json:"checkOut"`
	MaxPrice   int     `json:"maxPrice"`
	MinRating  float64 `json:"minRating"`
	MaxResults int     `json:"maxResults"`
}

// Execute searches hotels, preferring live data when available.
func (t *HotelsTool) Execute(ctx context.Context, args json.RawMessage) (any, error) {
	var a hotelArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.City == "" {
		return nil, fmt.Errorf("city is required")
	}
	limit := clampResults(a.MaxResults, defaultHotelResults)

	if t.apiKey != "" {
		hotels, err := t.searchLive(ctx, a, limit)
		if err == nil && len(hotels) > 0 {
			return filterHotels(hotels, a.MaxPrice, a.MinRating, limit), nil
		}
		if err != nil {
			t.logger.Warn().Err(err).Str("city", a.City).
				Msg("live hotel search failed, serving generated data")
		}
	}

	// Draw a larger pool than requested so filters don't starve the result.
	return filterHotels(generatedHotels(a.City, limit*4), a.MaxPrice, a.MinRating, limit), nil
}

func filterHotels(hotels []model.Hotel, maxPrice int, minRating float64, limit int) []model.Hotel {
	filtered := make([]model.Hotel, 0, len(hotels))
	for _, h := range hotels {
		if maxPrice > 0 && h.PricePerNight > maxPrice {
			continue
		}
		if h.Rating < minRating {
			continue
		}
		filtered = append(filtered, h)
		if len(filtered) == limit {
			break
		}
	}
	return filtered
}

// serpHotelsResponse mirrors the subset of the SerpAPI google_hotels payload
// this tool consumes.
type serpHotelsResponse struct {
	Properties []struct {
		Name          string  `json:"name"`
		HotelClass    string  `json:"hotel_class"`
		OverallRating float64 `json:"overall_rating"`
		Reviews       int     `json:"reviews"`
		RatePerNight  struct {
			ExtractedLowest int `json:"extracted_lowest"`
		} `json:"rate_per_night"`
		CheckInTime  string   `json:"check_in_time"`
		CheckOutTime string   `json:"check_out_time"`
		Description  string   `json:"description"`
		Amenities    []string `json:"amenities"`
	} `json:"properties"`
	Error string `json:"error"`
}

func (t *HotelsTool) searchLive(ctx context.Context, a hotelArgs, limit int) ([]model.Hotel, error) {
	checkIn := a.CheckIn
	checkOut := a.CheckOut
	if checkIn == "" {
		checkIn = time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	}
	if checkOut == "" {
		checkOut = time.Now().AddDate(0, 0, 9).Format("2006-01-02")
	}

	params := url.Values{}
	params.Set("engine", "google_hotels")
	params.Set("q", a.City+" hotels")
	params.Set("check_in_date", checkIn)
	params.Set("check_out_date", checkOut)
	params.Set("currency", "INR")
	params.Set("gl", "in")
	params.Set("api_key", t.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		"https://serpapi.com/search.json?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hotel search request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("hotel search returned %s", resp.Status)
	}

	var payload serpHotelsResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode hotel response: %w", err)
	}
	if payload.Error != "" {
		return nil, fmt.Errorf("hotel search error: %s", payload.Error)
	}

	hotels := make([]model.Hotel, 0, limit)
	for _, p := range payload.Properties {
		if p.Name == "" || p.RatePerNight.ExtractedLowest == 0 {
			continue
		}
		hotels = append(hotels, model.Hotel{
			Name:          p.Name,
			Stars:         parseHotelClass(p.HotelClass),
			Rating:        p.OverallRating,
			Reviews:       p.Reviews,
			PricePerNight: p.RatePerNight.ExtractedLowest,
			Currency:      "INR",
			Address:       fmt.Sprintf("%s, India", a.City),
			City:          a.City,
			Description:   p.Description,
			Amenities:     p.Amenities,
			CheckInTime:   p.CheckInTime,
			CheckOutTime:  p.CheckOutTime,
		})
		if len(hotels) == limit {
			break
		}
	}
	return hotels, nil
}

// parseHotelClass extracts the leading digit from strings like "5-star hotel".
func parseHotelClass(class string) int {
	if class == "" {
		return 0
	}
	if c := class[0]; c >= '1' && c <= '5' {
		return int(c - '0')
	}
	return 0
}
