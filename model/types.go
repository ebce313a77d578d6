// Package model provides the travel domain records shared across packages.
//
// These are the structured payloads tools return: they flow into the
// orchestrator's aggregated response data and are rendered by downstream
// presentation layers. All prices are INR.
package model

// Hotel is a single lodging option.
type Hotel struct {
	Name          string   `json:"name"`
	Stars         int      `json:"stars"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	PricePerNight int      `json:"pricePerNight"`
	Currency      string   `json:"currency"`
	Address       string   `json:"address"`
	City          string   `json:"city"`
	Description   string   `json:"description"`
	Amenities     []string `json:"amenities"`
	CheckInTime   string   `json:"checkInTime"`
	CheckOutTime  string   `json:"checkOutTime"`
	Generated     bool     `json:"generated"` // locally generated, not live data
}

// Attraction is a point of interest.
type Attraction struct {
	Name        string  `json:"name"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
	Address     string  `json:"address"`
	Category    string  `json:"category"`
	EntryFee    int     `json:"entryFee"`
	OpenNow     bool    `json:"openNow"`
	Description string  `json:"description"`
	Generated   bool    `json:"generated"`
}

// Restaurant is a dining option. PriceLevel runs 1 (budget) to 4 (luxury).
type Restaurant struct {
	Name       string  `json:"name"`
	Rating     float64 `json:"rating"`
	Reviews    int     `json:"reviews"`
	Cuisine    string  `json:"cuisine"`
	PriceLevel int     `json:"priceLevel"`
	Vegetarian bool    `json:"vegetarian"`
	Address    string  `json:"address"`
	OpenNow    bool    `json:"openNow"`
	Generated  bool    `json:"generated"`
}

// TransportOption is one intercity flight, train, or bus.
type TransportOption struct {
	Mode        string `json:"mode"`
	Carrier     string `json:"carrier"`
	Number      string `json:"number"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Departure   string `json:"departure"`
	Arrival     string `json:"arrival"`
	Duration    string `json:"duration,omitempty"`
	Class       string `json:"class,omitempty"`
	Price       int    `json:"price"`
	Generated   bool   `json:"generated"`
}

// TransportEstimate is a local fare estimate within a city.
type TransportEstimate struct {
	Mode          string `json:"mode"`
	DistanceKm    int    `json:"distanceKm"`
	DurationMin   int    `json:"durationMin"`
	EstimatedFare int    `json:"estimatedFare"`
	Currency      string `json:"currency"`
	Generated     bool   `json:"generated"`
}

// Itinerary is the structured export of a planned trip, produced by the
// model on request over an existing conversation.
type Itinerary struct {
	Destination string         `json:"destination"`
	StartDate   string         `json:"startDate"`
	EndDate     string         `json:"endDate"`
	Travelers   int            `json:"travelers"`
	Hotel       *Hotel         `json:"hotel,omitempty"`
	Days        []ItineraryDay `json:"days"`
	TotalCost   int            `json:"totalCost"`
	Notes       string         `json:"notes,omitempty"`
}

// ItineraryDay is one day of an itinerary.
type ItineraryDay struct {
	Day        int             `json:"day"`
	Date       string          `json:"date"`
	Theme      string          `json:"theme,omitempty"`
	Activities []ItineraryItem `json:"activities"`
	DayCost    int             `json:"dayCost"`
}

// ItineraryItem is a single scheduled activity, meal, or transfer.
type ItineraryItem struct {
	Time        string `json:"time"`
	Kind        string `json:"kind"` // attraction, meal, transfer
	Name        string `json:"name"`
	Cost        int    `json:"cost"`
	Description string `json:"description,omitempty"`
}
