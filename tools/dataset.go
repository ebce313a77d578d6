// Generated travel dataset - the locally generated fallback records used
// when no live data source is configured or a lookup fails. Records are
// always flagged Generated so the model can label them as estimates.

package tools

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/safar-ai/safar/model"
)

type hotelSeed struct {
	name          string
	stars         int
	rating        float64
	pricePerNight int
	description   string
}

type attractionSeed struct {
	name        string
	rating      float64
	category    string
	entryFee    int
	description string
}

type restaurantSeed struct {
	name       string
	rating     float64
	cuisine    string
	priceLevel int
	vegetarian bool
}

var hotelSeeds = map[string][]hotelSeed{
	"jaipur": {
		{"Taj Jai Mahal Palace", 5, 4.7, 8500, "Luxury palace hotel"},
		{"ITC Grand Bharat", 5, 4.6, 7800, "Premium heritage hotel"},
		{"Radisson Blu Jaipur", 4, 4.5, 4500, "Business hotel"},
		{"Lemon Tree Premier", 4, 4.3, 3800, "Modern comfort hotel"},
		{"OYO Flagship Jaipur", 3, 4.0, 2200, "Budget hotel"},
		{"FabHotel Prime", 3, 3.9, 1800, "Economy hotel"},
	},
	"goa": {
		{"Taj Exotica Resort", 5, 4.8, 12000, "Luxury beach resort"},
		{"Park Hyatt Goa", 5, 4.7, 10500, "Premium resort"},
		{"Radisson Blu Resort Goa", 4, 4.5, 6500, "Beach resort"},
		{"Sunbeam Holiday Resort", 4, 4.3, 4200, "Comfort resort"},
		{"OYO Rooms Goa", 3, 4.0, 2500, "Budget rooms"},
	},
	"delhi": {
		{"The Oberoi New Delhi", 5, 4.7, 9500, "Luxury hotel"},
		{"ITC Maurya", 5, 4.6, 8800, "Premium hotel"},
		{"Radisson Blu Delhi", 4, 4.4, 5200, "Business hotel"},
		{"Lemon Tree Hotel Delhi", 4, 4.2, 3900, "Comfort hotel"},
		{"OYO Hotel Delhi", 3, 3.9, 2100, "Budget hotel"},
	},
	"mumbai": {
		{"The Taj Mahal Palace", 5, 4.8, 13000, "Iconic luxury hotel"},
		{"Oberoi Mumbai", 5, 4.7, 11500, "Premium hotel"},
		{"Radisson Blu Mumbai", 4, 4.5, 6800, "Business hotel"},
		{"Lemon Tree Hotel Mumbai", 4, 4.3, 4500, "Comfort hotel"},
	},
	"agra": {
		{"The Oberoi Amarvilas", 5, 4.8, 11000, "Taj view luxury hotel"},
		{"ITC Mughal", 5, 4.7, 9200, "Heritage hotel"},
		{"Radisson Blu Agra", 4, 4.5, 5500, "Premium hotel"},
		{"Lemon Tree Hotel Agra", 4, 4.3, 4000, "Comfort hotel"},
	},
}

var attractionSeeds = map[string][]attractionSeed{
	"jaipur": {
		{"Amber Fort", 4.6, "history", 500, "Majestic hilltop fort with stunning architecture"},
		{"Hawa Mahal", 4.4, "history", 200, "Palace of Winds with unique facade"},
		{"City Palace", 4.5, "history", 700, "Royal residence with museums"},
		{"Jantar Mantar", 4.3, "history", 200, "Astronomical observatory"},
		{"Nahargarh Fort", 4.5, "history", 200, "Fort with panoramic city views"},
		{"Jal Mahal", 4.2, "nature", 0, "Water palace in Man Sagar Lake"},
		{"Albert Hall Museum", 4.4, "history", 150, "Oldest museum in Rajasthan"},
		{"Jaigarh Fort", 4.4, "history", 100, "Fort with world's largest cannon"},
	},
	"goa": {
		{"Baga Beach", 4.3, "beaches", 0, "Popular beach with water sports"},
		{"Calangute Beach", 4.2, "beaches", 0, "Queen of beaches"},
		{"Fort Aguada", 4.4, "history", 25, "17th century Portuguese fort"},
		{"Basilica of Bom Jesus", 4.6, "spirituality", 0, "UNESCO World Heritage church"},
		{"Dudhsagar Falls", 4.7, "nature", 400, "Spectacular four-tiered waterfall"},
		{"Anjuna Beach", 4.4, "beaches", 0, "Beach with flea market"},
		{"Palolem Beach", 4.5, "beaches", 0, "Crescent-shaped beach"},
		{"Chapora Fort", 4.3, "history", 0, "Fort with scenic views"},
	},
	"delhi": {
		{"Red Fort", 4.4, "history", 500, "Iconic Mughal fort"},
		{"Qutub Minar", 4.5, "history", 500, "Tallest brick minaret"},
		{"India Gate", 4.5, "history", 0, "War memorial monument"},
		{"Lotus Temple", 4.6, "spirituality", 0, "Bahai House of Worship"},
		{"Humayun's Tomb", 4.5, "history", 500, "Mughal architecture masterpiece"},
		{"Akshardham Temple", 4.7, "spirituality", 0, "Modern Hindu temple complex"},
		{"Chandni Chowk", 4.3, "shopping", 0, "Historic market area"},
		{"Lodhi Gardens", 4.4, "nature", 0, "City park with tombs"},
	},
	"mumbai": {
		{"Gateway of India", 4.5, "history", 0, "Iconic arch monument"},
		{"Marine Drive", 4.6, "nature", 0, "Scenic coastal road"},
		{"Elephanta Caves", 4.4, "history", 600, "Ancient rock-cut temples"},
		{"Chhatrapati Shivaji Terminus", 4.5, "history", 0, "UNESCO heritage railway station"},
		{"Haji Ali Dargah", 4.5, "spirituality", 0, "Mosque on island"},
		{"Juhu Beach", 4.2, "beaches", 0, "Popular city beach"},
		{"Siddhivinayak Temple", 4.6, "spirituality", 0, "Famous Ganesh temple"},
	},
	"agra": {
		{"Taj Mahal", 4.8, "history", 1000, "Wonder of the world"},
		{"Agra Fort", 4.5, "history", 650, "Red sandstone fort"},
		{"Fatehpur Sikri", 4.6, "history", 550, "Abandoned Mughal city"},
		{"Mehtab Bagh", 4.3, "nature", 200, "Garden with Taj view"},
		{"Itmad-ud-Daulah", 4.4, "history", 310, "Baby Taj tomb"},
	},
}

var restaurantSeeds = map[string][]restaurantSeed{
	"jaipur": {
		{"Laxmi Mishthan Bhandar", 4.5, "Rajasthani", 2, true},
		{"Chokhi Dhani", 4.3, "Rajasthani", 3, true},
		{"Peacock Rooftop Restaurant", 4.4, "Multi-cuisine", 3, false},
		{"Rawat Mishthan", 4.5, "Rajasthani", 1, true},
		{"Spice Court", 4.3, "North Indian", 2, false},
		{"Handi Restaurant", 4.4, "Mughlai", 2, false},
	},
	"goa": {
		{"Fisherman's Wharf", 4.4, "Seafood", 3, false},
		{"Thalassa", 4.5, "Greek", 3, false},
		{"Britto's", 4.3, "Goan", 2, false},
		{"Vinayak Family Restaurant", 4.4, "Goan", 2, false},
		{"Infantaria", 4.3, "Bakery", 2, true},
	},
	"delhi": {
		{"Karim's", 4.4, "Mughlai", 2, false},
		{"Paranthe Wali Gali", 4.3, "North Indian", 1, true},
		{"Indian Accent", 4.6, "Modern Indian", 4, false},
		{"Saravana Bhavan", 4.4, "South Indian", 2, true},
		{"Bukhara", 4.5, "North Indian", 4, false},
	},
}

var standardAmenities = []string{"WiFi", "Parking", "Restaurant", "Room Service", "Gym"}

// generatedHotels returns fallback hotels for a city. Unknown cities get a
// small generic set so the tool never comes back empty.
func generatedHotels(city string, maxResults int) []model.Hotel {
	seeds, ok := hotelSeeds[strings.ToLower(city)]
	if !ok {
		seeds = []hotelSeed{
			{fmt.Sprintf("%s Palace Hotel", city), 5, 4.5, 8000, "Luxury hotel"},
			{fmt.Sprintf("%s Grand Hotel", city), 4, 4.3, 4500, "Premium hotel"},
			{fmt.Sprintf("%s Comfort Inn", city), 3, 4.0, 2500, "Budget hotel"},
		}
	}
	if len(seeds) > maxResults {
		seeds = seeds[:maxResults]
	}

	hotels := make([]model.Hotel, 0, len(seeds))
	for _, s := range seeds {
		hotels = append(hotels, model.Hotel{
			Name:          s.name,
			Stars:         s.stars,
			Rating:        s.rating,
			Reviews:       rand.IntN(500) + 100,
			PricePerNight: s.pricePerNight,
			Currency:      "INR",
			Address:       fmt.Sprintf("%s, India", city),
			City:          city,
			Description:   s.description,
			Amenities:     standardAmenities,
			CheckInTime:   "2:00 PM",
			CheckOutTime:  "12:00 PM",
			Generated:     true,
		})
	}
	return hotels
}

// generatedAttractions returns fallback attractions for a city, filtered by
// category and minimum rating.
func generatedAttractions(city string, categories []string, minRating float64, maxResults int) []model.Attraction {
	seeds, ok := attractionSeeds[strings.ToLower(city)]
	if !ok {
		seeds = []attractionSeed{
			{fmt.Sprintf("%s Fort", city), 4.3, "history", 300, "Historic fort"},
			{fmt.Sprintf("%s Palace", city), 4.4, "history", 400, "Royal palace"},
			{fmt.Sprintf("%s Temple", city), 4.5, "spirituality", 0, "Ancient temple"},
			{fmt.Sprintf("%s Market", city), 4.2, "shopping", 0, "Local bazaar"},
			{fmt.Sprintf("%s Museum", city), 4.3, "history", 200, "City museum"},
		}
	}

	wanted := make(map[string]bool, len(categories))
	for _, c := range categories {
		wanted[strings.ToLower(c)] = true
	}

	attractions := make([]model.Attraction, 0, len(seeds))
	for _, s := range seeds {
		if len(wanted) > 0 && !wanted[s.category] {
			continue
		}
		if s.rating < minRating {
			continue
		}
		attractions = append(attractions, model.Attraction{
			Name:        s.name,
			Rating:      s.rating,
			Reviews:     rand.IntN(49000) + 1000,
			Address:     fmt.Sprintf("%s, India", city),
			Category:    s.category,
			EntryFee:    s.entryFee,
			OpenNow:     rand.Float64() > 0.2,
			Description: s.description,
			Generated:   true,
		})
		if len(attractions) == maxResults {
			break
		}
	}
	return attractions
}

// generatedRestaurants returns fallback restaurants for a city, filtered by
// diet, minimum rating, and price level (0 means any).
func generatedRestaurants(city, diet string, minRating float64, priceLevel, maxResults int) []model.Restaurant {
	seeds, ok := restaurantSeeds[strings.ToLower(city)]
	if !ok {
		seeds = []restaurantSeed{
			{fmt.Sprintf("%s Dhaba", city), 4.2, "North Indian", 2, true},
			{fmt.Sprintf("%s Cafe", city), 4.3, "Multi-cuisine", 2, false},
			{fmt.Sprintf("%s Restaurant", city), 4.4, "Local", 2, false},
		}
	}

	restaurants := make([]model.Restaurant, 0, len(seeds))
	for _, s := range seeds {
		switch diet {
		case "vegetarian", "vegan":
			if !s.vegetarian {
				continue
			}
		case "non-veg":
			if s.vegetarian {
				continue
			}
		}
		if s.rating < minRating {
			continue
		}
		if priceLevel > 0 && s.priceLevel != priceLevel {
			continue
		}
		restaurants = append(restaurants, model.Restaurant{
			Name:       s.name,
			Rating:     s.rating,
			Reviews:    rand.IntN(4900) + 100,
			Cuisine:    s.cuisine,
			PriceLevel: s.priceLevel,
			Vegetarian: s.vegetarian,
			Address:    fmt.Sprintf("%s, India", city),
			OpenNow:    rand.Float64() > 0.1,
			Generated:  true,
		})
		if len(restaurants) == maxResults {
			break
		}
	}
	return restaurants
}

// generatedTransport returns fallback intercity options for a mode, bounded
// by a maximum fare (0 means no bound).
func generatedTransport(origin, destination, mode string, maxPrice, maxResults int) []model.TransportOption {
	var options []model.TransportOption
	switch mode {
	case "flight":
		options = []model.TransportOption{
			{Mode: "flight", Carrier: "IndiGo", Number: "6E-123", Departure: "08:00", Arrival: "10:30", Price: 4500, Duration: "2h 30m"},
			{Mode: "flight", Carrier: "Air India", Number: "AI-456", Departure: "14:00", Arrival: "16:45", Price: 5200, Duration: "2h 45m"},
		}
	case "train":
		options = []model.TransportOption{
			{Mode: "train", Carrier: "Shatabdi Express", Number: "12001", Departure: "06:00", Arrival: "12:30", Price: 1200, Class: "AC Chair"},
			{Mode: "train", Carrier: "Rajdhani Express", Number: "12301", Departure: "16:00", Arrival: "22:00", Price: 1800, Class: "2AC"},
		}
	case "bus":
		options = []model.TransportOption{
			{Mode: "bus", Carrier: "RSRTC Volvo", Number: "RJ-101", Departure: "21:00", Arrival: "06:00", Price: 900, Class: "AC Sleeper"},
			{Mode: "bus", Carrier: "VRL Travels", Number: "VRL-88", Departure: "22:30", Arrival: "07:15", Price: 750, Class: "AC Seater"},
		}
	}

	results := make([]model.TransportOption, 0, len(options))
	for _, o := range options {
		if maxPrice > 0 && o.Price > maxPrice {
			continue
		}
		o.Origin = origin
		o.Destination = destination
		o.Generated = true
		results = append(results, o)
		if len(results) == maxResults {
			break
		}
	}
	return results
}
