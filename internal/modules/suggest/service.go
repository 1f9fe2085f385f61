// README: Rule-based suggestion service (trending, personalized, activities).
package suggest

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

const timestampLayout = "2006-01-02T15:04:05"

// Service produces canned, rule-based suggestions. No external calls are
// involved; the only I/O is the optional trending cache.
type Service struct {
	cache *Cache
}

// NewService returns a suggestion service. cache may be nil, in which case
// trending results are recomputed on every call.
func NewService(cache *Cache) *Service {
	return &Service{cache: cache}
}

// TripSuggestions builds a suggestion batch for the request, driven by the
// destination when present and by interests otherwise.
func (s *Service) TripSuggestions(req SuggestionRequest) SuggestionsResponse {
	start := time.Now()

	var suggestions []TripSuggestion
	if strings.TrimSpace(req.Destination) == "" {
		suggestions = s.byInterests(req.Interests, req.Budget)
	} else {
		suggestions = s.forDestination(req.Destination, req.Budget, req.Interests)
	}

	return SuggestionsResponse{
		Suggestions: suggestions,
		Count:       len(suggestions),
		GeneratedAt: time.Now().Format(timestampLayout),
		Metadata: Metadata{
			Request:        req,
			ProcessingTime: time.Since(start).Milliseconds(),
			ModelVersion:   modelVersion,
		},
	}
}

// TrendingDestinations returns the fixed trending set, via the cache when
// one is configured.
func (s *Service) TrendingDestinations(ctx context.Context) []TripSuggestion {
	if s.cache != nil {
		if cached, ok := s.cache.GetTrending(ctx); ok {
			return cached
		}
	}

	trending := buildTrending()

	if s.cache != nil {
		if err := s.cache.SetTrending(ctx, trending); err != nil {
			log.Printf("suggest: caching trending failed: %v", err)
		}
	}
	return trending
}

func buildTrending() []TripSuggestion {
	paris := newSuggestion(
		"Paris City of Light Adventure",
		"Paris, France",
		"Experience the magic of Paris with iconic landmarks, world-class museums, and exquisite cuisine. Perfect for art lovers and romantics.",
		1200, 5, 0.92,
	)
	paris.Highlights = []string{"Eiffel Tower", "Louvre Museum", "Notre-Dame", "Seine River Cruise"}
	paris.Tags = []string{"Culture", "Romance", "Art", "History"}
	paris.ImageURL = "https://images.unsplash.com/photo-1502602898536-47ad22581b52"

	tokyo := newSuggestion(
		"Modern Tokyo Cultural Experience",
		"Tokyo, Japan",
		"Immerse yourself in the perfect blend of ancient traditions and cutting-edge technology in Japan's vibrant capital.",
		1800, 7, 0.89,
	)
	tokyo.Highlights = []string{"Shibuya Crossing", "Tokyo Skytree", "Senso-ji Temple", "Tsukiji Fish Market"}
	tokyo.Tags = []string{"Culture", "Technology", "Food", "Adventure"}
	tokyo.ImageURL = "https://images.unsplash.com/photo-1540959733332-eab4deabeeaf"

	santorini := newSuggestion(
		"Santorini Sunset Paradise",
		"Santorini, Greece",
		"Relax in this stunning Greek island paradise with breathtaking sunsets, white-washed buildings, and crystal-clear waters.",
		900, 4, 0.95,
	)
	santorini.Highlights = []string{"Oia Sunset", "Red Beach", "Wine Tasting", "Caldera Views"}
	santorini.Tags = []string{"Beach", "Romance", "Relaxation", "Photography"}
	santorini.ImageURL = "https://images.unsplash.com/photo-1570077188670-e3a8d69ac5ff"

	return []TripSuggestion{paris, tokyo, santorini}
}

// PersonalizedSuggestions maps interest tags to themed trips. Unknown
// interests contribute nothing.
func (s *Service) PersonalizedSuggestions(userID string, interests []string) []TripSuggestion {
	personalized := []TripSuggestion{}

	if containsTag(interests, "Adventure") {
		adventure := newSuggestion(
			"New Zealand Adventure Quest",
			"Queenstown, New Zealand",
			"Experience the adventure capital of the world with bungee jumping, skydiving, and stunning landscapes.",
			2200, 10, 0.88,
		)
		adventure.Tags = []string{"Adventure", "Nature", "Extreme Sports"}
		personalized = append(personalized, adventure)
	}

	if containsTag(interests, "Culture") {
		culture := newSuggestion(
			"Kyoto Traditional Japan",
			"Kyoto, Japan",
			"Discover ancient Japan through traditional temples, gardens, and authentic cultural experiences.",
			1500, 6, 0.91,
		)
		culture.Tags = []string{"Culture", "History", "Spirituality"}
		personalized = append(personalized, culture)
	}

	if containsTag(interests, "Beach") {
		beach := newSuggestion(
			"Maldives Tropical Escape",
			"Maldives",
			"Ultimate tropical paradise with overwater bungalows, pristine beaches, and world-class diving.",
			3000, 8, 0.93,
		)
		beach.Tags = []string{"Beach", "Luxury", "Relaxation", "Diving"}
		personalized = append(personalized, beach)
	}

	return personalized
}

// PopularDestinations is a fixed ranked list.
func (s *Service) PopularDestinations() []string {
	return []string{
		"Paris, France",
		"Tokyo, Japan",
		"New York, USA",
		"London, UK",
		"Rome, Italy",
		"Barcelona, Spain",
		"Amsterdam, Netherlands",
		"Prague, Czech Republic",
		"Istanbul, Turkey",
		"Marrakech, Morocco",
	}
}

// ActivityRecommendations returns destination- and interest-specific
// single-day activities.
func (s *Service) ActivityRecommendations(destination string, interests []string) []TripSuggestion {
	activities := []TripSuggestion{}

	if strings.Contains(strings.ToLower(destination), "paris") && containsTag(interests, "Art") {
		activities = append(activities, newSuggestion(
			"Paris Art Museum Tour",
			"Paris, France",
			"Comprehensive tour of Paris's world-renowned art museums including the Louvre and Musée d'Orsay.",
			150, 1, 0.87,
		))
	}

	return activities
}

func (s *Service) byInterests(interests []string, budget *float64) []TripSuggestion {
	suggestions := []TripSuggestion{}
	for _, interest := range interests {
		switch strings.ToLower(interest) {
		case "culture":
			suggestions = append(suggestions, newSuggestion(
				"Cultural Heritage Experience",
				"Florence, Italy",
				"Immerse yourself in Renaissance art and architecture in the birthplace of the Renaissance.",
				budgetOr(budget, 1400), 6, 0.89,
			))
		case "adventure":
			suggestions = append(suggestions, newSuggestion(
				"Mountain Adventure Expedition",
				"Swiss Alps, Switzerland",
				"Experience thrilling mountain adventures with hiking, skiing, and breathtaking Alpine views.",
				budgetOr(budget, 2000), 8, 0.86,
			))
		case "beach":
			suggestions = append(suggestions, newSuggestion(
				"Tropical Beach Paradise",
				"Bali, Indonesia",
				"Relax on pristine beaches, explore ancient temples, and enjoy the vibrant local culture.",
				budgetOr(budget, 1100), 9, 0.91,
			))
		case "food":
			suggestions = append(suggestions, newSuggestion(
				"Culinary Journey",
				"Lyon, France",
				"Discover the gastronomic capital of France with cooking classes and restaurant tours.",
				budgetOr(budget, 1300), 5, 0.88,
			))
		default:
			suggestions = append(suggestions, newSuggestion(
				"City Discovery Adventure",
				"Amsterdam, Netherlands",
				"Explore charming canals, world-class museums, and vibrant neighborhoods.",
				budgetOr(budget, 1000), 4, 0.84,
			))
		}
	}
	return suggestions
}

func (s *Service) forDestination(destination string, budget *float64, interests []string) []TripSuggestion {
	suggestion := newSuggestion(
		"Explore "+destination,
		destination,
		"Discover the best of "+destination+" with personalized recommendations based on your interests.",
		budgetOr(budget, 1000), 7, 0.85,
	)
	suggestion.Tags = interests
	return []TripSuggestion{suggestion}
}

// newSuggestion assembles a card with the stock activity, accommodation and
// weather blocks every canned suggestion carries.
func newSuggestion(title, destination, description string, cost float64, durationDays int, confidence float64) TripSuggestion {
	return TripSuggestion{
		ID:              uuid.NewString(),
		Title:           title,
		Destination:     destination,
		Description:     description,
		EstimatedCost:   cost,
		DurationDays:    durationDays,
		ConfidenceScore: confidence,
		Activities: []Activity{{
			Name:        "City Tour",
			Description: "Guided tour of main attractions",
			Cost:        50,
			Duration:    "3 hours",
			Category:    "Sightseeing",
			Location:    destination,
		}},
		Accommodations: []Accommodation{{
			Name:          "City Center Hotel",
			Type:          "Hotel",
			PricePerNight: 120,
			Rating:        4.2,
			Location:      "Downtown",
		}},
		Weather: &WeatherInfo{
			Season:             "Spring",
			AverageTemperature: "18-22°C",
			Description:        "Mild and pleasant weather",
		},
	}
}

func budgetOr(budget *float64, def float64) float64 {
	if budget != nil {
		return *budget
	}
	return def
}

func containsTag(tags []string, want string) bool {
	for _, tag := range tags {
		if tag == want {
			return true
		}
	}
	return false
}
