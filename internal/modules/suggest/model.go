// README: Suggestion value objects for the canned recommendation surface.
package suggest

const modelVersion = "TravelPlanner-AI-v1.0"

// SuggestionRequest is the input for the trip-suggestion operation. All
// fields are optional; an absent destination switches to interest-driven
// suggestions.
type SuggestionRequest struct {
	Destination string   `json:"destination,omitempty"`
	Budget      *float64 `json:"budget,omitempty"`
	Interests   []string `json:"interests,omitempty"`
	Duration    int      `json:"duration,omitempty"`
}

// TripSuggestion is one canned recommendation card.
type TripSuggestion struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Destination     string          `json:"destination"`
	Description     string          `json:"description"`
	EstimatedCost   float64         `json:"estimatedCost"`
	DurationDays    int             `json:"durationDays"`
	ConfidenceScore float64         `json:"confidenceScore"`
	Highlights      []string        `json:"highlights,omitempty"`
	Activities      []Activity      `json:"activities,omitempty"`
	Accommodations  []Accommodation `json:"accommodations,omitempty"`
	Tags            []string        `json:"tags,omitempty"`
	ImageURL        string          `json:"imageUrl,omitempty"`
	Weather         *WeatherInfo    `json:"weather,omitempty"`
}

type Activity struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
	Duration    string  `json:"duration"`
	Category    string  `json:"category"`
	Location    string  `json:"location"`
}

type Accommodation struct {
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	PricePerNight float64 `json:"pricePerNight"`
	Rating        float64 `json:"rating"`
	Location      string  `json:"location"`
}

type WeatherInfo struct {
	Season             string `json:"season"`
	AverageTemperature string `json:"averageTemperature"`
	Description        string `json:"description"`
}

// SuggestionsResponse wraps a suggestion batch with request echo and timing
// metadata.
type SuggestionsResponse struct {
	Suggestions []TripSuggestion `json:"suggestions"`
	Count       int              `json:"count"`
	GeneratedAt string           `json:"generatedAt"`
	Metadata    Metadata         `json:"metadata"`
}

type Metadata struct {
	Request        SuggestionRequest `json:"request"`
	ProcessingTime int64             `json:"processingTimeMs"`
	ModelVersion   string            `json:"modelVersion"`
}
