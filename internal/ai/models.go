package ai

// TripParameters describes the trip a plan is requested for. It is the typed
// replacement for the loose key/value payload the HTTP layer receives.
type TripParameters struct {
	Destination string   `json:"destination"`
	Duration    int      `json:"duration"`
	Interests   []string `json:"interests,omitempty"`

	// Budget is the total trip budget. Nil means the traveler gave none,
	// which is distinct from a zero budget.
	Budget *float64 `json:"budget,omitempty"`

	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// ProfileContext carries free-form traveler attributes. The pipeline passes
// them through to the prompt verbatim and never interprets them.
type ProfileContext map[string]string

// Activity is one scheduled item inside a daily itinerary.
type Activity struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Type          string  `json:"type"`
	Location      string  `json:"location"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	EstimatedCost float64 `json:"estimatedCost"`
	Duration      string  `json:"duration"`
}

// DailyItinerary is the ordered set of activities for one calendar day.
type DailyItinerary struct {
	Day        string     `json:"day"`
	Date       string     `json:"date"`
	Activities []Activity `json:"activities"`
}

// TripPlan is the result returned to callers. Once built it is never mutated.
type TripPlan struct {
	Success          bool             `json:"success"`
	Destination      string           `json:"destination"`
	Duration         int              `json:"duration"`
	StartDate        string           `json:"startDate"`
	EndDate          string           `json:"endDate"`
	TotalBudget      float64          `json:"totalBudget"`
	DailyItineraries []DailyItinerary `json:"dailyItineraries"`
	GeneratedAt      string           `json:"generatedAt"`
	AIModel          string           `json:"aiModel"`
}

// rawTripPlan is the decode target for model-generated JSON. Pointer fields
// keep "absent" distinguishable from zero values so validation can fill gaps
// without overwriting anything the model did return.
type rawTripPlan struct {
	Success          *bool            `json:"success"`
	Destination      *string          `json:"destination"`
	Duration         *int             `json:"duration"`
	StartDate        *string          `json:"startDate"`
	EndDate          *string          `json:"endDate"`
	TotalBudget      *float64         `json:"totalBudget"`
	DailyItineraries []DailyItinerary `json:"dailyItineraries"`
	GeneratedAt      *string          `json:"generatedAt"`
	AIModel          *string          `json:"aiModel"`
}
