// README: Deterministic itinerary synthesis used when generation is unavailable.
package ai

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const fallbackModelTag = "Fallback Service (Google AI unavailable)"

// generateFallbackPlan synthesises a complete plan from rules alone. It
// cannot fail: every duration ≥ 1 yields exactly duration days with four
// activities each.
func generateFallbackPlan(params TripParameters) TripPlan {
	days := make([]DailyItinerary, 0, params.Duration)
	for day := 1; day <= params.Duration; day++ {
		days = append(days, DailyItinerary{
			Day:        fmt.Sprintf("Day %d", day),
			Date:       calculateDate(params.StartDate, day-1),
			Activities: fallbackDayActivities(params.Destination, params.Interests, day),
		})
	}

	budget := 1000.0
	if params.Budget != nil {
		budget = *params.Budget
	}

	return TripPlan{
		Success:          true,
		Destination:      params.Destination,
		Duration:         params.Duration,
		StartDate:        params.StartDate,
		EndDate:          params.EndDate,
		TotalBudget:      budget,
		DailyItineraries: days,
		GeneratedAt:      time.Now().Format(timestampLayout),
		AIModel:          fallbackModelTag,
	}
}

// fallbackDayActivities fills the four fixed slots for one day: morning
// attraction, lunch, interest-driven afternoon, dinner.
func fallbackDayActivities(destination string, interests []string, dayNumber int) []Activity {
	return []Activity{
		newFallbackActivity(
			"Morning Exploration",
			"Start your day exploring the historic center of "+destination,
			"attraction", destination, "09:00", "12:00",
		),
		newFallbackActivity(
			fallbackLunchRestaurant(destination),
			"Enjoy authentic local cuisine at this highly-rated restaurant",
			"restaurant", destination, "12:30", "14:00",
		),
		newFallbackActivity(
			fallbackAfternoonActivity(destination, dayNumber),
			"Afternoon activity tailored to your interests in "+destination,
			fallbackActivityType(interests), destination, "15:00", "18:00",
		),
		newFallbackActivity(
			fallbackDinnerRestaurant(destination),
			"End your day with a memorable dining experience",
			"restaurant", destination, "19:30", "21:30",
		),
	}
}

func newFallbackActivity(name, description, typ, location, startTime, endTime string) Activity {
	return Activity{
		Name:          name,
		Description:   description,
		Type:          typ,
		Location:      location,
		StartTime:     startTime,
		EndTime:       endTime,
		EstimatedCost: fallbackEstimatedCost(typ),
		Duration:      formatDuration(startTime, endTime),
	}
}

// Destination lookups are case-insensitive substring matches so that
// "Lisbon, Portugal" and "lisbon" resolve the same names.

func fallbackLunchRestaurant(destination string) string {
	switch {
	case containsFold(destination, "lisbon"):
		return "Pastéis de Belém"
	case containsFold(destination, "paris"):
		return "Le Comptoir du Relais"
	default:
		return "Local Cuisine Restaurant"
	}
}

func fallbackDinnerRestaurant(destination string) string {
	switch {
	case containsFold(destination, "lisbon"):
		return "Taberna do Real Fado"
	case containsFold(destination, "paris"):
		return "L'Ami Jean"
	default:
		return "Traditional Local Restaurant"
	}
}

func fallbackAfternoonActivity(destination string, dayNumber int) string {
	switch {
	case containsFold(destination, "lisbon"):
		switch dayNumber {
		case 1:
			return "Explore Belém Tower and Jerónimos Monastery"
		case 2:
			return "Wander through Alfama's narrow streets"
		case 3:
			return "Day trip to Sintra Palace"
		default:
			return "Explore Chiado district"
		}
	case containsFold(destination, "paris"):
		switch dayNumber {
		case 1:
			return "Visit the Louvre Museum"
		case 2:
			return "Climb the Eiffel Tower"
		case 3:
			return "Stroll through Montmartre"
		default:
			return "Explore Latin Quarter"
		}
	default:
		return "Visit main attractions in " + destination
	}
}

// fallbackActivityType derives the afternoon slot's type from the interest
// tags. A nil list matches nothing and defaults to "attraction".
func fallbackActivityType(interests []string) string {
	for _, interest := range interests {
		switch interest {
		case "museums", "art":
			return "cultural"
		}
	}
	for _, interest := range interests {
		switch interest {
		case "outdoor", "hiking":
			return "outdoor"
		}
	}
	return "attraction"
}

// fallbackEstimatedCost is a closed lookup table keyed by activity type.
func fallbackEstimatedCost(typ string) float64 {
	switch typ {
	case "restaurant":
		return 35.0
	case "cultural", "museum":
		return 15.0
	case "attraction":
		return 20.0
	case "outdoor":
		return 10.0
	default:
		return 25.0
	}
}

// formatDuration renders the span between two same-day HH:MM times as
// "XhYm", dropping the minutes part on exact hours and the hours part under
// one hour.
func formatDuration(startTime, endTime string) string {
	start, okStart := parseClockMinutes(startTime)
	end, okEnd := parseClockMinutes(endTime)
	if !okStart || !okEnd {
		return ""
	}
	minutes := end - start

	if minutes >= 60 {
		h := minutes / 60
		m := minutes % 60
		if m > 0 {
			return fmt.Sprintf("%dh %dm", h, m)
		}
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", minutes)
}

// parseClockMinutes converts "HH:MM" to minutes since midnight.
func parseClockMinutes(clock string) (int, bool) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return h*60 + m, true
}

// calculateDate advances the trip start date by daysToAdd. An unparseable
// start date passes through unchanged for every day.
func calculateDate(startDate string, daysToAdd int) string {
	t, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return startDate
	}
	return t.AddDate(0, 0, daysToAdd).Format(dateLayout)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}
