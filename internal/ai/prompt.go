// README: Prompt construction for trip-plan generation.
package ai

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// buildTripPlanPrompt renders the generation instructions for one request.
// Pure formatting: empty destinations or dates interpolate as blanks and the
// optional fields fall back to readable placeholders.
func buildTripPlanPrompt(profile ProfileContext, params TripParameters) string {
	interests := "general tourism"
	if len(params.Interests) > 0 {
		interests = strings.Join(params.Interests, ", ")
	}

	budget := "moderate budget"
	if params.Budget != nil {
		budget = fmt.Sprintf("$%.2f", *params.Budget)
	}

	templateBudget := 1000.0
	if params.Budget != nil {
		templateBudget = *params.Budget
	}

	return fmt.Sprintf(`Create a detailed %d-day travel itinerary for %s starting on %s.

Traveler Profile:
- Interests: %s
- Budget: %s%s

Requirements:
- Provide exactly %d days of activities
- Include 3-4 activities per day (morning, lunch, afternoon, dinner)
- Include specific restaurant recommendations with local cuisine
- Include attraction names, opening hours, and estimated costs
- Include transportation tips between locations
- Format as a structured daily plan

Return ONLY a JSON response with this exact structure:
{
  "success": true,
  "destination": "%s",
  "duration": %d,
  "startDate": "%s",
  "endDate": "%s",
  "totalBudget": %.2f,
  "dailyItineraries": [
    {
      "day": "Day 1",
      "date": "%s",
      "activities": [
        {
          "name": "Activity Name",
          "description": "Detailed description",
          "type": "attraction|restaurant|cultural|outdoor",
          "location": "Specific address or area in %s",
          "startTime": "09:00",
          "endTime": "12:00",
          "estimatedCost": 25.0,
          "duration": "3h"
        }
      ]
    }
  ],
  "generatedAt": "%s",
  "aiModel": "Google Gemini"
}

Make sure all activities are real, specific to %s, and include actual restaurant names, attraction names, and accurate cost estimates.`,
		params.Duration, params.Destination, params.StartDate,
		interests, budget, profileLines(profile),
		params.Duration,
		params.Destination, params.Duration, params.StartDate,
		calculateEndDate(params.StartDate, params.Duration),
		templateBudget, params.StartDate, params.Destination,
		time.Now().Format(timestampLayout), params.Destination)
}

// profileLines renders the opaque traveler attributes as extra bullet lines,
// sorted for stable output.
func profileLines(profile ProfileContext) string {
	if len(profile) == 0 {
		return ""
	}
	keys := make([]string, 0, len(profile))
	for k := range profile {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		if strings.TrimSpace(profile[k]) == "" {
			continue
		}
		fmt.Fprintf(&b, "\n- %s: %s", k, profile[k])
	}
	return b.String()
}

// calculateEndDate returns the last day of a trip starting on startDate.
// Unparseable dates pass through unchanged so the prompt still renders.
func calculateEndDate(startDate string, duration int) string {
	t, err := time.Parse(dateLayout, startDate)
	if err != nil || duration < 1 {
		return startDate
	}
	return t.AddDate(0, 0, duration-1).Format(dateLayout)
}
