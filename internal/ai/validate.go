// README: Gap-filling validation for decoded trip plans.
package ai

import "time"

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02T15:04:05"

	externalModelTag = "Google Gemini"
)

// fillPlanDefaults completes a decoded plan with values from the originating
// request. Each field is filled only when absent; present fields are never
// overwritten, so applying it twice changes nothing.
func fillPlanDefaults(plan *rawTripPlan, params TripParameters) {
	if plan.Success == nil {
		v := true
		plan.Success = &v
	}
	if plan.Destination == nil {
		v := params.Destination
		plan.Destination = &v
	}
	if plan.Duration == nil {
		v := params.Duration
		plan.Duration = &v
	}
	if plan.StartDate == nil {
		v := params.StartDate
		plan.StartDate = &v
	}
	if plan.EndDate == nil {
		v := params.EndDate
		plan.EndDate = &v
	}
	if plan.TotalBudget == nil {
		v := 1000.0
		if params.Budget != nil {
			v = *params.Budget
		}
		plan.TotalBudget = &v
	}
	if plan.GeneratedAt == nil {
		v := time.Now().Format(timestampLayout)
		plan.GeneratedAt = &v
	}
	if plan.AIModel == nil {
		v := externalModelTag
		plan.AIModel = &v
	}
}

// validatePlan fills gaps and converts the raw plan into the final immutable
// result. A plan with no daily itineraries is never acceptable, regardless
// of how complete its other fields are.
func validatePlan(plan *rawTripPlan, params TripParameters) (TripPlan, error) {
	fillPlanDefaults(plan, params)

	if len(plan.DailyItineraries) == 0 {
		return TripPlan{}, ErrIncompletePlan
	}

	return TripPlan{
		Success:          *plan.Success,
		Destination:      *plan.Destination,
		Duration:         *plan.Duration,
		StartDate:        *plan.StartDate,
		EndDate:          *plan.EndDate,
		TotalBudget:      *plan.TotalBudget,
		DailyItineraries: plan.DailyItineraries,
		GeneratedAt:      *plan.GeneratedAt,
		AIModel:          *plan.AIModel,
	}, nil
}
