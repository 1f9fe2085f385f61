// README: Offline demo; prints a generated trip plan without calling any external API.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"wayfare/internal/ai"
)

func main() {
	svc := ai.NewService(nil)

	budget := 1200.0
	plan := svc.GenerateTripPlan(context.Background(), ai.ProfileContext{
		"travelStyle": "relaxed",
		"groupSize":   "2",
	}, ai.TripParameters{
		Destination: "Lisbon",
		Duration:    3,
		Interests:   []string{"food", "museums"},
		Budget:      &budget,
		StartDate:   "2026-05-01",
	})

	out, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))
}
