package utils

import (
	"fmt"
	"strings"
	"tripgen/internal/models/request_models"
)

const itinerarySchemaTemplate = `{
  "name": "...",
  "description": "...",
  "estimatedPrice": "...",
  "duration": %d,
  "budget": "%s",
  "travelStyle": "%s",
  "country": "%s",
  "interests": "%s",
  "groupType": "%s",
  "bestTimeToVisit": [...],
  "weatherInfo": [...],
  "location": {
    "city": "...",
    "coordinates": [...],
    "openStreetMap": "..."
  },
  "itinerary": [
    {
      "day": 1,
      "location": "...",
      "activities": [
        { "time": "...", "description": "..." }
      ]
    }
  ]
}`

// BuildItineraryPrompt renders a trip request into the single-turn
// instruction sent to the model: the user's preferences verbatim, then the
// exact JSON schema the response must fill in.
func BuildItineraryPrompt(req request_models.CreateTripRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate a %d-day travel itinerary for %s based on the following user information:\n", req.NumberOfDays, req.Country)
	fmt.Fprintf(&b, "Budget: '%s'\n", req.Budget)
	fmt.Fprintf(&b, "Interests: '%s'\n", req.Interests)
	fmt.Fprintf(&b, "TravelStyle: '%s'\n", req.TravelStyle)
	fmt.Fprintf(&b, "GroupType: '%s'\n", req.GroupType)
	b.WriteString("Return the itinerary and lowest estimated price in a clean, non-markdown JSON format with the following structure:\n")
	fmt.Fprintf(&b, itinerarySchemaTemplate,
		req.NumberOfDays, req.Budget, req.TravelStyle, req.Country, req.Interests, req.GroupType)

	return b.String()
}
