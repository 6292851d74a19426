package utils

import (
	"encoding/json"
	"fmt"
	"strings"
	"tripgen/internal/models/response_models"
)

// stripMarkdownFences removes a wrapping code block (``` with an optional
// json language tag) if present. Clean JSON passes through unchanged.
func stripMarkdownFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```JSON")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// ParseItineraryJSON extracts the itinerary object from a raw model
// response. The decode is schema-validated: anything that is not a JSON
// object matching the GeneratedItinerary shape fails with
// ErrInvalidAIResponse rather than producing a partial or default result.
func ParseItineraryJSON(raw string) (*response_models.GeneratedItinerary, error) {
	cleaned := stripMarkdownFences(raw)

	if !strings.HasPrefix(cleaned, "{") {
		return nil, fmt.Errorf("%w: response is not a JSON object", ErrInvalidAIResponse)
	}

	var itinerary response_models.GeneratedItinerary
	if err := json.Unmarshal([]byte(cleaned), &itinerary); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAIResponse, err)
	}

	return &itinerary, nil
}
