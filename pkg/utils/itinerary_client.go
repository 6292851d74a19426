package utils

import "context"

// ItineraryClientInterface is the single-turn text generation boundary.
// Implementations take explicit configuration so the pipeline can run
// against fakes in tests.
type ItineraryClientInterface interface {
	// GenerateItinerary sends one prompt and returns the raw response text.
	// The call is atomic: no streaming, no retries, failures surface as-is.
	GenerateItinerary(ctx context.Context, prompt string) (string, error)
	Close() error
}
