package utils

import "errors"

var (
	ErrGenerationFailed  = errors.New("itinerary generation failed")
	ErrInvalidAIResponse = errors.New("invalid ai response")
	ErrPersistenceFailed = errors.New("trip persistence failed")
	ErrTripNotFound      = errors.New("trip not found")
)
