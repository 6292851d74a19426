package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleItineraryJSON = `{
  "name": "Roman Holiday",
  "description": "Three relaxed days in Rome",
  "estimatedPrice": "$900",
  "duration": 3,
  "budget": "medium",
  "travelStyle": "relaxed",
  "country": "Italy",
  "interests": "art,food",
  "groupType": "couple",
  "bestTimeToVisit": ["April to June", "September to October"],
  "weatherInfo": ["Spring: 10-20C", "Summer: 20-32C"],
  "location": {
    "city": "Rome",
    "coordinates": [41.9028, 12.4964],
    "openStreetMap": "https://www.openstreetmap.org/relation/41485"
  },
  "itinerary": [
    {
      "day": 1,
      "location": "Centro Storico",
      "activities": [
        { "time": "Morning", "description": "Visit the Pantheon" },
        { "time": "Evening", "description": "Dinner in Trastevere" }
      ]
    }
  ]
}`

func TestParseItineraryJSONCleanInput(t *testing.T) {
	itinerary, err := ParseItineraryJSON(sampleItineraryJSON)

	require.NoError(t, err)
	assert.Equal(t, "Roman Holiday", itinerary.Name)
	assert.Equal(t, 3, itinerary.Duration)
	assert.Equal(t, "Rome", itinerary.Location.City)
	require.Len(t, itinerary.Itinerary, 1)
	assert.Len(t, itinerary.Itinerary[0].Activities, 2)
}

func TestParseItineraryJSONFencedEqualsClean(t *testing.T) {
	fenced := "```json\n" + sampleItineraryJSON + "\n```"
	bareFence := "```\n" + sampleItineraryJSON + "\n```"

	clean, err := ParseItineraryJSON(sampleItineraryJSON)
	require.NoError(t, err)

	fromFenced, err := ParseItineraryJSON(fenced)
	require.NoError(t, err)

	fromBareFence, err := ParseItineraryJSON(bareFence)
	require.NoError(t, err)

	assert.Equal(t, clean, fromFenced)
	assert.Equal(t, clean, fromBareFence)
}

func TestParseItineraryJSONRejectsProse(t *testing.T) {
	itinerary, err := ParseItineraryJSON("Sorry, I can't help with that.")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidAIResponse))
	assert.Nil(t, itinerary)
}

func TestParseItineraryJSONRejectsShapeMismatch(t *testing.T) {
	_, err := ParseItineraryJSON(`{"duration": "three days"}`)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidAIResponse))
}

func TestParseItineraryJSONRejectsNonObjectJSON(t *testing.T) {
	for _, raw := range []string{"null", `"just a string"`, "[1,2,3]", ""} {
		_, err := ParseItineraryJSON(raw)
		require.Error(t, err, "input %q should not parse", raw)
		assert.True(t, errors.Is(err, ErrInvalidAIResponse))
	}
}
