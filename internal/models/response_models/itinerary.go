package response_models

// GeneratedItinerary is the schema the model is instructed to fill in.
// The persisted copy is stored as an opaque serialized blob; decoding into
// this shape is what decides whether a model response is usable.
type GeneratedItinerary struct {
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	EstimatedPrice  string       `json:"estimatedPrice"`
	Duration        int          `json:"duration"`
	Budget          string       `json:"budget"`
	TravelStyle     string       `json:"travelStyle"`
	Country         string       `json:"country"`
	Interests       string       `json:"interests"`
	GroupType       string       `json:"groupType"`
	BestTimeToVisit []string     `json:"bestTimeToVisit"`
	WeatherInfo     []string     `json:"weatherInfo"`
	Location        TripLocation `json:"location"`
	Itinerary       []DayPlan    `json:"itinerary"`
}

type TripLocation struct {
	City          string    `json:"city"`
	Coordinates   []float64 `json:"coordinates"`
	OpenStreetMap string    `json:"openStreetMap"`
}

type DayPlan struct {
	Day        int            `json:"day"`
	Location   string         `json:"location"`
	Activities []TripActivity `json:"activities"`
}

type TripActivity struct {
	Time        string `json:"time"`
	Description string `json:"description"`
}
