package response_models

type CreateTripResponse struct {
	ID string `json:"id"`
}

type TripDetailResponse struct {
	ID         string             `json:"id"`
	TripDetail GeneratedItinerary `json:"tripDetail"`
	ImageUrls  []string           `json:"imageUrls"`
	CreatedAt  string             `json:"createdAt"`
	UserID     string             `json:"userId"`
}
