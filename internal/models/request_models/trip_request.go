package request_models

type CreateTripRequest struct {
	Country      string `json:"country" binding:"required"`
	NumberOfDays int    `json:"numberOfDays" binding:"required,gt=0"`
	TravelStyle  string `json:"travelStyle" binding:"required"`
	Interests    string `json:"interests" binding:"required"`
	Budget       string `json:"budget" binding:"required"`
	GroupType    string `json:"groupType" binding:"required"`
	UserID       string `json:"userId" binding:"required"`
}
