package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"tripgen/internal/models/db_models"
	"tripgen/internal/models/request_models"
	"tripgen/internal/models/response_models"
	"tripgen/internal/repositories"
	"tripgen/pkg/utils"
)

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, req request_models.CreateTripRequest) (string, error)
	GetTripById(ctx context.Context, tripId string) (*response_models.TripDetailResponse, error)
	GetTripsByUserId(ctx context.Context, page int, pageSize int, userId string) ([]response_models.TripDetailResponse, error)
}

type TripService struct {
	aiClient    utils.ItineraryClientInterface
	imageClient ImageSearchInterface
	tripRepo    repositories.TripRepository
}

func NewTripService(
	aiClient utils.ItineraryClientInterface,
	imageClient ImageSearchInterface,
	tripRepo repositories.TripRepository,
) TripServiceInterface {
	return &TripService{
		aiClient:    aiClient,
		imageClient: imageClient,
		tripRepo:    tripRepo,
	}
}

// CreateTrip runs the generation pipeline for one request: prompt, model
// call, parse, image search, persist. Image search cannot fail the run; a
// trip row is only written after generation and parsing both succeeded.
func (s *TripService) CreateTrip(ctx context.Context, req request_models.CreateTripRequest) (string, error) {
	prompt := utils.BuildItineraryPrompt(req)

	rawResponse, err := s.aiClient.GenerateItinerary(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrGenerationFailed, err)
	}

	itinerary, err := utils.ParseItineraryJSON(rawResponse)
	if err != nil {
		log.Printf("Failed to parse model response: %v, raw response: %s", err, rawResponse)
		return "", err
	}

	query := BuildImageQuery(req.Country, req.Interests, req.TravelStyle)
	imageUrls := s.imageClient.SearchImages(ctx, query)

	tripDetail, err := json.Marshal(itinerary)
	if err != nil {
		return "", fmt.Errorf("failed to serialize itinerary: %w", err)
	}

	trip := &db_models.Trip{
		TripDetail: string(tripDetail),
		ImageUrls:  imageUrls,
		UserID:     req.UserID,
	}

	return s.tripRepo.CreateTrip(ctx, trip)
}

func (s *TripService) GetTripById(ctx context.Context, tripId string) (*response_models.TripDetailResponse, error) {
	trip, err := s.tripRepo.GetTripById(ctx, tripId)
	if err != nil {
		return nil, err
	}
	return toTripDetailResponse(trip)
}

func (s *TripService) GetTripsByUserId(ctx context.Context, page int, pageSize int, userId string) ([]response_models.TripDetailResponse, error) {
	trips, err := s.tripRepo.GetTripsByUserId(ctx, page, pageSize, userId)
	if err != nil {
		return nil, err
	}

	responses := make([]response_models.TripDetailResponse, 0, len(trips))
	for _, trip := range trips {
		resp, err := toTripDetailResponse(&trip)
		if err != nil {
			log.Printf("Skipping trip %s with unreadable detail: %v", trip.ID, err)
			continue
		}
		responses = append(responses, *resp)
	}

	return responses, nil
}

func toTripDetailResponse(trip *db_models.Trip) (*response_models.TripDetailResponse, error) {
	var itinerary response_models.GeneratedItinerary
	if err := json.Unmarshal([]byte(trip.TripDetail), &itinerary); err != nil {
		return nil, fmt.Errorf("failed to decode stored trip detail: %w", err)
	}

	return &response_models.TripDetailResponse{
		ID:         trip.ID.String(),
		TripDetail: itinerary,
		ImageUrls:  trip.ImageUrls,
		CreatedAt:  trip.CreatedAt.UTC().Format(time.RFC3339),
		UserID:     trip.UserID,
	}, nil
}
