package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"tripgen/internal/models/request_models"
	"tripgen/internal/services"
	"tripgen/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// CreateTrip godoc
// @Summary Generate and persist a trip plan
// @Description Generate an AI itinerary for the given preferences, attach representative photos and persist the result
// @Tags Trip
// @Accept json
// @Produce json
// @Param request body request_models.CreateTripRequest true "Destination, duration, budget, style, interests, group type and user id"
// @Success 200 {object} response_models.CreateTripResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /trips/create-trip [post]
func (t *TripController) CreateTrip(c *gin.Context) {

	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All trip fields are required"})
		return
	}

	id, err := t.tripService.CreateTrip(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidAIResponse) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid AI response. Try again."})
			return
		}
		log.Printf("Error generating travel plan: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error while generating trip."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// GetTripById godoc
// @Summary Get trip details by ID
// @Description Fetch one persisted trip with its itinerary and image URLs
// @Tags Trip
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} response_models.TripDetailResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/get-trip-by-id/{tripId} [get]
func (t *TripController) GetTripById(c *gin.Context) {
	tripId := c.Param("tripId")
	if tripId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	trip, err := t.tripService.GetTripById(c.Request.Context(), tripId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip fetched successfully")
}

// GetTripsByUserId godoc
// @Summary Get trips by user ID
// @Description Fetch a paginated list of trips for the authenticated user
// @Tags Trip
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(5) minimum(1) maximum(100)
// @Success 200 {array} response_models.TripDetailResponse
// @Security BearerAuth
// @Router /trips/get-trips-by-userid [get]
func (t *TripController) GetTripsByUserId(c *gin.Context) {

	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "5")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	userId := c.GetString("user_id")

	trips, err := t.tripService.GetTripsByUserId(c.Request.Context(), page, pageSize, userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}
