package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripgen/internal/models/request_models"
	"tripgen/internal/models/response_models"
	"tripgen/pkg/middleware"
	"tripgen/pkg/utils"
)

type fakeTripService struct {
	createId  string
	createErr error
	detail    *response_models.TripDetailResponse
	detailErr error
	lastReq   request_models.CreateTripRequest
	calls     int
}

func (f *fakeTripService) CreateTrip(ctx context.Context, req request_models.CreateTripRequest) (string, error) {
	f.calls++
	f.lastReq = req
	return f.createId, f.createErr
}

func (f *fakeTripService) GetTripById(ctx context.Context, tripId string) (*response_models.TripDetailResponse, error) {
	return f.detail, f.detailErr
}

func (f *fakeTripService) GetTripsByUserId(ctx context.Context, page, pageSize int, userId string) ([]response_models.TripDetailResponse, error) {
	if f.detail == nil {
		return nil, f.detailErr
	}
	return []response_models.TripDetailResponse{*f.detail}, nil
}

func newTestRouter(service *fakeTripService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())

	controller := NewTripController(service)
	tripsGroup := r.Group("/trips")
	tripsGroup.POST("/create-trip", controller.CreateTrip)
	tripsGroup.GET("/get-trip-by-id/:tripId", controller.GetTripById)
	tripsGroup.GET("/get-trips-by-userid", controller.GetTripsByUserId)

	return r
}

const validCreateBody = `{
	"country": "Italy",
	"numberOfDays": 3,
	"travelStyle": "relaxed",
	"interests": "art,food",
	"budget": "medium",
	"groupType": "couple",
	"userId": "u1"
}`

func TestCreateTripRespondsWithPersistedId(t *testing.T) {
	service := &fakeTripService{createId: "abc-123"}
	router := newTestRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/trips/create-trip", strings.NewReader(validCreateBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"abc-123"}`, w.Body.String())
	assert.Equal(t, 1, service.calls)
	assert.Equal(t, "Italy", service.lastReq.Country)
	assert.Equal(t, 3, service.lastReq.NumberOfDays)
}

func TestCreateTripParseFailureBody(t *testing.T) {
	service := &fakeTripService{createErr: utils.ErrInvalidAIResponse}
	router := newTestRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/trips/create-trip", strings.NewReader(validCreateBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Invalid AI response. Try again."}`, w.Body.String())
}

func TestCreateTripGenericFailureBody(t *testing.T) {
	for _, serviceErr := range []error{utils.ErrGenerationFailed, utils.ErrPersistenceFailed, errors.New("boom")} {
		service := &fakeTripService{createErr: serviceErr}
		router := newTestRouter(service)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/trips/create-trip", strings.NewReader(validCreateBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Server error while generating trip."}`, w.Body.String())
	}
}

func TestCreateTripRejectsMissingFieldsBeforePipeline(t *testing.T) {
	service := &fakeTripService{createId: "abc-123"}
	router := newTestRouter(service)

	bodies := []string{
		`{}`,
		`{"country":"Italy"}`,
		`{"country":"Italy","numberOfDays":0,"travelStyle":"relaxed","interests":"art","budget":"medium","groupType":"couple","userId":"u1"}`,
	}

	for _, body := range bodies {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/trips/create-trip", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
	}

	assert.Equal(t, 0, service.calls)
}

func TestGetTripByIdNotFound(t *testing.T) {
	service := &fakeTripService{detailErr: utils.ErrTripNotFound}
	router := newTestRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/trips/get-trip-by-id/00000000-0000-0000-0000-000000000000", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetTripsByUserIdRejectsBadPaging(t *testing.T) {
	service := &fakeTripService{}
	router := newTestRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/trips/get-trips-by-userid?page=0", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
