package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tripgen/internal/models/db_models"
	"tripgen/pkg/utils"
)

type TripRepository interface {
	// CreateTrip writes one trip row with a single create call and returns
	// the assigned record id. The row id and createdAt are stamped by the
	// model's BeforeCreate hook.
	CreateTrip(ctx context.Context, trip *db_models.Trip) (string, error)
	GetTripById(ctx context.Context, tripId string) (*db_models.Trip, error)
	GetTripsByUserId(ctx context.Context, page int, pageSize int, userId string) ([]db_models.Trip, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) CreateTrip(ctx context.Context, trip *db_models.Trip) (string, error) {
	if err := r.db.WithContext(ctx).Create(trip).Error; err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrPersistenceFailed, err)
	}
	return trip.ID.String(), nil
}

func (r *tripRepository) GetTripById(ctx context.Context, tripId string) (*db_models.Trip, error) {
	tripUUID, err := uuid.Parse(tripId)
	if err != nil {
		return nil, utils.ErrTripNotFound
	}

	var trip db_models.Trip
	if err := r.db.WithContext(ctx).First(&trip, "id = ?", tripUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrTripNotFound
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrPersistenceFailed, err)
	}

	return &trip, nil
}

func (r *tripRepository) GetTripsByUserId(ctx context.Context, page int, pageSize int, userId string) ([]db_models.Trip, error) {
	var trips []db_models.Trip

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&trips).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrPersistenceFailed, err)
	}

	return trips, nil
}
