package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Trip is one persisted pipeline run. Rows are created once and never
// mutated or deleted by the service.
type Trip struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	TripDetail string         `gorm:"type:text"`
	ImageUrls  pq.StringArray `gorm:"type:text[]"`
	CreatedAt  time.Time
	UserID     string `gorm:"index"`
}

func (t *Trip) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	return nil
}
