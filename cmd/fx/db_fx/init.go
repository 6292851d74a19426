package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"log"
	"tripgen/internal/infra"
	"tripgen/internal/models/db_models"
)

var Module = fx.Provide(
	provideDB)

func provideDB() *gorm.DB {
	db := infra.InitPostgresql()
	if err := db.AutoMigrate(&db_models.Trip{}); err != nil {
		log.Fatalf("Failed to migrate trips table: %v", err)
	}
	return db
}
