package main

import (
	"context"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"log"
	"os"
	"tripgen/cmd/fx/db_fx"
	"tripgen/cmd/fx/trip_fx"
	"tripgen/internal/api/controllers"
	"tripgen/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	app := fx.New(
		db_fx.Module,
		trip_fx.Module,

		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(tripController *controllers.TripController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, tripController)

	return r
}

func RegisterRoutes(r *gin.Engine, tripController *controllers.TripController) {

	tripsGroup := r.Group("/trips")
	tripsGroup.POST("/create-trip", tripController.CreateTrip)
	tripsGroup.GET("/get-trip-by-id/:tripId", tripController.GetTripById)
	tripsGroup.GET("/get-trips-by-userid", middleware.JWTAuthMiddleware(), tripController.GetTripsByUserId)

}
