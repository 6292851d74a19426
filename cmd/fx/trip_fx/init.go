package trip_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripgen/internal/api/controllers"
	"tripgen/internal/repositories"
	"tripgen/internal/services"
	"tripgen/pkg/utils"
)

var Module = fx.Provide(
	ProvideItineraryClient,
	ProvideImageSearchClient,
	ProvideTripRepository,
	ProvideTripService,
	ProvideTripController)

// ProvideItineraryClient creates an AI client based on environment variables
func ProvideItineraryClient() (utils.ItineraryClientInterface, error) {
	provider := getEnvWithDefault("AI_PROVIDER", "gemini")

	log.Printf("Initializing %s itinerary client", provider)

	switch strings.ToLower(provider) {
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
		return utils.NewOpenAIItineraryClient(utils.OpenAIConfig{
			APIKey: apiKey,
			Model:  os.Getenv("OPENAI_MODEL"),
		}), nil
	case "gemini":
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
		client, err := utils.NewGeminiItineraryClient(utils.GeminiConfig{
			APIKey: apiKey,
			Model:  os.Getenv("GEMINI_MODEL"),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s. Use 'openai' or 'gemini'", provider)
	}
}

func ProvideImageSearchClient() services.ImageSearchInterface {
	accessKey := os.Getenv("UNSPLASH_ACCESS_KEY")
	if accessKey == "" {
		log.Fatal("UNSPLASH_ACCESS_KEY is required")
	}
	return services.NewUnsplashClient(services.UnsplashConfig{
		AccessKey: accessKey,
	})
}

func ProvideTripRepository(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func ProvideTripService(
	aiClient utils.ItineraryClientInterface,
	imageClient services.ImageSearchInterface,
	tripRepo repositories.TripRepository,
) services.TripServiceInterface {
	return services.NewTripService(aiClient, imageClient, tripRepo)
}

func ProvideTripController(
	tripService services.TripServiceInterface,
) *controllers.TripController {
	return controllers.NewTripController(tripService)
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
