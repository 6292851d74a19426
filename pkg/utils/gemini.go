package utils

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// GeminiItineraryClient implements ItineraryClientInterface using Google's
// Gemini models.
type GeminiItineraryClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func NewGeminiItineraryClient(cfg GeminiConfig) (ItineraryClientInterface, error) {
	if cfg.Model == "" {
		cfg.Model = "gemini-1.5-flash-latest"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiItineraryClient{
		client:  client,
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}, nil
}

func (c *GeminiItineraryClient) GenerateItinerary(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.4)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := model.GenerateContent(ctxWithTimeout, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated by Gemini")
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		}
	}

	return text.String(), nil
}

func (c *GeminiItineraryClient) Close() error {
	return c.client.Close()
}
