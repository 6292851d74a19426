package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAIConfig struct {
	APIKey string
	Model  string
}

// OpenAIItineraryClient is the alternative provider behind
// ItineraryClientInterface, selected via AI_PROVIDER.
type OpenAIItineraryClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIItineraryClient(cfg OpenAIConfig) ItineraryClientInterface {
	if cfg.Model == "" {
		cfg.Model = openai.GPT4oMini
	}
	return &OpenAIItineraryClient{
		client: openai.NewClient(cfg.APIKey),
		model:  cfg.Model,
	}
}

func (c *OpenAIItineraryClient) GenerateItinerary(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai API call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no content generated by OpenAI")
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIItineraryClient) Close() error {
	return nil
}
