package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pgvector/pgvector-go"
	openai "github.com/sashabaranov/go-openai"
)

// OpenAIItineraryClient implements ItineraryClientInterface on the OpenAI
// API: chat completions for generation, text-embedding-3-small for vectors.
type OpenAIItineraryClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIItineraryClient(apiKey, model string) ItineraryClientInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIItineraryClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIItineraryClient) GenerateItineraryJSON(ctx context.Context, prompt string, destination string, dayCount int) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("user prompt cannot be empty")
	}
	if dayCount < 1 || dayCount > 30 {
		return "", fmt.Errorf("day count must be between 1 and 30")
	}

	system := fmt.Sprintf(`You plan %d-day trips covering: %s. Respond with JSON only:
{"destination":"...","itinerary":[{"day":1,"date":"2025-01-01","title":"...","_destination":"place or Travel Day","activities":[{"description":"...","address":"...","start_time":"09:00","end_time":"11:00"}]}]}
Exactly %d itinerary entries, day = 1..%d. Transit days set "_destination" to "Travel Day" and title to "From → To".`,
		dayCount, destination, dayCount, dayCount)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.1,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	content := CleanJSONResponse(resp.Choices[0].Message.Content)
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("not valid json")
	}
	return content, nil
}

func (c *OpenAIItineraryClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.SmallEmbedding3, // "text-embedding-3-small"
	})
	if err != nil {
		return pgvector.Vector{}, err
	}
	if len(resp.Data) == 0 {
		return pgvector.Vector{}, fmt.Errorf("no embedding returned")
	}
	return pgvector.NewVector(resp.Data[0].Embedding), nil
}

func (c *OpenAIItineraryClient) Close() error {
	return nil
}

// NewItineraryClient picks the provider implementation from config.
func NewItineraryClient(provider, apiKey, model string) (ItineraryClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIItineraryClient(apiKey, model), nil
	case "gemini", "":
		return NewGeminiItineraryClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
