package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"math"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/pgvector/pgvector-go"
	"google.golang.org/api/option"
)

// ItineraryClientInterface is the AI surface the services depend on: one call
// producing a day-by-day itinerary as JSON, one producing an embedding vector
// for destination-name lookups.
type ItineraryClientInterface interface {
	GenerateItineraryJSON(ctx context.Context, prompt string, destination string, dayCount int) (string, error)
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
	Close() error
}

// GeminiItineraryClient implements ItineraryClientInterface using Google's
// Gemini models.
type GeminiItineraryClient struct {
	client *genai.Client
	model  string
}

func NewGeminiItineraryClient(apiKey, model string) (ItineraryClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiItineraryClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiItineraryClient) GenerateItineraryJSON(ctx context.Context, prompt string, destination string, dayCount int) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("user prompt cannot be empty")
	}
	if dayCount < 1 || dayCount > 30 {
		return "", fmt.Errorf("day count must be between 1 and 30")
	}

	m := c.client.GenerativeModel(c.model)
	// Force JSON-only output so no prose needs to be stripped afterwards.
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.1)
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.SetMaxOutputTokens(5000)

	schema := `
{
  "destination": "string",
  "itinerary": [
    {
      "day": 1,
      "date": "2025-01-01",
      "title": "string; transit days use \"CityA → CityB\"",
      "_destination": "the place this day belongs to, or \"Travel Day\" for transit days",
      "activities": [
        {"description":"string","address":"string","start_time":"09:00","end_time":"11:00"}
      ]
    }
  ]
}`

	fullPrompt := fmt.Sprintf(`
You are planning a %d-day trip covering: %s. Return **JSON only** that exactly matches the schema below.

Schema (example, match keys exactly):
%s

Traveler request:
%s

Hard constraints:
- Exactly %d entries in "itinerary", day = 1..%d (no gaps).
- Every day carries "_destination"; transit days set it to "Travel Day" and put "From → To" in the title.
- 2-5 activities per day, realistic times (09:00-21:00), start_time < end_time, HH:MM format.

Return JSON only. No comments, no markdown.
`, dayCount, destination, schema, prompt, dayCount, dayCount)

	resp, err := m.GenerateContent(ctx, genai.Text(fullPrompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	content := CleanJSONResponse(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("not valid json")
	}
	return content, nil
}

// GetEmbedding generates a vector for text.
// Note: the free tier has no dedicated embedding model, so this is a
// deterministic hash-based projection; the OpenAI client returns real
// embeddings.
func (c *GeminiItineraryClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	return textToVector(text), nil
}

func (c *GeminiItineraryClient) Close() error {
	return c.client.Close()
}

// CleanJSONResponse removes markdown fences and surrounding prose, then cuts
// the response down to its first balanced JSON object or array.
func CleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	objStart := strings.Index(response, "{")
	arrStart := strings.Index(response, "[")

	if objStart != -1 && (arrStart == -1 || objStart < arrStart) {
		if end := findMatching(response, objStart, '{', '}'); end != -1 {
			response = response[objStart : end+1]
		}
	} else if arrStart != -1 {
		if end := findMatching(response, arrStart, '[', ']'); end != -1 {
			response = response[arrStart : end+1]
		}
	}

	return strings.TrimSpace(response)
}

// findMatching returns the index of the close delimiter balancing the open
// delimiter at start, skipping over string literals and escapes.
func findMatching(s string, start int, open, close byte) int {
	if start >= len(s) || s[start] != open {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

// textToVector creates a deterministic vector representation of text by
// distributing hashed word influence across dimensions and normalizing.
func textToVector(text string) pgvector.Vector {
	text = strings.ToLower(strings.TrimSpace(text))
	words := strings.Fields(text)

	const dimensions = 1536
	vector := make([]float32, dimensions)

	for _, word := range words {
		hash := hashWord(word)
		for i := 0; i < dimensions; i++ {
			influence := math.Sin(float64(hash+uint32(i))) * 0.1
			vector[i] += float32(influence)
		}
	}

	magnitude := float32(0)
	for _, val := range vector {
		magnitude += val * val
	}
	magnitude = float32(math.Sqrt(float64(magnitude)))

	if magnitude > 0 {
		for i := range vector {
			vector[i] /= magnitude
		}
	}

	return pgvector.NewVector(vector)
}

func hashWord(word string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(word))
	return h.Sum32()
}
