// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/lifetrack/backend/internal/application/adapter"
)

// GeminiSuggestionService implements adapter.SuggestionService using Google
// Gemini. It proposes a spending category for a transaction note.
type GeminiSuggestionService struct {
	apiKey    string
	modelName string
}

// NewGeminiSuggestionService creates a new Gemini suggestion service instance.
func NewGeminiSuggestionService(apiKey string) *GeminiSuggestionService {
	return &GeminiSuggestionService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is properly configured.
func (s *GeminiSuggestionService) IsAvailable() bool {
	return s.apiKey != ""
}

// SuggestCategory asks Gemini for one category label for the note.
func (s *GeminiSuggestionService) SuggestCategory(ctx context.Context, note string, existingCategories []string) (*adapter.CategorySuggestion, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(s.buildPrompt(note, existingCategories)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	suggestion, err := s.parseResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return suggestion, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiSuggestionService) buildPrompt(note string, existingCategories []string) string {
	var sb strings.Builder

	sb.WriteString(`You are an expert at categorizing personal spending. Given one transaction note, suggest a single short category label.

RULES:
- Prefer one of the user's existing category labels when it fits
- Otherwise propose one new label of at most two words
- Keep labels lowercase

EXISTING CATEGORIES:
`)

	if len(existingCategories) > 0 {
		for _, label := range existingCategories {
			sb.WriteString(fmt.Sprintf("- %s\n", label))
		}
	} else {
		sb.WriteString("(none)\n")
	}

	sb.WriteString(fmt.Sprintf(`
TRANSACTION NOTE: %q

Respond with a single JSON object:
{
  "category": "string",
  "confidence": 0.0-1.0,
  "reasoning": "brief explanation"
}

RESPONSE FORMAT: return only the JSON object, no additional text.
`, note))

	return sb.String()
}

// geminiSuggestion represents the raw response from Gemini.
type geminiSuggestion struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// parseResponse parses the Gemini response into a CategorySuggestion.
func (s *GeminiSuggestionService) parseResponse(resp *genai.GenerateContentResponse) (*adapter.CategorySuggestion, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}
	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Strip markdown code fences if present.
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var raw geminiSuggestion
	if err := json.Unmarshal([]byte(textContent), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}
	if raw.Category == "" {
		return nil, fmt.Errorf("gemini returned no category")
	}

	return &adapter.CategorySuggestion{
		Category:   strings.ToLower(strings.TrimSpace(raw.Category)),
		Confidence: raw.Confidence,
		Reasoning:  raw.Reasoning,
	}, nil
}
