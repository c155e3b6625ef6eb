// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// CategorySuggestion is a proposed spending category for a transaction note.
type CategorySuggestion struct {
	Category   string
	Confidence float64
	Reasoning  string
}

// SuggestionService defines the interface for AI-backed category suggestions.
type SuggestionService interface {
	// SuggestCategory proposes a category for a transaction note, preferring
	// one of the user's existing category labels.
	SuggestCategory(ctx context.Context, note string, existingCategories []string) (*CategorySuggestion, error)

	// IsAvailable checks if the suggestion service is configured.
	IsAvailable() bool
}
