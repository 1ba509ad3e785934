package service

import "context"

// ClassificationResult is the top prediction of the external model
type ClassificationResult struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classifier defines the interface for text classification.
// Implementations must be safe for concurrent use.
type Classifier interface {
	// Classify returns the single best-matching label for text
	Classify(ctx context.Context, text, requestID string) (*ClassificationResult, error)
}

// HealthChecker reports whether the model backing a Classifier is usable
type HealthChecker interface {
	Health(ctx context.Context) error
}
