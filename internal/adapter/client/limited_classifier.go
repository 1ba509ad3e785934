package client

import (
	"context"
	"fmt"

	"golang.org/x/sync/semaphore"

	"github.com/ressKim-io/toxicity-api/internal/domain/service"
)

// LimitedClassifier bounds the number of in-flight calls to the wrapped
// Classifier. Callers queue until a slot frees or their context ends.
type LimitedClassifier struct {
	next service.Classifier
	sem  *semaphore.Weighted
}

// NewLimitedClassifier wraps next with a limit of maxConcurrent calls
func NewLimitedClassifier(next service.Classifier, maxConcurrent int64) *LimitedClassifier {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &LimitedClassifier{
		next: next,
		sem:  semaphore.NewWeighted(maxConcurrent),
	}
}

// Classify implements service.Classifier
func (c *LimitedClassifier) Classify(ctx context.Context, text, requestID string) (*service.ClassificationResult, error) {
	if err := c.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("waiting for inference slot: %w", err)
	}
	defer c.sem.Release(1)

	return c.next.Classify(ctx, text, requestID)
}
