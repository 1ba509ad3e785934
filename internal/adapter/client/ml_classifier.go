package client

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/ressKim-io/toxicity-api/internal/domain/service"
)

// Errors for unusable model output
var (
	ErrEmptyPrediction     = errors.New("model returned no predictions")
	ErrMalformedPrediction = errors.New("model returned a malformed prediction")
)

// MLClassifier adapts MLClient to the Classifier interface
type MLClassifier struct {
	client *MLClient
}

// NewMLClassifier creates a new MLClassifier
func NewMLClassifier(client *MLClient) *MLClassifier {
	return &MLClassifier{client: client}
}

// Classify returns the highest scoring prediction for text
func (c *MLClassifier) Classify(ctx context.Context, text, requestID string) (*service.ClassificationResult, error) {
	resp, err := c.client.Predict(ctx, text, requestID)
	if err != nil {
		return nil, err
	}

	top, err := topPrediction(resp)
	if err != nil {
		return nil, err
	}

	return &service.ClassificationResult{
		Label: top.Label,
		Score: top.Score,
	}, nil
}

// Health delegates to the model server health endpoint
func (c *MLClassifier) Health(ctx context.Context) error {
	return c.client.Health(ctx)
}

func topPrediction(preds PredictResponse) (Prediction, error) {
	if len(preds) == 0 {
		return Prediction{}, ErrEmptyPrediction
	}

	best := -1
	for i, p := range preds {
		if math.IsNaN(p.Score) || p.Score < 0 || p.Score > 1 {
			return Prediction{}, fmt.Errorf("%w: score %v for label %q", ErrMalformedPrediction, p.Score, p.Label)
		}
		if best < 0 || p.Score > preds[best].Score {
			best = i
		}
	}

	return preds[best], nil
}
