package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ressKim-io/toxicity-api/internal/domain/entity"
	"github.com/ressKim-io/toxicity-api/internal/domain/service"
)

// Error definitions for the predict usecase
var (
	ErrNoTextProvided    = errors.New("no text provided")
	ErrClassifierFailure = errors.New("classifier failure")
	ErrClassifierTimeout = errors.New("classifier timed out")
)

// Classifier error reasons reported to MetricsRecorder
const (
	ReasonTimeout  = "timeout"
	ReasonCanceled = "canceled"
	ReasonFailure  = "failure"
)

// PredictInput represents the input for a prediction
type PredictInput struct {
	Text      string
	RequestID string
}

// PredictOutput represents the output of a prediction
type PredictOutput struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// MetricsRecorder receives prediction and classifier measurements
type MetricsRecorder interface {
	ObservePrediction(label string)
	ObserveClassifierError(reason string)
	ObserveClassifierDuration(d time.Duration)
}

// PredictUsecase defines the interface for toxicity prediction
type PredictUsecase interface {
	Predict(ctx context.Context, input *PredictInput) (*PredictOutput, error)
}

type predictUsecase struct {
	classifier service.Classifier
	timeout    time.Duration
	metrics    MetricsRecorder
	logger     *zap.Logger
}

// NewPredictUsecase creates a new predict usecase. A zero timeout disables
// the per-request deadline; metrics and logger may be nil.
func NewPredictUsecase(classifier service.Classifier, timeout time.Duration, metrics MetricsRecorder, logger *zap.Logger) PredictUsecase {
	if metrics == nil {
		metrics = noopRecorder{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &predictUsecase{
		classifier: classifier,
		timeout:    timeout,
		metrics:    metrics,
		logger:     logger,
	}
}

// Predict validates the input, calls the classifier once and maps its top result
func (u *predictUsecase) Predict(ctx context.Context, input *PredictInput) (*PredictOutput, error) {
	if input == nil || input.Text == "" {
		return nil, ErrNoTextProvided
	}

	if u.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.timeout)
		defer cancel()
	}

	start := time.Now()
	result, err := u.classifier.Classify(ctx, input.Text, input.RequestID)
	elapsed := time.Since(start)
	u.metrics.ObserveClassifierDuration(elapsed)

	if err != nil {
		return nil, u.classifierError(ctx, input, elapsed, err)
	}
	if result == nil {
		return nil, u.classifierError(ctx, input, elapsed, errors.New("classifier returned no result"))
	}

	prediction := entity.NewPrediction(result.Label, result.Score)
	u.metrics.ObservePrediction(prediction.Label.String())

	u.logger.Debug("Prediction served",
		zap.String("request_id", input.RequestID),
		zap.Int("text_length", len(input.Text)),
		zap.String("raw_label", result.Label),
		zap.Float64("raw_score", result.Score),
		zap.String("label", prediction.Label.String()),
		zap.Duration("classifier_latency", elapsed),
	)

	return &PredictOutput{
		Label:      prediction.Label.String(),
		Confidence: prediction.Confidence,
	}, nil
}

func (u *predictUsecase) classifierError(ctx context.Context, input *PredictInput, elapsed time.Duration, err error) error {
	fields := []zap.Field{
		zap.String("request_id", input.RequestID),
		zap.Int("text_length", len(input.Text)),
		zap.Duration("classifier_latency", elapsed),
		zap.Error(err),
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		u.metrics.ObserveClassifierError(ReasonTimeout)
		u.logger.Warn("Classifier timed out", fields...)
		return fmt.Errorf("%w: %w", ErrClassifierTimeout, err)
	case errors.Is(err, context.Canceled):
		u.metrics.ObserveClassifierError(ReasonCanceled)
		u.logger.Info("Classification canceled by caller", fields...)
		return fmt.Errorf("%w: %w", ErrClassifierFailure, err)
	default:
		u.metrics.ObserveClassifierError(ReasonFailure)
		u.logger.Error("Classifier failed", fields...)
		return fmt.Errorf("%w: %w", ErrClassifierFailure, err)
	}
}

type noopRecorder struct{}

func (noopRecorder) ObservePrediction(string)                {}
func (noopRecorder) ObserveClassifierError(string)           {}
func (noopRecorder) ObserveClassifierDuration(time.Duration) {}
