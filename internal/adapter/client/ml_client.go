package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// maxErrorBody caps how much of a failed response is copied into an error
const maxErrorBody = 512

// PredictRequest is the body sent to the model server's /predict endpoint
type PredictRequest struct {
	Inputs   string `json:"inputs"`
	Truncate bool   `json:"truncate"`
}

// Prediction is a single label/score pair produced by the model
type Prediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// PredictResponse holds the predictions for one input. The model server
// answers either with a flat list or with one list per input; both decode here.
type PredictResponse []Prediction

// UnmarshalJSON accepts [{...}] and [[{...}]]
func (p *PredictResponse) UnmarshalJSON(data []byte) error {
	var flat []Prediction
	flatErr := json.Unmarshal(data, &flat)
	if flatErr == nil {
		*p = flat
		return nil
	}

	var nested [][]Prediction
	if err := json.Unmarshal(data, &nested); err != nil {
		return fmt.Errorf("unexpected prediction payload: %w", flatErr)
	}
	if len(nested) == 0 {
		*p = PredictResponse{}
		return nil
	}
	*p = nested[0]
	return nil
}

// ServerError is returned when the model server answers with a non-2xx status
type ServerError struct {
	StatusCode int
	Body       string
}

func (e *ServerError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("model server returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("model server returned status %d: %s", e.StatusCode, e.Body)
}

// MLClient is an HTTP client for a text-classification model server
type MLClient struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
}

// NewMLClient creates a new model server client. apiToken may be empty.
func NewMLClient(baseURL, apiToken string, timeout time.Duration) *MLClient {
	return &MLClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiToken: apiToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Predict sends a single text for classification
func (c *MLClient) Predict(ctx context.Context, text, requestID string) (PredictResponse, error) {
	body, err := json.Marshal(PredictRequest{
		Inputs:   text,
		Truncate: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	c.decorate(req, requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, readServerError(resp)
	}

	var result PredictResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return result, nil
}

// Health checks that the model server is up and the model is loaded
func (c *MLClient) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.decorate(req, "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return &ServerError{StatusCode: resp.StatusCode}
	}

	return nil
}

func (c *MLClient) decorate(req *http.Request, requestID string) {
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}
	if requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}
}

func readServerError(resp *http.Response) error {
	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return &ServerError{StatusCode: resp.StatusCode}
	}
	return &ServerError{
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(respBody)),
	}
}
