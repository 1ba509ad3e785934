package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ressKim-io/toxicity-api/internal/usecase"
)

// PredictRequest is the body of POST /predict. Text is a pointer so an
// absent key and an empty string are both visible.
type PredictRequest struct {
	Text *string `json:"text"`
}

// PredictHandler handles toxicity prediction requests
type PredictHandler struct {
	predictUC usecase.PredictUsecase
}

// NewPredictHandler creates a new predict handler
func NewPredictHandler(predictUC usecase.PredictUsecase) *PredictHandler {
	return &PredictHandler{predictUC: predictUC}
}

// Predict handles POST /predict
func (h *PredictHandler) Predict(c *gin.Context) {
	var req PredictRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		HandleInvalidBody(c, err)
		return
	}

	input := &usecase.PredictInput{RequestID: requestID(c)}
	if req.Text != nil {
		input.Text = *req.Text
	}

	output, err := h.predictUC.Predict(c.Request.Context(), input)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, output)
}
