package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"

	"github.com/ressKim-io/toxicity-api/internal/adapter/http/middleware"
)

// bindOptionalJSON decodes the request body into obj. An empty body leaves
// obj untouched so missing fields are reported by validation, not as a
// decoding failure.
func bindOptionalJSON(c *gin.Context, obj interface{}) error {
	if c.Request.Body == nil {
		return nil
	}
	err := c.ShouldBindWith(obj, binding.JSON)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// requestID returns the id assigned by the RequestID middleware, or a fresh one
func requestID(c *gin.Context) string {
	if id := c.GetString(middleware.RequestIDKey); id != "" {
		return id
	}
	return uuid.NewString()
}
