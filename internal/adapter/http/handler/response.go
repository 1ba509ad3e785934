package handler

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON body of every non-2xx response
type ErrorBody struct {
	Error string `json:"error"`
}

func respondJSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

func respondError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{Error: message})
}
