package utils

import "github.com/gin-gonic/gin"

// ErrorResponse is the single error envelope used by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error writes the error envelope with an explicit HTTP status.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Error: message})
}
