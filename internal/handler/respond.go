package handler

import "github.com/gin-gonic/gin"

// Every endpoint answers with the same envelope; Data and Message are
// omitted when empty.
type response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, response{Success: true, Data: data})
}

func respondMessage(c *gin.Context, status int, message string, data any) {
	c.JSON(status, response{Success: true, Message: message, Data: data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, response{Success: false, Error: message})
}

func respondErrorData(c *gin.Context, status int, message string, data any) {
	c.JSON(status, response{Success: false, Error: message, Data: data})
}
