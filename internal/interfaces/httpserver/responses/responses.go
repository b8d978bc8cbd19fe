package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the uniform error payload for API endpoints.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// HandleBadRequest replies 400 with the given message.
func HandleBadRequest(c *gin.Context, message string) {
	abortWith(c, http.StatusBadRequest, message)
}

// HandleInternalError replies 500 with the given message.
func HandleInternalError(c *gin.Context, message string) {
	abortWith(c, http.StatusInternalServerError, message)
}

func abortWith(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:     message,
		RequestID: c.GetString("request_id"),
	})
}
