package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PrepareSSE switches the response into event-stream mode for the
// transcript update feed and reports whether the writer can flush
// frames. When ok is false the caller must not stream a body.
func PrepareSSE(c *gin.Context) (http.Flusher, bool) {
	header := c.Writer.Header()
	header.Set("Content-Type", "text/event-stream")
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	// Tell buffering proxies to pass frames through as they are written.
	header.Set("X-Accel-Buffering", "no")

	flusher, ok := c.Writer.(http.Flusher)
	return flusher, ok
}
