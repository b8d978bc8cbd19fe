package httpclients

import (
	"context"
	"time"

	"resty.dev/v3"

	"quill-server/internal/infrastructure/logger"
)

type startsAtKey struct{}

// NewClient builds a resty client that debug-logs every outbound
// request with its latency.
func NewClient(clientName string) *resty.Client {
	client := resty.New()
	client.AddRequestMiddleware(func(c *resty.Client, r *resty.Request) error {
		r.SetContext(context.WithValue(r.Context(), startsAtKey{}, time.Now()))
		return nil
	})
	client.AddResponseMiddleware(func(c *resty.Client, r *resty.Response) error {
		log := logger.GetLogger()
		startTime, _ := r.Request.Context().Value(startsAtKey{}).(time.Time)

		log.Debug().
			Str("client", clientName).
			Int("status", r.StatusCode()).
			Str("method", r.Request.RawRequest.Method).
			Str("path", r.Request.RawRequest.URL.Path).
			Dur("latency", time.Since(startTime)).
			Msg("HTTP client request")
		return nil
	})
	return client
}
