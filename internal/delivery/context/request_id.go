// Package context carries request-scoped values between the delivery layer
// and the layers below it.
package context

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// key is a private type so context values cannot collide with other packages.
type key string

const (
	keyRequestID key = "request_id"
	keyLogger    key = "logger"
)

// HeaderXRequestID names the request ID header on both requests and responses.
const HeaderXRequestID = "X-Request-Id"

// GetRequestID returns the request ID recorded on c. A missing ID is replaced
// with a fresh UUID so every response envelope carries one.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(keyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID records the request ID on c for handlers and the response
// envelope.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(keyRequestID), requestID)
}

// WithRequestID returns a context carrying requestID for the layers below
// delivery.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}
