// Package delivery defines the inbound transports that expose the application.
package delivery

import "context"

// Delivery is a long-running inbound server, such as an HTTP listener.
// Serve blocks until the server stops or the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
