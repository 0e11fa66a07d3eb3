// Package delivery defines the contract every transport entry point satisfies.
package delivery

import "context"

// Delivery is a long-running entry point (an HTTP server, a background
// worker) started by the application container.
type Delivery interface {
	// Serve blocks until the delivery stops or the context is cancelled.
	Serve(ctx context.Context) error
}
