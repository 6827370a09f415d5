// Package delivery defines the entrypoints the process runs.
package delivery

import "context"

// Delivery is a long-running entrypoint started by the fx application.
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
