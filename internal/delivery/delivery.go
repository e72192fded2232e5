// Package delivery defines the entry points through which the outside world
// reaches the application.
package delivery

import "context"

// Delivery is a serving surface (an HTTP server) started by the runtime.
// Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
