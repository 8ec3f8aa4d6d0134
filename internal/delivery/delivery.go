// Package delivery defines the transport-agnostic entry point of the application.
package delivery

import "context"

// Delivery is a transport that serves requests until it is stopped.
type Delivery interface {
	Serve(ctx context.Context) error
}
