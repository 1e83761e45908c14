// Package delivery defines the transport-agnostic serving contract
// implemented by every inbound adapter.
package delivery

import "context"

// Delivery is a long-running inbound adapter (HTTP server today).
type Delivery interface {
	Serve(ctx context.Context) error
}
