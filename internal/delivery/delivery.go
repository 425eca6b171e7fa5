// Package delivery defines the contract every transport entrypoint of the
// service fulfils.
package delivery

import "context"

// Delivery is a long-running transport server, e.g. the HTTP API.
// Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
