// Package delivery defines the entry points that expose the runtime to the
// outside world.
package delivery

import "context"

// Delivery is a long-running entry point, served until its context ends.
type Delivery interface {
	Serve(ctx context.Context) error
}
