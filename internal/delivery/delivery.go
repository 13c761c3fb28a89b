// Package delivery holds the outer surfaces of the application.
package delivery

import "context"

// Delivery is a long-running surface started by the application, such as the
// local API server.
type Delivery interface {
	Serve(ctx context.Context) error
}
