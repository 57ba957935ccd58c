package port

import "context"

// Navigator opens destinations produced by the query parser.
type Navigator interface {
	// Open opens url. newTab requests a new browser context instead of
	// reusing the current one; implementations that cannot tell the
	// difference may ignore it.
	Open(ctx context.Context, url string, newTab bool) error
}
