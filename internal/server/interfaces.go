package server

import "context"

// Server defines the lifecycle contract of the process runner.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT and then shuts down
	// gracefully.
	RunServer() error

	// Run serves until ctx is done or a listener fails.
	Run(ctx context.Context) error
}
