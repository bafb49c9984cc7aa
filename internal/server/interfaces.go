package server

// Server defines the lifecycle contract of the REST API server.
//
// RunServer blocks until a termination signal is received and the server
// has been shut down, or until the server fails to bind or serve.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	// It returns the error that stopped the server, nil after a graceful
	// shutdown.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
