package server

// Server defines the common lifecycle contract for transport servers managed
// by this package.
//
// Implementations bind their listener in listen, block in [RunServer] until
// shutdown is requested and release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()

	listen() error
	addr() string
}
