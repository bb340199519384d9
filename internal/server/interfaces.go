package server

// Server defines the lifecycle contract of the intake server.
//
// RunServer blocks until SIGINT, SIGTERM or SIGQUIT is received and the
// server has shut down.
type Server interface {
	RunServer()
	Shutdown()
}
