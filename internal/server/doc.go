// Package server runs the intake server's HTTP transport: startup, signal
// handling and graceful shutdown.
package server
