// Package server runs the backend emulator's HTTP listener.
//
// It provides the server lifecycle: startup, signal handling and graceful
// shutdown.
package server
