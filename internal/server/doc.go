// Package server wires and runs the HTTP transport of the NoteKeeper server,
// including startup, signal handling, and graceful shutdown.
package server
