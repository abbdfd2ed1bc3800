// Package timeouts defines the HTTP server timeouts shared by the shell
// service and its commands.
package timeouts

import "time"

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight page renders
// during graceful shutdown.
const Shutdown = 5 * time.Second

// Telemetry caps how long span export may take when a command exits.
const Telemetry = 5 * time.Second
