// Package timeouts holds the HTTP and shutdown durations used by commands.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Write bounds the time allowed to render and write one response.
const Write = 10 * time.Second

// Idle limits how long keep-alive connections stay open between requests.
const Idle = 60 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown, and how long telemetry has to flush.
const Shutdown = 5 * time.Second
