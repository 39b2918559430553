// Package timeouts defines shared timeout constants for command entry points.
package timeouts

import "time"

// TelemetryShutdown limits how long a command waits for pending spans to be
// flushed before it exits.
const TelemetryShutdown = 5 * time.Second
