// Package lifecycle holds shared constants for component start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown work such as connection pings
// and graceful HTTP server drains.
const DefaultTimeout = 10 * time.Second
