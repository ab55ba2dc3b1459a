// Package lifecycle holds shared start/stop conventions for long-lived
// components.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and loops.
const DefaultTimeout = 10 * time.Second
