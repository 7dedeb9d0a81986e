// Package lifecycle holds shared constants for fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds store connect/ping/shutdown operations inside lifecycle hooks.
const DefaultTimeout = 10 * time.Second
