// Package lifecycle holds timing constants shared by fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds how long a single OnStart or OnStop hook may block.
const DefaultTimeout = 15 * time.Second
