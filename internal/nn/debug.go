package nn

import "sync/atomic"

var debug atomic.Bool

// SetDebug turns the process-wide debug output on or off.
//
// When on, trainable layers log the norm of their weight gradient on every
// Update. Prefer optim.Config.Debug, which scopes the output to one call.
func SetDebug(on bool) {
	debug.Store(on)
}

// Debug reports whether the process-wide debug output is on.
func Debug() bool {
	return debug.Load()
}
