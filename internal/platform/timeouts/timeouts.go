// Package timeouts defines shared timeout constants used across the atlas
// commands. Centralizing these values keeps the defaults discoverable.
package timeouts

import "time"

// Build caps one full atlas run when ATLAS_TIMEOUT is not set.
const Build = 10 * time.Minute

// StoreBusy limits how long SQLite waits on a locked database.
const StoreBusy = 5 * time.Second

// Shutdown limits how long telemetry may take to flush pending spans.
const Shutdown = 5 * time.Second
