// Package app provides the orchestration layer for nekmon.
//
// # Overview
//
// This package wires together configuration, preferences, polling, state
// management, and the UI. It is the composition root where all dependencies
// are initialized and connected.
//
// # Architecture
//
//  1. Load the nekmon config (logfile path, poll cadence, jam factor)
//  2. Load user preferences (theme, per-chart axis modes)
//  3. Open the file-backed diagnostics logger
//  4. Create the shared state.Store for UI and poller coordination
//  5. Launch the background poller goroutine
//  6. Start the TUI and block until the user exits or the context cancels
//
// # Polling Behavior
//
// The poller runs continuously at the configured interval (default one
// second). On each tick it:
//
//   - stats the logfile; an mtime that advanced since the previous tick
//     arms the Update lamp
//   - compares the wall-clock gap to the previous tick against
//     interval x jam factor; a late tick arms the Jam lamp
//   - re-parses the whole logfile from scratch
//   - publishes the result to the shared state.Store
//
// Lamp deadlines are carried in the snapshot and expire after one poll
// interval, so a lamp that is not re-armed goes dark on the next publish.
//
// # Error Handling
//
// Fatal errors (returned from Run): unreadable or invalid config file.
//
// Recoverable errors (logged to the diagnostics file, polling continues):
// stat failures other than file-not-found, and read errors mid-parse. A
// missing logfile is not an error at all; the solver may simply not have
// started yet.
package app
