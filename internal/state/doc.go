// Package state provides thread-safe state management for the nekmon application.
//
// # Overview
//
// This package implements a simple but thread-safe store for sharing parsed
// logfile history and indicator state between the background poller and the
// UI. It acts as the coordination point where polling updates meet rendering.
//
// # Architecture
//
// The package follows a producer-consumer pattern:
//
//	Producer (Poller):             Consumer (UI):
//	┌────────────────┐            ┌────────────────┐
//	│ stat logfile   │            │                │
//	│ parse logfile  │            │                │
//	│      ↓         │            │                │
//	│ store.Update() │───────────→│ store.Snapshot()│
//	│      ↓         │  (mutex)   │      ↓         │
//	│  repeat...     │            │  render UI     │
//	└────────────────┘            └────────────────┘
//
// The Store mediates between these two independent goroutines, ensuring:
//   - Atomic updates (no partial/torn reads)
//   - No data races (mutex-protected access)
//   - Immutable snapshots (defensive copying)
//
// # Core Types
//
// Store:
//   - Thread-safe container for the latest poll result
//   - Uses sync.RWMutex for concurrent access
//   - Single writer (poller), multiple readers (UI refresh loop)
//
// Snapshot:
//   - Immutable view of state at a point in time
//   - Contains parsed history, logfile mtime, lamp deadlines, and error info
//   - Returned by value with defensive copies
//
// # Indicator Lamps
//
// A Snapshot carries two lamp deadlines rather than booleans:
//
//   - UpdateFlashUntil: set when the logfile mtime advanced on a poll
//   - JamFlashUntil: set when a poll tick arrived later than the jam threshold
//
// A lamp is lit while time.Now() is before its deadline. The poller arms a
// lamp for one poll interval, so a lamp that is not re-armed on the next
// publish goes dark on its own. The UI never mutates lamp state; it only
// evaluates UpdateLit and JamLit against the current time.
//
// # Update Semantics
//
// The Update method has special error handling behavior:
//
//	// Success case: Replace entire snapshot
//	store.Update(next, nil)
//	→ snapshot.History = next.History (cloned)
//	→ snapshot.LastError = nil
//	→ snapshot.ConsecutiveFailures = 0
//
//	// Error case: Keep old data, record error
//	store.Update(next, err)
//	→ snapshot.History = <unchanged>
//	→ snapshot.LastError = err
//	→ snapshot.ConsecutiveFailures++
//	→ snapshot.JamFlashUntil = max(old, next.JamFlashUntil)
//
// This ensures the UI always has the most recent successful parse to display,
// while also being informed of polling failures. The jam deadline is carried
// forward even on errors because a late tick is independent of read failures.
//
// # Defensive Copying
//
// Both Update and Snapshot clone the History so that the poller and the UI
// never share slice backing arrays. Errors returned from Snapshot are wrapped
// so callers cannot retain the stored value.
//
// # Testing Considerations
//
// The Store is safe to construct with zero value:
//
//	store := &state.Store{}  // Ready to use immediately
//
// Snapshot() returns a zero Snapshot if Update has never been called.
package state
