package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/nek-tools/nekmon/internal/neklog"
)

// Snapshot represents the latest poll result available to the UI.
type Snapshot struct {
	History     neklog.History
	FileModTime time.Time // zero when the logfile is absent

	// Indicator lamps stay lit until their deadline passes.
	UpdateFlashUntil time.Time // mtime advanced on the last poll
	JamFlashUntil    time.Time // the last poll tick arrived late

	LastPoll            time.Time
	LastError           error
	ConsecutiveFailures int // consecutive polls that failed to read the log
}

// UpdateLit reports whether the Update lamp should be lit at now.
func (s Snapshot) UpdateLit(now time.Time) bool {
	return now.Before(s.UpdateFlashUntil)
}

// JamLit reports whether the Jam lamp should be lit at now.
func (s Snapshot) JamLit(now time.Time) bool {
	return now.Before(s.JamFlashUntil)
}

// IsStale returns true when reading the log has failed for multiple polls.
func (s Snapshot) IsStale() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored snapshot. When err is non-nil the previous
// data is kept but the error is recorded for visibility.
func (s *Store) Update(next Snapshot, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastPoll = time.Now()
		s.snapshot.ConsecutiveFailures++
		// A late tick is still worth surfacing even when the read failed.
		if next.JamFlashUntil.After(s.snapshot.JamFlashUntil) {
			s.snapshot.JamFlashUntil = next.JamFlashUntil
		}
		return
	}

	next.History = next.History.Clone()
	next.LastError = nil
	next.LastPoll = time.Now()
	next.ConsecutiveFailures = 0
	s.snapshot = next
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.History = s.snapshot.History.Clone()
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
